package constants

import "time"

const (
	// DefaultRequestTimeout bounds every store-touching service call.
	DefaultRequestTimeout = 5 * time.Second

	// ShutdownTimeout is the grace period for in-flight requests on SIGTERM.
	ShutdownTimeout = 10 * time.Second

	// SlotDurationMinutes is the system-wide appointment slot length.
	SlotDurationMinutes = 30

	// TimeOfDayLayout is the working-hours wire format, e.g. "09:00".
	TimeOfDayLayout = "15:04"

	// DateLayout is the format of the slots query date parameter.
	DateLayout = "2006-01-02"
)

const (
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes

	MigrationFile = "db/migrations/001_init.sql"
)

// RateLimitPerSecond caps requests per client IP.
const RateLimitPerSecond = 20
