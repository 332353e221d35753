package entity

import (
	"time"

	"github.com/google/uuid"
)

// Doctor describes a practitioner and the daily working window inside which
// appointment slots are generated. WorkStart/WorkEnd are time-of-day values
// ("HH:MM", no date or timezone) reused across all calendar days.
type Doctor struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Specialization *string   `db:"specialization" json:"specialization,omitempty"`
	WorkStart      string    `db:"work_start" json:"work_start"`
	WorkEnd        string    `db:"work_end" json:"work_end"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}
