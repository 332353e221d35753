package errors

// ErrorCode classifies an application error so the transport layer can map it
// to an HTTP status without inspecting store internals.
type ErrorCode string

const (
	ErrInvalidInput      ErrorCode = "INVALID_INPUT"
	ErrNotFound          ErrorCode = "NOT_FOUND"
	ErrSlotAlreadyBooked ErrorCode = "SLOT_ALREADY_BOOKED"
	ErrGetFailed         ErrorCode = "GET_FAILED"
	ErrCreateFailed      ErrorCode = "CREATE_FAILED"
	ErrDeleteFailed      ErrorCode = "DELETE_FAILED"
	ErrInternalServer    ErrorCode = "INTERNAL_SERVER_ERROR"
)

// AppError is the typed outcome returned by services. Message is safe to show
// to clients; Err keeps the underlying cause for logs only.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }
