package usecase

// DomainError is a business rule violation: the caller did something the
// domain forbids, and retrying the same call will not help.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError is an infrastructure failure (store, queue, mail). The
// operation aborted but may succeed on retry.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

// Error codes surfaced to HTTP handlers.
const (
	CodeValidation    = "VALIDATION_ERROR"
	CodeNotFound      = "NOT_FOUND"
	CodeNotAuthorized = "NOT_AUTHORIZED"
	CodeAlreadySold   = "ALREADY_SOLD"
	CodeDuplicate     = "DUPLICATE"
	CodeForbidden     = "FORBIDDEN"
	CodeDatabase      = "DATABASE_ERROR"
	CodeSession       = "SESSION_ERROR"
)
