package apperrors

import "fmt"

// AppError is a domain error carrying the HTTP status it should map to.
// The Err field is for logs only and is never written to a response.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func InvalidInput(message string) *AppError {
	return NewAppError(400, message, nil)
}

func DuplicateAccount() *AppError {
	return NewAppError(400, "username already taken", nil)
}

func InvalidCredentials() *AppError {
	return NewAppError(401, "invalid credentials", nil)
}

func Unauthenticated(err error) *AppError {
	return NewAppError(401, "authentication required", err)
}

func StorageUnavailable(err error) *AppError {
	return NewAppError(503, "storage unavailable", err)
}
