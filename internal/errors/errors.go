package errors

import (
	"fmt"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   appErr,
		}
	}
	return &AppError{
		Code:    CodeProcessing,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetCode returns the error code if it's an AppError, otherwise returns "UNKNOWN"
func GetCode(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return "UNKNOWN"
}

// Predefined error codes
const (
	CodeInvalidMode   = "INVALID_MODE"
	CodeMissingColumn = "MISSING_COLUMN"
	CodeProcessing    = "PROCESSING_ERROR"
	CodeConfigInvalid = "CONFIG_INVALID"
)

// Common error constructors

// InvalidMode reports a mode token outside the two accepted values.
func InvalidMode(token string) *AppError {
	return New(CodeInvalidMode, fmt.Sprintf("Parâmetro 'mode' inválido: '%s'. Esperado: 'audited' ou 'not-audited'", token))
}

// MissingColumn reports a required column absent from the uploaded sheet.
func MissingColumn(name string) *AppError {
	return New(CodeMissingColumn, fmt.Sprintf("Coluna '%s' não encontrada na planilha", name))
}

// Processing wraps any parsing or assembly failure under the generic message.
func Processing(err error) *AppError {
	return &AppError{
		Code:    CodeProcessing,
		Message: "Erro ao processar planilha",
		Cause:   err,
	}
}

func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}
