package domain

import (
	"errors"
	"fmt"
	"strings"
)

// DomainError represents errors in the domain layer
type DomainError struct {
	Code    string
	Message string
	Cause   error
}

func (e DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e DomainError) Unwrap() error {
	return e.Cause
}

// Domain error codes
const (
	ErrCodeInvalidInput    = "INVALID_INPUT"
	ErrCodeFileNotFound    = "FILE_NOT_FOUND"
	ErrCodeIO              = "IO_ERROR"
	ErrCodeExternalCommand = "EXTERNAL_COMMAND_ERROR"
	ErrCodeConfigError     = "CONFIG_ERROR"
	ErrCodeOutputError     = "OUTPUT_ERROR"
)

// NewDomainError creates a new domain error
func NewDomainError(code, message string, cause error) error {
	return DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewInvalidInputError creates an invalid input error
func NewInvalidInputError(message string, cause error) error {
	return NewDomainError(ErrCodeInvalidInput, message, cause)
}

// NewFileNotFoundError creates a file not found error
func NewFileNotFoundError(path string, cause error) error {
	return NewDomainError(ErrCodeFileNotFound, fmt.Sprintf("file not found: %s", path), cause)
}

// NewIOError creates a filesystem error
func NewIOError(message string, cause error) error {
	return NewDomainError(ErrCodeIO, message, cause)
}

// NewExternalCommandError creates an error for a failed external command.
// The command's stderr, when present, is folded into the message.
func NewExternalCommandError(argv []string, stderr string, cause error) error {
	msg := fmt.Sprintf("command failed: %s", strings.Join(argv, " "))
	if s := strings.TrimSpace(stderr); s != "" {
		msg += "\n" + s
	}
	return NewDomainError(ErrCodeExternalCommand, msg, cause)
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) error {
	return NewDomainError(ErrCodeConfigError, message, cause)
}

// NewOutputError creates an output error
func NewOutputError(message string, cause error) error {
	return NewDomainError(ErrCodeOutputError, message, cause)
}

// NewUnsupportedFormatError creates an unsupported format error
func NewUnsupportedFormatError(format string) error {
	return NewDomainError(ErrCodeInvalidInput, fmt.Sprintf("unsupported format: %s", format), nil)
}

// NewValidationError creates a validation error
func NewValidationError(message string) error {
	return NewDomainError(ErrCodeInvalidInput, message, nil)
}

// IsCode reports whether err or any error it wraps is a DomainError with code
func IsCode(err error, code string) bool {
	var de DomainError
	for err != nil {
		if !errors.As(err, &de) {
			return false
		}
		if de.Code == code {
			return true
		}
		err = de.Cause
	}
	return false
}
