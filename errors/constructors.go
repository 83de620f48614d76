package errors

import "fmt"

// New creates a new Error with the given code and message.
// The severity is determined by the error code.
//
// Example:
//
//	err := errors.New(errors.CodeInvalidCommand, "program name is empty")
func New(code ErrorCode, message string) Error {
	return &engineError{
		code:     code,
		severity: getDefaultSeverity(code),
		message:  message,
	}
}

// Newf creates a new Error with a formatted message.
//
// Example:
//
//	err := errors.Newf(errors.CodeAbnormalExit, "child %d terminated by signal %s", pid, sig)
func Newf(code ErrorCode, format string, args ...interface{}) Error {
	return New(code, fmt.Sprintf(format, args...))
}
