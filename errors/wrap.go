package errors

import (
	"errors"
	"fmt"
)

// Wrap wraps an error with a code and message while preserving the original
// error for errors.Is and errors.As.
//
// The severity always comes from the new code: an OS error wrapped as
// CodeChildSetup is returnable even if the same errno is fatal elsewhere.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := cmd.Start(); err != nil {
//	    return errors.Wrap(err, errors.CodeChildSetup, "failed to start child")
//	}
func Wrap(err error, code ErrorCode, message string) Error {
	if err == nil {
		return nil
	}

	return &engineError{
		code:     code,
		severity: getDefaultSeverity(code),
		message:  message,
		cause:    err,
	}
}

// Wrapf wraps an error with a formatted message.
//
// Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) Error {
	if err == nil {
		return nil
	}

	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps an error and attaches context metadata in one call.
// The context map is copied.
//
// Returns nil if err is nil.
func WrapWithContext(err error, code ErrorCode, message string, ctx map[string]interface{}) Error {
	if err == nil {
		return nil
	}

	var contextCopy map[string]interface{}
	if ctx != nil {
		contextCopy = make(map[string]interface{}, len(ctx))
		for k, v := range ctx {
			contextCopy[k] = v
		}
	}

	return &engineError{
		code:     code,
		severity: getDefaultSeverity(code),
		message:  message,
		context:  contextCopy,
		cause:    err,
	}
}

// asEngineError returns err as an Error, converting foreign errors to
// CodeUnknown so that context can be attached to anything.
func asEngineError(err error) Error {
	var e Error
	if errors.As(err, &e) {
		return e
	}
	return &engineError{
		code:     CodeUnknown,
		severity: getDefaultSeverity(CodeUnknown),
		message:  err.Error(),
		cause:    err,
	}
}
