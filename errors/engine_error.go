package errors

import "fmt"

// engineError is the concrete implementation of Error.
type engineError struct {
	code     ErrorCode
	severity Severity
	message  string
	context  map[string]interface{}
	cause    error
}

// Error returns "[CODE] message" or "[CODE] message: cause".
func (e *engineError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

func (e *engineError) Code() ErrorCode {
	return e.code
}

func (e *engineError) Severity() Severity {
	return e.severity
}

func (e *engineError) Message() string {
	return e.message
}

// Context returns a copy of the context map, or nil when none is attached.
func (e *engineError) Context() map[string]interface{} {
	if e.context == nil {
		return nil
	}
	ctx := make(map[string]interface{}, len(e.context))
	for k, v := range e.context {
		ctx[k] = v
	}
	return ctx
}

func (e *engineError) Unwrap() error {
	return e.cause
}
