package errors

// WithContext adds a single context field to an error.
// Existing context fields are preserved.
//
// If err is not an Error, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	err = errors.WithContext(err, "pid", cmd.Process.Pid)
func WithContext(err error, key string, value interface{}) Error {
	if err == nil {
		return nil
	}
	return WithContextMap(err, map[string]interface{}{key: value})
}

// WithContextMap adds multiple context fields to an error.
// New fields override existing ones with the same key.
//
// If err is not an Error, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
func WithContextMap(err error, ctx map[string]interface{}) Error {
	if err == nil {
		return nil
	}

	e := asEngineError(err)

	merged := make(map[string]interface{})
	for k, v := range e.Context() {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}

	return &engineError{
		code:     e.Code(),
		severity: e.Severity(),
		message:  e.Message(),
		context:  merged,
		cause:    e.Unwrap(),
	}
}

// WithSeverity overrides the severity of an error.
//
// If err is not an Error, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	// a non-zero exit under the fatal policy must abort
//	err = errors.WithSeverity(err, errors.SeverityFatal)
func WithSeverity(err error, severity Severity) Error {
	if err == nil {
		return nil
	}

	e := asEngineError(err)
	return &engineError{
		code:     e.Code(),
		severity: severity,
		message:  e.Message(),
		context:  e.Context(),
		cause:    e.Unwrap(),
	}
}
