package errors

// Error extends the standard error interface with the structured information
// the engine needs to decide between returning and aborting.
type Error interface {
	error

	// Code returns the error code identifying the type of error.
	Code() ErrorCode

	// Severity returns whether the error is fatal or returnable.
	Severity() Severity

	// Message returns the human-readable error message.
	Message() string

	// Context returns attached metadata as a read-only map.
	// Returns nil if no context has been attached.
	Context() map[string]interface{}

	// Unwrap returns the wrapped error for errors.Is and errors.As compatibility.
	Unwrap() error
}
