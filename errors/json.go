package errors

import (
	"encoding/json"
)

// ErrorResponse is the flat, serializable form of an error. The wrapped
// chain is excluded; only the code, message, severity and context appear.
type ErrorResponse struct {
	// Code is the error code identifying the type of error.
	Code string `json:"code"`

	// Message is the human-readable error message.
	Message string `json:"message"`

	// Severity is either FATAL or RETURNABLE.
	Severity string `json:"severity"`

	// Context contains optional metadata about the error.
	Context map[string]interface{} `json:"context,omitempty"`
}

// ToJSON converts any error to an ErrorResponse suitable for JSON serialization.
// Returns nil if err is nil.
//
// For standard errors, CodeUnknown, SeverityFatal and the error string are used.
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	message := err.Error()
	var context map[string]interface{}

	var e Error
	if As(err, &e) {
		message = e.Message()
		context = e.Context()
	}

	return &ErrorResponse{
		Code:     string(GetCode(err)),
		Message:  message,
		Severity: string(GetSeverity(err)),
		Context:  context,
	}
}

// MarshalJSON implements json.Marshaler for engineError.
func (e *engineError) MarshalJSON() ([]byte, error) {
	response := &ErrorResponse{
		Code:     string(e.code),
		Message:  e.message,
		Severity: string(e.severity),
		Context:  e.context,
	}
	data, err := json.Marshal(response)
	if err != nil {
		return nil, &engineError{
			code:     CodeInternal,
			severity: SeverityFatal,
			message:  "failed to marshal error response",
			cause:    err,
		}
	}
	return data, nil
}
