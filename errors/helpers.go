package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetCode extracts the ErrorCode from the outermost Error in err's chain.
// Returns CodeUnknown if err is nil or not an Error.
//
// Example:
//
//	if errors.GetCode(err) == errors.CodeNotFound {
//	    // not inside a repository
//	}
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	var e Error
	if stderrors.As(err, &e) {
		return e.Code()
	}

	return CodeUnknown
}

// GetSeverity extracts the Severity from the outermost Error in err's chain.
// Returns SeverityFatal for errors that are not engine errors.
// Returns SeverityReturnable for nil.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityReturnable
	}

	var e Error
	if stderrors.As(err, &e) {
		return e.Severity()
	}

	return SeverityFatal
}

// IsFatal returns true if err must terminate the wrapper process.
func IsFatal(err error) bool {
	return GetSeverity(err).IsFatal()
}
