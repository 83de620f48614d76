package errors

// Severity indicates whether an error may be returned to the caller or must
// terminate the wrapper process.
type Severity string

const (
	// SeverityReturnable marks conditions the caller is expected to handle.
	SeverityReturnable Severity = "RETURNABLE"

	// SeverityFatal marks conditions after which the engine cannot continue.
	SeverityFatal Severity = "FATAL"
)

// IsFatal returns true if the severity requires the wrapper to abort.
func (s Severity) IsFatal() bool {
	return s == SeverityFatal
}

var defaultSeverities = map[ErrorCode]Severity{
	CodeInvalidCommand: SeverityReturnable,
	CodeInvalidConfig:  SeverityReturnable,
	CodeChildSetup:     SeverityReturnable,
	CodeNonZeroExit:    SeverityReturnable,
	CodeNotFound:       SeverityReturnable,

	CodeResourceAcquisition: SeverityFatal,
	CodeOutputPump:          SeverityFatal,
	CodeWaitFailed:          SeverityFatal,
	CodeAbnormalExit:        SeverityFatal,
	CodeExecFailed:          SeverityFatal,
	CodeUnsupported:         SeverityFatal,
	CodeInternal:            SeverityFatal,
	CodeUnknown:             SeverityFatal,
}

// getDefaultSeverity returns the default severity for an error code.
// Unmapped codes are fatal.
func getDefaultSeverity(code ErrorCode) Severity {
	if s, ok := defaultSeverities[code]; ok {
		return s
	}
	return SeverityFatal
}
