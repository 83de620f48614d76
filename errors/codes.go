package errors

// ErrorCode represents a specific error condition.
// Error codes are string-based for debuggability and natural JSON serialization.
type ErrorCode string

const (
	// Launch errors.

	// CodeInvalidCommand indicates a command description cannot be launched,
	// for example because the program name is empty.
	CodeInvalidCommand ErrorCode = "INVALID_COMMAND"

	// CodeInvalidConfig indicates a configuration value is malformed.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// Process lifecycle errors.

	// CodeResourceAcquisition indicates a pipe, pseudo-terminal or process
	// could not be created.
	CodeResourceAcquisition ErrorCode = "RESOURCE_ACQUISITION_FAILED"

	// CodeChildSetup indicates the child could not change directory, apply its
	// environment or replace its image.
	CodeChildSetup ErrorCode = "CHILD_SETUP_FAILED"

	// CodeOutputPump indicates reading child output or writing it to a sink failed.
	CodeOutputPump ErrorCode = "OUTPUT_PUMP_FAILED"

	// CodeWaitFailed indicates the child could not be reaped.
	CodeWaitFailed ErrorCode = "WAIT_FAILED"

	// CodeAbnormalExit indicates the child terminated without an exit code,
	// for example because it was killed by a signal.
	CodeAbnormalExit ErrorCode = "ABNORMAL_EXIT"

	// CodeNonZeroExit indicates the child exited with a non-zero code.
	CodeNonZeroExit ErrorCode = "NON_ZERO_EXIT"

	// CodeExecFailed indicates replacing the current process image failed.
	CodeExecFailed ErrorCode = "EXEC_FAILED"

	// Lookup errors.

	// CodeNotFound indicates a requested resource does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// System errors.

	// CodeUnsupported indicates the operation is not available on this platform.
	CodeUnsupported ErrorCode = "UNSUPPORTED"

	// CodeInternal indicates an internal invariant was violated.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)
