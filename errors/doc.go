// Package errors provides the structured errors raised by the execution engine.
//
// Every error carries an ErrorCode naming what went wrong, a Severity telling
// the engine whether the condition can be handed back to the caller or must
// terminate the wrapper process, optional context metadata, and the wrapped
// cause. The package stays compatible with the standard library (errors.Is,
// errors.As, errors.Unwrap).
//
// # Creating errors
//
//	err := errors.New(errors.CodeInvalidCommand, "program name is empty")
//	err := errors.Newf(errors.CodeAbnormalExit, "child %d killed by %s", pid, sig)
//
// Wrapping an OS error:
//
//	r, w, err := os.Pipe()
//	if err != nil {
//	    return errors.Wrap(err, errors.CodeResourceAcquisition, "pipe() failed")
//	}
//
// # Severity
//
// Codes map to a default severity:
//
//   - Fatal: resource acquisition, output pumping, waiting, abnormal exit,
//     foreground exec failures. The engine logs the error and exits.
//   - Returnable: invalid commands, child setup failures, non-zero exits,
//     configuration problems. These reach the caller as values.
//
// IsFatal(err) reports the severity of any error chain; errors that are not
// engine errors are treated as fatal since the engine has no way to recover
// from a condition it does not recognise.
//
// # Context
//
//	err = errors.WithContextMap(err, map[string]interface{}{
//	    "command": cmd.String(),
//	    "pid":     pid,
//	})
//
// Context is rendered by the engine's logger as key=value pairs and included
// in the JSON form returned by ToJSON.
package errors
