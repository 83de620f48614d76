package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithContext(t *testing.T) {
	err := New(CodeNonZeroExit, "command failed")
	err = WithContext(err, "command", "false")

	require.Equal(t, "false", err.Context()["command"])
	require.Equal(t, CodeNonZeroExit, err.Code())
}

func TestWithContext_Chaining(t *testing.T) {
	err := New(CodeNonZeroExit, "command failed")
	err = WithContext(err, "command", "make")
	err = WithContext(err, "exit_code", 2)
	err = WithContext(err, "pid", 1234)

	ctx := err.Context()
	require.Len(t, ctx, 3)
	require.Equal(t, "make", ctx["command"])
	require.Equal(t, 2, ctx["exit_code"])
	require.Equal(t, 1234, ctx["pid"])
}

func TestWithContext_StandardError(t *testing.T) {
	stdErr := stderrors.New("standard error")
	err := WithContext(stdErr, "key", "value")

	require.Equal(t, CodeUnknown, err.Code())
	require.Equal(t, SeverityFatal, err.Severity())
	require.Equal(t, stdErr, err.Unwrap())
	require.Equal(t, "value", err.Context()["key"])
}

func TestWithContext_Nil(t *testing.T) {
	require.Nil(t, WithContext(nil, "k", "v"))
	require.Nil(t, WithContextMap(nil, map[string]interface{}{"k": "v"}))
	require.Nil(t, WithSeverity(nil, SeverityFatal))
}

func TestWithContext_Immutability(t *testing.T) {
	original := WithContext(New(CodeNonZeroExit, "failed"), "a", 1)
	derived := WithContext(original, "b", 2)

	require.Len(t, original.Context(), 1)
	require.Len(t, derived.Context(), 2)

	ctx := derived.Context()
	ctx["a"] = 100
	require.Equal(t, 1, derived.Context()["a"])
}

func TestWithContextMap_Overrides(t *testing.T) {
	err := WithContext(New(CodeNonZeroExit, "failed"), "exit_code", 1)
	err = WithContextMap(err, map[string]interface{}{
		"exit_code": 7,
		"command":   "sh -c exit 7",
	})

	require.Equal(t, 7, err.Context()["exit_code"])
	require.Equal(t, "sh -c exit 7", err.Context()["command"])
}

func TestWithSeverity(t *testing.T) {
	err := WithContext(New(CodeNonZeroExit, "failed"), "exit_code", 7)
	escalated := WithSeverity(err, SeverityFatal)

	require.True(t, escalated.Severity().IsFatal())
	require.Equal(t, CodeNonZeroExit, escalated.Code())
	require.Equal(t, 7, escalated.Context()["exit_code"])
	require.False(t, err.Severity().IsFatal())
}
