package foundation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorBuilder_FieldsAndMessage(t *testing.T) {
	err := ConfigurationError("bad href").
		WithComponent("nav").
		WithOperation("custom").
		WithContext(Fields{"href": "x"}).
		Build()

	require.Equal(t, ErrorCodeConfiguration, err.Code)
	require.Equal(t, "x", err.Context["href"])
	require.Contains(t, err.Error(), "[nav]")
	require.Contains(t, err.Error(), "code=configuration")
	require.Contains(t, err.Error(), "bad href")
}

func TestClassifiedError_UnwrapsCause(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := NotFoundError("static markdown file").WithCause(cause).Build()
	require.ErrorIs(t, err, cause)
}

func TestIsErrorCode_ThroughWrapping(t *testing.T) {
	err := fmt.Errorf("outer: %w", ConfigurationError("inner").Build())
	require.True(t, IsErrorCode(err, ErrorCodeConfiguration))
	require.False(t, IsErrorCode(err, ErrorCodeNotFound))
	require.False(t, IsErrorCode(errors.New("plain"), ErrorCodeConfiguration))
}

func TestInternalError_IsCritical(t *testing.T) {
	err := InternalError("boom").Build()
	require.Equal(t, SeverityCritical, err.Severity)
}

func TestOption_SingleSlotLifecycle(t *testing.T) {
	slot := None[int]()
	require.True(t, slot.IsNone())

	created := 0
	value := slot.UnwrapOrElse(func() int { created++; return 42 })
	require.Equal(t, 42, value)
	require.Equal(t, 1, created)

	slot = Some(7)
	require.True(t, slot.IsSome())
	require.Equal(t, 7, slot.Unwrap())
	require.Equal(t, 7, slot.UnwrapOr(0))
}

func TestOption_UnwrapNonePanics(t *testing.T) {
	require.Panics(t, func() { None[string]().Unwrap() })
}
