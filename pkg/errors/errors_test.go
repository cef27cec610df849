package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapAndIsCode(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(CodeUpstream, "could not load FAQ data", cause)

	require.Equal(t, "could not load FAQ data: connection refused", err.Error())
	require.True(t, IsCode(err, CodeUpstream))
	require.False(t, IsCode(err, CodeUnauthorized))
	require.ErrorIs(t, err, cause)
}

func TestCodeOfWrappedChain(t *testing.T) {
	err := fmt.Errorf("handler: %w", Wrap(CodeUnauthorized, "missing token", nil))

	require.Equal(t, CodeUnauthorized, CodeOf(err))
	require.Equal(t, "", CodeOf(errors.New("plain")))
	require.Equal(t, "missing token", Wrap(CodeUnauthorized, "missing token", nil).Error())
}
