package color

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmptyIsAlwaysValid(t *testing.T) {
	calls := 0
	v := NewValidator(OracleFunc(func(context.Context, string) bool {
		calls++
		return false
	}))

	got, err := v.Validate(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, None, got)
	assert.Zero(t, calls, "empty candidate must not reach the oracle")
}

func TestValidateReturnsCandidateUnchanged(t *testing.T) {
	v := NewValidator(nil)

	for _, candidate := range []Value{"#ff0000", "#FFF", "Red", "rgb(0, 128, 255)", "hsl(120, 100%, 50%)", "transparent", " navy "} {
		got, err := v.Validate(context.Background(), candidate)
		require.NoError(t, err, "candidate %q", candidate)
		assert.Equal(t, candidate, got)
	}
}

func TestValidateRejects(t *testing.T) {
	v := NewValidator(nil)

	for _, candidate := range []Value{"notacolor", "#ff00000", "#gggggg", "rgb(300, 0, 0)", "   "} {
		_, err := v.Validate(context.Background(), candidate)
		assert.ErrorIs(t, err, ErrRejected, "candidate %q", candidate)
	}
}

func TestValidateCancelledContextIsNotARejection(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	v := NewValidator(nil)
	_, err := v.Validate(ctx, "#ff0000")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, errors.Is(err, ErrRejected))
}

func TestValidateUsesPluggableOracle(t *testing.T) {
	v := NewValidator(OracleFunc(func(_ context.Context, candidate string) bool {
		return candidate == "brand-blue"
	}))

	got, err := v.Validate(context.Background(), "brand-blue")
	require.NoError(t, err)
	assert.Equal(t, Value("brand-blue"), got)

	_, err = v.Validate(context.Background(), "#ff0000")
	assert.ErrorIs(t, err, ErrRejected)
}
