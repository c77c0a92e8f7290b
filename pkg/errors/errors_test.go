package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("colorfield.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "colorfield.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "colorfield.yaml:12")
}

func TestValidationErrorNamesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("presets[1].value", "is not a color", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "presets[1].value", validationErr.Field)
	require.Contains(t, validationErr.Message, "is not a color")
}

func TestStoreErrorIncludesDriverAndOperation(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("database is locked")
	err := NewStoreError("sqlite", "save", underlying)

	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	require.Equal(t, "sqlite", storeErr.Driver)
	require.Equal(t, "store error [sqlite] save: database is locked", err.Error())
	require.True(t, stdErrors.Is(err, underlying))
}
