package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorIsByKind(t *testing.T) {
	err := New(ErrKindAlloc, "mmap", errors.New("ENOMEM"))
	require.ErrorIs(t, err, ErrAllocationFailed)
	assert.NotErrorIs(t, err, ErrTableFull)
	assert.Equal(t, "mmap: ENOMEM", err.Error())
}

func TestErrorWrapped(t *testing.T) {
	wrapped := fmt.Errorf("doublehash: insert %q: %w", "k", ErrTableFull)
	require.ErrorIs(t, wrapped, ErrTableFull)

	var te *Error
	require.ErrorAs(t, wrapped, &te)
	assert.Equal(t, ErrKindFull, te.Kind)
}

func TestErrorNil(t *testing.T) {
	var e *Error
	assert.Equal(t, "<nil>", e.Error())
	assert.False(t, e.Is(ErrNotFound))
}

func TestErrKindString(t *testing.T) {
	kinds := map[ErrKind]string{
		ErrKindDimensions: "dimensions",
		ErrKindAlloc:      "alloc",
		ErrKindTooLarge:   "too-large",
		ErrKindFull:       "full",
		ErrKindNotFound:   "not-found",
		ErrKindRange:      "range",
		ErrKindInput:      "input",
		ErrKindState:      "state",
		ErrKind(99):       "unknown",
	}
	for k, want := range kinds {
		assert.Equal(t, want, k.String())
	}
}
