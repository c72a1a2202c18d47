package diag_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agiangrant/tailcss/diag"
)

func TestCandidateError(t *testing.T) {
	t.Parallel()

	err := diag.Fail("bg-red-950", diag.KindThemeKeyNotFound, "no %q under %s", "red-950", "colors")
	assert.Equal(t, `bg-red-950: theme-key-not-found: no "red-950" under colors`, err.Error())
	assert.ErrorIs(t, err, diag.ErrThemeKeyNotFound)
	assert.NotErrorIs(t, err, diag.ErrInvalidValue)

	bare := &diag.CandidateError{Candidate: "foo", Kind: diag.KindUnknownUtility}
	assert.Equal(t, "foo: unknown-utility", bare.Error())

	moved := err.WithCandidate("md:bg-red-950")
	assert.Equal(t, "md:bg-red-950", moved.Candidate)
	assert.Equal(t, "bg-red-950", err.Candidate)
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want diag.Kind
	}{
		{"candidate error", diag.Fail("x", diag.KindTypeMismatch, ""), diag.KindTypeMismatch},
		{"wrapped", fmt.Errorf("compile: %w", diag.Fail("x", diag.KindParseFailure, "")), diag.KindParseFailure},
		{"sentinel", fmt.Errorf("lookup: %w", diag.ErrUnknownVariant), diag.KindUnknownVariant},
		{"foreign", errors.New("disk full"), diag.KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, diag.KindOf(tt.err))
		})
	}
}

func TestConflictError(t *testing.T) {
	t.Parallel()

	var err error = &diag.ConflictError{Key: "ring", Layer: "user"}
	assert.ErrorIs(t, err, diag.ErrRegistrationConflict)
	assert.Contains(t, err.Error(), `utility "ring" registered twice in layer "user"`)
}
