// Package diag defines the failure taxonomy shared by the candidate
// pipeline. Per-candidate failures are values, never panics: the generator
// records them and keeps going.
package diag

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per failure kind. Match with errors.Is.
var (
	ErrParseFailure         = errors.New("parse failure")
	ErrUnknownUtility       = errors.New("unknown utility")
	ErrUnknownVariant       = errors.New("unknown variant")
	ErrTypeMismatch         = errors.New("type mismatch")
	ErrUnsupportedModifier  = errors.New("unsupported modifier")
	ErrUnsupportedNegation  = errors.New("unsupported negation")
	ErrThemeKeyNotFound     = errors.New("theme key not found")
	ErrInvalidValue         = errors.New("invalid value")
	ErrRegistrationConflict = errors.New("registration conflict")
)

// Kind names a failure category for reporting.
type Kind string

const (
	KindParseFailure        Kind = "parse-failure"
	KindUnknownUtility      Kind = "unknown-utility"
	KindUnknownVariant      Kind = "unknown-variant"
	KindTypeMismatch        Kind = "type-mismatch"
	KindUnsupportedModifier Kind = "unsupported-modifier"
	KindUnsupportedNegation Kind = "unsupported-negation"
	KindThemeKeyNotFound    Kind = "theme-key-not-found"
	KindInvalidValue        Kind = "invalid-value"
	KindUnknown             Kind = "unknown"
)

var kindErrors = map[Kind]error{
	KindParseFailure:        ErrParseFailure,
	KindUnknownUtility:      ErrUnknownUtility,
	KindUnknownVariant:      ErrUnknownVariant,
	KindTypeMismatch:        ErrTypeMismatch,
	KindUnsupportedModifier: ErrUnsupportedModifier,
	KindUnsupportedNegation: ErrUnsupportedNegation,
	KindThemeKeyNotFound:    ErrThemeKeyNotFound,
	KindInvalidValue:        ErrInvalidValue,
}

// CandidateError reports why a single candidate produced no CSS.
type CandidateError struct {
	Candidate string
	Kind      Kind
	Detail    string
}

// Fail builds a CandidateError with a formatted detail message.
func Fail(candidate string, kind Kind, format string, args ...any) *CandidateError {
	return &CandidateError{
		Candidate: candidate,
		Kind:      kind,
		Detail:    fmt.Sprintf(format, args...),
	}
}

func (e *CandidateError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %s", e.Candidate, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", e.Candidate, e.Kind, e.Detail)
}

// Unwrap returns the sentinel for the error kind.
func (e *CandidateError) Unwrap() error {
	return kindErrors[e.Kind]
}

// WithCandidate returns a copy of e attributed to candidate.
// Parsers and resolvers below the generator may not know the raw string a
// token came from (GenerateWith prefixes a variant context).
func (e *CandidateError) WithCandidate(candidate string) *CandidateError {
	cp := *e
	cp.Candidate = candidate
	return &cp
}

// KindOf classifies err. Errors outside the taxonomy are KindUnknown.
func KindOf(err error) Kind {
	var ce *CandidateError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	for kind, sentinel := range kindErrors {
		if errors.Is(err, sentinel) {
			return kind
		}
	}
	return KindUnknown
}

// ConflictError reports two definitions claiming the same key inside one
// registration layer. It is fatal for the configuration load.
type ConflictError struct {
	Key   string
	Layer string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("utility %q registered twice in layer %q\nHint: keys are unique per layer; move one definition to a later layer to override it", e.Key, e.Layer)
}

func (e *ConflictError) Unwrap() error {
	return ErrRegistrationConflict
}
