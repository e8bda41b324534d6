package dmp

import (
	"errors"
	"fmt"

	"github.com/glyphdiff/dmp/modules/trace"
)

// Sentinel errors for the kinds spec.md §7 names. Wrap with fmt.Errorf's
// %w and unwrap with errors.Is; the message text carries the detail.
var (
	// ErrInvalidInput names the absent-argument error kind. Diff and Match
	// take Go strings, which cannot be absent, so no function in this
	// package returns it.
	ErrInvalidInput = errors.New("invalid input")
	// ErrPatternTooLong is returned when a Bitap pattern exceeds
	// Config.MatchMaxBits.
	ErrPatternTooLong = errors.New("pattern too long")
	// ErrInvalidEscape is returned when FromDelta hits a malformed
	// percent-escape in an insert token.
	ErrInvalidEscape = errors.New("invalid escape in delta")
	// ErrInvalidLength is returned when FromDelta hits a non-numeric or
	// negative length token.
	ErrInvalidLength = errors.New("invalid length in delta")
	// ErrInvalidOperation is returned when FromDelta hits an unknown
	// operation character.
	ErrInvalidOperation = errors.New("invalid operation in delta")
	// ErrDeltaLengthMismatch is returned when a decoded delta's cumulative
	// consumed length doesn't equal len(text1).
	ErrDeltaLengthMismatch = errors.New("delta length mismatch")
)

func invalidInputf(format string, a ...any) error {
	return trace.Wrap(fmt.Errorf("%w: "+format, append([]any{ErrInvalidInput}, a...)...))
}

func patternTooLongf(format string, a ...any) error {
	return trace.Wrap(fmt.Errorf("%w: "+format, append([]any{ErrPatternTooLong}, a...)...))
}

func invalidEscapef(format string, a ...any) error {
	return trace.Wrap(fmt.Errorf("%w: "+format, append([]any{ErrInvalidEscape}, a...)...))
}

func invalidLengthf(format string, a ...any) error {
	return trace.Wrap(fmt.Errorf("%w: "+format, append([]any{ErrInvalidLength}, a...)...))
}

func invalidOperationf(format string, a ...any) error {
	return trace.Wrap(fmt.Errorf("%w: "+format, append([]any{ErrInvalidOperation}, a...)...))
}

func deltaLengthMismatchf(format string, a ...any) error {
	return trace.Wrap(fmt.Errorf("%w: "+format, append([]any{ErrDeltaLengthMismatch}, a...)...))
}
