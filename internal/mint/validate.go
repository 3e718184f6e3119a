// validate.go - Note validation for proof construction.
//
// Every note is checked in sequence order before any challenge computation;
// the first violated invariant aborts construction with its named error.

package mint

import (
	"errors"
	"fmt"

	"mintproof/internal/curve"
	"mintproof/internal/note"
)

var (
	// ErrIncorrectNoteCount is returned when fewer than two notes are supplied.
	ErrIncorrectNoteCount = errors.New("incorrect note count")

	// ErrNotOnCurve is returned when a note's gamma does not satisfy the curve equation.
	ErrNotOnCurve = errors.New("gamma is not on the curve")

	// ErrPointAtInfinity is returned when a note's gamma is the group identity.
	ErrPointAtInfinity = errors.New("gamma is the point at infinity")

	// ErrViewingKeyMalformed is returned when a note's blinding scalar is zero.
	ErrViewingKeyMalformed = errors.New("viewing key malformed: zero blinding scalar")

	// ErrNoteValueTooBig is returned when a note's value exceeds the maximum.
	ErrNoteValueTooBig = errors.New("note value too big")
)

// validateSet runs the per-note validation pass, first failure wins.
func validateSet(s *note.Set) error {
	for i, n := range s.Notes {
		if err := validateNote(n); err != nil {
			return fmt.Errorf("note %d: %w", i, err)
		}
	}
	return nil
}

// validateNote checks one note's commitment component and opening.
func validateNote(n *note.Note) error {
	if n.Gamma.IsInfinity() {
		return ErrPointAtInfinity
	}
	if !n.Gamma.IsOnCurve() {
		return ErrNotOnCurve
	}
	if n.A == nil || n.A.IsZero() {
		return ErrViewingKeyMalformed
	}
	if n.K > curve.KMax {
		return ErrNoteValueTooBig
	}
	return nil
}
