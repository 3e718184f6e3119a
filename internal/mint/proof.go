// proof.go - Mint proof construction.
//
// ConstructProof proves that the total value carried by a set's input notes
// equals the total carried by its output notes, without revealing any single
// value. Each note gets a blinded response pair (kBar, aBar); the signed
// value responses telescope to zero across inputs and outputs, with the last
// note acting as the balancing note whose response is derived rather than
// randomly blinded.

package mint

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"mintproof/internal/curve"
	"mintproof/internal/note"
)

// Row is one transcript row: the note's blinded responses followed by its
// commitment coordinates, in wire order.
type Row struct {
	KBar  fr.Element
	ABar  fr.Element
	Gamma curve.Point
	Sigma curve.Point
}

// Proof is a mint proof transcript: one row per note, in note order, plus the
// Fiat-Shamir challenge. It is produced once and never mutated.
type Proof struct {
	Rows      []Row
	Challenge fr.Element
}

// ConstructProof validates every note in the set, derives the Fiat-Shamir
// challenge bound to sender, and emits the proof transcript. Any validation
// failure aborts immediately with the named error for the first offending
// note; no partial transcript is ever returned.
func ConstructProof(set *note.Set, sender []byte) (*Proof, error) {
	if set == nil || len(set.Notes) < 2 {
		count := 0
		if set != nil {
			count = len(set.Notes)
		}
		return nil, fmt.Errorf("need at least 2 notes, got %d: %w", count, ErrIncorrectNoteCount)
	}
	if err := validateSet(set); err != nil {
		return nil, err
	}

	c := computeChallenge(set.Notes, sender)
	rows := make([]Row, len(set.Notes))
	last := len(set.Notes) - 1

	// Signed running sum of the kBar responses so far: inputs add, outputs
	// subtract. The last note consumes it so the whole column sums to zero.
	var balance fr.Element

	for i, n := range set.Notes {
		var kBar fr.Element
		if i == last {
			if i < set.InputCount {
				kBar.Neg(&balance)
			} else {
				kBar.Set(&balance)
			}
		} else {
			k := fr.NewElement(n.K)
			var kc fr.Element
			kc.Mul(&k, c)
			for {
				bk, err := curve.RandomNonZeroScalar()
				if err != nil {
					return nil, err
				}
				kBar.Add(&kc, bk)
				if !kBar.IsZero() {
					break
				}
			}
			if i < set.InputCount {
				balance.Add(&balance, &kBar)
			} else {
				balance.Sub(&balance, &kBar)
			}
		}

		ba, err := curve.RandomScalar()
		if err != nil {
			return nil, err
		}
		var aBar fr.Element
		aBar.Mul(n.A, c)
		aBar.Add(&aBar, ba)

		rows[i] = Row{KBar: kBar, ABar: aBar, Gamma: n.Gamma, Sigma: n.Sigma}
	}

	return &Proof{Rows: rows, Challenge: *c}, nil
}
