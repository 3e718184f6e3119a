// challenge.go - Fiat-Shamir challenge derivation.
//
// The challenge binds every commitment and the sender identifier. For each
// note in sequence order, gamma.x, gamma.y, sigma.x, sigma.y are absorbed as
// 32-byte big-endian words, then the raw sender bytes; the Keccak-256 digest
// is reduced mod n. The ordering and encoding are fixed protocol parameters:
// construction and any external verifier must agree on them bit for bit.

package mint

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"golang.org/x/crypto/sha3"

	"mintproof/internal/note"
)

// computeChallenge derives the challenge scalar for the note sequence.
// Callers must have validated every note: coordinates are assumed to fit a
// 32-byte word.
func computeChallenge(notes []*note.Note, sender []byte) *fr.Element {
	h := sha3.NewLegacyKeccak256()
	var word [32]byte
	absorb := func(v *big.Int) {
		v.FillBytes(word[:])
		h.Write(word[:])
	}
	for _, n := range notes {
		absorb(n.Gamma.X)
		absorb(n.Gamma.Y)
		absorb(n.Sigma.X)
		absorb(n.Sigma.Y)
	}
	h.Write(sender)

	var c fr.Element
	c.SetBytes(h.Sum(nil))
	return &c
}
