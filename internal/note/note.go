// note.go - Note type and commitment derivation.
//
// A Note is a dual-base commitment (gamma, sigma) to a value k under a
// blinding scalar a, with sigma = gamma^k * H^a. Production notes derive
// gamma from the public setup point H alone; only the test-only factory path
// forges commitments with a local trapdoor.

package note

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"

	"mintproof/internal/curve"
)

// Note is a confidential value commitment together with its private opening.
// Notes are created once and never mutated afterwards.
type Note struct {
	A     *fr.Element          // blinding scalar (private)
	K     uint64               // committed value (private)
	Gamma curve.Point          // first commitment component
	Sigma curve.Point          // second commitment component
	Owner *secp256k1.PublicKey // owner's public key
}

// FromViewingKey decodes a viewing key and derives the note's public
// commitment components under the production rule, using only the setup
// point H. The owner key is recovered from the ephemeral key material.
func FromViewingKey(vk ViewingKey) (*Note, error) {
	a, k, ephemeral, err := vk.Decode()
	if err != nil {
		return nil, err
	}
	n := &Note{A: a, K: k, Owner: ephemeral}
	n.commit(curve.ScalarMul(curve.H(), a))
	return n, nil
}

// Create builds a note owned by owner committing to value k, with a fresh
// blinding scalar and a fresh ephemeral key.
func Create(owner *secp256k1.PublicKey, k uint64) (*Note, error) {
	a, err := curve.RandomNonZeroScalar()
	if err != nil {
		return nil, err
	}
	ephemeral, err := GenerateEphemeralKey()
	if err != nil {
		return nil, fmt.Errorf("ephemeral key generation failed: %w", err)
	}
	vk, err := EncodeViewingKey(a, k, ephemeral.PubKey())
	if err != nil {
		return nil, err
	}
	n, err := FromViewingKey(vk)
	if err != nil {
		return nil, err
	}
	n.Owner = owner
	return n, nil
}

// commit fills in the commitment components from the given gamma:
// sigma = gamma^k * H^a.
func (n *Note) commit(gamma *bn254.G1Affine) {
	k := fr.NewElement(n.K)
	ha := curve.ScalarMul(curve.H(), n.A)
	sigma := curve.AddPoints(curve.ScalarMul(gamma, &k), ha)
	n.Gamma = curve.FromAffine(gamma)
	n.Sigma = curve.FromAffine(sigma)
}
