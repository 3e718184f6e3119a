// factory.go - Commitment set generation.
//
// GenerateCommitmentSet is the production path: every note is well formed
// under public parameters only. GenerateFakeCommitmentSet forges commitments
// with a locally sampled trapdoor standing in for the trusted-setup secret;
// it exists so downstream proof logic can be exercised without running a
// setup ceremony, and must never be reachable from a production entry point.

package note

import (
	"fmt"
	"runtime"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"golang.org/x/sync/errgroup"

	"mintproof/internal/curve"
)

// Set is an ordered note sequence partitioned into an input prefix and an
// output suffix. The first InputCount notes are inputs.
type Set struct {
	Notes      []*Note
	InputCount int
}

// Size returns the total number of notes in the set.
func (s *Set) Size() int {
	return len(s.Notes)
}

// GenerateCommitmentSet builds one note per value in kIn then kOut, preserving
// order and returning m = len(kIn) as InputCount. Per-note generation is
// independent and runs in parallel; crypto/rand is safe for concurrent use.
func GenerateCommitmentSet(kIn, kOut []uint64) (*Set, error) {
	values := make([]uint64, 0, len(kIn)+len(kOut))
	values = append(values, kIn...)
	values = append(values, kOut...)

	notes := make([]*Note, len(values))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, k := range values {
		g.Go(func() error {
			n, err := generateCommitment(k)
			if err != nil {
				return fmt.Errorf("note %d: %w", i, err)
			}
			notes[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &Set{Notes: notes, InputCount: len(kIn)}, nil
}

// generateCommitment samples fresh private material for one note and derives
// it through the viewing key codec.
func generateCommitment(k uint64) (*Note, error) {
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
	return FromViewingKey(vk)
}

// Trapdoor is the batch-scoped secret scalar of a fake commitment set. It has
// no public constructor: only GenerateFakeCommitmentSet can mint one, which
// keeps the forging capability statically separate from production code. The
// scalar is read-only after sampling.
type Trapdoor struct {
	t fr.Element
}

// Scalar returns a copy of the trapdoor scalar, so tests can check forged
// commitments against the defining relation gamma^(t-k) = H^a.
func (td *Trapdoor) Scalar() fr.Element {
	return td.t
}

// GenerateFakeCommitmentSet forges a commitment set under a single shared
// trapdoor t: for each value k, a base note is generated as in the production
// path and its commitment is overwritten with mu = H^(a*(t-k)^-1), gamma = mu,
// sigma = gamma^k * H^a. A t = k collision fails with curve.ErrDivisionByZero;
// the caller must surface it as a fatal setup error, it is never silently
// resampled here.
func GenerateFakeCommitmentSet(kIn, kOut []uint64) (*Set, *Trapdoor, error) {
	t, err := curve.RandomScalar()
	if err != nil {
		return nil, nil, err
	}
	td := &Trapdoor{t: *t}

	values := make([]uint64, 0, len(kIn)+len(kOut))
	values = append(values, kIn...)
	values = append(values, kOut...)

	notes := make([]*Note, len(values))
	for i, k := range values {
		n, err := generateCommitment(k)
		if err != nil {
			return nil, nil, fmt.Errorf("note %d: %w", i, err)
		}
		if err := forgeCommitment(n, td); err != nil {
			return nil, nil, fmt.Errorf("note %d: %w", i, err)
		}
		notes[i] = n
	}
	return &Set{Notes: notes, InputCount: len(kIn)}, td, nil
}

// forgeCommitment overwrites a note's commitment using the trapdoor, so that
// gamma^(t-k) = H^a holds exactly.
func forgeCommitment(n *Note, td *Trapdoor) error {
	k := fr.NewElement(n.K)
	var d fr.Element
	d.Sub(&td.t, &k)
	dInv, err := curve.InvertScalar(&d)
	if err != nil {
		return fmt.Errorf("trapdoor collides with note value %d: %w", n.K, err)
	}
	var e fr.Element
	e.Mul(n.A, dInv)
	n.commit(curve.ScalarMul(curve.H(), &e))
	return nil
}
