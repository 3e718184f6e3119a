package mint

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"mintproof/internal/curve"
	"mintproof/internal/note"
)

var testSender = []byte{
	0xde, 0xad, 0xbe, 0xef, 0x00, 0x11, 0x22, 0x33, 0x44, 0x55,
	0x66, 0x77, 0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff,
}

// mintSet builds a well-formed 4-note set: 1 input of 50 against outputs
// 30 + 10 + 10.
func mintSet(t *testing.T) *note.Set {
	t.Helper()
	set, _, err := note.GenerateFakeCommitmentSet([]uint64{50}, []uint64{30, 10, 10})
	if err != nil {
		t.Fatalf("GenerateFakeCommitmentSet failed: %v", err)
	}
	return set
}

func TestConstructProof(t *testing.T) {
	set := mintSet(t)
	proof, err := ConstructProof(set, testSender)
	if err != nil {
		t.Fatalf("ConstructProof failed: %v", err)
	}
	if len(proof.Rows) != 4 {
		t.Fatalf("transcript rows = %d, want 4", len(proof.Rows))
	}

	challenge := proof.ChallengeHex()
	if len(challenge) != 66 || !strings.HasPrefix(challenge, "0x") {
		t.Errorf("challenge = %q, want 0x followed by 64 hex digits", challenge)
	}

	order := curve.GroupOrder()
	last := len(proof.Rows) - 1
	var balance fr.Element
	for i := range proof.Rows {
		r := &proof.Rows[i]
		if i != last && r.KBar.IsZero() {
			t.Errorf("row %d: kBar must be non-zero", i)
		}
		if r.KBar.BigInt(new(big.Int)).Cmp(order) >= 0 {
			t.Errorf("row %d: kBar not reduced below the group order", i)
		}
		if r.ABar.BigInt(new(big.Int)).Cmp(order) >= 0 {
			t.Errorf("row %d: aBar not reduced below the group order", i)
		}
		if !r.Gamma.IsOnCurve() || !r.Sigma.IsOnCurve() {
			t.Errorf("row %d: commitment components should be on the curve", i)
		}
		if !r.Gamma.Equal(set.Notes[i].Gamma) || !r.Sigma.Equal(set.Notes[i].Sigma) {
			t.Errorf("row %d: commitments should be emitted in note order", i)
		}
		if i < set.InputCount {
			balance.Add(&balance, &r.KBar)
		} else {
			balance.Sub(&balance, &r.KBar)
		}
	}
	// The blinded value responses telescope to zero across inputs and outputs.
	if !balance.IsZero() {
		t.Errorf("signed kBar responses should sum to zero")
	}
}

func TestConstructProofProductionSet(t *testing.T) {
	set, err := note.GenerateCommitmentSet([]uint64{50}, []uint64{30, 10, 10})
	if err != nil {
		t.Fatalf("GenerateCommitmentSet failed: %v", err)
	}
	proof, err := ConstructProof(set, testSender)
	if err != nil {
		t.Fatalf("ConstructProof failed on a production set: %v", err)
	}
	if len(proof.Rows) != set.Size() {
		t.Errorf("transcript rows = %d, want %d", len(proof.Rows), set.Size())
	}
}

func TestChallengeDeterminism(t *testing.T) {
	set := mintSet(t)
	c1 := computeChallenge(set.Notes, testSender)
	c2 := computeChallenge(set.Notes, testSender)
	if !c1.Equal(c2) {
		t.Errorf("challenge should be deterministic for a fixed set and sender")
	}

	other := append([]byte{}, testSender...)
	other[0] ^= 0x01
	c3 := computeChallenge(set.Notes, other)
	if c1.Equal(c3) {
		t.Errorf("challenge should bind the sender identifier")
	}

	// Note order is part of the transcript.
	reversed := []*note.Note{set.Notes[1], set.Notes[0], set.Notes[3], set.Notes[2]}
	c4 := computeChallenge(reversed, testSender)
	if c1.Equal(c4) {
		t.Errorf("challenge should bind the note order")
	}
}

func TestConstructProofNoteCount(t *testing.T) {
	set, _, err := note.GenerateFakeCommitmentSet([]uint64{50}, nil)
	if err != nil {
		t.Fatalf("GenerateFakeCommitmentSet failed: %v", err)
	}
	if _, err := ConstructProof(set, testSender); !errors.Is(err, ErrIncorrectNoteCount) {
		t.Errorf("single note: want ErrIncorrectNoteCount, got %v", err)
	}
	if _, err := ConstructProof(nil, testSender); !errors.Is(err, ErrIncorrectNoteCount) {
		t.Errorf("nil set: want ErrIncorrectNoteCount, got %v", err)
	}
}

func TestConstructProofNotOnCurve(t *testing.T) {
	set := mintSet(t)
	set.Notes[1].Gamma.X = new(big.Int).Add(curve.FieldModulus(), big.NewInt(100))
	if _, err := ConstructProof(set, testSender); !errors.Is(err, ErrNotOnCurve) {
		t.Errorf("want ErrNotOnCurve, got %v", err)
	}
}

func TestConstructProofPointAtInfinity(t *testing.T) {
	set := mintSet(t)
	set.Notes[2].Gamma = curve.Infinity()
	if _, err := ConstructProof(set, testSender); !errors.Is(err, ErrPointAtInfinity) {
		t.Errorf("want ErrPointAtInfinity, got %v", err)
	}
}

func TestConstructProofZeroBlinding(t *testing.T) {
	set := mintSet(t)
	set.Notes[0].A = &fr.Element{}
	if _, err := ConstructProof(set, testSender); !errors.Is(err, ErrViewingKeyMalformed) {
		t.Errorf("want ErrViewingKeyMalformed, got %v", err)
	}
}

func TestConstructProofValueTooBig(t *testing.T) {
	set := mintSet(t)
	set.Notes[3].K = curve.KMax + 1
	if _, err := ConstructProof(set, testSender); !errors.Is(err, ErrNoteValueTooBig) {
		t.Errorf("want ErrNoteValueTooBig, got %v", err)
	}
}

func TestValidationOrderFirstFailureWins(t *testing.T) {
	// Note 0 is off-curve, note 1 has a zero blinding scalar; the earlier
	// note's violation must be the one reported.
	set := mintSet(t)
	set.Notes[0].Gamma.X = new(big.Int).Add(curve.FieldModulus(), big.NewInt(100))
	set.Notes[1].A = &fr.Element{}
	if _, err := ConstructProof(set, testSender); !errors.Is(err, ErrNotOnCurve) {
		t.Errorf("want ErrNotOnCurve from note 0, got %v", err)
	}
}

func TestTranscriptEncoding(t *testing.T) {
	set := mintSet(t)
	proof, err := ConstructProof(set, testSender)
	if err != nil {
		t.Fatalf("ConstructProof failed: %v", err)
	}
	data := proof.Data()
	if len(data) != len(proof.Rows) {
		t.Fatalf("encoded rows = %d, want %d", len(data), len(proof.Rows))
	}
	for i, row := range data {
		for j, word := range row {
			if len(word) != 66 || !strings.HasPrefix(word, "0x") {
				t.Errorf("row %d word %d = %q, want 0x plus 64 hex digits", i, j, word)
			}
		}
	}

	blob, err := proof.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}
	if !strings.Contains(string(blob), proof.ChallengeHex()) {
		t.Errorf("serialized transcript should contain the challenge")
	}
}
