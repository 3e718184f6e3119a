package note

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"mintproof/internal/curve"
)

func TestViewingKeyRoundTrip(t *testing.T) {
	a, err := curve.RandomNonZeroScalar()
	if err != nil {
		t.Fatalf("RandomNonZeroScalar failed: %v", err)
	}
	ephemeral, err := GenerateEphemeralKey()
	if err != nil {
		t.Fatalf("GenerateEphemeralKey failed: %v", err)
	}
	const k = uint64(123456)

	vk, err := EncodeViewingKey(a, k, ephemeral.PubKey())
	if err != nil {
		t.Fatalf("EncodeViewingKey failed: %v", err)
	}
	if len(vk) != ViewingKeyLength {
		t.Fatalf("viewing key length = %d, want %d", len(vk), ViewingKeyLength)
	}

	gotA, gotK, gotPub, err := vk.Decode()
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !gotA.Equal(a) {
		t.Errorf("decoded blinding scalar mismatch")
	}
	if gotK != k {
		t.Errorf("decoded value = %d, want %d", gotK, k)
	}
	if !bytes.Equal(gotPub.SerializeCompressed(), ephemeral.PubKey().SerializeCompressed()) {
		t.Errorf("decoded ephemeral key mismatch")
	}
}

func TestViewingKeyWrongLength(t *testing.T) {
	for _, n := range []int{0, 1, ViewingKeyLength - 1, ViewingKeyLength + 1, 2 * ViewingKeyLength} {
		vk := ViewingKey(make([]byte, n))
		if _, _, _, err := vk.Decode(); !errors.Is(err, ErrMalformedViewingKey) {
			t.Errorf("length %d: want ErrMalformedViewingKey, got %v", n, err)
		}
	}
}

func TestViewingKeyBadEphemeral(t *testing.T) {
	a, err := curve.RandomNonZeroScalar()
	if err != nil {
		t.Fatalf("RandomNonZeroScalar failed: %v", err)
	}
	ephemeral, err := GenerateEphemeralKey()
	if err != nil {
		t.Fatalf("GenerateEphemeralKey failed: %v", err)
	}
	vk, err := EncodeViewingKey(a, 1, ephemeral.PubKey())
	if err != nil {
		t.Fatalf("EncodeViewingKey failed: %v", err)
	}
	// An invalid compressed-key prefix makes the key unparseable.
	vk[blindingLength+valueLength] = 0xff
	if _, _, _, err := vk.Decode(); !errors.Is(err, ErrMalformedViewingKey) {
		t.Errorf("want ErrMalformedViewingKey for bad ephemeral key, got %v", err)
	}
}

func TestViewingKeyValueTooLarge(t *testing.T) {
	a, err := curve.RandomNonZeroScalar()
	if err != nil {
		t.Fatalf("RandomNonZeroScalar failed: %v", err)
	}
	ephemeral, err := GenerateEphemeralKey()
	if err != nil {
		t.Fatalf("GenerateEphemeralKey failed: %v", err)
	}
	if _, err := EncodeViewingKey(a, math.MaxUint32+1, ephemeral.PubKey()); !errors.Is(err, ErrValueOutOfRange) {
		t.Errorf("want ErrValueOutOfRange for oversized value, got %v", err)
	}
}
