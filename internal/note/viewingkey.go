// viewingkey.go - Fixed-width viewing key codec.
//
// A viewing key packs a note's private material into one opaque byte string:
// the 32-byte big-endian blinding scalar, the 4-byte big-endian value, and the
// 33-byte compressed ephemeral public key, in that order. 69 bytes total; any
// other length is malformed.

package note

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const (
	blindingLength  = 32
	valueLength     = 4
	ephemeralLength = 33

	// ViewingKeyLength is the fixed size of an encoded viewing key.
	ViewingKeyLength = blindingLength + valueLength + ephemeralLength
)

var (
	// ErrMalformedViewingKey is returned when a viewing key has the wrong shape.
	ErrMalformedViewingKey = errors.New("malformed viewing key")

	// ErrValueOutOfRange is returned when a note value does not fit the
	// codec's 4-byte value field. This is a caller error, not wire damage.
	ErrValueOutOfRange = errors.New("note value out of range")
)

// ViewingKey is the packed private representation of a note. It is transient:
// produced, decoded into a Note, and not retained.
type ViewingKey []byte

// EncodeViewingKey packs the blinding scalar, value and compressed ephemeral
// public key into a viewing key.
func EncodeViewingKey(a *fr.Element, k uint64, ephemeral *secp256k1.PublicKey) (ViewingKey, error) {
	if k > math.MaxUint32 {
		return nil, fmt.Errorf("value %d does not fit %d bytes: %w", k, valueLength, ErrValueOutOfRange)
	}
	vk := make([]byte, 0, ViewingKeyLength)
	aBytes := a.Bytes()
	vk = append(vk, aBytes[:]...)
	vk = binary.BigEndian.AppendUint32(vk, uint32(k))
	vk = append(vk, ephemeral.SerializeCompressed()...)
	return ViewingKey(vk), nil
}

// Decode unpacks a viewing key into its three fields. It is the exact inverse
// of EncodeViewingKey and fails with ErrMalformedViewingKey on anything that
// is not a well-formed 69-byte key.
func (vk ViewingKey) Decode() (*fr.Element, uint64, *secp256k1.PublicKey, error) {
	if len(vk) != ViewingKeyLength {
		return nil, 0, nil, fmt.Errorf("%w: got %d bytes, want %d", ErrMalformedViewingKey, len(vk), ViewingKeyLength)
	}
	var a fr.Element
	a.SetBytes(vk[:blindingLength])
	k := uint64(binary.BigEndian.Uint32(vk[blindingLength : blindingLength+valueLength]))
	ephemeral, err := secp256k1.ParsePubKey(vk[blindingLength+valueLength:])
	if err != nil {
		return nil, 0, nil, fmt.Errorf("%w: bad ephemeral key: %v", ErrMalformedViewingKey, err)
	}
	return &a, k, ephemeral, nil
}
