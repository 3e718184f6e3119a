// keys.go - Owner and ephemeral key material.
//
// Notes carry secp256k1 public keys: a fresh ephemeral keypair per note, and
// the owner's key, recoverable from the ephemeral key material by the owner.

package note

import (
	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// GenerateEphemeralKey samples a fresh secp256k1 keypair for a note.
func GenerateEphemeralKey() (*secp256k1.PrivateKey, error) {
	return secp256k1.GeneratePrivateKey()
}

// OwnerKeyFromSeed derives an owner public key from a raw secret seed.
func OwnerKeyFromSeed(seed []byte) *secp256k1.PublicKey {
	return secp256k1.PrivKeyFromBytes(seed).PubKey()
}

// RecoverOwnerKey recovers a public key from compressed ephemeral key bytes.
func RecoverOwnerKey(ephemeral []byte) (*secp256k1.PublicKey, error) {
	return secp256k1.ParsePubKey(ephemeral)
}
