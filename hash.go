package htlc

import (
	"crypto/sha256"

	"github.com/btcsuite/btcutil"
	"golang.org/x/crypto/ripemd160"
)

const (
	// SecretHashSize is the size in bytes of a secret commitment.
	SecretHashSize = sha256.Size

	// KeyHashSize is the size in bytes of an identity commitment.
	KeyHashSize = ripemd160.Size
)

// HashBytes computes the sha256 commitment of a secret preimage.
func HashBytes(preimage []byte) []byte {
	hash := sha256.Sum256(preimage)
	return hash[:]
}

// KeyHash computes the HASH160 commitment of a raw identity, that is
// ripemd160(sha256(raw)).
func KeyHash(raw []byte) []byte {
	return btcutil.Hash160(raw)
}
