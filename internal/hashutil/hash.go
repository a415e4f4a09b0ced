// Package hashutil implements the small set of fixed hash functions
// the swap-signing protocol builds on: SHA-256, double-SHA-256, and
// hash160 (RIPEMD160 of SHA256), the standard pubkey-to-hash function
// inherited from the Bitcoin-style address scheme this format reuses.
package hashutil

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160"
)

// SHA256 returns the SHA-256 digest of b.
func SHA256(b []byte) [32]byte {
	return sha256.Sum256(b)
}

// DoubleSHA256 returns SHA256(SHA256(b)).
func DoubleSHA256(b []byte) [32]byte {
	first := sha256.Sum256(b)
	return sha256.Sum256(first[:])
}

// Hash160 returns RIPEMD160(SHA256(b)), the 20-byte pubkey hash used by
// address derivation.
func Hash160(b []byte) [20]byte {
	first := sha256.Sum256(b)

	h := ripemd160.New()
	h.Write(first[:])

	var out [20]byte
	copy(out[:], h.Sum(nil))
	return out
}
