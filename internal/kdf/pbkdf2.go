// Package kdf implements the fixed-parameter PBKDF2-HMAC-SHA-256
// passphrase stretch used to decrypt swap-file key records (spec §4.3,
// §6). Parameters are not configurable: this utility must be
// bit-exact with the legacy format.
package kdf

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// Salt is the fixed ASCII salt for every derivation this utility
	// performs. It is not a per-wallet secret; the passphrase is.
	Salt = "znn"
	// Iterations is the fixed PBKDF2 iteration count.
	Iterations = 120000
	// KeyLen is the derived output length in bytes.
	KeyLen = 32
)

// DeriveKey stretches passphrase into the 32-byte AES key.
func DeriveKey(passphrase []byte) []byte {
	return pbkdf2.Key(passphrase, []byte(Salt), Iterations, KeyLen, sha256.New)
}

// DeriveIVSeed stretches the code-point-reversed passphrase into the
// 32-byte IV seed; only the first 16 bytes are used as the AES-CBC IV.
// Reversal happens over Unicode code points, not raw bytes, so
// multi-byte UTF-8 passphrase characters are not corrupted.
func DeriveIVSeed(passphrase []byte) []byte {
	return pbkdf2.Key(ReverseCodePoints(passphrase), []byte(Salt), Iterations, KeyLen, sha256.New)
}

// ReverseCodePoints reverses the Unicode code points of s (interpreted
// as UTF-8 text) and returns the UTF-8 re-encoding. Bytes that are not
// part of a valid UTF-8 sequence each become U+FFFD in the []rune
// conversion, so such input is not preserved by the reversal.
func ReverseCodePoints(s []byte) []byte {
	runes := []rune(string(s))
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return []byte(string(runes))
}
