// Package swapwallet implements the swap-file codec and attestation
// signing API that sit on top of the secp256k1, aescbc, kdf, address,
// and message packages (spec §4.8/§4.9).
package swapwallet

import (
	"encoding/base64"
	"sync"

	"github.com/zenon-network/swapsign/internal/aescbc"
	"github.com/zenon-network/swapsign/internal/address"
	"github.com/zenon-network/swapsign/internal/kdf"
	"github.com/zenon-network/swapsign/internal/model"
	"github.com/zenon-network/swapsign/internal/secp256k1"
)

// wifPlaintextLen is the fixed number of leading bytes of the decrypted
// payload taken as the WIF private-key string (spec §4.4).
const wifPlaintextLen = 52

// Entry is one swap-file record held in memory (spec §3 SwapEntry).
//
// Per spec §9's preserved open question, the entry-level public-key
// field and the post-sign derivedPubKeyB64 are the same storage slot:
// it starts empty at load time (even though legacyPubKeyB64, the JSON
// map key, is already known) and is populated only by a successful
// sign call.
type Entry struct {
	legacyPubKeyB64     string
	legacyAddress       address.Address
	keyIDHashHex        string
	encryptedPrivKeyB64 string

	mu              sync.Mutex
	derivedPubKeyB64 string
}

// LegacyAddress returns the address derived from the legacy public key
// at load time.
func (e *Entry) LegacyAddress() address.Address { return e.legacyAddress }

// KeyIDHashHex returns the opaque identifier carried through from the
// swap file, uninterpreted by this library.
func (e *Entry) KeyIDHashHex() string { return e.keyIDHashHex }

// DerivedPubKeyB64 returns the cached post-sign derived public key, or
// the empty string if the entry has never been successfully signed.
func (e *Entry) DerivedPubKeyB64() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.derivedPubKeyB64
}

// decrypt recovers the entry's private key from passphrase. Every
// failure along the way — malformed Base64, AES/padding failure, or a
// WIF that fails to parse — is coalesced into a single KindInvalidKey
// error so the caller cannot distinguish which step failed (spec §7).
func (e *Entry) decrypt(passphrase []byte) (*secp256k1.PrivateKey, error) {
	pk, err := e.tryDecrypt(passphrase)
	if err != nil {
		// Every failure here — including a KindInvalidKey from
		// secp256k1.ParseWIF or the plaintext-length check below — is
		// replaced by the single canonical error, with no cause attached.
		// Letting ParseWIF's own message through would distinguish "bad
		// passphrase" from "bad WIF" and leak a decryption oracle.
		return nil, model.NewError(model.KindInvalidKey,
			"Invalid decryption passphrase, please check again")
	}
	return pk, nil
}

func (e *Entry) tryDecrypt(passphrase []byte) (*secp256k1.PrivateKey, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(e.encryptedPrivKeyB64)
	if err != nil {
		return nil, err
	}

	key := kdf.DeriveKey(passphrase)
	ivSeed := kdf.DeriveIVSeed(passphrase)
	iv := ivSeed[:16]

	plaintext, err := aescbc.Decrypt(key, iv, ciphertext)
	if err != nil {
		return nil, err
	}
	if len(plaintext) < wifPlaintextLen {
		return nil, model.NewError(model.KindInvalidKey, "decrypted plaintext too short to hold a WIF")
	}

	wif := string(plaintext[:wifPlaintextLen])
	return secp256k1.ParseWIF(wif)
}

// setDerivedPubKeyB64 records the uncompressed-DER encoding of pub as
// Base64 on the entry. Concurrent sign calls racing on the same entry
// are benign: every successful derivation from the same private key
// yields identical bytes (spec §5 ordering note).
func (e *Entry) setDerivedPubKeyB64(pub *secp256k1.PublicKey) string {
	encoded := base64.StdEncoding.EncodeToString(pub.Encode(false))
	e.mu.Lock()
	e.derivedPubKeyB64 = encoded
	e.mu.Unlock()
	return encoded
}
