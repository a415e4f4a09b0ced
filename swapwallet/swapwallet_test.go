package swapwallet

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"math/big"
	"strings"
	"testing"

	"github.com/zenon-network/swapsign/internal/address"
	"github.com/zenon-network/swapsign/internal/kdf"
	"github.com/zenon-network/swapsign/internal/model"
	"github.com/zenon-network/swapsign/internal/secp256k1"
)

// encryptWIFForTest reproduces the swap-file encryption side (spec
// §4.3/§4.4 in reverse) so tests can build a well-formed ciphertext
// without a real legacy export tool.
func encryptWIFForTest(t *testing.T, passphrase []byte, wif string) string {
	t.Helper()

	key := kdf.DeriveKey(passphrase)
	ivSeed := kdf.DeriveIVSeed(passphrase)
	iv := ivSeed[:16]

	plaintext := []byte(wif)
	padLen := aes.BlockSize - len(plaintext)%aes.BlockSize
	padded := append(append([]byte{}, plaintext...), bytes.Repeat([]byte{byte(padLen)}, padLen)...)

	block, err := aes.NewCipher(key)
	if err != nil {
		t.Fatalf("aes.NewCipher: %v", err)
	}
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	return base64.StdEncoding.EncodeToString(ciphertext)
}

func buildSwapFileBody(t *testing.T, passphrase []byte) (string, *secp256k1.PrivateKey) {
	t.Helper()

	// compressed so the WIF serializes to exactly wifPlaintextLen (52)
	// characters, matching the fixed-length slice the decrypt pipeline
	// takes off the plaintext.
	legacyPk, err := secp256k1.NewPrivateKeyFromScalar(big.NewInt(7654321), true)
	if err != nil {
		t.Fatalf("NewPrivateKeyFromScalar: %v", err)
	}
	legacyPub, err := legacyPk.PublicKey()
	if err != nil {
		t.Fatalf("PublicKey: %v", err)
	}
	legacyPubKeyB64 := base64.StdEncoding.EncodeToString(legacyPub.Encode(false))

	wif := legacyPk.WIF(0x80)
	if len(wif) != wifPlaintextLen {
		t.Fatalf("test setup: WIF length = %d, want %d", len(wif), wifPlaintextLen)
	}

	encB64 := encryptWIFForTest(t, passphrase, wif)

	fileBody := model.SwapFileBody{
		legacyPubKeyB64: [2]string{encB64, strings.Repeat("ab", 32)},
	}
	raw, err := json.Marshal(fileBody)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	return string(raw), legacyPk
}

func buildSwapFile(t *testing.T, body string) []byte {
	t.Helper()
	sum := sha256.Sum256([]byte(body))
	return []byte(body + hex.EncodeToString(sum[:]))
}

func TestParseLoadsEntries(t *testing.T) {
	passphrase := []byte("correct horse battery staple")
	body, _ := buildSwapFileBody(t, passphrase)
	file := buildSwapFile(t, body)

	wallet, err := Parse(file)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(wallet.Entries()) != 1 {
		t.Fatalf("got %d entries, want 1", len(wallet.Entries()))
	}

	entry := wallet.Entries()[0]
	if entry.DerivedPubKeyB64() != "" {
		t.Error("derivedPubKeyB64 should be empty before any sign call")
	}
}

func TestParseRejectsFlippedChecksum(t *testing.T) {
	passphrase := []byte("correct horse battery staple")
	body, _ := buildSwapFileBody(t, passphrase)
	file := buildSwapFile(t, body)

	mutated := append([]byte{}, file...)
	last := mutated[len(mutated)-1]
	if last == '0' {
		mutated[len(mutated)-1] = '1'
	} else {
		mutated[len(mutated)-1] = '0'
	}

	_, err := Parse(mutated)
	if !model.IsKind(err, model.KindInvalidChecksum) {
		t.Errorf("error kind = %v, want KindInvalidChecksum", err)
	}
}

func TestLoadRejectsWrongExtension(t *testing.T) {
	_, err := Load("wallet.txt")
	if !model.IsKind(err, model.KindInvalidParameter) {
		t.Errorf("error kind = %v, want KindInvalidParameter", err)
	}
}

func TestSignAssetsEndToEnd(t *testing.T) {
	passphrase := []byte("correct horse battery staple")
	body, legacyPk := buildSwapFileBody(t, passphrase)
	file := buildSwapFile(t, body)

	wallet, err := Parse(file)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	entry := wallet.Entries()[0]

	legacyPub, err := legacyPk.PublicKey()
	if err != nil {
		t.Fatalf("PublicKey: %v", err)
	}
	wantAddress := address.FromPublicKey(legacyPub)
	if !entry.LegacyAddress().Equal(wantAddress) {
		t.Error("entry's legacy address does not match the legacy public key")
	}

	recipient := "z1qxyexamplerecipient"
	sigB64, err := entry.SignAssets(passphrase, recipient)
	if err != nil {
		t.Fatalf("SignAssets: %v", err)
	}
	if sigB64 == "" {
		t.Fatal("SignAssets returned an empty signature")
	}

	raw, err := base64.StdEncoding.DecodeString(sigB64)
	if err != nil {
		t.Fatalf("base64 decode: %v", err)
	}
	if len(raw) != 65 {
		t.Fatalf("decoded signature length = %d, want 65", len(raw))
	}
	if raw[0] < 27 || raw[0] > 34 {
		t.Errorf("signature header byte %d out of range", raw[0])
	}

	if entry.DerivedPubKeyB64() == "" {
		t.Error("derivedPubKeyB64 should be populated after a successful sign")
	}
}

func TestSignAssetsWrongPassphraseIsInvalidKey(t *testing.T) {
	passphrase := []byte("correct horse battery staple")
	body, _ := buildSwapFileBody(t, passphrase)
	file := buildSwapFile(t, body)

	wallet, err := Parse(file)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	entry := wallet.Entries()[0]

	_, err = entry.SignAssets([]byte("wrong passphrase"), "z1qxy")
	if !model.IsKind(err, model.KindInvalidKey) {
		t.Errorf("error kind = %v, want KindInvalidKey", err)
	}
}

func TestCanDecryptWithIsIdempotent(t *testing.T) {
	passphrase := []byte("correct horse battery staple")
	body, _ := buildSwapFileBody(t, passphrase)
	file := buildSwapFile(t, body)

	wallet, err := Parse(file)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	entry := wallet.Entries()[0]

	for i := 0; i < 3; i++ {
		if err := entry.CanDecryptWith(passphrase); err != nil {
			t.Fatalf("CanDecryptWith call %d: %v", i, err)
		}
	}

	for i := 0; i < 3; i++ {
		if err := entry.CanDecryptWith([]byte("definitely wrong")); err == nil {
			t.Fatalf("CanDecryptWith call %d: expected error for wrong passphrase", i)
		}
	}
}
