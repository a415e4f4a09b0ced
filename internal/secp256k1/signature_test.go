package secp256k1

import (
	"crypto/sha256"
	"math/big"
	"testing"
)

func testHash(msg string) [32]byte {
	return sha256.Sum256([]byte(msg))
}

func TestSignProducesLowS(t *testing.T) {
	pk, err := NewPrivateKeyFromScalar(big.NewInt(13579), true)
	if err != nil {
		t.Fatalf("NewPrivateKeyFromScalar: %v", err)
	}
	hash := testHash("low-s message")

	sig, err := pk.Sign(hash)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if sig.S.Cmp(lowSThreshold) > 0 {
		t.Errorf("signature S exceeds the low-S threshold: s=%x", sig.S)
	}
}

func TestSignVerifyRoundTrip(t *testing.T) {
	pk, err := NewPrivateKeyFromScalar(big.NewInt(271828), false)
	if err != nil {
		t.Fatalf("NewPrivateKeyFromScalar: %v", err)
	}
	pub, err := pk.PublicKey()
	if err != nil {
		t.Fatalf("PublicKey: %v", err)
	}
	hash := testHash("verify me")

	sig, err := pk.Sign(hash)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	ok, err := sig.Verify(hash, pub)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Error("Verify returned false for a freshly produced signature")
	}

	flippedHash := hash
	flippedHash[0] ^= 0xff
	ok, err = sig.Verify(flippedHash, pub)
	if err != nil {
		t.Fatalf("Verify with flipped hash: %v", err)
	}
	if ok {
		t.Error("Verify returned true for a tampered message hash")
	}
}

func TestVerifyUninitializedSignatureErrors(t *testing.T) {
	var sig Signature
	pk, _ := NewPrivateKeyFromScalar(big.NewInt(42), false)
	pub, _ := pk.PublicKey()

	_, err := sig.Verify(testHash("x"), pub)
	if err == nil {
		t.Error("expected an error verifying an uninitialized signature")
	}
}

func TestRecoveryConsistency(t *testing.T) {
	pk, err := NewPrivateKeyFromScalar(big.NewInt(31415926), true)
	if err != nil {
		t.Fatalf("NewPrivateKeyFromScalar: %v", err)
	}
	pub, err := pk.PublicKey()
	if err != nil {
		t.Fatalf("PublicKey: %v", err)
	}
	hash := testHash("recover me")

	sig, err := pk.Sign(hash)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	recovered, err := RecoverPublicKey(sig, hash, pub.Compressed())
	if err != nil {
		t.Fatalf("RecoverPublicKey: %v", err)
	}
	if !recovered.Equal(pub) {
		t.Error("recovered public key does not match the signer's public key")
	}
}

func TestCompactEncodeDecodeRoundTrip(t *testing.T) {
	pk, err := NewPrivateKeyFromScalar(big.NewInt(161803), false)
	if err != nil {
		t.Fatalf("NewPrivateKeyFromScalar: %v", err)
	}
	hash := testHash("compact round trip")

	sig, err := pk.Sign(hash)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	encoded, err := sig.EncodeCompact()
	if err != nil {
		t.Fatalf("EncodeCompact: %v", err)
	}
	if len(encoded) != 65 {
		t.Fatalf("compact signature length = %d, want 65", len(encoded))
	}
	if encoded[0] < 27 || encoded[0] > 34 {
		t.Errorf("compact header byte %d out of expected range", encoded[0])
	}

	decoded, err := DecodeCompact(encoded)
	if err != nil {
		t.Fatalf("DecodeCompact: %v", err)
	}
	if decoded.R.Cmp(sig.R) != 0 || decoded.S.Cmp(sig.S) != 0 {
		t.Error("decoded (r, s) does not match the original signature")
	}
	if decoded.I != sig.I || decoded.Compressed != sig.Compressed {
		t.Error("decoded (i, compressed) does not match the original signature")
	}
}

func TestDEREncodeDecodeRoundTrip(t *testing.T) {
	pk, err := NewPrivateKeyFromScalar(big.NewInt(2718281828), true)
	if err != nil {
		t.Fatalf("NewPrivateKeyFromScalar: %v", err)
	}
	hash := testHash("der round trip")

	sig, err := pk.Sign(hash)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	der := sig.EncodeDER()
	decoded, err := DecodeDER(der)
	if err != nil {
		t.Fatalf("DecodeDER: %v", err)
	}
	if decoded.R.Cmp(sig.R) != 0 || decoded.S.Cmp(sig.S) != 0 {
		t.Error("DER round trip changed (r, s)")
	}
}

func TestSignIsDeterministic(t *testing.T) {
	pk, err := NewPrivateKeyFromScalar(big.NewInt(555), false)
	if err != nil {
		t.Fatalf("NewPrivateKeyFromScalar: %v", err)
	}
	hash := testHash("deterministic nonce")

	sig1, err := pk.Sign(hash)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	sig2, err := pk.Sign(hash)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if sig1.R.Cmp(sig2.R) != 0 || sig1.S.Cmp(sig2.S) != 0 {
		t.Error("Sign produced different signatures for identical inputs; RFC 6979 nonce is not deterministic")
	}
}
