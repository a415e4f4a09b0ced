package message

import (
	"math/big"
	"testing"

	"github.com/zenon-network/swapsign/internal/secp256k1"
)

func TestSignVerifyFromPublicKeyRoundTrip(t *testing.T) {
	pk, err := secp256k1.NewPrivateKeyFromScalar(big.NewInt(112358), true)
	if err != nil {
		t.Fatalf("NewPrivateKeyFromScalar: %v", err)
	}
	pub, err := pk.PublicKey()
	if err != nil {
		t.Fatalf("PublicKey: %v", err)
	}

	body := []byte("ZNN swap retrieve assets AAAA z1qxyexample")
	sigB64, err := Sign(pk, body)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	ok, err := VerifyFromPublicKey(pub, body, sigB64)
	if err != nil {
		t.Fatalf("VerifyFromPublicKey: %v", err)
	}
	if !ok {
		t.Error("VerifyFromPublicKey returned false for a matching signature/body/pubkey")
	}
}

func TestVerifyFromPublicKeyRejectsTamperedBody(t *testing.T) {
	pk, _ := secp256k1.NewPrivateKeyFromScalar(big.NewInt(132134), false)
	pub, _ := pk.PublicKey()

	body := []byte("original body")
	sigB64, err := Sign(pk, body)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	ok, err := VerifyFromPublicKey(pub, []byte("tampered body"), sigB64)
	if err != nil {
		t.Fatalf("VerifyFromPublicKey: %v", err)
	}
	if ok {
		t.Error("VerifyFromPublicKey returned true for a tampered message body")
	}
}

func TestVerifyFromPublicKeyRejectsWrongKey(t *testing.T) {
	pk, _ := secp256k1.NewPrivateKeyFromScalar(big.NewInt(415926), false)
	otherPk, _ := secp256k1.NewPrivateKeyFromScalar(big.NewInt(535897), false)
	otherPub, _ := otherPk.PublicKey()

	body := []byte("body signed by pk, checked against otherPub")
	sigB64, err := Sign(pk, body)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	ok, err := VerifyFromPublicKey(otherPub, body, sigB64)
	if err != nil {
		t.Fatalf("VerifyFromPublicKey: %v", err)
	}
	if ok {
		t.Error("VerifyFromPublicKey returned true for the wrong public key")
	}
}
