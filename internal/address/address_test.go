package address

import (
	"math/big"
	"testing"

	"github.com/zenon-network/swapsign/internal/secp256k1"
)

func testAddress(t *testing.T) Address {
	t.Helper()
	pk, err := secp256k1.NewPrivateKeyFromScalar(big.NewInt(24601), true)
	if err != nil {
		t.Fatalf("NewPrivateKeyFromScalar: %v", err)
	}
	pub, err := pk.PublicKey()
	if err != nil {
		t.Fatalf("PublicKey: %v", err)
	}
	return FromPublicKey(pub)
}

func TestFromPublicKeyRoundTripsThroughBase58(t *testing.T) {
	a := testAddress(t)
	s := a.String()

	parsed, err := FromBase58(s)
	if err != nil {
		t.Fatalf("FromBase58(%q): %v", s, err)
	}
	if !a.Equal(parsed) {
		t.Error("round-tripped address does not equal the original")
	}
}

func TestAddressStringLengthIs34(t *testing.T) {
	a := testAddress(t)
	s := a.String()
	if len(s) != 34 {
		t.Errorf("address string length = %d, want 34", len(s))
	}
}

func TestFromBase58RejectsUnexpectedLength(t *testing.T) {
	if _, err := FromBase58("tooshort"); err == nil {
		t.Error("expected error for a string of disallowed length")
	}
}

func TestFromBase58RejectsBadChecksum(t *testing.T) {
	a := testAddress(t)
	s := []rune(a.String())
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] != '1' {
			s[i] = '1'
			break
		}
	}
	if _, err := FromBase58(string(s)); err == nil {
		t.Error("expected a checksum error after mutating the encoded address")
	}
}
