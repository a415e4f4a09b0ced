package base58check

import (
	"bytes"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := [][]byte{
		{},
		{0x00},
		{0x00, 0x00, 0x01, 0x02, 0x03},
		{0xff, 0xee, 0xdd, 0xcc},
		[]byte("hello base58"),
	}

	for _, b := range cases {
		encoded := Encode(b)
		decoded, err := Decode(encoded)
		if err != nil {
			t.Fatalf("Decode(%x) returned error: %v", b, err)
		}
		if !bytes.Equal(decoded, b) {
			t.Errorf("round trip mismatch: got %x, want %x", decoded, b)
		}
	}
}

func TestDecodeIllegalCharacter(t *testing.T) {
	_, err := Decode("0OIl")
	if err == nil {
		t.Fatal("expected an illegal-character error, got nil")
	}
}

func TestEncodeChecked_DecodeChecked_RoundTrip(t *testing.T) {
	payload := []byte{0x50, 1, 2, 3, 4, 5}
	encoded := EncodeChecked(payload)

	decoded, err := DecodeChecked(encoded)
	if err != nil {
		t.Fatalf("DecodeChecked returned error: %v", err)
	}
	if !bytes.Equal(decoded, payload) {
		t.Errorf("got %x, want %x", decoded, payload)
	}
}

func TestDecodeCheckedBadChecksum(t *testing.T) {
	payload := []byte{0x50, 1, 2, 3, 4, 5}
	encoded := EncodeChecked(payload)

	mutated := []rune(encoded)
	for i := len(mutated) - 1; i >= 0; i-- {
		if mutated[i] != '1' {
			mutated[i] = '1'
			break
		}
	}

	_, err := DecodeChecked(string(mutated))
	if err == nil {
		t.Fatal("expected a checksum error after mutating the encoded string")
	}
}
