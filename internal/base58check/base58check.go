// Package base58check implements the Bitcoin-standard Base58 alphabet
// codec and its checksum-protected Base58Check wrapper. This is
// hand-rolled rather than built on a pack third-party base58 library
// because the spec requires the decode error to name the offending
// character and its position (see DESIGN.md); no library in the
// dependency corpus exposes that.
package base58check

import (
	"fmt"
	"math/big"

	"github.com/zenon-network/swapsign/internal/hashutil"
	"github.com/zenon-network/swapsign/internal/model"
)

// Alphabet is the Bitcoin-standard base-58 alphabet: digits and
// letters with the visually ambiguous 0, O, I, l removed.
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

const checksumLen = 4

var (
	bigRadix = big.NewInt(58)
	bigZero  = big.NewInt(0)

	// alphabetIndex maps a byte to its position in Alphabet, or -1.
	alphabetIndex [256]int8
)

func init() {
	for i := range alphabetIndex {
		alphabetIndex[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		alphabetIndex[Alphabet[i]] = int8(i)
	}
}

// Decode reverses Encode: classical base-58 to base-256 conversion via
// repeated division, preserving one leading zero byte per leading '1'
// character. It fails with a KindIllegalCharacter error naming the
// offending character and its (0-indexed) position when s contains a
// byte outside Alphabet.
func Decode(s string) ([]byte, error) {
	value := new(big.Int)
	for i := 0; i < len(s); i++ {
		idx := alphabetIndex[s[i]]
		if idx < 0 {
			return nil, model.NewError(model.KindIllegalCharacter,
				fmt.Sprintf("illegal base58 character %q at position %d", s[i], i))
		}
		value.Mul(value, bigRadix)
		value.Add(value, big.NewInt(int64(idx)))
	}

	decoded := value.Bytes()

	leadingZeros := 0
	for leadingZeros < len(s) && s[leadingZeros] == '1' {
		leadingZeros++
	}

	out := make([]byte, leadingZeros+len(decoded))
	copy(out[leadingZeros:], decoded)
	return out, nil
}

// Encode converts b to its base-58 representation, preserving one
// leading '1' character per leading zero byte.
func Encode(b []byte) string {
	value := new(big.Int).SetBytes(b)

	var out []byte
	mod := new(big.Int)
	for value.Cmp(bigZero) > 0 {
		value.DivMod(value, bigRadix, mod)
		out = append(out, Alphabet[mod.Int64()])
	}

	for i := 0; i < len(b) && b[i] == 0; i++ {
		out = append(out, '1')
	}

	// reverse in place
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return string(out)
}

// DecodeChecked decodes s, splits the final 4 bytes off as a checksum,
// and verifies it against doubleSHA256(payload)[0:4]. It fails with
// KindInvalidParameter if the decoded length is too short to hold a
// checksum, or KindInvalidChecksum if the checksum does not match.
func DecodeChecked(s string) ([]byte, error) {
	decoded, err := Decode(s)
	if err != nil {
		return nil, err
	}
	if len(decoded) < checksumLen {
		return nil, model.NewError(model.KindInvalidParameter, "base58check payload too short")
	}

	cut := len(decoded) - checksumLen
	payload := decoded[:cut]
	checksum := decoded[cut:]

	expected := hashutil.DoubleSHA256(payload)
	for i := 0; i < checksumLen; i++ {
		if checksum[i] != expected[i] {
			return nil, model.NewError(model.KindInvalidChecksum, "invalid base58check checksum")
		}
	}

	return payload, nil
}

// EncodeChecked appends the 4-byte double-SHA-256 checksum of payload
// and base58-encodes the result.
func EncodeChecked(payload []byte) string {
	checksum := hashutil.DoubleSHA256(payload)
	buf := make([]byte, 0, len(payload)+checksumLen)
	buf = append(buf, payload...)
	buf = append(buf, checksum[:checksumLen]...)
	return Encode(buf)
}
