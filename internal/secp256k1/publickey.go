package secp256k1

import "math/big"

// PublicKey is a point on secp256k1, guaranteed to be on-curve, not
// the point at infinity, and not to have a zero y-coordinate (spec
// §3). Compressed governs the default serialization length returned
// by DER; Encode takes the preference explicitly.
type PublicKey struct {
	x, y       *big.Int
	compressed bool
}

// NewPublicKey constructs a PublicKey from affine coordinates,
// rejecting the point at infinity, a zero y-coordinate, and any point
// not on the curve.
//
// Per spec §9 / _checkIfOnCurve: the original on-curve check returns a
// boolean whose value is always effectively false for valid points
// while throwing on mismatch; the return value is unused here too —
// only the error return (the "throw") is observable.
func NewPublicKey(x, y *big.Int, compressed bool) (*PublicKey, error) {
	p := Curve().Params().P

	if x.Sign() < 0 || x.Cmp(p) >= 0 {
		return nil, errInvalidPoint("x-coordinate out of range")
	}
	if y.Sign() == 0 {
		return nil, errInvalidPoint("zero y-coordinate")
	}
	if isInfinity(x, y) {
		return nil, errInvalidPoint("point at infinity")
	}
	if !Curve().IsOnCurve(x, y) {
		return nil, errInvalidPoint("point is not on the curve")
	}
	return &PublicKey{x: new(big.Int).Set(x), y: new(big.Int).Set(y), compressed: compressed}, nil
}

// ParseDER parses a public key from its DER-ish wire form (spec §4.5):
//   - 65 bytes, prefix 0x04: uncompressed 04||X||Y
//   - 33 bytes, prefix 0x02/0x03: compressed, decompressed per parity
//   - 65 bytes, prefix 0x06/0x07: hybrid form, accepted only when
//     strict is false
//
// Any other prefix, or a buffer of the wrong length for its prefix, is
// an InvalidParameter error; an empty buffer is also InvalidParameter.
func ParseDER(data []byte, strict bool) (*PublicKey, error) {
	if len(data) == 0 {
		return nil, errInvalidParameter("empty public key buffer")
	}

	switch data[0] {
	case 0x04:
		if len(data) != 65 {
			return nil, errInvalidParameter("uncompressed public key must be 65 bytes")
		}
		x := new(big.Int).SetBytes(data[1:33])
		y := new(big.Int).SetBytes(data[33:65])
		return NewPublicKey(x, y, false)

	case 0x02, 0x03:
		if len(data) != 33 {
			return nil, errInvalidParameter("compressed public key must be 33 bytes")
		}
		x := new(big.Int).SetBytes(data[1:33])
		if x.Cmp(Curve().Params().P) >= 0 {
			return nil, errInvalidPoint("x-coordinate out of range")
		}
		y, err := decompressY(x, data[0] == 0x03)
		if err != nil {
			return nil, err
		}
		return NewPublicKey(x, y, true)

	case 0x06, 0x07:
		if strict {
			return nil, errInvalidParameter("hybrid public key prefix rejected in strict mode")
		}
		if len(data) != 65 {
			return nil, errInvalidParameter("hybrid public key must be 65 bytes")
		}
		x := new(big.Int).SetBytes(data[1:33])
		y := new(big.Int).SetBytes(data[33:65])
		return NewPublicKey(x, y, false)

	default:
		return nil, errInvalidParameter("unrecognized public key prefix")
	}
}

// Encode serializes the public key: 33 bytes (02/03 || X) when
// compressed, 65 bytes (04 || X || Y) otherwise.
func (pk *PublicKey) Encode(compressed bool) []byte {
	if compressed {
		prefix := byte(0x02)
		if pk.y.Bit(0) == 1 {
			prefix = 0x03
		}
		out := make([]byte, 0, 33)
		out = append(out, prefix)
		out = append(out, leftPad(pk.x.Bytes(), 32)...)
		return out
	}

	out := make([]byte, 0, 65)
	out = append(out, 0x04)
	out = append(out, leftPad(pk.x.Bytes(), 32)...)
	out = append(out, leftPad(pk.y.Bytes(), 32)...)
	return out
}

// DER serializes using the key's own Compressed preference.
func (pk *PublicKey) DER() []byte {
	return pk.Encode(pk.compressed)
}

// Compressed reports the key's default serialization preference.
func (pk *PublicKey) Compressed() bool {
	return pk.compressed
}

// X returns a copy of the affine x-coordinate.
func (pk *PublicKey) X() *big.Int { return new(big.Int).Set(pk.x) }

// Y returns a copy of the affine y-coordinate.
func (pk *PublicKey) Y() *big.Int { return new(big.Int).Set(pk.y) }

// Equal reports whether pk and other are the same curve point,
// independent of their Compressed preference.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	if other == nil {
		return false
	}
	return pk.x.Cmp(other.x) == 0 && pk.y.Cmp(other.y) == 0
}
