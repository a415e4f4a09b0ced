package secp256k1

import (
	"math/big"

	"github.com/zenon-network/swapsign/internal/base58check"
)

// PrivateKey is a scalar d in (0, n) on secp256k1 with a Compressed
// flag governing the public key/WIF serialization it implies (spec
// §3).
type PrivateKey struct {
	d          *big.Int
	compressed bool
}

// NewPrivateKeyFromScalar constructs a PrivateKey from a raw scalar,
// rejecting d <= 0 or d >= n.
func NewPrivateKeyFromScalar(d *big.Int, compressed bool) (*PrivateKey, error) {
	n := Curve().Params().N
	if d.Sign() <= 0 || d.Cmp(n) >= 0 {
		return nil, errInvalidKey("private key scalar out of range")
	}
	return &PrivateKey{d: new(big.Int).Set(d), compressed: compressed}, nil
}

// NewPrivateKeyFromHex constructs a PrivateKey from a hex-encoded
// scalar.
func NewPrivateKeyFromHex(hexScalar string, compressed bool) (*PrivateKey, error) {
	d, ok := new(big.Int).SetString(hexScalar, 16)
	if !ok {
		return nil, errInvalidKey("malformed hex scalar")
	}
	return NewPrivateKeyFromScalar(d, compressed)
}

// ParseWIF decodes a Wallet Import Format string (spec §4.5/§6).
//
// The WIF string itself must be 51 or 52 characters; when the leading
// character is 'W' or 'X' it must be exactly 52 (a spec-mandated
// invariant, independent of the decoded payload shape). The
// Base58Check payload is a 1-byte version prefix followed by either a
// 32-byte scalar (uncompressed) or a 33-byte scalar whose trailing
// byte is 0x01 (compressed); any other shape is InvalidKey.
func ParseWIF(wif string) (*PrivateKey, error) {
	if len(wif) != 51 && len(wif) != 52 {
		return nil, errInvalidKey("WIF string must be 51 or 52 characters")
	}
	if (wif[0] == 'W' || wif[0] == 'X') && len(wif) != 52 {
		return nil, errInvalidKey("WIF string starting with W or X must be 52 characters")
	}

	payload, err := base58check.DecodeChecked(wif)
	if err != nil {
		return nil, errInvalidKey("malformed WIF checksum or alphabet")
	}
	if len(payload) < 1 {
		return nil, errInvalidKey("empty WIF payload")
	}

	body := payload[1:]
	switch len(body) {
	case 32:
		return NewPrivateKeyFromScalar(new(big.Int).SetBytes(body), false)
	case 33:
		if body[32] != 0x01 {
			return nil, errInvalidKey("compressed WIF payload must end in 0x01")
		}
		return NewPrivateKeyFromScalar(new(big.Int).SetBytes(body[:32]), true)
	default:
		return nil, errInvalidKey("unexpected WIF payload length")
	}
}

// WIF serializes the private key as a Base58Check WIF string under the
// given version byte. Round-tripping WIF(v) through ParseWIF with the
// same version byte and Compressed flag reproduces the original
// string (spec §8 property 3).
func (pk *PrivateKey) WIF(version byte) string {
	body := make([]byte, 0, 34)
	body = append(body, version)
	body = append(body, leftPad(pk.d.Bytes(), 32)...)
	if pk.compressed {
		body = append(body, 0x01)
	}
	return base58check.EncodeChecked(body)
}

// D returns a copy of the private scalar.
func (pk *PrivateKey) D() *big.Int { return new(big.Int).Set(pk.d) }

// Compressed reports whether this key implies a compressed public key.
func (pk *PrivateKey) Compressed() bool { return pk.compressed }

// PublicKey derives Q = d*G.
func (pk *PrivateKey) PublicKey() (*PublicKey, error) {
	x, y := Curve().ScalarBaseMult(pk.d.Bytes())
	return NewPublicKey(x, y, pk.compressed)
}
