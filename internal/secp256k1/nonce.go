package secp256k1

import (
	"crypto/hmac"
	"crypto/sha256"
	"math/big"
)

// rfc6979Nonce deterministically derives the ECDSA nonce k for
// signing hash under private scalar d, per RFC 6979 §3.2, using
// HMAC-SHA-256 as the underlying PRF (spec §4.5 "Sign(hash)").
func rfc6979Nonce(d *big.Int, hash []byte) *big.Int {
	n := Curve().Params().N
	qlen := n.BitLen()
	rolen := (qlen + 7) / 8

	xBytes := leftPad(d.Bytes(), rolen)
	h1 := bits2octets(hash, n, qlen, rolen)

	holen := sha256.Size
	v := repeat(0x01, holen)
	k := repeat(0x00, holen)

	k = hmacSum(k, concat(v, []byte{0x00}, xBytes, h1))
	v = hmacSum(k, v)
	k = hmacSum(k, concat(v, []byte{0x01}, xBytes, h1))
	v = hmacSum(k, v)

	for {
		v = hmacSum(k, v)
		t := bits2int(v, qlen)
		if t.Sign() > 0 && t.Cmp(n) < 0 {
			return t
		}
		k = hmacSum(k, concat(v, []byte{0x00}))
		v = hmacSum(k, v)
	}
}

func hmacSum(key, msg []byte) []byte {
	m := hmac.New(sha256.New, key)
	m.Write(msg)
	return m.Sum(nil)
}

func repeat(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}

func concat(parts ...[]byte) []byte {
	var n int
	for _, p := range parts {
		n += len(p)
	}
	out := make([]byte, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// bits2int interprets data as a qlen-bit big-endian integer, truncating
// from the left if data is longer than qlen bits.
func bits2int(data []byte, qlen int) *big.Int {
	x := new(big.Int).SetBytes(data)
	blen := len(data) * 8
	if blen > qlen {
		x.Rsh(x, uint(blen-qlen))
	}
	return x
}

// bits2octets is RFC 6979's bits2octets: bits2int followed by a single
// conditional subtraction of n, re-encoded to rolen bytes.
func bits2octets(data []byte, n *big.Int, qlen, rolen int) []byte {
	z1 := bits2int(data, qlen)
	z2 := new(big.Int).Sub(z1, n)
	if z2.Sign() < 0 {
		return leftPad(z1.Bytes(), rolen)
	}
	return leftPad(z2.Bytes(), rolen)
}
