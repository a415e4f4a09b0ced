// Package message implements Bitcoin-style magic-prefixed message
// framing and hashing for the signed attestation payloads (spec §4.7).
package message

import (
	"bytes"
	"encoding/binary"

	"github.com/zenon-network/swapsign/internal/hashutil"
)

// Magic is the fixed prefix string framed ahead of every signed
// message (26 bytes), under the successor chain's own name (spec
// §4.7, §6).
const Magic = "Zenon secp256k1 signature:"

// Frame wraps msg in the magic-prefixed envelope: a CompactSize-style
// length byte ahead of the magic string, a CompactSize-style length
// byte ahead of msg, then msg itself.
func Frame(msg []byte) []byte {
	var buf bytes.Buffer
	writeVarInt(&buf, uint64(len(Magic)))
	buf.WriteString(Magic)
	writeVarInt(&buf, uint64(len(msg)))
	buf.Write(msg)
	return buf.Bytes()
}

// Hash double-SHA-256-hashes the framed form of msg — the digest that
// gets signed and recovered against (spec §4.5/§4.7).
func Hash(msg []byte) [32]byte {
	return hashutil.DoubleSHA256(Frame(msg))
}

// writeVarInt encodes n as a Bitcoin-style CompactSize integer. Every
// message this package frames is well under 0xfd bytes, but the full
// encoding is implemented for fidelity with the convention it mirrors.
func writeVarInt(buf *bytes.Buffer, n uint64) {
	switch {
	case n < 0xfd:
		buf.WriteByte(byte(n))
	case n <= 0xffff:
		buf.WriteByte(0xfd)
		var b [2]byte
		binary.LittleEndian.PutUint16(b[:], uint16(n))
		buf.Write(b[:])
	case n <= 0xffffffff:
		buf.WriteByte(0xfe)
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], uint32(n))
		buf.Write(b[:])
	default:
		buf.WriteByte(0xff)
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], n)
		buf.Write(b[:])
	}
}
