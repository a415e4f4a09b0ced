// Package address derives and parses the Base58Check addresses of
// legacy secp256k1 public keys (spec §4.6).
package address

import (
	"github.com/zenon-network/swapsign/internal/base58check"
	"github.com/zenon-network/swapsign/internal/hashutil"
	"github.com/zenon-network/swapsign/internal/model"
	"github.com/zenon-network/swapsign/internal/secp256k1"
)

// Version is the address version byte prefixed before
// hash160(pubkey) in the Base58Check payload (spec §4.6).
const Version byte = 0x50

// Address is a Base58Check-encoded version||hash160(pubkey) payload.
type Address struct {
	version byte
	hash    [20]byte
}

// FromPublicKey derives the address for pub, hashing its default
// (Compressed-governed) DER encoding.
func FromPublicKey(pub *secp256k1.PublicKey) Address {
	return Address{version: Version, hash: hashutil.Hash160(pub.DER())}
}

// String renders the Base58Check encoding.
func (a Address) String() string {
	body := make([]byte, 0, 21)
	body = append(body, a.version)
	body = append(body, a.hash[:]...)
	return base58check.EncodeChecked(body)
}

// Hash160 returns the 20-byte hash160 payload (no version byte).
func (a Address) Hash160() [20]byte { return a.hash }

// FromBase58 parses an address string.
//
// Per spec §9 / likely-bug preservation: the length check below is
// applied to the STRING s itself (25 or 34 characters), not to the
// decoded byte length — this is the original behavior and is kept
// even though it rejects some strings a byte-length check would
// accept and accepts others it would reject.
func FromBase58(s string) (Address, error) {
	if len(s) != 25 && len(s) != 34 {
		return Address{}, model.NewError(model.KindInvalidParameter, "address string must be 25 or 34 characters")
	}

	payload, err := base58check.DecodeChecked(s)
	if err != nil {
		return Address{}, model.WrapError(model.KindInvalidChecksum, "malformed address checksum or alphabet", err)
	}
	if len(payload) != 21 {
		return Address{}, model.NewError(model.KindInvalidParameter, "address payload must decode to 21 bytes")
	}

	var a Address
	a.version = payload[0]
	copy(a.hash[:], payload[1:])
	return a, nil
}

// Equal reports whether a and other are the same version and hash.
func (a Address) Equal(other Address) bool {
	return a.version == other.version && a.hash == other.hash
}
