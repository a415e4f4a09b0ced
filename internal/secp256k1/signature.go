package secp256k1

import "math/big"

// Signature is (r, s) plus an optional recovery index i in {0,1,2,3}
// and a Compressed flag (spec §3). There is no back-pointer to a
// public key: Sign uses the signer's public key only to find I, a
// verifier supplies one explicitly to Verify, and a recoverer obtains
// one from RecoverPublicKey.
type Signature struct {
	R, S        *big.Int
	I           int
	Compressed  bool
	hasRecovery bool
}

// Sign produces a low-S-normalized ECDSA signature over hash using
// RFC 6979 deterministic nonce generation, then searches for the
// recovery index i in {0,1,2,3} whose recovered public key matches
// pk's own (spec §4.5 "calculate-i"). It fails with a Signature error
// if no such i exists, which should not happen for a correctly
// computed (r, s).
func (pk *PrivateKey) Sign(hash [32]byte) (*Signature, error) {
	curve := Curve()
	n := curve.Params().N
	e := new(big.Int).SetBytes(hash[:])

	pub, err := pk.PublicKey()
	if err != nil {
		return nil, err
	}

	k := rfc6979Nonce(pk.d, hash[:])
	for attempt := 0; ; attempt++ {
		rx, _ := curve.ScalarBaseMult(k.Bytes())
		r := new(big.Int).Mod(rx, n)
		if r.Sign() == 0 {
			k = rfc6979Nonce(new(big.Int).Add(pk.d, big.NewInt(int64(attempt+1))), hash[:])
			continue
		}

		kInv := new(big.Int).ModInverse(k, n)
		if kInv == nil {
			k = rfc6979Nonce(new(big.Int).Add(pk.d, big.NewInt(int64(attempt+1))), hash[:])
			continue
		}

		s := new(big.Int).Mul(r, pk.d)
		s.Add(s, e)
		s.Mod(s, n)
		s.Mul(s, kInv)
		s.Mod(s, n)
		if s.Sign() == 0 {
			k = rfc6979Nonce(new(big.Int).Add(pk.d, big.NewInt(int64(attempt+1))), hash[:])
			continue
		}

		// low-S normalization (spec §6)
		if s.Cmp(lowSThreshold) > 0 {
			s.Sub(n, s)
		}

		i, err := findRecoveryIndex(r, s, e, pub)
		if err != nil {
			return nil, err
		}

		return &Signature{R: r, S: s, I: i, Compressed: pk.compressed, hasRecovery: true}, nil
	}
}

// findRecoveryIndex is the "calculate-i" search from spec §4.5: try
// every i in 0..3, keep the one whose recovered point matches want.
func findRecoveryIndex(r, s, e *big.Int, want *PublicKey) (int, error) {
	for i := 0; i < 4; i++ {
		candidate, err := recoverPublicKey(r, s, i, e, want.Compressed())
		if err != nil {
			continue
		}
		if candidate.Equal(want) {
			return i, nil
		}
	}
	return 0, errSignature("no recovery factor found for signature")
}

// RecoverPublicKey implements SEC 1 §4.1.6 public-key recovery from
// (r, s, i, hash) (spec §4.5). It requires n*R == O (the point at
// infinity) for the reconstructed R, failing with a Signature error
// otherwise.
func RecoverPublicKey(sig *Signature, hash [32]byte, compressed bool) (*PublicKey, error) {
	if sig.R == nil || sig.S == nil {
		return nil, errSignature("verify called on uninitialized signature")
	}
	e := new(big.Int).SetBytes(hash[:])
	return recoverPublicKey(sig.R, sig.S, sig.I, e, compressed)
}

func recoverPublicKey(r, s *big.Int, i int, e *big.Int, compressed bool) (*PublicKey, error) {
	if i < 0 || i > 3 {
		return nil, errInvalidParameter("recovery index must be in 0..3")
	}

	curve := Curve()
	p := curve.Params().P
	n := curve.Params().N

	isSecondKey := (i >> 1) & 1
	yTilde := i & 1

	x := new(big.Int).Set(r)
	if isSecondKey == 1 {
		x.Add(x, n)
	}
	if x.Cmp(p) >= 0 {
		return nil, errInvalidPoint("recovered x-coordinate out of range")
	}

	y, err := decompressY(x, yTilde == 1)
	if err != nil {
		return nil, err
	}

	checkX, checkY := curve.ScalarMult(x, y, n.Bytes())
	if !isInfinity(checkX, checkY) {
		return nil, errSignature("n*R != point at infinity")
	}

	rInv := new(big.Int).ModInverse(r, n)
	if rInv == nil {
		return nil, errSignature("r has no modular inverse")
	}

	eModN := new(big.Int).Mod(e, n)

	sRx, sRy := curve.ScalarMult(x, y, s.Bytes())
	eGx, eGy := curve.ScalarBaseMult(eModN.Bytes())
	eGyNeg := new(big.Int).Sub(p, eGy)
	eGyNeg.Mod(eGyNeg, p)

	qx, qy := curve.Add(sRx, sRy, eGx, eGyNeg)
	qx, qy = curve.ScalarMult(qx, qy, rInv.Bytes())

	return NewPublicKey(qx, qy, compressed)
}

// Verify performs standard ECDSA verification of sig over hash against
// pub. It returns an error only when sig itself is uninitialized (no
// R/S); any other verification failure is reported as (false, nil).
func (sig *Signature) Verify(hash [32]byte, pub *PublicKey) (bool, error) {
	if sig.R == nil || sig.S == nil {
		return false, errSignature("verify called on uninitialized signature")
	}

	curve := Curve()
	n := curve.Params().N

	if sig.R.Sign() <= 0 || sig.R.Cmp(n) >= 0 || sig.S.Sign() <= 0 || sig.S.Cmp(n) >= 0 {
		return false, nil
	}

	e := new(big.Int).Mod(new(big.Int).SetBytes(hash[:]), n)
	w := new(big.Int).ModInverse(sig.S, n)
	if w == nil {
		return false, nil
	}

	u1 := new(big.Int).Mod(new(big.Int).Mul(e, w), n)
	u2 := new(big.Int).Mod(new(big.Int).Mul(sig.R, w), n)

	x1, y1 := curve.ScalarBaseMult(u1.Bytes())
	x2, y2 := curve.ScalarMult(pub.x, pub.y, u2.Bytes())
	x, y := curve.Add(x1, y1, x2, y2)
	if isInfinity(x, y) {
		return false, nil
	}

	v := new(big.Int).Mod(x, n)
	return v.Cmp(sig.R) == 0, nil
}

// EncodeCompact renders the 65-byte compact form: header byte
// 27 + 4*compressed + i, followed by 32-byte big-endian r and s (spec
// §4.5/§6). It fails if the signature has no recovery index attached.
func (sig *Signature) EncodeCompact() ([]byte, error) {
	if !sig.hasRecovery {
		return nil, errSignature("signature has no recovery index to encode compactly")
	}
	if sig.I < 0 || sig.I > 3 {
		return nil, errInvalidParameter("recovery index must be in 0..3")
	}

	header := byte(27 + sig.I)
	if sig.Compressed {
		header += 4
	}

	out := make([]byte, 65)
	out[0] = header
	copy(out[1:33], leftPad(sig.R.Bytes(), 32))
	copy(out[33:65], leftPad(sig.S.Bytes(), 32))
	return out, nil
}

// DecodeCompact parses a 65-byte compact signature.
func DecodeCompact(data []byte) (*Signature, error) {
	if len(data) != 65 {
		return nil, errInvalidParameter("compact signature must be 65 bytes")
	}

	header := data[0]
	if header < 27 || header > 34 {
		return nil, errSignature("invalid compact signature header byte")
	}
	header -= 27
	compressed := header >= 4
	if compressed {
		header -= 4
	}

	return &Signature{
		R:           new(big.Int).SetBytes(data[1:33]),
		S:           new(big.Int).SetBytes(data[33:65]),
		I:           int(header),
		Compressed:  compressed,
		hasRecovery: true,
	}, nil
}

// EncodeDER renders the ASN.1 SEQUENCE of two INTEGERs (r, s). Values
// fit in a single length byte (secp256k1 r/s are at most 33 bytes
// encoded), so only the short DER length form is implemented.
func (sig *Signature) EncodeDER() []byte {
	rb := canonicalDERInt(sig.R)
	sb := canonicalDERInt(sig.S)

	body := make([]byte, 0, len(rb)+len(sb)+4)
	body = append(body, 0x02, byte(len(rb)))
	body = append(body, rb...)
	body = append(body, 0x02, byte(len(sb)))
	body = append(body, sb...)

	out := make([]byte, 0, len(body)+2)
	out = append(out, 0x30, byte(len(body)))
	out = append(out, body...)
	return out
}

func canonicalDERInt(v *big.Int) []byte {
	b := v.Bytes()
	if len(b) == 0 {
		b = []byte{0x00}
	}
	if b[0]&0x80 != 0 {
		b = append([]byte{0x00}, b...)
	}
	return b
}

// DecodeDER parses a DER-encoded SEQUENCE of two INTEGERs.
func DecodeDER(data []byte) (*Signature, error) {
	if len(data) < 8 || data[0] != 0x30 {
		return nil, errSignature("malformed DER signature")
	}
	seqLen := int(data[1])
	if seqLen+2 != len(data) {
		return nil, errSignature("malformed DER signature length")
	}

	offset := 2
	if offset >= len(data) || data[offset] != 0x02 {
		return nil, errSignature("malformed DER signature: expected r INTEGER")
	}
	offset++
	if offset >= len(data) {
		return nil, errSignature("malformed DER signature: truncated r length")
	}
	rLen := int(data[offset])
	offset++
	if offset+rLen > len(data) {
		return nil, errSignature("malformed DER signature: truncated r value")
	}
	r := new(big.Int).SetBytes(data[offset : offset+rLen])
	offset += rLen

	if offset >= len(data) || data[offset] != 0x02 {
		return nil, errSignature("malformed DER signature: expected s INTEGER")
	}
	offset++
	if offset >= len(data) {
		return nil, errSignature("malformed DER signature: truncated s length")
	}
	sLen := int(data[offset])
	offset++
	if offset+sLen != len(data) {
		return nil, errSignature("malformed DER signature: truncated s value")
	}
	s := new(big.Int).SetBytes(data[offset : offset+sLen])

	return &Signature{R: r, S: s}, nil
}
