package message

import (
	"encoding/base64"

	"github.com/zenon-network/swapsign/internal/model"
	"github.com/zenon-network/swapsign/internal/secp256k1"
)

// Sign signs the magic-hash of body with pk and returns the compact
// signature, Base64-encoded (spec §4.7 "sign(pk)").
func Sign(pk *secp256k1.PrivateKey, body []byte) (string, error) {
	sig, err := pk.Sign(Hash(body))
	if err != nil {
		return "", err
	}
	compact, err := sig.EncodeCompact()
	if err != nil {
		return "", model.WrapError(model.KindSignature, "failed to encode compact signature", err)
	}
	return base64.StdEncoding.EncodeToString(compact), nil
}

// VerifyFromPublicKey Base64-decodes sigB64, recovers the claimed
// signer's public key against the magic hash of body, and succeeds iff
// the recovered point equals expected AND a standard ECDSA verify
// against expected also passes (spec §4.7 "verifyFromPublicKey").
func VerifyFromPublicKey(expected *secp256k1.PublicKey, body []byte, sigB64 string) (bool, error) {
	raw, err := base64.StdEncoding.DecodeString(sigB64)
	if err != nil {
		return false, model.WrapError(model.KindSignature, "malformed base64 compact signature", err)
	}

	sig, err := secp256k1.DecodeCompact(raw)
	if err != nil {
		return false, err
	}

	digest := Hash(body)

	recovered, err := secp256k1.RecoverPublicKey(sig, digest, expected.Compressed())
	if err != nil {
		return false, err
	}
	if !recovered.Equal(expected) {
		return false, nil
	}

	return sig.Verify(digest, expected)
}
