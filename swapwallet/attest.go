package swapwallet

import (
	"encoding/base64"

	"github.com/zenon-network/swapsign/internal/message"
	"github.com/zenon-network/swapsign/internal/model"
)

// templatePrefix maps the tagged message-kind variant to its literal
// template prefix by a pure match (spec §9 "dynamic-dispatch around
// message type" — no integer tag, no dispatch table).
func templatePrefix(kind model.MessageKind) string {
	switch kind {
	case model.MessageKindAssets:
		return "ZNN swap retrieve assets "
	case model.MessageKindLegacyPillar:
		return "ZNN swap retrieve legacy pillar "
	default:
		panic("swapwallet: unknown message kind")
	}
}

// SignAssets decrypts the entry with passphrase and signs the "assets"
// attestation binding the entry's key to recipient (spec §4.9).
func (e *Entry) SignAssets(passphrase []byte, recipient string) (string, error) {
	return e.sign(passphrase, model.MessageKindAssets, recipient)
}

// SignLegacyPillar decrypts the entry with passphrase and signs the
// "legacy pillar" attestation binding the entry's key to recipient
// (spec §4.9).
func (e *Entry) SignLegacyPillar(passphrase []byte, recipient string) (string, error) {
	return e.sign(passphrase, model.MessageKindLegacyPillar, recipient)
}

// CanDecryptWith probes whether passphrase decrypts this entry: it
// signs the legacy-pillar template against an empty recipient string
// and discards the signature. A clean return means the passphrase is
// correct (spec §4.9, §8 property 8).
func (e *Entry) CanDecryptWith(passphrase []byte) error {
	_, err := e.sign(passphrase, model.MessageKindLegacyPillar, "")
	return err
}

func (e *Entry) sign(passphrase []byte, kind model.MessageKind, recipient string) (string, error) {
	priv, err := e.decrypt(passphrase)
	if err != nil {
		return "", err
	}

	pub, err := priv.PublicKey()
	if err != nil {
		return "", err
	}
	derivedPubKeyB64 := e.setDerivedPubKeyB64(pub)

	body := templatePrefix(kind) + derivedPubKeyB64 + " " + recipient
	digest := message.Hash([]byte(body))

	sig, err := priv.Sign(digest)
	if err != nil {
		return "", err
	}

	compact, err := sig.EncodeCompact()
	if err != nil {
		return "", model.WrapError(model.KindSignature, "failed to encode compact signature", err)
	}

	return base64.StdEncoding.EncodeToString(compact), nil
}
