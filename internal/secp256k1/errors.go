package secp256k1

import "github.com/zenon-network/swapsign/internal/model"

func errInvalidPoint(msg string) error {
	return model.NewError(model.KindInvalidPoint, msg)
}

func errInvalidKey(msg string) error {
	return model.NewError(model.KindInvalidKey, msg)
}

func errInvalidParameter(msg string) error {
	return model.NewError(model.KindInvalidParameter, msg)
}

func errSignature(msg string) error {
	return model.NewError(model.KindSignature, msg)
}
