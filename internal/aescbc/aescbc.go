// Package aescbc implements the AES-256-CBC decryption, with PKCS#7
// unpadding, that recovers the WIF plaintext from a swap-file key
// record's ciphertext (spec §4.4).
package aescbc

import (
	"crypto/aes"
	"crypto/cipher"

	"github.com/zenon-network/swapsign/internal/model"
)

const ivLen = aes.BlockSize // 16

// Decrypt decrypts ciphertext with AES-256-CBC under key (32 bytes)
// and iv (the first 16 bytes of the derived IV seed), then strips
// PKCS#7 padding. Every failure mode — bad key/iv length, ciphertext
// not a multiple of the block size, invalid padding — is coalesced
// into a single KindInvalidKey "invalid decryption passphrase" error,
// per spec §4.4/§7: the caller must not be able to distinguish which
// step failed.
func Decrypt(key, iv, ciphertext []byte) ([]byte, error) {
	plaintext, err := decrypt(key, iv, ciphertext)
	if err != nil {
		return nil, model.NewError(model.KindInvalidKey,
			"Invalid decryption passphrase, please check again")
	}
	return plaintext, nil
}

func decrypt(key, iv, ciphertext []byte) ([]byte, error) {
	if len(iv) != ivLen {
		return nil, errShape("bad iv length")
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, errShape("ciphertext not a multiple of the block size")
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	out := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, ciphertext)

	return unpadPKCS7(out)
}

type shapeError string

func (e shapeError) Error() string { return string(e) }

func errShape(msg string) error { return shapeError(msg) }

func unpadPKCS7(data []byte) ([]byte, error) {
	n := len(data)
	if n == 0 {
		return nil, errShape("empty plaintext")
	}
	padLen := int(data[n-1])
	if padLen == 0 || padLen > aes.BlockSize || padLen > n {
		return nil, errShape("invalid PKCS#7 padding length")
	}
	for _, b := range data[n-padLen:] {
		if int(b) != padLen {
			return nil, errShape("invalid PKCS#7 padding bytes")
		}
	}
	return data[:n-padLen], nil
}
