package swapwallet

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/zenon-network/swapsign/internal/address"
	"github.com/zenon-network/swapsign/internal/model"
	"github.com/zenon-network/swapsign/internal/secp256k1"
)

const (
	swapFileExt = ".swp"
	trailerLen  = 64
)

// Wallet is an in-memory, loaded swap file: a checksum-verified set of
// entries keyed by legacy public key (spec §3 SwapFile).
type Wallet struct {
	entries []*Entry
}

// Entries returns the wallet's records in the order they were parsed.
func (w *Wallet) Entries() []*Entry { return w.entries }

// Load reads, checksum-verifies, and parses the swap file at path
// (spec §4.8).
func Load(path string) (*Wallet, error) {
	if filepath.Ext(path) != swapFileExt {
		return nil, model.NewError(model.KindInvalidParameter, "swap file path must end in .swp")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, model.WrapError(model.KindInvalidPath, "could not read swap file", err)
	}

	return Parse(raw)
}

// Parse checksum-verifies and parses the swap file's raw content,
// independent of where it came from (spec §4.8, steps 2-5).
func Parse(raw []byte) (*Wallet, error) {
	trimmed := strings.TrimSpace(string(raw))
	if len(trimmed) < trailerLen {
		return nil, model.NewError(model.KindInvalidParameter, "swap file too short to contain a checksum trailer")
	}

	body := trimmed[:len(trimmed)-trailerLen]
	expectedDigest := strings.ToLower(trimmed[len(trimmed)-trailerLen:])

	if body == "" {
		return nil, model.NewError(model.KindInvalidParameter, "swap file body is empty")
	}

	sum := sha256.Sum256([]byte(body))
	actualDigest := hex.EncodeToString(sum[:])
	if actualDigest != expectedDigest {
		return nil, model.NewError(model.KindInvalidChecksum, "Invalid swap wallet checksum")
	}

	var fileBody model.SwapFileBody
	if err := json.Unmarshal([]byte(body), &fileBody); err != nil {
		return nil, model.WrapError(model.KindInvalidParameter, "malformed swap file JSON body", err)
	}

	entries := make([]*Entry, 0, len(fileBody))
	for _, raw := range fileBody.Entries() {
		entry, err := buildEntry(raw)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return &Wallet{entries: entries}, nil
}

// buildEntry derives the legacy address from the legacy public key
// and constructs the in-memory entry. Per spec §4.8/§9, the entry's
// own public-key slot (derivedPubKeyB64) is left empty here even
// though the legacy pubkey is already known from the map key.
func buildEntry(raw model.RawSwapEntry) (*Entry, error) {
	derBytes, err := base64.StdEncoding.DecodeString(raw.LegacyPubKeyB64)
	if err != nil {
		return nil, model.WrapError(model.KindInvalidParameter, "malformed legacy public key base64", err)
	}

	pub, err := secp256k1.ParseDER(derBytes, false)
	if err != nil {
		return nil, err
	}
	compressedPub, err := secp256k1.NewPublicKey(pub.X(), pub.Y(), true)
	if err != nil {
		return nil, err
	}
	legacyAddress := address.FromPublicKey(compressedPub)

	return &Entry{
		legacyPubKeyB64:     raw.LegacyPubKeyB64,
		legacyAddress:       legacyAddress,
		keyIDHashHex:        raw.KeyIDHashHex,
		encryptedPrivKeyB64: raw.EncryptedPrivKeyB64,
	}, nil
}
