// Package handler exposes the swap-wallet signing API over HTTP.
package handler

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/skip2/go-qrcode"

	"github.com/zenon-network/swapsign/internal/address"
	"github.com/zenon-network/swapsign/internal/config"
	"github.com/zenon-network/swapsign/internal/model"
	"github.com/zenon-network/swapsign/swapwallet"
)

// SwapHandler holds the loaded swap wallet and serves its entries over
// HTTP.
type SwapHandler struct {
	wallet  *swapwallet.Wallet
	entries map[string]*swapwallet.Entry // legacyAddress string -> entry
}

// NewSwapHandler loads the configured swap file and indexes its
// entries by legacy address.
func NewSwapHandler() (*SwapHandler, error) {
	filePath := config.GetSwapFilePath()
	wallet, err := swapwallet.Load(filePath)
	if err != nil {
		return nil, err
	}

	entries := make(map[string]*swapwallet.Entry, len(wallet.Entries()))
	for _, e := range wallet.Entries() {
		entries[e.LegacyAddress().String()] = e
	}

	return &SwapHandler{wallet: wallet, entries: entries}, nil
}

// ListEntries handles GET /swap/entries
// @Summary      List swap-file entries
// @Description  Lists the legacy addresses and identifiers found in the loaded swap file
// @Tags         swap
// @Produce      json
// @Success      200  {object}  model.LoadResponse
// @Router       /swap/entries [get]
func (h *SwapHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed. Should be GET")
		return
	}

	summaries := make([]model.EntrySummary, 0, len(h.wallet.Entries()))
	for _, e := range h.wallet.Entries() {
		summaries = append(summaries, model.EntrySummary{
			LegacyAddress:    e.LegacyAddress().String(),
			KeyIDHashHex:     e.KeyIDHashHex(),
			DerivedPubKeyB64: e.DerivedPubKeyB64(),
		})
	}

	writeJSON(w, http.StatusOK, model.LoadResponse{Entries: summaries})
}

// SignAssets handles POST /swap/sign/assets
// @Summary      Sign the assets attestation
// @Description  Decrypts an entry with the supplied passphrase and signs the assets-retrieval message binding it to recipient
// @Tags         swap
// @Accept       json
// @Produce      json
// @Param        request  body      model.SignRequest  true  "Sign request"
// @Success      200      {object}  model.SignResponse
// @Router       /swap/sign/assets [post]
func (h *SwapHandler) SignAssets(w http.ResponseWriter, r *http.Request) {
	h.sign(w, r, func(e *swapwallet.Entry, passphrase []byte, recipient string) (string, error) {
		return e.SignAssets(passphrase, recipient)
	})
}

// SignLegacyPillar handles POST /swap/sign/legacy-pillar
// @Summary      Sign the legacy-pillar attestation
// @Description  Decrypts an entry with the supplied passphrase and signs the legacy-pillar-retrieval message binding it to recipient
// @Tags         swap
// @Accept       json
// @Produce      json
// @Param        request  body      model.SignRequest  true  "Sign request"
// @Success      200      {object}  model.SignResponse
// @Router       /swap/sign/legacy-pillar [post]
func (h *SwapHandler) SignLegacyPillar(w http.ResponseWriter, r *http.Request) {
	h.sign(w, r, func(e *swapwallet.Entry, passphrase []byte, recipient string) (string, error) {
		return e.SignLegacyPillar(passphrase, recipient)
	})
}

func (h *SwapHandler) sign(w http.ResponseWriter, r *http.Request, do func(*swapwallet.Entry, []byte, string) (string, error)) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed. Should be POST")
		return
	}

	var req model.SignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	entry, ok := h.entries[req.LegacyPubKeyB64]
	if !ok {
		writeError(w, http.StatusNotFound, "no entry found for that legacy address")
		return
	}

	passphrase := []byte(req.Passphrase)
	defer clear(passphrase)

	sig, err := do(entry, passphrase, req.Recipient)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, model.SignResponse{
		Signature:        sig,
		DerivedPubKeyB64: entry.DerivedPubKeyB64(),
	})
}

// CanDecrypt handles POST /swap/can-decrypt
// @Summary      Probe a passphrase against an entry
// @Description  Returns ok=true iff the passphrase decrypts the named entry's key
// @Tags         swap
// @Accept       json
// @Produce      json
// @Param        request  body      model.CanDecryptRequest  true  "Probe request"
// @Success      200      {object}  model.CanDecryptResponse
// @Router       /swap/can-decrypt [post]
func (h *SwapHandler) CanDecrypt(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed. Should be POST")
		return
	}

	var req model.CanDecryptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	entry, ok := h.entries[req.LegacyPubKeyB64]
	if !ok {
		writeError(w, http.StatusNotFound, "no entry found for that legacy address")
		return
	}

	passphrase := []byte(req.Passphrase)
	defer clear(passphrase)

	err := entry.CanDecryptWith(passphrase)
	writeJSON(w, http.StatusOK, model.CanDecryptResponse{OK: err == nil})
}

// AddressQR handles GET /swap/address/qr
// @Summary      Render a legacy address as a QR code
// @Description  Returns a PNG QR code encoding the given Base58Check address string
// @Tags         swap
// @Produce      png
// @Param        address  query  string  true  "Base58Check address"
// @Success      200
// @Router       /swap/address/qr [get]
func (h *SwapHandler) AddressQR(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed. Should be GET")
		return
	}

	addrStr := r.URL.Query().Get("address")
	if _, err := address.FromBase58(addrStr); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	png, err := qrcode.Encode(addrStr, qrcode.Medium, 256)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = bytes.NewReader(png).WriteTo(w)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
