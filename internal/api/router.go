package api

import (
	"net/http"

	"github.com/zenon-network/swapsign/internal/handler"

	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter sets up router with handlers
func SetupRouter() (http.Handler, error) {
	swapHandler, err := handler.NewSwapHandler()
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Swap-wallet endpoints
	mux.HandleFunc("/swap/entries", swapHandler.ListEntries)
	mux.HandleFunc("/swap/sign/assets", swapHandler.SignAssets)
	mux.HandleFunc("/swap/sign/legacy-pillar", swapHandler.SignLegacyPillar)
	mux.HandleFunc("/swap/can-decrypt", swapHandler.CanDecrypt)
	mux.HandleFunc("/swap/address/qr", swapHandler.AddressQR)

	return mux, nil
}
