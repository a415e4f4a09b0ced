// Command swapsignd serves the swap-wallet signing API over HTTP.
package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/zenon-network/swapsign/internal/api"
	"github.com/zenon-network/swapsign/internal/config"
)

func main() {
	if err := config.Init(); err != nil {
		log.Fatalf("config: %v", err)
	}

	router, err := api.SetupRouter()
	if err != nil {
		log.Fatalf("router: %v", err)
	}

	addr := fmt.Sprintf(":%s", config.GetPort())
	log.Printf("swapsignd listening on %s", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("server: %v", err)
	}
}
