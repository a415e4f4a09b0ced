// One-off: load a swap file, decrypt one entry, and print its compact
// signature over the assets-retrieval attestation for a recipient
// address. No server, no config file — everything comes from flags
// and a terminal passphrase prompt.
// Usage: go run ./cmd/swapsign -file wallet.swp -recipient z1qxy... -address 1LegacyAddr
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/zenon-network/swapsign/swapwallet"
)

func main() {
	filePath := flag.String("file", "", "path to the .swp swap file")
	recipient := flag.String("recipient", "", "successor-chain recipient address")
	legacyAddr := flag.String("address", "", "legacy address identifying the entry to sign")
	legacyPillar := flag.Bool("legacy-pillar", false, "sign the legacy-pillar template instead of assets")
	flag.Parse()

	if *filePath == "" || *recipient == "" || *legacyAddr == "" {
		fmt.Fprintln(os.Stderr, "usage: swapsign -file wallet.swp -recipient <addr> -address <legacyAddr>")
		os.Exit(2)
	}

	wallet, err := swapwallet.Load(*filePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "load:", err)
		os.Exit(1)
	}

	var entry *swapwallet.Entry
	for _, e := range wallet.Entries() {
		if e.LegacyAddress().String() == *legacyAddr {
			entry = e
			break
		}
	}
	if entry == nil {
		fmt.Fprintln(os.Stderr, "no entry found for address", *legacyAddr)
		os.Exit(1)
	}

	fmt.Fprint(os.Stderr, "Enter wallet passphrase: ")
	passphrase, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "read passphrase:", err)
		os.Exit(1)
	}
	defer clear(passphrase)

	var sig string
	if *legacyPillar {
		sig, err = entry.SignLegacyPillar(passphrase, *recipient)
	} else {
		sig, err = entry.SignAssets(passphrase, *recipient)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "sign:", err)
		os.Exit(1)
	}

	fmt.Println(sig)
}
