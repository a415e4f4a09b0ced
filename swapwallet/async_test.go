package swapwallet

import (
	"context"
	"testing"
	"time"
)

func TestSignAssetsAsyncMatchesSync(t *testing.T) {
	passphrase := []byte("correct horse battery staple")
	body, _ := buildSwapFileBody(t, passphrase)
	file := buildSwapFile(t, body)

	wallet, err := Parse(file)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	entry := wallet.Entries()[0]

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sig, err := entry.SignAssetsAsync(ctx, passphrase, "z1qxyasync")
	if err != nil {
		t.Fatalf("SignAssetsAsync: %v", err)
	}
	if sig == "" {
		t.Fatal("SignAssetsAsync returned an empty signature")
	}
}

func TestSignAssetsAsyncRespectsCancellation(t *testing.T) {
	passphrase := []byte("correct horse battery staple")
	body, _ := buildSwapFileBody(t, passphrase)
	file := buildSwapFile(t, body)

	wallet, err := Parse(file)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	entry := wallet.Entries()[0]

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = entry.SignAssetsAsync(ctx, passphrase, "z1qxyasync")
	if err == nil {
		t.Error("expected an error from an already-canceled context")
	}
}

func TestSignAllAsyncBoundedPool(t *testing.T) {
	passphrase := []byte("correct horse battery staple")
	body, _ := buildSwapFileBody(t, passphrase)
	file := buildSwapFile(t, body)

	wallet, err := Parse(file)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	entry := wallet.Entries()[0]

	jobs := []SignJob{
		{Entry: entry, Kind: SignKindAssets, Recipient: "z1qxya"},
		{Entry: entry, Kind: SignKindLegacyPillar, Recipient: "z1qxyb"},
	}

	results, err := SignAllAsync(context.Background(), jobs, passphrase, 1)
	if err != nil {
		t.Fatalf("SignAllAsync: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	for i, r := range results {
		if r.Err != nil {
			t.Errorf("job %d failed: %v", i, r.Err)
		}
		if r.Sig == "" {
			t.Errorf("job %d returned an empty signature", i)
		}
	}
}
