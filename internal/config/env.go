package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"
)

// Config contains all configuration parameters for the application.
// Note: the passphrase is prompted at runtime and stored in memory -
// use GetPassphraseBytes().
type Config struct {
	Port              string `envconfig:"PORT" default:"8080"`
	SwapFilePath      string `envconfig:"SWAP_FILE_PATH" required:"true"`
	BridgeSearchPaths string `envconfig:"BRIDGE_SEARCH_PATHS" default:"./bridge:/usr/local/lib/zenon-swap"`
	AsyncConcurrency  int    `envconfig:"ASYNC_CONCURRENCY" default:"4"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	cfg = &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetSwapFilePath returns path to the .swp file from configuration
func GetSwapFilePath() string {
	return Get().SwapFilePath
}

// GetBridgeSearchPaths returns the ordered list of directories probed
// for the export bridge binary.
func GetBridgeSearchPaths() []string {
	return splitColonList(Get().BridgeSearchPaths)
}

// GetAsyncConcurrency returns the worker-pool bound used by the
// bounded async signing path.
func GetAsyncConcurrency() int {
	return Get().AsyncConcurrency
}

func splitColonList(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == ':' {
			if i > start {
				out = append(out, s[start:i])
			}
			start = i + 1
		}
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}

var passphraseBytes []byte

// PromptForPassphrase prompts the user for the wallet passphrase in
// the terminal. The passphrase is read without echoing (hidden input)
// and stored in memory. Call this at startup before the server begins
// handling requests.
func PromptForPassphrase() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("stdin is not a terminal: run the app interactively to enter the passphrase")
	}
	fmt.Fprint(os.Stderr, "Enter wallet passphrase: ")
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("failed to read passphrase: %w", err)
	}
	if len(raw) == 0 {
		return errors.New("passphrase cannot be empty")
	}

	passphraseBytes = make([]byte, len(raw))
	copy(passphraseBytes, raw)
	clear(raw)
	return nil
}

// GetPassphraseBytes returns the passphrase stored in memory (from
// PromptForPassphrase). Returns an error if the passphrase was not
// set. Caller must zero the returned slice after use.
func GetPassphraseBytes() ([]byte, error) {
	if len(passphraseBytes) == 0 {
		return nil, errors.New("passphrase not set: call PromptForPassphrase at startup")
	}
	out := make([]byte, len(passphraseBytes))
	copy(out, passphraseBytes)
	return out, nil
}
