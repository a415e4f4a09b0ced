// Package bridge is a thin adapter to the external legacy-wallet
// export binary, out of scope for this library's own correctness but
// specified at its call boundary (spec §4.10, §9 "global mutable
// function pointer" redesign).
//
// The original contract names a shared library with an
// exportSwapFile(walletPath, passphrase) symbol. No cgo-free,
// cross-platform dynamic-library loader exists in this module's
// dependency set, so this adapter uses the subprocess form the spec
// explicitly licenses: probed candidates are executable binaries
// rather than shared objects, invoked once per call with the
// passphrase piped over stdin — never argv or the environment — so it
// cannot leak through `ps` or a process's environment block.
package bridge

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/zenon-network/swapsign/internal/model"
)

// Handle is an explicit, scoped-acquisition replacement for the
// original's lazily-initialized global function pointer (spec §9):
// callers construct one via Open and pass it around rather than
// reaching for ambient global state. A process may still cache a
// single Handle behind its own one-shot initialization if it chooses.
type Handle struct {
	binaryPath string
}

// candidateNames returns the platform-appropriate executable names
// probed in each candidate directory, in order.
func candidateNames() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{"zenon-export-bridge.exe", "export_bridge.exe"}
	case "darwin":
		return []string{"zenon-export-bridge", "export_bridge.dylib"}
	default:
		return []string{"zenon-export-bridge", "export_bridge.so"}
	}
}

// Open probes dirs, in order, for the first platform-appropriate
// candidate binary name that exists, and returns a Handle bound to it.
// If none exist in any candidate directory, it fails with an
// InvalidPath "library not found" error (spec §4.10).
func Open(dirs []string) (*Handle, error) {
	for _, dir := range dirs {
		for _, name := range candidateNames() {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return &Handle{binaryPath: candidate}, nil
			}
		}
	}
	return nil, model.NewError(model.KindInvalidPath, "export bridge library not found")
}

// ExportSwapFile invokes the bound binary's exportSwapFile contract:
// given a legacy wallet path and passphrase, it produces a
// "wallet.swp" file alongside walletPath. The binary's trimmed stdout
// is its status string: empty means success and ExportSwapFile returns
// nil; any other value is the binary's own error message, returned as
// an InvalidPath error after an "export bridge reported: " prefix
// (spec §4.10, §6).
func (h *Handle) ExportSwapFile(ctx context.Context, walletPath string, passphrase []byte) error {
	cmd := exec.CommandContext(ctx, h.binaryPath, walletPath)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return model.WrapError(model.KindInvalidPath, "failed to open export bridge stdin", err)
	}

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Start(); err != nil {
		return model.WrapError(model.KindInvalidPath, "failed to start export bridge process", err)
	}

	if _, err := stdin.Write(passphrase); err != nil {
		_ = cmd.Process.Kill()
		return model.WrapError(model.KindInvalidPath, "failed to write passphrase to export bridge", err)
	}
	_ = stdin.Close()

	if err := cmd.Wait(); err != nil {
		return model.WrapError(model.KindInvalidPath, "export bridge process failed", err)
	}

	status := strings.TrimSpace(stdout.String())
	if status != "" {
		return model.NewError(model.KindInvalidPath, fmt.Sprintf("export bridge reported: %s", status))
	}
	return nil
}
