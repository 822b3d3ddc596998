package hypr

import (
	"os"
	"path/filepath"

	"go.trai.ch/wrp/internal/core/domain"
)

const (
	// InstanceSignatureEnv identifies the running compositor instance.
	InstanceSignatureEnv = "HYPRLAND_INSTANCE_SIGNATURE"
	// RuntimeDirEnv is the XDG runtime directory.
	RuntimeDirEnv = "XDG_RUNTIME_DIR"

	socketName = ".socket.sock"
	legacyRoot = "/tmp"
)

// Env reads environment variables and probes the filesystem.
type Env struct {
	Getenv func(string) string
	Exists func(string) bool
}

// OSEnv is the process environment.
func OSEnv() Env {
	return Env{
		Getenv: os.Getenv,
		Exists: func(path string) bool {
			_, err := os.Stat(path)
			return err == nil
		},
	}
}

// SocketPath resolves the control socket: $XDG_RUNTIME_DIR/hypr/<sig>/.socket.sock
// when it exists, otherwise /tmp/hypr/<sig>/.socket.sock.
func (e Env) SocketPath() (string, error) {
	sig := e.Getenv(InstanceSignatureEnv)
	if sig == "" {
		return "", domain.ErrMissingInstanceSignature
	}

	if runtime := e.Getenv(RuntimeDirEnv); runtime != "" {
		p := filepath.Join(runtime, "hypr", sig, socketName)
		if e.Exists(p) {
			return p, nil
		}
	}
	return filepath.Join(legacyRoot, "hypr", sig, socketName), nil
}
