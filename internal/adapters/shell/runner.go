// Package shell provides the external process runner adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
	"sync"

	"go.trai.ch/wrp/internal/core/domain"
	"go.trai.ch/wrp/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProcessRunner = (*Runner)(nil)

// Runner implements ports.ProcessRunner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner. Stderr lines of every child are also
// forwarded to the logger at debug level.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run starts program with args and returns its stdout once it exits.
func (r *Runner) Run(ctx context.Context, program string, args []string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, program, args...) //nolint:gosec // program comes from config

	var stdout, stderr bytes.Buffer
	debug := &logWriter{logger: r.logger}
	cmd.Stdout = &stdout
	cmd.Stderr = io.MultiWriter(&stderr, debug)

	err := cmd.Run()
	debug.Flush()
	if err == nil {
		return stdout.Bytes(), nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return nil, zerr.With(errors.Join(domain.ErrSpawnFailed, err), "program", program)
	}

	failure := errors.Join(domain.ErrProcessFailed, err)
	failure = zerr.With(failure, "program", program)
	failure = zerr.With(failure, "exit_code", exitErr.ExitCode())
	failure = zerr.With(failure, "stderr", strings.TrimSpace(stderr.String()))
	return stdout.Bytes(), failure
}

// Stderr returns the stderr captured with a domain.ErrProcessFailed error.
func Stderr(err error) (string, bool) {
	var zErr *zerr.Error
	if !errors.As(err, &zErr) {
		return "", false
	}
	s, ok := zErr.Metadata()["stderr"].(string)
	return s, ok
}

// logWriter forwards complete lines to the logger, buffering partial writes.
type logWriter struct {
	mu     sync.Mutex
	logger ports.Logger
	buf    []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	if w.logger == nil {
		return len(p), nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.emit(string(w.buf[:i]))
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

// Flush emits any trailing partial line.
func (w *logWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.buf) > 0 {
		w.emit(string(w.buf))
		w.buf = nil
	}
}

func (w *logWriter) emit(line string) {
	line = strings.TrimSuffix(line, "\r")
	if line == "" || w.logger == nil {
		return
	}
	w.logger.Debug(line)
}
