// Package ports defines the core interfaces for the application.
package ports

import "context"

// ProcessRunner runs external programs.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type ProcessRunner interface {
	// Run starts program with args, waits for it and returns its stdout.
	//
	// It fails with domain.ErrSpawnFailed when the program cannot be launched and
	// with domain.ErrProcessFailed, carrying the captured stderr, on a nonzero exit.
	Run(ctx context.Context, program string, args []string) ([]byte, error)
}
