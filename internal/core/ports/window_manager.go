package ports

import "context"

// WindowManager talks to the compositor over its control socket.
//
//go:generate go run go.uber.org/mock/mockgen -source=window_manager.go -destination=mocks/mock_window_manager.go -package=mocks
type WindowManager interface {
	// Send writes command and returns the full response.
	Send(ctx context.Context, command string) (string, error)

	// SendJSON is Send with the response requested as JSON.
	SendJSON(ctx context.Context, command string) (string, error)
}
