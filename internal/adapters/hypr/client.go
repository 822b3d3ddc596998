// Package hypr implements the Hyprland control socket client.
package hypr

import (
	"context"
	"errors"
	"io"
	"net"

	"go.trai.ch/wrp/internal/core/domain"
	"go.trai.ch/wrp/internal/core/ports"
	"go.trai.ch/zerr"
)

// JSONPrefix asks the compositor for a JSON response.
const JSONPrefix = "j/"

var _ ports.WindowManager = (*Client)(nil)

// Client implements ports.WindowManager with one connection per request.
type Client struct {
	env    Env
	dialer net.Dialer
}

// NewClient creates a client resolving its socket from env.
func NewClient(env Env) *Client {
	return &Client{env: env}
}

// Send writes command, then reads until the compositor closes the connection.
func (c *Client) Send(ctx context.Context, command string) (string, error) {
	path, err := c.env.SocketPath()
	if err != nil {
		return "", err
	}

	conn, err := c.dialer.DialContext(ctx, "unix", path)
	if err != nil {
		return "", zerr.With(errors.Join(domain.ErrConnectionFailed, err), "socket", path)
	}
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	if _, err := io.WriteString(conn, command); err != nil {
		return "", zerr.With(errors.Join(domain.ErrIOFailed, err), "socket", path)
	}

	resp, err := io.ReadAll(conn)
	if err != nil {
		return "", zerr.With(errors.Join(domain.ErrIOFailed, err), "socket", path)
	}
	return string(resp), nil
}

// SendJSON sends command with the JSON output prefix.
func (c *Client) SendJSON(ctx context.Context, command string) (string, error) {
	return c.Send(ctx, JSONPrefix+command)
}
