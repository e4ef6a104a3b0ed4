package ipc

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"syscall"
	"time"

	"github.com/1broseidon/swaylabel/internal/runtimepath"
)

// ErrDaemonNotRunning means nothing is listening on the control socket.
var ErrDaemonNotRunning = errors.New("swaylabel daemon is not running")

// DaemonError is an ERROR reply from the daemon.
type DaemonError struct {
	Command CommandType
	Message string
}

func (e *DaemonError) Error() string {
	return fmt.Sprintf("daemon rejected %s: %s", e.Command, e.Message)
}

// Client talks to a running daemon over its control socket. Every call
// opens a fresh connection.
type Client struct {
	socketPath string
	timeout    time.Duration
}

// NewClient returns a client for the daemon of the current user.
func NewClient() *Client {
	// An unresolvable runtime dir surfaces as ErrDaemonNotRunning on first use.
	socketPath, _ := runtimepath.SocketPath()
	return NewClientAt(socketPath)
}

// NewClientAt returns a client for the control socket at socketPath.
func NewClientAt(socketPath string) *Client {
	return &Client{socketPath: socketPath, timeout: 5 * time.Second}
}

// call sends one command and decodes the reply data into out, if non-nil.
func (c *Client) call(ctx context.Context, cmd CommandType, out any) error {
	if c.socketPath == "" {
		return ErrDaemonNotRunning
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var d net.Dialer
	conn, err := d.DialContext(ctx, "unix", c.socketPath)
	if err != nil {
		if errors.Is(err, syscall.ENOENT) || errors.Is(err, syscall.ECONNREFUSED) {
			return fmt.Errorf("%w (no listener on %s)", ErrDaemonNotRunning, c.socketPath)
		}
		return fmt.Errorf("connect to daemon: %w", err)
	}
	defer conn.Close()
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	// Encode terminates the request with the newline the server reads up to.
	if err := json.NewEncoder(conn).Encode(Request{Command: cmd}); err != nil {
		return fmt.Errorf("send %s: %w", cmd, err)
	}
	line, err := bufio.NewReader(conn).ReadBytes('\n')
	if err != nil {
		return fmt.Errorf("read %s reply: %w", cmd, err)
	}

	var resp Response
	if err := json.Unmarshal(line, &resp); err != nil {
		return fmt.Errorf("decode %s reply: %w", cmd, err)
	}
	if resp.Status != "OK" {
		return &DaemonError{Command: cmd, Message: resp.Error}
	}
	if out == nil || len(resp.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Data, out); err != nil {
		return fmt.Errorf("decode %s data: %w", cmd, err)
	}
	return nil
}

// Reload asks the daemon to re-read its configuration. A config that fails
// to load comes back as a *DaemonError and the daemon keeps the old one.
func (c *Client) Reload(ctx context.Context) error {
	return c.call(ctx, CommandReload, nil)
}

// Status returns the daemon's counters.
func (c *Client) Status(ctx context.Context) (*StatusData, error) {
	var status StatusData
	if err := c.call(ctx, CommandGetStatus, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Ping reports whether the daemon answers at all.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Status(ctx)
	return err
}
