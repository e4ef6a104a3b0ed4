//go:build linux

package platform

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/1broseidon/swaylabel/internal/swayipc"
	"github.com/1broseidon/swaylabel/internal/tree"
)

// SwayBackend talks to sway or i3 over their IPC socket. Requests share one
// lazily dialled connection; every subscription gets a connection of its own.
type SwayBackend struct {
	socketPath string

	mu   sync.Mutex
	conn *swayipc.Conn
}

var _ Backend = (*SwayBackend)(nil)

// NewSwayBackend creates a backend for the socket at socketPath. No
// connection is made until the first request.
func NewSwayBackend(socketPath string) *SwayBackend {
	return &SwayBackend{socketPath: socketPath}
}

// SocketPath returns the IPC socket this backend talks to.
func (b *SwayBackend) SocketPath() string {
	return b.socketPath
}

func (b *SwayBackend) connection(ctx context.Context) (*swayipc.Conn, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.conn != nil {
		return b.conn, nil
	}
	conn, err := swayipc.Dial(ctx, b.socketPath)
	if err != nil {
		return nil, err
	}
	b.conn = conn
	return conn, nil
}

// drop discards a connection after a transport error so the next request
// dials afresh.
func (b *SwayBackend) drop(conn *swayipc.Conn) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.conn == conn {
		b.conn.Close()
		b.conn = nil
	}
}

// Tree fetches a fresh snapshot of the layout tree.
func (b *SwayBackend) Tree(ctx context.Context) (*tree.Node, error) {
	conn, err := b.connection(ctx)
	if err != nil {
		return nil, err
	}
	data, err := conn.TreeJSON(ctx)
	if err != nil {
		b.drop(conn)
		return nil, fmt.Errorf("get_tree: %w", err)
	}
	root, err := tree.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("get_tree: %w", err)
	}
	return root, nil
}

// RunCommand submits cmd. A rejected command is a *swayipc.CommandError and
// leaves the connection usable.
func (b *SwayBackend) RunCommand(ctx context.Context, cmd string) error {
	conn, err := b.connection(ctx)
	if err != nil {
		return err
	}
	if err := conn.RunCommand(ctx, cmd); err != nil {
		var cmdErr *swayipc.CommandError
		if !errors.As(err, &cmdErr) {
			b.drop(conn)
		}
		return err
	}
	return nil
}

// Version asks the window manager for its version.
func (b *SwayBackend) Version(ctx context.Context) (*swayipc.Version, error) {
	conn, err := b.connection(ctx)
	if err != nil {
		return nil, err
	}
	v, err := conn.Version(ctx)
	if err != nil {
		b.drop(conn)
		return nil, err
	}
	return v, nil
}

// Subscribe opens a new connection and subscribes it to window, workspace,
// binding and shutdown events.
func (b *SwayBackend) Subscribe(ctx context.Context) (EventStream, error) {
	conn, err := swayipc.Dial(ctx, b.socketPath)
	if err != nil {
		return nil, err
	}
	if err := conn.Subscribe(ctx, SubscribedEvents...); err != nil {
		conn.Close()
		return nil, fmt.Errorf("subscribe: %w", err)
	}
	return &swayStream{conn: conn}, nil
}

// Close closes the request connection, if any.
func (b *SwayBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.conn == nil {
		return nil
	}
	err := b.conn.Close()
	b.conn = nil
	return err
}

type swayStream struct {
	conn *swayipc.Conn
}

func (s *swayStream) Next(ctx context.Context) (Event, error) {
	ev, err := s.conn.ReadEvent(ctx)
	if err != nil {
		return Event{}, err
	}
	return TranslateEvent(ev)
}

func (s *swayStream) Close() error {
	return s.conn.Close()
}
