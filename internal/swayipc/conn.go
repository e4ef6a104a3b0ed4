package swayipc

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/1broseidon/swaylabel/internal/tree"
)

// Conn is one IPC connection. Requests are serialised; a connection that
// has subscribed to events should only be used for ReadEvent afterwards.
type Conn struct {
	mu   sync.Mutex
	conn net.Conn
	r    *bufio.Reader
}

// Dial connects to the IPC socket at path.
func Dial(ctx context.Context, path string) (*Conn, error) {
	var d net.Dialer
	c, err := d.DialContext(ctx, "unix", path)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", path, err)
	}
	return NewConn(c), nil
}

// NewConn wraps an established connection.
func NewConn(c net.Conn) *Conn {
	return &Conn{conn: c, r: bufio.NewReader(c)}
}

// Close closes the underlying connection.
func (c *Conn) Close() error {
	return c.conn.Close()
}

// bind applies ctx's deadline to the connection and interrupts blocked IO
// when ctx is cancelled. The returned func must be called when IO is done;
// once it returns the connection has no deadline and no interrupt pending.
func (c *Conn) bind(ctx context.Context) func() {
	deadline, _ := ctx.Deadline()
	_ = c.conn.SetDeadline(deadline)
	fired := make(chan struct{})
	stop := context.AfterFunc(ctx, func() {
		_ = c.conn.SetDeadline(time.Now())
		close(fired)
	})
	return func() {
		if !stop() {
			<-fired
		}
		_ = c.conn.SetDeadline(time.Time{})
	}
}

func ctxErr(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

func (c *Conn) request(ctx context.Context, typ MessageType, payload []byte) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	defer c.bind(ctx)()

	if err := WriteMessage(c.conn, uint32(typ), payload); err != nil {
		return nil, ctxErr(ctx, err)
	}
	for {
		rtyp, reply, err := ReadMessage(c.r)
		if err != nil {
			return nil, ctxErr(ctx, fmt.Errorf("read reply: %w", err))
		}
		// Events can be interleaved with replies on a subscribed connection.
		if IsEvent(rtyp) {
			continue
		}
		if rtyp != uint32(typ) {
			return nil, fmt.Errorf("%w: sent type %d, got %d", ErrUnexpectedReply, typ, rtyp)
		}
		return reply, nil
	}
}

// TreeJSON returns the raw get_tree reply.
func (c *Conn) TreeJSON(ctx context.Context) ([]byte, error) {
	return c.request(ctx, MessageGetTree, nil)
}

// Tree fetches and decodes a snapshot of the whole layout tree.
func (c *Conn) Tree(ctx context.Context) (*tree.Node, error) {
	data, err := c.TreeJSON(ctx)
	if err != nil {
		return nil, err
	}
	root, err := tree.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("decode tree: %w", err)
	}
	return root, nil
}

// CommandResult is the outcome of one command in a RUN_COMMAND payload.
type CommandResult struct {
	Success    bool   `json:"success"`
	ParseError bool   `json:"parse_error,omitempty"`
	Error      string `json:"error,omitempty"`
}

// CommandError is returned when the window manager rejects a command.
type CommandError struct {
	Command string
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %q failed: %s", e.Command, e.Message)
}

// RunCommand runs cmd and returns a *CommandError if any part of it failed.
func (c *Conn) RunCommand(ctx context.Context, cmd string) error {
	reply, err := c.request(ctx, MessageRunCommand, []byte(cmd))
	if err != nil {
		return err
	}
	var results []CommandResult
	if err := json.Unmarshal(reply, &results); err != nil {
		return fmt.Errorf("decode command reply: %w", err)
	}
	for _, r := range results {
		if !r.Success {
			msg := r.Error
			if msg == "" {
				msg = "unknown error"
			}
			return &CommandError{Command: cmd, Message: msg}
		}
	}
	return nil
}

// Version is the GET_VERSION reply.
type Version struct {
	Major                int    `json:"major"`
	Minor                int    `json:"minor"`
	Patch                int    `json:"patch"`
	HumanReadable        string `json:"human_readable"`
	LoadedConfigFileName string `json:"loaded_config_file_name"`
}

// Version asks the window manager for its version.
func (c *Conn) Version(ctx context.Context) (*Version, error) {
	reply, err := c.request(ctx, MessageGetVersion, nil)
	if err != nil {
		return nil, err
	}
	var v Version
	if err := json.Unmarshal(reply, &v); err != nil {
		return nil, fmt.Errorf("decode version: %w", err)
	}
	return &v, nil
}

// Subscribe asks for events to be pushed on this connection.
func (c *Conn) Subscribe(ctx context.Context, events ...EventType) error {
	names := make([]string, len(events))
	for i, e := range events {
		names[i] = e.Name()
	}
	payload, err := json.Marshal(names)
	if err != nil {
		return fmt.Errorf("encode subscription: %w", err)
	}
	reply, err := c.request(ctx, MessageSubscribe, payload)
	if err != nil {
		return err
	}
	var res struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(reply, &res); err != nil {
		return fmt.Errorf("decode subscribe reply: %w", err)
	}
	if !res.Success {
		return fmt.Errorf("swayipc: subscription to %v rejected", names)
	}
	return nil
}

// Event is one pushed event with its undecoded payload.
type Event struct {
	Type    EventType
	Payload []byte
}

// Decode unmarshals the payload into v.
func (e Event) Decode(v any) error {
	if err := json.Unmarshal(e.Payload, v); err != nil {
		return fmt.Errorf("decode %s event: %w", e.Type.Name(), err)
	}
	return nil
}

// ReadEvent blocks until the next event arrives. Any non-event message is
// treated as a protocol error.
func (c *Conn) ReadEvent(ctx context.Context) (Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	defer c.bind(ctx)()

	typ, payload, err := ReadMessage(c.r)
	if err != nil {
		return Event{}, ctxErr(ctx, err)
	}
	if !IsEvent(typ) {
		return Event{}, fmt.Errorf("%w: message type %d on event stream", ErrUnexpectedReply, typ)
	}
	return Event{Type: EventType(typ), Payload: payload}, nil
}
