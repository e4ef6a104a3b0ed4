package platform

import (
	"context"

	"github.com/1broseidon/swaylabel/internal/tree"
)

// EventKind is the family of a window manager event.
type EventKind string

const (
	EventWindow    EventKind = "window"
	EventWorkspace EventKind = "workspace"
	EventBinding   EventKind = "binding"
	EventShutdown  EventKind = "shutdown"
)

// Event is a window manager event reduced to what the labeller reacts to.
type Event struct {
	Kind   EventKind
	Change string

	// ContainerID is the window the event is about. Window events only.
	ContainerID int64

	// Workspace is the event's "current" workspace, nil when the payload
	// carries none. Workspace events only.
	Workspace *tree.Node
}

// EventStream yields events from a dedicated subscription connection.
type EventStream interface {
	// Next blocks until the next event. io.EOF means the window manager
	// closed the connection.
	Next(ctx context.Context) (Event, error)
	Close() error
}

// Backend abstracts the window manager operations the labeller needs.
type Backend interface {
	Tree(ctx context.Context) (*tree.Node, error)
	RunCommand(ctx context.Context, cmd string) error
	Subscribe(ctx context.Context) (EventStream, error)
}
