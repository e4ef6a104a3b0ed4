package daemon

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/1broseidon/swaylabel/internal/config"
	"github.com/1broseidon/swaylabel/internal/label"
	"github.com/1broseidon/swaylabel/internal/platform"
	"github.com/1broseidon/swaylabel/internal/tree"
)

// ErrStreamClosed is returned by Run when the window manager closes the
// event connection without sending a shutdown event.
var ErrStreamClosed = errors.New("event stream closed")

// Stats counts what the reactor has done since it started.
type Stats struct {
	StartedAt        time.Time
	EventsHandled    uint64
	RenamesSubmitted uint64
	RenamesSkipped   uint64
	CycleErrors      uint64
	LastLabel        string
	LastError        string
}

// Reactor turns window manager events into workspace renames. Events are
// handled one at a time, each against a freshly fetched tree.
type Reactor struct {
	backend platform.Backend
	logger  *slog.Logger

	mu    sync.RWMutex
	cfg   *config.Config
	stats Stats
}

// NewReactor creates a reactor. A nil cfg means the built-in defaults.
func NewReactor(backend platform.Backend, cfg *config.Config, logger *slog.Logger) *Reactor {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Reactor{
		backend: backend,
		logger:  logger,
		cfg:     cfg,
		stats:   Stats{StartedAt: time.Now()},
	}
}

// UpdateConfig swaps the configuration. It takes effect at the start of the
// next cycle.
func (r *Reactor) UpdateConfig(cfg *config.Config) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cfg = cfg
}

// Config returns the current configuration.
func (r *Reactor) Config() *config.Config {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cfg
}

// Stats returns a copy of the counters.
func (r *Reactor) Stats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stats
}

// Run subscribes to events and handles them until ctx is cancelled, the
// window manager shuts down, or the event stream fails. Failed cycles are
// logged and do not stop the loop.
func (r *Reactor) Run(ctx context.Context) error {
	stream, err := r.backend.Subscribe(ctx)
	if err != nil {
		return err
	}
	defer stream.Close()

	r.logger.Info("reactor started")
	for {
		ev, err := stream.Next(ctx)
		if err != nil {
			if ctx.Err() != nil {
				r.logger.Info("reactor stopped")
				return nil
			}
			if errors.Is(err, io.EOF) {
				return ErrStreamClosed
			}
			return fmt.Errorf("read event: %w", err)
		}
		if ev.Kind == platform.EventShutdown {
			r.logger.Info("window manager shutting down", "change", ev.Change)
			return nil
		}
		_ = r.Handle(ctx, ev)
	}
}

// Handle runs one cycle for ev and returns its error after logging it.
// Ignored events return nil.
func (r *Reactor) Handle(ctx context.Context, ev platform.Event) error {
	act := plan(ev)
	if act.kind == actionIgnore {
		r.logger.Debug("event ignored", "kind", ev.Kind, "change", ev.Change)
		return nil
	}

	r.mu.Lock()
	r.stats.EventsHandled++
	cfg := r.cfg
	r.mu.Unlock()

	err := r.cycle(ctx, label.New(cfg), act)
	if err != nil {
		r.recordError(err)
		level := slog.LevelWarn
		if tree.IsDataIntegrity(err) {
			level = slog.LevelError
		}
		r.logger.Log(ctx, level, "label cycle failed",
			"kind", ev.Kind,
			"change", ev.Change,
			"error", err)
	}
	return err
}

type actionKind int

const (
	actionIgnore actionKind = iota
	actionWindow
	actionFocused
	actionPlaceholder
)

type action struct {
	kind      actionKind
	windowID  int64
	workspace *tree.Node
}

// plan maps an event to what should be relabelled.
func plan(ev platform.Event) action {
	switch ev.Kind {
	case platform.EventWindow:
		switch ev.Change {
		case "new", "focus", "title", "move", "floating":
			return action{kind: actionWindow, windowID: ev.ContainerID}
		case "close":
			return action{kind: actionFocused}
		}
	case platform.EventBinding:
		return action{kind: actionFocused}
	case platform.EventWorkspace:
		switch ev.Change {
		case "init", "reload":
			if ev.Workspace == nil {
				return action{}
			}
			return action{kind: actionPlaceholder, workspace: ev.Workspace}
		}
	}
	return action{}
}

func (r *Reactor) cycle(ctx context.Context, l *label.Labeller, act action) error {
	if act.kind == actionPlaceholder {
		number, err := act.workspace.WorkspaceNumber()
		if err != nil {
			return err
		}
		name, err := act.workspace.WorkspaceName()
		if err != nil {
			return err
		}
		return r.submit(ctx, name, l.Placeholder(number))
	}

	root, err := r.backend.Tree(ctx)
	if err != nil {
		return err
	}

	var target *tree.Node
	if act.kind == actionWindow {
		// The window may already be gone by the time the tree is fetched.
		if n, ok := tree.FindByID(root, act.windowID); ok {
			target = n
		}
	}
	if target == nil {
		target, err = tree.FindFocused(root)
		if err != nil {
			return err
		}
	}

	d, err := l.Describe(root, target)
	if err != nil {
		return err
	}
	return r.submit(ctx, d.CurrentName, d.Label)
}

func (r *Reactor) submit(ctx context.Context, current, next string) error {
	if current == next {
		r.mu.Lock()
		r.stats.RenamesSkipped++
		r.mu.Unlock()
		r.logger.Debug("label unchanged", "workspace", current)
		return nil
	}

	if err := r.backend.RunCommand(ctx, RenameCommand(current, next)); err != nil {
		return fmt.Errorf("rename workspace %q: %w", current, err)
	}

	r.mu.Lock()
	r.stats.RenamesSubmitted++
	r.stats.LastLabel = next
	r.mu.Unlock()
	r.logger.Debug("workspace renamed", "from", current, "to", next)
	return nil
}

func (r *Reactor) recordError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stats.CycleErrors++
	r.stats.LastError = err.Error()
}

var quoter = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// RenameCommand builds the command that renames workspace from to to.
func RenameCommand(from, to string) string {
	return `rename workspace "` + quoter.Replace(from) + `" to "` + quoter.Replace(to) + `"`
}

// LabelFocused computes the label for the focused window of a fresh tree and,
// when apply is set, submits it.
func (r *Reactor) LabelFocused(ctx context.Context, apply bool) (*label.Description, error) {
	root, err := r.backend.Tree(ctx)
	if err != nil {
		return nil, err
	}
	target, err := tree.FindFocused(root)
	if err != nil {
		return nil, err
	}
	d, err := label.New(r.Config()).Describe(root, target)
	if err != nil {
		return nil, err
	}
	if apply {
		if err := r.submit(ctx, d.CurrentName, d.Label); err != nil {
			return d, err
		}
	}
	return d, nil
}
