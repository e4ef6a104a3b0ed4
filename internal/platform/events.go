package platform

import (
	"bytes"
	"fmt"

	"github.com/1broseidon/swaylabel/internal/swayipc"
	"github.com/1broseidon/swaylabel/internal/tree"
)

// SubscribedEvents are the events a Backend subscription asks for.
var SubscribedEvents = []swayipc.EventType{
	swayipc.EventWindow,
	swayipc.EventWorkspace,
	swayipc.EventBinding,
	swayipc.EventShutdown,
}

// TranslateEvent decodes a raw IPC event. Event types outside
// SubscribedEvents come back with only Kind set.
func TranslateEvent(ev swayipc.Event) (Event, error) {
	switch ev.Type {
	case swayipc.EventWindow:
		var we swayipc.WindowEvent
		if err := ev.Decode(&we); err != nil {
			return Event{}, err
		}
		return Event{Kind: EventWindow, Change: we.Change, ContainerID: we.Container.ID}, nil

	case swayipc.EventWorkspace:
		var we swayipc.WorkspaceEvent
		if err := ev.Decode(&we); err != nil {
			return Event{}, err
		}
		out := Event{Kind: EventWorkspace, Change: we.Change}
		if len(we.Current) > 0 && !bytes.Equal(bytes.TrimSpace(we.Current), []byte("null")) {
			ws, err := tree.Unmarshal(we.Current)
			if err != nil {
				return Event{}, fmt.Errorf("decode workspace event: %w", err)
			}
			out.Workspace = ws
		}
		return out, nil

	case swayipc.EventBinding:
		var be swayipc.BindingEvent
		if err := ev.Decode(&be); err != nil {
			return Event{}, err
		}
		return Event{Kind: EventBinding, Change: be.Change}, nil

	case swayipc.EventShutdown:
		var se swayipc.ShutdownEvent
		if err := ev.Decode(&se); err != nil {
			return Event{}, err
		}
		return Event{Kind: EventShutdown, Change: se.Change}, nil
	}
	return Event{Kind: EventKind(ev.Type.Name())}, nil
}
