package platform

import (
	"testing"

	"github.com/1broseidon/swaylabel/internal/swayipc"
)

func TestTranslateEvent(t *testing.T) {
	t.Run("window", func(t *testing.T) {
		ev, err := TranslateEvent(swayipc.Event{
			Type:    swayipc.EventWindow,
			Payload: []byte(`{"change":"title","container":{"id":77,"type":"con","name":"x"}}`),
		})
		if err != nil {
			t.Fatalf("TranslateEvent: %v", err)
		}
		if ev.Kind != EventWindow || ev.Change != "title" || ev.ContainerID != 77 {
			t.Fatalf("unexpected event %+v", ev)
		}
	})

	t.Run("workspace with current", func(t *testing.T) {
		ev, err := TranslateEvent(swayipc.Event{
			Type:    swayipc.EventWorkspace,
			Payload: []byte(`{"change":"init","current":{"id":9,"type":"workspace","name":"5","num":5},"old":null}`),
		})
		if err != nil {
			t.Fatalf("TranslateEvent: %v", err)
		}
		if ev.Kind != EventWorkspace || ev.Change != "init" || ev.Workspace == nil {
			t.Fatalf("unexpected event %+v", ev)
		}
		if n, err := ev.Workspace.WorkspaceNumber(); err != nil || n != 5 {
			t.Fatalf("expected workspace 5, got %d (%v)", n, err)
		}
	})

	t.Run("workspace without current", func(t *testing.T) {
		ev, err := TranslateEvent(swayipc.Event{
			Type:    swayipc.EventWorkspace,
			Payload: []byte(`{"change":"reload","current":null}`),
		})
		if err != nil {
			t.Fatalf("TranslateEvent: %v", err)
		}
		if ev.Workspace != nil {
			t.Fatalf("expected no workspace, got %+v", ev.Workspace)
		}
	})

	t.Run("binding", func(t *testing.T) {
		ev, err := TranslateEvent(swayipc.Event{
			Type:    swayipc.EventBinding,
			Payload: []byte(`{"change":"run","binding":{"command":"layout toggle split"}}`),
		})
		if err != nil {
			t.Fatalf("TranslateEvent: %v", err)
		}
		if ev.Kind != EventBinding {
			t.Fatalf("unexpected event %+v", ev)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := TranslateEvent(swayipc.Event{Type: swayipc.EventWindow, Payload: []byte(`{"change":`)})
		if err == nil {
			t.Fatalf("expected error for malformed payload")
		}
	})

	t.Run("unsubscribed type", func(t *testing.T) {
		ev, err := TranslateEvent(swayipc.Event{Type: swayipc.EventTick, Payload: []byte(`{}`)})
		if err != nil {
			t.Fatalf("TranslateEvent: %v", err)
		}
		if ev.Kind != "tick" {
			t.Fatalf("expected tick kind, got %q", ev.Kind)
		}
	})
}
