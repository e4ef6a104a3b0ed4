package swayipc

import "encoding/json"

// ContainerRef is the part of an event's container we need: its id.
type ContainerRef struct {
	ID int64 `json:"id"`
}

// WindowEvent is the payload of a window event.
type WindowEvent struct {
	Change    string       `json:"change"`
	Container ContainerRef `json:"container"`
}

// WorkspaceEvent is the payload of a workspace event. Current and Old are
// workspace nodes in get_tree format and may be null.
type WorkspaceEvent struct {
	Change  string          `json:"change"`
	Current json.RawMessage `json:"current"`
	Old     json.RawMessage `json:"old"`
}

// BindingEvent is the payload of a binding event.
type BindingEvent struct {
	Change  string `json:"change"`
	Binding struct {
		Command string `json:"command"`
	} `json:"binding"`
}

// ShutdownEvent is the payload of a shutdown event.
type ShutdownEvent struct {
	Change string `json:"change"`
}
