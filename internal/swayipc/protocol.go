// Package swayipc speaks the i3/sway IPC protocol over a unix socket.
//
// Every message is framed as the magic string "i3-ipc", a payload length
// and a message type (both uint32 in native byte order) and a JSON payload.
// Events pushed to subscribers carry the same framing with the high bit of
// the type set.
package swayipc

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const magic = "i3-ipc"

const headerSize = len(magic) + 8

// maxPayload bounds a single message. get_tree on a busy session is a few
// hundred kilobytes; anything near this size is a broken stream.
const maxPayload = 64 << 20

// MessageType identifies a request and its reply.
type MessageType uint32

const (
	MessageRunCommand    MessageType = 0
	MessageGetWorkspaces MessageType = 1
	MessageSubscribe     MessageType = 2
	MessageGetOutputs    MessageType = 3
	MessageGetTree       MessageType = 4
	MessageGetVersion    MessageType = 7
)

const eventBit = 1 << 31

// EventType identifies a pushed event.
type EventType uint32

const (
	EventWorkspace EventType = eventBit | 0
	EventOutput    EventType = eventBit | 1
	EventMode      EventType = eventBit | 2
	EventWindow    EventType = eventBit | 3
	EventBinding   EventType = eventBit | 5
	EventShutdown  EventType = eventBit | 6
	EventTick      EventType = eventBit | 7
)

var eventNames = map[EventType]string{
	EventWorkspace: "workspace",
	EventOutput:    "output",
	EventMode:      "mode",
	EventWindow:    "window",
	EventBinding:   "binding",
	EventShutdown:  "shutdown",
	EventTick:      "tick",
}

// Name is the name used to subscribe to the event.
func (e EventType) Name() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return fmt.Sprintf("event(%d)", uint32(e)&^eventBit)
}

var (
	// ErrBadMagic means the peer is not speaking the i3 IPC protocol.
	ErrBadMagic = errors.New("swayipc: bad magic")
	// ErrPayloadTooLarge means a header announced an implausible length.
	ErrPayloadTooLarge = errors.New("swayipc: payload too large")
	// ErrUnexpectedReply means a reply did not match the request type.
	ErrUnexpectedReply = errors.New("swayipc: unexpected reply")
)

// WriteMessage frames payload and writes it in one call.
func WriteMessage(w io.Writer, typ uint32, payload []byte) error {
	buf := make([]byte, headerSize+len(payload))
	copy(buf, magic)
	binary.NativeEndian.PutUint32(buf[len(magic):], uint32(len(payload)))
	binary.NativeEndian.PutUint32(buf[len(magic)+4:], typ)
	copy(buf[headerSize:], payload)
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	return nil
}

// ReadMessage reads one framed message.
func ReadMessage(r io.Reader) (uint32, []byte, error) {
	var header [headerSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return 0, nil, err
	}
	if string(header[:len(magic)]) != magic {
		return 0, nil, ErrBadMagic
	}
	length := binary.NativeEndian.Uint32(header[len(magic):])
	typ := binary.NativeEndian.Uint32(header[len(magic)+4:])
	if length > maxPayload {
		return 0, nil, fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, length)
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return 0, nil, fmt.Errorf("read payload: %w", err)
	}
	return typ, payload, nil
}

// IsEvent reports whether a message type read off the wire is an event.
func IsEvent(typ uint32) bool {
	return typ&eventBit != 0
}
