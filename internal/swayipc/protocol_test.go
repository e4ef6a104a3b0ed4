package swayipc

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

func TestWriteMessage_Header(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMessage(&buf, uint32(MessageRunCommand), []byte("nop")); err != nil {
		t.Fatalf("WriteMessage: %v", err)
	}
	b := buf.Bytes()
	if len(b) != headerSize+3 {
		t.Fatalf("expected %d bytes, got %d", headerSize+3, len(b))
	}
	if string(b[:6]) != "i3-ipc" {
		t.Fatalf("expected magic, got %q", b[:6])
	}
	if got := binary.NativeEndian.Uint32(b[6:10]); got != 3 {
		t.Fatalf("expected length 3, got %d", got)
	}
	if got := binary.NativeEndian.Uint32(b[10:14]); got != 0 {
		t.Fatalf("expected type 0, got %d", got)
	}

	typ, payload, err := ReadMessage(&buf)
	if err != nil {
		t.Fatalf("ReadMessage: %v", err)
	}
	if typ != 0 || string(payload) != "nop" {
		t.Fatalf("unexpected message: %d %q", typ, payload)
	}
}

func TestReadMessage_Errors(t *testing.T) {
	t.Run("bad magic", func(t *testing.T) {
		_, _, err := ReadMessage(bytes.NewReader([]byte("i4-ipc\x00\x00\x00\x00\x00\x00\x00\x00")))
		if !errors.Is(err, ErrBadMagic) {
			t.Fatalf("expected ErrBadMagic, got %v", err)
		}
	})

	t.Run("truncated payload", func(t *testing.T) {
		var buf bytes.Buffer
		_ = WriteMessage(&buf, 4, []byte(`{"id":1}`))
		short := buf.Bytes()[:buf.Len()-2]
		_, _, err := ReadMessage(bytes.NewReader(short))
		if !errors.Is(err, io.ErrUnexpectedEOF) {
			t.Fatalf("expected unexpected EOF, got %v", err)
		}
	})

	t.Run("oversized", func(t *testing.T) {
		header := make([]byte, headerSize)
		copy(header, magic)
		binary.NativeEndian.PutUint32(header[6:], maxPayload+1)
		_, _, err := ReadMessage(bytes.NewReader(header))
		if !errors.Is(err, ErrPayloadTooLarge) {
			t.Fatalf("expected ErrPayloadTooLarge, got %v", err)
		}
	})

	t.Run("clean EOF", func(t *testing.T) {
		_, _, err := ReadMessage(bytes.NewReader(nil))
		if err != io.EOF {
			t.Fatalf("expected io.EOF, got %v", err)
		}
	})
}

func TestEventTypes(t *testing.T) {
	if !IsEvent(uint32(EventWindow)) || IsEvent(uint32(MessageGetTree)) {
		t.Fatalf("event bit not detected")
	}
	if EventWindow.Name() != "window" || EventBinding.Name() != "binding" {
		t.Fatalf("unexpected names: %s %s", EventWindow.Name(), EventBinding.Name())
	}
	if got := EventType(eventBit | 42).Name(); got != "event(42)" {
		t.Fatalf("unexpected name for unknown event: %s", got)
	}
}
