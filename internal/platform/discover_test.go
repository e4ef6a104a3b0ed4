package platform

import (
	"errors"
	"testing"

	"github.com/1broseidon/swaylabel/internal/x11"
)

func TestDiscoverSocket(t *testing.T) {
	x11OK := func() (x11.RootInfo, error) {
		return x11.RootInfo{SocketPath: "/run/user/1000/i3/ipc-socket.1", WindowManager: "i3"}, nil
	}
	x11Fail := func() (x11.RootInfo, error) {
		return x11.RootInfo{}, errors.New("no DISPLAY")
	}

	tests := []struct {
		name     string
		override string
		env      map[string]string
		root     func() (x11.RootInfo, error)
		want     Socket
	}{
		{
			name:     "override wins",
			override: "/tmp/custom.sock",
			env:      map[string]string{"SWAYSOCK": "/run/sway.sock"},
			root:     x11Fail,
			want:     Socket{Path: "/tmp/custom.sock", Source: "config"},
		},
		{
			name: "sway before i3",
			env:  map[string]string{"SWAYSOCK": "/run/sway.sock", "I3SOCK": "/run/i3.sock"},
			root: x11Fail,
			want: Socket{Path: "/run/sway.sock", Source: "SWAYSOCK"},
		},
		{
			name: "i3 env",
			env:  map[string]string{"I3SOCK": "/run/i3.sock"},
			root: x11Fail,
			want: Socket{Path: "/run/i3.sock", Source: "I3SOCK"},
		},
		{
			name: "x11 root window",
			env:  map[string]string{},
			root: x11OK,
			want: Socket{Path: "/run/user/1000/i3/ipc-socket.1", Source: "X11 root window", WindowManager: "i3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := discoverSocket(tt.override, socketLookup{
				getenv:   func(k string) string { return tt.env[k] },
				rootInfo: tt.root,
			})
			if err != nil {
				t.Fatalf("discoverSocket: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestDiscoverSocket_NothingFound(t *testing.T) {
	_, err := discoverSocket("", socketLookup{
		getenv: func(string) string { return "" },
		rootInfo: func() (x11.RootInfo, error) {
			return x11.RootInfo{}, errors.New("no DISPLAY")
		},
	})
	if !errors.Is(err, ErrNoSocket) {
		t.Fatalf("expected ErrNoSocket, got %v", err)
	}
}
