package platform

import (
	"errors"
	"fmt"
	"os"

	"github.com/1broseidon/swaylabel/internal/x11"
)

// ErrNoSocket means no window manager IPC socket could be located.
var ErrNoSocket = errors.New("no window manager IPC socket found")

// Socket is a located IPC socket and where it was found.
type Socket struct {
	Path   string
	Source string
	// WindowManager is only known when the X11 root window was consulted.
	WindowManager string
}

type socketLookup struct {
	getenv   func(string) string
	rootInfo func() (x11.RootInfo, error)
}

// DiscoverSocket locates the IPC socket. An explicit override wins, then
// SWAYSOCK, then I3SOCK, then the I3_SOCKET_PATH property on the X11 root
// window.
func DiscoverSocket(override string) (Socket, error) {
	return discoverSocket(override, socketLookup{getenv: os.Getenv, rootInfo: x11.ReadRootInfo})
}

func discoverSocket(override string, l socketLookup) (Socket, error) {
	if override != "" {
		return Socket{Path: override, Source: "config"}, nil
	}
	for _, env := range []string{"SWAYSOCK", "I3SOCK"} {
		if path := l.getenv(env); path != "" {
			return Socket{Path: path, Source: env}, nil
		}
	}
	info, err := l.rootInfo()
	if err != nil {
		return Socket{}, fmt.Errorf("%w: SWAYSOCK and I3SOCK are unset and the X11 lookup failed: %v", ErrNoSocket, err)
	}
	return Socket{Path: info.SocketPath, Source: "X11 root window", WindowManager: info.WindowManager}, nil
}
