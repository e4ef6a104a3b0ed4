package x11

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xprop"
)

// socketAtom is the root window property i3 publishes its IPC socket under.
const socketAtom = "I3_SOCKET_PATH"

// Connection manages the X11 connection and the root window.
type Connection struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window
}

// NewConnection establishes a connection to the X11 server named by DISPLAY.
func NewConnection() (*Connection, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, err
	}
	return &Connection{
		XUtil: xu,
		Root:  xu.RootWin(),
	}, nil
}

// SocketPath reads the i3 IPC socket path from the root window.
func (c *Connection) SocketPath() (string, error) {
	path, err := xprop.PropValStr(xprop.GetProperty(c.XUtil, c.Root, socketAtom))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", socketAtom, err)
	}
	path = strings.TrimRight(path, "\x00")
	if path == "" {
		return "", fmt.Errorf("%s is empty", socketAtom)
	}
	return path, nil
}

// WindowManager returns the name the running window manager advertises
// through _NET_SUPPORTING_WM_CHECK, or "" if it does not.
func (c *Connection) WindowManager() string {
	name, err := ewmh.GetEwmhWM(c.XUtil)
	if err != nil {
		return ""
	}
	return name
}

// Close cleanly disconnects from the X11 server
func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}

// RootInfo is what the root window says about the running window manager.
type RootInfo struct {
	SocketPath    string
	WindowManager string
}

// ReadRootInfo opens a short-lived connection and reads the IPC socket path
// and window manager name from the root window.
func ReadRootInfo() (RootInfo, error) {
	conn, err := NewConnection()
	if err != nil {
		return RootInfo{}, fmt.Errorf("connect to X11: %w", err)
	}
	defer conn.Close()

	path, err := conn.SocketPath()
	if err != nil {
		return RootInfo{}, err
	}
	return RootInfo{SocketPath: path, WindowManager: conn.WindowManager()}, nil
}
