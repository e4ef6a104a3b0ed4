// Package logging builds the daemon's slog logger: text records on stderr,
// optionally mirrored to a rotating file, at a level that can change on
// config reload.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/1broseidon/swaylabel/internal/config"
)

// ParseLevel converts a config level name to a slog level. Unknown names
// fall back to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Handle owns a logger and the file behind it.
type Handle struct {
	Logger *slog.Logger
	level  *slog.LevelVar
	file   *RotatingFile
}

// New builds a logger writing to stderr and, when cfg.File is set, to a
// rotating log file.
func New(cfg config.LoggingConfig, stderr io.Writer) (*Handle, error) {
	h := &Handle{level: new(slog.LevelVar)}
	h.level.Set(ParseLevel(cfg.Level))

	out := stderr
	if cfg.File != "" {
		f, err := OpenRotatingFile(cfg.File, cfg.MaxSizeMB, cfg.MaxFiles)
		if err != nil {
			return nil, err
		}
		h.file = f
		out = io.MultiWriter(stderr, f)
	}

	h.Logger = slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: h.level}))
	return h, nil
}

// SetLevel changes the level of every record logged from now on.
func (h *Handle) SetLevel(level string) {
	h.level.Set(ParseLevel(level))
}

// Close closes the log file, if any.
func (h *Handle) Close() error {
	if h.file == nil {
		return nil
	}
	return h.file.Close()
}
