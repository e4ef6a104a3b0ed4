package config

import (
	"fmt"
)

type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.Kind == SourceFile && e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// BuildEffectiveConfig overlays raw onto DefaultConfig key by key.
func BuildEffectiveConfig(raw RawConfig) *Config {
	cfg := DefaultConfig()

	setString(&cfg.SocketPath, raw.SocketPath)
	for appID, glyph := range raw.Icons {
		cfg.Icons[appID] = glyph
	}

	if g := raw.Glyphs; g != nil {
		setString(&cfg.Glyphs.Empty, g.Empty)
		setString(&cfg.Glyphs.Unknown, g.Unknown)
		setString(&cfg.Glyphs.Single, g.Single)
		setString(&cfg.Glyphs.Floating, g.Floating)
		setString(&cfg.Glyphs.FloatingPeers, g.FloatingPeers)
		setString(&cfg.Glyphs.Left, g.Left)
		setString(&cfg.Glyphs.Right, g.Right)
		setString(&cfg.Glyphs.Top, g.Top)
		setString(&cfg.Glyphs.Bottom, g.Bottom)
		setString(&cfg.Glyphs.BarFocused, g.BarFocused)
		setString(&cfg.Glyphs.BarUnfocused, g.BarUnfocused)
		setString(&cfg.Glyphs.ManyVertical, g.ManyVertical)
	}

	if s := raw.LayoutStyle; s != nil {
		setString(&cfg.LayoutStyle.Single, s.Single)
		setString(&cfg.LayoutStyle.Horizontal, s.Horizontal)
		setString(&cfg.LayoutStyle.Vertical, s.Vertical)
		setString(&cfg.LayoutStyle.Floating, s.Floating)
	}

	if s := raw.IconStyle; s != nil {
		setString(&cfg.IconStyle.Known, s.Known)
		setString(&cfg.IconStyle.Unknown, s.Unknown)
		setString(&cfg.IconStyle.Empty, s.Empty)
	}

	setString(&cfg.TitleStyle, raw.TitleStyle)
	if t := raw.Title; t != nil {
		if t.Show != nil {
			cfg.Title.Show = *t.Show
		}
		if t.MaxLength != nil {
			cfg.Title.MaxLength = *t.MaxLength
		}
	}

	if l := raw.Logging; l != nil {
		setString(&cfg.Logging.Level, l.Level)
		setString(&cfg.Logging.File, l.File)
		if l.MaxSizeMB != nil {
			cfg.Logging.MaxSizeMB = *l.MaxSizeMB
		}
		if l.MaxFiles != nil {
			cfg.Logging.MaxFiles = *l.MaxFiles
		}
	}
	if cfg.Logging.Level == "warning" {
		cfg.Logging.Level = "warn"
	}

	return cfg
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
