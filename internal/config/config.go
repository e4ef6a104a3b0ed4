package config

import (
	"fmt"
	"sort"
	"strings"
)

// Glyphs are the symbols the labeller draws. Empty and Unknown stand in for
// an application icon; the rest describe the shape of the layout around the
// labelled window.
type Glyphs struct {
	Empty         string `yaml:"empty" toml:"empty"`
	Unknown       string `yaml:"unknown" toml:"unknown"`
	Single        string `yaml:"single" toml:"single"`
	Floating      string `yaml:"floating" toml:"floating"`
	FloatingPeers string `yaml:"floating_peers" toml:"floating_peers"`
	Left          string `yaml:"left" toml:"left"`
	Right         string `yaml:"right" toml:"right"`
	Top           string `yaml:"top" toml:"top"`
	Bottom        string `yaml:"bottom" toml:"bottom"`
	BarFocused    string `yaml:"bar_focused" toml:"bar_focused"`
	BarUnfocused  string `yaml:"bar_unfocused" toml:"bar_unfocused"`
	ManyVertical  string `yaml:"many_vertical" toml:"many_vertical"`
}

// LayoutStyle holds Pango span attributes per layout glyph category.
type LayoutStyle struct {
	Single     string `yaml:"single" toml:"single"`
	Horizontal string `yaml:"horizontal" toml:"horizontal"`
	Vertical   string `yaml:"vertical" toml:"vertical"`
	Floating   string `yaml:"floating" toml:"floating"`
}

// IconStyle holds Pango span attributes per application icon category.
type IconStyle struct {
	Known   string `yaml:"known" toml:"known"`
	Unknown string `yaml:"unknown" toml:"unknown"`
	Empty   string `yaml:"empty" toml:"empty"`
}

// TitleConfig controls whether and how much of the window title is shown.
type TitleConfig struct {
	Show      bool `yaml:"show" toml:"show"`
	MaxLength int  `yaml:"max_length" toml:"max_length"` // runes, 0 = unlimited
}

// LoggingConfig configures daemon logging.
type LoggingConfig struct {
	// Level controls verbosity: debug, info, warn, error
	Level string `yaml:"level" toml:"level"`
	// File is an optional log file; stderr is always written.
	File string `yaml:"file,omitempty" toml:"file,omitempty"`
	// MaxSizeMB is the size at which File is rotated (default: 10)
	MaxSizeMB int `yaml:"max_size_mb" toml:"max_size_mb"`
	// MaxFiles is the number of rotated files to keep (default: 3)
	MaxFiles int `yaml:"max_files" toml:"max_files"`
}

// Config is the effective configuration after defaults and files are merged.
type Config struct {
	// SocketPath overrides window manager socket discovery.
	SocketPath string `yaml:"socket_path,omitempty" toml:"socket_path,omitempty"`

	Icons       map[string]string `yaml:"icons" toml:"icons"`
	Glyphs      Glyphs            `yaml:"glyphs" toml:"glyphs"`
	LayoutStyle LayoutStyle       `yaml:"layout_style" toml:"layout_style"`
	IconStyle   IconStyle         `yaml:"icon_style" toml:"icon_style"`
	TitleStyle  string            `yaml:"title_style" toml:"title_style"`
	Title       TitleConfig       `yaml:"title" toml:"title"`
	Logging     LoggingConfig     `yaml:"logging" toml:"logging"`
}

// Icon returns the glyph configured for an application identifier.
func (c *Config) Icon(appID string) (string, bool) {
	glyph, ok := c.Icons[appID]
	return glyph, ok
}

// IconNames returns the configured application identifiers, sorted.
func (c *Config) IconNames() []string {
	names := make([]string, 0, len(c.Icons))
	for name := range c.Icons {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks an effective config.
func (c *Config) Validate() error {
	if c.Icons == nil {
		return &ValidationError{Path: "icons", Err: fmt.Errorf("icons must not be null")}
	}
	for appID := range c.Icons {
		if strings.TrimSpace(appID) == "" {
			return &ValidationError{Path: "icons", Err: fmt.Errorf("icons contains an empty application id")}
		}
	}
	if c.Glyphs.BarFocused == c.Glyphs.BarUnfocused {
		return &ValidationError{Path: "glyphs.bar_focused", Err: fmt.Errorf("bar_focused must differ from bar_unfocused")}
	}
	if c.Title.MaxLength < 0 {
		return &ValidationError{Path: "title.max_length", Err: fmt.Errorf("max_length must be >= 0")}
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return &ValidationError{Path: "logging.level", Err: fmt.Errorf("level must be one of: debug, info, warn, error")}
	}
	if c.Logging.MaxSizeMB < 0 {
		return &ValidationError{Path: "logging.max_size_mb", Err: fmt.Errorf("max_size_mb must be >= 0")}
	}
	if c.Logging.MaxFiles < 0 {
		return &ValidationError{Path: "logging.max_files", Err: fmt.Errorf("max_files must be >= 0")}
	}
	return nil
}
