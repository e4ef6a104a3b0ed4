package config

// BuiltinIcons returns the built-in application icon table. The glyphs are
// Nerd Font code points; users extend or override the table under `icons`.
func BuiltinIcons() map[string]string {
	return map[string]string{
		"firefox":              "\uf269",
		"neovide":              "\ue62b",
		"Code":                 "\ue70c",
		"code":                 "\ue70c",
		"Chromium":             "\uf268",
		"chromium":             "\uf268",
		"gthumb":               "\uf03e",
		"swappy":               "\uf03e",
		"org.twosheds.iwgtk":   "\ufaa8",
		"org.gnome.Weather":    "\ue33a",
		"org.kde.krusader":     "\ueaec",
		"albert":               "\uf135",
		"gnome_system_monitor": "\ueba2",
		"foot":                 "\uf120",
		"kitty":                "\uf120",
		"Alacritty":            "\uf120",
		"thunderbird":          "\uf0e0",
	}
}

// BuiltinGlyphs returns the default glyph set.
func BuiltinGlyphs() Glyphs {
	return Glyphs{
		Empty:         "○",
		Unknown:       "?",
		Single:        "□",
		Floating:      "▪",
		FloatingPeers: "▣",
		Left:          "◧",
		Right:         "◨",
		Top:           "⬒",
		Bottom:        "⬓",
		BarFocused:    "┃",
		BarUnfocused:  "│",
		ManyVertical:  "☰",
	}
}

// DefaultConfig returns the configuration used when no file sets a key.
func DefaultConfig() *Config {
	return &Config{
		Icons:  BuiltinIcons(),
		Glyphs: BuiltinGlyphs(),
		LayoutStyle: LayoutStyle{
			Single:     "",
			Horizontal: "font_weight='bold'",
			Vertical:   "font_weight='bold'",
			Floating:   "",
		},
		IconStyle: IconStyle{
			Known:   "font_desc='Symbols Nerd Font'",
			Unknown: "",
			Empty:   "alpha='60%'",
		},
		TitleStyle: "font_size='small' rise='1000'",
		Title: TitleConfig{
			Show:      true,
			MaxLength: 25,
		},
		Logging: LoggingConfig{
			Level:     "info",
			MaxSizeMB: 10,
			MaxFiles:  3,
		},
	}
}
