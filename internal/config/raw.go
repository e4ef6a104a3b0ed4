package config

// Raw* types mirror the file format. Every field is optional so that a file
// only overrides the keys it names.

type RawGlyphs struct {
	Empty         *string `yaml:"empty" toml:"empty"`
	Unknown       *string `yaml:"unknown" toml:"unknown"`
	Single        *string `yaml:"single" toml:"single"`
	Floating      *string `yaml:"floating" toml:"floating"`
	FloatingPeers *string `yaml:"floating_peers" toml:"floating_peers"`
	Left          *string `yaml:"left" toml:"left"`
	Right         *string `yaml:"right" toml:"right"`
	Top           *string `yaml:"top" toml:"top"`
	Bottom        *string `yaml:"bottom" toml:"bottom"`
	BarFocused    *string `yaml:"bar_focused" toml:"bar_focused"`
	BarUnfocused  *string `yaml:"bar_unfocused" toml:"bar_unfocused"`
	ManyVertical  *string `yaml:"many_vertical" toml:"many_vertical"`
}

type RawLayoutStyle struct {
	Single     *string `yaml:"single" toml:"single"`
	Horizontal *string `yaml:"horizontal" toml:"horizontal"`
	Vertical   *string `yaml:"vertical" toml:"vertical"`
	Floating   *string `yaml:"floating" toml:"floating"`
}

type RawIconStyle struct {
	Known   *string `yaml:"known" toml:"known"`
	Unknown *string `yaml:"unknown" toml:"unknown"`
	Empty   *string `yaml:"empty" toml:"empty"`
}

type RawTitle struct {
	Show      *bool `yaml:"show" toml:"show"`
	MaxLength *int  `yaml:"max_length" toml:"max_length"`
}

type RawLogging struct {
	Level     *string `yaml:"level" toml:"level"`
	File      *string `yaml:"file" toml:"file"`
	MaxSizeMB *int    `yaml:"max_size_mb" toml:"max_size_mb"`
	MaxFiles  *int    `yaml:"max_files" toml:"max_files"`
}

type RawConfig struct {
	SocketPath  *string           `yaml:"socket_path" toml:"socket_path"`
	Icons       map[string]string `yaml:"icons" toml:"icons"`
	Glyphs      *RawGlyphs        `yaml:"glyphs" toml:"glyphs"`
	LayoutStyle *RawLayoutStyle   `yaml:"layout_style" toml:"layout_style"`
	IconStyle   *RawIconStyle     `yaml:"icon_style" toml:"icon_style"`
	TitleStyle  *string           `yaml:"title_style" toml:"title_style"`
	Title       *RawTitle         `yaml:"title" toml:"title"`
	Logging     *RawLogging       `yaml:"logging" toml:"logging"`
}
