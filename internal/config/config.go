// Package config provides YAML-based settings loading for the merge2048
// engine and its terminal host.
package config

// Settings is the read-only configuration value handed to the engine and the
// renderer. It is constructed once at startup and never mutated afterwards.
type Settings struct {
	Grid      GridConfig      `yaml:"grid"`
	Animation AnimationConfig `yaml:"animation"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Geometry  GeometryConfig  `yaml:"geometry"`
	Colors    ColorConfig     `yaml:"colors"`
	TickRate  int             `yaml:"tick_rate"` // Host frames per second
	Target    int             `yaml:"target"`    // Winning tile value, 0 disables
}

// GridConfig defines the board dimensions in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// AnimationConfig defines animation durations in seconds.
type AnimationConfig struct {
	MoveTime     float64 `yaml:"move_time"`
	NewTime      float64 `yaml:"new_time"`
	CombineTime  float64 `yaml:"combine_time"`
	CombineScale float64 `yaml:"combine_scale"` // Initial size of a combined tile relative to tile_size
}

// SpawnConfig defines tile spawning parameters.
type SpawnConfig struct {
	FourProbability float64 `yaml:"four_probability"` // Probability of spawning 4 instead of 2 (0.0-1.0)
}

// GeometryConfig defines board layout in renderer units.
// The terminal host uses one unit per column; RowScale converts vertical
// units to rows.
type GeometryConfig struct {
	TileSize     float64 `yaml:"tile_size"`
	TilePadding  float64 `yaml:"tile_padding"`
	BoardPadding float64 `yaml:"board_padding"`
	BoardOffsetY float64 `yaml:"board_offset_y"`
	RowScale     float64 `yaml:"row_scale"`
}

// ColorConfig defines the palette as hex colour strings.
type ColorConfig struct {
	Board     string   `yaml:"board"`
	Empty     string   `yaml:"empty"`
	Tiles     []string `yaml:"tiles"` // Indexed by log2(value); index 0 is unused
	Unknown   string   `yaml:"unknown"`
	TextDark  string   `yaml:"text_dark"`
	TextLight string   `yaml:"text_light"`
	Label     string   `yaml:"label"`
}
