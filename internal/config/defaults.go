package config

import (
	_ "embed"
)

//go:embed defaults/settings.yaml
var defaultSettingsYAML []byte

// DefaultSettings returns the built-in settings.
// It mirrors defaults/settings.yaml and is used when the embedded file
// cannot be parsed.
func DefaultSettings() Settings {
	return Settings{
		Grid: GridConfig{
			Width:  4,
			Height: 4,
		},
		Animation: AnimationConfig{
			MoveTime:     0.1,
			NewTime:      0.1,
			CombineTime:  0.1,
			CombineScale: 1.2,
		},
		Spawn: SpawnConfig{
			FourProbability: 0.1,
		},
		Geometry: GeometryConfig{
			TileSize:     6,
			TilePadding:  2,
			BoardPadding: 1,
			BoardOffsetY: 6,
			RowScale:     0.5,
		},
		Colors: ColorConfig{
			Board: "#bbada0",
			Empty: "#ccc0b3",
			Tiles: []string{
				"#ccc0b3", // empty
				"#eee4da", // 2
				"#ede0c8", // 4
				"#f2b179", // 8
				"#f59563", // 16
				"#f67c5f", // 32
				"#f65e3b", // 64
				"#edcf72", // 128
				"#edcc61", // 256
				"#edc850", // 512
				"#edc53f", // 1024
				"#edc22e", // 2048
			},
			Unknown:   "#cc0000",
			TextDark:  "#776e65",
			TextLight: "#f9f6f2",
			Label:     "#bbada0",
		},
		TickRate: 60,
		Target:   2048,
	}
}

// DefaultYAML returns the embedded default settings file.
func DefaultYAML() []byte {
	return defaultSettingsYAML
}
