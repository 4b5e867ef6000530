package config

import (
	_ "embed"
)

//go:embed defaults/connect4.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration, used when even
// the embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		Theme: ThemeConfig{
			BlackGlyph:  "●",
			WhiteGlyph:  "○",
			EmptyGlyph:  "_",
			BlackColor:  "red",
			WhiteColor:  "yellow",
			CursorColor: "cyan",
		},
		Players: PlayersConfig{
			Black: "human",
			White: "random",
		},
		Match: MatchConfig{
			ThinkDelayMS: 400,
		},
		Storage: StorageConfig{
			DBPath: "~/.connect4/matches.db",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
