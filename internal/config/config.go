// Package config provides YAML-based configuration loading for the
// connect-four platform: glyph theme, default move providers, and
// storage location. Board dimensions are fixed in the engine and are
// deliberately not configurable.
package config

// Config contains all user-tunable settings.
type Config struct {
	Theme   ThemeConfig   `yaml:"theme"`
	Players PlayersConfig `yaml:"players"`
	Match   MatchConfig   `yaml:"match"`
	Storage StorageConfig `yaml:"storage"`
}

// ThemeConfig defines how the board is drawn.
type ThemeConfig struct {
	BlackGlyph string `yaml:"black_glyph"` // Piece glyph for Black
	WhiteGlyph string `yaml:"white_glyph"` // Piece glyph for White
	EmptyGlyph string `yaml:"empty_glyph"` // Glyph for empty cells
	BlackColor string `yaml:"black_color"` // "red", "yellow", ...
	WhiteColor string `yaml:"white_color"`
	CursorColor string `yaml:"cursor_color"`
}

// PlayersConfig names the default move provider per side.
type PlayersConfig struct {
	Black string `yaml:"black"`
	White string `yaml:"white"`
}

// MatchConfig defines match pacing.
type MatchConfig struct {
	// ThinkDelayMS is the pause before an automated provider moves,
	// so that unattended turns stay watchable.
	ThinkDelayMS int `yaml:"think_delay_ms"`
}

// StorageConfig defines where match history is kept.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// glyphOr returns the first rune of s, or fallback when s is empty.
func glyphOr(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}

// BlackRune returns the configured glyph for Black pieces.
func (t ThemeConfig) BlackRune() rune {
	return glyphOr(t.BlackGlyph, '●')
}

// WhiteRune returns the configured glyph for White pieces.
func (t ThemeConfig) WhiteRune() rune {
	return glyphOr(t.WhiteGlyph, '○')
}

// EmptyRune returns the configured glyph for empty cells.
func (t ThemeConfig) EmptyRune() rune {
	return glyphOr(t.EmptyGlyph, '_')
}
