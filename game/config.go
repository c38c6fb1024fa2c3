package game

import "pong/match"

// Config holds game configuration
type Config struct {
	// Match holds the field dimensions and physics constants
	Match match.Config

	// ScreenWidth is the logical screen width in pixels
	ScreenWidth int

	// ScreenHeight is the logical screen height in pixels
	ScreenHeight int

	// Title is the window title
	Title string

	// MaxDeltaTime caps a single tick's dt in seconds
	MaxDeltaTime float64

	// Seed seeds the serve direction generator; zero picks one from the clock
	Seed int64

	// Debug shows the debug HUD from the start (F1 toggles it)
	Debug bool

	// ProfileDir enables profile capture on frame-rate drops when non-empty
	ProfileDir string

	// MinTPS is the tick rate below which a profile is captured
	MinTPS float64
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	m := match.DefaultConfig()
	return Config{
		Match:        m,
		ScreenWidth:  int(m.FieldWidth),
		ScreenHeight: int(m.FieldHeight),
		Title:        "Pong",
		MaxDeltaTime: 0.1,
		MinTPS:       55,
	}
}
