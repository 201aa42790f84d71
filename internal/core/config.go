package core

// RuntimeConfig contains the terminal geometry passed to the platform layer.
type RuntimeConfig struct {
	ScreenW int // Screen width in characters
	ScreenH int // Screen height in characters
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// TooSmall reports whether the screen is below the minimum playable size.
func (c RuntimeConfig) TooSmall(minW, minH int) bool {
	return c.ScreenW < minW || c.ScreenH < minH
}
