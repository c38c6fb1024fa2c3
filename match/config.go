package match

// Config holds the fixed dimensions and speeds of a match
type Config struct {
	// FieldWidth is the width of the play field in units (pixels)
	FieldWidth float64

	// FieldHeight is the height of the play field in units (pixels)
	FieldHeight float64

	// PaddleWidth and PaddleHeight are the paddle extents
	PaddleWidth  float64
	PaddleHeight float64

	// PaddleInset is the gap between a paddle and its side of the field,
	// measured in addition to one paddle width
	PaddleInset float64

	// PaddleSpeed is the vertical paddle speed in units per second
	PaddleSpeed float64

	// BallSpeed is the ball speed in units per second
	BallSpeed float64

	// BallRadius is the ball radius in units
	BallRadius float64

	// IdleFrequency is the angular frequency (radians per second) of the
	// bobbing animation played while a serve is pending
	IdleFrequency float64
}

// DefaultConfig returns the classic 640x480 configuration
func DefaultConfig() Config {
	return Config{
		FieldWidth:    640,
		FieldHeight:   480,
		PaddleWidth:   10,
		PaddleHeight:  125,
		PaddleInset:   16,
		PaddleSpeed:   300,
		BallSpeed:     225,
		BallRadius:    15,
		IdleFrequency: 2,
	}
}

// IdleAmplitude returns how far the idle ball travels above and below the midline
func (c Config) IdleAmplitude() float64 {
	return (c.FieldHeight - 5*c.BallRadius) / 2
}

// PaddleX returns the fixed horizontal position of a side's paddle
func (c Config) PaddleX(side Side) float64 {
	if side == Left {
		return c.PaddleWidth + c.PaddleInset
	}
	return c.FieldWidth - 2*c.PaddleWidth - c.PaddleInset
}
