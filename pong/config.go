package pong

import (
	"image/color"
	"time"
)

// Joystick samples are 12-bit, as read from the RP2040 ADC.
const (
	SampleMax    = 4095
	SampleCenter = 2048
)

// Config holds the playfield geometry and tuning. All of it is fixed at build
// time; DefaultConfig matches a 480x320 panel.
type Config struct {
	Width  int16
	Height int16

	PaddleWidth  int16
	PaddleHeight int16
	// PaddleInset is the gap between each paddle and its side of the screen.
	PaddleInset int16
	BallSize    int16

	PaddleSpeed int16
	BallSpeedX  int16
	BallSpeedY  int16

	// DeadZone is how far a sample must stray from SampleCenter before the
	// player paddle moves.
	DeadZone int16

	TickPeriod time.Duration

	Background color.RGBA
	Foreground color.RGBA
}

func DefaultConfig() Config {
	return Config{
		Width:        480,
		Height:       320,
		PaddleWidth:  10,
		PaddleHeight: 60,
		PaddleInset:  10,
		BallSize:     10,
		PaddleSpeed:  5,
		BallSpeedX:   3,
		BallSpeedY:   3,
		DeadZone:     400,
		TickPeriod:   30 * time.Millisecond,
		Background:   color.RGBA{0, 0, 0, 0xff},
		Foreground:   color.RGBA{0xff, 0xff, 0xff, 0xff},
	}
}
