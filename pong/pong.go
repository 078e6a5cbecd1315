// Package pong runs a two paddle, one ball game on a display that cannot be
// read back and has no frame buffer.
//
// Every tick the game updates its state and then reconciles the screen by
// painting the previous rectangles in the background color followed by the
// current rectangles in the foreground color. All erases go out before any
// draw so an erase can never eat into something drawn in the same tick.
package pong

import (
	"image/color"
	"time"

	"tinygo.org/x/drivers"
)

// Screen is what the game draws on. tft.Device implements it.
type Screen interface {
	drivers.Displayer
	FillRectangle(x, y, w, h int16, c color.RGBA) error
}

// Joystick delivers one vertical deflection sample in [0, SampleMax] per
// call, SampleCenter at rest. Samples below center move the player paddle
// down the screen.
type Joystick interface {
	Sample() uint16
}

// JoystickFunc adapts a function to Joystick.
type JoystickFunc func() uint16

func (f JoystickFunc) Sample() uint16 { return f() }

// Game owns the paddles and the ball. The left paddle follows the joystick,
// the right one follows the ball.
type Game struct {
	cfg    Config
	screen Screen
	stick  Joystick

	Left  Paddle
	Right Paddle
	Ball  Ball

	prevLeft  Paddle
	prevRight Paddle
	prevBall  Ball

	ticks  uint64
	resets uint64

	sleep func(time.Duration)
}

// New returns a game in its starting position. Nothing is drawn until the
// first Tick.
func New(screen Screen, stick Joystick, cfg Config) *Game {
	g := &Game{
		cfg:    cfg,
		screen: screen,
		stick:  stick,
		sleep:  time.Sleep,
	}
	g.Reset()
	return g
}

// Config returns the configuration the game was built with.
func (g *Game) Config() Config { return g.cfg }

// Reset centers both paddles and serves the ball from the middle.
func (g *Game) Reset() {
	c := g.cfg
	y := c.Height/2 - c.PaddleHeight/2
	g.Left = Paddle{X: c.PaddleInset, Y: y, Width: c.PaddleWidth, Height: c.PaddleHeight}
	g.Right = Paddle{X: c.Width - c.PaddleInset - c.PaddleWidth, Y: y, Width: c.PaddleWidth, Height: c.PaddleHeight}
	g.serve()
	g.prevLeft, g.prevRight, g.prevBall = g.Left, g.Right, g.Ball
}

// serve puts the ball in the middle of the screen with its initial velocity.
func (g *Game) serve() {
	c := g.cfg
	g.Ball = Ball{
		X:    c.Width/2 - c.BallSize/2,
		Y:    c.Height/2 - c.BallSize/2,
		DX:   c.BallSpeedX,
		DY:   c.BallSpeedY,
		Size: c.BallSize,
	}
}

// Ticks returns the number of ticks run so far.
func (g *Game) Ticks() uint64 { return g.ticks }

// Resets returns how many times the ball left the field and was served
// again. Nothing else is scored.
func (g *Game) Resets() uint64 { return g.resets }

// Tick advances the game by one frame and redraws it.
func (g *Game) Tick() error {
	g.Update()
	return g.Redraw()
}

// Run ticks forever, sleeping one tick period between frames. It only
// returns if drawing fails.
func (g *Game) Run() error {
	for {
		if err := g.Tick(); err != nil {
			return err
		}
		g.sleep(g.cfg.TickPeriod)
	}
}

// Update advances the state by one tick without drawing.
func (g *Game) Update() {
	g.prevLeft, g.prevRight, g.prevBall = g.Left, g.Right, g.Ball

	g.steer()
	g.track()

	g.Ball.advance(g.cfg.Height)
	g.Ball.deflectLeft(g.Left)
	g.Ball.deflectRight(g.Right)

	if g.Ball.out(g.cfg.Width) {
		g.serve()
		g.resets++
	}
	g.ticks++
}

// steer moves the player paddle from one joystick sample.
func (g *Game) steer() {
	dev := int(SampleCenter) - int(g.stick.Sample())
	dz := int(g.cfg.DeadZone)
	switch {
	case dev > dz:
		g.Left.move(g.cfg.PaddleSpeed, g.maxPaddleY())
	case dev < -dz:
		g.Left.move(-g.cfg.PaddleSpeed, g.maxPaddleY())
	}
}

// track moves the right paddle one step toward the ball.
func (g *Game) track() {
	target, mid := g.Ball.center(), g.Right.center()
	switch {
	case target < mid:
		g.Right.move(-g.cfg.PaddleSpeed, g.maxPaddleY())
	case target > mid:
		g.Right.move(g.cfg.PaddleSpeed, g.maxPaddleY())
	}
}

func (g *Game) maxPaddleY() int16 {
	return g.cfg.Height - g.cfg.PaddleHeight
}

// Redraw erases the previous positions and draws the current ones. A
// rectangle that is partly off screen is dropped by the screen; the game
// still counts it as drawn.
func (g *Game) Redraw() error {
	bg, fg := g.cfg.Background, g.cfg.Foreground
	for _, r := range [...]struct {
		x, y, w, h int16
		c          color.RGBA
	}{
		{g.prevLeft.X, g.prevLeft.Y, g.prevLeft.Width, g.prevLeft.Height, bg},
		{g.prevRight.X, g.prevRight.Y, g.prevRight.Width, g.prevRight.Height, bg},
		{g.prevBall.X, g.prevBall.Y, g.prevBall.Size, g.prevBall.Size, bg},
		{g.Left.X, g.Left.Y, g.Left.Width, g.Left.Height, fg},
		{g.Right.X, g.Right.Y, g.Right.Width, g.Right.Height, fg},
		{g.Ball.X, g.Ball.Y, g.Ball.Size, g.Ball.Size, fg},
	} {
		if err := g.screen.FillRectangle(r.x, r.y, r.w, r.h, r.c); err != nil {
			return err
		}
	}
	return nil
}
