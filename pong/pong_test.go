package pong

import (
	"errors"
	"image"
	"image/color"
	"math/rand"
	"testing"
	"time"

	"github.com/tinygo-org/tftpong/tft"
	"github.com/tinygo-org/tftpong/tft/tftsim"
)

type fill struct {
	x, y, w, h int16
	c          color.RGBA
}

// recScreen records FillRectangle calls instead of drawing.
type recScreen struct {
	fills []fill
	err   error
}

func (s *recScreen) Size() (int16, int16)              { return 480, 320 }
func (s *recScreen) SetPixel(x, y int16, c color.RGBA) { s.FillRectangle(x, y, 1, 1, c) }
func (s *recScreen) Display() error                    { return nil }

func (s *recScreen) FillRectangle(x, y, w, h int16, c color.RGBA) error {
	if s.err != nil {
		return s.err
	}
	s.fills = append(s.fills, fill{x, y, w, h, c})
	return nil
}

func centered() Joystick { return JoystickFunc(func() uint16 { return SampleCenter }) }

func TestNew(t *testing.T) {
	g := New(&recScreen{}, centered(), DefaultConfig())
	if want := (Paddle{X: 10, Y: 130, Width: 10, Height: 60}); g.Left != want {
		t.Errorf("Left == %+v, want %+v", g.Left, want)
	}
	if want := (Paddle{X: 460, Y: 130, Width: 10, Height: 60}); g.Right != want {
		t.Errorf("Right == %+v, want %+v", g.Right, want)
	}
	if want := (Ball{X: 235, Y: 155, DX: 3, DY: 3, Size: 10}); g.Ball != want {
		t.Errorf("Ball == %+v, want %+v", g.Ball, want)
	}
}

func TestSteer(t *testing.T) {
	for _, c := range []struct {
		sample uint16
		wantY  int16
	}{
		{SampleCenter, 130},
		{SampleCenter - 400, 130},
		{SampleCenter + 400, 130},
		{SampleCenter - 401, 135},
		{SampleCenter + 401, 125},
		{0, 135},
		{SampleMax, 125},
	} {
		sample := c.sample
		g := New(&recScreen{}, JoystickFunc(func() uint16 { return sample }), DefaultConfig())
		g.Update()
		if g.Left.Y != c.wantY {
			t.Errorf("sample %d: Left.Y == %d, want %d", c.sample, g.Left.Y, c.wantY)
		}
	}
}

func TestTrack(t *testing.T) {
	for _, c := range []struct {
		ballY int16
		wantY int16
	}{
		{10, 125},
		{155, 130},
		{300, 135},
	} {
		g := New(&recScreen{}, centered(), DefaultConfig())
		g.Ball.Y = c.ballY
		g.Update()
		if g.Right.Y != c.wantY {
			t.Errorf("ball at %d: Right.Y == %d, want %d", c.ballY, g.Right.Y, c.wantY)
		}
	}
}

func TestPaddlesStayOnScreen(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	stick := JoystickFunc(func() uint16 {
		if rnd.Intn(3) == 0 {
			return SampleCenter
		}
		if rnd.Intn(2) == 0 {
			return 0
		}
		return SampleMax
	})
	g := New(&recScreen{}, stick, DefaultConfig())
	maxY := g.Config().Height - g.Config().PaddleHeight
	var sawTop, sawBottom bool
	for i := 0; i < 5000; i++ {
		g.Update()
		for _, p := range []Paddle{g.Left, g.Right} {
			if p.Y < 0 || p.Y > maxY {
				t.Fatalf("tick %d: paddle %+v out of [0, %d]", i, p, maxY)
			}
			sawTop = sawTop || p.Y == 0
			sawBottom = sawBottom || p.Y == maxY
		}
	}
	if !sawTop || !sawBottom {
		t.Errorf("paddles reached top=%v bottom=%v, want both", sawTop, sawBottom)
	}
}

func TestBallReset(t *testing.T) {
	serve := Ball{X: 235, Y: 155, DX: 3, DY: 3, Size: 10}
	for _, c := range []struct {
		name string
		ball Ball
	}{
		{"left", Ball{X: 2, Y: 20, DX: -3, DY: 3, Size: 10}},
		{"right", Ball{X: 469, Y: 20, DX: 3, DY: -3, Size: 10}},
	} {
		t.Run(c.name, func(t *testing.T) {
			g := New(&recScreen{}, centered(), DefaultConfig())
			g.Ball = c.ball
			g.Update()
			if g.Ball != serve {
				t.Errorf("Ball == %+v, want %+v", g.Ball, serve)
			}
			if g.Resets() != 1 {
				t.Errorf("Resets() == %d, want 1", g.Resets())
			}
		})
	}
}

func TestPaddleReturnsBall(t *testing.T) {
	g := New(&recScreen{}, centered(), DefaultConfig())
	g.Ball = Ball{X: 23, Y: 150, DX: -3, DY: 3, Size: 10}
	g.Update()
	if want := (Ball{X: 20, Y: 153, DX: 3, DY: 3, Size: 10}); g.Ball != want {
		t.Errorf("Ball == %+v, want %+v", g.Ball, want)
	}
	if g.Resets() != 0 {
		t.Errorf("Resets() == %d, want 0", g.Resets())
	}
}

func TestRedrawErasesBeforeDrawing(t *testing.T) {
	s := &recScreen{}
	g := New(s, JoystickFunc(func() uint16 { return 0 }), DefaultConfig())
	if err := g.Tick(); err != nil {
		t.Fatal(err)
	}
	bg, fg := g.Config().Background, g.Config().Foreground
	want := []fill{
		{10, 130, 10, 60, bg},
		{460, 130, 10, 60, bg},
		{235, 155, 10, 10, bg},
		{10, 135, 10, 60, fg},
		{460, 130, 10, 60, fg},
		{238, 158, 10, 10, fg},
	}
	if len(s.fills) != len(want) {
		t.Fatalf("got %d fills, want %d: %+v", len(s.fills), len(want), s.fills)
	}
	for i := range want {
		if s.fills[i] != want[i] {
			t.Errorf("fill %d == %+v, want %+v", i, s.fills[i], want[i])
		}
	}
	if g.Ticks() != 1 {
		t.Errorf("Ticks() == %d, want 1", g.Ticks())
	}
}

func TestRunStopsOnError(t *testing.T) {
	errDraw := errors.New("draw failed")
	g := New(&recScreen{err: errDraw}, centered(), DefaultConfig())
	g.sleep = func(time.Duration) { t.Fatal("slept after a failed tick") }
	if err := g.Run(); !errors.Is(err, errDraw) {
		t.Errorf("Run() == %v, want %v", err, errDraw)
	}
}

func onScreen(x, y, w, h int16, cfg Config) bool {
	return x >= 0 && y >= 0 && x+w <= cfg.Width && y+h <= cfg.Height
}

// With no frame buffer the panel must still end every tick showing exactly
// the on-screen entities at their current positions.
func TestPanelMatchesState(t *testing.T) {
	cfg := DefaultConfig()
	panel := tftsim.New(int(cfg.Width), int(cfg.Height))
	d := tft.New(panel, panel.DC(), nil, nil)
	if err := d.Configure(tft.DefaultConfig()); err != nil {
		t.Fatal(err)
	}
	if err := d.FillScreen(cfg.Background); err != nil {
		t.Fatal(err)
	}

	rnd := rand.New(rand.NewSource(7))
	sample := uint16(SampleCenter)
	stick := JoystickFunc(func() uint16 {
		if rnd.Intn(20) == 0 {
			sample = uint16(rnd.Intn(SampleMax + 1))
		}
		return sample
	})
	g := New(d, stick, cfg)

	for tick := 0; tick < 400; tick++ {
		if err := g.Tick(); err != nil {
			t.Fatal(err)
		}
		var lit []image.Rectangle
		for _, r := range []struct{ x, y, w, h int16 }{
			{g.Left.X, g.Left.Y, g.Left.Width, g.Left.Height},
			{g.Right.X, g.Right.Y, g.Right.Width, g.Right.Height},
			{g.Ball.X, g.Ball.Y, g.Ball.Size, g.Ball.Size},
		} {
			if onScreen(r.x, r.y, r.w, r.h, cfg) {
				lit = append(lit, image.Rect(int(r.x), int(r.y), int(r.x+r.w), int(r.y+r.h)))
			}
		}
		for y := 0; y < int(cfg.Height); y++ {
			for x := 0; x < int(cfg.Width); x++ {
				want := cfg.Background
				for _, r := range lit {
					if image.Pt(x, y).In(r) {
						want = cfg.Foreground
						break
					}
				}
				got := panel.Pixel(x, y)
				if got.R != want.R || got.G != want.G || got.B != want.B {
					t.Fatalf("tick %d: pixel (%d, %d) == %v, want %v", tick, x, y, got, want)
				}
			}
		}
	}
	if g.Resets() == 0 {
		t.Log("ball never left the field")
	}
}

func TestSplash(t *testing.T) {
	cfg := DefaultConfig()
	panel := tftsim.New(int(cfg.Width), int(cfg.Height))
	d := tft.New(panel, panel.DC(), nil, nil)
	g := New(d, centered(), cfg)
	g.Splash("PONG")

	lit := 0
	b := panel.Image().Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if panel.Pixel(x, y) != cfg.Foreground {
				continue
			}
			lit++
			if x < 180 || x > 300 || y < 130 || y > 170 {
				t.Errorf("lit pixel at (%d, %d), want near the center", x, y)
			}
		}
	}
	if lit == 0 {
		t.Error("Splash drew nothing")
	}
}
