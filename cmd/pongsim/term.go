package main

import (
	"image"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"
	xdraw "golang.org/x/image/draw"

	"github.com/tinygo-org/tftpong/pong"
	"github.com/tinygo-org/tftpong/tft"
	"github.com/tinygo-org/tftpong/tft/tftsim"
)

// Terminals only report key presses, so a press holds the stick over for a
// little longer than the typical key repeat interval.
const keyHold = 120 * time.Millisecond

// keyStick is a joystick driven by the arrow keys.
type keyStick struct {
	sample uint16
	until  time.Time
}

func (k *keyStick) press(sample uint16) {
	k.sample = sample
	k.until = time.Now().Add(keyHold)
}

func (k *keyStick) Sample() uint16 {
	if time.Now().After(k.until) {
		return pong.SampleCenter
	}
	return k.sample
}

func interactive(display *tft.Device, panel *tftsim.Panel, cfg pong.Config) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	stick := &keyStick{}
	game := pong.New(display, stick, cfg)
	r := &renderer{screen: s}

	game.Splash("PONG")
	r.render(panel.Image())
	time.Sleep(time.Second)
	if err := display.FillScreen(cfg.Background); err != nil {
		return err
	}

	events := make(chan tcell.Event)
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(cfg.TickPeriod)
	defer ticker.Stop()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch ev.Key() {
				case tcell.KeyUp:
					stick.press(pong.SampleMax)
				case tcell.KeyDown:
					stick.press(0)
				case tcell.KeyEscape, tcell.KeyCtrlC:
					return nil
				case tcell.KeyRune:
					if ev.Rune() == 'q' {
						return nil
					}
				}
			case *tcell.EventResize:
				s.Sync()
			}
		case <-ticker.C:
			if err := game.Tick(); err != nil {
				return err
			}
			r.render(panel.Image())
		}
	}
}

// renderer draws an image with one half-block cell per two pixel rows.
type renderer struct {
	screen tcell.Screen
	dst    *image.RGBA
}

func (r *renderer) render(src image.Image) {
	w, h := r.screen.Size()
	if w <= 0 || h <= 0 {
		return
	}
	if r.dst == nil || r.dst.Rect.Dx() != w || r.dst.Rect.Dy() != 2*h {
		r.dst = image.NewRGBA(image.Rect(0, 0, w, 2*h))
	}
	xdraw.NearestNeighbor.Scale(r.dst, r.dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			top, bottom := r.dst.RGBAAt(x, 2*y), r.dst.RGBAAt(x, 2*y+1)
			style := tcell.StyleDefault.Foreground(cellColor(top)).Background(cellColor(bottom))
			r.screen.SetContent(x, y, '▀', nil, style)
		}
	}
	r.screen.Show()
}

func cellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
