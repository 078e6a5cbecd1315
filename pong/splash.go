package pong

import (
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var splashFont = &proggy.TinySZ8pt7b

// Splash writes text centered on the screen in the foreground color. It
// draws pixel by pixel through SetPixel; clear the screen before the first
// Tick.
func (g *Game) Splash(text string) {
	_, w := tinyfont.LineWidth(splashFont, text)
	x := (g.cfg.Width - int16(w)) / 2
	y := g.cfg.Height / 2
	tinyfont.WriteLine(g.screen, splashFont, x, y, text, g.cfg.Foreground)
}
