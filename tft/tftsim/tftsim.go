// Package tftsim emulates the controller end of the tft command/data protocol.
//
// A Panel is a tft.Bus and, through DC, the data/command line. It keeps the
// controller registers the tft package touches and a frame memory that RAMWR
// streams land in, so drawing code can be checked by looking at pixels
// rather than at bytes. Orientation bits in MADCTL are recorded but not
// applied: the frame memory is laid out as the host sees it.
package tftsim

import (
	"image"
	"image/color"

	"github.com/tinygo-org/tftpong/tft"
)

// Panel is an emulated controller with its frame memory.
type Panel struct {
	img *image.RGBA

	dc     bool
	cmd    byte
	params [4]byte
	nparam int

	win    image.Rectangle // inclusive min, exclusive max
	cx, cy int
	pix    [3]byte
	npix   int

	madctl   byte
	colmod   byte
	awake    bool
	on       bool
	inverted bool

	commands []byte
	writes   int
}

// New returns a panel of w by h pixels in its reset state.
func New(w, h int) *Panel {
	p := &Panel{img: image.NewRGBA(image.Rect(0, 0, w, h))}
	p.reset()
	return p
}

func (p *Panel) reset() {
	p.win = p.img.Rect
	p.madctl = 0
	p.colmod = tft.PixelFormat18
	p.awake = false
	p.on = false
	p.inverted = false
	p.nparam = 0
	p.npix = 0
}

// DC returns the data/command line of the panel.
func (p *Panel) DC() tft.Pin {
	return dcLine{p}
}

type dcLine struct {
	p *Panel
}

func (l dcLine) High() { l.p.dc = true }
func (l dcLine) Low()  { l.p.dc = false }

// Write takes bytes off the bus. With DC low every byte is an opcode;
// with DC high the bytes are parameters or pixels for the last opcode.
func (p *Panel) Write(b []byte) error {
	p.writes++
	for _, c := range b {
		if p.dc {
			p.data(c)
		} else {
			p.command(c)
		}
	}
	return nil
}

func (p *Panel) command(c byte) {
	p.cmd = c
	p.nparam = 0
	p.commands = append(p.commands, c)
	switch c {
	case tft.SWRESET:
		p.reset()
	case tft.SLPOUT:
		p.awake = true
	case tft.DISPON:
		p.on = true
	case tft.DISPOFF:
		p.on = false
	case tft.INVON:
		p.inverted = true
	case tft.INVOFF:
		p.inverted = false
	case tft.RAMWR:
		p.cx, p.cy = p.win.Min.X, p.win.Min.Y
		p.npix = 0
	}
}

func (p *Panel) data(c byte) {
	switch p.cmd {
	case tft.CASET, tft.RASET:
		if p.nparam >= len(p.params) {
			return
		}
		p.params[p.nparam] = c
		p.nparam++
		if p.nparam < len(p.params) {
			return
		}
		start := int(p.params[0])<<8 | int(p.params[1])
		end := int(p.params[2])<<8 | int(p.params[3])
		if p.cmd == tft.CASET {
			p.win.Min.X, p.win.Max.X = start, end+1
		} else {
			p.win.Min.Y, p.win.Max.Y = start, end+1
		}
	case tft.MADCTL:
		p.madctl = c
	case tft.COLMOD:
		p.colmod = c
	case tft.RAMWR:
		p.pix[p.npix] = c
		p.npix++
		if p.npix < len(p.pix) {
			return
		}
		p.npix = 0
		if image.Pt(p.cx, p.cy).In(p.img.Rect) {
			p.img.SetRGBA(p.cx, p.cy, color.RGBA{p.pix[0], p.pix[1], p.pix[2], 0xff})
		}
		p.cx++
		if p.cx >= p.win.Max.X {
			p.cx = p.win.Min.X
			p.cy++
			if p.cy >= p.win.Max.Y {
				p.cy = p.win.Min.Y
			}
		}
	}
}

// Image returns the frame memory. It is live: later writes show up in it.
func (p *Panel) Image() *image.RGBA { return p.img }

// Pixel returns the frame memory at x, y.
func (p *Panel) Pixel(x, y int) color.RGBA { return p.img.RGBAAt(x, y) }

// Window returns the current address window.
func (p *Panel) Window() image.Rectangle { return p.win }

// Commands returns every opcode received so far, in order.
func (p *Panel) Commands() []byte { return p.commands }

// Writes returns the number of bus writes received so far.
func (p *Panel) Writes() int { return p.writes }

// MemoryAccess returns the last MADCTL parameter.
func (p *Panel) MemoryAccess() byte { return p.madctl }

// PixelFormat returns the last COLMOD parameter.
func (p *Panel) PixelFormat() byte { return p.colmod }

// Awake reports whether SLPOUT was received since the last reset.
func (p *Panel) Awake() bool { return p.awake }

// On reports whether the display output is enabled.
func (p *Panel) On() bool { return p.on }

// Inverted reports whether color inversion is enabled.
func (p *Panel) Inverted() bool { return p.inverted }
