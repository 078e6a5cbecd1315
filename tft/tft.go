// Package tft drives ILI9488-class TFT controllers that accept 24-bit pixels
// over a write-only byte bus plus a data/command (DC) select line.
//
// Nothing is read back from the panel and nothing is buffered on the host:
// every drawing call is turned into an address window followed by a pixel
// stream.
package tft

import (
	"fmt"
	"time"

	"tinygo.org/x/drivers"
)

// Default panel geometry, landscape.
const (
	DefaultWidth  = 480
	DefaultHeight = 320
)

// Settle time after soft reset, sleep-out and each edge of a hardware reset.
const settleDelay = 120 * time.Millisecond

// Pin is an output line such as DC, CS or RST. machine.Pin implements it.
type Pin interface {
	High()
	Low()
}

// Bus is a blocking byte sink. Write returns once the bytes are on the wire.
type Bus interface {
	Write(p []byte) error
}

var _ drivers.Displayer = (*Device)(nil)

type spiBus struct {
	bus drivers.SPI
}

func (b spiBus) Write(p []byte) error {
	return b.bus.Tx(p, nil)
}

// Config holds the panel specific constants sent during Configure.
type Config struct {
	Width  int16
	Height int16

	// MemoryAccess is the MADCTL parameter (scan order, RGB/BGR order).
	MemoryAccess uint8
	// PixelFormat is the COLMOD parameter. Only 24 bits per pixel is streamed
	// by this package.
	PixelFormat uint8
	// Invert sends INVON instead of INVOFF. Most IPS modules need it.
	Invert bool
}

// DefaultConfig returns the configuration for a 480x320 landscape panel:
// row/column exchange with BGR order, 24 bpp and inverted colors.
func DefaultConfig() Config {
	return Config{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		MemoryAccess: SWAP_XY | RGB_BGR,
		PixelFormat:  PixelFormat24,
		Invert:       true,
	}
}

// State is the last completed step of the power-on sequence.
type State uint8

const (
	StateNone State = iota
	StateReset
	StateSleepOut
	StateConfiguredFormat
	StateInvertSet
	StateOn
)

func (s State) String() string {
	switch s {
	case StateNone:
		return "none"
	case StateReset:
		return "reset"
	case StateSleepOut:
		return "sleep-out"
	case StateConfiguredFormat:
		return "configured-format"
	case StateInvertSet:
		return "invert-set"
	case StateOn:
		return "on"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Device is a TFT controller on a Bus. It is not safe for concurrent use.
type Device struct {
	bus Bus
	dc  Pin
	cs  Pin
	rst Pin

	width  int16
	height int16
	state  State

	cmd    [1]byte
	params [4]byte
	row    []byte

	delay func(time.Duration)
}

// New returns a Device writing to bus. dc is required; cs and rst may be nil
// when the lines are hardwired.
func New(bus Bus, dc, cs, rst Pin) *Device {
	return &Device{
		bus:    bus,
		dc:     dc,
		cs:     cs,
		rst:    rst,
		width:  DefaultWidth,
		height: DefaultHeight,
		delay:  time.Sleep,
	}
}

// NewSPI returns a Device on a SPI bus such as machine.SPI0.
func NewSPI(bus drivers.SPI, dc, cs, rst Pin) *Device {
	return New(spiBus{bus: bus}, dc, cs, rst)
}

// Configure runs the power-on sequence: optional hardware reset, soft reset,
// sleep out, memory access and pixel format, inversion and display on. The
// steps are strictly sequential; the first bus error aborts the sequence.
func (d *Device) Configure(cfg Config) error {
	if cfg.Width > 0 && cfg.Height > 0 {
		d.width, d.height = cfg.Width, cfg.Height
	}
	d.state = StateNone

	if d.cs != nil {
		d.cs.Low()
	}
	if d.rst != nil {
		d.rst.Low()
		d.delay(settleDelay)
		d.rst.High()
		d.delay(settleDelay)
	}

	if err := d.Command(SWRESET); err != nil {
		return err
	}
	d.delay(settleDelay)
	d.state = StateReset

	if err := d.Command(SLPOUT); err != nil {
		return err
	}
	d.delay(settleDelay)
	d.state = StateSleepOut

	d.params[0] = cfg.MemoryAccess
	if err := d.Call(MADCTL, d.params[:1]); err != nil {
		return err
	}
	d.params[0] = cfg.PixelFormat
	if err := d.Call(COLMOD, d.params[:1]); err != nil {
		return err
	}
	d.state = StateConfiguredFormat

	inv := INVOFF
	if cfg.Invert {
		inv = INVON
	}
	if err := d.Command(inv); err != nil {
		return err
	}
	d.state = StateInvertSet

	if err := d.Command(DISPON); err != nil {
		return err
	}
	d.state = StateOn
	return nil
}

// State reports how far Configure got.
func (d *Device) State() State {
	return d.state
}

// Command sends a single opcode with DC low.
func (d *Device) Command(cmd byte) error {
	d.dc.Low()
	d.cmd[0] = cmd
	if err := d.bus.Write(d.cmd[:]); err != nil {
		return fmt.Errorf("tft: command %#02x: %w", cmd, err)
	}
	return nil
}

// Data sends parameter or pixel bytes with DC high.
func (d *Device) Data(data []byte) error {
	d.dc.High()
	return d.write(data)
}

// Call sends cmd followed by its parameters.
func (d *Device) Call(cmd byte, params []byte) error {
	if err := d.Command(cmd); err != nil {
		return err
	}
	d.dc.High()
	if len(params) == 0 {
		return nil
	}
	if err := d.bus.Write(params); err != nil {
		return fmt.Errorf("tft: command %#02x params: %w", cmd, err)
	}
	return nil
}

// write streams data assuming DC is already high.
func (d *Device) write(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if err := d.bus.Write(data); err != nil {
		return fmt.Errorf("tft: data: %w", err)
	}
	return nil
}
