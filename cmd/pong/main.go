//go:build rp2040

// Command pong is the Raspberry Pi Pico firmware: a 480x320 24-bit TFT on
// SPI0, an analog joystick on ADC1 and two buttons.
//
//	tinygo flash -target=pico ./cmd/pong
//	tinygo flash -target=pico -tags=parallel ./cmd/pong
package main

import (
	"machine"
	"time"

	"github.com/tinygo-org/tftpong/input"
	"github.com/tinygo-org/tftpong/internal/rp2dma"
	"github.com/tinygo-org/tftpong/pong"
	"github.com/tinygo-org/tftpong/tft"
)

const (
	csPin  = machine.GP5
	dcPin  = machine.GP6
	rstPin = machine.GP7

	joyYPin    = machine.ADC1 // GP27
	buttonAPin = machine.GP15 // up
	buttonBPin = machine.GP14 // down
)

const MHz = 1_000_000

// Steer with the A/B buttons instead of the joystick.
const useButtons = false

func main() {
	time.Sleep(2 * time.Second)

	println("DMA copy")
	dmaHello()

	println("Initializing Display")
	display, err := newDisplay()
	if err != nil {
		panic(err.Error())
	}
	if err := display.Configure(tft.DefaultConfig()); err != nil {
		panic(err.Error())
	}

	cfg := pong.DefaultConfig()
	println("Clearing Screen")
	if err := display.FillScreen(cfg.Background); err != nil {
		panic(err.Error())
	}

	var stick pong.Joystick = input.NewStick(joyYPin)
	if useButtons {
		stick = input.NewButtons(buttonAPin, buttonBPin)
	}
	game := pong.New(display, stick, cfg)

	game.Splash("PONG")
	time.Sleep(time.Second)
	if err := display.FillScreen(cfg.Background); err != nil {
		panic(err.Error())
	}

	println("Running")
	panic(game.Run().Error())
}

// dmaHello copies a string with a DMA channel and prints the copy.
func dmaHello() {
	src := []byte("Hello, world! (from DMA)")
	dst := make([]byte, len(src))
	ch, err := rp2dma.Claim()
	if err != nil {
		panic(err.Error())
	}
	defer ch.Unclaim()
	if err := ch.Copy(dst, src); err != nil {
		println(err.Error())
		return
	}
	println(string(dst))
}

func configureOutputs(pins ...machine.Pin) {
	for _, p := range pins {
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
		p.High()
	}
}
