//go:build rp2040 && parallel

package main

import (
	"machine"

	pio "github.com/tinygo-org/pio/rp2-pio"
	"github.com/tinygo-org/pio/rp2-pio/piolib"
	"github.com/tinygo-org/tftpong/tft"
)

// 8080-style parallel wiring: WR strobe plus D0..D7 on consecutive pins.
const (
	wrPin  = machine.GP8
	db0Pin = machine.GP16
)

func newDisplay() (*tft.Device, error) {
	sm, err := pio.PIO0.ClaimStateMachine()
	if err != nil {
		return nil, err
	}
	bus, err := piolib.NewParallel8Tx(sm, wrPin, db0Pin, 10*MHz)
	if err != nil {
		return nil, err
	}
	configureOutputs(dcPin, csPin, rstPin)
	return tft.New(bus, dcPin, csPin, rstPin), nil
}
