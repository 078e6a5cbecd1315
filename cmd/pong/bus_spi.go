//go:build rp2040 && !parallel

package main

import (
	"machine"

	"github.com/tinygo-org/tftpong/tft"
)

const (
	sckPin = machine.GP2
	sdoPin = machine.GP3
	sdiPin = machine.GP4
)

func newDisplay() (*tft.Device, error) {
	spi := machine.SPI0
	err := spi.Configure(machine.SPIConfig{
		Frequency: 40 * MHz,
		SCK:       sckPin,
		SDO:       sdoPin,
		SDI:       sdiPin,
		Mode:      0,
	})
	if err != nil {
		return nil, err
	}
	configureOutputs(dcPin, csPin, rstPin)
	return tft.NewSPI(spi, dcPin, csPin, rstPin), nil
}
