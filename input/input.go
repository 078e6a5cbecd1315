// Package input turns the Pico's joystick and buttons into samples for
// pong.Joystick.
//
// The hardware readers are only built for rp2040; the conversions they use
// live here so they can be tested on any host.
package input

import "github.com/tinygo-org/tftpong/pong"

// ADC readings from machine.ADC.Get are left aligned to 16 bits; the RP2040
// converter has 12 bits of resolution.
const adcShift = 16 - 12

// scale converts a left aligned 16 bit ADC reading to a 12 bit sample.
func scale(raw uint16) uint16 {
	return raw >> adcShift
}

// buttonSample synthesizes a joystick sample from two buttons. Up reads as
// full scale, down as zero, neither or both as center.
func buttonSample(up, down bool) uint16 {
	switch {
	case up && !down:
		return pong.SampleMax
	case down && !up:
		return 0
	}
	return pong.SampleCenter
}
