//go:build rp2040

package input

import "machine"

// Stick reads the vertical axis of an analog joystick.
type Stick struct {
	adc machine.ADC
}

// NewStick configures pin (one of machine.ADC0..ADC3) as an analog input.
func NewStick(pin machine.Pin) *Stick {
	machine.InitADC()
	adc := machine.ADC{Pin: pin}
	adc.Configure(machine.ADCConfig{})
	return &Stick{adc: adc}
}

// Sample returns one 12 bit reading.
func (s *Stick) Sample() uint16 {
	return scale(s.adc.Get())
}
