//go:build rp2040

package input

import "machine"

// Buttons reads two push buttons wired to ground, up and down, and reports
// them as a digital joystick.
type Buttons struct {
	up, down machine.Pin
}

func NewButtons(up, down machine.Pin) *Buttons {
	up.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	down.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return &Buttons{up: up, down: down}
}

// Up reports whether the up button is held.
func (b *Buttons) Up() bool { return !b.up.Get() }

// Down reports whether the down button is held.
func (b *Buttons) Down() bool { return !b.down.Get() }

// Sample returns SampleMax while up is held, 0 while down is held and
// SampleCenter otherwise.
func (b *Buttons) Sample() uint16 {
	return buttonSample(b.Up(), b.Down())
}
