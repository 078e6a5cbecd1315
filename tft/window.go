package tft

// span encodes the inclusive range [start, start+size-1] as the four CASET or
// RASET parameter bytes: start high, start low, end high, end low.
func span(start, size int16) [4]byte {
	end := start + size - 1
	return [4]byte{uint8(start >> 8), uint8(start), uint8(end >> 8), uint8(end)}
}

// SetWindow sets the address window that the next pixel stream fills. The
// window is w by h pixels with its top left corner at x, y.
func (d *Device) SetWindow(x, y, w, h int16) error {
	d.params = span(x, w)
	if err := d.Call(CASET, d.params[:]); err != nil {
		return err
	}
	d.params = span(y, h)
	return d.Call(RASET, d.params[:])
}

// StartWrite sends RAMWR and leaves DC high. Bytes written with Data after
// this land in the current window row by row; the controller wraps within
// the window on its own.
func (d *Device) StartWrite() error {
	if err := d.Command(RAMWR); err != nil {
		return err
	}
	d.dc.High()
	return nil
}
