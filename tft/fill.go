package tft

import (
	"image/color"
)

// ExpandRow returns a row of w pixels of color c as interleaved r, g, b bytes,
// reusing dst when it is large enough. Alpha is ignored.
func ExpandRow(dst []byte, w int, c color.RGBA) []byte {
	n := w * BytesPerPixel
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i := 0; i < n; i += BytesPerPixel {
		dst[i] = c.R
		dst[i+1] = c.G
		dst[i+2] = c.B
	}
	return dst
}

// Size returns the panel size in pixels.
func (d *Device) Size() (w, h int16) {
	return d.width, d.height
}

// contains reports whether the rectangle is non-empty and fully on screen.
func (d *Device) contains(x, y, w, h int16) bool {
	return x >= 0 && y >= 0 && w > 0 && h > 0 &&
		int(x)+int(w) <= int(d.width) && int(y)+int(h) <= int(d.height)
}

// FillRectangle paints a solid rectangle. A rectangle that is empty or not
// entirely on screen is dropped without touching the bus and without an
// error; callers that track what they drew will then be out of step with the
// panel.
func (d *Device) FillRectangle(x, y, w, h int16, c color.RGBA) error {
	if !d.contains(x, y, w, h) {
		return nil
	}
	if err := d.SetWindow(x, y, w, h); err != nil {
		return err
	}
	if err := d.StartWrite(); err != nil {
		return err
	}
	d.row = ExpandRow(d.row, int(w), c)
	for i := int16(0); i < h; i++ {
		if err := d.write(d.row); err != nil {
			return err
		}
	}
	return nil
}

// FillScreen paints the whole panel one full-width row at a time.
func (d *Device) FillScreen(c color.RGBA) error {
	return d.FillRectangle(0, 0, d.width, d.height, c)
}

// SetPixel paints a single pixel. It goes straight to the panel; there is no
// buffer to Display.
func (d *Device) SetPixel(x, y int16, c color.RGBA) {
	d.FillRectangle(x, y, 1, 1, c)
}

// Display is a no-op since nothing is buffered.
func (d *Device) Display() error {
	return nil
}
