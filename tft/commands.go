package tft

// Controller opcodes. Every opcode is sent with DC low; its parameters and any
// pixel stream that follows are sent with DC high.
const (
	SWRESET byte = 0x01
	SLPOUT  byte = 0x11
	INVOFF  byte = 0x20
	INVON   byte = 0x21
	DISPOFF byte = 0x28
	DISPON  byte = 0x29
	CASET   byte = 0x2A
	RASET   byte = 0x2B
	RAMWR   byte = 0x2C
	MADCTL  byte = 0x36
	COLMOD  byte = 0x3A
)

// MADCTL bits.
const (
	ROW_ORDER   uint8 = 0b10000000
	COL_ORDER   uint8 = 0b01000000
	SWAP_XY     uint8 = 0b00100000 // AKA "MV"
	SCAN_ORDER  uint8 = 0b00010000
	RGB_BGR     uint8 = 0b00001000
	HORIZ_ORDER uint8 = 0b00000100
)

// COLMOD values.
const (
	PixelFormat16 uint8 = 0x05
	PixelFormat18 uint8 = 0x06
	PixelFormat24 uint8 = 0x07
)

// BytesPerPixel is the size of one pixel in the RAMWR stream.
const BytesPerPixel = 3
