package compose

// Color is an 8-bit-per-channel RGB color. The in-buffer byte order is
// BGR (see Pixel); Color always carries channels in RGB order.
type Color struct {
	R uint8
	G uint8
	B uint8
}
