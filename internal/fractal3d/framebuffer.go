package fractal3d

import "math"

// Framebuffer stores one rendered frame as a flat RGB float buffer:
// len = W*H*3, indexed (y*W+x)*3 + c.
type Framebuffer struct {
	W, H int
	Buf  []Real
}

// NewFramebuffer allocates a zero-initialized buffer for the given resolution.
func NewFramebuffer(w, h int) *Framebuffer {
	if w <= 0 || h <= 0 {
		panic("framebuffer resolution must be positive")
	}
	return &Framebuffer{W: w, H: h, Buf: make([]Real, w*h*3)}
}

// Flat buffer index helper (c ∈ {ChR,ChG,ChB}).
func (fb *Framebuffer) idx(x, y, c int) int {
	return (y*fb.W+x)*3 + c
}

// SetRGB writes one pixel. Distinct pixels may be written concurrently.
func (fb *Framebuffer) SetRGB(x, y int, c RGB) {
	base := fb.idx(x, y, ChR)
	fb.Buf[base+0] = c.R
	fb.Buf[base+1] = c.G
	fb.Buf[base+2] = c.B
}

// At reads one pixel back.
func (fb *Framebuffer) At(x, y int) RGB {
	base := fb.idx(x, y, ChR)
	return RGB{fb.Buf[base+0], fb.Buf[base+1], fb.Buf[base+2]}
}

// toByte maps a [0,1] scalar to 0..255 with gamma.
func toByte(v, gamma Real) uint8 {
	if v <= 0 {
		return 0
	}
	if v > 1 {
		v = 1
	}
	if gamma != 1 {
		v = math.Pow(v, 1.0/gamma)
	}
	return uint8(math.Round(v * 255))
}

// WriteRGBA fills dst (len >= 4*W*H) with 8-bit RGBA rows, applying gamma.
func (fb *Framebuffer) WriteRGBA(dst []byte, gamma Real) {
	for i, n := 0, fb.W*fb.H; i < n; i++ {
		base := i * 3
		p := i * 4
		dst[p+0] = toByte(fb.Buf[base+0], gamma)
		dst[p+1] = toByte(fb.Buf[base+1], gamma)
		dst[p+2] = toByte(fb.Buf[base+2], gamma)
		dst[p+3] = 0xFF
	}
}
