package fractal3d

import (
	"image"
	"image/png"
	"math"
	"os"
)

// SavePNG16 writes the framebuffer as a 16-bit-per-channel PNG.
// PNG is lossless; the only quantization is the float -> 16-bit mapping
// with the given gamma.
func SavePNG16(fb *Framebuffer, path string, gamma Real) error {
	toU16 := func(v Real) uint16 {
		if v <= 0 {
			return 0
		}
		if v > 1 {
			v = 1
		}
		if gamma != 1 {
			v = math.Pow(v, 1.0/gamma)
		}
		x := math.Round(v * 65535.0)
		if x > 65535 {
			return 65535
		}
		return uint16(x)
	}

	img := image.NewNRGBA64(image.Rect(0, 0, fb.W, fb.H))
	const pxBytes = 8 // 4 channels * 2 bytes/channel
	for y := 0; y < fb.H; y++ {
		rowOff := y * img.Stride
		for x := 0; x < fb.W; x++ {
			base := fb.idx(x, y, ChR)
			r := toU16(fb.Buf[base+0])
			g := toU16(fb.Buf[base+1])
			b := toU16(fb.Buf[base+2])
			a := uint16(0xFFFF)

			p := rowOff + x*pxBytes
			// NRGBA64 stores big-endian uint16 per channel: R, G, B, A.
			img.Pix[p+0] = uint8(r >> 8)
			img.Pix[p+1] = uint8(r)
			img.Pix[p+2] = uint8(g >> 8)
			img.Pix[p+3] = uint8(g)
			img.Pix[p+4] = uint8(b >> 8)
			img.Pix[p+5] = uint8(b)
			img.Pix[p+6] = uint8(a >> 8)
			img.Pix[p+7] = uint8(a)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
