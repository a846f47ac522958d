package fractal3d

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
)

// SaveAnimatedGIF renders an animation of the store's time-driven overrides:
// one control tick of dt seconds per frame, snapshot, render, quantize.
// delay is in 100ths of a second per frame (e.g. 4 => 25 fps).
func SaveAnimatedGIF(st *Store, w, h, frames, delay int, dt, gamma Real, path string) error {
	if frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", frames)
	}

	fs := NewFrameSync(st)
	fb := NewFramebuffer(w, h)
	rgba := image.NewNRGBA(image.Rect(0, 0, w, h))

	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, frames),
		Delay:     make([]int, 0, frames),
		LoopCount: 0,
	}

	step := 1
	if frames >= 100 {
		step = frames / 100
	}

	elapsed := Real(0)
	for k := 0; k < frames; k++ {
		if k%step == 0 {
			fmt.Printf("[GIF] %.2f%%\n", Real(k+1)*100/Real(frames))
		}

		st.AdvanceAnimation(elapsed, dt)
		elapsed += dt

		snap := fs.Snapshot(w, h)
		RenderFrame(fb, &snap)

		for y := 0; y < h; y++ {
			rowOff := y * rgba.Stride
			for x := 0; x < w; x++ {
				base := fb.idx(x, y, ChR)
				p := rowOff + x*4
				rgba.Pix[p+0] = toByte(fb.Buf[base+0], gamma)
				rgba.Pix[p+1] = toByte(fb.Buf[base+1], gamma)
				rgba.Pix[p+2] = toByte(fb.Buf[base+2], gamma)
				rgba.Pix[p+3] = 255
			}
		}

		// Quantize to paletted for GIF
		pimg := image.NewPaletted(rgba.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(pimg, pimg.Bounds(), rgba, image.Point{})

		out.Image = append(out.Image, pimg)
		out.Delay = append(out.Delay, delay)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, out)
}
