package fractal3d

import (
	"runtime"
	"sync"
)

// primaryRay builds the camera ray for pixel (x, y). The eye sits on the -Z
// axis at the zoom distance and looks at the origin; the stored orientation
// rotates the fractal instead of the camera, inside March.
func primaryRay(x, y, w, h int, zoom Real) (origin, dir Vec3) {
	aspect := Real(w) / Real(h)
	u := ((Real(x)+0.5)/Real(w)*2 - 1) * aspect
	v := 1 - (Real(y)+0.5)/Real(h)*2
	origin = Vec3{0, 0, -zoom}
	dir = Vec3{u, v, FocalLength}.Norm()
	return
}

// RenderPixel evaluates the full pixel pipeline for one pixel: primary ray,
// sphere trace, shading. Pure with respect to the snapshot; allocation-free.
func RenderPixel(x, y int, s *FrameSnapshot) RGB {
	origin, dir := primaryRay(x, y, s.Width, s.Height, s.CameraZoom)
	res := March(origin, dir, s)
	return Shade(res, s, dir)
}

// RenderFrame renders the snapshot into fb, splitting rows across
// runtime.NumCPU() workers. Every pixel observes the same snapshot; workers
// write disjoint rows, so the loop needs no locks.
func RenderFrame(fb *Framebuffer, s *FrameSnapshot) {
	if fb.W != s.Width || fb.H != s.Height {
		panic("framebuffer resolution does not match snapshot")
	}

	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}

	rows := make(chan int, workers)
	go func() {
		for y := 0; y < fb.H; y++ {
			rows <- y
		}
		close(rows)
	}()

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for y := range rows {
				for x := 0; x < fb.W; x++ {
					fb.SetRGB(x, y, RenderPixel(x, y, s))
				}
			}
		}()
	}
	wg.Wait()
}
