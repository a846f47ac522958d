package fractal3d

import "testing"

func TestPrimaryRayGeometry(t *testing.T) {
	origin, dir := primaryRay(32, 32, 64, 64, 2.5)
	if origin != (Vec3{0, 0, -2.5}) {
		t.Fatalf("origin %+v", origin)
	}
	if !nearly(dir.Len(), 1, eps) {
		t.Fatalf("dir not unit: %+v", dir)
	}
	// center pixel looks almost straight down +Z
	if dir.Z < 0.99 {
		t.Fatalf("center dir %+v", dir)
	}

	// left edge aims left, top edge aims up
	_, left := primaryRay(0, 32, 64, 64, 2.5)
	if left.X >= 0 {
		t.Fatalf("left-edge dir %+v", left)
	}
	_, top := primaryRay(32, 0, 64, 64, 2.5)
	if top.Y <= 0 {
		t.Fatalf("top-edge dir %+v", top)
	}
}

func TestRenderPixelCenterHitsCornerMisses(t *testing.T) {
	s := defaultSnapshot()
	s.BackgroundGlow = 1

	center := RenderPixel(s.Width/2, s.Height/2, &s)
	corner := RenderPixel(0, 0, &s)

	// The corner ray clears the bounding sphere, so it is exactly the glow
	// background; the center pixel strikes the bulb and is shaded differently.
	wantBG := backgroundBase.Mul(1).clamp01()
	if corner != wantBG {
		t.Fatalf("corner pixel %+v, want background %+v", corner, wantBG)
	}
	if center == wantBG {
		t.Fatal("center pixel rendered as background")
	}
}

func TestRenderFrameMatchesPerPixel(t *testing.T) {
	s := defaultSnapshot()
	s.Width, s.Height = 16, 12

	fb := NewFramebuffer(s.Width, s.Height)
	RenderFrame(fb, &s)

	for _, px := range [][2]int{{0, 0}, {8, 6}, {15, 11}, {3, 9}} {
		want := RenderPixel(px[0], px[1], &s)
		got := fb.At(px[0], px[1])
		if got != want {
			t.Fatalf("pixel %v: frame %+v, direct %+v", px, got, want)
		}
	}
}

func TestRenderFrameDeterministic(t *testing.T) {
	s := defaultSnapshot()
	s.Width, s.Height = 20, 10
	s.PaletteID = PaletteFire

	a := NewFramebuffer(s.Width, s.Height)
	b := NewFramebuffer(s.Width, s.Height)
	RenderFrame(a, &s)
	RenderFrame(b, &s)

	for i := range a.Buf {
		if a.Buf[i] != b.Buf[i] {
			t.Fatalf("frame differs at flat index %d: %g vs %g", i, a.Buf[i], b.Buf[i])
		}
	}
}

func TestRenderFrameResolutionMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("mismatched framebuffer did not panic")
		}
	}()
	s := defaultSnapshot()
	RenderFrame(NewFramebuffer(8, 8), &s)
}
