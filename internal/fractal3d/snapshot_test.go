package fractal3d

import (
	"encoding/binary"
	"math"
	"testing"
)

func wordF(buf []byte, i int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
}

func wordU(buf []byte, i int) uint32 {
	return binary.LittleEndian.Uint32(buf[i*4:])
}

func TestAppendUniformLayout(t *testing.T) {
	s := FrameSnapshot{Params: DefaultParams(), Width: 800, Height: 450}
	s.PaletteID = PaletteFire
	s.JuliaEnabled = true
	s.Orientation = QuatRotY(0.3)

	buf := s.AppendUniform(nil)
	if len(buf) != UniformWords*4 {
		t.Fatalf("record length %d, want %d", len(buf), UniformWords*4)
	}

	if wordF(buf, 0) != 800 || wordF(buf, 1) != 450 {
		t.Fatalf("resolution words: %g x %g", wordF(buf, 0), wordF(buf, 1))
	}
	if wordF(buf, 2) != float32(s.Power) {
		t.Fatalf("power word: %g", wordF(buf, 2))
	}
	if wordU(buf, 3) != uint32(s.RayStepCount) {
		t.Fatalf("raySteps word: %d", wordU(buf, 3))
	}
	if wordU(buf, 4) != uint32(s.MandelIterations) {
		t.Fatalf("iterations word: %d", wordU(buf, 4))
	}
	if wordF(buf, 5) != float32(s.MaxMarchDistance) {
		t.Fatalf("maxDist word: %g", wordF(buf, 5))
	}
	if wordF(buf, 6) != float32(s.HitThreshold) {
		t.Fatalf("threshold word: %g", wordF(buf, 6))
	}
	if wordF(buf, 7) != float32(s.CameraZoom) {
		t.Fatalf("zoom word: %g", wordF(buf, 7))
	}
	if wordU(buf, 8) != uint32(PaletteFire) {
		t.Fatalf("palette word: %d", wordU(buf, 8))
	}
	if wordF(buf, 9) != float32(s.LightX) || wordF(buf, 10) != float32(s.LightY) {
		t.Fatalf("light words: %g %g", wordF(buf, 9), wordF(buf, 10))
	}
	if wordF(buf, 16) != float32(s.Orientation.X) || wordF(buf, 19) != float32(s.Orientation.W) {
		t.Fatalf("orientation words: %g .. %g", wordF(buf, 16), wordF(buf, 19))
	}
	if wordF(buf, 20) != float32(s.JuliaConstant.X) || wordF(buf, 22) != float32(s.JuliaConstant.Z) {
		t.Fatalf("julia words: %g .. %g", wordF(buf, 20), wordF(buf, 22))
	}
	if wordF(buf, 23) != 1 {
		t.Fatalf("julia flag word: %g", wordF(buf, 23))
	}
}

func TestAppendUniformJuliaFlagOff(t *testing.T) {
	s := FrameSnapshot{Params: DefaultParams(), Width: 64, Height: 64}
	buf := s.AppendUniform(nil)
	if wordF(buf, 23) != 0 {
		t.Fatalf("julia flag word: %g", wordF(buf, 23))
	}
}

func TestAppendUniformAppends(t *testing.T) {
	s := FrameSnapshot{Params: DefaultParams(), Width: 64, Height: 64}
	prefix := []byte{0xde, 0xad}
	buf := s.AppendUniform(prefix)
	if len(buf) != 2+UniformWords*4 {
		t.Fatalf("appended length %d", len(buf))
	}
	if buf[0] != 0xde || buf[1] != 0xad {
		t.Fatal("prefix overwritten")
	}
}
