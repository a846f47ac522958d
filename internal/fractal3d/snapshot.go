package fractal3d

import (
	"encoding/binary"
	"math"
)

// FrameSnapshot is the immutable per-frame copy of the live parameters plus
// the output resolution. It is produced once per frame by FrameSync and read
// by every pixel of that frame; nothing ever mutates it after creation.
type FrameSnapshot struct {
	Params
	Width, Height int
}

// UniformWords is the size, in 32-bit words, of the packed per-frame record.
// Reordering or resizing any field below is a breaking format change; bump
// UniformVersion when that happens.
const (
	UniformWords   = 24
	UniformVersion = 1
)

// AppendUniform packs the snapshot into the fixed-order little-endian record
// consumed by a GPU-style pixel stage:
//
//	resolution(2f) power(f) raySteps(u) iters(u) maxDist(f) threshold(f)
//	zoom(f) palette(u) lightX(f) lightY(f) glow(f) colorScale(f)
//	colorOffset(f) ao(f) rim(f) orientation(4f) julia(3f)+enabled(f)
func (s *FrameSnapshot) AppendUniform(dst []byte) []byte {
	putF := func(v Real) {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], math.Float32bits(float32(v)))
		dst = append(dst, b[:]...)
	}
	putU := func(v uint32) {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], v)
		dst = append(dst, b[:]...)
	}

	putF(Real(s.Width))
	putF(Real(s.Height))
	putF(s.Power)
	putU(uint32(s.RayStepCount))
	putU(uint32(s.MandelIterations))
	putF(s.MaxMarchDistance)
	putF(s.HitThreshold)
	putF(s.CameraZoom)
	putU(uint32(s.PaletteID))
	putF(s.LightX)
	putF(s.LightY)
	putF(s.BackgroundGlow)
	putF(s.ColorScale)
	putF(s.ColorOffset)
	putF(s.AOStrength)
	putF(s.RimStrength)
	putF(s.Orientation.X)
	putF(s.Orientation.Y)
	putF(s.Orientation.Z)
	putF(s.Orientation.W)
	putF(s.JuliaConstant.X)
	putF(s.JuliaConstant.Y)
	putF(s.JuliaConstant.Z)
	if s.JuliaEnabled {
		putF(1)
	} else {
		putF(0)
	}
	return dst
}
