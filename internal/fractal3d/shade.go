package fractal3d

import "math"

// backgroundBase is the flat miss color before the glow intensity scales it.
var backgroundBase = RGB{0.10, 0.11, 0.16}

// PaletteColor maps a color index through the selected ramp. Pure function of
// its inputs: identical (index, id, scale, offset) always yields the same RGB.
func PaletteColor(index Real, id PaletteID, scale, offset Real) RGB {
	t := index*scale + offset

	switch id {
	case PaletteFire:
		// black -> red -> yellow -> white, piecewise over one period
		f := frac(t)
		switch {
		case f < 0.33:
			return RGB{f / 0.33, 0, 0}
		case f < 0.66:
			return RGB{1, (f - 0.33) / 0.33, 0}
		default:
			return RGB{1, 1, (f - 0.66) / 0.34}
		}
	case PaletteNeon:
		// purple/green periodic
		return RGB{
			0.5 + 0.5*math.Sin(2*math.Pi*t),
			0.5 + 0.5*math.Sin(2*math.Pi*t+2.4),
			0.5 + 0.5*math.Sin(2*math.Pi*t+4.8),
		}.clamp01()
	case PaletteIce:
		// cool blue to white
		f := frac(t)
		return RGB{0.4 * f * f, 0.4*f + 0.3*f*f, 0.6 + 0.4*f}.clamp01()
	default:
		// Standard: cosine ramp around a warm/cold axis
		return RGB{
			0.5 + 0.5*math.Cos(2*math.Pi*t),
			0.5 + 0.5*math.Cos(2*math.Pi*t-1.0),
			0.5 + 0.5*math.Cos(2*math.Pi*t-2.0),
		}
	}
}

// Shade turns one march result into a final clamped color.
// dir is the (unit) ray direction the result was marched along.
func Shade(res MarchResult, s *FrameSnapshot, dir Vec3) RGB {
	if !res.Hit {
		return backgroundBase.Mul(s.BackgroundGlow).clamp01()
	}

	// Color index from march depth: deeper marches index further along the ramp.
	index := Real(res.Steps) / Real(s.RayStepCount)
	col := PaletteColor(index, s.PaletteID, s.ColorScale, s.ColorOffset)

	// Lambertian point light at (lightX, lightY, lightZ).
	lightPos := Vec3{s.LightX, s.LightY, lightZ}
	l := lightPos.Sub(res.Point).Norm()
	diffuse := res.Normal.Dot(l)
	if diffuse < 0 {
		diffuse = 0
	}
	col = col.Mul(ambientTerm + diffuse)

	// Step-count ambient occlusion: more steps to reach the surface means
	// tighter geometry, so darken proportionally.
	occ := 1 - s.AOStrength*Real(res.Steps)/Real(s.RayStepCount)
	if occ < 0 {
		occ = 0
	}
	col = col.Mul(occ)

	// Rim highlight on grazing view angles.
	view := dir.Mul(-1)
	facing := res.Normal.Dot(view)
	if facing < 0 {
		facing = 0
	}
	rim := math.Pow(1-facing, rimFalloff) * s.RimStrength
	col = col.Add(RGB{rim, rim, rim})

	return col.clamp01()
}

// frac returns the positive fractional part of x.
func frac(x Real) Real {
	f := x - math.Floor(x)
	if f < 0 {
		f += 1
	}
	return f
}
