package fractal3d

// RGB stores color components; each should be in [0,1].
type RGB struct {
	R, G, B Real
}

func (a RGB) Add(b RGB) RGB  { return RGB{a.R + b.R, a.G + b.G, a.B + b.B} }
func (c RGB) Mul(s Real) RGB { return RGB{c.R * s, c.G * s, c.B * s} }

// clamp01 clamps each channel to [0,1].
func (c RGB) clamp01() RGB {
	cl := func(x Real) Real {
		if x < 0 {
			return 0
		}
		if x > 1 {
			return 1
		}
		return x
	}
	return RGB{cl(c.R), cl(c.G), cl(c.B)}
}
