package fractal3d

import "math"

// Estimate returns a lower bound on the distance from p to the power-N bulb
// surface, via the escape-time derivative estimator. In standard mode the
// additive constant is p itself; with JuliaEnabled the fold constant fully
// replaces it. Degenerate iterates never divide by zero: a zero-radius
// iterate restarts the recurrence at the additive constant, and an orbit that
// stays at zero radius (or a vanished derivative) contributes no surface and
// returns a large distance.
//
// Pure function of (p, params): no side effects, safe to evaluate from any
// number of goroutines at once.
func Estimate(p Vec3, pr *Params) Real {
	c := p
	if pr.JuliaEnabled {
		c = pr.JuliaConstant
	}

	z := p
	dr := Real(1)
	r := Real(0)

	for i := 0; i < pr.MandelIterations; i++ {
		r = z.Len()
		if r > EscapeRadius {
			break
		}
		if r == 0 {
			// z^power vanishes; the recurrence restarts at the additive
			// constant. No spherical conversion, no division by r.
			z = c
			dr = 1
			continue
		}

		// to spherical
		theta := math.Acos(z.Z / r)
		phi := math.Atan2(z.Y, z.X)

		// scale and rotate: z -> z^power + c
		dr = pr.Power*math.Pow(r, pr.Power-1)*dr + 1
		zr := math.Pow(r, pr.Power)
		theta *= pr.Power
		phi *= pr.Power

		sinTheta := math.Sin(theta)
		z = Vec3{
			zr * sinTheta * math.Cos(phi),
			zr * sinTheta * math.Sin(phi),
			zr * math.Cos(theta),
		}.Add(c)
	}

	if r == 0 || dr == 0 {
		return noSurface
	}
	return 0.5 * math.Log(r) * r / dr
}
