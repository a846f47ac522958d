package fractal3d

import "math"

// MarchResult is the per-pixel outcome of one sphere-traced ray.
// Ephemeral: produced, shaded and dropped within a single pixel evaluation.
type MarchResult struct {
	Hit      bool
	Point    Vec3
	Normal   Vec3
	Steps    int
	Traveled Real
}

// March sphere-traces a ray against the bulb described by the snapshot.
// dir must be unit-length. The stored orientation rotates the fractal, so the
// field is sampled at the inverse-rotated point; rays stay in camera space.
//
// Termination is bounded by construction: at most RayStepCount estimator
// calls, or until the traveled distance exceeds MaxMarchDistance.
func March(origin, dir Vec3, s *FrameSnapshot) MarchResult {
	qInv := s.Orientation.Conj()
	res := MarchResult{}
	p := origin

	// Fast-forward to the bounding sphere when starting outside it.
	// The bulb lives inside BoundingRadius, so a ray that misses the sphere
	// can never hit the surface; report the miss without marching.
	if p.Len() > BoundingRadius {
		tEnter, ok := raySphere(p, dir, BoundingRadius)
		if !ok || tEnter > s.MaxMarchDistance {
			res.Traveled = s.MaxMarchDistance
			return res
		}
		p = p.Add(dir.Mul(tEnter))
		res.Traveled = tEnter
	}

	for i := 0; i < s.RayStepCount; i++ {
		res.Steps = i + 1
		d := Estimate(qInv.Rotate(p), &s.Params)
		if d < s.HitThreshold {
			res.Hit = true
			res.Point = p
			res.Normal = normalAt(p, qInv, s)
			return res
		}
		res.Traveled += d
		if res.Traveled > s.MaxMarchDistance {
			return res
		}
		p = p.Add(dir.Mul(d))
	}
	return res
}

// normalAt estimates the surface normal as the central-difference gradient of
// the distance field, sampled hitThreshold apart along each axis.
func normalAt(p Vec3, qInv Quat, s *FrameSnapshot) Vec3 {
	e := s.HitThreshold
	sample := func(q Vec3) Real { return Estimate(qInv.Rotate(q), &s.Params) }
	g := Vec3{
		sample(Vec3{p.X + e, p.Y, p.Z}) - sample(Vec3{p.X - e, p.Y, p.Z}),
		sample(Vec3{p.X, p.Y + e, p.Z}) - sample(Vec3{p.X, p.Y - e, p.Z}),
		sample(Vec3{p.X, p.Y, p.Z + e}) - sample(Vec3{p.X, p.Y, p.Z - e}),
	}
	if g.Len() == 0 {
		// Flat gradient; face the camera rather than divide by zero.
		return Vec3{0, 0, -1}
	}
	return g.Norm()
}

// raySphere intersects a ray with a sphere of radius r centered at the
// origin and returns the nearest non-negative entry distance.
func raySphere(origin, dir Vec3, r Real) (Real, bool) {
	b := origin.Dot(dir)
	c := origin.Dot(origin) - r*r
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	root := math.Sqrt(disc)
	t := -b - root
	if t < 0 {
		// origin inside the sphere or sphere behind the ray
		if -b+root < 0 {
			return 0, false
		}
		return 0, true
	}
	return t, true
}
