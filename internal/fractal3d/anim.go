package fractal3d

import "math"

// AdvanceAnimation runs one control tick of the time-driven overrides.
// elapsed is total time since start, dt the time since the previous tick,
// both in seconds. Overrides write the live values directly and take
// precedence over manual edits for the same field (the public setters
// refuse edits while the matching flag is on).
func (st *Store) AdvanceAnimation(elapsed, dt Real) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.a.AnimatePower {
		// Normalized sine, then exponential mapping: the shape's visual
		// complexity grows exponentially with the exponent.
		n := 0.5 + 0.5*math.Sin(elapsed*0.1*st.a.PowerSpeed)
		st.p.Power = clamp(math.Pow(16, n), MinPower, MaxPower)
	}

	if st.a.AnimateZoom {
		st.p.CameraZoom = clamp(2.75+0.25*math.Sin(elapsed*st.a.ZoomSpeed), MinZoom, MaxZoom)
	}

	if st.a.RotationSpeed > 0 {
		angle := st.a.RotationSpeed * dt
		delta := QuatRotY(angle).Mul(QuatRotX(angle))
		st.preComposeOrientation(delta)
	}
}
