package fractal3d

import "testing"

func TestStoreClampsDomains(t *testing.T) {
	st := NewStore()

	st.SetPower(20)
	if got := st.Params().Power; got != MaxPower {
		t.Fatalf("Power = %g, want %g", got, Real(MaxPower))
	}
	st.SetPower(0)
	if got := st.Params().Power; got != MinPower {
		t.Fatalf("Power = %g, want %g", got, Real(MinPower))
	}

	st.SetMandelIterations(0)
	if got := st.Params().MandelIterations; got != MinIterations {
		t.Fatalf("MandelIterations = %d, want %d", got, MinIterations)
	}
	st.SetMandelIterations(999)
	if got := st.Params().MandelIterations; got != MaxIterations {
		t.Fatalf("MandelIterations = %d, want %d", got, MaxIterations)
	}

	st.SetRayStepCount(1)
	if got := st.Params().RayStepCount; got != MinRaySteps {
		t.Fatalf("RayStepCount = %d, want %d", got, MinRaySteps)
	}

	st.SetHitThreshold(1)
	if got := st.Params().HitThreshold; got != MaxHitThreshold {
		t.Fatalf("HitThreshold = %g, want %g", got, Real(MaxHitThreshold))
	}

	st.SetCameraZoom(-3)
	if got := st.Params().CameraZoom; got != MinZoom {
		t.Fatalf("CameraZoom = %g, want %g", got, Real(MinZoom))
	}

	st.SetBackgroundGlow(100)
	if got := st.Params().BackgroundGlow; got != MaxGlowIntensity {
		t.Fatalf("BackgroundGlow = %g, want %g", got, Real(MaxGlowIntensity))
	}

	st.SetRotationSpeed(5)
	if got := st.Anim().RotationSpeed; got != MaxRotationSpeed {
		t.Fatalf("RotationSpeed = %g, want %g", got, Real(MaxRotationSpeed))
	}
}

func TestStoreInRangeValuesKept(t *testing.T) {
	st := NewStore()
	st.SetPower(3.7)
	st.SetColorScale(1.4)
	st.SetLightX(-6)
	p := st.Params()
	if p.Power != 3.7 || p.ColorScale != 1.4 || p.LightX != -6 {
		t.Fatalf("in-range values mangled: %+v", p)
	}
}

func TestSetOrientationRenormalizes(t *testing.T) {
	st := NewStore()
	q := QuatRotY(0.8)
	st.SetOrientation(Quat{q.X * 3, q.Y * 3, q.Z * 3, q.W * 3})
	got := st.Params().Orientation
	if !nearly(got.Len(), 1, eps) {
		t.Fatalf("orientation norm %.15g", got.Len())
	}
}

// While an animation drives a field, manual edits to it are refused; the
// other setters keep working.
func TestAnimationLocksManualEdits(t *testing.T) {
	st := NewStore()

	st.SetAnimatePower(true)
	before := st.Params().Power
	st.SetPower(2)
	if got := st.Params().Power; got != before {
		t.Fatalf("power edited while animated: %g", got)
	}
	st.SetAnimatePower(false)
	st.SetPower(2)
	if got := st.Params().Power; got != 2 {
		t.Fatalf("power edit refused after unlock: %g", got)
	}

	st.SetAnimateZoom(true)
	st.SetCameraZoom(9)
	if got := st.Params().CameraZoom; got == 9 {
		t.Fatal("zoom edited while animated")
	}

	// unrelated setters stay live while a lock is held
	st.SetMandelIterations(30)
	if got := st.Params().MandelIterations; got != 30 {
		t.Fatalf("unrelated setter blocked: %d", got)
	}
}

func TestPaletteIDClamped(t *testing.T) {
	st := NewStore()
	st.SetPaletteID(PaletteID(99))
	if got := st.Params().PaletteID; got != paletteCount-1 {
		t.Fatalf("PaletteID = %d, want %d", got, paletteCount-1)
	}
}

func TestComposeOrders(t *testing.T) {
	delta := QuatRotY(0.5)
	base := QuatRotX(0.9)

	st := NewStore()
	st.SetOrientation(base)
	st.ComposeOrientation(delta)
	post := st.Params().Orientation

	st.SetOrientation(base)
	st.mu.Lock()
	st.preComposeOrientation(delta)
	st.mu.Unlock()
	pre := st.Params().Orientation

	want := base.Mul(delta).Normalize()
	if !nearly(post.X, want.X, eps) || !nearly(post.W, want.W, eps) {
		t.Fatalf("post-compose = %+v, want %+v", post, want)
	}
	if post == pre {
		t.Fatal("pre and post composition should differ for non-commuting axes")
	}
}
