package fractal3d

import (
	"math"
	"testing"
)

func defaultTestParams() Params { return DefaultParams() }

// Far outside the escape radius the estimator must never report a surface
// within hit tolerance: no false positives outside the set.
func TestEstimateOutsideEscapeRadius(t *testing.T) {
	p := defaultTestParams()

	dirs := []Vec3{
		{1, 0, 0}, {0, 1, 0}, {0, 0, 1},
		{-1, 0, 0}, {0, -1, 0}, {0, 0, -1},
		Vec3{1, 2, 3}.Norm(), Vec3{-0.3, 0.9, -0.5}.Norm(),
	}
	for _, d := range dirs {
		for _, radius := range []Real{2.01, 2.5, 5, 10, 50} {
			pt := d.Mul(radius)
			got := Estimate(pt, &p)
			if got < MaxHitThreshold {
				t.Fatalf("Estimate(%+v) = %g, below max hit threshold", pt, got)
			}
		}
	}
}

func TestEstimateDeterministic(t *testing.T) {
	p := defaultTestParams()
	pt := Vec3{0.7, -0.2, 0.4}
	a := Estimate(pt, &p)
	b := Estimate(pt, &p)
	if a != b {
		t.Fatalf("Estimate not deterministic: %g vs %g", a, b)
	}
}

// Switching to Julia fold replaces the additive constant, so the estimate at
// the origin must change relative to the standard recurrence.
func TestJuliaFoldObservableAtOrigin(t *testing.T) {
	std := defaultTestParams()
	jul := defaultTestParams()
	jul.JuliaEnabled = true
	jul.JuliaConstant = Vec3{0.35, 0.35, -0.35}

	dStd := Estimate(Vec3{}, &std)
	dJul := Estimate(Vec3{}, &jul)

	if dStd != noSurface {
		t.Fatalf("standard estimate at origin = %g, want no-contribution distance", dStd)
	}
	if dJul == dStd {
		t.Fatalf("julia fold not observable at origin: both %g", dJul)
	}
}

// A zero orbit in standard mode contributes no surface; it must not divide
// by zero or take ln(0).
func TestEstimateDegenerateOrbit(t *testing.T) {
	p := defaultTestParams()
	got := Estimate(Vec3{}, &p)
	if got != noSurface {
		t.Fatalf("Estimate(origin) = %g, want %g", got, Real(noSurface))
	}
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Fatalf("Estimate(origin) not finite: %g", got)
	}
}

// Near the bulb surface along -Z the estimate should be small and shrink as
// the point approaches the surface from outside.
func TestEstimateShrinksTowardSurface(t *testing.T) {
	p := defaultTestParams()
	far := Estimate(Vec3{0, 0, -2.5}, &p)
	near := Estimate(Vec3{0, 0, -1.3}, &p)
	if near >= far {
		t.Fatalf("estimate did not shrink toward surface: far=%g near=%g", far, near)
	}
}

func TestEstimatePowerChangesShape(t *testing.T) {
	a := defaultTestParams()
	b := defaultTestParams()
	b.Power = 2.5
	pt := Vec3{0.9, 0.4, -0.7}
	if Estimate(pt, &a) == Estimate(pt, &b) {
		t.Fatalf("power change not observable at %+v", pt)
	}
}
