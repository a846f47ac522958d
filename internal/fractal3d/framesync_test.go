package fractal3d

import "testing"

func TestCadenceFollowsAnimation(t *testing.T) {
	st := NewStore()
	fs := NewFrameSync(st)

	if got := fs.Cadence(); got != CadenceIdle {
		t.Fatalf("fresh store cadence = %v", got)
	}

	st.SetAnimatePower(true)
	if got := fs.Cadence(); got != CadenceContinuous {
		t.Fatal("power animation did not switch to continuous")
	}
	st.SetAnimatePower(false)

	st.SetRotationSpeed(0.2)
	if got := fs.Cadence(); got != CadenceContinuous {
		t.Fatal("spin did not switch to continuous")
	}
	st.SetRotationSpeed(0)

	if got := fs.Cadence(); got != CadenceIdle {
		t.Fatal("cadence did not return to idle")
	}
}

func TestCadenceTPS(t *testing.T) {
	if got := CadenceContinuous.TPS(true); got != ContinuousTPS {
		t.Fatalf("continuous focused = %d", got)
	}
	if got := CadenceContinuous.TPS(false); got != ContinuousTPS {
		t.Fatalf("continuous unfocused = %d", got)
	}
	if got := CadenceIdle.TPS(true); got != IdleFocusedTPS {
		t.Fatalf("idle focused = %d", got)
	}
	if got := CadenceIdle.TPS(false); got != IdleUnfocusedTPS {
		t.Fatalf("idle unfocused = %d", got)
	}
}

// A published snapshot is a copy: later store mutations must not reach it.
func TestSnapshotIsolation(t *testing.T) {
	st := NewStore()
	fs := NewFrameSync(st)

	snap := fs.Snapshot(320, 200)
	if snap.Width != 320 || snap.Height != 200 {
		t.Fatalf("resolution %dx%d", snap.Width, snap.Height)
	}
	if snap.Power != DefaultPower {
		t.Fatalf("snapshot power %g", snap.Power)
	}

	st.SetPower(3)
	st.SetPaletteID(PaletteNeon)
	if snap.Power != DefaultPower || snap.PaletteID != PaletteStandard {
		t.Fatalf("mutation leaked into snapshot: %+v", snap.Params)
	}

	next := fs.Snapshot(320, 200)
	if next.Power != 3 || next.PaletteID != PaletteNeon {
		t.Fatalf("next snapshot stale: %+v", next.Params)
	}
}

// Snapshots are comparable so hosts can skip re-rendering unchanged frames.
func TestSnapshotComparable(t *testing.T) {
	st := NewStore()
	fs := NewFrameSync(st)

	a := fs.Snapshot(64, 64)
	b := fs.Snapshot(64, 64)
	if a != b {
		t.Fatal("identical snapshots compare unequal")
	}

	st.SetColorOffset(0.25)
	c := fs.Snapshot(64, 64)
	if a == c {
		t.Fatal("parameter change not visible in comparison")
	}
}
