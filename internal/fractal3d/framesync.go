package fractal3d

// CadenceMode tells the host loop how often to re-render. This governs
// resource usage only; pixel correctness never depends on it.
type CadenceMode int

const (
	// CadenceIdle polls at a low rate and re-renders on discrete events.
	CadenceIdle CadenceMode = iota
	// CadenceContinuous re-renders every frame while anything animates.
	CadenceContinuous
)

// Tick rates per cadence mode.
const (
	ContinuousTPS    = 60
	IdleFocusedTPS   = 30
	IdleUnfocusedTPS = 2
)

// TPS returns the ticks-per-second the host loop should run at.
func (m CadenceMode) TPS(focused bool) int {
	if m == CadenceContinuous {
		return ContinuousTPS
	}
	if focused {
		return IdleFocusedTPS
	}
	return IdleUnfocusedTPS
}

// FrameSync publishes one immutable FrameSnapshot per frame from the live
// store and decides the render cadence. The snapshot-then-dispatch discipline
// lives here: the pixel pipeline only ever sees the snapshot, so no mid-frame
// mutation is visible to in-flight pixel evaluations.
type FrameSync struct {
	st *Store
}

func NewFrameSync(st *Store) *FrameSync { return &FrameSync{st: st} }

// Snapshot copies the live parameters and the current resolution.
func (fs *FrameSync) Snapshot(width, height int) FrameSnapshot {
	fs.st.mu.Lock()
	defer fs.st.mu.Unlock()
	return FrameSnapshot{Params: fs.st.p, Width: width, Height: height}
}

// Cadence is continuous whenever any animation flag is enabled or the
// rotation speed is positive, and idle-poll otherwise.
func (fs *FrameSync) Cadence() CadenceMode {
	if fs.st.Anim().Active() {
		return CadenceContinuous
	}
	return CadenceIdle
}
