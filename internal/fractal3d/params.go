package fractal3d

import "sync"

// PaletteID selects one of the fixed color ramps.
type PaletteID uint32

const (
	PaletteStandard PaletteID = iota
	PaletteFire
	PaletteNeon
	PaletteIce

	paletteCount
)

// Params holds every shape/quality/camera/style/lighting parameter the pixel
// pipeline consumes. The live copy is owned by a Store; the render path only
// ever sees it inside an immutable FrameSnapshot.
type Params struct {
	Power            Real
	MandelIterations int
	RayStepCount     int
	MaxMarchDistance Real
	HitThreshold     Real

	CameraZoom  Real
	Orientation Quat // unit; renormalized on every mutation

	JuliaEnabled  bool
	JuliaConstant Vec3

	PaletteID   PaletteID
	ColorScale  Real
	ColorOffset Real

	LightX, LightY Real
	BackgroundGlow Real
	AOStrength     Real
	RimStrength    Real
}

// AnimationState holds the flags and speeds of the time-driven overrides.
// It accumulates nothing; the overrides are pure functions of elapsed time.
type AnimationState struct {
	AnimatePower  bool
	PowerSpeed    Real
	AnimateZoom   bool
	ZoomSpeed     Real
	RotationSpeed Real
}

// Active reports whether any time-driven override is running.
func (a AnimationState) Active() bool {
	return a.AnimatePower || a.AnimateZoom || a.RotationSpeed > 0
}

// DefaultParams returns the parameter set the original scene starts with.
func DefaultParams() Params {
	return Params{
		Power:            DefaultPower,
		MandelIterations: DefaultIterations,
		RayStepCount:     DefaultRaySteps,
		MaxMarchDistance: DefaultMarchDistance,
		HitThreshold:     DefaultHitThreshold,
		CameraZoom:       DefaultZoom,
		Orientation:      QuatIdentity(),
		JuliaEnabled:     false,
		JuliaConstant:    Vec3{0.35, 0.35, -0.35},
		PaletteID:        PaletteStandard,
		ColorScale:       DefaultColorScale,
		ColorOffset:      DefaultColorOffset,
		LightX:           DefaultLightX,
		LightY:           DefaultLightY,
		BackgroundGlow:   DefaultGlow,
		AOStrength:       DefaultAOStrength,
		RimStrength:      DefaultRimStrength,
	}
}

// Store is the single long-lived owner of the live parameters and animation
// state. Every mutation clamps to the documented domain; out-of-range input
// is silently clamped, never rejected. Mutations arrive from the control tick
// and from control-surface goroutines (panel websocket), so the store
// serializes them with a mutex. The pixel pipeline never touches the store.
type Store struct {
	mu sync.Mutex
	p  Params
	a  AnimationState
}

// NewStore returns a store initialized with the default parameters.
func NewStore() *Store {
	return &Store{
		p: DefaultParams(),
		a: AnimationState{PowerSpeed: DefaultPowerSpeed, ZoomSpeed: DefaultZoomSpeed},
	}
}

// Params returns a copy of the current parameters.
func (st *Store) Params() Params {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.p
}

// Anim returns a copy of the current animation state.
func (st *Store) Anim() AnimationState {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.a
}

// SetPower clamps to [1, 16]. Ignored while power animation drives the value.
func (st *Store) SetPower(v Real) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.a.AnimatePower {
		return
	}
	st.p.Power = clamp(v, MinPower, MaxPower)
}

func (st *Store) SetMandelIterations(v int) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.p.MandelIterations = clampInt(v, MinIterations, MaxIterations)
}

func (st *Store) SetRayStepCount(v int) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.p.RayStepCount = clampInt(v, MinRaySteps, MaxRaySteps)
}

func (st *Store) SetMaxMarchDistance(v Real) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.p.MaxMarchDistance = clamp(v, MinMarchDistance, MaxMarchDistance)
}

func (st *Store) SetHitThreshold(v Real) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.p.HitThreshold = clamp(v, MinHitThreshold, MaxHitThreshold)
}

// SetCameraZoom clamps to [0.1, 10]. Ignored while zoom animation drives it.
func (st *Store) SetCameraZoom(v Real) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.a.AnimateZoom {
		return
	}
	st.p.CameraZoom = clamp(v, MinZoom, MaxZoom)
}

// SetOrientation replaces the stored orientation, renormalizing the input.
func (st *Store) SetOrientation(q Quat) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.p.Orientation = q.Normalize()
}

// ComposeOrientation applies an incremental rotation after the stored one
// (orientation * delta) and renormalizes. Manual drags use this order.
func (st *Store) ComposeOrientation(delta Quat) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.p.Orientation = st.p.Orientation.Mul(delta).Normalize()
}

// preComposeOrientation applies an incremental rotation before the stored one
// (delta * orientation) and renormalizes. The automatic spin uses this order.
func (st *Store) preComposeOrientation(delta Quat) {
	st.p.Orientation = delta.Mul(st.p.Orientation).Normalize()
}

func (st *Store) SetJuliaEnabled(v bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.p.JuliaEnabled = v
}

// SetJuliaConstant stores the fold constant. The domain is unconstrained;
// the control surface conventionally keeps components in [-2, 2].
func (st *Store) SetJuliaConstant(v Vec3) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.p.JuliaConstant = v
}

func (st *Store) SetPaletteID(v PaletteID) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if v >= paletteCount {
		v = paletteCount - 1
	}
	st.p.PaletteID = v
}

func (st *Store) SetColorScale(v Real) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.p.ColorScale = clamp(v, MinColorScale, MaxColorScale)
}

func (st *Store) SetColorOffset(v Real) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.p.ColorOffset = clamp(v, MinColorOffset, MaxColorOffset)
}

func (st *Store) SetLightX(v Real) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.p.LightX = clamp(v, MinLightPos, MaxLightPos)
}

func (st *Store) SetLightY(v Real) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.p.LightY = clamp(v, MinLightPos, MaxLightPos)
}

func (st *Store) SetBackgroundGlow(v Real) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.p.BackgroundGlow = clamp(v, MinGlowIntensity, MaxGlowIntensity)
}

func (st *Store) SetAOStrength(v Real) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.p.AOStrength = clamp(v, MinAOStrength, MaxAOStrength)
}

func (st *Store) SetRimStrength(v Real) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.p.RimStrength = clamp(v, MinRimStrength, MaxRimStrength)
}

func (st *Store) SetAnimatePower(v bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.a.AnimatePower = v
}

func (st *Store) SetPowerSpeed(v Real) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.a.PowerSpeed = clamp(v, MinPowerSpeed, MaxPowerSpeed)
}

func (st *Store) SetAnimateZoom(v bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.a.AnimateZoom = v
}

func (st *Store) SetZoomSpeed(v Real) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.a.ZoomSpeed = clamp(v, MinZoomSpeed, MaxZoomSpeed)
}

func (st *Store) SetRotationSpeed(v Real) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.a.RotationSpeed = clamp(v, MinRotationSpeed, MaxRotationSpeed)
}
