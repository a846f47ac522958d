package fractal3d

// Real is the scalar type used across the pipeline.
type Real = float64

// Channel indices for readability.
const (
	ChR = 0
	ChG = 1
	ChB = 2
)

// Distance estimator and marcher constants.
const (
	EscapeRadius   = 2.0 // escape-time bailout radius
	BoundingRadius = 1.5 // the bulb never reaches outside this sphere
	noSurface      = 1e9 // "no contribution" distance for degenerate iterates
)

// Camera and shading constants.
const (
	FocalLength     = 1.5
	DragSensitivity = 0.005 // radians per pixel of pointer motion
	ambientTerm     = 0.2
	rimFalloff      = 3.0
	lightZ          = -5.0 // implicit light depth, camera side
)

// Parameter domains. Out-of-range writes are clamped to these bounds.
const (
	MinPower, MaxPower                     = 1.0, 16.0
	MinIterations, MaxIterations           = 1, 50
	MinRaySteps, MaxRaySteps               = 10, 300
	MinMarchDistance, MaxMarchDistance     = 10.0, 100.0
	MinHitThreshold, MaxHitThreshold       = 0.0001, 0.01
	MinZoom, MaxZoom                       = 0.1, 10.0
	MinLightPos, MaxLightPos               = -10.0, 10.0
	MinColorScale, MaxColorScale           = 0.1, 3.0
	MinColorOffset, MaxColorOffset         = 0.0, 1.0
	MinPowerSpeed, MaxPowerSpeed           = 0.01, 4.0
	MinZoomSpeed, MaxZoomSpeed             = 0.1, 5.0
	MinRotationSpeed, MaxRotationSpeed     = 0.0, 1.0
	MinGlowIntensity, MaxGlowIntensity     = 0.0, 5.0
	MinAOStrength, MaxAOStrength           = 0.0, 5.0
	MinRimStrength, MaxRimStrength         = 0.0, 2.0
)

// Default parameter values for a fresh store.
const (
	DefaultPower         = 8.0
	DefaultIterations    = 20
	DefaultRaySteps      = 100
	DefaultMarchDistance = 40.0
	DefaultHitThreshold  = 0.002
	DefaultZoom          = 2.5
	DefaultLightX        = 2.0
	DefaultLightY        = 4.0
	DefaultColorScale    = 1.0
	DefaultColorOffset   = 0.0
	DefaultGlow          = 0.0
	DefaultAOStrength    = 1.0
	DefaultRimStrength   = 0.5
	DefaultPowerSpeed    = 1.0
	DefaultZoomSpeed     = 1.0
)

// Offline output defaults.
const (
	DefaultFrameW  = 1280
	DefaultFrameH  = 720
	DefaultGamma   = 1.0
	DefaultFrames  = 120
	DefaultGIFWait = 4 // 100ths of a second per frame
	DefaultFrameDT = 1.0 / 30.0
)
