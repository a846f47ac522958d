package fractal3d

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// AnimCfg mirrors AnimationState for the offline commands.
type AnimCfg struct {
	AnimatePower  bool `json:"animatePower,omitempty"`
	PowerSpeed    Real `json:"powerSpeed,omitempty"`
	AnimateZoom   bool `json:"animateZoom,omitempty"`
	ZoomSpeed     Real `json:"zoomSpeed,omitempty"`
	RotationSpeed Real `json:"rotationSpeed,omitempty"`
}

// Config drives the offline render and animate commands. Fields left out of
// the JSON keep the defaults below; every value still passes through the
// store's clamped setters when applied.
type Config struct {
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Out    string `json:"out,omitempty"`
	Gamma  Real   `json:"gamma,omitempty"`

	// animation output only
	Frames   int  `json:"frames,omitempty"`
	GIFDelay int  `json:"gifDelay,omitempty"`
	FrameDT  Real `json:"frameDT,omitempty"`

	Power         Real    `json:"power"`
	Iterations    int     `json:"iterations"`
	RaySteps      int     `json:"raySteps"`
	MaxDist       Real    `json:"maxDist"`
	HitThreshold  Real    `json:"hitThreshold"`
	Zoom          Real    `json:"zoom"`
	YawDeg        Real    `json:"yawDeg,omitempty"`
	PitchDeg      Real    `json:"pitchDeg,omitempty"`
	Palette       string  `json:"palette,omitempty"`
	ColorScale    Real    `json:"colorScale"`
	ColorOffset   Real    `json:"colorOffset"`
	LightX        Real    `json:"lightX"`
	LightY        Real    `json:"lightY"`
	Glow          Real    `json:"glow"`
	AO            Real    `json:"ao"`
	Rim           Real    `json:"rim"`
	JuliaEnabled  bool    `json:"julia,omitempty"`
	JuliaConstant [3]Real `json:"juliaConstant,omitempty"`

	Anim AnimCfg `json:"animation,omitempty"`
}

// defaultConfig pre-fills every field so omitted JSON keys keep the same
// defaults the interactive viewer starts with.
func defaultConfig() Config {
	p := DefaultParams()
	return Config{
		Width:         DefaultFrameW,
		Height:        DefaultFrameH,
		Gamma:         DefaultGamma,
		Frames:        DefaultFrames,
		GIFDelay:      DefaultGIFWait,
		FrameDT:       DefaultFrameDT,
		Power:         p.Power,
		Iterations:    p.MandelIterations,
		RaySteps:      p.RayStepCount,
		MaxDist:       p.MaxMarchDistance,
		HitThreshold:  p.HitThreshold,
		Zoom:          p.CameraZoom,
		Palette:       "standard",
		ColorScale:    p.ColorScale,
		ColorOffset:   p.ColorOffset,
		LightX:        p.LightX,
		LightY:        p.LightY,
		Glow:          p.BackgroundGlow,
		AO:            p.AOStrength,
		Rim:           p.RimStrength,
		JuliaConstant: [3]Real{p.JuliaConstant.X, p.JuliaConstant.Y, p.JuliaConstant.Z},
		Anim: AnimCfg{
			PowerSpeed: DefaultPowerSpeed,
			ZoomSpeed:  DefaultZoomSpeed,
		},
	}
}

// ParsePalette maps a ramp name to its id.
func ParsePalette(name string) (PaletteID, error) {
	switch name {
	case "", "standard":
		return PaletteStandard, nil
	case "fire":
		return PaletteFire, nil
	case "neon":
		return PaletteNeon, nil
	case "ice":
		return PaletteIce, nil
	default:
		return 0, fmt.Errorf("unknown palette %q (want standard, fire, neon or ice)", name)
	}
}

// LoadConfig reads and validates a JSON config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := defaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("resolution must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	if !isFinite(cfg.Gamma) || cfg.Gamma <= 0 {
		cfg.Gamma = DefaultGamma
	}
	if cfg.Frames <= 0 {
		cfg.Frames = DefaultFrames
	}
	if cfg.GIFDelay <= 0 {
		cfg.GIFDelay = DefaultGIFWait
	}
	if cfg.FrameDT <= 0 {
		cfg.FrameDT = DefaultFrameDT
	}
	if _, err := ParsePalette(cfg.Palette); err != nil {
		return nil, err
	}
	DebugLog("Loaded config from %s: %dx%d, power=%.2f, palette=%s", path, cfg.Width, cfg.Height, cfg.Power, cfg.Palette)
	return &cfg, nil
}

// Apply writes the config into a store through the clamped setters.
// Animation flags are applied last so parameter writes are not refused by
// the animation locks.
func (c *Config) Apply(st *Store) {
	st.SetAnimatePower(false)
	st.SetAnimateZoom(false)

	st.SetPower(c.Power)
	st.SetMandelIterations(c.Iterations)
	st.SetRayStepCount(c.RaySteps)
	st.SetMaxMarchDistance(c.MaxDist)
	st.SetHitThreshold(c.HitThreshold)
	st.SetCameraZoom(c.Zoom)
	st.SetColorScale(c.ColorScale)
	st.SetColorOffset(c.ColorOffset)
	st.SetLightX(c.LightX)
	st.SetLightY(c.LightY)
	st.SetBackgroundGlow(c.Glow)
	st.SetAOStrength(c.AO)
	st.SetRimStrength(c.Rim)
	st.SetJuliaEnabled(c.JuliaEnabled)
	st.SetJuliaConstant(Vec3{c.JuliaConstant[0], c.JuliaConstant[1], c.JuliaConstant[2]})

	pal, _ := ParsePalette(c.Palette) // validated in LoadConfig
	st.SetPaletteID(pal)

	const k = math.Pi / 180
	st.SetOrientation(QuatRotY(c.YawDeg * k).Mul(QuatRotX(c.PitchDeg * k)))

	st.SetPowerSpeed(c.Anim.PowerSpeed)
	st.SetZoomSpeed(c.Anim.ZoomSpeed)
	st.SetRotationSpeed(c.Anim.RotationSpeed)
	st.SetAnimatePower(c.Anim.AnimatePower)
	st.SetAnimateZoom(c.Anim.AnimateZoom)
}
