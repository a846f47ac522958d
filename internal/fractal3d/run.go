package fractal3d

import (
	"fmt"
	"time"
)

// RunRender renders one frame described by the config file to a 16-bit PNG.
func RunRender(cfgPath string) error {
	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		return err
	}

	st := NewStore()
	cfg.Apply(st)

	out := cfg.Out
	if out == "" {
		out = "bulb.png"
	}

	fb := NewFramebuffer(cfg.Width, cfg.Height)
	snap := NewFrameSync(st).Snapshot(cfg.Width, cfg.Height)

	start := time.Now()
	RenderFrame(fb, &snap)
	DebugLog("Rendered %dx%d in %s", cfg.Width, cfg.Height, time.Since(start))

	if err := SavePNG16(fb, out, cfg.Gamma); err != nil {
		return fmt.Errorf("save %s: %w", out, err)
	}
	fmt.Printf("saved %s\n", out)
	return nil
}

// RunAnimate renders the configured animation to an animated GIF.
func RunAnimate(cfgPath string) error {
	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		return err
	}

	st := NewStore()
	cfg.Apply(st)

	if !st.Anim().Active() {
		return fmt.Errorf("config %s enables no animation; nothing to animate", cfgPath)
	}

	out := cfg.Out
	if out == "" {
		out = "bulb.gif"
	}

	start := time.Now()
	if err := SaveAnimatedGIF(st, cfg.Width, cfg.Height, cfg.Frames, cfg.GIFDelay, cfg.FrameDT, cfg.Gamma, out); err != nil {
		return fmt.Errorf("save %s: %w", out, err)
	}
	DebugLog("Animated %d frames in %s", cfg.Frames, time.Since(start))
	fmt.Printf("saved %s\n", out)
	return nil
}
