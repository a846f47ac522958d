// Package viewer hosts the interactive window: an ebiten game loop that runs
// one control tick per frame (pointer drag, animation overrides, keyboard
// edits), snapshots the store, and blits the CPU-rendered frame.
package viewer

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/mtraverso3/fractal3D/internal/fractal3d"
)

// rotation speeds the R key cycles through
var spinSteps = []float64{0, 0.2, 0.5, 1.0}

type game struct {
	store *fractal3d.Store
	sync  *fractal3d.FrameSync

	w, h int
	fb   *fractal3d.Framebuffer
	pix  []byte

	start time.Time
	last  time.Time

	dragging     bool
	curX, curY   int
	lastSnap     fractal3d.FrameSnapshot
	haveSnap     bool
	spinIdx      int
	panelCapture func() bool // reports whether the control surface owns the pointer
}

// Run opens the window and blocks until it closes. panelCapture may be nil.
func Run(store *fractal3d.Store, w, h int, title string, panelCapture func() bool) error {
	g := &game{
		store:        store,
		sync:         fractal3d.NewFrameSync(store),
		w:            w,
		h:            h,
		fb:           fractal3d.NewFramebuffer(w, h),
		pix:          make([]byte, w*h*4),
		start:        time.Now(),
		last:         time.Now(),
		panelCapture: panelCapture,
	}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w*2, h*2)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(fractal3d.ContinuousTPS)
	return ebiten.RunGame(g)
}

func (g *game) Update() error {
	now := time.Now()
	dt := now.Sub(g.last).Seconds()
	g.last = now
	elapsed := now.Sub(g.start).Seconds()

	g.pointerTick()
	g.store.AdvanceAnimation(elapsed, dt)
	g.keyboardTick()

	// Idle-poll when nothing animates; re-render happens only when the
	// snapshot actually changes (see Draw).
	ebiten.SetTPS(g.sync.Cadence().TPS(ebiten.IsFocused()))
	return nil
}

// pointerTick feeds left-button drags into the rotation controller.
func (g *game) pointerTick() {
	x, y := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if g.dragging {
			captured := g.panelCapture != nil && g.panelCapture()
			g.store.Drag(float64(x-g.curX), float64(y-g.curY), captured)
		}
		g.dragging = true
	} else {
		g.dragging = false
	}
	g.curX, g.curY = x, y
}

// keyboardTick applies discrete control-surface edits. Fields driven by an
// animation flag are already refused by the store's setters.
func (g *game) keyboardTick() {
	st := g.store
	p := st.Params()
	a := st.Anim()

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit1):
		st.SetPaletteID(fractal3d.PaletteStandard)
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit2):
		st.SetPaletteID(fractal3d.PaletteFire)
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit3):
		st.SetPaletteID(fractal3d.PaletteNeon)
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit4):
		st.SetPaletteID(fractal3d.PaletteIce)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyJ) {
		st.SetJuliaEnabled(!p.JuliaEnabled)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		st.SetAnimatePower(!a.AnimatePower)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		st.SetAnimateZoom(!a.AnimateZoom)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.spinIdx = (g.spinIdx + 1) % len(spinSteps)
		st.SetRotationSpeed(spinSteps[g.spinIdx])
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		st.SetPower(p.Power + 0.5)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		st.SetPower(p.Power - 0.5)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		st.SetMandelIterations(p.MandelIterations + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		st.SetMandelIterations(p.MandelIterations - 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		st.SetCameraZoom(p.CameraZoom - 0.25) // closer
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		st.SetCameraZoom(p.CameraZoom + 0.25)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		st.SetRayStepCount(p.RayStepCount + 10)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		st.SetRayStepCount(p.RayStepCount - 10)
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	snap := g.sync.Snapshot(g.w, g.h)
	if !g.haveSnap || snap != g.lastSnap {
		fractal3d.RenderFrame(g.fb, &snap)
		g.fb.WriteRGBA(g.pix, 1)
		g.lastSnap = snap
		g.haveSnap = true
	}
	screen.WritePixels(g.pix)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}
