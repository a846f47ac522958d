// Package panel serves the browser control surface: a static slider page and
// a websocket endpoint that applies JSON parameter edits to the store. Edits
// arrive on connection goroutines; the store serializes them, so the panel
// never touches the render path.
package panel

import (
	"context"
	_ "embed"
	"log"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/mtraverso3/fractal3D/internal/fractal3d"
)

//go:embed index.html
var indexHTML []byte

// edit is one slider/checkbox change from the page. Booleans are encoded as
// 0/1 values.
type edit struct {
	Field string  `json:"field"`
	Value float64 `json:"value"`
}

// state is the full parameter view pushed back after every edit, including
// which fields are currently animation-driven and therefore read-only.
type state struct {
	Power         float64    `json:"power"`
	Iterations    int        `json:"iterations"`
	RaySteps      int        `json:"raySteps"`
	MaxDist       float64    `json:"maxDist"`
	HitThreshold  float64    `json:"hitThreshold"`
	Zoom          float64    `json:"zoom"`
	Palette       uint32     `json:"palette"`
	ColorScale    float64    `json:"colorScale"`
	ColorOffset   float64    `json:"colorOffset"`
	LightX        float64    `json:"lightX"`
	LightY        float64    `json:"lightY"`
	Glow          float64    `json:"glow"`
	AO            float64    `json:"ao"`
	Rim           float64    `json:"rim"`
	Julia         bool       `json:"julia"`
	JuliaConstant [3]float64 `json:"juliaConstant"`
	AnimatePower  bool       `json:"animatePower"`
	PowerSpeed    float64    `json:"powerSpeed"`
	AnimateZoom   bool       `json:"animateZoom"`
	ZoomSpeed     float64    `json:"zoomSpeed"`
	RotationSpeed float64    `json:"rotationSpeed"`
	Locked        []string   `json:"locked"`
}

// Server is the HTTP host of the control surface.
type Server struct {
	store *fractal3d.Store
	mux   *http.ServeMux
}

func New(store *fractal3d.Store) *Server {
	s := &Server{store: store, mux: http.NewServeMux()}
	s.mux.HandleFunc("/ws", s.wsHandler)
	s.mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(indexHTML)
	})
	return s
}

// ListenAndServe blocks until the server fails or ctx is canceled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutCtx)
	}()
	log.Printf("control panel listening on http://%s", addr)
	return srv.ListenAndServe()
}

func (s *Server) wsHandler(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"}, // TODO: tighten in prod
	})
	if err != nil {
		log.Println(err)
		return
	}
	defer c.Close(websocket.StatusNormalClosure, "")

	ctx := r.Context()
	if err := wsjson.Write(ctx, c, s.state()); err != nil {
		return
	}
	for {
		var e edit
		if err := wsjson.Read(ctx, c, &e); err != nil {
			return
		}
		s.apply(e)
		if err := wsjson.Write(ctx, c, s.state()); err != nil {
			return
		}
	}
}

// apply routes one edit to the matching clamped setter. Unknown fields are
// dropped; animation-driven fields are refused by the store itself.
func (s *Server) apply(e edit) {
	st := s.store
	v := e.Value
	on := v >= 0.5
	switch e.Field {
	case "power":
		st.SetPower(v)
	case "iterations":
		st.SetMandelIterations(int(v))
	case "raySteps":
		st.SetRayStepCount(int(v))
	case "maxDist":
		st.SetMaxMarchDistance(v)
	case "hitThreshold":
		st.SetHitThreshold(v)
	case "zoom":
		st.SetCameraZoom(v)
	case "palette":
		st.SetPaletteID(fractal3d.PaletteID(v))
	case "colorScale":
		st.SetColorScale(v)
	case "colorOffset":
		st.SetColorOffset(v)
	case "lightX":
		st.SetLightX(v)
	case "lightY":
		st.SetLightY(v)
	case "glow":
		st.SetBackgroundGlow(v)
	case "ao":
		st.SetAOStrength(v)
	case "rim":
		st.SetRimStrength(v)
	case "julia":
		st.SetJuliaEnabled(on)
	case "juliaX", "juliaY", "juliaZ":
		j := st.Params().JuliaConstant
		switch e.Field {
		case "juliaX":
			j.X = v
		case "juliaY":
			j.Y = v
		case "juliaZ":
			j.Z = v
		}
		st.SetJuliaConstant(j)
	case "animatePower":
		st.SetAnimatePower(on)
	case "powerSpeed":
		st.SetPowerSpeed(v)
	case "animateZoom":
		st.SetAnimateZoom(on)
	case "zoomSpeed":
		st.SetZoomSpeed(v)
	case "rotationSpeed":
		st.SetRotationSpeed(v)
	default:
		fractal3d.DebugLog("panel: unknown field %q", e.Field)
	}
}

func (s *Server) state() state {
	p := s.store.Params()
	a := s.store.Anim()

	locked := []string{}
	if a.AnimatePower {
		locked = append(locked, "power")
	}
	if a.AnimateZoom {
		locked = append(locked, "zoom")
	}

	return state{
		Power:         p.Power,
		Iterations:    p.MandelIterations,
		RaySteps:      p.RayStepCount,
		MaxDist:       p.MaxMarchDistance,
		HitThreshold:  p.HitThreshold,
		Zoom:          p.CameraZoom,
		Palette:       uint32(p.PaletteID),
		ColorScale:    p.ColorScale,
		ColorOffset:   p.ColorOffset,
		LightX:        p.LightX,
		LightY:        p.LightY,
		Glow:          p.BackgroundGlow,
		AO:            p.AOStrength,
		Rim:           p.RimStrength,
		Julia:         p.JuliaEnabled,
		JuliaConstant: [3]float64{p.JuliaConstant.X, p.JuliaConstant.Y, p.JuliaConstant.Z},
		AnimatePower:  a.AnimatePower,
		PowerSpeed:    a.PowerSpeed,
		AnimateZoom:   a.AnimateZoom,
		ZoomSpeed:     a.ZoomSpeed,
		RotationSpeed: a.RotationSpeed,
		Locked:        locked,
	}
}
