//go:build ebiten

package app

import (
	"context"
	"strconv"
	"time"

	"grayscott/internal/core"
	"grayscott/internal/engine"
	"grayscott/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// feedKillStep is the increment applied by the arrow-key parameter bindings.
const feedKillStep = 0.001

// Game adapts an engine-driven simulation to the ebiten.Game interface.
// In cooperative mode Update advances the batch and Draw reads the state by
// reference, strictly alternating on the ebiten goroutine. In threaded mode
// the engine steps on its own goroutine and Draw samples a snapshot.
type Game struct {
	sim     core.Sim
	eng     *engine.Engine
	painter *render.GridPainter
	pacer   *core.FixedStep

	buf []float32

	scale    int
	seed     int64
	threaded bool
	paused   bool
	tickOnce bool

	cancel context.CancelFunc
	done   <-chan struct{}
}

// New constructs a Game for the provided simulation and engine.
func New(sim core.Sim, eng *engine.Engine, cfg *Config) *Game {
	size := sim.Size()
	return &Game{
		sim:      sim,
		eng:      eng,
		painter:  render.NewGridPainter(size.W, size.H),
		pacer:    core.NewFixedStep(cfg.BPS),
		buf:      make([]float32, size.W*size.H),
		scale:    cfg.Scale,
		seed:     cfg.Seed,
		threaded: cfg.Threaded,
	}
}

// Start launches the concurrent stepper when running threaded. It is a no-op
// in cooperative mode.
func (g *Game) Start() {
	if !g.threaded || g.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	g.cancel = cancel
	g.done = g.eng.Start(ctx)
}

// Stop cancels the stepper and waits for it to finish its current batch.
func (g *Game) Stop() {
	if g.cancel == nil {
		return
	}
	g.cancel()
	<-g.done
	g.cancel = nil
}

// Reset reseeds the simulation state through the engine.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.eng.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and, in cooperative mode, advances the
// simulation by whole batches.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.adjustFloat("f", feedKillStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.adjustFloat("f", -feedKillStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.adjustFloat("k", feedKillStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.adjustFloat("k", -feedKillStep)
	}

	if g.threaded {
		return nil
	}
	if (!g.paused || g.tickOnce) && g.pacer.ShouldStep() {
		g.eng.RunBatch(nil)
		g.tickOnce = false
	}
	return nil
}

// adjustFloat nudges a model constant through the parameter interfaces,
// holding the pair lock so the change lands on a batch boundary.
func (g *Game) adjustFloat(key string, delta float64) {
	provider, ok := g.sim.(core.ParameterProvider)
	if !ok {
		return
	}
	setter, ok := g.sim.(core.FloatParameterSetter)
	if !ok {
		return
	}
	g.eng.Do(func(engine.State) {
		current, ok := snapshotFloat(provider.Parameters(), key)
		if !ok {
			return
		}
		setter.SetFloatParameter(key, current+delta)
	})
}

func snapshotFloat(snap core.ParameterSnapshot, key string) (float64, bool) {
	for _, group := range snap.Groups {
		for _, p := range group.Params {
			if p.Key != key || p.Type != core.ParamTypeFloat {
				continue
			}
			v, err := strconv.ParseFloat(p.Value, 64)
			if err != nil {
				return 0, false
			}
			return v, true
		}
	}
	return 0, false
}

// Draw renders the current simulation state. The threaded path copies a
// snapshot under the pair lock before touching the screen; the cooperative
// path reads the live field directly.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.threaded {
		g.eng.Snapshot(g.buf)
		g.painter.Blit(screen, g.buf, g.scale)
		return
	}
	g.painter.Blit(screen, g.sim.Field(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
