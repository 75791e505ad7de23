package grayscott

import (
	"grayscott/internal/core"
)

// Sim integrates the Gray-Scott reaction-diffusion system on a toroidal grid
// using explicit Euler steps. The two concentration fields u and v are
// mutated in place by Step; values are not clamped to [0,1], transient
// excursions outside that range are legitimate.
type Sim struct {
	cfg Config

	w, h int

	u, v *core.Grid

	// Laplacian scratch, reused across steps so Step allocates nothing.
	lapU, lapV *core.Grid
}

// New returns a Gray-Scott simulation with the provided dimensions using
// default parameters.
func New(w, h int) (*Sim, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a Gray-Scott simulation configured from the provided
// options. Fields start seeded from the config seed.
func NewWithConfig(cfg Config) (*Sim, error) {
	u, err := core.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	v, _ := core.NewGrid(cfg.Width, cfg.Height)
	lapU, _ := core.NewGrid(cfg.Width, cfg.Height)
	lapV, _ := core.NewGrid(cfg.Width, cfg.Height)

	s := &Sim{
		cfg:  cfg,
		w:    cfg.Width,
		h:    cfg.Height,
		u:    u,
		v:    v,
		lapU: lapU,
		lapV: lapV,
	}
	s.Reset(cfg.Seed)
	return s, nil
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "gray-scott" }

// Size reports the grid dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.w, H: s.h} }

// Field exposes the displayed concentration field (u) in row-major order.
func (s *Sim) Field() []float32 { return s.u.Values() }

// U exposes the activator field values.
func (s *Sim) U() []float32 { return s.u.Values() }

// V exposes the inhibitor field values.
func (s *Sim) V() []float32 { return s.v.Values() }

// Params returns the model constants currently in effect.
func (s *Sim) Params() Params { return s.cfg.Params }

// SetParams replaces the model constants. The step loop never changes them on
// its own; this is the explicit path for mid-run adjustment.
func (s *Sim) SetParams(p Params) { s.cfg.Params = p }

// Reset rebuilds the initial fields: uniform base values, a centered square
// of seed values, then independent per-cell noise added to both fields.
func (s *Sim) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = s.cfg.Seed
	}
	rng := core.NewRNG(effective)

	sd := s.cfg.Seeding
	s.u.Fill(float32(sd.BaseU))
	s.v.Fill(float32(sd.BaseV))

	if sd.SquareSize > 0 {
		x := (s.w - sd.SquareSize) / 2
		y := (s.h - sd.SquareSize) / 2
		s.u.FillRect(x, y, sd.SquareSize, sd.SquareSize, float32(sd.SquareU))
		s.v.FillRect(x, y, sd.SquareSize, sd.SquareSize, float32(sd.SquareV))
	}

	if sd.NoiseAmplitude > 0 {
		rng.AddNoise(s.u, float32(sd.NoiseAmplitude))
		rng.AddNoise(s.v, float32(sd.NoiseAmplitude))
	}
}

// Step advances both fields by one explicit Euler step:
//
//	du/dt = Du*lap(u) - u*v² + F*(1-u)
//	dv/dt = Dv*lap(v) + u*v² - (F+K)*v
//
// Both laplacians and the reaction product are evaluated against the
// pre-step fields before either field is written.
func (s *Sim) Step() {
	core.Laplacian(s.lapU, s.u, float32(s.cfg.Params.Dx))
	core.Laplacian(s.lapV, s.v, float32(s.cfg.Params.Dx))

	f := float32(s.cfg.Params.Feed)
	k := float32(s.cfg.Params.Kill)
	du := float32(s.cfg.Params.DiffusionU)
	dv := float32(s.cfg.Params.DiffusionV)
	dt := float32(s.cfg.Params.Dt)

	u := s.u.Values()
	v := s.v.Values()
	lapU := s.lapU.Values()
	lapV := s.lapV.Values()

	for i := range u {
		ui, vi := u[i], v[i]
		uvv := ui * vi * vi
		u[i] = ui + dt*(du*lapU[i]-uvv+f*(1-ui))
		v[i] = vi + dt*(dv*lapV[i]+uvv-(f+k)*vi)
	}
}

func init() {
	core.Register("gray-scott", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		return NewWithConfig(c)
	})
}
