package grayscott

import (
	"math"
	"slices"
	"testing"

	"grayscott/internal/core"
)

func smallConfig(w, h int) Config {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Seed = 99
	return cfg
}

// quietConfig disables seeding noise and the seed square so tests can place
// exact field values by hand.
func quietConfig(w, h int) Config {
	cfg := smallConfig(w, h)
	cfg.Seeding.SquareSize = 0
	cfg.Seeding.NoiseAmplitude = 0
	cfg.Seeding.BaseU = 0
	cfg.Seeding.BaseV = 0
	return cfg
}

func gridFrom(t *testing.T, w, h int, values []float32) *core.Grid {
	t.Helper()
	g, err := core.NewGrid(w, h)
	if err != nil {
		t.Fatal(err)
	}
	copy(g.Values(), values)
	return g
}

// referenceStep applies one Euler step using the shift-based laplacian
// definition, keeping independent pre-step copies of both fields.
func referenceStep(t *testing.T, u, v []float32, w, h int, p Params) ([]float32, []float32) {
	t.Helper()
	ug := gridFrom(t, w, h, u)
	vg := gridFrom(t, w, h, v)
	dx := float32(p.Dx)

	lap := func(g *core.Grid) []float32 {
		xp := g.Shift(1, core.AxisX).Values()
		xm := g.Shift(-1, core.AxisX).Values()
		yp := g.Shift(1, core.AxisY).Values()
		ym := g.Shift(-1, core.AxisY).Values()
		src := g.Values()
		out := make([]float32, len(src))
		for i := range src {
			out[i] = (xp[i] + xm[i] + yp[i] + ym[i] - 4*src[i]) / (dx * dx)
		}
		return out
	}

	lapU := lap(ug)
	lapV := lap(vg)

	f := float32(p.Feed)
	k := float32(p.Kill)
	du := float32(p.DiffusionU)
	dv := float32(p.DiffusionV)
	dt := float32(p.Dt)

	nu := make([]float32, len(u))
	nv := make([]float32, len(v))
	for i := range u {
		uvv := u[i] * v[i] * v[i]
		nu[i] = u[i] + dt*(du*lapU[i]-uvv+f*(1-u[i]))
		nv[i] = v[i] + dt*(dv*lapV[i]+uvv-(f+k)*v[i])
	}
	return nu, nv
}

func closeEnough(a, b []float32, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > tol {
			return false
		}
	}
	return true
}

func TestResetDeterministic(t *testing.T) {
	sim, err := NewWithConfig(smallConfig(32, 24))
	if err != nil {
		t.Fatal(err)
	}
	sim.Reset(0)

	initialU := slices.Clone(sim.U())
	initialV := slices.Clone(sim.V())
	if len(initialU) == 0 {
		t.Fatal("sim must allocate fields")
	}

	// Mutate state to ensure Reset rebuilds from scratch.
	sim.U()[0] = 42
	sim.V()[1] = -7

	sim.Reset(0)
	if !slices.Equal(initialU, sim.U()) {
		t.Fatal("Reset with config seed not deterministic for u")
	}
	if !slices.Equal(initialV, sim.V()) {
		t.Fatal("Reset with config seed not deterministic for v")
	}

	sim.Reset(777)
	seededU := slices.Clone(sim.U())
	seededV := slices.Clone(sim.V())
	sim.Reset(777)
	if !slices.Equal(seededU, sim.U()) || !slices.Equal(seededV, sim.V()) {
		t.Fatal("Reset with explicit seed not deterministic")
	}
}

func TestResetSeedsSquareAndNoise(t *testing.T) {
	cfg := smallConfig(64, 64)
	sim, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}

	sd := cfg.Seeding
	x0 := (64 - sd.SquareSize) / 2
	y0 := (64 - sd.SquareSize) / 2
	u := sim.U()
	v := sim.V()
	amp := float32(sd.NoiseAmplitude)

	check := func(name string, got, base float32) {
		if got < base || got >= base+amp {
			t.Fatalf("%s = %g, want [%g, %g)", name, got, base, base+amp)
		}
	}
	// Inside the seed square.
	idx := (y0+1)*64 + x0 + 1
	check("u inside square", u[idx], float32(sd.SquareU))
	check("v inside square", v[idx], float32(sd.SquareV))
	// Well outside it.
	check("u outside square", u[0], float32(sd.BaseU))
	check("v outside square", v[0], float32(sd.BaseV))
}

func TestStepDeterministic(t *testing.T) {
	a, err := NewWithConfig(smallConfig(16, 16))
	if err != nil {
		t.Fatal(err)
	}
	b, _ := NewWithConfig(smallConfig(16, 16))

	for i := 0; i < 10; i++ {
		a.Step()
		b.Step()
	}
	if !slices.Equal(a.U(), b.U()) || !slices.Equal(a.V(), b.V()) {
		t.Fatal("identical inputs must produce identical trajectories")
	}
}

func TestZeroVLeavesVUnchanged(t *testing.T) {
	sim, err := NewWithConfig(quietConfig(8, 8))
	if err != nil {
		t.Fatal(err)
	}
	u := sim.U()
	for i := range u {
		u[i] = 0.1 + 0.05*float32(i%7)
	}
	beforeU := slices.Clone(u)

	sim.Step()

	for i, vi := range sim.V() {
		if vi != 0 {
			t.Fatalf("v[%d] = %g after step, the reaction term must not fire without v", i, vi)
		}
	}

	// With v = 0 only diffusion and the F*(1-u) replenishment act on u.
	p := sim.Params()
	wantU, _ := referenceStep(t, beforeU, make([]float32, len(beforeU)), 8, 8, p)
	if !closeEnough(sim.U(), wantU, 1e-4) {
		t.Fatal("u must evolve by diffusion and replenishment alone when v is zero")
	}
}

func TestDiffusionOnlyMatchesShiftReference(t *testing.T) {
	cfg := quietConfig(4, 4)
	cfg.Params.Feed = 0
	cfg.Params.Kill = 0

	sim, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	u := []float32{
		1, 0, 0, 0,
		0, 2, 0, 0,
		0, 0, 3, 0,
		0, 0, 0, 4,
	}
	v := []float32{
		0, 0.5, 0, 0,
		0.5, 0, 0, 0,
		0, 0, 0, 0.25,
		0, 0, 0.25, 0,
	}
	copy(sim.U(), u)
	copy(sim.V(), v)

	p := sim.Params()
	for step := 0; step < 2; step++ {
		u, v = referenceStep(t, u, v, 4, 4, p)
		sim.Step()
		if !closeEnough(sim.U(), u, 1e-3) {
			t.Fatalf("step %d: u diverges from pre-step-value reference", step+1)
		}
		if !closeEnough(sim.V(), v, 1e-3) {
			t.Fatalf("step %d: v diverges from pre-step-value reference", step+1)
		}
	}
}

func TestSetFloatParameter(t *testing.T) {
	sim, err := New(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	if !sim.SetFloatParameter("f", 0.03) {
		t.Fatal("f must be settable")
	}
	if !sim.SetFloatParameter("k", 0.06) {
		t.Fatal("k must be settable")
	}
	if sim.SetFloatParameter("bogus", 1) {
		t.Fatal("unknown keys must be rejected")
	}
	if sim.SetFloatParameter("f", -1) {
		t.Fatal("negative values must be rejected")
	}
	p := sim.Params()
	if p.Feed != 0.03 || p.Kill != 0.06 {
		t.Fatalf("params not applied: %+v", p)
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.ApplyPreset("spots"); err != nil {
		t.Fatal(err)
	}
	if cfg.Params.Feed != 0.035 || cfg.Params.Kill != 0.065 {
		t.Fatalf("spots preset not applied: %+v", cfg.Params)
	}
	if err := cfg.ApplyPreset("nope"); err == nil {
		t.Fatal("unknown preset must error")
	}
	if !slices.Contains(PresetNames(), "waves") {
		t.Fatal("waves preset missing")
	}
}

func TestFromMap(t *testing.T) {
	cfg, err := FromMap(map[string]string{
		"preset": "stripe",
		"w":      "64",
		"h":      "48",
		"seed":   "7",
		"noise":  "0",
	})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 64 || cfg.Height != 48 || cfg.Seed != 7 {
		t.Fatalf("dimensions not parsed: %+v", cfg)
	}
	if cfg.Params.Feed != 0.022 || cfg.Params.Kill != 0.051 {
		t.Fatalf("stripe preset not applied: %+v", cfg.Params)
	}
	if cfg.Seeding.NoiseAmplitude != 0 {
		t.Fatalf("noise not parsed: %+v", cfg.Seeding)
	}

	if _, err := FromMap(map[string]string{"preset": "nope"}); err == nil {
		t.Fatal("unknown preset must propagate an error")
	}
}

func TestRegistryConstructsSim(t *testing.T) {
	factory, ok := core.Sims()["gray-scott"]
	if !ok {
		t.Fatal("gray-scott must be registered")
	}
	sim, err := factory(map[string]string{"w": "16", "h": "12"})
	if err != nil {
		t.Fatal(err)
	}
	size := sim.Size()
	if size.W != 16 || size.H != 12 {
		t.Fatalf("factory ignored dimensions: %+v", size)
	}
	if len(sim.Field()) != 16*12 {
		t.Fatalf("field length = %d", len(sim.Field()))
	}
}
