package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a grid simulation must implement. Field
// exposes the displayed concentration values in row-major order; they may
// fall outside [0,1] and clamping is the renderer's job, not the sim's.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Field() []float32
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
