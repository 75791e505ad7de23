package grayscott

import (
	"strconv"

	"grayscott/internal/core"
)

// Parameters reports the current tunables for display purposes.
func (s *Sim) Parameters() core.ParameterSnapshot {
	p := s.cfg.Params
	sd := s.cfg.Seeding
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("w", "Width", s.cfg.Width),
				intParam("h", "Height", s.cfg.Height),
				int64Param("seed", "Seed", s.cfg.Seed),
			},
		},
		{
			Name: "Model",
			Params: []core.Parameter{
				floatParam("f", "Feed rate", p.Feed),
				floatParam("k", "Kill rate", p.Kill),
				floatParam("du", "Diffusion u", p.DiffusionU),
				floatParam("dv", "Diffusion v", p.DiffusionV),
				floatParam("dx", "Cell spacing", p.Dx),
				floatParam("dt", "Time delta", p.Dt),
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				intParam("square_size", "Seed square size", sd.SquareSize),
				floatParam("noise", "Noise amplitude", sd.NoiseAmplitude),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// SetFloatParameter updates a model constant by key. Unknown keys report
// false and leave the parameters untouched.
func (s *Sim) SetFloatParameter(key string, value float64) bool {
	if value < 0 {
		return false
	}
	switch key {
	case "f":
		s.cfg.Params.Feed = value
	case "k":
		s.cfg.Params.Kill = value
	case "du":
		s.cfg.Params.DiffusionU = value
	case "dv":
		s.cfg.Params.DiffusionV = value
	case "dt":
		s.cfg.Params.Dt = value
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
