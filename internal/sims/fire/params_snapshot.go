package fire

import (
	"math"
	"strconv"

	"doomfire/internal/core"
)

// Parameters reports the current wind and source state.
func (s *Sim) Parameters() core.ParameterSnapshot {
	mean := s.grid.SourceMean()
	groups := []core.ParameterGroup{
		{
			Name: "Controls",
			Params: []core.Parameter{
				intParam("wind", "Wind", s.ctrl.Wind().Offset()),
				intParam("source", "Source", int(math.Round(mean))),
			},
		},
		{
			Name: "Status",
			Params: []core.Parameter{
				stringParam("wind_name", "Wind", s.ctrl.Wind().String()),
				floatParam("source_mean", "Source mean", mean),
				stringParam("size", "Grid", strconv.Itoa(s.grid.Width())+"x"+strconv.Itoa(s.grid.Height())),
				int64Param("seed", "Seed", s.cfg.Seed),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD controls: wind direction and source level.
func (s *Sim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "wind", Label: "Wind", Step: 1, Min: -1, Max: 1, HasMin: true, HasMax: true},
		{Key: "source", Label: "Source", Step: 1, Min: 0, Max: MaxIntensity, HasMin: true, HasMax: true},
	}
}

// SetIntParameter applies a HUD adjustment. Raising "source" above the
// current level increases the source once; lowering it decreases it once.
func (s *Sim) SetIntParameter(key string, value int) bool {
	switch key {
	case "wind":
		s.ctrl.SetWind(windFromOffset(value))
		return true
	case "source":
		current := int(math.Round(s.grid.SourceMean()))
		value = int(clampIntensity(value))
		switch {
		case value > current:
			return s.ctrl.IncreaseSource() == nil
		case value < current:
			return s.ctrl.DecreaseSource() == nil
		}
		return false
	}
	return false
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
		Value: strconv.FormatFloat(value, 'f', 1, 64),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
