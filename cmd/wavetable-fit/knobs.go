package main

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-wavetable/internal/fitcommon"
	"github.com/cwbudde/algo-wavetable/preset"
	"github.com/cwbudde/mayfly"
)

type knobDef struct {
	Name string
	Min  float64
	Max  float64
}

type candidate struct {
	Vals []float64
}

// knobsFor builds the search space for one generator type. Every knob is
// optimized in normalized [0,1] coordinates and mapped back through its
// Min/Max range.
func knobsFor(genType string, partials int, fitPhase bool) ([]knobDef, candidate, error) {
	defs := make([]knobDef, 0, partials+4)
	vals := make([]float64, 0, partials+4)
	add := func(def knobDef, val float64) {
		defs = append(defs, def)
		vals = append(vals, fitcommon.Clamp(val, def.Min, def.Max))
	}

	switch genType {
	case "pulse":
		add(knobDef{Name: "duty", Min: 0.01, Max: 0.99}, 0.5)
	case "formant":
		add(knobDef{Name: "f1", Min: 200, Max: 1000}, 500)
		add(knobDef{Name: "f2", Min: 500, Max: 3000}, 1500)
		add(knobDef{Name: "f3", Min: 1500, Max: 4500}, 2800)
	case "inharmonic":
		if partials < 1 {
			return nil, candidate{}, fmt.Errorf("partials must be >= 1 for inharmonic fit")
		}
		for i := 0; i < partials; i++ {
			add(
				knobDef{Name: fmt.Sprintf("ratio.%d", i), Min: 1.0, Max: 64.0},
				float64(i+1),
			)
		}
	default:
		return nil, candidate{}, fmt.Errorf("unsupported generator type %q (use pulse|formant|inharmonic)", genType)
	}

	if fitPhase {
		add(knobDef{Name: "phase", Min: -math.Pi, Max: math.Pi}, 0)
	}
	return defs, candidate{Vals: vals}, nil
}

func fromNormalized(pos []float64, defs []knobDef) candidate {
	vals := make([]float64, len(defs))
	for i := range defs {
		x := 0.0
		if i < len(pos) {
			x = fitcommon.Clamp(pos[i], 0, 1)
		}
		vals[i] = defs[i].Min + x*(defs[i].Max-defs[i].Min)
	}
	return candidate{Vals: vals}
}

// frameSpec converts a candidate back into a descriptor frame for the
// chosen generator type.
func frameSpec(genType string, defs []knobDef, c candidate) preset.FrameSpec {
	spec := preset.FrameSpec{Type: genType}
	for i, def := range defs {
		v := c.Vals[i]
		switch {
		case def.Name == "duty":
			d := v
			spec.Duty = &d
		case def.Name == "f1" || def.Name == "f2" || def.Name == "f3":
			spec.Formants = append(spec.Formants, v)
		case def.Name == "phase":
			ph := v
			spec.Phase = &ph
		default:
			spec.Partials = append(spec.Partials, v)
		}
	}
	return spec
}

func newMayflyConfig(variant string, pop int, dims int, iters int) (*mayfly.Config, error) {
	var cfg *mayfly.Config
	switch variant {
	case "ma":
		cfg = mayfly.NewDefaultConfig()
	case "desma":
		cfg = mayfly.NewDESMAConfig()
	case "olce":
		cfg = mayfly.NewOLCEConfig()
	case "eobbma":
		cfg = mayfly.NewEOBBMAConfig()
	case "gsasma":
		cfg = mayfly.NewGSASMAConfig()
	case "mpma":
		cfg = mayfly.NewMPMAConfig()
	case "aoblmoa":
		cfg = mayfly.NewAOBLMOAConfig()
	default:
		return nil, fmt.Errorf("unsupported variant %q", variant)
	}
	cfg.ProblemSize = dims
	cfg.LowerBound = 0.0
	cfg.UpperBound = 1.0
	cfg.MaxIterations = iters
	cfg.NPop = pop
	cfg.NPopF = pop
	cfg.NC = 2 * pop
	cfg.NM = fitcommon.MaxInt(1, int(math.Round(0.05*float64(pop))))
	return cfg, nil
}

func runMayfly(cfg *mayfly.Config) (_ *mayfly.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("mayfly panic: %v", r)
		}
	}()
	return mayfly.Optimize(cfg)
}
