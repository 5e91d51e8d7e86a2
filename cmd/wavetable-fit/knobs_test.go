package main

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-wavetable/preset"
)

func TestKnobsForPulse(t *testing.T) {
	defs, cand, err := knobsFor("pulse", 0, false)
	if err != nil {
		t.Fatalf("knobsFor: %v", err)
	}
	if len(defs) != 1 || defs[0].Name != "duty" {
		t.Fatalf("defs = %+v, want single duty knob", defs)
	}
	if len(cand.Vals) != len(defs) {
		t.Fatalf("vals len = %d, want %d", len(cand.Vals), len(defs))
	}
	if cand.Vals[0] < defs[0].Min || cand.Vals[0] > defs[0].Max {
		t.Fatalf("initial duty %.3f outside [%.3f,%.3f]", cand.Vals[0], defs[0].Min, defs[0].Max)
	}
}

func TestKnobsForInharmonicWithPhase(t *testing.T) {
	defs, cand, err := knobsFor("inharmonic", 5, true)
	if err != nil {
		t.Fatalf("knobsFor: %v", err)
	}
	if len(defs) != 6 {
		t.Fatalf("defs len = %d, want 6 (5 ratios + phase)", len(defs))
	}
	if defs[5].Name != "phase" {
		t.Fatalf("last knob = %q, want phase", defs[5].Name)
	}
	if len(cand.Vals) != 6 {
		t.Fatalf("vals len = %d, want 6", len(cand.Vals))
	}
}

func TestKnobsForRejectsUnknownType(t *testing.T) {
	if _, _, err := knobsFor("granular", 0, false); err == nil {
		t.Fatalf("expected error for unknown generator type")
	}
	if _, _, err := knobsFor("inharmonic", 0, false); err == nil {
		t.Fatalf("expected error for zero partials")
	}
}

func TestFromNormalizedMapsAndClamps(t *testing.T) {
	defs := []knobDef{
		{Name: "f1", Min: 200, Max: 1000},
		{Name: "f2", Min: 500, Max: 3000},
	}
	c := fromNormalized([]float64{0.5, 2.0}, defs)
	if math.Abs(c.Vals[0]-600.0) > 1e-12 {
		t.Fatalf("mid-range mapping = %.3f, want 600", c.Vals[0])
	}
	if c.Vals[1] != 3000.0 {
		t.Fatalf("out-of-range position not clamped: got %.3f, want 3000", c.Vals[1])
	}

	// Short position vectors fall back to the knob minimum.
	c = fromNormalized([]float64{0.25}, defs)
	if c.Vals[1] != 500.0 {
		t.Fatalf("missing position = %.3f, want 500", c.Vals[1])
	}
}

func TestFrameSpecBuildsValidDescriptor(t *testing.T) {
	defs, cand, err := knobsFor("formant", 0, true)
	if err != nil {
		t.Fatalf("knobsFor: %v", err)
	}
	spec := frameSpec("formant", defs, cand)
	if spec.Type != "formant" {
		t.Fatalf("spec type = %q, want formant", spec.Type)
	}
	if len(spec.Formants) != 3 {
		t.Fatalf("formants len = %d, want 3", len(spec.Formants))
	}
	if spec.Phase == nil {
		t.Fatalf("phase knob not carried into the descriptor")
	}

	f := &preset.File{ID: "t", Name: "t", Category: "vocal", Frames: []preset.FrameSpec{spec}}
	if _, err := preset.BuildPreset(f); err != nil {
		t.Fatalf("descriptor from knobs does not build: %v", err)
	}
}

func TestNewMayflyConfigVariants(t *testing.T) {
	for _, v := range []string{"ma", "desma", "olce", "eobbma", "gsasma", "mpma", "aoblmoa"} {
		cfg, err := newMayflyConfig(v, 10, 3, 5)
		if err != nil {
			t.Fatalf("variant %q: %v", v, err)
		}
		if cfg.ProblemSize != 3 || cfg.MaxIterations != 5 {
			t.Fatalf("variant %q: config not applied: %+v", v, cfg)
		}
		if cfg.LowerBound != 0.0 || cfg.UpperBound != 1.0 {
			t.Fatalf("variant %q: bounds not normalized", v)
		}
	}
	if _, err := newMayflyConfig("nope", 10, 3, 5); err == nil {
		t.Fatalf("expected error for unknown variant")
	}
}
