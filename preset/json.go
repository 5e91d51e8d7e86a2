// Package preset loads wavetable preset descriptors from JSON files.
// A descriptor names the generator call for each morph keyframe; the
// frames themselves are always re-derived through the generators, so a
// descriptor file stays tiny and deterministic.
package preset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/algo-wavetable/wavetable"
)

// File is the JSON schema for wavetable preset descriptors.
type File struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Category string      `json:"category"`
	Frames   []FrameSpec `json:"frames"`
}

// FrameSpec describes one generator invocation producing a morph keyframe.
// Exactly one generator is selected by Type; Phase optionally applies a
// per-harmonic phase rotation on top.
type FrameSpec struct {
	Type     string    `json:"type"`
	Shape    string    `json:"shape,omitempty"`
	Duty     *float64  `json:"duty,omitempty"`
	Formants []float64 `json:"formants,omitempty"`
	Partials []float64 `json:"partials,omitempty"`
	Phase    *float64  `json:"phase,omitempty"`
}

// LoadJSON reads a descriptor file and builds the preset it describes.
func LoadJSON(path string) (*wavetable.Preset, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, err
	}
	return BuildPreset(&f)
}

// SaveJSON writes a descriptor file, creating parent directories as needed.
func SaveJSON(path string, f *File) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}

// BuildPreset constructs a preset from a parsed descriptor.
func BuildPreset(f *File) (*wavetable.Preset, error) {
	if f == nil {
		return nil, fmt.Errorf("nil descriptor")
	}
	if strings.TrimSpace(f.ID) == "" {
		return nil, fmt.Errorf("descriptor has no id")
	}
	if len(f.Frames) == 0 {
		return nil, fmt.Errorf("preset %q: at least one frame is required", f.ID)
	}
	category, err := ParseCategory(f.Category)
	if err != nil {
		return nil, fmt.Errorf("preset %q: %w", f.ID, err)
	}
	name := f.Name
	if name == "" {
		name = f.ID
	}
	frames := make([]*wavetable.Frame, 0, len(f.Frames))
	for i := range f.Frames {
		frame, err := buildFrame(&f.Frames[i])
		if err != nil {
			return nil, fmt.Errorf("preset %q frame %d: %w", f.ID, i, err)
		}
		frames = append(frames, frame)
	}
	return wavetable.NewPreset(strings.TrimSpace(f.ID), name, category, frames...)
}

func buildFrame(spec *FrameSpec) (*wavetable.Frame, error) {
	var frame *wavetable.Frame
	switch strings.ToLower(strings.TrimSpace(spec.Type)) {
	case "basic":
		shape, err := ParseShape(spec.Shape)
		if err != nil {
			return nil, err
		}
		frame = wavetable.Basic(shape)
	case "pulse":
		if spec.Duty == nil {
			return nil, fmt.Errorf("pulse frame requires duty")
		}
		if *spec.Duty <= 0 || *spec.Duty >= 1 {
			return nil, fmt.Errorf("duty %g outside (0,1)", *spec.Duty)
		}
		frame = wavetable.Pulse(*spec.Duty)
	case "formant":
		if len(spec.Formants) != 3 {
			return nil, fmt.Errorf("formant frame requires exactly 3 frequencies, got %d", len(spec.Formants))
		}
		for _, hz := range spec.Formants {
			if hz <= 0 {
				return nil, fmt.Errorf("formant frequency must be > 0, got %g", hz)
			}
		}
		frame = wavetable.Formant(spec.Formants[0], spec.Formants[1], spec.Formants[2])
	case "inharmonic":
		if len(spec.Partials) == 0 {
			return nil, fmt.Errorf("inharmonic frame requires partials")
		}
		frame = wavetable.Inharmonic(spec.Partials)
	default:
		return nil, fmt.Errorf("unknown frame type %q", spec.Type)
	}
	if spec.Phase != nil && *spec.Phase != 0 {
		frame = wavetable.PhaseRotate(frame, *spec.Phase)
	}
	return frame, nil
}

// ParseCategory maps a descriptor category string onto the fixed
// enumeration. An empty string falls back to the FX bucket.
func ParseCategory(s string) (wavetable.Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "basic":
		return wavetable.CategoryBasic, nil
	case "analog":
		return wavetable.CategoryAnalog, nil
	case "digital":
		return wavetable.CategoryDigital, nil
	case "vocal":
		return wavetable.CategoryVocal, nil
	case "fx", "":
		return wavetable.CategoryFX, nil
	default:
		return 0, fmt.Errorf("unknown category %q", s)
	}
}

// ParseShape maps a descriptor shape string onto the basic shapes.
func ParseShape(s string) (wavetable.Shape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sine":
		return wavetable.ShapeSine, nil
	case "saw", "sawtooth":
		return wavetable.ShapeSaw, nil
	case "square":
		return wavetable.ShapeSquare, nil
	case "triangle":
		return wavetable.ShapeTriangle, nil
	default:
		return 0, fmt.Errorf("unknown shape %q", s)
	}
}
