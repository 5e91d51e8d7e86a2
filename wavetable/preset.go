package wavetable

import (
	"fmt"
	"math"
)

// Category classifies a preset for browsing. It is purely descriptive and
// has no effect on generation or playback.
type Category int

const (
	CategoryBasic Category = iota
	CategoryAnalog
	CategoryDigital
	CategoryVocal
	CategoryFX
)

func (c Category) String() string {
	switch c {
	case CategoryBasic:
		return "basic"
	case CategoryAnalog:
		return "analog"
	case CategoryDigital:
		return "digital"
	case CategoryVocal:
		return "vocal"
	case CategoryFX:
		return "fx"
	default:
		return "unknown"
	}
}

// Preset is a named, ordered sequence of one or more frames used as morph
// keyframes from position 0 to position 1. Presets are built once and never
// mutated afterward.
type Preset struct {
	ID       string
	Name     string
	Category Category

	frames []*Frame
}

// NewPreset assembles a preset from its morph keyframes. At least one frame
// is required; frame ownership passes to the preset.
func NewPreset(id, name string, category Category, frames ...*Frame) (*Preset, error) {
	if id == "" {
		return nil, fmt.Errorf("empty preset id")
	}
	if len(frames) == 0 {
		return nil, fmt.Errorf("preset %q has no frames", id)
	}
	for i, f := range frames {
		if f == nil || len(f.Real) != TableSize || len(f.Imag) != TableSize {
			return nil, fmt.Errorf("preset %q frame %d has invalid coefficient buffers", id, i)
		}
	}
	return &Preset{ID: id, Name: name, Category: category, frames: frames}, nil
}

// FrameCount returns the number of morph keyframes.
func (p *Preset) FrameCount() int {
	return len(p.frames)
}

// Frame returns the keyframe at index i.
func (p *Preset) Frame(i int) *Frame {
	return p.frames[i]
}

// Resolve maps a continuous scan position in [0,1] to a concrete frame
// along the preset's keyframe sequence. A single-frame preset returns its
// frame for every position. Positions at or beyond the last keyframe return
// the last frame itself, with no interpolation drift; in between, the two
// surrounding keyframes are blended linearly. Out-of-range positions clamp
// to the nearest end; there is no wraparound.
//
// Resolve is a pure function of its inputs and safe to call concurrently.
func (p *Preset) Resolve(position float64) *Frame {
	n := len(p.frames)
	if n == 1 {
		return p.frames[0]
	}
	scaled := position * float64(n-1)
	index := int(math.Floor(scaled))
	if index < 0 {
		return p.frames[0]
	}
	if index >= n-1 {
		return p.frames[n-1]
	}
	fraction := scaled - float64(index)
	return Interpolate(p.frames[index], p.frames[index+1], fraction)
}
