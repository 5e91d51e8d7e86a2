package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cwbudde/algo-wavetable/internal/fitcommon"
	"github.com/cwbudde/algo-wavetable/preset"
	"github.com/cwbudde/algo-wavetable/wavetable"
)

func main() {
	presetID := flag.String("preset", "basic-saw", "Built-in preset id (see -list)")
	presetFile := flag.String("preset-file", "", "Preset descriptor JSON path (overrides -preset)")
	list := flag.Bool("list", false, "List available presets and exit")
	position := flag.Float64("position", 0.0, "Morph position in [0,1]")
	sweep := flag.Bool("sweep", false, "Sweep the morph position from 0 to 1 over the render")
	frequency := flag.Float64("frequency", 0.0, "Playback frequency in Hz (overrides -note when > 0)")
	note := flag.Int("note", 69, "MIDI note number (69 = A4 = 440 Hz)")
	duration := flag.Float64("duration", 2.0, "Duration in seconds")
	sampleRate := flag.Int("sample-rate", 48000, "Render sample rate in Hz")
	output := flag.String("output", "output.wav", "Output WAV file path")
	flag.Parse()

	reg := wavetable.Build()

	if *list {
		for _, id := range reg.IDs() {
			p, _ := reg.Get(id)
			fmt.Printf("%-24s %-8s %s (%d frames)\n", p.ID, p.Category, p.Name, p.FrameCount())
		}
		return
	}

	if *duration <= 0 {
		die("duration must be > 0")
	}
	if *sampleRate < 8000 {
		die("sample-rate must be >= 8000")
	}

	var p *wavetable.Preset
	if *presetFile != "" {
		loaded, err := preset.LoadJSON(*presetFile)
		if err != nil {
			die("failed to load preset file %q: %v", *presetFile, err)
		}
		p = loaded
	} else {
		found, ok := reg.Get(*presetID)
		if !ok {
			die("unknown preset %q (use -list to see available presets)", *presetID)
		}
		p = found
	}

	osc := wavetable.NewOscillator(*sampleRate, p)
	if *frequency > 0 {
		osc.SetFrequency(*frequency)
	} else {
		osc.SetNote(*note)
	}
	osc.SetMorph(*position)

	totalFrames := int(float64(*sampleRate) * (*duration))
	if totalFrames < 1 {
		totalFrames = 1
	}

	fmt.Printf("Rendering %s for %.2f seconds at %d Hz (output: %s)...\n", p.ID, *duration, *sampleRate, *output)

	blockSize := 128
	samples := make([]float32, 0, totalFrames)
	block := make([]float32, blockSize)
	rendered := 0
	for rendered < totalFrames {
		n := blockSize
		if rendered+n > totalFrames {
			n = totalFrames - rendered
		}
		if *sweep {
			osc.SetMorph(float64(rendered) / float64(totalFrames))
		}
		osc.Process(block[:n])
		samples = append(samples, block[:n]...)
		rendered += n
	}

	if err := fitcommon.WriteMonoWAV(*output, samples, *sampleRate); err != nil {
		die("failed to write output: %v", err)
	}
	fmt.Printf("Wrote %d samples to %s\n", len(samples), *output)
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
