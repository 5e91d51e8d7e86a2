package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cwbudde/algo-wavetable/analysis"
	"github.com/cwbudde/algo-wavetable/internal/fitcommon"
	"github.com/cwbudde/algo-wavetable/preset"
	"github.com/cwbudde/algo-wavetable/wavetable"
)

type runReport struct {
	ReferencePath  string             `json:"reference_path"`
	OutputPreset   string             `json:"output_preset"`
	GeneratorType  string             `json:"generator_type"`
	CycleLength    int                `json:"cycle_length"`
	DurationSec    float64            `json:"elapsed_seconds"`
	Evaluations    int                `json:"evaluations"`
	MayflyVariant  string             `json:"mayfly_variant"`
	BestScore      float64            `json:"best_score"`
	BestSimilarity float64            `json:"best_similarity"`
	BestMetrics    analysis.Metrics   `json:"best_metrics"`
	BestKnobs      map[string]float64 `json:"best_knobs"`
}

func main() {
	referencePath := flag.String("reference", "reference/cycle.wav", "Reference single-cycle WAV path")
	cycleLen := flag.Int("cycle", 0, "Samples per cycle in the reference (0 = whole file is one cycle)")
	genType := flag.String("type", "pulse", "Generator to fit: pulse|formant|inharmonic")
	partials := flag.Int("partials", 6, "Partial count for -type inharmonic")
	fitPhase := flag.Bool("fit-phase", false, "Also fit a per-harmonic phase rotation")
	outputPreset := flag.String("output", "assets/presets/fitted.json", "Path to write best preset descriptor JSON")
	reportPath := flag.String("report", "", "Optional report JSON path (default: <output>.report.json)")
	presetID := flag.String("id", "fitted", "Preset id for the descriptor")
	presetName := flag.String("name", "Fitted", "Preset name for the descriptor")
	category := flag.String("category", "fx", "Preset category for the descriptor")
	seed := flag.Int64("seed", 1, "Random seed")
	timeBudget := flag.Float64("time-budget", 60.0, "Optimization time budget in seconds")
	maxEvals := flag.Int("max-evals", 20000, "Maximum objective evaluations")
	reportEvery := flag.Int("report-every", 500, "Print progress every N evaluations")

	mayflyVariant := flag.String("mayfly-variant", "desma", "Mayfly variant: ma|desma|olce|eobbma|gsasma|mpma|aoblmoa")
	mayflyPop := flag.Int("mayfly-pop", 10, "Male and female population size per Mayfly run")
	mayflyRoundEvals := flag.Int("mayfly-round-evals", 400, "Target eval budget per Mayfly round")
	flag.Parse()

	if *outputPreset == "" {
		die("output must not be empty")
	}
	if *maxEvals < 1 {
		die("max-evals must be >= 1")
	}
	if *timeBudget <= 0 {
		die("time-budget must be > 0")
	}
	if *reportEvery < 1 {
		*reportEvery = 1
	}
	if *mayflyPop < 2 {
		*mayflyPop = 2
	}
	if *mayflyRoundEvals < *mayflyPop*2 {
		*mayflyRoundEvals = *mayflyPop * 2
	}
	if _, err := preset.ParseCategory(*category); err != nil {
		die("invalid category: %v", err)
	}

	samples, _, err := fitcommon.ReadWAVMono(*referencePath)
	if err != nil {
		die("failed to read reference: %v", err)
	}
	cycle := samples
	if *cycleLen > 0 {
		if *cycleLen > len(samples) {
			die("cycle length %d exceeds reference length %d", *cycleLen, len(samples))
		}
		cycle = samples[:*cycleLen]
	}
	refFrame, err := wavetable.FrameFromSamples(cycle)
	if err != nil {
		die("failed to analyze reference cycle: %v", err)
	}

	defs, initCand, err := knobsFor(strings.ToLower(*genType), *partials, *fitPhase)
	if err != nil {
		die("%v", err)
	}

	descriptor := func(c candidate) *preset.File {
		return &preset.File{
			ID:       *presetID,
			Name:     *presetName,
			Category: *category,
			Frames:   []preset.FrameSpec{frameSpec(strings.ToLower(*genType), defs, c)},
		}
	}

	evaluate := func(c candidate) (analysis.Comparison, *wavetable.Frame, error) {
		p, err := preset.BuildPreset(descriptor(c))
		if err != nil {
			return analysis.Comparison{}, nil, err
		}
		frame := p.Frame(0)
		return analysis.Compare(refFrame, frame), frame, nil
	}

	start := time.Now()
	deadline := start.Add(time.Duration(*timeBudget * float64(time.Second)))
	evals := 0
	bestImproves := 0

	best := initCand
	bestC, bestFrame, err := evaluate(best)
	if err != nil {
		die("initial evaluation failed: %v", err)
	}
	evals++
	fmt.Printf("Start score=%.4f similarity=%.2f%%\n", bestC.Score, bestC.Similarity*100.0)

	round := 0
	for evals < *maxEvals && time.Now().Before(deadline) {
		round++
		remaining := *maxEvals - evals
		budget := fitcommon.MinInt(*mayflyRoundEvals, remaining)
		iters := fitcommon.MaxInt(1, budget/(2*(*mayflyPop)))

		cfg, err := newMayflyConfig(strings.ToLower(*mayflyVariant), *mayflyPop, len(defs), iters)
		if err != nil {
			die("invalid mayfly variant: %v", err)
		}
		cfg.Rand = rand.New(rand.NewSource(*seed + int64(round)*7919))

		cfg.ObjectiveFunc = func(pos []float64) float64 {
			if evals >= *maxEvals || time.Now().After(deadline) {
				return bestC.Score + 1.0
			}
			cand := fromNormalized(pos, defs)
			c, frame, err := evaluate(cand)
			evals++
			if err != nil {
				return bestC.Score + 0.8
			}

			if c.Score < bestC.Score {
				best = cand
				bestC = c
				bestFrame = frame
				bestImproves++
				fmt.Printf("Improved #%d eval=%d score=%.4f sim=%.2f%%\n", bestImproves, evals, bestC.Score, bestC.Similarity*100.0)
			}

			if evals%*reportEvery == 0 {
				fmt.Printf("Progress round=%d eval=%d elapsed=%.1fs best=%.4f\n", round, evals, time.Since(start).Seconds(), bestC.Score)
			}
			return c.Score
		}

		if _, err := runMayfly(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "mayfly round %d failed: %v\n", round, err)
			continue
		}
	}

	elapsed := time.Since(start).Seconds()
	if err := preset.SaveJSON(*outputPreset, descriptor(best)); err != nil {
		die("failed to write descriptor: %v", err)
	}

	knobs := make(map[string]float64, len(defs))
	for i, d := range defs {
		knobs[d.Name] = best.Vals[i]
	}
	rep := runReport{
		ReferencePath:  *referencePath,
		OutputPreset:   *outputPreset,
		GeneratorType:  strings.ToLower(*genType),
		CycleLength:    len(cycle),
		DurationSec:    elapsed,
		Evaluations:    evals,
		MayflyVariant:  strings.ToLower(*mayflyVariant),
		BestScore:      bestC.Score,
		BestSimilarity: bestC.Similarity,
		BestMetrics:    analysis.Describe(bestFrame),
		BestKnobs:      knobs,
	}
	rp := *reportPath
	if rp == "" {
		rp = *outputPreset + ".report.json"
	}
	if err := writeJSON(rp, rep); err != nil {
		die("failed to write report: %v", err)
	}

	fmt.Printf("Done evals=%d elapsed=%.1fs best_score=%.4f best_similarity=%.2f%% variant=%s\n", evals, elapsed, bestC.Score, bestC.Similarity*100.0, strings.ToLower(*mayflyVariant))
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	return os.WriteFile(path, b, 0o644)
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
