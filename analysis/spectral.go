// Package analysis provides descriptive metrics and distance measures for
// wavetable frames, used by fitting tools to score candidate spectra
// against a target.
package analysis

import (
	"math"

	"github.com/cwbudde/algo-wavetable/wavetable"
)

const silenceFloorDB = -120.0

// Metrics summarizes a single frame spectrum.
type Metrics struct {
	RMS         float64 `json:"rms"`
	Peak        float64 `json:"peak"`
	PeakBin     int     `json:"peak_bin"`
	Centroid    float64 `json:"centroid"`
	NonZeroBins int     `json:"non_zero_bins"`
}

// Describe computes summary metrics over the frame's usable bins.
// Centroid is the magnitude-weighted mean harmonic index, a direct proxy
// for perceived brightness.
func Describe(f *wavetable.Frame) Metrics {
	var m Metrics
	sum := 0.0
	weighted := 0.0
	for i := 1; i < wavetable.TableSize/2; i++ {
		mag := f.Magnitude(i)
		if mag > 0 {
			m.NonZeroBins++
		}
		if mag > m.Peak {
			m.Peak = mag
			m.PeakBin = i
		}
		sum += mag
		weighted += mag * float64(i)
		m.RMS += mag * mag
	}
	m.RMS = math.Sqrt(m.RMS / float64(wavetable.TableSize/2-1))
	if sum > 0 {
		m.Centroid = weighted / sum
	}
	return m
}

// Comparison holds distance measures between two frame spectra and a
// combined score. Score is 0 for identical spectra and approaches 1 for
// unrelated ones; Similarity is its complement.
type Comparison struct {
	SpectralRMSEDB float64 `json:"spectral_rmse_db"`
	CentroidDiff   float64 `json:"centroid_diff"`
	Score          float64 `json:"score"`
	Similarity     float64 `json:"similarity"`
}

// Compare measures the log-magnitude distance between a reference and a
// candidate frame. Both spectra are peak-normalized first so overall gain
// does not dominate the shape difference.
func Compare(ref, cand *wavetable.Frame) Comparison {
	var c Comparison

	refPeak := peakMagnitude(ref)
	candPeak := peakMagnitude(cand)
	if refPeak <= 0 || candPeak <= 0 {
		if refPeak == candPeak {
			c.Similarity = 1.0
			return c
		}
		c.Score = 1.0
		return c
	}

	sum := 0.0
	for i := 1; i < wavetable.TableSize/2; i++ {
		r := linToDB(ref.Magnitude(i) / refPeak)
		g := linToDB(cand.Magnitude(i) / candPeak)
		d := r - g
		sum += d * d
	}
	c.SpectralRMSEDB = math.Sqrt(sum / float64(wavetable.TableSize/2-1))
	c.CentroidDiff = math.Abs(Describe(ref).Centroid - Describe(cand).Centroid)

	// Map distances into [0,1): 12 dB of spectral RMSE or a centroid shift
	// of 64 bins each count as a large mismatch.
	c.Score = 1.0 - math.Exp(-(c.SpectralRMSEDB/12.0 + c.CentroidDiff/64.0))
	c.Similarity = 1.0 - c.Score
	return c
}

func peakMagnitude(f *wavetable.Frame) float64 {
	peak := 0.0
	for i := 1; i < wavetable.TableSize/2; i++ {
		if m := f.Magnitude(i); m > peak {
			peak = m
		}
	}
	return peak
}

func linToDB(v float64) float64 {
	if v <= 0 {
		return silenceFloorDB
	}
	db := 20.0 * math.Log10(v)
	if db < silenceFloorDB {
		return silenceFloorDB
	}
	return db
}
