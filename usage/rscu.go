// Package usage implements codon usage bias statistics: RSCU,
// effective number of codons, codon adaptation index, fraction of
// optimal codons and the tRNA adaptation index.
package usage

import (
	"math"

	"github.com/ZiBuZiBu/cubar/bio"
	"github.com/ZiBuZiBu/cubar/codon"
)

// RSCU stores relative synonymous codon usage indexed by sense-codon
// number. Codons from subfamilies with zero usage are NaN.
type RSCU struct {
	Values []float64
	GCode  *bio.GeneticCode
}

// Weights stores per-codon relative adaptiveness weights indexed by
// sense-codon number. Within each subfamily the preferred codon has
// weight 1.
type Weights struct {
	Values []float64
	GCode  *bio.GeneticCode
}

// EstimateRSCU computes relative synonymous codon usage from counts
// aggregated over all genes of the matrix. Within every subfamily
// each codon's count is divided by the mean count across the
// subfamily, so RSCU values of a subfamily sum to the subfamily size.
func EstimateRSCU(m *codon.CountMatrix) RSCU {
	gcode := m.GCode
	total := m.Aggregate()
	r := RSCU{Values: make([]float64, gcode.NCodon), GCode: gcode}

	for _, sf := range gcode.Subfamilies {
		n := 0
		for _, c := range sf.Codons {
			n += total[gcode.CodonNum[c]]
		}
		for _, c := range sf.Codons {
			ci := gcode.CodonNum[c]
			if n == 0 {
				r.Values[ci] = math.NaN()
				continue
			}
			expected := float64(n) / float64(len(sf.Codons))
			r.Values[ci] = float64(total[ci]) / expected
		}
	}
	return r
}

// Weights converts RSCU into relative adaptiveness weights: each
// codon's RSCU divided by the maximum RSCU of its subfamily.
func (r RSCU) Weights() Weights {
	gcode := r.GCode
	w := Weights{Values: make([]float64, gcode.NCodon), GCode: gcode}

	for _, sf := range gcode.Subfamilies {
		best := math.NaN()
		for _, c := range sf.Codons {
			v := r.Values[gcode.CodonNum[c]]
			if math.IsNaN(best) || v > best {
				best = v
			}
		}
		for _, c := range sf.Codons {
			ci := gcode.CodonNum[c]
			if math.IsNaN(best) || best == 0 {
				w.Values[ci] = math.NaN()
				continue
			}
			w.Values[ci] = r.Values[ci] / best
		}
	}
	return w
}

// Map returns RSCU keyed by codon.
func (r RSCU) Map() map[string]float64 {
	return byCodon(r.Values, r.GCode)
}

// Map returns weights keyed by codon.
func (w Weights) Map() map[string]float64 {
	return byCodon(w.Values, w.GCode)
}

func byCodon(values []float64, gcode *bio.GeneticCode) map[string]float64 {
	res := make(map[string]float64, len(values))
	for i, v := range values {
		res[gcode.NumCodon[byte(i)]] = v
	}
	return res
}
