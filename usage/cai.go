package usage

import (
	"math"

	"github.com/ZiBuZiBu/cubar/codon"
)

// CAI computes the codon adaptation index of every gene against
// reference relative adaptiveness weights (usually estimated from a
// highly expressed gene set). The index is the count-weighted
// geometric mean of the weights over codons from subfamilies with two
// or more synonymous codons. A gene using a codon with zero reference
// weight scores 0; a gene with no scorable codon yields NaN.
func CAI(m *codon.CountMatrix, w Weights) map[string]float64 {
	return geoMeanIndex(m, w)
}

// geoMeanIndex is the shared geometric-mean structure of CAI and tAI.
func geoMeanIndex(m *codon.CountMatrix, w Weights) map[string]float64 {
	gcode := m.GCode
	res := make(map[string]float64, len(m.Names))

	for _, name := range m.Names {
		c := m.Counts[name]
		logsum := 0.0
		n := 0
		zero := false
		for _, sf := range gcode.Subfamilies {
			if len(sf.Codons) < 2 {
				continue
			}
			for _, cd := range sf.Codons {
				ci := gcode.CodonNum[cd]
				cnt := c[ci]
				if cnt == 0 {
					continue
				}
				wv := w.Values[ci]
				if math.IsNaN(wv) {
					// the reference never uses this subfamily
					continue
				}
				if wv == 0 {
					zero = true
					continue
				}
				logsum += float64(cnt) * math.Log(wv)
				n += cnt
			}
		}
		switch {
		case zero:
			res[name] = 0
		case n == 0:
			res[name] = math.NaN()
		default:
			res[name] = math.Exp(logsum / float64(n))
		}
	}
	return res
}
