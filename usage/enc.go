package usage

import (
	"math"

	"github.com/ZiBuZiBu/cubar/codon"
)

// ENC computes Wright's effective number of codons for every gene of
// the matrix. Results are keyed by gene identifier; a gene with no
// usable subfamily yields NaN.
func ENC(m *codon.CountMatrix) map[string]float64 {
	res := make(map[string]float64, len(m.Names))
	for _, name := range m.Names {
		res[name] = encOne(m.Counts[name], m)
	}
	return res
}

// encOne aggregates Wright's codon homozygosity over subfamilies.
// For a subfamily with total count n and codon proportions p_i,
// F = (n*sum(p_i^2)-1)/(n-1); subfamilies counted fewer than twice
// carry no information and are excluded. F values are averaged within
// each degeneracy class weighted by counts, and the gene's ENC is the
// number of used single-codon subfamilies plus sum over classes of
// (used subfamilies / mean F).
func encOne(c codon.Counts, m *codon.CountMatrix) float64 {
	gcode := m.GCode

	type classAgg struct {
		sumNF float64
		sumN  float64
		used  int
	}
	classes := make(map[int]*classAgg)
	singles := 0

	for _, sf := range gcode.Subfamilies {
		n := 0
		sumsq := 0.0
		for _, cd := range sf.Codons {
			n += c[gcode.CodonNum[cd]]
		}
		if n == 0 {
			continue
		}
		if len(sf.Codons) == 1 {
			singles++
			continue
		}
		if n < 2 {
			continue
		}
		for _, cd := range sf.Codons {
			p := float64(c[gcode.CodonNum[cd]]) / float64(n)
			sumsq += p * p
		}
		f := (float64(n)*sumsq - 1) / float64(n-1)

		cl := classes[len(sf.Codons)]
		if cl == nil {
			cl = &classAgg{}
			classes[len(sf.Codons)] = cl
		}
		cl.sumNF += float64(n) * f
		cl.sumN += float64(n)
		cl.used++
	}

	enc := float64(singles)
	for _, cl := range classes {
		fbar := cl.sumNF / cl.sumN
		if fbar <= 0 {
			// perfectly even tiny subfamilies; no estimate for the class
			continue
		}
		enc += float64(cl.used) / fbar
	}
	if enc == 0 {
		return math.NaN()
	}
	if enc > float64(gcode.NCodon) {
		enc = float64(gcode.NCodon)
	}
	return enc
}
