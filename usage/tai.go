package usage

import "github.com/ZiBuZiBu/cubar/codon"

// TAI computes the tRNA adaptation index of every gene. It has the
// same count-weighted geometric-mean structure as CAI but consumes
// tRNA-abundance-derived weights instead of RSCU-derived ones.
func TAI(m *codon.CountMatrix, w Weights) map[string]float64 {
	return geoMeanIndex(m, w)
}
