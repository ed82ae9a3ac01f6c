package usage

import (
	"math"

	"github.com/ZiBuZiBu/cubar/codon"
)

// Fop computes the fraction of optimal codons for every gene: the
// count of optimal codons over the count of all codons from
// subfamilies that have at least one optimal codon. Single-codon
// subfamilies never contribute. A gene with no codon in any such
// subfamily yields NaN.
func Fop(m *codon.CountMatrix, optimal map[string]bool) map[string]float64 {
	gcode := m.GCode

	// subfamilies with a defined optimal codon
	hasOptimal := make([]bool, len(gcode.Subfamilies))
	for cd, opt := range optimal {
		if !opt {
			continue
		}
		if si, ok := gcode.SubfamilyOf[cd]; ok {
			hasOptimal[si] = true
		}
	}

	res := make(map[string]float64, len(m.Names))
	for _, name := range m.Names {
		c := m.Counts[name]
		nopt, ntot := 0, 0
		for si, sf := range gcode.Subfamilies {
			if !hasOptimal[si] || len(sf.Codons) < 2 {
				continue
			}
			for _, cd := range sf.Codons {
				cnt := c[gcode.CodonNum[cd]]
				ntot += cnt
				if optimal[cd] {
					nopt += cnt
				}
			}
		}
		if ntot == 0 {
			res[name] = math.NaN()
			continue
		}
		res[name] = float64(nopt) / float64(ntot)
	}
	return res
}
