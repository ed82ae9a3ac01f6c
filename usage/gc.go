package usage

import (
	"math"

	"github.com/ZiBuZiBu/cubar/codon"
)

// GC computes the G+C fraction of every gene from its codon counts.
func GC(m *codon.CountMatrix) map[string]float64 {
	return gcAt(m, func(cd string) (gc, n int) {
		for i := 0; i < 3; i++ {
			if cd[i] == 'G' || cd[i] == 'C' {
				gc++
			}
		}
		return gc, 3
	})
}

// GC3 computes the G+C fraction at the third codon position, a
// common proxy for mutational bias alongside ENC.
func GC3(m *codon.CountMatrix) map[string]float64 {
	return gcAt(m, func(cd string) (gc, n int) {
		if cd[2] == 'G' || cd[2] == 'C' {
			gc++
		}
		return gc, 1
	})
}

func gcAt(m *codon.CountMatrix, f func(cd string) (gc, n int)) map[string]float64 {
	gcode := m.GCode
	res := make(map[string]float64, len(m.Names))
	for _, name := range m.Names {
		c := m.Counts[name]
		gc, n := 0, 0
		for ci, cnt := range c {
			if cnt == 0 {
				continue
			}
			g, t := f(gcode.NumCodon[byte(ci)])
			gc += g * cnt
			n += t * cnt
		}
		if n == 0 {
			res[name] = math.NaN()
			continue
		}
		res[name] = float64(gc) / float64(n)
	}
	return res
}
