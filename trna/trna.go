// Package trna converts tRNA gene copy numbers into per-codon
// adaptation weights using wobble pairing rules.
package trna

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/ZiBuZiBu/cubar/bio"
	"github.com/ZiBuZiBu/cubar/usage"
)

// Copies maps an anticodon (5'->3', wobble position first, DNA
// alphabet) to its gene copy number.
type Copies map[string]float64

// Constraints are the wobble selective constraints s of dos Reis et
// al. (2004); the contribution of an anticodon is scaled by 1-s.
type Constraints struct {
	// WC applies to Watson-Crick pairs.
	WC float64
	// GU is anticodon G34 pairing a codon ending in U.
	GU float64
	// IC is inosine (genomic A34) pairing a codon ending in C.
	IC float64
	// IA is inosine pairing a codon ending in A.
	IA float64
	// UG is anticodon U34 pairing a codon ending in G.
	UG float64
}

// DefaultConstraints are the published tAI constants.
var DefaultConstraints = Constraints{WC: 0, GU: 0.41, IC: 0.28, IA: 0.9999, UG: 0.68}

// ReadCopies parses an anticodon copy-number table: one "anticodon
// count" pair per line, '#' starts a comment. Anticodons are
// normalized to the capital DNA alphabet.
func ReadCopies(rd io.Reader) (Copies, error) {
	copies := make(Copies)
	scanner := bufio.NewScanner(rd)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected anticodon and copy number", lineno)
		}
		ac := bio.Normalize(fields[0])
		if len(ac) != 3 {
			return nil, fmt.Errorf("line %d: bad anticodon %q", lineno, fields[0])
		}
		n, err := strconv.ParseFloat(fields[1], 64)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("line %d: bad copy number %q", lineno, fields[1])
		}
		copies[ac] += n
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return copies, nil
}

var complement = map[byte]byte{'T': 'A', 'C': 'G', 'A': 'T', 'G': 'C'}

// revComp returns the reverse complement of a codon, i.e. its
// Watson-Crick anticodon.
func revComp(codon string) string {
	b := []byte{complement[codon[2]], complement[codon[1]], complement[codon[0]]}
	return string(b)
}

// Weights computes per-codon tRNA adaptation weights: for every sense
// codon, the copy numbers of all anticodons able to pair with it are
// summed with the wobble constraints, then weights are normalized so
// the best codon of every subfamily gets 1. Codons with zero pairing
// capacity are floored at the geometric mean of the positive weights.
func Weights(copies Copies, gcode *bio.GeneticCode, c Constraints) usage.Weights {
	w := usage.Weights{Values: make([]float64, gcode.NCodon), GCode: gcode}

	for n := 0; n < gcode.NCodon; n++ {
		cd := gcode.NumCodon[byte(n)]
		wc := revComp(cd)
		sum := (1 - c.WC) * copies[wc]
		tail := wc[1:]
		switch cd[2] {
		case 'T':
			sum += (1 - c.GU) * copies["G"+tail]
		case 'C':
			sum += (1 - c.IC) * copies["A"+tail]
		case 'A':
			sum += (1 - c.IA) * copies["A"+tail]
		case 'G':
			sum += (1 - c.UG) * copies["T"+tail]
		}
		w.Values[n] = sum
	}

	// normalize per subfamily
	for _, sf := range gcode.Subfamilies {
		best := 0.0
		for _, cd := range sf.Codons {
			if v := w.Values[gcode.CodonNum[cd]]; v > best {
				best = v
			}
		}
		for _, cd := range sf.Codons {
			ci := gcode.CodonNum[cd]
			if best == 0 {
				w.Values[ci] = math.NaN()
				continue
			}
			w.Values[ci] /= best
		}
	}

	// floor for codons no tRNA can read
	logsum := 0.0
	npos := 0
	for _, v := range w.Values {
		if v > 0 && !math.IsNaN(v) {
			logsum += math.Log(v)
			npos++
		}
	}
	if npos > 0 {
		floor := math.Exp(logsum / float64(npos))
		for i, v := range w.Values {
			if v == 0 || math.IsNaN(v) {
				w.Values[i] = floor
			}
		}
	}
	return w
}
