// Package optimal infers optimal codons by regressing per-gene codon
// usage fractions against the effective number of codons.
package optimal

import (
	"fmt"
	"math"

	"github.com/ZiBuZiBu/cubar/codon"
	"github.com/ZiBuZiBu/cubar/dist"
	"github.com/ZiBuZiBu/cubar/usage"
)

// Options control the estimation.
type Options struct {
	// Alpha is the q-value significance cutoff.
	Alpha float64
	// MinGenes is the minimum number of genes using a subfamily for
	// its codons to be testable.
	MinGenes int
}

// DefaultOptions follow common practice: q < 0.01 and at least three
// observations per regression.
var DefaultOptions = Options{Alpha: 0.01, MinGenes: 3}

// Result is the regression record for a single codon.
type Result struct {
	Codon     string `json:"codon"`
	AA        byte   `json:"-"`
	Subfamily string `json:"subfamily"`
	// Slope of usage fraction on ENC; negative slope means usage
	// grows with bias.
	Slope  float64 `json:"slope"`
	StdErr float64 `json:"stderr"`
	P      float64 `json:"pvalue"`
	Q      float64 `json:"qvalue"`
	// NGenes is the number of genes the regression used.
	NGenes  int  `json:"nGenes"`
	Optimal bool `json:"optimal"`
}

// Estimate computes per-codon regressions across all subfamilies with
// at least two synonymous codons. Codons from subfamilies used by
// fewer than MinGenes genes get NaN statistics and are never optimal;
// the returned error wraps dist.ErrInsufficientData only when no
// codon was testable.
func Estimate(m *codon.CountMatrix, opt Options) ([]Result, error) {
	if opt.Alpha == 0 {
		opt.Alpha = DefaultOptions.Alpha
	}
	if opt.MinGenes == 0 {
		opt.MinGenes = DefaultOptions.MinGenes
	}

	gcode := m.GCode
	enc := usage.ENC(m)

	var results []Result
	var pvalues []float64
	tested := 0

	for _, sf := range gcode.Subfamilies {
		if len(sf.Codons) < 2 {
			continue
		}
		// per-gene usage fractions for the subfamily
		var x []float64
		fractions := make(map[string][]float64, len(m.Names))
		for _, name := range m.Names {
			c := m.Counts[name]
			n := 0
			for _, cd := range sf.Codons {
				n += c[gcode.CodonNum[cd]]
			}
			e := enc[name]
			if n == 0 || math.IsNaN(e) {
				continue
			}
			fr := make([]float64, len(sf.Codons))
			for k, cd := range sf.Codons {
				fr[k] = float64(c[gcode.CodonNum[cd]]) / float64(n)
			}
			fractions[name] = fr
			x = append(x, e)
		}

		for k, cd := range sf.Codons {
			res := Result{
				Codon:     cd,
				AA:        sf.AA,
				Subfamily: sf.Label(),
				Slope:     math.NaN(),
				StdErr:    math.NaN(),
				P:         math.NaN(),
				Q:         math.NaN(),
				NGenes:    len(x),
			}
			if len(x) >= opt.MinGenes {
				y := make([]float64, 0, len(x))
				for _, name := range m.Names {
					if fr, ok := fractions[name]; ok {
						y = append(y, fr[k])
					}
				}
				fit, err := dist.LinearFit(x, y)
				if err == nil {
					res.Slope = fit.Slope
					res.StdErr = fit.StdErr
					res.P = fit.P
					tested++
				}
			}
			pvalues = append(pvalues, res.P)
			results = append(results, res)
		}
	}

	if tested == 0 {
		return results, fmt.Errorf("%w: no subfamily with enough genes", dist.ErrInsufficientData)
	}

	qvalues := dist.AdjustBH(pvalues)
	for i := range results {
		results[i].Q = qvalues[i]
		results[i].Optimal = results[i].Slope < 0 && qvalues[i] < opt.Alpha
	}
	return results, nil
}

// OptimalSet extracts the optimal codon set for Fop.
func OptimalSet(results []Result) map[string]bool {
	set := make(map[string]bool)
	for _, r := range results {
		if r.Optimal {
			set[r.Codon] = true
		}
	}
	return set
}
