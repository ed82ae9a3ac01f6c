// Package dist implements the statistical estimation helpers used by
// optimal codon inference: simple linear regression with a t-test on
// the slope and Benjamini-Hochberg false discovery rate correction.
package dist

import (
	"errors"
	"math"
	"sort"

	"github.com/gonum/mathext"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrInsufficientData is returned when too few observations are
// available for an estimate.
var ErrInsufficientData = errors.New("insufficient data")

// Fit stores an ordinary least squares fit of y = Intercept + Slope*x
// and the two-sided test of Slope = 0.
type Fit struct {
	Slope     float64
	Intercept float64
	// StdErr is the standard error of the slope.
	StdErr float64
	// T is the slope t-statistic, P the two-sided p-value with N-2
	// degrees of freedom.
	T float64
	P float64
	N int
}

// LinearFit regresses y on x by ordinary least squares. At least
// three observations with non-zero x variance are required.
func LinearFit(x, y []float64) (Fit, error) {
	if len(x) != len(y) {
		return Fit{}, errors.New("x and y length mismatch")
	}
	n := len(x)
	if n < 3 {
		return Fit{}, ErrInsufficientData
	}

	alpha, beta := stat.LinearRegression(x, y, nil, false)

	xmean := stat.Mean(x, nil)
	ssx := 0.0
	rss := 0.0
	for i := range x {
		dx := x[i] - xmean
		ssx += dx * dx
		r := y[i] - alpha - beta*x[i]
		rss += r * r
	}
	if ssx == 0 {
		return Fit{}, ErrInsufficientData
	}

	df := float64(n - 2)
	se := math.Sqrt(rss / df / ssx)

	fit := Fit{
		Slope:     beta,
		Intercept: alpha,
		StdErr:    se,
		N:         n,
	}
	if se == 0 {
		// exact fit
		fit.T = math.Inf(1)
		if beta < 0 {
			fit.T = math.Inf(-1)
		}
		if beta == 0 {
			fit.T = 0
			fit.P = 1
			return fit, nil
		}
		fit.P = 0
		return fit, nil
	}
	fit.T = beta / se
	fit.P = mathext.RegIncBeta(df/2, 0.5, df/(df+fit.T*fit.T))
	return fit, nil
}

// ConfInt returns the confidence interval of the slope at the given
// level (e.g. 0.95).
func (f Fit) ConfInt(level float64) (lo, hi float64) {
	if f.N < 3 || math.IsInf(f.T, 0) {
		return f.Slope, f.Slope
	}
	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(f.N - 2)}
	q := t.Quantile(1 - (1-level)/2)
	return f.Slope - q*f.StdErr, f.Slope + q*f.StdErr
}

// AdjustBH converts p-values to Benjamini-Hochberg q-values. NaN
// entries stay NaN and do not participate in the correction.
func AdjustBH(p []float64) []float64 {
	q := make([]float64, len(p))
	idx := make([]int, 0, len(p))
	for i, v := range p {
		if math.IsNaN(v) {
			q[i] = math.NaN()
			continue
		}
		idx = append(idx, i)
	}
	sort.Slice(idx, func(a, b int) bool { return p[idx[a]] < p[idx[b]] })

	m := float64(len(idx))
	minq := math.Inf(1)
	for r := len(idx) - 1; r >= 0; r-- {
		v := p[idx[r]] * m / float64(r+1)
		if v < minq {
			minq = v
		}
		if minq > 1 {
			q[idx[r]] = 1
		} else {
			q[idx[r]] = minq
		}
	}
	return q
}
