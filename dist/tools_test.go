package dist

import (
	"errors"
	"math"
	"testing"
)

const smallDiff = 1e-9

func TestLinearFitExact(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{3, 5, 7, 9, 11} // y = 1 + 2x
	fit, err := LinearFit(x, y)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(fit.Slope-2) > smallDiff || math.Abs(fit.Intercept-1) > smallDiff {
		t.Errorf("fit %v, want slope 2 intercept 1", fit)
	}
	if fit.P != 0 {
		t.Errorf("exact fit p-value = %v, want 0", fit.P)
	}
}

func TestLinearFitNoisy(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6}
	y := []float64{1.1, 1.9, 3.2, 3.8, 5.1, 5.9}
	fit, err := LinearFit(x, y)
	if err != nil {
		t.Fatal(err)
	}
	if fit.Slope < 0.9 || fit.Slope > 1.1 {
		t.Errorf("slope = %v, want close to 1", fit.Slope)
	}
	if fit.P <= 0 || fit.P >= 0.001 {
		t.Errorf("p = %v, want small and positive", fit.P)
	}
	lo, hi := fit.ConfInt(0.95)
	if lo >= fit.Slope || hi <= fit.Slope {
		t.Errorf("confidence interval [%v, %v] doesn't bracket %v", lo, hi, fit.Slope)
	}
	// width is 2*t(0.975, df=4)*SE = 5.55*SE
	if width := hi - lo; width < 4*fit.StdErr || width > 8*fit.StdErr {
		t.Errorf("confidence interval [%v, %v] has unexpected width", lo, hi)
	}
}

func TestLinearFitFlat(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	y := []float64{2, 2, 2, 2}
	fit, err := LinearFit(x, y)
	if err != nil {
		t.Fatal(err)
	}
	if fit.Slope != 0 || fit.P != 1 {
		t.Errorf("flat data: slope=%v p=%v, want 0 and 1", fit.Slope, fit.P)
	}
}

func TestLinearFitInsufficient(t *testing.T) {
	if _, err := LinearFit([]float64{1, 2}, []float64{1, 2}); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData, got %v", err)
	}
	// zero variance in x
	if _, err := LinearFit([]float64{2, 2, 2}, []float64{1, 2, 3}); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData for constant x, got %v", err)
	}
}

func TestAdjustBH(t *testing.T) {
	p := []float64{0.005, 0.04, 0.05}
	q := AdjustBH(p)
	want := []float64{0.015, 0.05, 0.05}
	for i := range q {
		if math.Abs(q[i]-want[i]) > smallDiff {
			t.Errorf("q[%d] = %v, want %v", i, q[i], want[i])
		}
	}
}

func TestAdjustBHMonotone(t *testing.T) {
	p := []float64{0.9, 0.001, 0.5, 0.02, 0.3}
	q := AdjustBH(p)
	for i := range p {
		if q[i] < p[i] {
			t.Errorf("q[%d]=%v below p=%v", i, q[i], p[i])
		}
		if q[i] > 1 {
			t.Errorf("q[%d]=%v above 1", i, q[i])
		}
	}
}

func TestAdjustBHNaN(t *testing.T) {
	p := []float64{0.01, math.NaN(), 0.02}
	q := AdjustBH(p)
	if !math.IsNaN(q[1]) {
		t.Errorf("q for NaN p = %v, want NaN", q[1])
	}
	// NaN entries don't count towards m
	if math.Abs(q[0]-0.02) > smallDiff {
		t.Errorf("q[0] = %v, want 0.02", q[0])
	}
}
