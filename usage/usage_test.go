package usage

import (
	"math"
	"sort"
	"testing"

	"github.com/ZiBuZiBu/cubar/bio"
	"github.com/ZiBuZiBu/cubar/codon"
)

const smallDiff = 1e-9

// matrixFrom builds a count matrix from literal per-gene codon counts.
func matrixFrom(t *testing.T, genes map[string]map[string]int) *codon.CountMatrix {
	t.Helper()
	gc, err := bio.GetGeneticCode(1)
	if err != nil {
		t.Fatal(err)
	}
	m := &codon.CountMatrix{
		GCode:  gc,
		Counts: make(map[string]codon.Counts, len(genes)),
	}
	for name := range genes {
		m.Names = append(m.Names, name)
	}
	sort.Strings(m.Names)
	for _, name := range m.Names {
		c := make(codon.Counts, gc.NCodon)
		for cd, n := range genes[name] {
			c[gc.CodonNum[cd]] = n
		}
		m.Counts[name] = c
	}
	return m
}

func TestRSCUTwoFold(t *testing.T) {
	m := matrixFrom(t, map[string]map[string]int{
		"g1": {"AAA": 10, "AAG": 0},
	})
	r := EstimateRSCU(m)
	gc := m.GCode
	if got := r.Values[gc.CodonNum["AAA"]]; got != 2 {
		t.Errorf("RSCU(AAA) = %v, want 2", got)
	}
	if got := r.Values[gc.CodonNum["AAG"]]; got != 0 {
		t.Errorf("RSCU(AAG) = %v, want 0", got)
	}
	// unused subfamilies are NaN
	if !math.IsNaN(r.Values[gc.CodonNum["TTT"]]) {
		t.Error("RSCU of an unused subfamily should be NaN")
	}
}

func TestRSCUSubfamilySums(t *testing.T) {
	m := matrixFrom(t, map[string]map[string]int{
		"g1": {"CTT": 3, "CTC": 2, "CTA": 1, "CTG": 6, "AAA": 4, "AAG": 1},
		"g2": {"CTT": 1, "AAA": 2},
	})
	r := EstimateRSCU(m)
	gc := m.GCode
	for _, sf := range gc.Subfamilies {
		sum, n := 0.0, 0
		for _, cd := range sf.Codons {
			v := r.Values[gc.CodonNum[cd]]
			if math.IsNaN(v) {
				continue
			}
			sum += v
			n++
		}
		if n == 0 {
			continue
		}
		if math.Abs(sum-float64(len(sf.Codons))) > smallDiff {
			t.Errorf("subfamily %s: RSCU sums to %v, want %d", sf.Label(), sum, len(sf.Codons))
		}
	}
}

func TestWeights(t *testing.T) {
	m := matrixFrom(t, map[string]map[string]int{
		"g1": {"AAA": 30, "AAG": 10},
	})
	w := EstimateRSCU(m).Weights()
	gc := m.GCode
	if got := w.Values[gc.CodonNum["AAA"]]; got != 1 {
		t.Errorf("weight(AAA) = %v, want 1", got)
	}
	if got := w.Values[gc.CodonNum["AAG"]]; math.Abs(got-1.0/3) > smallDiff {
		t.Errorf("weight(AAG) = %v, want 1/3", got)
	}
}

func TestENCSingleCodonPerSubfamily(t *testing.T) {
	// one subfamily, one codon used: minimal diversity
	m := matrixFrom(t, map[string]map[string]int{
		"g1": {"AAA": 10},
	})
	enc := ENC(m)
	if math.Abs(enc["g1"]-1) > smallDiff {
		t.Errorf("ENC = %v, want 1", enc["g1"])
	}
}

func TestENCEvenTwoFold(t *testing.T) {
	// even usage within one two-codon subfamily: F = (n/2-1)/(n-1)
	m := matrixFrom(t, map[string]map[string]int{
		"g1": {"AAA": 5, "AAG": 5},
	})
	enc := ENC(m)
	want := 1 / ((10*0.5 - 1) / 9)
	if math.Abs(enc["g1"]-want) > smallDiff {
		t.Errorf("ENC = %v, want %v", enc["g1"], want)
	}
}

func TestENCBounds(t *testing.T) {
	// hit every sense codon once: ENC must stay within (0, 61]
	gc, _ := bio.GetGeneticCode(1)
	counts := map[string]int{}
	for n := 0; n < gc.NCodon; n++ {
		counts[gc.NumCodon[byte(n)]] = 1
	}
	m := matrixFrom(t, map[string]map[string]int{"g1": counts})
	enc := ENC(m)
	if enc["g1"] <= 0 || enc["g1"] > 61 {
		t.Errorf("ENC = %v out of (0, 61]", enc["g1"])
	}
}

func TestENCMissingSubfamilies(t *testing.T) {
	// genes touching few subfamilies must not fail
	m := matrixFrom(t, map[string]map[string]int{
		"g1": {"ATG": 3},
		"g2": {},
	})
	enc := ENC(m)
	if math.Abs(enc["g1"]-1) > smallDiff {
		t.Errorf("ENC(g1) = %v, want 1 (single-codon subfamily)", enc["g1"])
	}
	if !math.IsNaN(enc["g2"]) {
		t.Errorf("ENC(g2) = %v, want NaN", enc["g2"])
	}
}

func TestCAI(t *testing.T) {
	ref := matrixFrom(t, map[string]map[string]int{
		"ref": {"AAA": 30, "AAG": 10, "TTT": 20, "TTC": 20},
	})
	w := EstimateRSCU(ref).Weights()

	m := matrixFrom(t, map[string]map[string]int{
		"best":  {"AAA": 5, "TTT": 5},  // only preferred codons
		"worst": {"AAG": 5},            // weight 1/3
		"mixed": {"AAA": 1, "AAG": 1},  // sqrt(1/3)
		"met":   {"ATG": 10, "TGG": 3}, // only single-codon subfamilies
	})
	cai := CAI(m, w)

	if math.Abs(cai["best"]-1) > smallDiff {
		t.Errorf("CAI(best) = %v, want 1", cai["best"])
	}
	if math.Abs(cai["worst"]-1.0/3) > smallDiff {
		t.Errorf("CAI(worst) = %v, want 1/3", cai["worst"])
	}
	if want := math.Sqrt(1.0 / 3); math.Abs(cai["mixed"]-want) > smallDiff {
		t.Errorf("CAI(mixed) = %v, want %v", cai["mixed"], want)
	}
	if !math.IsNaN(cai["met"]) {
		t.Errorf("CAI(met) = %v, want NaN", cai["met"])
	}
}

func TestCAIZeroWeight(t *testing.T) {
	ref := matrixFrom(t, map[string]map[string]int{
		"ref": {"AAA": 10, "AAG": 0},
	})
	w := EstimateRSCU(ref).Weights()
	m := matrixFrom(t, map[string]map[string]int{
		"g1": {"AAA": 3, "AAG": 1},
	})
	cai := CAI(m, w)
	if cai["g1"] != 0 {
		t.Errorf("CAI = %v, want explicit 0 for a zero-weight codon", cai["g1"])
	}
}

func TestFop(t *testing.T) {
	m := matrixFrom(t, map[string]map[string]int{
		"g1": {"AAA": 3, "AAG": 1, "TTT": 4, "ATG": 7},
	})
	optimal := map[string]bool{"AAA": true}
	fop := Fop(m, optimal)
	// TTT's subfamily has no optimal codon, ATG is a single-codon
	// subfamily: both excluded from the denominator.
	if want := 3.0 / 4; math.Abs(fop["g1"]-want) > smallDiff {
		t.Errorf("Fop = %v, want %v", fop["g1"], want)
	}

	empty := Fop(m, map[string]bool{"CTG": true})
	if !math.IsNaN(empty["g1"]) {
		t.Errorf("Fop = %v, want NaN when no relevant subfamily is used", empty["g1"])
	}
}

func TestTAIMatchesGeometricMean(t *testing.T) {
	gc, _ := bio.GetGeneticCode(1)
	w := Weights{Values: make([]float64, gc.NCodon), GCode: gc}
	for i := range w.Values {
		w.Values[i] = 0.5
	}
	w.Values[gc.CodonNum["AAA"]] = 1

	m := matrixFrom(t, map[string]map[string]int{
		"g1": {"AAA": 1, "AAG": 1},
	})
	tai := TAI(m, w)
	if want := math.Sqrt(0.5); math.Abs(tai["g1"]-want) > smallDiff {
		t.Errorf("tAI = %v, want %v", tai["g1"], want)
	}
}

func TestGC(t *testing.T) {
	m := matrixFrom(t, map[string]map[string]int{
		"g1": {"GCG": 1, "ATA": 1}, // 3 G/C out of 6, third positions G and A
	})
	gcv := GC(m)
	if math.Abs(gcv["g1"]-0.5) > smallDiff {
		t.Errorf("GC = %v, want 0.5", gcv["g1"])
	}
	gc3 := GC3(m)
	if math.Abs(gc3["g1"]-0.5) > smallDiff {
		t.Errorf("GC3 = %v, want 0.5", gc3["g1"])
	}
}
