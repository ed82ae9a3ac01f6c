package codon

import (
	"errors"
	"testing"

	"github.com/ZiBuZiBu/cubar/bio"
)

func stdCode(t *testing.T) *bio.GeneticCode {
	t.Helper()
	gc, err := bio.GetGeneticCode(1)
	if err != nil {
		t.Fatal(err)
	}
	return gc
}

func TestToCodonSequences(t *testing.T) {
	gc := stdCode(t)
	seqs := bio.Sequences{
		{Name: "g1", Sequence: "ATGAAAAAGTAA"},
		{Name: "g2", Sequence: "ATGNNNAAG"},
	}
	cs, err := ToCodonSequences(seqs, gc)
	if err != nil {
		t.Fatal(err)
	}
	// terminal stop codon is dropped
	if len(cs[0].Sequence) != 3 {
		t.Errorf("g1 has %d codons, want 3", len(cs[0].Sequence))
	}
	if cs[1].Sequence[1] != NOCODON {
		t.Error("ambiguous codon should be NOCODON")
	}

	_, err = ToCodonSequences(bio.Sequences{{Name: "bad", Sequence: "ATGA"}}, gc)
	if !errors.Is(err, bio.ErrMalformedSequence) {
		t.Errorf("expected ErrMalformedSequence, got %v", err)
	}
}

func TestCountRoundTrip(t *testing.T) {
	gc := stdCode(t)
	nseq := "ATGAAAAAGCTTCTCCTA" // no terminal stop
	seqs := bio.Sequences{{Name: "g1", Sequence: nseq}}
	cs, err := ToCodonSequences(seqs, gc)
	if err != nil {
		t.Fatal(err)
	}
	m, err := CountCodons(cs)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := m.Counts["g1"].Total(), len(nseq)/3; got != want {
		t.Errorf("counted %d codons, want %d", got, want)
	}
	if m.Counts["g1"][gc.CodonNum["AAA"]] != 1 {
		t.Error("AAA count wrong")
	}
}

func TestAggregateAndSubset(t *testing.T) {
	gc := stdCode(t)
	seqs := bio.Sequences{
		{Name: "g1", Sequence: "AAAAAA"},
		{Name: "g2", Sequence: "AAAAAG"},
	}
	cs, err := ToCodonSequences(seqs, gc)
	if err != nil {
		t.Fatal(err)
	}
	m, err := CountCodons(cs)
	if err != nil {
		t.Fatal(err)
	}
	total := m.Aggregate()
	if total[gc.CodonNum["AAA"]] != 3 || total[gc.CodonNum["AAG"]] != 1 {
		t.Errorf("bad aggregate: AAA=%d AAG=%d", total[gc.CodonNum["AAA"]], total[gc.CodonNum["AAG"]])
	}

	sub, err := m.Subset([]string{"g2"})
	if err != nil {
		t.Fatal(err)
	}
	if sub.Aggregate().Total() != 2 {
		t.Error("bad subset total")
	}
	if _, err := m.Subset([]string{"nope"}); err == nil {
		t.Error("no error for unknown gene")
	}
}

func TestDuplicateNames(t *testing.T) {
	gc := stdCode(t)
	cs, err := ToCodonSequences(bio.Sequences{
		{Name: "g", Sequence: "AAA"},
		{Name: "g", Sequence: "AAG"},
	}, gc)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := CountCodons(cs); err == nil {
		t.Error("no error for duplicate names")
	}
}
