package codon

import (
	"fmt"

	"github.com/ZiBuZiBu/cubar/bio"
)

// Counts is a per-gene codon count vector indexed by sense-codon
// number.
type Counts []int

// Total returns the total number of counted codons.
func (c Counts) Total() (n int) {
	for _, v := range c {
		n += v
	}
	return
}

// CountMatrix maps gene identifiers to codon count vectors. Names
// preserves the input order so iteration over genes is stable.
type CountMatrix struct {
	GCode  *bio.GeneticCode
	Names  []string
	Counts map[string]Counts
}

// CountSequence counts codons of a single codon-encoded sequence.
// NOCODON positions are skipped.
func CountSequence(seq Sequence) Counts {
	c := make(Counts, seq.GCode.NCodon)
	for _, cnum := range seq.Sequence {
		if cnum == NOCODON {
			continue
		}
		c[cnum]++
	}
	return c
}

// CountCodons builds the count matrix for a set of codon-encoded
// sequences.
func CountCodons(seqs Sequences) (*CountMatrix, error) {
	if len(seqs) == 0 {
		return nil, fmt.Errorf("no sequences to count")
	}
	m := &CountMatrix{
		GCode:  seqs[0].GCode,
		Names:  make([]string, 0, len(seqs)),
		Counts: make(map[string]Counts, len(seqs)),
	}
	for _, seq := range seqs {
		if _, ok := m.Counts[seq.Name]; ok {
			return nil, fmt.Errorf("duplicate sequence name: %s", seq.Name)
		}
		m.Names = append(m.Names, seq.Name)
		m.Counts[seq.Name] = CountSequence(seq)
	}
	return m, nil
}

// Aggregate sums counts across all genes of the matrix.
func (m *CountMatrix) Aggregate() Counts {
	total := make(Counts, m.GCode.NCodon)
	for _, name := range m.Names {
		for i, v := range m.Counts[name] {
			total[i] += v
		}
	}
	return total
}

// Subset returns a matrix restricted to the named genes (e.g. a
// highly expressed reference set). Unknown names are an error.
func (m *CountMatrix) Subset(names []string) (*CountMatrix, error) {
	s := &CountMatrix{
		GCode:  m.GCode,
		Names:  make([]string, 0, len(names)),
		Counts: make(map[string]Counts, len(names)),
	}
	for _, name := range names {
		c, ok := m.Counts[name]
		if !ok {
			return nil, fmt.Errorf("unknown gene: %s", name)
		}
		s.Names = append(s.Names, name)
		s.Counts[name] = c
	}
	return s, nil
}
