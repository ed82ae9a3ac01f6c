// Package codon provides codon-encoded sequences and per-gene codon
// counting.
package codon

import (
	"bytes"
	"fmt"

	"github.com/ZiBuZiBu/cubar/bio"
)

// NOCODON marks a codon which could not be encoded (ambiguous
// nucleotides or a stop codon).
const NOCODON = byte(255)

// Sequence is a codon-encoded sequence. Codons are stored as their
// sense-codon numbers in the genetic code.
type Sequence struct {
	Name     string
	Sequence []byte
	GCode    *bio.GeneticCode
}

// Sequences stores multiple codon-encoded sequences.
type Sequences []Sequence

func (seq Sequence) String() (s string) {
	var b bytes.Buffer
	for _, c := range seq.Sequence {
		if c == NOCODON {
			b.WriteString("--- ")
			continue
		}
		b.WriteString(seq.GCode.NumCodon[c] + " ")
	}
	s = ">" + seq.Name + "\n" + bio.Wrap(b.String(), 80)
	return
}

func (seqs Sequences) String() (s string) {
	for _, seq := range seqs {
		s += seq.String()
	}
	return s[:len(s)-1]
}

// NAmbiguous returns the number of positions which could not be
// encoded.
func (seqs Sequences) NAmbiguous() (count int) {
	for _, seq := range seqs {
		for _, c := range seq.Sequence {
			if c == NOCODON {
				count++
			}
		}
	}
	return
}

// ToCodonSequences converts nucleotide sequences to codon-encoded
// sequences. Sequence length must be a multiple of three; a terminal
// stop codon is dropped, unknown triplets and internal stop codons
// become NOCODON. The error wraps bio.ErrMalformedSequence.
func ToCodonSequences(seqs bio.Sequences, gcode *bio.GeneticCode) (cs Sequences, err error) {
	cs = make(Sequences, 0, len(seqs))
	for _, seq := range seqs {
		nseq := bio.Normalize(seq.Sequence)
		if len(nseq)%3 != 0 {
			return nil, fmt.Errorf("%w: %s: sequence length doesn't divide by 3",
				bio.ErrMalformedSequence, seq.Name)
		}
		if len(nseq) >= 3 && gcode.IsStopCodon(nseq[len(nseq)-3:]) {
			nseq = nseq[:len(nseq)-3]
		}
		cseq := Sequence{
			Name:     seq.Name,
			Sequence: make([]byte, 0, len(nseq)/3),
			GCode:    gcode,
		}
		for i := 0; i < len(nseq); i += 3 {
			cnum, ok := gcode.CodonNum[nseq[i:i+3]]
			if !ok {
				cnum = NOCODON
			}
			cseq.Sequence = append(cseq.Sequence, cnum)
		}
		cs = append(cs, cseq)
	}
	return
}
