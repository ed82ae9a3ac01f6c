// Package bio provides genetic codes, sequence types and
// coding-sequence quality checks.
package bio

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
)

// ErrMalformedSequence is returned when a coding sequence fails a
// structural check.
var ErrMalformedSequence = errors.New("malformed coding sequence")

// Normalize converts a nucleotide sequence to the DNA alphabet in
// capital letters (U is replaced with T).
func Normalize(nseq string) string {
	return strings.Replace(strings.ToUpper(nseq), "U", "T", -1)
}

// Translate translates a nucleotide sequence string into the protein
// string using a genetic code. Error is returned if sequence is not
// divisible by three, a non-terminal stop codon is found or a wrong
// codon is encountered.
func Translate(nseq string, gcode *GeneticCode) (string, error) {
	var buffer bytes.Buffer

	if len(nseq)%3 != 0 {
		return "", errors.New("sequence length doesn't divide by 3")
	}

	nseq = Normalize(nseq)

	for i := 0; i < len(nseq); i += 3 {
		aa := gcode.Map[nseq[i:i+3]]
		if aa == 0 {
			return buffer.String(), errors.New("unknown codon")
		} else if aa == '*' {
			if i+3 >= len(nseq) {
				// it's ok if this is the last codon
				break
			}
			return buffer.String(), errors.New("premature stop codon")
		}
		buffer.WriteByte(aa)
	}
	return buffer.String(), nil
}

// Sequence is a type which is intended for storing nucleotide or
// protein sequence with it's name.
type Sequence struct {
	Name     string
	Sequence string
}

// Sequences stores multiple sequences, e.g. a coding sequence set.
type Sequences []Sequence

// ParseFasta parses FASTA sequences from a reader.
func ParseFasta(rd io.Reader) (seqs Sequences, err error) {
	seqs = make(Sequences, 0, 10)
	scanner := bufio.NewScanner(rd)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line[0] == '>' {
			seq := Sequence{Name: line[1:]}
			seqs = append(seqs, seq)
		} else {
			if len(seqs) == 0 {
				return nil, errors.New("sequence w/o prefix")
			}
			line = strings.ToUpper(strings.Replace(line, " ", "", -1))
			seqs[len(seqs)-1].Sequence += line
		}
	}
	return
}

// Wrap inputs a string and wraps it so string length is n characters
// or less.
func Wrap(seq string, n int) (s string) {
	for i := 0; i < len(seq); i += n {
		end := i + n
		if end > len(seq) {
			end = len(seq)
		}
		s += seq[i:end] + "\n"
	}
	return
}

// String returns a sequence in FASTA format.
func (seq Sequence) String() (s string) {
	s = ">" + seq.Name + "\n" + Wrap(seq.Sequence, 80)
	return
}

// String returns sequences in FASTA format.
func (seqs Sequences) String() (s string) {
	for _, seq := range seqs {
		s += seq.String()
	}
	return s[:len(s)-1]
}
