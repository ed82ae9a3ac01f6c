package bio

import "fmt"

// CDSChecks selects which structural checks CheckCDS applies.
type CDSChecks struct {
	// Length requires the sequence length to be a multiple of three.
	Length bool
	// Start requires the first codon to be a start codon.
	Start bool
	// Stop requires the last codon to be a stop codon.
	Stop bool
	// InternalStop rejects sequences with a non-terminal stop codon.
	InternalStop bool
}

// DefaultCDSChecks enables all checks.
var DefaultCDSChecks = CDSChecks{Length: true, Start: true, Stop: true, InternalStop: true}

// Exclusion reports a sequence removed by CheckCDS and the reason.
type Exclusion struct {
	Name   string
	Reason string
}

func (e Exclusion) String() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Reason)
}

// checkOne returns an empty string if the sequence passes all enabled
// checks, otherwise the failure reason.
func checkOne(nseq string, gcode *GeneticCode, checks CDSChecks) string {
	if len(nseq) == 0 {
		return "empty sequence"
	}
	if len(nseq)%3 != 0 {
		if checks.Length {
			return "length is not a multiple of 3"
		}
		// the remaining checks need whole codons
		nseq = nseq[:len(nseq)-len(nseq)%3]
		if len(nseq) == 0 {
			return ""
		}
	}
	if checks.Start && !gcode.IsStartCodon(nseq[:3]) {
		return "no start codon"
	}
	if checks.Stop && !gcode.IsStopCodon(nseq[len(nseq)-3:]) {
		return "no stop codon"
	}
	if checks.InternalStop {
		for i := 0; i+3 < len(nseq); i += 3 {
			if gcode.IsStopCodon(nseq[i : i+3]) {
				return fmt.Sprintf("internal stop codon at position %d", i+1)
			}
		}
	}
	return ""
}

// CheckCDS validates coding sequences against the enabled checks.
// Sequences failing any enabled check are excluded from the returned
// set and reported; sequences are normalized to the capital DNA
// alphabet. The error wraps ErrMalformedSequence when at least one
// sequence was excluded.
func CheckCDS(seqs Sequences, gcode *GeneticCode, checks CDSChecks) (Sequences, []Exclusion, error) {
	kept := make(Sequences, 0, len(seqs))
	var excluded []Exclusion
	for _, seq := range seqs {
		nseq := Normalize(seq.Sequence)
		if reason := checkOne(nseq, gcode, checks); reason != "" {
			excluded = append(excluded, Exclusion{Name: seq.Name, Reason: reason})
			continue
		}
		kept = append(kept, Sequence{Name: seq.Name, Sequence: nseq})
	}
	var err error
	if len(excluded) > 0 {
		err = fmt.Errorf("%w: %d of %d sequences excluded",
			ErrMalformedSequence, len(excluded), len(seqs))
	}
	return kept, excluded, err
}
