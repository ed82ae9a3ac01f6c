package bio

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownCode is returned when a genetic code id is not in the
// NCBI tables.
var ErrUnknownCode = errors.New("unknown genetic code id")

// Subfamily is a group of synonymous codons sharing the first two
// nucleotides. Large codon families (six-fold degenerate amino acids)
// are split into subfamilies of at most four codons.
type Subfamily struct {
	// AA is the amino acid one-letter code.
	AA byte
	// Prefix is the shared first two nucleotides.
	Prefix string
	// Codons are the member codons in TCAG order.
	Codons []string
}

// Label returns a subfamily identifier, e.g. "L_CT" for the
// four-codon leucine subfamily.
func (sf Subfamily) Label() string {
	return fmt.Sprintf("%c_%s", sf.AA, sf.Prefix)
}

// GeneticCode stores a single NCBI genetic code together with lookup
// tables derived from it.
type GeneticCode struct {
	ID        int
	Name      string
	ShortName string

	// Map is the codon to amino acid map, '*' for stop codons.
	Map map[string]byte

	// NCodon is the number of sense (non-stop) codons.
	NCodon int
	// CodonNum maps a sense codon to its number (0..NCodon-1).
	CodonNum map[string]byte
	// NumCodon maps a codon number back to the codon.
	NumCodon map[byte]string

	// Subfamilies partition the sense codons; SubfamilyOf gives the
	// index into Subfamilies for every sense codon.
	Subfamilies []Subfamily
	SubfamilyOf map[string]int

	startCodons map[string]bool
	stopCodons  map[string]bool
}

// GeneticCodes is a map of all genetic codes from NCBI, key is the
// code id.
var GeneticCodes = map[int]*GeneticCode{}

var (
	alphabet  = [...]byte{'T', 'C', 'A', 'G'}
	rAlphabet = map[byte]byte{'T': 0, 'C': 1, 'A': 2, 'G': 3}
)

// GetCodons returns a channel with all 64 codons in TCAG order.
func GetCodons() <-chan string {
	ch := make(chan string)
	var cn func(string)
	cn = func(prefix string) {
		if len(prefix) == 3 {
			ch <- prefix
		} else {
			for _, l := range alphabet {
				cn(prefix + string(l))
			}
			if len(prefix) == 0 {
				close(ch)
			}
		}
	}
	go cn("")
	return ch
}

// newGeneticCode creates a genetic code from the NCBI gc.prt fields;
// ncbieaa and sncbieaa are the 64-letter translation and start-codon
// strings in TCAG order.
func newGeneticCode(id int, name, shortName, ncbieaa, sncbieaa string) *GeneticCode {
	if len(ncbieaa) != 64 || len(sncbieaa) != 64 {
		panic(fmt.Sprintf("genetic code %d: wrong table length", id))
	}
	gc := &GeneticCode{
		ID:          id,
		Name:        name,
		ShortName:   shortName,
		Map:         make(map[string]byte, 64),
		CodonNum:    make(map[string]byte, 61),
		NumCodon:    make(map[byte]string, 61),
		SubfamilyOf: make(map[string]int, 61),
		startCodons: make(map[string]bool, 3),
		stopCodons:  make(map[string]bool, 3),
	}

	i := 0
	num := byte(0)
	for codon := range GetCodons() {
		aa := ncbieaa[i]
		gc.Map[codon] = aa
		if aa == '*' {
			gc.stopCodons[codon] = true
		} else {
			gc.CodonNum[codon] = num
			gc.NumCodon[num] = codon
			num++
		}
		if sncbieaa[i] == 'M' {
			gc.startCodons[codon] = true
		}
		i++
	}
	gc.NCodon = int(num)

	// Partition sense codons into subfamilies keyed by amino acid
	// and the first two nucleotides.
	bySubfam := make(map[string][]string)
	for n := byte(0); n < num; n++ {
		codon := gc.NumCodon[n]
		key := string(gc.Map[codon]) + codon[:2]
		bySubfam[key] = append(bySubfam[key], codon)
	}
	keys := make([]string, 0, len(bySubfam))
	for key := range bySubfam {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(a, b int) bool {
		ka, kb := keys[a], keys[b]
		if ka[0] != kb[0] {
			return ka[0] < kb[0]
		}
		return codonLess(ka[1:], kb[1:])
	})
	for si, key := range keys {
		codons := bySubfam[key]
		sort.Slice(codons, func(a, b int) bool {
			return codonLess(codons[a], codons[b])
		})
		gc.Subfamilies = append(gc.Subfamilies, Subfamily{
			AA:     key[0],
			Prefix: key[1:],
			Codons: codons,
		})
		for _, codon := range codons {
			gc.SubfamilyOf[codon] = si
		}
	}

	return gc
}

// codonLess compares nucleotide strings in TCAG order.
func codonLess(a, b string) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return rAlphabet[a[i]] < rAlphabet[b[i]]
		}
	}
	return len(a) < len(b)
}

// GetGeneticCode returns the genetic code for an NCBI id.
func GetGeneticCode(id int) (*GeneticCode, error) {
	gc, ok := GeneticCodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCode, id)
	}
	return gc, nil
}

// IsStopCodon tests if the codon is a stop codon.
func (gc *GeneticCode) IsStopCodon(codon string) bool {
	return gc.stopCodons[codon]
}

// IsStartCodon tests if the codon is a start codon.
func (gc *GeneticCode) IsStartCodon(codon string) bool {
	return gc.startCodons[codon]
}

// AA returns the amino acid for a codon ('*' for stop codons, 0 for
// an unknown codon).
func (gc *GeneticCode) AA(codon string) byte {
	return gc.Map[codon]
}

func (gc *GeneticCode) String() string {
	return fmt.Sprintf("<GeneticCode %d: %s>", gc.ID, gc.Name)
}
