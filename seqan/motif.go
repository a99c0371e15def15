package seqan

import "strings"

// Motif is a named nucleotide pattern
type Motif struct {
	Name    string `json:"name"`
	Pattern string `json:"pattern"`
}

var motifs = [...]Motif{
	{"TATA Box", "TATAAA"},
	{"Kozak Sequence", "GCCACC"},
	{"Splice Donor", "GT"},
	{"Splice Acceptor", "AG"},
}

// Motifs returns the motifs searched by FindMotifs
func Motifs() []Motif {
	m := make([]Motif, len(motifs))
	copy(m, motifs[:])
	return m
}

// MotifHits holds the 0-based start positions of a motif
type MotifHits struct {
	Motif
	Positions []int `json:"positions"`
}

// FindMotifs searches all motifs in seq. Every motif is in the
// result, in the order of Motifs(), even if it is not found.
func FindMotifs(seq string) []MotifHits {

	hits := make([]MotifHits, len(motifs))
	for i, m := range motifs {
		hits[i] = MotifHits{
			Motif:     m,
			Positions: FindAll(seq, m.Pattern),
		}
	}
	return hits
}

// FindAll returns the start position of every occurrence of pattern
// in seq, overlapping occurrences included: "GT" is found at 0 and 2
// in "GTGT".
func FindAll(seq, pattern string) []int {

	positions := []int{}
	if pattern == "" {
		return positions
	}

	// strings.Index only finds the leftmost match, so restart
	// the search one base after each match instead of after
	// the whole pattern
	offset := 0
	for {
		i := strings.Index(seq[offset:], pattern)
		if i == -1 {
			break
		}
		positions = append(positions, offset+i)
		offset += i + 1
	}
	return positions
}
