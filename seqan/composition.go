package seqan

import (
	"math"

	"github.com/feliixx/goseqan/ncbicode"
)

// CompositionStats holds whole-sequence statistics
type CompositionStats struct {
	// number of bases of the input sequence, before transcription
	Length int `json:"length"`
	// percentage of G and C, rounded to one decimal
	GCContent float64 `json:"gcContent"`
	// number of complete frame 0 codons per amino acid, stop
	// codons are counted under "STOP"
	CodonUsage map[string]int `json:"codonUsage"`
}

// Composition computes the statistics of seq, a sequence of type t
func Composition(seq string, t SequenceType) CompositionStats {

	rna := ToRNA(seq, t)

	stats := CompositionStats{
		Length:     len(seq),
		GCContent:  math.Round(gcPercent(rna)*10) / 10,
		CodonUsage: map[string]int{},
	}

	for _, c := range Segment(rna, 0) {

		if !c.Complete() {
			continue
		}
		aa, ok := ncbicode.Lookup(c.Bases)
		if !ok {
			continue
		}
		stats.CodonUsage[aa.Three]++
	}
	return stats
}

// GCPoint is the GC content of the window starting at Position
// (1-based)
type GCPoint struct {
	Position  int     `json:"position"`
	GCContent float64 `json:"gcContent"`
}

// SlidingGC returns the GC content of every window of size
// window in seq. The result is empty if seq is shorter than
// the window.
func SlidingGC(seq string, window int) []GCPoint {

	if window <= 0 || len(seq) < window {
		return []GCPoint{}
	}

	points := make([]GCPoint, 0, len(seq)-window+1)
	gc := gcCount(seq[:window])

	for i := 0; ; i++ {

		points = append(points, GCPoint{
			Position:  i + 1,
			GCContent: float64(gc) * 100 / float64(window),
		})
		if i+window == len(seq) {
			break
		}
		// slide the window by one base
		if isGC(seq[i]) {
			gc--
		}
		if isGC(seq[i+window]) {
			gc++
		}
	}
	return points
}

func gcPercent(seq string) float64 {
	if len(seq) == 0 {
		return 0
	}
	return float64(gcCount(seq)) * 100 / float64(len(seq))
}

func gcCount(seq string) int {
	n := 0
	for i := 0; i < len(seq); i++ {
		if isGC(seq[i]) {
			n++
		}
	}
	return n
}

func isGC(n byte) bool {
	return n == 'G' || n == 'C'
}
