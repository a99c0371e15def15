package seqan

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/feliixx/goseqan/ncbicode"
)

// Kyte J, Doolittle RF. A simple method for displaying the
// hydropathic character of a protein. J Mol Biol. 1982
var kyteDoolittle = map[byte]float64{
	'I': 4.5, 'V': 4.2, 'L': 3.8, 'F': 2.8, 'C': 2.5, 'M': 1.9, 'A': 1.8,
	'G': -0.4, 'T': -0.7, 'S': -0.8, 'W': -0.9, 'Y': -1.3, 'P': -1.6,
	'H': -3.2, 'E': -3.5, 'Q': -3.5, 'D': -3.5, 'N': -3.5, 'K': -3.9, 'R': -4.5,
}

// KyteDoolittle returns the hydropathy index of an amino acid
// given its one-letter code
func KyteDoolittle(one byte) (index float64, ok bool) {
	index, ok = kyteDoolittle[one]
	return index, ok
}

// HydroPoint is the hydrophobicity of the residue at Position
type HydroPoint struct {
	Position int     `json:"position"`
	Score    float64 `json:"hydrophobicity"`
}

// Hydrophobicity returns the hydrophobicity profile of residues.
//
// Stops and residues with no amino acid are skipped. Positions start
// at 1 and count only the scored residues, so there is no hole in
// the numbering.
func Hydrophobicity(residues []Residue) []HydroPoint {

	points := make([]HydroPoint, 0, len(residues))
	for _, r := range residues {

		aa := r.AminoAcid
		if aa.IsZero() || aa.IsStop() {
			continue
		}

		one, ok := ncbicode.OneLetter(aa.Three)
		if !ok {
			one = aa.One
		}
		score, ok := kyteDoolittle[one]
		if !ok {
			log.Debugf("no hydropathy index for residue %s (%c), using 0", aa.Three, one)
		}

		points = append(points, HydroPoint{
			Position: len(points) + 1,
			Score:    score,
		})
	}
	return points
}

// ProfileSummary summarizes a hydrophobicity profile
type ProfileSummary struct {
	// grand average of hydropathy
	GRAVY float64 `json:"gravy"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// Summarize returns the summary of points, or the zero
// summary if points is empty
func Summarize(points []HydroPoint) ProfileSummary {

	if len(points) == 0 {
		return ProfileSummary{}
	}

	scores := make([]float64, len(points))
	for i, p := range points {
		scores[i] = p.Score
	}
	return ProfileSummary{
		GRAVY: stat.Mean(scores, nil),
		Min:   floats.Min(scores),
		Max:   floats.Max(scores),
	}
}
