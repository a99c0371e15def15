package seqan_test

import (
	"math"
	"testing"

	"github.com/feliixx/goseqan/ncbicode"
	"github.com/feliixx/goseqan/seqan"
)

func TestHydrophobicityCompactsGaps(t *testing.T) {

	// Met STOP Ile ??? Val + incomplete codon
	residues := seqan.TranslateAll(seqan.Segment("AUGUAAAUUATTGUUGC", 0))
	points := seqan.Hydrophobicity(residues)

	expected := []seqan.HydroPoint{
		{Position: 1, Score: 1.9},
		{Position: 2, Score: 4.5},
		{Position: 3, Score: 4.2},
	}
	if len(points) != len(expected) {
		t.Fatalf("expected %v but got %v", expected, points)
	}
	for i := range expected {
		if expected[i] != points[i] {
			t.Errorf("expected %v but got %v", expected[i], points[i])
		}
	}
}

func TestHydrophobicityUnknownResidue(t *testing.T) {

	residues := []seqan.Residue{
		{AminoAcid: ncbicode.AminoAcid{Three: "Sec", One: 'U'}},
		{AminoAcid: ncbicode.AminoAcid{Three: "Leu", One: 'L'}},
	}
	points := seqan.Hydrophobicity(residues)

	if len(points) != 2 {
		t.Fatalf("expected 2 points but got %d", len(points))
	}
	if points[0].Score != 0 {
		t.Errorf("expected score 0 for an unknown residue but got %v", points[0].Score)
	}
	if points[1].Score != 3.8 || points[1].Position != 2 {
		t.Errorf("expected {2 3.8} but got %v", points[1])
	}
}

func TestKyteDoolittle(t *testing.T) {

	for _, one := range []byte("ACDEFGHIKLMNPQRSTVWY") {
		if _, ok := seqan.KyteDoolittle(one); !ok {
			t.Errorf("missing hydropathy index for %c", one)
		}
	}
	if _, ok := seqan.KyteDoolittle('*'); ok {
		t.Errorf("expected no hydropathy index for a stop")
	}
}

func TestSummarize(t *testing.T) {

	if got := seqan.Summarize(nil); got != (seqan.ProfileSummary{}) {
		t.Errorf("expected zero summary but got %v", got)
	}

	summary := seqan.Summarize([]seqan.HydroPoint{
		{Position: 1, Score: 1.9},
		{Position: 2, Score: -4.5},
		{Position: 3, Score: 4.2},
	})
	if summary.Min != -4.5 || summary.Max != 4.2 {
		t.Errorf("expected min -4.5 and max 4.2 but got %v", summary)
	}
	if want := (1.9 - 4.5 + 4.2) / 3; math.Abs(summary.GRAVY-want) > 1e-9 {
		t.Errorf("expected GRAVY %v but got %v", want, summary.GRAVY)
	}
}
