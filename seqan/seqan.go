// Package seqan analyzes a single nucleotide sequence: transcription,
// reading-frame-aware codon segmentation, translation, composition
// statistics, hydrophobicity profiling and regulatory motif search.
//
// All functions of the package are pure and safe for concurrent use.
package seqan

import (
	"github.com/op/go-logging"

	"github.com/feliixx/goseqan/ncbicode"
)

var log = logging.MustGetLogger("seqan")

// SequenceType is the kind of the input sequence
type SequenceType string

// Supported sequence types
const (
	DNA SequenceType = "dna"
	RNA SequenceType = "rna"
)

// Frame is the number of leading bases skipped before
// splitting a sequence into codons (0, 1 or 2)
type Frame int

// Notation selects how amino acids are rendered
type Notation string

// Supported notations
const (
	One   Notation = "one"
	Three Notation = "three"
)

// Symbol returns the rendering of aa in notation n. A stop is
// rendered as "STOP" in three-letter notation and as "*" in
// one-letter notation. The zero AminoAcid gives an empty string.
func (n Notation) Symbol(aa ncbicode.AminoAcid) string {
	if aa.IsZero() {
		return ""
	}
	if n == One {
		return string(aa.One)
	}
	return aa.Three
}

// DefaultWindow is the default size of the sliding GC content window
const DefaultWindow = 10

// Options struct to store command line args
type Options struct {
	Type     string `short:"t" long:"type" value-name:"<type>" description:"Type of the input sequence" choice:"dna" choice:"rna" default:"dna"`
	Frame    int    `short:"f" long:"frame" value-name:"<frame>" description:"Reading frame, ie number of leading bases to skip" choice:"0" choice:"1" choice:"2" default:"0"`
	Notation string `short:"n" long:"notation" value-name:"<notation>" description:"Amino acid notation: 'three' (Met, Leu, ...) or 'one' (M, L, ...)" choice:"one" choice:"three" default:"three"`
	Window   int    `short:"w" long:"window" value-name:"<n>" description:"Size of the sliding GC content window" default:"10"`
	Strict   bool   `long:"strict" description:"Reject the sequence if it contains a char outside of the alphabet of its type instead of silently dropping it"`
	Trim     bool   `short:"T" long:"trim" description:"Removes all 'X' and '*' characters from the right end of the protein sequence"`
}

// Request builds the analysis request of sequence with the
// parameters from o
func (o Options) Request(sequence string) Request {
	return Request{
		Sequence: sequence,
		Type:     SequenceType(o.Type),
		Frame:    Frame(o.Frame),
		Notation: Notation(o.Notation),
		Window:   o.Window,
	}
}
