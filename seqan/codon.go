package seqan

import (
	"strings"

	"github.com/feliixx/goseqan/ncbicode"
)

// Transcribe converts a DNA sequence to RNA, base by base:
//
//	A -> U
//	T -> A
//	G -> C
//	C -> G
//
// any other char is left as is
func Transcribe(dna string) string {

	rna := make([]byte, len(dna))
	for i := 0; i < len(dna); i++ {

		switch n := dna[i]; n {
		case 'A':
			rna[i] = 'U'
		case 'T':
			rna[i] = 'A'
		case 'G':
			rna[i] = 'C'
		case 'C':
			rna[i] = 'G'
		default:
			rna[i] = n
		}
	}
	return string(rna)
}

// ToRNA returns the RNA version of seq: seq itself if it
// is already an RNA sequence, its transcription otherwise
func ToRNA(seq string, t SequenceType) string {
	if t == RNA {
		return seq
	}
	return Transcribe(seq)
}

// Codon is a chunk of at most 3 bases of a sequence
type Codon struct {
	Bases string `json:"bases"`
	// offset of the first base in the segmented sequence
	Start int `json:"start"`
	// position of the codon in the segmentation, starting at 0
	Index int `json:"index"`
}

// Complete returns false for the trailing 1 or 2 bases codon of a
// sequence whose length is not a multiple of 3
func (c Codon) Complete() bool {
	return len(c.Bases) == 3
}

// Segment splits seq in consecutive codons, after skipping the first
// frame bases. The last codon may be only 1 or 2 bases long.
//
// Concatenating the bases of all codons gives back seq[frame:]
func Segment(seq string, frame Frame) []Codon {

	start := int(frame)
	if start < 0 {
		start = 0
	}
	if start >= len(seq) {
		return []Codon{}
	}

	codons := make([]Codon, 0, (len(seq)-start+2)/3)
	for pos := start; pos < len(seq); pos += 3 {

		end := pos + 3
		if end > len(seq) {
			end = len(seq)
		}
		codons = append(codons, Codon{
			Bases: seq[pos:end],
			Start: pos,
			Index: len(codons),
		})
	}
	return codons
}

// Residue is a codon and its translation. AminoAcid is the zero value
// when the codon is incomplete or not in the codon table.
type Residue struct {
	Codon     Codon              `json:"codon"`
	AminoAcid ncbicode.AminoAcid `json:"aminoAcid"`
}

// Translate returns the amino acid coded by c in notation n.
// ok is false if c is incomplete or is not a valid RNA codon.
func Translate(c Codon, n Notation) (aa string, ok bool) {

	if !c.Complete() {
		return "", false
	}
	code, ok := ncbicode.Lookup(c.Bases)
	if !ok {
		return "", false
	}
	return n.Symbol(code), true
}

// TranslateAll translates every codon. Codons that can't be translated
// give a Residue with no amino acid, they don't stop the translation.
func TranslateAll(codons []Codon) []Residue {

	residues := make([]Residue, len(codons))
	for i, c := range codons {

		residues[i].Codon = c
		if !c.Complete() {
			continue
		}
		aa, ok := ncbicode.Lookup(c.Bases)
		if !ok {
			log.Debugf("unknown codon %s at position %d", c.Bases, c.Start)
			continue
		}
		residues[i].AminoAcid = aa
	}
	return residues
}

const (
	unknownOne   = 'X'
	unknownThree = "Xaa"
)

// Protein returns the protein sequence of residues in notation n.
// Residues with no amino acid are written 'X' (or 'Xaa'), three-letter
// codes are separated by '-'
func Protein(residues []Residue, n Notation) string {

	var b strings.Builder
	for i, r := range residues {

		if n == One {
			if r.AminoAcid.IsZero() {
				b.WriteByte(unknownOne)
			} else {
				b.WriteByte(r.AminoAcid.One)
			}
			continue
		}

		if i > 0 {
			b.WriteByte('-')
		}
		if r.AminoAcid.IsZero() {
			b.WriteString(unknownThree)
		} else {
			b.WriteString(r.AminoAcid.Three)
		}
	}
	return b.String()
}
