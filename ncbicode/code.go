// Package ncbicode stores codon <-> AA
// translation for the standard genetic code.
//
// Codons are written with the RNA alphabet (A, C, G, U).
//
// Relevant documentation:
//
//	https://www.ncbi.nlm.nih.gov/Taxonomy/Utils/wprintgc.cgi?chapter=tgencodes#SG1
package ncbicode

import (
	"encoding/json"
	"fmt"
)

const (
	// StopThree is the three-letter rendering of a stop codon
	StopThree = "STOP"
	// StopOne is the one-letter rendering of a stop codon
	StopOne = '*'
)

// AminoAcid is the translation of a codon: either an amino acid or
// the stop marker. The zero value means "no translation".
type AminoAcid struct {
	Three string
	One   byte
}

// IsStop returns true if aa is the stop marker
func (aa AminoAcid) IsStop() bool {
	return aa.One == StopOne
}

// IsZero returns true if aa holds no translation
func (aa AminoAcid) IsZero() bool {
	return aa.One == 0
}

type aminoAcidJSON struct {
	Three string `json:"three"`
	One   string `json:"one"`
}

// MarshalJSON writes aa as {"three": "Met", "one": "M"}, or
// null for the zero value
func (aa AminoAcid) MarshalJSON() ([]byte, error) {
	if aa.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(aminoAcidJSON{Three: aa.Three, One: string(aa.One)})
}

// UnmarshalJSON implements json.Unmarshaler
func (aa *AminoAcid) UnmarshalJSON(b []byte) error {

	if string(b) == "null" {
		*aa = AminoAcid{}
		return nil
	}

	var v aminoAcidJSON
	err := json.Unmarshal(b, &v)
	if err != nil {
		return err
	}
	if len(v.One) != 1 {
		return fmt.Errorf("invalid one-letter amino acid code: %q", v.One)
	}
	*aa = AminoAcid{Three: v.Three, One: v.One[0]}
	return nil
}

var (
	stop = AminoAcid{StopThree, StopOne}

	phe = AminoAcid{"Phe", 'F'}
	leu = AminoAcid{"Leu", 'L'}
	ser = AminoAcid{"Ser", 'S'}
	tyr = AminoAcid{"Tyr", 'Y'}
	cys = AminoAcid{"Cys", 'C'}
	trp = AminoAcid{"Trp", 'W'}
	pro = AminoAcid{"Pro", 'P'}
	his = AminoAcid{"His", 'H'}
	gln = AminoAcid{"Gln", 'Q'}
	arg = AminoAcid{"Arg", 'R'}
	ile = AminoAcid{"Ile", 'I'}
	met = AminoAcid{"Met", 'M'}
	thr = AminoAcid{"Thr", 'T'}
	asn = AminoAcid{"Asn", 'N'}
	lys = AminoAcid{"Lys", 'K'}
	val = AminoAcid{"Val", 'V'}
	ala = AminoAcid{"Ala", 'A'}
	asp = AminoAcid{"Asp", 'D'}
	glu = AminoAcid{"Glu", 'E'}
	gly = AminoAcid{"Gly", 'G'}

	// never modified after init
	standard = map[string]AminoAcid{
		"UUU": phe, "UUC": phe, "UUA": leu, "UUG": leu,
		"UCU": ser, "UCC": ser, "UCA": ser, "UCG": ser,
		"UAU": tyr, "UAC": tyr, "UAA": stop, "UAG": stop,
		"UGU": cys, "UGC": cys, "UGA": stop, "UGG": trp,
		"CUU": leu, "CUC": leu, "CUA": leu, "CUG": leu,
		"CCU": pro, "CCC": pro, "CCA": pro, "CCG": pro,
		"CAU": his, "CAC": his, "CAA": gln, "CAG": gln,
		"CGU": arg, "CGC": arg, "CGA": arg, "CGG": arg,
		"AUU": ile, "AUC": ile, "AUA": ile, "AUG": met,
		"ACU": thr, "ACC": thr, "ACA": thr, "ACG": thr,
		"AAU": asn, "AAC": asn, "AAA": lys, "AAG": lys,
		"AGU": ser, "AGC": ser, "AGA": arg, "AGG": arg,
		"GUU": val, "GUC": val, "GUA": val, "GUG": val,
		"GCU": ala, "GCC": ala, "GCA": ala, "GCG": ala,
		"GAU": asp, "GAC": asp, "GAA": glu, "GAG": glu,
		"GGU": gly, "GGC": gly, "GGA": gly, "GGG": gly,
	}

	// three-letter -> one-letter code. Kept apart from the codon
	// table so that residue scoring does not depend on it.
	oneLetter = map[string]byte{
		"Ala": 'A', "Arg": 'R', "Asn": 'N', "Asp": 'D', "Cys": 'C',
		"Glu": 'E', "Gln": 'Q', "Gly": 'G', "His": 'H', "Ile": 'I',
		"Leu": 'L', "Lys": 'K', "Met": 'M', "Phe": 'F', "Pro": 'P',
		"Ser": 'S', "Thr": 'T', "Trp": 'W', "Tyr": 'Y', "Val": 'V',
	}
)

// Lookup returns the translation of an RNA codon. ok is false
// if codon is not a complete codon of the standard table.
func Lookup(codon string) (aa AminoAcid, ok bool) {
	aa, ok = standard[codon]
	return aa, ok
}

// Size returns the number of codons in the table
func Size() int {
	return len(standard)
}

// Codons calls fn for each codon of the table, in no particular order
func Codons(fn func(codon string, aa AminoAcid)) {
	for codon, aa := range standard {
		fn(codon, aa)
	}
}

// OneLetter converts a three-letter amino acid code like "Met" to
// its one-letter code. ok is false for unknown codes and for "STOP".
func OneLetter(three string) (one byte, ok bool) {
	one, ok = oneLetter[three]
	return one, ok
}
