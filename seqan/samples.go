package seqan

// SampleSequence is a named DNA sequence that can be
// analyzed instead of a user provided one
type SampleSequence struct {
	Name        string
	Description string
	Sequence    string
}

var samples = [...]SampleSequence{
	{
		Name:        "Insulin Signal Peptide",
		Description: "Human insulin secretory signal - directs protein to secretory pathway",
		Sequence:    "ATGGCCCTGAAGATCGCACAATAG",
	},
	{
		Name:        "GFP Chromophore",
		Description: "Region coding for GFP fluorescent center",
		Sequence:    "TGTTATGGTGTTCAATGCTTTGCAAGATATCCAGACAAC",
	},
	{
		Name:        "Kozak Sequence",
		Description: "Strong Kozak consensus for translation initiation",
		Sequence:    "GCCACCATGGCCCAG",
	},
	{
		Name:        "BRCA1 Mutation Site",
		Description: "Common mutation region in breast cancer gene",
		Sequence:    "ATGCTGAGTTTGTGTGTGAACGGACACTG",
	},
}

// Samples returns the sample sequences
func Samples() []SampleSequence {
	s := make([]SampleSequence, len(samples))
	copy(s, samples[:])
	return s
}

// Sample returns the sample sequence called name
func Sample(name string) (SampleSequence, bool) {
	for _, s := range samples {
		if s.Name == name {
			return s, true
		}
	}
	return SampleSequence{}, false
}
