package seqan

// Request describes an analysis: the raw sequence and the
// view parameters
type Request struct {
	Sequence string       `json:"sequence"`
	Type     SequenceType `json:"type"`
	Frame    Frame        `json:"frame"`
	Notation Notation     `json:"notation"`
	// size of the sliding GC content window, DefaultWindow if 0
	Window int `json:"window"`
}

// Result holds everything computed from a Request
type Result struct {
	// normalized input sequence
	Sequence string       `json:"sequence"`
	Type     SequenceType `json:"type"`
	RNA      string       `json:"rna"`
	Frame    Frame        `json:"frame"`
	Notation Notation     `json:"notation"`

	Residues       []Residue        `json:"residues"`
	Composition    CompositionStats `json:"composition"`
	GCContent      []GCPoint        `json:"gcContent"`
	Hydrophobicity []HydroPoint     `json:"hydrophobicity"`
	Summary        ProfileSummary   `json:"summary"`
	Motifs         []MotifHits      `json:"motifs"`
}

// Analyze runs every analysis on the sequence of req.
//
// Raw sequence
//
//	-> Normalize -> ToRNA -> Segment -> TranslateAll -> Hydrophobicity
//	             -> Composition, SlidingGC, FindMotifs
func Analyze(req Request) *Result {

	if req.Type != RNA {
		req.Type = DNA
	}
	if req.Notation != One {
		req.Notation = Three
	}
	if req.Window == 0 {
		req.Window = DefaultWindow
	}

	seq := Normalize(req.Sequence)
	rna := ToRNA(seq, req.Type)
	residues := TranslateAll(Segment(rna, req.Frame))
	profile := Hydrophobicity(residues)

	log.Debugf("analyzed %d bases (%s, frame %d): %d codons", len(seq), req.Type, req.Frame, len(residues))

	return &Result{
		Sequence:       seq,
		Type:           req.Type,
		RNA:            rna,
		Frame:          req.Frame,
		Notation:       req.Notation,
		Residues:       residues,
		Composition:    Composition(seq, req.Type),
		GCContent:      SlidingGC(seq, req.Window),
		Hydrophobicity: profile,
		Summary:        Summarize(profile),
		Motifs:         FindMotifs(seq),
	}
}

// Protein returns the protein sequence of r in its notation
func (r *Result) Protein() string {
	return Protein(r.Residues, r.Notation)
}
