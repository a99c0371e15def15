package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/feliixx/goseqan/seqan"
)

// jsonReport is the analysis printed with --json
type jsonReport struct {
	*seqan.Result
	Protein string `json:"protein"`
}

func writeJSON(out io.Writer, result *seqan.Result) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonReport{
		Result:  result,
		Protein: result.Protein(),
	})
}

func writeSamples(out io.Writer, samples []seqan.SampleSequence) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, s := range samples {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Name, s.Sequence, s.Description)
	}
	return tw.Flush()
}

func writeReport(out io.Writer, r *seqan.Result) error {

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "Sequence (%s, %d bases):\t%s\n", strings.ToUpper(string(r.Type)), r.Composition.Length, r.Sequence)
	if r.Type == seqan.DNA {
		fmt.Fprintf(tw, "RNA:\t%s\n", r.RNA)
	}
	fmt.Fprintf(tw, "Reading frame:\t%d (+%d)\n", r.Frame+1, r.Frame)
	fmt.Fprintf(tw, "Protein:\t%s\n", r.Protein())
	fmt.Fprintf(tw, "GC content:\t%.1f%%\n", r.Composition.GCContent)
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "Codons:")
	for _, res := range r.Residues {
		aa := r.Notation.Symbol(res.AminoAcid)
		if aa == "" {
			aa = "-"
		}
		fmt.Fprintf(tw, "  %d\t%s\t%s\n", res.Codon.Index+1, res.Codon.Bases, aa)
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "Codon usage:")
	aas := make([]string, 0, len(r.Composition.CodonUsage))
	for aa := range r.Composition.CodonUsage {
		aas = append(aas, aa)
	}
	sort.Strings(aas)
	for _, aa := range aas {
		fmt.Fprintf(tw, "  %s\t%d\n", aa, r.Composition.CodonUsage[aa])
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "Hydrophobicity:")
	if len(r.Hydrophobicity) == 0 {
		fmt.Fprintln(tw, "  No valid amino acid sequence available for hydrophobicity analysis")
	} else {
		fmt.Fprintf(tw, "  GRAVY\t%.2f\n", r.Summary.GRAVY)
		fmt.Fprintf(tw, "  min\t%.2f\n", r.Summary.Min)
		fmt.Fprintf(tw, "  max\t%.2f\n", r.Summary.Max)
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "Sequence motifs:")
	for _, m := range r.Motifs {
		if len(m.Positions) == 0 {
			fmt.Fprintf(tw, "  %s:\tNot found\n", m.Name)
			continue
		}
		positions := make([]string, len(m.Positions))
		for i, p := range m.Positions {
			positions[i] = strconv.Itoa(p)
		}
		fmt.Fprintf(tw, "  %s:\tFound at positions: %s\n", m.Name, strings.Join(positions, ", "))
	}

	return tw.Flush()
}
