package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/op/go-logging"
)

func init() {
	logging.SetLevel(logging.ERROR, toolName)
	logging.SetLevel(logging.ERROR, "seqan")
	logging.SetLevel(logging.ERROR, "cache")
}

func parseOptions(t *testing.T, args string) GlobalOptions {
	t.Helper()

	var options GlobalOptions
	_, err := flags.ParseArgs(&options, strings.Fields(args))
	if err != nil {
		t.Fatal(err)
	}
	return options
}

func TestRunReport(t *testing.T) {

	options := parseOptions(t, "")
	options.Sample = "Kozak Sequence"

	var out bytes.Buffer
	if err := run(options, &out); err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"GCCACCATGGCCCAG",
		"CGGUGGUACCGGGUC",
		"Arg-Trp-Tyr-Arg-Val",
		"73.3%",
		"Kozak Sequence:",
		"Found at positions: 0",
		"TATA Box:",
		"Not found",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("expected report to contain %q\n%s", want, out.String())
		}
	}
}

func TestRunJSON(t *testing.T) {

	options := parseOptions(t, "--sequence AUGGCCUAAGG --type rna --notation one --json")

	var out bytes.Buffer
	if err := run(options, &out); err != nil {
		t.Fatal(err)
	}

	var report struct {
		Protein     string `json:"protein"`
		Composition struct {
			GCContent float64 `json:"gcContent"`
		} `json:"composition"`
		Motifs []struct {
			Name      string `json:"name"`
			Positions []int  `json:"positions"`
		} `json:"motifs"`
	}
	if err := json.Unmarshal(out.Bytes(), &report); err != nil {
		t.Fatal(err)
	}

	if want, got := "MA*X", report.Protein; want != got {
		t.Errorf("expected protein %s but got %s", want, got)
	}
	if want, got := 54.5, report.Composition.GCContent; want != got {
		t.Errorf("expected GC content %v but got %v", want, got)
	}
	if len(report.Motifs) != 4 {
		t.Errorf("expected 4 motifs but got %d", len(report.Motifs))
	}
}

func TestRunFastaWithOutputs(t *testing.T) {

	dir := t.TempDir()
	fasta := filepath.Join(dir, "in.fna")
	err := os.WriteFile(fasta, []byte(">insulin signal peptide\nATGGCCCTGAAGATCGCACAATAG\n"), 0644)
	if err != nil {
		t.Fatal(err)
	}

	outseq := filepath.Join(dir, "out.faa")
	plots := filepath.Join(dir, "plots")
	options := parseOptions(t, "-i "+fasta+" -o "+outseq+" --plot-dir "+plots+" --plot-format svg --cache "+filepath.Join(dir, "cache.db"))

	var out bytes.Buffer
	if err := run(options, &out); err != nil {
		t.Fatal(err)
	}

	prot, err := os.ReadFile(outseq)
	if err != nil {
		t.Fatal(err)
	}
	if want, got := ">insulin_1 signal peptide\nYRDF*RVI\n", string(prot); want != got {
		t.Errorf("expected %q but got %q", want, got)
	}

	for _, name := range []string{"gc_content.svg", "hydrophobicity.svg"} {
		if _, err := os.Stat(filepath.Join(plots, name)); err != nil {
			t.Errorf("expected plot %s: %v", name, err)
		}
	}

	// second run is served by the cache
	var again bytes.Buffer
	if err := run(options, &again); err != nil {
		t.Fatal(err)
	}
	if out.String() != again.String() {
		t.Errorf("expected the same report\n%s\nbut got\n%s", out.String(), again.String())
	}
}

func TestRunErrors(t *testing.T) {

	tests := []struct {
		name string
		args string
	}{
		{"no input", ""},
		{"two inputs", "-s ATG -i file.fna"},
		{"unknown sample", "--sample unknown"},
		{"strict", "-s ATGX --strict"},
		{"missing file", "-i does_not_exist.fna"},
	}

	for _, tt := range tests {
		test := tt
		t.Run(test.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := run(parseOptions(t, test.args), &out); err == nil {
				t.Errorf("expected an error")
			}
		})
	}
}

func TestListSamples(t *testing.T) {

	var out bytes.Buffer
	if err := run(parseOptions(t, "--list-samples"), &out); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(out.String(), "\n"); n != 4 {
		t.Errorf("expected 4 samples but got %d lines", n)
	}
}
