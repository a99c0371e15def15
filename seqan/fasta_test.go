package seqan_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/feliixx/goseqan/seqan"
)

func TestReadFastaFirstRecord(t *testing.T) {

	input := `>insulin human insulin signal peptide
ATGGCCCTGAAG
ATCGCACAATAG
>kozak
GCCACCATGGCCCAG
`
	record, err := seqan.ReadFasta(strings.NewReader(input), seqan.DNA)
	if err != nil {
		t.Fatal(err)
	}

	if want, got := "insulin", record.ID; want != got {
		t.Errorf("expected id %s but got %s", want, got)
	}
	if want, got := "human insulin signal peptide", record.Description; want != got {
		t.Errorf("expected description %s but got %s", want, got)
	}
	if want, got := "ATGGCCCTGAAGATCGCACAATAG", record.Sequence; want != got {
		t.Errorf("expected sequence %s but got %s", want, got)
	}
}

func TestReadFastaEmpty(t *testing.T) {

	_, err := seqan.ReadFasta(strings.NewReader(""), seqan.RNA)
	if err == nil {
		t.Errorf("expected an error for an empty input")
	}
}

func TestWriteProtein(t *testing.T) {

	tests := []struct {
		name     string
		seq      string
		header   string
		frame    seqan.Frame
		trim     bool
		expected string
	}{
		{
			name:     "with comment",
			seq:      "AUGGCCUAAGG",
			header:   "seq1 some comment",
			expected: ">seq1_1 some comment\nMA*X\n",
		},
		{
			name:     "trim",
			seq:      "AUGGCCUAAGG",
			header:   "seq1",
			trim:     true,
			expected: ">seq1_1\nMA\n",
		},
		{
			name:     "frame 3",
			seq:      "GGAUGUAA",
			header:   "seq2",
			frame:    2,
			expected: ">seq2_3\nM*\n",
		},
		{
			name:     "only stops trimmed",
			seq:      "UAAUGA",
			header:   "seq3",
			trim:     true,
			expected: ">seq3_1\n",
		},
		{
			name:     "line wrap",
			seq:      strings.Repeat("GCC", 61),
			header:   "ala",
			expected: ">ala_1\n" + strings.Repeat("A", 60) + "\nA\n",
		},
		{
			name:     "trim across lines",
			seq:      strings.Repeat("GCC", 60) + "UAAUAA",
			header:   "ala",
			trim:     true,
			expected: ">ala_1\n" + strings.Repeat("A", 60) + "\n",
		},
	}

	var buf bytes.Buffer
	for _, tt := range tests {

		test := tt
		t.Run(test.name, func(t *testing.T) {

			buf.Reset()
			residues := seqan.TranslateAll(seqan.Segment(test.seq, test.frame))
			err := seqan.WriteProtein(&buf, test.header, test.frame, residues, test.trim)
			if err != nil {
				t.Fatal(err)
			}
			if want, got := test.expected, buf.String(); want != got {
				t.Errorf("expected %q\nbut got\n%q\n", want, got)
			}
		})
	}
}
