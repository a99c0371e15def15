package seqan

import (
	"errors"
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// Record is a sequence read from a fasta file
type Record struct {
	ID          string
	Description string
	Sequence    string
}

// ReadFasta reads the first record of a fasta file. Following
// records are ignored.
//
// fasta format is:
//
//	>sequenceID some comments on sequence
//	ACAGGCAGAGACACGACAGACGACGACACAGGAGCAGACAGCAGCAGACGACCACATATT
//	TTTGCGGTCACATGACGACTTCGGCAGCGA
//
// see https://blast.ncbi.nlm.nih.gov/Blast.cgi?CMD=Web&PAGE_TYPE=BlastDocs&DOC_TYPE=BlastHelp
// section 1 for details
func ReadFasta(in io.Reader, t SequenceType) (Record, error) {

	var alpha alphabet.Alphabet = alphabet.DNA
	if t == RNA {
		alpha = alphabet.RNA
	}

	r := fasta.NewReader(in, linear.NewSeq("", nil, alpha))
	s, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Record{}, errors.New("no sequence found in fasta input")
		}
		return Record{}, fmt.Errorf("fail to read fasta input: %w", err)
	}

	ls, ok := s.(*linear.Seq)
	if !ok {
		return Record{}, fmt.Errorf("unexpected sequence type %T", s)
	}

	b := make([]byte, len(ls.Seq))
	for i, l := range ls.Seq {
		b[i] = byte(l)
	}

	return Record{
		ID:          ls.Name(),
		Description: ls.Description(),
		Sequence:    string(b),
	}, nil
}
