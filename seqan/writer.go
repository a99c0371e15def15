package seqan

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

const (
	// max line size for sequence
	maxLineSize = 60

	stop = '*'
)

type writer struct {
	buf            *bytes.Buffer
	currentLineLen int
	// if in trim mode, nb of bytes to trim (nb of successive 'X', '*' and '\n'
	// from right end of the sequence)
	toTrim int
}

// WriteProtein writes the one-letter protein sequence of residues in
// fasta format. The sequence id gets the 1-based frame as suffix:
//
//	>sequenceID_<frame> comment
//
// Residues with no amino acid are written 'X'. If trim is true, all
// 'X' and '*' are removed from the right end of the sequence.
func WriteProtein(out io.Writer, header string, frame Frame, residues []Residue, trim bool) error {

	w := &writer{
		buf: bytes.NewBuffer(make([]byte, 0, len(residues)+len(residues)/maxLineSize+len(header)+8)),
	}

	w.writeID(header, frame)
	w.newLine()
	w.toTrim = 0
	w.currentLineLen = 0

	for _, r := range residues {
		if r.AminoAcid.IsZero() {
			w.writeAA(unknownOne)
		} else {
			w.writeAA(r.AminoAcid.One)
		}
	}

	if trim && w.toTrim > 0 {
		w.trim()
	}
	if w.currentLineLen != 0 {
		w.newLine()
	}

	_, err := out.Write(w.buf.Bytes())
	if err != nil {
		return fmt.Errorf("fail to write protein sequence: %w", err)
	}
	return nil
}

func (w *writer) writeID(header string, frame Frame) {

	id, comment := header, ""
	for i := 0; i < len(header); i++ {
		if header[i] == ' ' {
			id, comment = header[:i], header[i:]
			break
		}
	}
	w.buf.WriteByte('>')
	w.buf.WriteString(id)
	w.buf.WriteByte('_')
	w.buf.WriteString(strconv.Itoa(int(frame) + 1))
	w.buf.WriteString(comment)
}

func (w *writer) writeAA(aaCode byte) {

	if w.currentLineLen == maxLineSize {
		w.newLine()
	}
	w.buf.WriteByte(aaCode)
	w.currentLineLen++

	if aaCode == stop || aaCode == unknownOne {
		w.toTrim++
	} else {
		w.toTrim = 0
	}
}

func (w *writer) newLine() {
	w.buf.WriteByte('\n')
	w.currentLineLen = 0
	w.toTrim++
}

// remove the last toTrim bytes of the buffer
// as they are 'X', '*' or '\n'
func (w *writer) trim() {
	w.buf.Truncate(w.buf.Len() - w.toTrim)
	// the trimmed bytes may span several lines, recompute
	// the length of the last one
	b := w.buf.Bytes()
	w.currentLineLen = len(b) - (bytes.LastIndexByte(b, '\n') + 1)
}
