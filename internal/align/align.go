// Package align locates primer sequences within a multiple sequence
// alignment and translates the placements between raw sequence positions
// and alignment columns.
package align

import (
	"fmt"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"go.uber.org/multierr"
)

// DefaultGapChars are the characters read as alignment gaps.
const DefaultGapChars = "-.~"

// Row is one aligned sequence.
type Row struct {
	// ID from the FASTA header
	ID string

	// Aligned row, uppercased, every gap normalized to '-'
	Aligned []byte

	// Raw sequence with the gaps removed
	Raw []byte

	// cols[i] is the 0-based alignment column of 0-based residue i
	cols []int
}

// Column returns the 1-based alignment column holding the 1-based raw
// sequence position pos.
func (r *Row) Column(pos int) int {
	return r.cols[pos-1] + 1
}

// Alignment is a set of equal-length aligned rows.
type Alignment struct {
	// Rows in file order
	Rows []*Row

	// Columns is the aligned length shared by every row
	Columns int
}

// Read loads a FASTA multiple sequence alignment. Characters in gapChars
// are read as gaps and normalized to '-', residues are uppercased, and
// rows of unequal aligned length are an error.
func Read(path, gapChars string) (aln *Alignment, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open alignment: %v", err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	if gapChars == "" {
		gapChars = DefaultGapChars
	}
	var gaps [256]bool
	for i := 0; i < len(gapChars); i++ {
		gaps[gapChars[i]] = true
	}

	aln = &Alignment{}
	template := linear.NewSeq("", nil, alphabet.DNA)
	scanner := seqio.NewScanner(fasta.NewReader(f, template))
	for scanner.Next() {
		s := scanner.Seq().(*linear.Seq)
		row := newRow(s, gaps)
		if len(aln.Rows) == 0 {
			aln.Columns = len(row.Aligned)
		} else if len(row.Aligned) != aln.Columns {
			return nil, fmt.Errorf("alignment rows differ in length: %s spans %d columns, %s spans %d",
				aln.Rows[0].ID, aln.Columns, row.ID, len(row.Aligned))
		}
		aln.Rows = append(aln.Rows, row)
	}
	if err := scanner.Error(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %v", path, err)
	}
	if len(aln.Rows) == 0 {
		return nil, fmt.Errorf("alignment %s has no sequences", path)
	}
	return aln, nil
}

// newRow normalizes one aligned sequence and builds its residue to column map.
func newRow(s *linear.Seq, gaps [256]bool) *Row {
	row := &Row{ID: s.Name(), Aligned: make([]byte, 0, len(s.Seq))}
	for i, l := range s.Seq {
		b := byte(l)
		if 'a' <= b && b <= 'z' {
			b -= 'a' - 'A'
		}
		if gaps[b] {
			row.Aligned = append(row.Aligned, '-')
			continue
		}
		row.Aligned = append(row.Aligned, b)
		row.Raw = append(row.Raw, b)
		row.cols = append(row.cols, i)
	}
	return row
}
