package align

import (
	"github.com/walshaw/amplengths/internal/primer"
)

// Hit is one primer placement within an alignment row, in both coordinate
// spaces.
type Hit struct {
	// SeqID of the alignment row
	SeqID string `json:"seqId"`

	// Primer name, "forward" or "reverse"
	Primer string `json:"primer"`

	// Strand the placement matched, "+" or "-"
	Strand string `json:"strand"`

	// Begin of the placement in the raw (degapped) sequence, 1-based inclusive
	Begin int `json:"begin"`

	// End of the placement in the raw sequence, 1-based inclusive
	End int `json:"end"`

	// ColumnBegin is the 1-based alignment column of Begin
	ColumnBegin int `json:"columnBegin"`

	// ColumnEnd is the 1-based alignment column of End
	ColumnEnd int `json:"columnEnd"`

	// Mismatches at this placement
	Mismatches int `json:"mismatches"`

	// Match is the raw subsequence under the placement
	Match string `json:"match"`
}

// Locate returns every placement of p in every row, searching the pattern
// itself on the plus strand and its reverse complement on the minus strand.
// Placements are allowed up to maxMM mismatching bases.
func (a *Alignment) Locate(p *primer.Primer, maxMM int) []Hit {
	rc := primer.RevComp(p.Seq)

	var hits []Hit
	for _, row := range a.Rows {
		for _, m := range primer.Find(row.Raw, p.Seq, maxMM) {
			hits = append(hits, row.hit(p.Name, "+", m, len(p.Seq)))
		}
		for _, m := range primer.Find(row.Raw, rc, maxMM) {
			hits = append(hits, row.hit(p.Name, "-", m, len(rc)))
		}
	}
	return hits
}

// hit translates a raw-sequence placement into alignment coordinates.
func (r *Row) hit(primerName, strand string, m primer.Match, n int) Hit {
	begin, end := m.Pos+1, m.Pos+n
	return Hit{
		SeqID:       r.ID,
		Primer:      primerName,
		Strand:      strand,
		Begin:       begin,
		End:         end,
		ColumnBegin: r.Column(begin),
		ColumnEnd:   r.Column(end),
		Mismatches:  m.Mismatches,
		Match:       string(r.Raw[m.Pos : m.Pos+n]),
	}
}

// ColumnSpan returns the alignment column range shared by all of hits.
// ok is false when hits is empty or the placements disagree, meaning the
// primer has no single location in the alignment.
func ColumnSpan(hits []Hit) (begin, end int, ok bool) {
	if len(hits) == 0 {
		return 0, 0, false
	}
	begin, end = hits[0].ColumnBegin, hits[0].ColumnEnd
	for _, h := range hits[1:] {
		if h.ColumnBegin != begin || h.ColumnEnd != end {
			return 0, 0, false
		}
	}
	return begin, end, true
}
