// Package fuzznuc parses EMBOSS fuzznuc report files into primer hits
// keyed by reference sequence ID.
package fuzznuc

// MismatchNA marks a hit whose Mismatch column held the "." placeholder
// instead of a count.
const MismatchNA = -1

// PrimerHit is one match of a primer pattern within one reference sequence.
type PrimerHit struct {
	// Begin of the match, 1-based inclusive, in the original sequence
	Begin int

	// End of the match, 1-based inclusive
	End int

	// Strand the pattern matched on: '+' or '-'
	Strand byte

	// Pattern is the pattern-name token from the report row
	Pattern string

	// Mismatches in the match, or MismatchNA when the report showed "."
	Mismatches int

	// Match is the literal matched subsequence
	Match string
}

// MismatchCount returns the number of mismatches, treating the "."
// placeholder as zero.
func (h PrimerHit) MismatchCount() int {
	if h.Mismatches == MismatchNA {
		return 0
	}
	return h.Mismatches
}

// Span returns the length of the matched region.
func (h PrimerHit) Span() int {
	return h.End - h.Begin + 1
}

// Record is one reference sequence from a report and every hit found on it.
// Hits are kept in report order, which is not necessarily position order.
type Record struct {
	// ID of the sequence, unique within one report
	ID string

	// Length declared by the "to:" field of the Sequence header
	Length int

	// From declared by the "from:" field; expected to be 1
	From int

	// HitCount declared by the report. Advisory: it is checked against the
	// parsed rows and mismatches are warned about, never fatal, because
	// fuzznuc's report options can cap the rows it emits.
	HitCount int

	// Complement is true when the report declared "Complement: Yes"
	Complement bool

	// Hits on this sequence, in report order
	Hits []PrimerHit
}

// Report is the parsed content of one fuzznuc report file.
type Report struct {
	// File the report was read from, used in errors and output
	File string

	// Records by sequence ID
	Records map[string]*Record

	// IDs in the order their Sequence headers appeared
	IDs []string
}

// Record returns the record for id, or nil.
func (r *Report) Record(id string) *Record {
	return r.Records[id]
}

// Len returns the number of sequence records in the report.
func (r *Report) Len() int {
	return len(r.IDs)
}
