// Package amplicon classifies reference sequences by which PCR primers
// matched them and estimates the lengths of the amplicons the primer pair
// would produce.
package amplicon

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"sort"

	"github.com/walshaw/amplengths/internal/fuzznuc"
	"github.com/walshaw/amplengths/internal/universe"
)

// Category of a reference sequence by which primers hit it.
type Category int

// categories in report order
const (
	NoPrimer Category = iota
	ForwardOnly
	ReverseOnly
	Both
)

// Categories lists every category in report order.
var Categories = []Category{NoPrimer, ForwardOnly, ReverseOnly, Both}

// String returns the category name used in reports.
func (c Category) String() string {
	switch c {
	case ForwardOnly:
		return "ForwardOnly"
	case ReverseOnly:
		return "ReverseOnly"
	case Both:
		return "Both"
	default:
		return "NoPrimer"
	}
}

// MarshalJSON writes the category as its name.
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// ConsistencyError reports a sequence whose two reports disagree about
// its length.
type ConsistencyError struct {
	// ID of the sequence
	ID string

	// ForwardLength declared by the forward report
	ForwardLength int

	// ReverseLength declared by the reverse report
	ReverseLength int
}

// Error satisfies the error interface.
func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("sequence %s is %d bp in the forward report but %d bp in the reverse report",
		e.ID, e.ForwardLength, e.ReverseLength)
}

// Options control amplicon length inference for sequences only one primer hit.
type Options struct {
	// Assume5Truncated treats reverse-only sequences as amplicons whose
	// 5' end (and the forward primer site with it) was cut off
	Assume5Truncated bool

	// Assume3Truncated treats forward-only sequences as amplicons whose
	// 3' end (and the reverse primer site with it) was cut off
	Assume3Truncated bool
}

// Classification is the outcome for one reference sequence.
type Classification struct {
	// ID of the sequence
	ID string

	// Category by which primers hit the sequence
	Category Category

	// Length of the sequence declared by the reports, 0 when the ID
	// only came from the universe files
	Length int

	// Forward report hits, in report order
	Forward []fuzznuc.PrimerHit

	// Reverse report hits, in report order
	Reverse []fuzznuc.PrimerHit

	// AmpliconLength inferred for the sequence, 0 when none could be
	AmpliconLength int

	// Truncated is true when AmpliconLength assumes a truncated read
	Truncated bool
}

// Result is a full classification of every known sequence ID.
type Result struct {
	// ForwardFile is the forward report path
	ForwardFile string

	// ReverseFile is the reverse report path
	ReverseFile string

	// ByID holds each sequence's classification
	ByID map[string]*Classification

	// IDs in first-seen order: forward report, reverse report, universe
	IDs []string

	// HasUniverse is true when an ID universe was supplied, which is the
	// only way NoPrimer sequences become enumerable
	HasUniverse bool
}

// Count returns the number of sequences classified into c.
func (r *Result) Count(c Category) int {
	n := 0
	for _, cl := range r.ByID {
		if cl.Category == c {
			n++
		}
	}
	return n
}

// InCategory returns the IDs classified into c, sorted.
func (r *Result) InCategory(c Category) []string {
	var ids []string
	for _, cl := range r.ByID {
		if cl.Category == c {
			ids = append(ids, cl.ID)
		}
	}
	sort.Strings(ids)
	return ids
}

// Lengths returns every inferred amplicon length in ascending order,
// truncation-based estimates included.
func (r *Result) Lengths() []float64 {
	var ls []float64
	for _, cl := range r.ByID {
		if cl.AmpliconLength > 0 {
			ls = append(ls, float64(cl.AmpliconLength))
		}
	}
	sort.Float64s(ls)
	return ls
}

// Classifier pairs two parsed reports with an optional ID universe.
type Classifier struct {
	warn *log.Logger
}

// NewClassifier returns a Classifier that writes warnings to warn.
// A nil warn silences them.
func NewClassifier(warn *log.Logger) *Classifier {
	if warn == nil {
		warn = log.New(io.Discard, "", 0)
	}
	return &Classifier{warn: warn}
}

// Classify buckets every sequence in the two reports, and in the universe
// when one is given, by which primers hit it. The reports must agree on the
// length of every sequence they share.
func (c *Classifier) Classify(fwd, rev *fuzznuc.Report, u *universe.Universe, opts Options) (*Result, error) {
	if err := checkLengths(fwd, rev); err != nil {
		return nil, err
	}

	res := &Result{
		ForwardFile: fwd.File,
		ReverseFile: rev.File,
		ByID:        map[string]*Classification{},
	}
	add := func(id string) *Classification {
		if cl, ok := res.ByID[id]; ok {
			return cl
		}
		cl := &Classification{ID: id}
		res.ByID[id] = cl
		res.IDs = append(res.IDs, id)
		return cl
	}

	for _, id := range fwd.IDs {
		rec := fwd.Records[id]
		cl := add(id)
		cl.Length = rec.Length
		cl.Forward = rec.Hits
	}
	for _, id := range rev.IDs {
		rec := rev.Records[id]
		cl := add(id)
		cl.Length = rec.Length
		cl.Reverse = rec.Hits
	}

	if u != nil && u.Len() == 0 {
		c.warn.Printf("the universe files named no sequence IDs, skipping the cross-reference")
		u = nil
	}
	if u != nil {
		res.HasUniverse = true
		missing := 0
		for _, id := range res.IDs {
			if !u.Has(id) {
				missing++
			}
		}
		if missing > 0 {
			c.warn.Printf("%d report sequences are missing from the universe files", missing)
		}
		for _, id := range u.IDs {
			add(id)
		}
	}

	for _, id := range res.IDs {
		c.classify(res.ByID[id], opts)
	}
	return res, nil
}

// classify buckets one sequence and infers its amplicon length where the
// hits, or the truncation assumptions, allow one.
func (c *Classifier) classify(cl *Classification, opts Options) {
	switch {
	case len(cl.Forward) > 0 && len(cl.Reverse) > 0:
		cl.Category = Both
		f, r, ok := bestPair(cl.Forward, cl.Reverse)
		if !ok {
			c.warn.Printf("sequence %s: no reverse hit ends at or after a forward hit start, cannot infer an amplicon length", cl.ID)
			return
		}
		cl.AmpliconLength = r.End - f.Begin + 1
	case len(cl.Forward) > 0:
		cl.Category = ForwardOnly
		if opts.Assume3Truncated {
			f := bestForward(cl.Forward)
			cl.AmpliconLength = cl.Length - f.Begin + 1
			cl.Truncated = true
		}
	case len(cl.Reverse) > 0:
		cl.Category = ReverseOnly
		if opts.Assume5Truncated {
			r := bestReverse(cl.Reverse)
			cl.AmpliconLength = r.End
			cl.Truncated = true
		}
	default:
		cl.Category = NoPrimer
	}
}

// checkLengths confirms the two reports declare the same length for every
// sequence they share.
func checkLengths(fwd, rev *fuzznuc.Report) error {
	for _, id := range fwd.IDs {
		fr := fwd.Records[id]
		rr := rev.Records[id]
		if rr != nil && fr.Length != rr.Length {
			return &ConsistencyError{ID: id, ForwardLength: fr.Length, ReverseLength: rr.Length}
		}
	}
	return nil
}

// bestPair returns the orientable primer pair with the fewest total
// mismatches, breaking ties toward the leftmost forward hit and then the
// longest amplicon. A pair is orientable when the reverse hit ends at or
// after the forward hit start.
func bestPair(fwd, rev []fuzznuc.PrimerHit) (f, r fuzznuc.PrimerHit, ok bool) {
	for _, fh := range fwd {
		for _, rh := range rev {
			if rh.End < fh.Begin {
				continue
			}
			if !ok || betterPair(fh, rh, f, r) {
				f, r, ok = fh, rh, true
			}
		}
	}
	return f, r, ok
}

func betterPair(f, r, bestF, bestR fuzznuc.PrimerHit) bool {
	mm, best := f.MismatchCount()+r.MismatchCount(), bestF.MismatchCount()+bestR.MismatchCount()
	if mm != best {
		return mm < best
	}
	if f.Begin != bestF.Begin {
		return f.Begin < bestF.Begin
	}
	return r.End > bestR.End
}

// bestForward is the forward hit with the fewest mismatches, ties broken
// toward the 5' end.
func bestForward(hits []fuzznuc.PrimerHit) fuzznuc.PrimerHit {
	best := hits[0]
	for _, h := range hits[1:] {
		if h.MismatchCount() < best.MismatchCount() ||
			(h.MismatchCount() == best.MismatchCount() && h.Begin < best.Begin) {
			best = h
		}
	}
	return best
}

// bestReverse is the reverse hit with the fewest mismatches, ties broken
// toward the 3' end.
func bestReverse(hits []fuzznuc.PrimerHit) fuzznuc.PrimerHit {
	best := hits[0]
	for _, h := range hits[1:] {
		if h.MismatchCount() < best.MismatchCount() ||
			(h.MismatchCount() == best.MismatchCount() && h.End > best.End) {
			best = h
		}
	}
	return best
}
