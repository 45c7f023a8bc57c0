package amplicon

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/walshaw/amplengths/internal/fuzznuc"
)

// Output is the structured mirror of the text report.
type Output struct {
	// Time the classification ran, ex: "2020/03/03 14:42:17"
	Time string `json:"time"`

	// Forward report path
	Forward string `json:"forward"`

	// Reverse report path
	Reverse string `json:"reverse"`

	// Counts of sequences per category
	Counts map[string]int `json:"counts"`

	// Sequences in first-seen order
	Sequences []SeqOutput `json:"sequences"`
}

// SeqOutput is one sequence's classification.
type SeqOutput struct {
	// ID of the sequence
	ID string `json:"id"`

	// Category the sequence classified into
	Category Category `json:"category"`

	// Length declared by the reports, absent for universe-only IDs
	Length int `json:"length,omitempty"`

	// AmpliconLength inferred for the sequence, absent when none could be
	AmpliconLength int `json:"ampliconLength,omitempty"`

	// Truncated is true when AmpliconLength assumes a truncated read
	Truncated bool `json:"truncated,omitempty"`

	// Forward report hits
	Forward []HitOutput `json:"forward,omitempty"`

	// Reverse report hits
	Reverse []HitOutput `json:"reverse,omitempty"`
}

// HitOutput is one primer hit.
type HitOutput struct {
	// Begin of the hit, 1-based inclusive
	Begin int `json:"begin"`

	// End of the hit, 1-based inclusive
	End int `json:"end"`

	// Strand the pattern matched on, "+" or "-"
	Strand string `json:"strand"`

	// Pattern name from the report
	Pattern string `json:"pattern"`

	// Mismatches in the hit, -1 when the report held the "." placeholder
	Mismatches int `json:"mismatches"`

	// Match is the literal matched subsequence
	Match string `json:"match"`
}

// writeJSON writes the full classification to the filename requested.
func writeJSON(filename string, res *Result) (output []byte, err error) {
	// store save time, using same format as log.Println
	t := time.Now()
	stamp := fmt.Sprintf(
		"%d/%02d/%02d %02d:%02d:%02d",
		t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
	)

	out := Output{
		Time:    stamp,
		Forward: res.ForwardFile,
		Reverse: res.ReverseFile,
		Counts:  map[string]int{},
	}
	for _, cat := range Categories {
		out.Counts[cat.String()] = res.Count(cat)
	}
	for _, id := range res.IDs {
		out.Sequences = append(out.Sequences, newSeqOutput(res.ByID[id]))
	}

	output, err = json.MarshalIndent(out, "", "  ")
	if err != nil {
		return output, fmt.Errorf("failed to serialize results: %v", err)
	}

	if err = os.WriteFile(filename, output, 0666); err != nil {
		return output, fmt.Errorf("failed to write the results: %v", err)
	}

	return output, nil
}

func newSeqOutput(cl *Classification) SeqOutput {
	s := SeqOutput{
		ID:             cl.ID,
		Category:       cl.Category,
		Length:         cl.Length,
		AmpliconLength: cl.AmpliconLength,
		Truncated:      cl.Truncated,
	}
	for _, h := range cl.Forward {
		s.Forward = append(s.Forward, newHitOutput(h))
	}
	for _, h := range cl.Reverse {
		s.Reverse = append(s.Reverse, newHitOutput(h))
	}
	return s
}

func newHitOutput(h fuzznuc.PrimerHit) HitOutput {
	return HitOutput{
		Begin:      h.Begin,
		End:        h.End,
		Strand:     string(h.Strand),
		Pattern:    h.Pattern,
		Mismatches: h.Mismatches,
		Match:      h.Match,
	}
}
