package align

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/walshaw/amplengths/internal/primer"
)

// WriteHits prints one row per placement. Verbosity 1 adds a "none" row
// for every aligned sequence a primer missed. A closing note per primer
// reports the column span every placement agreed on, when there is one.
func WriteHits(w io.Writer, aln *Alignment, primers []*primer.Primer, hits []Hit, verbosity int) {
	writer := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
	fmt.Fprintf(writer, "sequence\tprimer\tstrand\tbegin\tend\tcolumns\tmismatches\tmatch\t\n")
	for _, p := range primers {
		for _, row := range aln.Rows {
			placed := false
			for _, h := range hits {
				if h.Primer != p.Name || h.SeqID != row.ID {
					continue
				}
				fmt.Fprintf(writer, "%s\t%s\t%s\t%d\t%d\t%d..%d\t%d\t%s\t\n",
					h.SeqID, h.Primer, h.Strand, h.Begin, h.End, h.ColumnBegin, h.ColumnEnd, h.Mismatches, h.Match)
				placed = true
			}
			if !placed && verbosity >= 1 {
				fmt.Fprintf(writer, "%s\t%s\tnone\t\t\t\t\t\t\n", row.ID, p.Name)
			}
		}
	}
	writer.Flush()

	for _, p := range primers {
		var placements []Hit
		for _, h := range hits {
			if h.Primer == p.Name {
				placements = append(placements, h)
			}
		}
		if begin, end, ok := ColumnSpan(placements); ok {
			fmt.Fprintf(w, "\nthe %s primer spans alignment columns %d..%d in every hit\n", p.Name, begin, end)
		} else if len(placements) > 0 {
			fmt.Fprintf(w, "\nthe %s primer's placements disagree on their alignment columns\n", p.Name)
		}
	}
}
