package amplicon

import (
	"fmt"
	"io"
	"text/tabwriter"

	"gonum.org/v1/gonum/stat"
)

// WriteReport prints the classification to w. Verbosity 0 prints the
// category counts, 1 adds amplicon length statistics, 2 adds per-category
// ID lists.
func WriteReport(w io.Writer, res *Result, verbosity int) {
	writer := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
	fmt.Fprintf(writer, "category\tcount\t\n")
	for _, cat := range Categories {
		fmt.Fprintf(writer, "%s\t%d\t\n", cat, res.Count(cat))
	}
	fmt.Fprintf(writer, "total\t%d\t\n", len(res.IDs))
	writer.Flush()

	if !res.HasUniverse {
		fmt.Fprintln(w, "\nNoPrimer only covers sequences the reports mention; pass --ids or --seqs to count sequences no primer hit")
	}

	if verbosity >= 1 {
		writeLengthStats(w, res.Lengths())
	}
	if verbosity >= 2 {
		writeIDLists(w, res)
	}
}

// writeLengthStats prints summary statistics over every inferred amplicon
// length. lengths must be sorted, which Result.Lengths guarantees.
func writeLengthStats(w io.Writer, lengths []float64) {
	fmt.Fprintln(w)
	if len(lengths) == 0 {
		fmt.Fprintln(w, "no amplicon lengths could be inferred")
		return
	}

	writer := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
	fmt.Fprintf(writer, "amplicons\t%d\t\n", len(lengths))
	fmt.Fprintf(writer, "mean length\t%.1f\t\n", stat.Mean(lengths, nil))
	fmt.Fprintf(writer, "stddev\t%.1f\t\n", stat.StdDev(lengths, nil))
	fmt.Fprintf(writer, "median\t%.1f\t\n", stat.Quantile(0.5, stat.Empirical, lengths, nil))
	fmt.Fprintf(writer, "min\t%.0f\t\n", lengths[0])
	fmt.Fprintf(writer, "max\t%.0f\t\n", lengths[len(lengths)-1])
	writer.Flush()
}

// writeIDLists prints each category's member IDs, sorted, with the
// amplicon length inferred for each.
func writeIDLists(w io.Writer, res *Result) {
	for _, cat := range Categories {
		ids := res.InCategory(cat)
		fmt.Fprintf(w, "\n%s (%d)\n", cat, len(ids))

		writer := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
		for _, id := range ids {
			cl := res.ByID[id]
			switch {
			case cl.AmpliconLength > 0 && cl.Truncated:
				fmt.Fprintf(writer, "  %s\t%d\ttruncated\t\n", id, cl.AmpliconLength)
			case cl.AmpliconLength > 0:
				fmt.Fprintf(writer, "  %s\t%d\t\t\n", id, cl.AmpliconLength)
			default:
				fmt.Fprintf(writer, "  %s\t\t\t\n", id)
			}
		}
		writer.Flush()
	}
}
