package cmd

import (
	"github.com/spf13/cobra"
	"github.com/walshaw/amplengths/internal/amplicon"
)

// classifyCmd is for bucketing sequences by the primers that hit them
var classifyCmd = &cobra.Command{
	Use:                        "classify",
	Short:                      "Classify sequences by their forward and reverse primer hits",
	Run:                        amplicon.ClassifyCmd,
	SuggestionsMinimumDistance: 3,
	Long: `Cross-reference a forward primer fuzznuc report against a reverse primer
report and bucket every sequence by which primers hit it: NoPrimer,
ForwardOnly, ReverseOnly or Both.

Sequences hit by both primers get the amplicon length between the best
forward hit and its reverse mate. Sequences hit by one primer get a length
too when the matching truncation assumption is passed, measured against
the sequence end the missing primer fell off of.

Pass --ids and/or --seqs to also count the sequences neither primer hit.`,
	Aliases: []string{"amplicons"},
}

// set flags
func init() {
	RootCmd.AddCommand(classifyCmd)

	// Flags for specifying the paths to the reports, the universe files and the outputs
	classifyCmd.Flags().StringP("forward", "f", "", "forward primer fuzznuc report <required>")
	classifyCmd.Flags().StringP("reverse", "r", "", "reverse primer fuzznuc report <required>")
	classifyCmd.Flags().StringP("ids", "i", "", "file of sequence IDs, one per line")
	classifyCmd.Flags().StringP("seqs", "q", "", "FASTA file whose IDs extend the ID file's")
	classifyCmd.Flags().StringP("out", "o", "", "output file name for JSON results")
	classifyCmd.Flags().StringP("hist", "g", "", "output file name for an SVG histogram of amplicon lengths")
	classifyCmd.Flags().BoolP("assume-5-truncated", "5", false, "reverse-only sequences are amplicons missing their 5' end")
	classifyCmd.Flags().BoolP("assume-3-truncated", "3", false, "forward-only sequences are amplicons missing their 3' end")
}
