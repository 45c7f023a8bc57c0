package cmd

import (
	"github.com/spf13/cobra"
	"github.com/walshaw/amplengths/internal/align"
)

// locateCmd is for placing primer sequences within a multiple sequence alignment
var locateCmd = &cobra.Command{
	Use:                        "locate",
	Short:                      "Locate primers within a multiple sequence alignment",
	Run:                        align.LocateCmd,
	SuggestionsMinimumDistance: 3,
	Long: `Search every row of a FASTA multiple sequence alignment for the forward
primer and for the reverse complement of the reverse primer. Each placement
is reported twice over: against the row's raw (degapped) sequence and
against the alignment's columns.

Primers may use IUPAC ambiguity codes.`,
}

// set flags
func init() {
	RootCmd.AddCommand(locateCmd)

	// Flags for specifying the alignment, the primers and the output
	locateCmd.Flags().StringP("alignment", "a", "", "FASTA multiple sequence alignment <required>")
	locateCmd.Flags().StringP("forward", "f", "", "forward primer sequence, 5' to 3'")
	locateCmd.Flags().StringP("reverse", "r", "", "reverse primer sequence, 5' to 3'")
	locateCmd.Flags().StringP("out", "o", "", "output file name for JSON results")
	locateCmd.Flags().IntP("mismatches", "m", 0, "mismatching bases tolerated per placement")
}
