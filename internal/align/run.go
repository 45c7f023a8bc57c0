package align

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/walshaw/amplengths/config"
	"github.com/walshaw/amplengths/internal/primer"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// Flags contains parsed cobra flags used by the locate command.
type Flags struct {
	// the alignment FASTA path
	alignment string

	// forward primer sequence, 5' to 3', optional
	forward string

	// reverse primer sequence, 5' to 3', optional
	reverse string

	// the JSON results path, optional
	out string

	// most mismatching bases tolerated per placement
	mismatches int

	// characters read as alignment gaps
	gapChars string

	// how much detail the report carries
	verbosity int
}

// NewFlags makes a new flags object manually. for testing.
func NewFlags(alignment, forward, reverse, out string, mismatches, verbosity int) (*Flags, *config.Config) {
	c := config.New()
	return &Flags{
		alignment:  alignment,
		forward:    forward,
		reverse:    reverse,
		out:        out,
		mismatches: mismatches,
		gapChars:   c.GapChars,
		verbosity:  verbosity,
	}, c
}

// LocateCmd takes a cobra command (with its flags) and runs Locate.
func LocateCmd(cmd *cobra.Command, args []string) {
	Locate(parseCmdFlags(cmd, args))
}

// parseCmdFlags gathers the alignment path and primer sequences from a
// cobra cmd object. The alignment and at least one primer are required.
func parseCmdFlags(cmd *cobra.Command, args []string) (*Flags, *config.Config) {
	var err error
	fs := &Flags{}
	c := config.New()

	if fs.alignment, err = cmd.Flags().GetString("alignment"); fs.alignment == "" || err != nil {
		cmd.Help()
		stderr.Fatalln("\nno alignment passed.")
	}

	fs.forward, _ = cmd.Flags().GetString("forward")
	fs.reverse, _ = cmd.Flags().GetString("reverse")
	if fs.forward == "" && fs.reverse == "" {
		cmd.Help()
		stderr.Fatalln("\nno primer sequences passed.")
	}

	fs.out, _ = cmd.Flags().GetString("out")
	fs.mismatches, _ = cmd.Flags().GetInt("mismatches")
	if !cmd.Flags().Changed("mismatches") {
		fs.mismatches = c.LocateMismatches
	}
	fs.gapChars = c.GapChars
	fs.verbosity = c.Verbosity

	return fs, c
}

// Locate reads the alignment, places each primer on both strands of every
// row, and writes the placements to stdout in raw sequence and alignment
// column coordinates. Also writes JSON results when that path is set.
func Locate(flags *Flags, conf *config.Config) []Hit {
	aln, err := Read(flags.alignment, flags.gapChars)
	if err != nil {
		stderr.Fatalln(err)
	}

	primers, err := parsePrimers(flags)
	if err != nil {
		stderr.Fatalln(err)
	}

	var hits []Hit
	for _, p := range primers {
		hits = append(hits, aln.Locate(p, flags.mismatches)...)
	}

	WriteHits(os.Stdout, aln, primers, hits, flags.verbosity)

	if flags.out != "" {
		if _, err := writeJSON(flags.out, flags.alignment, hits); err != nil {
			stderr.Fatalln(err)
		}
	}

	return hits
}

// parsePrimers builds a primer per sequence flag that was set.
func parsePrimers(flags *Flags) ([]*primer.Primer, error) {
	var primers []*primer.Primer
	if flags.forward != "" {
		p, err := primer.New("forward", flags.forward)
		if err != nil {
			return nil, err
		}
		primers = append(primers, p)
	}
	if flags.reverse != "" {
		p, err := primer.New("reverse", flags.reverse)
		if err != nil {
			return nil, err
		}
		primers = append(primers, p)
	}
	return primers, nil
}
