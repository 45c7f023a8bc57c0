package amplicon

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/walshaw/amplengths/config"
	"github.com/walshaw/amplengths/internal/fuzznuc"
	"github.com/walshaw/amplengths/internal/universe"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// Flags contains parsed cobra flags used by the classify command.
type Flags struct {
	// the forward primer report path
	forward string

	// the reverse primer report path
	reverse string

	// optional plain-text file of sequence IDs to cross-reference
	ids string

	// optional FASTA file whose IDs extend the cross-reference
	seqs string

	// the JSON results path, optional
	out string

	// the SVG histogram path, optional
	hist string

	// treat reverse-only sequences as amplicons missing their 5' end
	assume5Truncated bool

	// treat forward-only sequences as amplicons missing their 3' end
	assume3Truncated bool

	// how much detail the report carries
	verbosity int
}

// NewFlags makes a new flags object manually. for testing.
func NewFlags(forward, reverse, ids, seqs, out, hist string, assume5, assume3 bool, verbosity int) (*Flags, *config.Config) {
	return &Flags{
		forward:          forward,
		reverse:          reverse,
		ids:              ids,
		seqs:             seqs,
		out:              out,
		hist:             hist,
		assume5Truncated: assume5,
		assume3Truncated: assume3,
		verbosity:        verbosity,
	}, config.New()
}

// ClassifyCmd takes a cobra command (with its flags) and runs Classify.
func ClassifyCmd(cmd *cobra.Command, args []string) {
	Classify(parseCmdFlags(cmd, args))
}

// parseCmdFlags gathers the report paths and inference settings from a
// cobra cmd object. Both report paths are required.
func parseCmdFlags(cmd *cobra.Command, args []string) (*Flags, *config.Config) {
	var err error
	fs := &Flags{}
	c := config.New()

	if fs.forward, err = cmd.Flags().GetString("forward"); fs.forward == "" || err != nil {
		cmd.Help()
		stderr.Fatalln("\nno forward primer report passed.")
	}
	if fs.reverse, err = cmd.Flags().GetString("reverse"); fs.reverse == "" || err != nil {
		cmd.Help()
		stderr.Fatalln("\nno reverse primer report passed.")
	}

	fs.ids, _ = cmd.Flags().GetString("ids")
	fs.seqs, _ = cmd.Flags().GetString("seqs")
	fs.out, _ = cmd.Flags().GetString("out")
	fs.hist, _ = cmd.Flags().GetString("hist")
	fs.assume5Truncated, _ = cmd.Flags().GetBool("assume-5-truncated")
	fs.assume3Truncated, _ = cmd.Flags().GetBool("assume-3-truncated")
	fs.verbosity = c.Verbosity

	return fs, c
}

// Classify parses the two fuzznuc reports, buckets every sequence by which
// primers hit it, and writes the report to stdout. Also writes JSON results
// and a length histogram when those paths are set.
func Classify(flags *Flags, conf *config.Config) *Result {
	u, err := loadUniverse(flags)
	if err != nil {
		stderr.Fatalln(err)
	}

	parser := fuzznuc.NewParser(stderr)
	fwd, err := parser.ParseFile(flags.forward)
	if err != nil {
		stderr.Fatalln(err)
	}
	rev, err := parser.ParseFile(flags.reverse)
	if err != nil {
		stderr.Fatalln(err)
	}

	res, err := NewClassifier(stderr).Classify(fwd, rev, u, Options{
		Assume5Truncated: flags.assume5Truncated,
		Assume3Truncated: flags.assume3Truncated,
	})
	if err != nil {
		stderr.Fatalln(err)
	}

	WriteReport(os.Stdout, res, flags.verbosity)

	if flags.out != "" {
		if _, err := writeJSON(flags.out, res); err != nil {
			stderr.Fatalln(err)
		}
	}
	if flags.hist != "" {
		if err := writeHist(flags.hist, res.Lengths(), conf.HistBins); err != nil {
			stderr.Fatalln(err)
		}
	}

	return res
}

// loadUniverse reads the optional ID and FASTA files into one ID set.
// The two sources union, an ID from either is in.
func loadUniverse(flags *Flags) (*universe.Universe, error) {
	if flags.ids == "" && flags.seqs == "" {
		return nil, nil
	}

	u := universe.New()
	if flags.ids != "" {
		if err := u.AddIDFile(flags.ids); err != nil {
			return nil, err
		}
	}
	if flags.seqs != "" {
		if err := u.AddFasta(flags.seqs); err != nil {
			return nil, err
		}
	}
	return u, nil
}
