// Package universe collects the full set of sequence IDs a classification
// run must account for, so sequences missing from every report can still be
// counted and listed.
package universe

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"go.uber.org/multierr"
)

// Universe is a set of sequence IDs in first-seen order.
type Universe struct {
	// IDs in the order they were first added
	IDs []string

	set map[string]bool
}

// New returns an empty Universe.
func New() *Universe {
	return &Universe{set: map[string]bool{}}
}

// Has reports whether id is in the universe.
func (u *Universe) Has(id string) bool {
	return u.set[id]
}

// Len returns the number of IDs in the universe.
func (u *Universe) Len() int {
	return len(u.IDs)
}

// Add inserts id, keeping first-seen order. Duplicates are dropped.
func (u *Universe) Add(id string) {
	if u.set[id] {
		return
	}
	u.set[id] = true
	u.IDs = append(u.IDs, id)
}

// AddIDFile reads sequence IDs from a plain text file, one per line.
// Blank lines and #-comments are skipped; only the first whitespace-separated
// token of each line is taken, so annotated ID lists work too.
func (u *Universe) AddIDFile(path string) (err error) {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open ID file: %v", err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		u.Add(strings.Fields(line)[0])
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %v", path, err)
	}
	return nil
}

// AddFasta adds the ID of every sequence in a FASTA file.
func (u *Universe) AddFasta(path string) (err error) {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open FASTA file: %v", err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	template := linear.NewSeq("", nil, alphabet.DNA)
	scanner := seqio.NewScanner(fasta.NewReader(f, template))
	for scanner.Next() {
		s := scanner.Seq().(*linear.Seq)
		u.Add(s.Name())
	}
	if err := scanner.Error(); err != nil {
		return fmt.Errorf("failed to read %s: %v", path, err)
	}
	return nil
}
