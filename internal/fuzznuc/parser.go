package fuzznuc

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/multierr"
)

// FormatError describes a report line that does not fit the fuzznuc format.
// Parsing stops at the first one.
type FormatError struct {
	// File the line came from
	File string

	// Line number, 1-based
	Line int

	// Text of the offending line
	Text string

	// Msg says what was expected
	Msg string
}

// Error satisfies the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("%s:%d: %s: %q", e.File, e.Line, e.Msg, e.Text)
}

// keywordLine matches annotation lines of the form "# Key: value rest".
var keywordLine = regexp.MustCompile(`^#\s*([A-Za-z_][A-Za-z0-9_]*):\s*(\S*)\s*(.*)$`)

// tableHeader is the column header fuzznuc prints above each hit table.
var tableHeader = []string{"Start", "End", "Strand", "Pattern_name", "Mismatch", "Sequence"}

// Parser reads EMBOSS fuzznuc reports. Every Parse call carries its own
// state, so one Parser can be shared across files.
type Parser struct {
	warn *log.Logger
}

// NewParser returns a Parser that writes advisory warnings to warn.
// A nil warn silences them.
func NewParser(warn *log.Logger) *Parser {
	if warn == nil {
		warn = log.New(io.Discard, "", 0)
	}
	return &Parser{warn: warn}
}

// ParseFile parses the fuzznuc report at path.
func (p *Parser) ParseFile(path string) (rep *Report, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fuzznuc report: %v", err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	return p.Parse(f, path)
}

// Parse reads a single fuzznuc report from r. name labels errors and
// warnings, usually the file path.
func (p *Parser) Parse(r io.Reader, name string) (*Report, error) {
	s := &parse{
		file: name,
		rep:  &Report{File: name, Records: map[string]*Record{}},
		warn: p.warn,
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		s.line++
		s.text = strings.TrimSpace(scanner.Text())
		if err := s.next(); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %v", name, err)
	}

	s.closeRecord()
	return s.rep, nil
}

// parse is the state of one Parse call.
type parse struct {
	file    string
	rep     *Report
	cur     *Record
	inTable bool
	line    int
	text    string
	warn    *log.Logger
}

// next consumes the current line.
func (s *parse) next() error {
	switch {
	case s.text == "":
		s.inTable = false
		return nil
	case strings.HasPrefix(s.text, "#"):
		s.inTable = false
		if m := keywordLine.FindStringSubmatch(s.text); m != nil {
			return s.keyword(m[1], m[2], strings.TrimSpace(m[3]))
		}
		return nil
	}

	fields := strings.Fields(s.text)
	if isTableHeader(fields) {
		return s.header()
	}
	if !s.inTable {
		return s.errorf("expected a hit table header")
	}
	return s.row(fields)
}

// keyword consumes a "# Key: value rest" line.
func (s *parse) keyword(key, value, rest string) error {
	switch key {
	case "Sequence":
		return s.sequence(value, rest)
	case "HitCount":
		if s.cur == nil {
			return s.errorf("HitCount before any Sequence header")
		}
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return s.errorf("HitCount is not a count")
		}
		s.cur.HitCount = n
	case "Complement":
		if s.cur == nil {
			return s.errorf("Complement before any Sequence header")
		}
		switch value {
		case "Yes":
			s.cur.Complement = true
		case "No":
			s.cur.Complement = false
		default:
			return s.errorf("Complement must be Yes or No")
		}
	case "Program", "Rundate", "Commandline", "Report_format", "Report_file",
		"Total_sequences", "Total_length", "Reported_sequences", "Reported_hitcount":
		// run metadata, nothing downstream needs it
	default:
		return s.errorf("unknown keyword %q", key)
	}
	return nil
}

// sequence starts a new record from a "# Sequence: <id> from: <n> to: <n>" line.
func (s *parse) sequence(id, rest string) error {
	if id == "" {
		return s.errorf("Sequence header without an ID")
	}
	if _, ok := s.rep.Records[id]; ok {
		return s.errorf("sequence %q appears twice", id)
	}

	fields := strings.Fields(rest)
	if len(fields) != 4 || fields[0] != "from:" || fields[2] != "to:" {
		return s.errorf("Sequence header must end in from: <n> to: <n>")
	}
	from, err := strconv.Atoi(fields[1])
	if err != nil {
		return s.errorf("bad from value %q", fields[1])
	}
	to, err := strconv.Atoi(fields[3])
	if err != nil {
		return s.errorf("bad to value %q", fields[3])
	}
	if from != 1 {
		s.warn.Printf("%s:%d: sequence %s is reported from %d, lengths assume full sequences", s.file, s.line, id, from)
	}

	s.closeRecord()
	s.cur = &Record{ID: id, Length: to, From: from}
	s.rep.Records[id] = s.cur
	s.rep.IDs = append(s.rep.IDs, id)
	return nil
}

// header consumes the hit table column header.
func (s *parse) header() error {
	if s.cur == nil {
		return s.errorf("hit table before any Sequence header")
	}
	if s.inTable {
		return s.errorf("hit table header repeated")
	}
	s.inTable = true
	return nil
}

// row consumes one hit table row.
func (s *parse) row(fields []string) error {
	if len(fields) != 6 {
		return s.errorf("hit rows have 6 columns, not %d", len(fields))
	}

	begin, err := strconv.Atoi(fields[0])
	if err != nil {
		return s.errorf("bad hit start %q", fields[0])
	}
	end, err := strconv.Atoi(fields[1])
	if err != nil {
		return s.errorf("bad hit end %q", fields[1])
	}
	if begin < 1 || end < begin {
		return s.errorf("hit coordinates out of order")
	}
	if fields[2] != "+" && fields[2] != "-" {
		return s.errorf("bad strand %q", fields[2])
	}

	mismatches := MismatchNA
	if fields[4] != "." {
		mismatches, err = strconv.Atoi(fields[4])
		if err != nil || mismatches < 0 {
			return s.errorf("bad mismatch count %q", fields[4])
		}
	}

	s.cur.Hits = append(s.cur.Hits, PrimerHit{
		Begin:      begin,
		End:        end,
		Strand:     fields[2][0],
		Pattern:    fields[3],
		Mismatches: mismatches,
		Match:      fields[5],
	})
	return nil
}

// closeRecord cross-checks the record that just ended. HitCount drift is
// advisory only, fuzznuc can be told to cap the rows it reports.
func (s *parse) closeRecord() {
	if s.cur == nil {
		return
	}
	if s.cur.HitCount != len(s.cur.Hits) {
		s.warn.Printf("%s: sequence %s declares HitCount %d but lists %d hits",
			s.file, s.cur.ID, s.cur.HitCount, len(s.cur.Hits))
	}
}

// errorf builds a FormatError for the current line.
func (s *parse) errorf(format string, args ...interface{}) error {
	return &FormatError{File: s.file, Line: s.line, Text: s.text, Msg: fmt.Sprintf(format, args...)}
}

func isTableHeader(fields []string) bool {
	if len(fields) != len(tableHeader) {
		return false
	}
	for i, f := range fields {
		if f != tableHeader[i] {
			return false
		}
	}
	return true
}
