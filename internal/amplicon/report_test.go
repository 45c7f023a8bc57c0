package amplicon

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/walshaw/amplengths/internal/fuzznuc"
	"github.com/walshaw/amplengths/internal/universe"
)

func classifyPair(t *testing.T, fwd, rev *fuzznuc.Report, u *universe.Universe, opts Options) *Result {
	t.Helper()

	res, err := NewClassifier(nil).Classify(fwd, rev, u, opts)
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	return res
}

func Test_WriteReport(t *testing.T) {
	fwd := report("fwd.fuzznuc",
		&fuzznuc.Record{ID: "s1", Length: 1200, HitCount: 1, Hits: []fuzznuc.PrimerHit{fhit(1, 20, 0)}},
		&fuzznuc.Record{ID: "s2", Length: 1200, HitCount: 1, Hits: []fuzznuc.PrimerHit{fhit(1, 20, 0)}},
	)
	rev := report("rev.fuzznuc",
		&fuzznuc.Record{ID: "s1", Length: 1200, HitCount: 1, Hits: []fuzznuc.PrimerHit{rhit(781, 800, 0)}},
		&fuzznuc.Record{ID: "s2", Length: 1200, HitCount: 1, Hits: []fuzznuc.PrimerHit{rhit(981, 1000, 0)}},
	)
	res := classifyPair(t, fwd, rev, nil, Options{})

	t.Run("counts", func(t *testing.T) {
		var buf bytes.Buffer
		WriteReport(&buf, res, 0)
		out := buf.String()

		for _, want := range []string{`Both\s+2`, `NoPrimer\s+0`, `ForwardOnly\s+0`, `ReverseOnly\s+0`, `total\s+2`} {
			if !regexp.MustCompile(want).MatchString(out) {
				t.Errorf("WriteReport() = %q, want a row matching %s", out, want)
			}
		}
		if !strings.Contains(out, "NoPrimer only covers") {
			t.Errorf("WriteReport() = %q, want a note about the missing universe", out)
		}
		if strings.Contains(out, "mean length") {
			t.Errorf("WriteReport() = %q, statistics should need verbosity 1", out)
		}
	})

	t.Run("statistics", func(t *testing.T) {
		var buf bytes.Buffer
		WriteReport(&buf, res, 1)
		out := buf.String()

		for _, want := range []string{`amplicons\s+2`, `mean length\s+900\.0`, `stddev\s+141\.4`, `median\s+800\.0`, `min\s+800`, `max\s+1000`} {
			if !regexp.MustCompile(want).MatchString(out) {
				t.Errorf("WriteReport() = %q, want a row matching %s", out, want)
			}
		}
		if strings.Contains(out, "Both (2)") {
			t.Errorf("WriteReport() = %q, ID lists should need verbosity 2", out)
		}
	})

	t.Run("id lists", func(t *testing.T) {
		var buf bytes.Buffer
		WriteReport(&buf, res, 2)
		out := buf.String()

		if !strings.Contains(out, "Both (2)") || !strings.Contains(out, "NoPrimer (0)") {
			t.Errorf("WriteReport() = %q, want per-category headers", out)
		}
		for _, want := range []string{`s1\s+800`, `s2\s+1000`} {
			if !regexp.MustCompile(want).MatchString(out) {
				t.Errorf("WriteReport() = %q, want a row matching %s", out, want)
			}
		}
	})
}

func Test_WriteReport_universe(t *testing.T) {
	fwd := report("fwd.fuzznuc", &fuzznuc.Record{ID: "s1", Length: 1000})
	rev := report("rev.fuzznuc", &fuzznuc.Record{ID: "s1", Length: 1000})

	u := universe.New()
	u.Add("s1")
	u.Add("s2")
	res := classifyPair(t, fwd, rev, u, Options{})

	var buf bytes.Buffer
	WriteReport(&buf, res, 0)
	out := buf.String()

	if strings.Contains(out, "NoPrimer only covers") {
		t.Errorf("WriteReport() = %q, the universe note should only print without universe files", out)
	}
	if !regexp.MustCompile(`NoPrimer\s+2`).MatchString(out) {
		t.Errorf("WriteReport() = %q, want NoPrimer to count the whole universe", out)
	}
}

func Test_WriteReport_truncated(t *testing.T) {
	fwd := report("fwd.fuzznuc",
		&fuzznuc.Record{ID: "t1", Length: 900, HitCount: 1, Hits: []fuzznuc.PrimerHit{fhit(101, 120, 0)}})
	rev := report("rev.fuzznuc", &fuzznuc.Record{ID: "t1", Length: 900})
	res := classifyPair(t, fwd, rev, nil, Options{Assume3Truncated: true})

	var buf bytes.Buffer
	WriteReport(&buf, res, 2)
	out := buf.String()

	if !regexp.MustCompile(`t1\s+800\s+truncated`).MatchString(out) {
		t.Errorf("WriteReport() = %q, want t1 listed as 800 bp truncated", out)
	}
}

func Test_WriteReport_noLengths(t *testing.T) {
	fwd := report("fwd.fuzznuc", &fuzznuc.Record{ID: "s1", Length: 1000})
	rev := report("rev.fuzznuc", &fuzznuc.Record{ID: "s1", Length: 1000})
	res := classifyPair(t, fwd, rev, nil, Options{})

	var buf bytes.Buffer
	WriteReport(&buf, res, 1)

	if !strings.Contains(buf.String(), "no amplicon lengths could be inferred") {
		t.Errorf("WriteReport() = %q, want a note about the empty length set", buf.String())
	}
}
