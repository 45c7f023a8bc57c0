package align

import (
	"os"
	"path"
	"reflect"
	"strings"
	"testing"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/seq/linear"
)

func Test_Read(t *testing.T) {
	aln, err := Read(path.Join("..", "..", "test", "input", "primers.aln"), "")
	if err != nil {
		t.Errorf("Read() error = %v", err)
		return
	}

	if aln.Columns != 32 {
		t.Errorf("Read() columns = %d, want 32", aln.Columns)
	}

	var ids []string
	for _, row := range aln.Rows {
		ids = append(ids, row.ID)
	}
	if want := []string{"seq_a", "seq_b", "seq_c"}; !reflect.DeepEqual(ids, want) {
		t.Errorf("Read() rows = %v, want %v", ids, want)
	}

	// seq_c is lowercase with "." gaps in the file
	c := aln.Rows[2]
	if got := string(c.Aligned); got != "TT--ACGATGCAGGGGGGGGAAGGATCCCA--" {
		t.Errorf("Read() seq_c aligned = %s", got)
	}
	if got := string(c.Raw); got != "TTACGATGCAGGGGGGGGAAGGATCCCA" {
		t.Errorf("Read() seq_c raw = %s", got)
	}
}

func Test_Read_errors(t *testing.T) {
	if _, err := Read(path.Join("..", "..", "test", "input", "ragged.aln"), ""); err == nil || !strings.Contains(err.Error(), "differ in length") {
		t.Errorf("Read() error = %v, want one about unequal rows", err)
	}

	if _, err := Read(path.Join("..", "..", "test", "input", "nope.aln"), ""); err == nil {
		t.Error("Read() missing file error = nil")
	}

	empty := path.Join(t.TempDir(), "empty.aln")
	if err := os.WriteFile(empty, nil, 0666); err != nil {
		t.Fatal(err)
	}
	if _, err := Read(empty, ""); err == nil || !strings.Contains(err.Error(), "no sequences") {
		t.Errorf("Read() error = %v, want one about the empty alignment", err)
	}
}

func Test_newRow(t *testing.T) {
	var gaps [256]bool
	for i := 0; i < len(DefaultGapChars); i++ {
		gaps[DefaultGapChars[i]] = true
	}

	row := newRow(linear.NewSeq("r1", []alphabet.Letter("tt.~ac-gt"), alphabet.DNA), gaps)

	if got := string(row.Aligned); got != "TT--AC-GT" {
		t.Errorf("newRow() aligned = %s, want TT--AC-GT", got)
	}
	if got := string(row.Raw); got != "TTACGT" {
		t.Errorf("newRow() raw = %s, want TTACGT", got)
	}

	columns := []struct {
		pos  int
		want int
	}{
		{1, 1},
		{2, 2},
		{3, 5},
		{4, 6},
		{5, 8},
		{6, 9},
	}
	for _, tt := range columns {
		if got := row.Column(tt.pos); got != tt.want {
			t.Errorf("Column(%d) = %d, want %d", tt.pos, got, tt.want)
		}
	}
}
