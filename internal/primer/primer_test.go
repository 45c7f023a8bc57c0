package primer

import (
	"reflect"
	"testing"
)

func Test_New(t *testing.T) {
	type args struct {
		name string
		seq  string
	}
	tests := []struct {
		name    string
		args    args
		want    string
		wantErr bool
	}{
		{
			"uppercases a degenerate primer",
			args{"forward", "agagtttgatcMtggctcag"},
			"AGAGTTTGATCMTGGCTCAG",
			false,
		},
		{
			"rejects a non-IUPAC character",
			args{"reverse", "ACGT5ACGT"},
			"",
			true,
		},
		{
			"rejects an empty primer",
			args{"forward", ""},
			"",
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.args.name, tt.args.seq)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil {
				return
			}
			if string(got.Seq) != tt.want {
				t.Errorf("New() = %q, want %q", got.Seq, tt.want)
			}
		})
	}
}

func Test_RevComp(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		want string
	}{
		{"plain", "GGTTAC", "GTAACC"},
		{"palindrome", "ACGT", "ACGT"},
		{"degenerate codes flip to their partners", "TACGGYTACC", "GGTARCCGTA"},
		{"unknown characters become N", "AC-GT", "ACNGT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(RevComp([]byte(tt.seq))); got != tt.want {
				t.Errorf("RevComp() = %q, want %q", got, tt.want)
			}
		})
	}
}

func Test_Find(t *testing.T) {
	type args struct {
		seq   string
		pat   string
		maxMM int
	}
	tests := []struct {
		name string
		args args
		want []Match
	}{
		{
			"exact hits including overlaps",
			args{"ATATATA", "ATA", 0},
			[]Match{{Pos: 0}, {Pos: 2}, {Pos: 4}},
		},
		{
			"degenerate base covers both letters",
			args{"TTACGTTTCCGTT", "MCGT", 0},
			[]Match{{Pos: 2}, {Pos: 8}},
		},
		{
			"one mismatch allowed",
			args{"TTACGAATT", "ACGT", 1},
			[]Match{{Pos: 2, Mismatches: 1}},
		},
		{
			"mismatch over the cap",
			args{"TTACGAATT", "ACGT", 0},
			nil,
		},
		{
			"sequence N is a mismatch even against pattern N",
			args{"ACNT", "ACNT", 0},
			nil,
		},
		{
			"pattern longer than the sequence",
			args{"ACG", "ACGT", 1},
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Find([]byte(tt.args.seq), []byte(tt.args.pat), tt.args.maxMM); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Find() = %v, want %v", got, tt.want)
			}
		})
	}
}
