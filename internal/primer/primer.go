// Package primer matches IUPAC-degenerate primer sequences against plain
// DNA sequences.
package primer

import (
	"bytes"
	"fmt"
	"strings"
)

// iupacMask maps each IUPAC nucleotide code to a base set: A=1 C=2 G=4 T=8.
var iupacMask = [256]byte{
	'A': 1, 'C': 2, 'G': 4, 'T': 8,
	'R': 1 | 4, 'Y': 2 | 8, 'S': 2 | 4, 'W': 1 | 8, 'K': 4 | 8, 'M': 1 | 2,
	'B': 2 | 4 | 8, 'D': 1 | 4 | 8, 'H': 1 | 2 | 8, 'V': 1 | 2 | 4,
	'N': 1 | 2 | 4 | 8,
}

// complement maps each IUPAC code to its complement code.
var complement = [256]byte{
	'A': 'T', 'C': 'G', 'G': 'C', 'T': 'A',
	'R': 'Y', 'Y': 'R', 'S': 'S', 'W': 'W', 'K': 'M', 'M': 'K',
	'B': 'V', 'V': 'B', 'D': 'H', 'H': 'D', 'N': 'N',
}

// Primer is a named primer pattern, held uppercase.
type Primer struct {
	// Name used in reports, e.g. "forward"
	Name string

	// Seq is the primer pattern 5'->3', IUPAC codes allowed
	Seq []byte
}

// New validates seq as an IUPAC nucleotide pattern and returns the primer.
func New(name, seq string) (*Primer, error) {
	if seq == "" {
		return nil, fmt.Errorf("%s primer is empty", name)
	}

	up := []byte(strings.ToUpper(seq))
	for i, c := range up {
		if iupacMask[c] == 0 {
			return nil, fmt.Errorf("%s primer has a non-IUPAC character %q at position %d", name, c, i+1)
		}
	}
	return &Primer{Name: name, Seq: up}, nil
}

// RevComp returns the reverse complement of an IUPAC nucleotide sequence.
// Characters outside the code become N.
func RevComp(seq []byte) []byte {
	n := len(seq)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		c := complement[seq[n-1-i]]
		if c == 0 {
			c = 'N'
		}
		out[i] = c
	}
	return out
}

// Match is one placement of a primer pattern on a sequence.
type Match struct {
	// Pos is the 0-based offset of the placement
	Pos int

	// Mismatches at this placement
	Mismatches int
}

// Find returns every placement of pat on seq with at most maxMM mismatching
// bases, in position order. Ambiguity codes count on the pattern side only;
// a sequence base outside ACGT is always a mismatch, so N runs in the
// sequence cannot produce spurious hits.
func Find(seq, pat []byte, maxMM int) []Match {
	n := len(pat)
	if n == 0 || len(seq) < n {
		return nil
	}

	// plain exact matching can ride on bytes.Index
	if maxMM == 0 && !degenerate(pat) {
		var out []Match
		for i := 0; ; {
			j := bytes.Index(seq[i:], pat)
			if j < 0 {
				return out
			}
			out = append(out, Match{Pos: i + j})
			i += j + 1
		}
	}

	var out []Match
scan:
	for pos := 0; pos+n <= len(seq); pos++ {
		mm := 0
		for j := 0; j < n; j++ {
			if !baseMatch(seq[pos+j], pat[j]) {
				mm++
				if mm > maxMM {
					continue scan
				}
			}
		}
		out = append(out, Match{Pos: pos, Mismatches: mm})
	}
	return out
}

// baseMatch reports whether pattern base p can pair with sequence base s.
func baseMatch(s, p byte) bool {
	if s != 'A' && s != 'C' && s != 'G' && s != 'T' {
		return false
	}
	return iupacMask[p]&iupacMask[s] != 0
}

func degenerate(pat []byte) bool {
	for _, c := range pat {
		if c != 'A' && c != 'C' && c != 'G' && c != 'T' {
			return true
		}
	}
	return false
}
