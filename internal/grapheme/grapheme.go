// Package grapheme provides cluster-accurate counting and prefix slicing.
//
// A "character" throughout clipfit is a grapheme cluster (UAX #29), so a
// budget boundary can never split an emoji or a combining sequence.
package grapheme

import "github.com/rivo/uniseg"

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// Prefix returns the longest prefix of text holding at most n clusters.
// The result is a byte-for-byte prefix of text.
func Prefix(text string, n int) string {
	s, _ := PrefixLen(text, n)
	return s
}

// PrefixLen returns the longest prefix of text holding at most n clusters,
// along with the number of clusters it contains.
func PrefixLen(text string, n int) (string, int) {
	if text == "" || n <= 0 {
		return "", 0
	}
	// A cluster is at least one byte, so n >= len(text) takes everything.
	if n >= len(text) {
		return text, Count(text)
	}
	g := uniseg.NewGraphemes(text)
	end := 0
	taken := 0
	for taken < n && g.Next() {
		_, to := g.Positions()
		end = to
		taken++
	}
	return text[:end], taken
}
