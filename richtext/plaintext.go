package richtext

import (
	"strings"

	"github.com/clipfit/clipfit/internal/grapheme"
)

// PlainText returns the plain-text projection of f: leaf text in document
// order, one newline between consecutive sibling block nodes, one newline per
// hard break.
func PlainText(f Fragment) string {
	var sb strings.Builder
	writePlain(&sb, f)
	return sb.String()
}

func writePlain(sb *strings.Builder, nodes []Node) {
	prevBlock := false
	for _, n := range nodes {
		switch n := n.(type) {
		case Text:
			sb.WriteString(n.Text)
			prevBlock = false
		case Container:
			if n.Type == TypeHardBreak {
				sb.WriteByte('\n')
				prevBlock = false
				continue
			}
			block := n.Type.Block()
			if block && prevBlock {
				sb.WriteByte('\n')
			}
			writePlain(sb, n.Children)
			prevBlock = block
		}
	}
}

// Measure returns the length of the plain-text projection of f in grapheme
// clusters: leaf text lengths, plus 1 per boundary between consecutive
// sibling blocks, plus 1 per hard break. Truncate uses it for the identity
// shortcut, and guarantees Measure(result) <= budget.
//
// Clusters are counted per leaf, so a combining sequence split across two
// leaves counts once per leaf.
func Measure(f Fragment) int {
	return measureSiblings(f)
}

// TextLen returns the total leaf text length of f in grapheme clusters,
// without the break and block-boundary units that Measure adds.
func TextLen(f Fragment) int {
	units := 0
	for _, n := range f {
		switch n := n.(type) {
		case Text:
			units += grapheme.Count(n.Text)
		case Container:
			units += TextLen(n.Children)
		}
	}
	return units
}

func measureSiblings(nodes []Node) int {
	units := 0
	prevBlock := false
	for _, n := range nodes {
		switch n := n.(type) {
		case Text:
			units += grapheme.Count(n.Text)
			prevBlock = false
		case Container:
			if n.Type == TypeHardBreak {
				units++
				prevBlock = false
				continue
			}
			block := n.Type.Block()
			if block && prevBlock {
				units++
			}
			units += measureSiblings(n.Children)
			prevBlock = block
		}
	}
	return units
}
