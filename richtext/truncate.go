package richtext

import "github.com/clipfit/clipfit/internal/grapheme"

// Truncate returns a prefix of f that fits within a budget of remaining
// grapheme clusters, preserving formatting.
//
// Leading top-level break nodes are never emitted. If the remainder already
// fits (Measure <= remaining) it is returned unchanged. Otherwise the tree is
// walked depth-first, left to right, copying nodes until the budget runs out:
// a text leaf keeps a prefix of its payload and all of its marks, a container
// keeps the children that survive, and a container whose children all
// truncate to nothing is dropped. A surviving break node costs 1 unit; a
// surviving block that follows a surviving block sibling costs 1 unit before
// its content, and a boundary that cannot be afforded ends the walk. The
// result always satisfies Measure(result) <= remaining, and its text is a
// prefix of the input's text: nothing past the cut point is emitted.
//
// Truncate never fails: every input, including a zero budget, an oversized
// single leaf, or deeply nested empty containers, degrades to drop or
// truncate. The input is never mutated; surviving nodes are copies.
func Truncate(f Fragment, remaining int) Fragment {
	if remaining <= 0 {
		return nil
	}
	f = trimLeadingBreaks(f)
	if Measure(f) <= remaining {
		return f
	}
	w := walker{budget: remaining}
	return w.siblings(f)
}

// TruncateText returns the longest prefix of text holding at most remaining
// grapheme clusters, byte for byte. No word-boundary snapping.
func TruncateText(text string, remaining int) string {
	if remaining <= 0 {
		return ""
	}
	return grapheme.Prefix(text, remaining)
}

// trimLeadingBreaks drops top-level break nodes before the first content: a
// fragment never starts with a paragraph break or hard break.
func trimLeadingBreaks(f Fragment) Fragment {
	i := 0
	for i < len(f) && IsBreak(f[i]) {
		i++
	}
	return f[i:]
}

// walker carries the running consumed count for one truncation pass. The
// accumulator is explicit so the walk has no shared state beyond the walker
// itself.
type walker struct {
	budget   int
	consumed int

	// emitted flips once any node has been emitted; break nodes before that
	// point are dropped without charge.
	emitted bool

	// stopped marks the cut point when a block boundary cannot be afforded
	// while budget is still left; it ends the walk at every level.
	stopped bool
}

func (w *walker) left() int { return w.budget - w.consumed }

// siblings truncates one child sequence and returns the surviving copies.
// prevBlock tracks whether the last survivor was block-level, which decides
// the 1-unit separator charge for the next block.
func (w *walker) siblings(nodes []Node) []Node {
	var out []Node
	prevBlock := false
	for _, n := range nodes {
		if w.stopped || w.left() <= 0 {
			break
		}
		switch n := n.(type) {
		case Text:
			prefix, taken := grapheme.PrefixLen(n.Text, w.left())
			if taken == 0 {
				continue
			}
			w.consumed += taken
			w.emitted = true
			out = append(out, Text{Text: prefix, Marks: n.Marks})
			prevBlock = false
		case Container:
			if IsBreak(n) {
				if !w.emitted {
					continue
				}
				// Loop guard ensures at least one unit is left.
				w.consumed++
				out = append(out, n)
				prevBlock = n.Type != TypeHardBreak
				continue
			}
			if len(n.Children) == 0 {
				// Unrecognized childless container: dropped silently.
				continue
			}
			sep := 0
			if n.Type.Block() && prevBlock {
				sep = 1
			}
			if w.left() <= sep {
				w.stopped = true
				return out
			}
			w.consumed += sep
			kids := w.siblings(n.Children)
			if len(kids) == 0 {
				w.consumed -= sep
				continue
			}
			out = append(out, Container{Type: n.Type, Children: kids})
			prevBlock = n.Type.Block()
		}
	}
	return out
}
