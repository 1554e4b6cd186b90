package richtext

import (
	"reflect"
	"strings"
	"testing"
)

func FuzzTruncate_Properties(f *testing.F) {
	seeds := [][]byte{
		{},
		{5},
		{8, 0, 1, 2, 3},
		{0, 4, 4, 4},
		{12, 1, 0, 3, 1, 0, 5, 3},
		{3, 4, 0, 5, 0, 2, 2},
		[]byte("paste-seed"),
		[]byte("unicode-seed-👨‍👩‍👧‍👦"),
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		frag, budget := decodeTruncateFuzzCase(data)

		got := Truncate(frag, budget)

		if budget <= 0 {
			if len(got) != 0 {
				t.Fatalf("non-empty result for budget %d: %#v", budget, got)
			}
			return
		}

		if m := Measure(got); m > budget {
			t.Fatalf("budget exceeded: Measure = %d > %d\nfrag = %#v\nresult = %#v", m, budget, frag, got)
		}

		if len(got) > 0 && IsBreak(got[0]) {
			t.Fatalf("result starts with a break node: %#v", got)
		}

		if again := Truncate(got, budget); !reflect.DeepEqual(again, got) {
			t.Fatalf("not idempotent:\nfirst  %#v\nsecond %#v", got, again)
		}

		wider := Truncate(frag, budget+1)
		if Measure(wider) < Measure(got) {
			t.Fatalf("not monotone between %d and %d:\nfrag = %#v", budget, budget+1, frag)
		}

		trimmed := trimLeadingBreaks(frag)
		if Measure(trimmed) <= budget && !reflect.DeepEqual(got, trimmed) {
			t.Fatalf("identity shortcut missed:\nwant %#v\ngot  %#v", trimmed, got)
		}

		if !strings.HasPrefix(leafText(frag), leafText(got)) {
			t.Fatalf("result text %q is not a prefix of input text %q\nfrag = %#v\nresult = %#v",
				leafText(got), leafText(frag), frag, got)
		}
	})
}

// leafText concatenates leaf payloads in document order, ignoring breaks and
// block boundaries.
func leafText(nodes []Node) string {
	var sb strings.Builder
	var walk func([]Node)
	walk = func(ns []Node) {
		for _, n := range ns {
			switch n := n.(type) {
			case Text:
				sb.WriteString(n.Text)
			case Container:
				walk(n.Children)
			}
		}
	}
	walk(nodes)
	return sb.String()
}

type truncateFuzzFrame struct {
	typ  NodeType
	kids []Node
}

// decodeTruncateFuzzCase turns a byte string into a fragment and a budget.
// The first byte picks the budget; each following byte is one build step on a
// container stack, so any input decodes to a well-formed tree.
func decodeTruncateFuzzCase(data []byte) (Fragment, int) {
	if len(data) == 0 {
		return nil, 0
	}
	budget := int(data[0] % 40)

	texts := []string{"a", "bc", "def", "héllo", "👨‍👩‍👧‍👦", "word "}
	types := []NodeType{TypeParagraph, TypeListItem, TypeBulletList, TypeBlockquote, TypeHeading}

	var root []Node
	var open []truncateFuzzFrame

	appendNode := func(n Node) {
		if len(open) > 0 {
			frame := &open[len(open)-1]
			frame.kids = append(frame.kids, n)
			return
		}
		root = append(root, n)
	}

	closeOne := func() {
		frame := open[len(open)-1]
		open = open[:len(open)-1]
		appendNode(Container{Type: frame.typ, Children: frame.kids})
	}

	for _, b := range data[1:] {
		switch b % 6 {
		case 0:
			appendNode(Text{Text: texts[int(b>>3)%len(texts)]})
		case 1:
			if len(open) < 8 {
				open = append(open, truncateFuzzFrame{typ: types[int(b>>3)%len(types)]})
			}
		case 2:
			if len(open) > 0 {
				closeOne()
			}
		case 3:
			appendNode(Container{Type: TypeHardBreak})
		case 4:
			appendNode(Container{Type: TypeParagraph})
		case 5:
			appendNode(Text{Text: "x", Marks: []Mark{MarkBold}})
		}
	}
	for len(open) > 0 {
		closeOne()
	}

	return Fragment(root), budget
}
