package richtext

// Mark is a formatting attribute attached to a text leaf, orthogonal to tree
// structure.
type Mark string

const (
	MarkBold          Mark = "bold"
	MarkItalic        Mark = "italic"
	MarkUnderline     Mark = "underline"
	MarkStrikethrough Mark = "strike"
	MarkCode          Mark = "code"
	MarkLink          Mark = "link"
)

// NodeType tags a container node. The set is open: unknown types decoded from
// foreign payloads round-trip unchanged and follow the generic container
// rules.
type NodeType string

const (
	TypeParagraph   NodeType = "paragraph"
	TypeHeading     NodeType = "heading"
	TypeBlockquote  NodeType = "blockquote"
	TypeBulletList  NodeType = "bulletList"
	TypeOrderedList NodeType = "orderedList"
	TypeListItem    NodeType = "listItem"
	TypeHardBreak   NodeType = "hardBreak"
)

// Block reports whether the type is block-level: consecutive sibling blocks
// are separated by one newline in the plain-text projection.
func (t NodeType) Block() bool {
	switch t {
	case TypeParagraph, TypeHeading, TypeBlockquote, TypeBulletList, TypeOrderedList, TypeListItem:
		return true
	}
	return false
}

// Node is one element of a content tree: a Text leaf or a Container.
type Node interface{ node() }

// Text is a leaf holding a string payload and its formatting marks.
type Text struct {
	Text  string
	Marks []Mark
}

func (Text) node() {}

// Container holds a type tag and an ordered child sequence (possibly empty).
type Container struct {
	Type     NodeType
	Children []Node
}

func (Container) node() {}

// Fragment is an ordered sequence of top-level content nodes.
type Fragment []Node

// IsBreak reports whether n is a content-free line/paragraph boundary: a hard
// break, or an empty container of a block type (an empty paragraph).
func IsBreak(n Node) bool {
	c, ok := n.(Container)
	if !ok {
		return false
	}
	if c.Type == TypeHardBreak {
		return true
	}
	return c.Type.Block() && len(c.Children) == 0
}
