package richtext

import (
	"encoding/json"
	"fmt"
)

// wireNode is the editor-interchange shape for one node. Type "text" marks a
// leaf; every other type is a container.
type wireNode struct {
	Type     string     `json:"type"`
	Text     string     `json:"text,omitempty"`
	Marks    []Mark     `json:"marks,omitempty"`
	Children []wireNode `json:"children,omitempty"`
}

const wireText = "text"

// MarshalJSON encodes f as an array of editor-interchange nodes.
func (f Fragment) MarshalJSON() ([]byte, error) {
	return json.Marshal(toWire(f))
}

// UnmarshalJSON decodes an array of editor-interchange nodes, as delivered by
// a clipboard or drag payload. Unknown container types are preserved.
func (f *Fragment) UnmarshalJSON(data []byte) error {
	var nodes []wireNode
	if err := json.Unmarshal(data, &nodes); err != nil {
		return fmt.Errorf("richtext: decode fragment: %w", err)
	}
	*f = fromWire(nodes)
	return nil
}

func toWire(nodes []Node) []wireNode {
	out := make([]wireNode, 0, len(nodes))
	for _, n := range nodes {
		switch n := n.(type) {
		case Text:
			out = append(out, wireNode{Type: wireText, Text: n.Text, Marks: n.Marks})
		case Container:
			out = append(out, wireNode{Type: string(n.Type), Children: toWire(n.Children)})
		}
	}
	return out
}

func fromWire(nodes []wireNode) Fragment {
	if len(nodes) == 0 {
		return nil
	}
	out := make(Fragment, 0, len(nodes))
	for _, n := range nodes {
		if n.Type == wireText {
			out = append(out, Text{Text: n.Text, Marks: n.Marks})
			continue
		}
		out = append(out, Container{Type: NodeType(n.Type), Children: fromWire(n.Children)})
	}
	return out
}
