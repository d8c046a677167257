package dom

import "strings"

type NodeType uint16

const (
	ElementNode NodeType = iota + 1
	TextNode
	CommentNode
)

func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	case CommentNode:
		return "comment"
	}
	return "unknown"
}

// NodeList is an ordered sequence of nodes. A parsed document is a
// NodeList of its top-level nodes (a forest, not a single root).
type NodeList []*Node

// Node is one vertex of a parsed HTML forest. Exactly one of TagName
// and Data is meaningful, selected by NodeType: elements carry a tag
// name and children, text and comment nodes carry content and no
// children. Nodes are not mutated after construction and each child
// belongs to exactly one parent.
type Node struct {
	NodeType NodeType
	TagName  string
	Data     string
	Children NodeList
}

// NewElement returns an element node with the given tag and children.
// A nil child list becomes an empty one, so self-closing tags and
// childless pairs produce the same shape.
func NewElement(tag string, children NodeList) *Node {
	if children == nil {
		children = NodeList{}
	}
	return &Node{
		NodeType: ElementNode,
		TagName:  tag,
		Children: children,
	}
}

// NewText returns a text node with its Data section filled.
func NewText(data string) *Node {
	return &Node{
		NodeType: TextNode,
		Data:     data,
	}
}

// NewComment returns a comment node with its Data section filled.
func NewComment(data string) *Node {
	return &Node{
		NodeType: CommentNode,
		Data:     data,
	}
}

// marker renders the single-line form of a node without its children:
// elements as <tag>, text quoted, comments with their delimiters.
func (n *Node) marker() string {
	switch n.NodeType {
	case ElementNode:
		return "<" + n.TagName + ">"
	case TextNode:
		return "\"" + n.Data + "\""
	case CommentNode:
		return "<!-- " + n.Data + " -->"
	}
	return ""
}

func (n *Node) serialize(indent int) string {
	ser := "| " + strings.Repeat("  ", indent) + n.marker() + "\n"
	for _, child := range n.Children {
		ser += child.serialize(indent + 1)
	}
	return ser
}

// String renders the subtree rooted at n, one node per line, with a
// two-space step per nesting level.
func (n *Node) String() string {
	return strings.TrimRight(n.serialize(0), "\n")
}

// String renders every tree in the forest in document order.
func (l NodeList) String() string {
	ser := ""
	for _, node := range l {
		ser += node.serialize(0)
	}
	return strings.TrimRight(ser, "\n")
}
