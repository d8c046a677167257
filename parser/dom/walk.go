package dom

import "strings"

// Walk calls fn for every node in the forest, depth-first pre-order:
// each node before its children, siblings in document order.
func Walk(nodes NodeList, fn func(*Node)) {
	for _, node := range nodes {
		fn(node)
		Walk(node.Children, fn)
	}
}

// Text returns the content of every text node at or below n,
// concatenated in document order.
func (n *Node) Text() string {
	var b strings.Builder
	Walk(NodeList{n}, func(m *Node) {
		if m.NodeType == TextNode {
			b.WriteString(m.Data)
		}
	})
	return b.String()
}

// FindAll returns every element in the forest whose tag name equals
// tag. The comparison is case-sensitive, like the parser's own tag
// matching.
func FindAll(nodes NodeList, tag string) NodeList {
	var found NodeList
	Walk(nodes, func(n *Node) {
		if n.NodeType == ElementNode && n.TagName == tag {
			found = append(found, n)
		}
	})
	return found
}
