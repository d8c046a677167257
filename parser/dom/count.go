package dom

// Counts tallies the node kinds of a forest.
type Counts struct {
	Elements int
	Texts    int
	Comments int
}

// CountNodes counts every node in the forest, descendants included.
func CountNodes(nodes NodeList) Counts {
	var c Counts
	Walk(nodes, func(n *Node) {
		switch n.NodeType {
		case ElementNode:
			c.Elements++
		case TextNode:
			c.Texts++
		case CommentNode:
			c.Comments++
		}
	})
	return c
}
