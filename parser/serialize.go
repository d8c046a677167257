package parser

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/Lampese/html-parser/parser/dom"
)

// SerializeForest renders a forest back to HTML text. Text content is
// escaped; comments keep their content verbatim between fresh
// delimiters; childless elements render self-closing. The result is a
// debug and export aid, not a byte round trip of the original input:
// attributes were never kept and suppressed whitespace never comes
// back.
func SerializeForest(nodes dom.NodeList) string {
	var b strings.Builder
	for _, node := range nodes {
		serializeNode(&b, node)
	}
	return b.String()
}

func serializeNode(b *strings.Builder, n *dom.Node) {
	switch n.NodeType {
	case dom.ElementNode:
		if len(n.Children) == 0 {
			b.WriteString("<" + n.TagName + "/>")
			return
		}
		b.WriteString("<" + n.TagName + ">")
		for _, child := range n.Children {
			serializeNode(b, child)
		}
		b.WriteString("</" + n.TagName + ">")
	case dom.TextNode:
		b.WriteString(html.EscapeString(n.Data))
	case dom.CommentNode:
		b.WriteString("<!--" + n.Data + "-->")
	}
}
