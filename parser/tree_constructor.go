package parser

import (
	"github.com/sirupsen/logrus"

	"github.com/Lampese/html-parser/parser/dom"
)

// HTMLTreeConstructor folds a token sequence into a forest of nodes.
// It walks the tokens left to right; the cursor is an index passed
// into and returned from every parsing call.
type HTMLTreeConstructor struct {
	tokens []Token
}

// NewHTMLTreeConstructor creates an HTMLTreeConstructor over tokens.
func NewHTMLTreeConstructor(tokens []Token) *HTMLTreeConstructor {
	return &HTMLTreeConstructor{tokens: tokens}
}

// BuildForest is a convenience that constructs the forest for tokens.
func BuildForest(tokens []Token) dom.NodeList {
	return NewHTMLTreeConstructor(tokens).ConstructForest()
}

// ConstructForest parses the top-level node list and returns it. Like
// tokenization it never fails, whatever the token sequence: stray and
// missing end tags degrade by the rules below rather than erroring.
func (c *HTMLTreeConstructor) ConstructForest() dom.NodeList {
	nodes, _ := c.parseNodeList(0)
	return nodes
}

// parseNodeList parses sibling nodes starting at cursor until the
// tokens run out or an end tag appears. The end tag is not consumed;
// at the top level it ends the forest and any tokens after it are
// never reached.
func (c *HTMLTreeConstructor) parseNodeList(cursor int) (dom.NodeList, int) {
	nodes := dom.NodeList{}
	for cursor < len(c.tokens) {
		if c.tokens[cursor].TokenType == EndTagToken {
			return nodes, cursor
		}
		var node *dom.Node
		node, cursor = c.parseNode(cursor)
		if node != nil {
			nodes = append(nodes, node)
		}
	}
	return nodes, cursor
}

// parseChildren parses child nodes for an element with tag parentTag.
// An end tag matching parentTag is consumed and closes the element. A
// non-matching end tag is consumed and dropped, and the loop keeps
// collecting siblings. If the tokens run out first the element stays
// unclosed and absorbs everything scanned so far.
func (c *HTMLTreeConstructor) parseChildren(cursor int, parentTag string) (dom.NodeList, int) {
	children := dom.NodeList{}
	for cursor < len(c.tokens) {
		t := c.tokens[cursor]
		if t.TokenType == EndTagToken {
			cursor++
			if t.TagName == parentTag {
				return children, cursor
			}
			log.WithFields(logrus.Fields{
				"tag":    t.TagName,
				"parent": parentTag,
			}).Debug("drop stray end tag")
			continue
		}
		var node *dom.Node
		node, cursor = c.parseNode(cursor)
		if node != nil {
			children = append(children, node)
		}
	}
	log.WithField("tag", parentTag).Debug("unclosed element at end of tokens")
	return children, cursor
}

// parseNode parses the single node starting at cursor and returns it
// with the cursor after it. Start tags recurse for their children, so
// the call depth tracks the nesting depth of the document. Degenerate
// whitespace text produces no node.
func (c *HTMLTreeConstructor) parseNode(cursor int) (*dom.Node, int) {
	t := c.tokens[cursor]
	switch t.TokenType {
	case StartTagToken:
		children, next := c.parseChildren(cursor+1, t.TagName)
		return dom.NewElement(t.TagName, children), next
	case SelfClosingTagToken:
		return dom.NewElement(t.TagName, nil), cursor + 1
	case TextToken:
		if isBlankText(t.Data) {
			return nil, cursor + 1
		}
		return dom.NewText(t.Data), cursor + 1
	case CommentToken:
		return dom.NewComment(t.Data), cursor + 1
	}
	// End tags never get here; both callers take them first.
	return nil, cursor + 1
}

// isBlankText matches the exact strings dropped from the tree: empty,
// one space, one newline, one tab. Anything longer is a real text
// node, two spaces included.
func isBlankText(data string) bool {
	switch data {
	case "", " ", "\n", "\t":
		return true
	}
	return false
}
