package parser

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/Lampese/html-parser/parser/dom"
)

type treeTestCase struct {
	name     string
	in       string
	expected dom.NodeList
}

var treeTests = []treeTestCase{
	{
		name: "nested elements",
		in:   "<div><p>Hello!</p><span>World!</span></div>",
		expected: dom.NodeList{
			dom.NewElement("div", dom.NodeList{
				dom.NewElement("p", dom.NodeList{dom.NewText("Hello!")}),
				dom.NewElement("span", dom.NodeList{dom.NewText("World!")}),
			}),
		},
	},
	{
		name:     "self closing tags have no children",
		in:       `<img src="test.jpg"/><br/>`,
		expected: dom.NodeList{dom.NewElement("img", nil), dom.NewElement("br", nil)},
	},
	{
		name:     "comment becomes a comment node",
		in:       "<!-- comment -->",
		expected: dom.NodeList{dom.NewComment(" comment ")},
	},
	{
		name:     "stray end tag inside element is dropped",
		in:       "<div></span></div>",
		expected: dom.NodeList{dom.NewElement("div", nil)},
	},
	{
		name:     "stray end tag at top level ends the forest",
		in:       "</div><p>x</p>",
		expected: dom.NodeList{},
	},
	{
		name: "unclosed element absorbs the rest",
		in:   "<div><p>x",
		expected: dom.NodeList{
			dom.NewElement("div", dom.NodeList{
				dom.NewElement("p", dom.NodeList{dom.NewText("x")}),
			}),
		},
	},
	{
		name:     "tag matching is case sensitive",
		in:       "<div></DIV></div>",
		expected: dom.NodeList{dom.NewElement("div", nil)},
	},
	{
		name: "text and elements interleave at top level",
		in:   "a<b>c</b>d",
		expected: dom.NodeList{
			dom.NewText("a"),
			dom.NewElement("b", dom.NodeList{dom.NewText("c")}),
			dom.NewText("d"),
		},
	},
	{
		name:     "pure text input",
		in:       "just text",
		expected: dom.NodeList{dom.NewText("just text")},
	},
	{
		name: "indentation between tags leaves no text nodes",
		in:   "<ul>\n  <li>one</li>\n  <li>two</li>\n</ul>",
		expected: dom.NodeList{
			dom.NewElement("ul", dom.NodeList{
				dom.NewElement("li", dom.NodeList{dom.NewText("one")}),
				dom.NewElement("li", dom.NodeList{dom.NewText("two")}),
			}),
		},
	},
}

func TestConstructForest(t *testing.T) {
	for _, test := range treeTests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got := BuildForest(Tokenize(test.in))
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Errorf("forest for %q mismatch (-want +got):\n%s", test.in, diff)
			}
		})
	}
}

type tokenSequenceTestCase struct {
	name     string
	tokens   []Token
	expected dom.NodeList
}

// These sequences include shapes the tokenizer itself never emits;
// the constructor has to take any of them without failing.
var tokenSequenceTests = []tokenSequenceTestCase{
	{
		name:     "empty text dropped",
		tokens:   []Token{text("")},
		expected: dom.NodeList{},
	},
	{
		name:     "single space dropped",
		tokens:   []Token{text(" ")},
		expected: dom.NodeList{},
	},
	{
		name:     "single newline dropped",
		tokens:   []Token{text("\n")},
		expected: dom.NodeList{},
	},
	{
		name:     "single tab dropped",
		tokens:   []Token{text("\t")},
		expected: dom.NodeList{},
	},
	{
		name:     "two spaces kept",
		tokens:   []Token{text("  ")},
		expected: dom.NodeList{dom.NewText("  ")},
	},
	{
		name:     "space and newline kept",
		tokens:   []Token{text(" \n")},
		expected: dom.NodeList{dom.NewText(" \n")},
	},
	{
		name:     "carriage return kept",
		tokens:   []Token{text("\r")},
		expected: dom.NodeList{dom.NewText("\r")},
	},
	{
		name:     "blank text inside element dropped",
		tokens:   []Token{startTag("p"), text(" "), endTag("p")},
		expected: dom.NodeList{dom.NewElement("p", nil)},
	},
	{
		name:     "consecutive stray end tags",
		tokens:   []Token{startTag("div"), endTag("span"), endTag("em"), endTag("div")},
		expected: dom.NodeList{dom.NewElement("div", nil)},
	},
	{
		name:     "end tags only",
		tokens:   []Token{endTag("a"), endTag("b")},
		expected: dom.NodeList{},
	},
	{
		name:     "no tokens",
		tokens:   []Token{},
		expected: dom.NodeList{},
	},
}

func TestBuildForestTokenSequences(t *testing.T) {
	for _, test := range tokenSequenceTests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got := BuildForest(test.tokens)
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Errorf("forest mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildForestDeepNesting(t *testing.T) {
	const depth = 500
	in := strings.Repeat("<d>", depth) + "x" + strings.Repeat("</d>", depth)
	forest := BuildForest(Tokenize(in))
	counts := dom.CountNodes(forest)
	assert.Equal(t, depth, counts.Elements)
	assert.Equal(t, 1, counts.Texts)
}
