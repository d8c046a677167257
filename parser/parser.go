package parser

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Lampese/html-parser/parser/dom"
)

var log = logrus.StandardLogger()

// Parser pairs the tokenizer with the tree constructor.
type Parser struct {
	Tokenizer       *HTMLTokenizer
	TreeConstructor *HTMLTreeConstructor
}

// NewParser creates a parser over an HTML string.
func NewParser(input string) *Parser {
	return &Parser{
		Tokenizer: NewHTMLTokenizer(input),
	}
}

// Parse runs both stages and returns the forest of top-level nodes.
func (p *Parser) Parse() dom.NodeList {
	tokens := p.Tokenizer.Tokenize()
	p.TreeConstructor = NewHTMLTreeConstructor(tokens)
	return p.TreeConstructor.ConstructForest()
}

// Parse tokenizes input and constructs its forest in one call. It is
// total: any input, malformed markup included, produces a forest.
func Parse(input string) dom.NodeList {
	return NewParser(input).Parse()
}

// ParseReader reads r to the end and parses the contents. Reading is
// the only way this package can fail; parsing itself never does.
func ParseReader(r io.Reader) (dom.NodeList, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read html input")
	}
	return Parse(string(data)), nil
}
