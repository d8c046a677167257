package parser

import "strings"

type TokenType uint

const (
	// TextToken is a run of characters outside any tag.
	TextToken TokenType = iota
	// StartTagToken looks like <a>.
	StartTagToken
	// EndTagToken looks like </a>.
	EndTagToken
	// SelfClosingTagToken looks like <br/>.
	SelfClosingTagToken
	// CommentToken holds the text between <!-- and -->.
	CommentToken
)

func (t TokenType) String() string {
	switch t {
	case TextToken:
		return "Text"
	case StartTagToken:
		return "StartTag"
	case EndTagToken:
		return "EndTag"
	case SelfClosingTagToken:
		return "SelfClosingTag"
	case CommentToken:
		return "Comment"
	}
	return "Invalid"
}

// Token is a concrete token that is ready to be emitted. Tag tokens
// fill TagName; text and comment tokens fill Data. Attribute text is
// never stored anywhere.
type Token struct {
	TokenType TokenType
	TagName   string
	Data      string
}

// TokenBuilder accumulates the name and data sections of the token
// being scanned.
type TokenBuilder struct {
	name   strings.Builder
	data   strings.Builder
	endTag bool
}

// Reset clears the builders and flags for the next token.
func (t *TokenBuilder) Reset() {
	t.name.Reset()
	t.data.Reset()
	t.endTag = false
}

// EnableEndTag changes the end-tag flag to "set".
func (t *TokenBuilder) EnableEndTag() {
	t.endTag = true
}

// WriteName appends a byte to the current name value.
func (t *TokenBuilder) WriteName(c byte) {
	t.name.WriteByte(c)
}

// WriteData appends a byte to the current data section.
func (t *TokenBuilder) WriteData(c byte) {
	t.data.WriteByte(c)
}

// StartTagToken creates a start tag token from the builder contents.
func (t *TokenBuilder) StartTagToken() Token {
	return Token{
		TokenType: StartTagToken,
		TagName:   t.name.String(),
	}
}

// EndTagToken creates an end tag token from the builder contents.
func (t *TokenBuilder) EndTagToken() Token {
	return Token{
		TokenType: EndTagToken,
		TagName:   t.name.String(),
	}
}

// SelfClosingTagToken creates a self-closing tag token from the
// builder contents.
func (t *TokenBuilder) SelfClosingTagToken() Token {
	return Token{
		TokenType: SelfClosingTagToken,
		TagName:   t.name.String(),
	}
}

// TextToken creates a text token from the builder contents.
func (t *TokenBuilder) TextToken() Token {
	return Token{
		TokenType: TextToken,
		Data:      t.data.String(),
	}
}

// CommentToken creates a comment token from the builder contents.
func (t *TokenBuilder) CommentToken() Token {
	return Token{
		TokenType: CommentToken,
		Data:      t.data.String(),
	}
}
