package parser

import (
	"github.com/sirupsen/logrus"
)

// HTMLTokenizer holds the scanning state of one tokenization pass:
// the input, the current position, and the tokens emitted so far.
// Positions are byte offsets; every delimiter the scanner inspects is
// ASCII, so multi-byte runes pass through text, names, and comment
// content untouched.
type HTMLTokenizer struct {
	input         string
	pos           int
	length        int
	emittedTokens []Token
	tokenBuilder  *TokenBuilder
}

// NewHTMLTokenizer creates a tokenizer that can be used to process an
// HTML string.
func NewHTMLTokenizer(input string) *HTMLTokenizer {
	return &HTMLTokenizer{
		input:         input,
		length:        len(input),
		emittedTokens: []Token{},
		tokenBuilder:  &TokenBuilder{},
	}
}

// Tokenize is a convenience that runs a fresh tokenizer over input.
func Tokenize(input string) []Token {
	return NewHTMLTokenizer(input).Tokenize()
}

// Tokenize scans the whole input and returns the tokens in the order
// they were emitted. It never fails: unterminated constructs consume
// to end-of-input and emit whatever was scanned. Every branch moves
// the position forward, so the scan always terminates.
func (p *HTMLTokenizer) Tokenize() []Token {
	for p.pos < p.length {
		p.skipWhitespace()
		if p.pos >= p.length {
			break
		}
		if p.input[p.pos] == '<' {
			if p.hasCommentOpen() {
				p.scanComment()
			} else {
				p.scanTag()
			}
			continue
		}
		p.scanText()
	}
	return p.emittedTokens
}

func (p *HTMLTokenizer) skipWhitespace() {
	for p.pos < p.length && isWhitespace(p.input[p.pos]) {
		p.pos++
	}
}

// hasCommentOpen reports whether the scanner sits on "<!--". The
// lookahead reads fixed offsets behind a bounds check rather than a
// prefix match.
func (p *HTMLTokenizer) hasCommentOpen() bool {
	return p.pos+3 < p.length &&
		p.input[p.pos+1] == '!' &&
		p.input[p.pos+2] == '-' &&
		p.input[p.pos+3] == '-'
}

// scanComment consumes "<!--" and accumulates content until the
// three-byte lookahead sees "-->". Without a terminator the scan
// stops at end-of-input and emits the partial content; the loop's
// bounds check keeps the final two bytes of input out of it.
func (p *HTMLTokenizer) scanComment() {
	p.pos += 4
	p.tokenBuilder.Reset()
	for p.pos+2 < p.length {
		if p.input[p.pos] == '-' && p.input[p.pos+1] == '-' && p.input[p.pos+2] == '>' {
			p.pos += 3
			p.emit(p.tokenBuilder.CommentToken())
			return
		}
		p.tokenBuilder.WriteData(p.input[p.pos])
		p.pos++
	}
	p.pos = p.length
	p.emit(p.tokenBuilder.CommentToken())
}

// scanTag consumes one tag: the "<", an optional "/", the name, and
// everything up to and including the closing ">". Bytes between the
// name and ">" are attributes and are discarded. The token kind comes
// last: a '/' two bytes back from the stop position marks the tag
// self-closing whatever else was scanned, then the end-tag flag
// decides between end and start.
func (p *HTMLTokenizer) scanTag() {
	p.pos++
	p.tokenBuilder.Reset()
	if p.pos < p.length && p.input[p.pos] == '/' {
		p.tokenBuilder.EnableEndTag()
		p.pos++
	}
	for p.pos < p.length && !isNameTerminator(p.input[p.pos]) {
		p.tokenBuilder.WriteName(p.input[p.pos])
		p.pos++
	}
	for p.pos < p.length {
		c := p.input[p.pos]
		p.pos++
		if c == '>' {
			break
		}
	}
	if p.pos > 1 && p.input[p.pos-2] == '/' {
		p.emit(p.tokenBuilder.SelfClosingTagToken())
		return
	}
	if p.tokenBuilder.endTag {
		p.emit(p.tokenBuilder.EndTagToken())
		return
	}
	p.emit(p.tokenBuilder.StartTagToken())
}

// scanText consumes a run of characters up to the next "<" or
// end-of-input. Runs begin on a non-whitespace byte, but whitespace
// inside and at the end of the run is kept.
func (p *HTMLTokenizer) scanText() {
	p.tokenBuilder.Reset()
	for p.pos < p.length && p.input[p.pos] != '<' {
		p.tokenBuilder.WriteData(p.input[p.pos])
		p.pos++
	}
	tok := p.tokenBuilder.TextToken()
	if tok.Data == "" {
		return
	}
	p.emit(tok)
}

// emit records tokens in the order they finish scanning.
func (p *HTMLTokenizer) emit(tokens ...Token) {
	if log.IsLevelEnabled(logrus.TraceLevel) {
		for _, t := range tokens {
			log.WithFields(logrus.Fields{
				"type": t.TokenType,
				"tag":  t.TagName,
				"data": t.Data,
			}).Trace("emit token")
		}
	}
	p.emittedTokens = append(p.emittedTokens, tokens...)
}

func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

func isNameTerminator(c byte) bool {
	switch c {
	case '>', '<', '/', ' ', '\t', '\n', '\r':
		return true
	}
	return false
}
