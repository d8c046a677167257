// Package parser converts raw HTML text into a forest of nodes in two
// stages. A positional tokenizer scans the input byte by byte and
// emits start tags, end tags, self-closing tags, text runs, and
// comments; a recursive descent tree constructor then nests the
// tokens into elements by case-sensitive tag-name matching. Both
// stages are total: no input, however malformed, makes them fail.
//
// The scanner is deliberately small. Attributes are scanned only to
// find the closing '>' and are never stored. No entity decoding, no
// DOCTYPE or CDATA handling, and no raw-text modes exist; <!DOCTYPE
// html> simply tokenizes as a start tag named "!DOCTYPE". Unclosed
// tags and comments consume to end-of-input and emit whatever was
// scanned.
//
// Behaviors worth knowing before relying on the output:
//
//   - A tag is self-closing when the byte two positions before the
//     end of its scan is '/'. An unquoted attribute value ending in
//     '/' directly before '>' therefore reads as self-closing, as in
//     <a href=x/>.
//
//   - A comment that never sees "-->" runs to end-of-input, and the
//     scan loop's bounds check keeps the last two bytes of the input
//     out of its content.
//
//   - During tree construction only the exact strings "", " ", "\n",
//     and "\t" are dropped as whitespace-only text. Two spaces, or a
//     space and a newline, become real text nodes.
//
//   - An end tag with no open element to match is dropped when it
//     appears inside an element, and ends the forest when it appears
//     at the top level.
//
//   - Tree construction recurses once per nesting level, so document
//     depth is bounded by the stack rather than by an explicit limit.
package parser
