package dom

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// PrintTree writes the forest to w depth-first in document order, one
// node per line. Each line is indented by the node's depth: children
// print two spaces deeper than their parent, starting from indent.
func PrintTree(w io.Writer, nodes NodeList, indent int) error {
	for _, node := range nodes {
		if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", indent), node.marker()); err != nil {
			return errors.Wrap(err, "print node")
		}
		if err := PrintTree(w, node.Children, indent+2); err != nil {
			return err
		}
	}
	return nil
}
