package main

import (
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/Lampese/html-parser/parser"
	"github.com/Lampese/html-parser/parser/dom"
)

const sampleDocument = `<!-- sample document --><div><p>Hello!</p><span>World!</span><img src="gopher.png"/></div>`

func main() {
	verbose := flag.Bool("v", false, "log every token and tree decision")
	serialize := flag.Bool("html", false, "re-serialize the forest as HTML instead of printing the tree")
	flag.Parse()

	if *verbose {
		logrus.SetLevel(logrus.TraceLevel)
	}

	input := sampleDocument
	if flag.NArg() > 0 {
		data, err := os.ReadFile(flag.Arg(0))
		if err != nil {
			logrus.WithError(err).Fatal("read input file")
		}
		input = string(data)
	}

	forest := parser.Parse(input)

	if *serialize {
		os.Stdout.WriteString(parser.SerializeForest(forest) + "\n")
	} else if err := dom.PrintTree(os.Stdout, forest, 0); err != nil {
		logrus.WithError(err).Fatal("print tree")
	}

	counts := dom.CountNodes(forest)
	logrus.WithFields(logrus.Fields{
		"elements": counts.Elements,
		"texts":    counts.Texts,
		"comments": counts.Comments,
	}).Info("parsed document")
}
