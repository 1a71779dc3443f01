// Command tacitdoc emits the widget attribute reference as markdown.
//
// The reference is generated from the built-in catalog, so it always
// matches what the engine actually emits:
//
//	tacitdoc                 # write to stdout
//	tacitdoc -o WIDGETS.md   # write to a file
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/tacit-ui/tacit/lib/catalog"
)

func main() {
	out := flag.String("o", "", "output file (default stdout)")
	flag.Parse()

	var w io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	if err := catalog.WriteMarkdown(w, catalog.Builtin()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
