package catalog

import (
	"fmt"
	"io"
)

// WriteMarkdown renders the catalog as a markdown attribute reference.
// Output is deterministic: kinds sort alphabetically and attribute lists
// render in the engine's insertion order.
func WriteMarkdown(w io.Writer, c *Catalog) error {
	if _, err := fmt.Fprintf(w, "# Widget attribute reference\n"); err != nil {
		return err
	}
	for _, e := range c.All() {
		if _, err := fmt.Fprintf(w, "\n## %s\n\n%s\n", e.Kind, e.Summary); err != nil {
			return err
		}
		if e.Surfaces == nil {
			continue
		}
		for _, s := range e.Surfaces(e.Build()) {
			if _, err := fmt.Fprintf(w, "\n### %s\n\n", s.Name); err != nil {
				return err
			}
			if len(s.Attrs) == 0 {
				if _, err := fmt.Fprintf(w, "(no attributes in the default state)\n"); err != nil {
					return err
				}
				continue
			}
			if _, err := fmt.Fprintf(w, "| attribute | default |\n| --- | --- |\n"); err != nil {
				return err
			}
			for _, at := range s.Attrs {
				if _, err := fmt.Fprintf(w, "| `%s` | `%q` |\n", at.Key, at.Value); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
