package el2md

import (
	"strings"

	"github.com/goccy/go-yaml"
)

// renderFrontMatter emits the metadata as a fenced YAML block. It reports
// whether anything was written; a fully empty Metadata produces no block.
func (c *Converter) renderFrontMatter(e *emitter, meta Metadata) bool {
	if meta == (Metadata{}) {
		return false
	}

	out, err := yaml.Marshal(meta)
	if err != nil {
		e.err = err

		return false
	}

	e.line("---")

	for _, l := range strings.Split(strings.TrimRight(string(out), "\n"), "\n") {
		e.line(l)
	}

	e.line("---")

	return true
}
