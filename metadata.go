package el2md

import "regexp"

// Metadata holds the optional fields extracted from the header region of a
// source file. Absent fields are empty strings and are simply omitted from
// the output.
type Metadata struct {
	Title       string `yaml:"title,omitempty"`
	PackageName string `yaml:"package,omitempty"`
	Author      string `yaml:"author,omitempty"`
	Version     string `yaml:"version,omitempty"`
	URL         string `yaml:"url,omitempty"`
}

var (
	// Title line: ";;; foo.el --- A short description", optionally ending
	// with a lexical-mode annotation like "-*- lexical-binding: t -*-".
	titleRE    = regexp.MustCompile(`^;;;\s+(\S+)\.el\s+---\s+(.*)$`)
	modeLineRE = regexp.MustCompile(`\s*-\*-.*-\*-\s*$`)

	headerFieldREs = []struct {
		field string
		re    *regexp.Regexp
	}{
		{"Author", regexp.MustCompile(`^;+\s+Author:\s*(.+?)\s*$`)},
		{"Version", regexp.MustCompile(`^;+\s+Version:\s*(.+?)\s*$`)},
		{"URL", regexp.MustCompile(`^;+\s+URL:\s*(.+?)\s*$`)},
	}
)

// extractTitle matches the first line against the title pattern. On a match
// the package name and title are recorded and the cursor advances one line;
// on no match nothing is recorded and the cursor does not move.
func extractTitle(c *cursor, meta *Metadata) {
	m := titleRE.FindStringSubmatch(c.line())
	if m == nil {
		return
	}

	meta.PackageName = m[1]
	meta.Title = modeLineRE.ReplaceAllString(m[2], "")
	c.advance(1)
}

// extractDeclaredFields scans the header region (every line before limit,
// the position of the Commentary marker) for the Author, Version, and URL
// declarations, in that fixed order. Each field is searched on a throwaway
// cursor copy so the scan never consumes lines needed by later stages.
// Fields not found are left empty.
func extractDeclaredFields(c cursor, limit int, meta *Metadata) {
	for _, f := range headerFieldREs {
		look := c
		for !look.atEnd() && look.pos < limit {
			if m := f.re.FindStringSubmatch(look.line()); m != nil {
				switch f.field {
				case "Author":
					meta.Author = m[1]
				case "Version":
					meta.Version = m[1]
				case "URL":
					meta.URL = m[1]
				}

				break
			}

			look.advance(1)
		}
	}
}
