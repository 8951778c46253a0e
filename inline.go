package el2md

import "regexp"

// Quoted spans use the Emacs Lisp docstring convention of an opening
// backtick and a closing single quote. The symmetric variant also accepts a
// closing backtick, at the cost of misreading literal backtick pairs.
var (
	asymmetricSpanRE = regexp.MustCompile("`([^`']+)'")
	symmetricSpanRE  = regexp.MustCompile("`([^`']+)['`]")

	// Modifier-prefixed key chords: C-x, M-RET, S-<tab>, and so on.
	keyChordRE = regexp.MustCompile(`^[CMS]-.`)
)

// translateInline rewrites every quoted span in a single line of text. Key
// names and key chords become <kbd> tags; everything else becomes an inline
// code span with symmetric backticks. Translation is purely local to the
// line and knows nothing about block kinds.
func (c *Converter) translateInline(line string) string {
	re := asymmetricSpanRE
	if c.symmetricQuotes {
		re = symmetricSpanRE
	}

	return re.ReplaceAllStringFunc(line, func(span string) string {
		inner := span[1 : len(span)-1]
		if c.isKeyName(inner) {
			return "<kbd>" + inner + "</kbd>"
		}

		return "`" + inner + "`"
	})
}

// isKeyName reports whether s is a keyboard chord or a recognized key name.
func (c *Converter) isKeyName(s string) bool {
	if keyChordRE.MatchString(s) {
		return true
	}

	_, ok := c.keyNames[s]

	return ok
}
