package el2md

import (
	"regexp"
	"strings"
)

// cursor is a position within an immutable sequence of source lines.
//
// Lookahead copies the cursor by value; only the owning scan's copy ever
// advances, so no scan can disturb another's position.
type cursor struct {
	lines []string
	pos   int
}

func newCursor(lines []string) cursor {
	return cursor{lines: lines}
}

// atEnd reports whether the cursor has moved past the last line.
func (c cursor) atEnd() bool {
	return c.pos >= len(c.lines)
}

// line returns the current line, or "" at end of input.
func (c cursor) line() string {
	if c.atEnd() {
		return ""
	}

	return c.lines[c.pos]
}

// peekMatches reports whether the current line matches re without consuming
// it. It is always false at end of input.
func (c cursor) peekMatches(re *regexp.Regexp) bool {
	return !c.atEnd() && re.MatchString(c.line())
}

// advance moves the cursor forward n lines, clamping at end of input.
// Advancing past the end is a no-op beyond making atEnd report true.
func (c *cursor) advance(n int) {
	c.pos += n
	if c.pos > len(c.lines) {
		c.pos = len(c.lines)
	}
}

// skipWhile advances past every consecutive line matching re.
func (c *cursor) skipWhile(re *regexp.Regexp) {
	for c.peekMatches(re) {
		c.advance(1)
	}
}

// splitLines turns raw file content into the immutable line sequence a
// cursor walks. CRLF endings are normalized to bare lines.
func splitLines(src []byte) []string {
	lines := strings.Split(string(src), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}
