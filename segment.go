package el2md

import (
	"regexp"
	"strings"
)

// Line patterns for the Emacs Lisp comment conventions. The comment prefix
// is one or more semicolons followed by at most one space; three semicolons
// introduce top-level declaration markers like ";;; Commentary:".
var (
	commentaryMarkerRE = regexp.MustCompile(`^;;;\s+Commentary:\s*$`)
	codeMarkerRE       = regexp.MustCompile(`^;;;\s+Code:\s*$`)
	licenseMarkerRE    = regexp.MustCompile(`^;;+\s+License:\s*$`)
	topLevelMarkerRE   = regexp.MustCompile(`^;;;`)

	// A blank comment line is semicolons (possibly none, for a truly empty
	// line) followed only by whitespace and/or a folding marker token.
	blankCommentRE = regexp.MustCompile(`^;*[ \t]*(?:\f|\{\{\{|\}\}\})?[ \t]*$`)

	commentPrefixRE = regexp.MustCompile(`^;+ ?`)
	bulletRE        = regexp.MustCompile(`^[-*][ \t]`)
	codeIndentRE    = regexp.MustCompile(`^ {4,}`)
)

// blockKind classifies a span of consecutive comment lines.
type blockKind int

const (
	kindParagraph blockKind = iota
	kindHeading
	kindBulletList
	kindCode
)

// block is a classified span of comment lines. Lines hold the raw text with
// the comment prefix stripped; inline translation happens at emission.
type block struct {
	lines []string
	kind  blockKind
	level int // heading level, 2 or 3; zero otherwise
}

// stripPrefix removes the comment prefix (semicolons and at most one space)
// from a line. Indentation beyond that single space is preserved so code
// blocks keep their relative layout.
func stripPrefix(line string) string {
	return commentPrefixRE.ReplaceAllString(line, "")
}

// segmentBody partitions the Commentary body into classified blocks,
// stopping at the Code marker or end of input. The cursor should be
// positioned on the first line after the Commentary marker.
func segmentBody(c *cursor) []block {
	var (
		blocks     []block
		sawHeading bool
	)

	for {
		c.skipWhile(blankCommentRE)

		if c.atEnd() || c.peekMatches(codeMarkerRE) {
			break
		}

		if c.peekMatches(licenseMarkerRE) {
			skipLicense(c)

			continue
		}

		b := scanBlock(c)
		if b.kind == kindHeading {
			if sawHeading {
				b.level = 3
			} else {
				b.level = 2
				sawHeading = true
			}
		}

		blocks = append(blocks, b)
	}

	return blocks
}

// skipLicense advances past a License sub-block without classifying its
// contents. The block ends at end of input or at the next line starting
// with the top-level declaration marker.
func skipLicense(c *cursor) {
	c.advance(1)

	for !c.atEnd() && !c.peekMatches(topLevelMarkerRE) {
		c.advance(1)
	}
}

// scanBlock classifies the block starting at the cursor and consumes its
// lines. The cursor must be on a non-blank comment line.
func scanBlock(c *cursor) block {
	if isHeading(*c) {
		text := stripPrefix(c.line())
		c.advance(1)

		return block{kind: kindHeading, lines: []string{text}}
	}

	content := stripPrefix(c.line())

	var kind blockKind

	switch {
	case strings.HasPrefix(content, "(") || codeIndentRE.MatchString(content):
		kind = kindCode
	case bulletRE.MatchString(content):
		kind = kindBulletList
	default:
		kind = kindParagraph
	}

	b := block{kind: kind, lines: []string{content}}
	c.advance(1)

	// Consume every following comment line until a blank line, a line
	// lacking the prefix, or a section marker.
	for !c.atEnd() &&
		!c.peekMatches(blankCommentRE) &&
		!c.peekMatches(codeMarkerRE) &&
		strings.HasPrefix(c.line(), ";") {
		b.lines = append(b.lines, stripPrefix(c.line()))
		c.advance(1)
	}

	return b
}

// isHeading reports whether the line at the cursor is a heading: a single
// colon-terminated line followed by a blank line, where the content after
// the blank run is not a bullet item, a parenthesis-led line, or indented
// code. The lookahead distinguishes headings from labels that introduce
// lists or code examples.
func isHeading(c cursor) bool {
	content := strings.TrimRight(stripPrefix(c.line()), " \t")
	if !strings.HasSuffix(content, ":") {
		return false
	}

	look := c
	look.advance(1)

	if !look.atEnd() && !look.peekMatches(blankCommentRE) {
		return false
	}

	look.skipWhile(blankCommentRE)

	if look.atEnd() || look.peekMatches(codeMarkerRE) {
		return true
	}

	next := stripPrefix(look.line())

	return !bulletRE.MatchString(next) &&
		!strings.HasPrefix(next, "(") &&
		!codeIndentRE.MatchString(next)
}

// stripHeadingText normalizes heading text for emission: surrounding
// whitespace, the trailing colon, and any trailing periods are removed.
// The result is stable under repeated application.
func stripHeadingText(s string) string {
	return strings.TrimSpace(strings.TrimRight(strings.TrimSpace(s), ":."))
}
