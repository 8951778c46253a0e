package el2md

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Sentinel errors returned by the converter.
var (
	ErrInvalidOption = errors.New("invalid option")
	ErrReadInput     = errors.New("read input")
	ErrWriteOutput   = errors.New("write output")
	ErrHook          = errors.New("post-conversion hook")
)

// Hook is a post-conversion callback. Hooks receive the output sink after
// all emission has completed and run in registration order. A hook error
// aborts the remaining hooks and propagates to the caller wrapped in
// [ErrHook].
type Hook func(w io.Writer) error

// Converter turns the documentation comment block of an Emacs Lisp source
// file into Markdown. A Converter holds only configuration; every
// conversion is independent and a single Converter may be reused across
// files.
//
// Create instances with [NewConverter].
type Converter struct {
	keyNames        map[string]struct{}
	hooks           []Hook
	symmetricQuotes bool
	frontMatter     bool
	attribution     bool
}

// Option configures a Converter.
type Option func(*Converter)

// NewConverter creates a Converter with the given options.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		keyNames:    map[string]struct{}{"RET": {}, "TAB": {}},
		attribution: true,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithKeyNames adds names to the recognized key-name set used by inline
// translation. The defaults RET and TAB are always recognized.
func WithKeyNames(names ...string) Option {
	return func(c *Converter) {
		for _, name := range names {
			c.keyNames[name] = struct{}{}
		}
	}
}

// WithSymmetricQuotes controls whether `span` is treated the same as the
// asymmetric `span' convention. Off by default so that literal backtick
// pairs in code are not misread as quoted spans.
func WithSymmetricQuotes(enabled bool) Option {
	return func(c *Converter) {
		c.symmetricQuotes = enabled
	}
}

// WithFrontMatter controls emission of a YAML front matter block holding
// the extracted metadata, ahead of the title heading.
func WithFrontMatter(enabled bool) Option {
	return func(c *Converter) {
		c.frontMatter = enabled
	}
}

// WithAttribution controls the trailing horizontal rule and attribution
// line. On by default; disable it when embedding the output in a larger
// document.
func WithAttribution(enabled bool) Option {
	return func(c *Converter) {
		c.attribution = enabled
	}
}

// WithHooks appends post-conversion hooks, invoked in order with the
// output sink after emission completes.
func WithHooks(hooks ...Hook) Option {
	return func(c *Converter) {
		c.hooks = append(c.hooks, hooks...)
	}
}

// Convert reads an Emacs Lisp source file from src and writes its comment
// block as Markdown to w. name identifies the source file and is used only
// in the attribution line; it may be empty.
//
// Conversion is best-effort: a missing title or header field is omitted
// from the output, and a file without a Commentary marker produces an
// empty body. The only error conditions are sink write failures, wrapped
// in [ErrWriteOutput], and hook failures, wrapped in [ErrHook].
func (c *Converter) Convert(w io.Writer, name string, src []byte) error {
	cur := newCursor(splitLines(src))

	var meta Metadata

	extractTitle(&cur, &meta)

	markerPos, found := findCommentary(cur)

	var blocks []block

	if found {
		extractDeclaredFields(cur, markerPos, &meta)

		cur.advance(markerPos + 1 - cur.pos)
		blocks = segmentBody(&cur)
	} else {
		slog.Debug("no Commentary marker found, emitting empty body",
			slog.String("file", name))
	}

	e := &emitter{w: w}
	c.render(e, name, meta, found, blocks)

	if e.err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, e.err)
	}

	for _, hook := range c.hooks {
		err := hook(w)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrHook, err)
		}
	}

	return nil
}

// ConvertString is [Converter.Convert] returning the Markdown as a string.
func (c *Converter) ConvertString(name string, src []byte) (string, error) {
	var sb strings.Builder

	err := c.Convert(&sb, name, src)
	if err != nil {
		return "", err
	}

	return sb.String(), nil
}

// findCommentary locates the Commentary marker at or after the cursor
// without consuming anything. It returns the marker's line index and
// whether it was found.
func findCommentary(c cursor) (int, bool) {
	for !c.atEnd() {
		if c.peekMatches(commentaryMarkerRE) {
			return c.pos, true
		}

		c.advance(1)
	}

	return 0, false
}
