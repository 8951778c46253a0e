// Package el2md converts the structured documentation comment block of an
// Emacs Lisp source file into Markdown, suitable for use as a README.
//
// The converter is a best-effort heuristic, not a validating parser. It
// works line by line with local lookahead, and degraded inputs produce
// degraded-but-defined output rather than errors: a missing title line
// omits the level-1 heading, a malformed header field is simply absent,
// and a file without a ";;; Commentary:" marker produces an empty body.
//
// # Conversion Pipeline
//
// [Converter.Convert] processes a source file in four stages:
//
//  1. Extract metadata: the first line is matched against the
//     ";;; name.el --- title" pattern (any trailing -*- ... -*- mode
//     annotation is stripped from the title), and the header region
//     before the Commentary marker is scanned for Author, Version, and
//     URL declarations. Each field scan uses a throwaway cursor copy
//     bounded to the header region, so no scan consumes lines needed
//     later.
//
//  2. Segment the body: the region between ";;; Commentary:" and
//     ";;; Code:" (or end of input) is partitioned into blocks. A
//     colon-terminated line followed by a blank line is a heading,
//     unless the content after the blank run is a bullet item, a
//     parenthesis-led line, or indented code; that lookahead separates
//     real headings from labels that introduce lists or examples. A
//     block whose first line starts with an opening parenthesis or is
//     indented four or more columns is code; a block starting with a
//     "-" or "*" marker is a bullet list; everything else is a
//     paragraph. A ";; License:" sub-block is skipped verbatim.
//
//  3. Translate inline spans: every emitted text line has its quoted
//     spans rewritten. The Emacs docstring convention `span' becomes an
//     inline code span with symmetric backticks, while key chords
//     (C-x, M-RET, ...) and recognized key names (RET and TAB by
//     default, extendable with [WithKeyNames]) become <kbd> tags.
//     [WithSymmetricQuotes] also accepts `span` as a quoted span.
//
//  4. Emit Markdown: the level-1 title heading, the formal metadata
//     lines (each terminated with <br>), the classified blocks, and an
//     attribution trailer. Heading levels are positional: the first
//     heading in the body is level 2 and every later one level 3.
//     Exactly one blank line separates consecutive parts, except that
//     adjacent bullet-list blocks join with no blank between them.
//
// After emission the registered [Hook] callbacks run in order, each
// receiving the output sink. Hook errors propagate to the caller wrapped
// in [ErrHook].
//
// # Errors
//
// The package defines four sentinel errors for use with [errors.Is]:
//
//   - [ErrInvalidOption]: a configuration value is invalid, such as an
//     unusable key name in [Config.NewConverter].
//   - [ErrReadInput]: an I/O error occurred reading input.
//   - [ErrWriteOutput]: an I/O error occurred writing to the sink.
//   - [ErrHook]: a post-conversion hook failed.
//
// # Basic Usage
//
//	conv := el2md.NewConverter()
//	err := conv.Convert(os.Stdout, "foo.el", src)
//
// # With Options
//
//	conv := el2md.NewConverter(
//	    el2md.WithKeyNames("DEL", "SPC"),
//	    el2md.WithFrontMatter(true),
//	)
//	md, err := conv.ConvertString("foo.el", src)
//
// # Config-Based Usage
//
// [Config] bridges CLI flags to the library, following the RegisterFlags /
// RegisterCompletions / NewConverter pattern:
//
//	cfg := el2md.NewConfig()
//	cfg.RegisterFlags(rootCmd.Flags())
//	_ = cfg.RegisterCompletions(rootCmd)
//
//	conv, err := cfg.NewConverter()
package el2md
