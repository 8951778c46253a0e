package el2md

import (
	"io"
	"strings"
)

const attributionURL = "https://github.com/thornjad/el2md"

// emitter writes output lines with a sticky error, so rendering code can
// stay free of error plumbing. The first write failure is kept and every
// later write becomes a no-op.
type emitter struct {
	w   io.Writer
	err error
}

func (e *emitter) line(s string) {
	if e.err != nil {
		return
	}

	_, e.err = io.WriteString(e.w, s+"\n")
}

func (e *emitter) blank() {
	e.line("")
}

// render emits the full Markdown document: front matter, the level-1 title
// heading, the formal metadata lines, the classified blocks, and the
// attribution trailer. Exactly one blank line separates consecutive parts,
// except between two adjacent bullet-list blocks, which join directly.
func (c *Converter) render(e *emitter, name string, meta Metadata, hasHeader bool, blocks []block) {
	wroteAny := false

	separate := func(suppress bool) {
		if wroteAny && !suppress {
			e.blank()
		}
	}

	if c.frontMatter && c.renderFrontMatter(e, meta) {
		wroteAny = true
	}

	if meta.Title != "" {
		separate(false)
		e.line("# " + meta.PackageName + " - " + c.translateInline(meta.Title))

		wroteAny = true
	}

	if hasHeader {
		fields := metadataLines(meta)
		if len(fields) > 0 {
			separate(false)

			for _, f := range fields {
				e.line(f)
			}

			wroteAny = true
		}
	}

	prevBullet := false

	for _, b := range blocks {
		separate(prevBullet && b.kind == kindBulletList)

		switch b.kind {
		case kindHeading:
			e.line(strings.Repeat("#", b.level) + " " +
				c.translateInline(stripHeadingText(b.lines[0])))

		case kindCode:
			for _, l := range b.lines {
				e.line("    " + c.translateInline(l))
			}

		default:
			for _, l := range b.lines {
				e.line(c.translateInline(l))
			}
		}

		prevBullet = b.kind == kindBulletList
		wroteAny = true
	}

	if c.attribution {
		separate(false)
		e.line("---")

		if name != "" {
			e.line("Converted from `" + name + "` by [el2md](" + attributionURL + ").")
		} else {
			e.line("Converted by [el2md](" + attributionURL + ").")
		}
	}
}

// metadataLines renders the formal metadata fields, each terminated with a
// line-break marker. The URL is wrapped as a link using the raw value as
// both label and target.
func metadataLines(meta Metadata) []string {
	var lines []string

	if meta.Author != "" {
		lines = append(lines, "*Author:* "+meta.Author+"<br>")
	}

	if meta.Version != "" {
		lines = append(lines, "*Version:* "+meta.Version+"<br>")
	}

	if meta.URL != "" {
		lines = append(lines, "*URL:* ["+meta.URL+"]("+meta.URL+")<br>")
	}

	return lines
}
