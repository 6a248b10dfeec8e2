// Package text wraps and positions source text within a fixed column
// width. A Layout holds byte-offset ranges into the source rather than
// copies, so concatenating the line ranges reconstructs the original text
// minus only whitespace consumed at wrap points
package text

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Align selects horizontal placement of each display line
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Wrap selects the line breaking mode
type Wrap uint8

const (
	// WrapAny breaks at any grapheme boundary once the width is reached
	WrapAny Wrap = iota
	// WrapSpace breaks at the last whitespace at or before the width,
	// falling back to WrapAny when a line has no whitespace
	WrapSpace
	// WrapClip renders only the first width columns of the first line
	WrapClip
	// WrapEllipsis clips like WrapClip but marks truncation with …
	WrapEllipsis
)

// Line is one display line: a byte range into the source text plus the
// columns it renders to and its alignment padding
type Line struct {
	Start, End int // byte offsets of rendered source content
	Width      int // display columns including any ellipsis marker
	PadLeft    int
	PadRight   int
	Wrapped    bool // content continues on the following line
	Clipped    bool // line ends with an ellipsis marker
}

// Layout is the result of laying out one text at one width
type Layout struct {
	Cols  int
	Lines []Line
}

// LayoutText lays out s within cols columns. It is a pure function of its
// inputs and safe to memoize. Width zero (or negative) produces a valid
// empty layout. Newlines in s separate paragraphs and are consumed
func LayoutText(s string, cols int, align Align, wrap Wrap) Layout {
	if cols <= 0 {
		return Layout{}
	}

	var lines []Line
	switch wrap {
	case WrapClip, WrapEllipsis:
		lines = []Line{clipLine(s, cols, wrap == WrapEllipsis)}
	default:
		start := 0
		for {
			idx := strings.IndexByte(s[start:], '\n')
			end := len(s)
			if idx >= 0 {
				end = start + idx
			}
			lines = wrapParagraph(s, start, end, cols, wrap, lines)
			if idx < 0 {
				break
			}
			start = end + 1 // newline consumed
		}
	}

	for i := range lines {
		pad := cols - lines[i].Width
		if pad < 0 {
			pad = 0
		}
		switch align {
		case AlignCenter:
			lines[i].PadLeft = pad / 2
			lines[i].PadRight = pad - pad/2
		case AlignRight:
			lines[i].PadLeft = pad
		default:
			lines[i].PadRight = pad
		}
	}
	return Layout{Cols: cols, Lines: lines}
}

// clipLine produces the single display line of clip/ellipsis modes
func clipLine(s string, cols int, ellipsis bool) Line {
	end := len(s)
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		end = idx
	}

	// Whole text on one line that fits: no truncation
	total := runewidth.StringWidth(s[:end])
	if total <= cols && end == len(s) {
		return Line{Start: 0, End: end, Width: total}
	}

	budget := cols
	if ellipsis {
		budget = cols - 1
	}
	width := 0
	cut := 0
	g := uniseg.NewGraphemes(s[:end])
	for g.Next() {
		w := runewidth.StringWidth(g.Str())
		if width+w > budget {
			break
		}
		width += w
		_, cut = g.Positions()
	}

	ln := Line{Start: 0, End: cut, Width: width}
	if ellipsis {
		ln.Clipped = true
		ln.Width++
	}
	return ln
}

// wrapParagraph appends the wrapped lines of s[pStart:pEnd] to lines
func wrapParagraph(s string, pStart, pEnd, cols int, wrap Wrap, lines []Line) []Line {
	startCount := len(lines)
	lineStart := pStart
	lineWidth := 0
	spaceStart, spaceEnd := -1, -1
	spaceWidth := 0
	widthToSpace := 0

	resetSpace := func() {
		spaceStart, spaceEnd = -1, -1
	}

	g := uniseg.NewGraphemes(s[pStart:pEnd])
	for g.Next() {
		from, to := g.Positions()
		from += pStart
		to += pStart
		cl := g.Str()
		w := runewidth.StringWidth(cl)
		isSpace := clusterIsSpace(cl)

		// A cluster alone wider than the layout: consume it to guarantee
		// progress; rendering substitutes a placeholder for it
		if w > cols && lineWidth == 0 {
			lines = append(lines, Line{Start: lineStart, End: to, Width: cols, Wrapped: true})
			lineStart = to
			resetSpace()
			continue
		}

		if lineWidth+w > cols {
			switch {
			case wrap == WrapSpace && isSpace:
				// The space itself is the wrap point: consume it
				lines = append(lines, Line{Start: lineStart, End: from, Width: lineWidth, Wrapped: true})
				lineStart = to
				lineWidth = 0
				resetSpace()
				continue
			case wrap == WrapSpace && spaceStart >= lineStart:
				lines = append(lines, Line{Start: lineStart, End: spaceStart, Width: widthToSpace, Wrapped: true})
				lineStart = spaceEnd
				lineWidth = lineWidth - widthToSpace - spaceWidth
			default:
				lines = append(lines, Line{Start: lineStart, End: from, Width: lineWidth, Wrapped: true})
				lineStart = from
				lineWidth = 0
			}
			resetSpace()

			// The remainder carried past a space break may still overflow
			if lineWidth+w > cols {
				if lineWidth == 0 {
					// Cluster alone exceeds the width
					lines = append(lines, Line{Start: lineStart, End: to, Width: cols, Wrapped: true})
					lineStart = to
					continue
				}
				lines = append(lines, Line{Start: lineStart, End: from, Width: lineWidth, Wrapped: true})
				lineStart = from
				lineWidth = 0
			}
		}

		if isSpace {
			spaceStart, spaceEnd = from, to
			spaceWidth = w
			widthToSpace = lineWidth
		}
		lineWidth += w
	}

	// A break that consumed the paragraph's last cluster leaves nothing
	// for a final line; the previous line no longer continues
	if lineStart >= pEnd && len(lines) > startCount {
		lines[len(lines)-1].Wrapped = false
		return lines
	}
	return append(lines, Line{Start: lineStart, End: pEnd, Width: lineWidth})
}

// clusterIsSpace returns true for single-rune whitespace clusters
func clusterIsSpace(cl string) bool {
	r, size := utf8.DecodeRuneInString(cl)
	return size == len(cl) && unicode.IsSpace(r)
}

// LineText renders the display string for one layout line: the source
// range sanitized, truncated to the line width, ellipsis-marked when
// clipped, and space-padded to exactly ln.Width columns. Undecodable
// bytes become the replacement glyph instead of aborting the render
func LineText(s string, ln Line) string {
	if ln.Width <= 0 {
		return ""
	}
	raw := Sanitize(s[ln.Start:ln.End])

	budget := ln.Width
	if ln.Clipped {
		budget--
	}

	var b strings.Builder
	used := 0
	g := uniseg.NewGraphemes(raw)
	for g.Next() {
		cl := g.Str()
		w := runewidth.StringWidth(cl)
		if w == 0 {
			b.WriteString(cl) // zero-width cluster rides with its base
			continue
		}
		if used+w > budget {
			if used == 0 && budget > 0 {
				// Single cluster wider than the line: placeholder
				b.WriteRune(utf8.RuneError)
				used = 1
			}
			break
		}
		b.WriteString(cl)
		used += w
	}
	if ln.Clipped {
		b.WriteRune('…')
		used++
	}
	for used < ln.Width {
		b.WriteByte(' ')
		used++
	}
	return b.String()
}

// Sanitize replaces undecodable byte sequences with the replacement glyph
func Sanitize(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteRune(utf8.RuneError)
		} else {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}
