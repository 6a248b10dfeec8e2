package text

import (
	"testing"
)

// lineStrings renders every layout line without alignment padding
func lineStrings(s string, l Layout) []string {
	out := make([]string, len(l.Lines))
	for i, ln := range l.Lines {
		out[i] = LineText(s, ln)
	}
	return out
}

func TestLayoutTextWrapSpace(t *testing.T) {
	tests := []struct {
		name string
		s    string
		cols int
		want []string
	}{
		{"break at space", "hello world", 5, []string{"hello", "world"}},
		{"space consumed at boundary", "hello world", 6, []string{"hello", "world"}},
		{"space itself overflows", "the quick fox", 9, []string{"the quick", "fox"}},
		{"no space falls back to hard break", "abcdefgh", 3, []string{"abc", "def", "gh"}},
		{"fits on one line", "short", 10, []string{"short"}},
		{"empty", "", 4, []string{""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := LayoutText(tt.s, tt.cols, AlignLeft, WrapSpace)
			got := lineStrings(tt.s, l)
			if len(got) != len(tt.want) {
				t.Fatalf("lines = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLayoutTextWrapAny(t *testing.T) {
	l := LayoutText("hello world", 4, AlignLeft, WrapAny)
	got := lineStrings("hello world", l)
	want := []string{"hell", "o wo", "rld"}
	if len(got) != len(want) {
		t.Fatalf("lines = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
	for i, ln := range l.Lines {
		wantWrapped := i < len(l.Lines)-1
		if ln.Wrapped != wantWrapped {
			t.Errorf("line %d Wrapped = %v, want %v", i, ln.Wrapped, wantWrapped)
		}
	}
}

func TestLayoutTextWrapAnyKeepsSpaces(t *testing.T) {
	// Hard breaking carries an overflowing space onto the next line
	// instead of consuming it; only space wrapping consumes whitespace
	s := "ab cd"
	l := LayoutText(s, 2, AlignLeft, WrapAny)
	got := lineStrings(s, l)
	want := []string{"ab", " c", "d"}
	if len(got) != len(want) {
		t.Fatalf("lines = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}

	var joined string
	for _, ln := range l.Lines {
		joined += s[ln.Start:ln.End]
	}
	if joined != s {
		t.Errorf("joined ranges = %q, want the full source %q", joined, s)
	}
}

func TestLayoutTextParagraphs(t *testing.T) {
	l := LayoutText("ab\ncd\n\nef", 5, AlignLeft, WrapAny)
	if len(l.Lines) != 4 {
		t.Fatalf("line count = %d, want 4", len(l.Lines))
	}
	want := []string{"ab", "cd", "", "ef"}
	for i, ln := range l.Lines {
		if got := LineText("ab\ncd\n\nef", ln); got != want[i] {
			t.Errorf("line %d = %q, want %q", i, got, want[i])
		}
		if ln.Wrapped {
			t.Errorf("line %d marked wrapped across a paragraph break", i)
		}
	}
}

func TestLayoutTextWideGlyphs(t *testing.T) {
	// Double-width clusters never split across lines
	l := LayoutText("日本語", 4, AlignLeft, WrapAny)
	if len(l.Lines) != 2 {
		t.Fatalf("line count = %d, want 2", len(l.Lines))
	}
	if l.Lines[0].Width != 4 || l.Lines[1].Width != 2 {
		t.Errorf("widths = %d, %d, want 4, 2", l.Lines[0].Width, l.Lines[1].Width)
	}
	if got := LineText("日本語", l.Lines[0]); got != "日本" {
		t.Errorf("line 0 = %q, want %q", got, "日本")
	}

	// Odd width defers the wide glyph instead of splitting it
	l = LayoutText("a日", 2, AlignLeft, WrapAny)
	if len(l.Lines) != 2 {
		t.Fatalf("odd-width line count = %d, want 2", len(l.Lines))
	}
	if got := LineText("a日", l.Lines[1]); got != "日" {
		t.Errorf("deferred glyph line = %q, want %q", got, "日")
	}
}

func TestLayoutTextClusterWiderThanLayout(t *testing.T) {
	l := LayoutText("日", 1, AlignLeft, WrapAny)
	if len(l.Lines) != 1 {
		t.Fatalf("line count = %d, want 1", len(l.Lines))
	}
	if l.Lines[0].Wrapped {
		t.Error("sole line marked wrapped")
	}
	if got := LineText("日", l.Lines[0]); got != "�" {
		t.Errorf("render = %q, want replacement glyph", got)
	}
}

func TestLayoutTextAlignment(t *testing.T) {
	tests := []struct {
		name     string
		align    Align
		padLeft  int
		padRight int
	}{
		{"left", AlignLeft, 0, 4},
		{"center", AlignCenter, 2, 2},
		{"right", AlignRight, 4, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := LayoutText("hi", 6, tt.align, WrapAny)
			ln := l.Lines[0]
			if ln.PadLeft != tt.padLeft || ln.PadRight != tt.padRight {
				t.Errorf("padding = %d/%d, want %d/%d",
					ln.PadLeft, ln.PadRight, tt.padLeft, tt.padRight)
			}
			if ln.PadLeft+ln.Width+ln.PadRight != l.Cols {
				t.Errorf("padding does not total the layout width")
			}
		})
	}

	// Odd leftover space centers with the extra column on the right
	ln := LayoutText("abc", 6, AlignCenter, WrapAny).Lines[0]
	if ln.PadLeft != 1 || ln.PadRight != 2 {
		t.Errorf("odd center padding = %d/%d, want 1/2", ln.PadLeft, ln.PadRight)
	}
}

func TestLayoutTextClip(t *testing.T) {
	l := LayoutText("hello world", 5, AlignLeft, WrapClip)
	if len(l.Lines) != 1 {
		t.Fatalf("line count = %d, want 1", len(l.Lines))
	}
	if got := LineText("hello world", l.Lines[0]); got != "hello" {
		t.Errorf("clipped = %q, want %q", got, "hello")
	}

	l = LayoutText("first\nsecond", 10, AlignLeft, WrapClip)
	if got := LineText("first\nsecond", l.Lines[0]); got != "first" {
		t.Errorf("multi-line clip = %q, want %q", got, "first")
	}
}

func TestLayoutTextEllipsis(t *testing.T) {
	l := LayoutText("hello world", 5, AlignLeft, WrapEllipsis)
	ln := l.Lines[0]
	if !ln.Clipped || ln.Width != 5 {
		t.Fatalf("line = %+v, want clipped width 5", ln)
	}
	if got := LineText("hello world", ln); got != "hell…" {
		t.Errorf("render = %q, want %q", got, "hell…")
	}

	// Fitting text carries no marker
	l = LayoutText("hi", 5, AlignLeft, WrapEllipsis)
	if l.Lines[0].Clipped {
		t.Error("fitting text marked clipped")
	}
}

func TestLayoutTextZeroWidth(t *testing.T) {
	l := LayoutText("anything", 0, AlignLeft, WrapSpace)
	if len(l.Lines) != 0 || l.Cols != 0 {
		t.Errorf("layout = %+v, want empty", l)
	}
}

func TestLayoutOffsetsReconstructSource(t *testing.T) {
	// Line ranges are ascending and disjoint; the gaps between them are
	// exactly the whitespace and newlines consumed at break points
	s := "the quick brown fox jumps\nover the lazy dog"
	l := LayoutText(s, 10, AlignLeft, WrapSpace)

	pos := 0
	for i, ln := range l.Lines {
		if ln.Start < pos {
			t.Fatalf("line %d starts at %d before previous end %d", i, ln.Start, pos)
		}
		for _, r := range s[pos:ln.Start] {
			if r != ' ' && r != '\n' {
				t.Fatalf("consumed gap %q contains non-whitespace", s[pos:ln.Start])
			}
		}
		if ln.End > len(s) {
			t.Fatalf("line %d ends past the source", i)
		}
		pos = ln.End
	}
	for _, r := range s[pos:] {
		if r != ' ' && r != '\n' {
			t.Fatalf("trailing gap %q contains non-whitespace", s[pos:])
		}
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"valid passes through", "héllo 日本", "héllo 日本"},
		{"invalid byte replaced", "a\xffb", "a�b"},
		{"truncated sequence replaced", "ab\xe6\x97", "ab��"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLineTextPadsToWidth(t *testing.T) {
	l := LayoutText("hi", 4, AlignLeft, WrapAny)
	ln := l.Lines[0]
	got := LineText("hi", ln)
	if got != "hi" {
		t.Errorf("LineText = %q, want content only (padding is separate)", got)
	}
	if ln.Width != 2 || ln.PadRight != 2 {
		t.Errorf("line = %+v, want width 2 pad 2", ln)
	}
}
