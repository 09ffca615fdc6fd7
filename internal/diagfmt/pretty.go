package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"sqlex/internal/diag"
	"sqlex/internal/source"
)

type palette struct {
	err, warn, info, path, caret, note, fix *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:   color.New(color.FgRed, color.Bold),
		warn:  color.New(color.FgYellow, color.Bold),
		info:  color.New(color.FgCyan),
		path:  color.New(color.Bold),
		caret: color.New(color.FgGreen, color.Bold),
		note:  color.New(color.FgBlue),
		fix:   color.New(color.FgMagenta),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.path, p.caret, p.note, p.fix} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	}
	return p.info
}

// Pretty prints every diagnostic of bag (sort it first):
//
//	path:line:col: SEV CODE: message
//	   3 | source line
//	     |     ^~~~
//
// followed by notes and fixes when enabled.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	pal := newPalette(opts.Color)
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts, pal)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) {
	sev := pal.severity(d.Severity).Sprintf("%s %s", d.Severity, d.Code.ID())
	if !hasLocation(d, fs) {
		fmt.Fprintf(w, "%s: %s\n", sev, d.Message)
		return
	}
	file := fs.Get(d.Primary.File)
	start, _ := fs.Resolve(d.Primary)
	loc := displayPath(file, fs, opts.PathMode) + ":" + start.String()
	fmt.Fprintf(w, "%s: %s: %s\n", pal.path.Sprint(loc), sev, d.Message)
	writeSnippet(w, file, d.Primary, pal)

	if opts.ShowNotes {
		for _, n := range d.Notes {
			if n.Span.Empty() && n.Span.Start == 0 {
				fmt.Fprintf(w, "  %s %s\n", pal.note.Sprint("= note:"), n.Msg)
				continue
			}
			pos := file.Position(n.Span.Start)
			fmt.Fprintf(w, "  %s %s (%s)\n", pal.note.Sprint("= note:"), n.Msg, pos)
		}
	}
	if opts.ShowFixes {
		for _, f := range d.Fixes {
			fmt.Fprintf(w, "  %s %s\n", pal.fix.Sprint("= fix:"), f.Title)
			if opts.ShowPreview && len(f.Edits) > 0 {
				if after, ok := previewLine(file, f.Edits[0]); ok {
					fmt.Fprintf(w, "    %s %s\n", pal.fix.Sprint("->"), after)
				}
			}
		}
	}
}

// writeSnippet prints the first line of sp with a caret underline. Widths
// are measured in terminal cells so wide runes keep the caret aligned.
func writeSnippet(w io.Writer, file *source.File, sp source.Span, pal palette) {
	start := file.Position(sp.Start)
	line := file.GetLine(start.Line)
	gutter := fmt.Sprintf("%d", start.Line)
	pad := strings.Repeat(" ", len(gutter))

	col := min(int(start.Col)-1, len(line))
	prefix := cellPrefix(line[:col])

	// подчёркивание только в пределах первой строки
	endOnLine := min(col+int(sp.Len()), len(line))
	width := max(runewidth.StringWidth(line[col:endOnLine]), 1)
	marker := "^" + strings.Repeat("~", width-1)

	fmt.Fprintf(w, " %s | %s\n", gutter, line)
	fmt.Fprintf(w, " %s | %s%s\n", pad, prefix, pal.caret.Sprint(marker))
}

// cellPrefix replaces every rune of s by blanks of the same display width,
// keeping tabs so the caret lines up with the printed source line.
func cellPrefix(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return b.String()
}
