package lexer

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"sqlex/internal/source"
)

// Cursor walks the bytes of one file. Offsets are int inside and become
// uint32 only in spans; NewCursor checks that the file fits.
type Cursor struct {
	src  []byte
	file source.FileID
	off  int
}

// Mark is a saved offset for SpanFrom, Slice and Reset.
type Mark int

func NewCursor(f *source.File) Cursor {
	if _, err := safecast.Conv[uint32](len(f.Content)); err != nil {
		panic(fmt.Errorf("%s: content does not fit a span: %w", f.Path, err))
	}
	return Cursor{src: f.Content, file: f.ID}
}

func (c *Cursor) EOF() bool { return c.off >= len(c.src) }

// Remaining is the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.src) - c.off }

// Offset is the current position as a span offset.
func (c *Cursor) Offset() uint32 { return uint32(c.off) } //nolint:gosec // проверено в NewCursor

// Peek returns the current byte, 0 at EOF. SQL text has no NUL bytes the
// lexer cares about, so 0 doubles as "nothing".
func (c *Cursor) Peek() byte { return c.PeekAt(0) }

// PeekAt looks n bytes ahead, 0 past the end.
func (c *Cursor) PeekAt(n int) byte {
	if i := c.off + n; i < len(c.src) {
		return c.src[i]
	}
	return 0
}

// Peek2 is the two-byte lookahead; ok is false when fewer remain.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.Remaining() < 2 {
		return 0, 0, false
	}
	return c.src[c.off], c.src[c.off+1], true
}

// PeekRune decodes the rune at the cursor; size 0 at EOF, 1 for a bad byte.
func (c *Cursor) PeekRune() (r rune, size int) {
	if c.EOF() {
		return utf8.RuneError, 0
	}
	if b := c.src[c.off]; b < utf8.RuneSelf {
		return rune(b), 1
	}
	return utf8.DecodeRune(c.src[c.off:])
}

func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	c.off++
	return c.src[c.off-1]
}

// BumpRune advances over one rune (one byte for invalid UTF-8).
func (c *Cursor) BumpRune() rune {
	r, size := c.PeekRune()
	if size == 0 {
		return utf8.RuneError
	}
	c.off += size
	return r
}

// BumpWhile advances past bytes matching pred and returns how many.
func (c *Cursor) BumpWhile(pred func(byte) bool) int {
	start := c.off
	for c.off < len(c.src) && pred(c.src[c.off]) {
		c.off++
	}
	return c.off - start
}

// Eat consumes b if it is next.
func (c *Cursor) Eat(b byte) bool {
	if c.Peek() == b && !c.EOF() {
		c.off++
		return true
	}
	return false
}

func (c *Cursor) Mark() Mark { return Mark(c.off) }

func (c *Cursor) Reset(m Mark) { c.off = int(m) }

// SpanFrom covers the bytes from m to the cursor.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{File: c.file, Start: uint32(m), End: c.Offset()} //nolint:gosec // m <= off
}

// Slice returns the text from m to the cursor.
func (c *Cursor) Slice(m Mark) string { return string(c.src[m:c.off]) }
