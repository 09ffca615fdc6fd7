package format

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"sqlex/internal/token"
)

// Writer accumulates formatted output token by token.
type Writer struct {
	buf   []byte
	caser *cases.Caser
}

// NewWriter creates a writer; sizeHint preallocates the buffer.
func NewWriter(kc KeywordCase, sizeHint int) *Writer {
	w := &Writer{buf: make([]byte, 0, sizeHint)}
	var c cases.Caser
	switch kc {
	case CaseUpper:
		c = cases.Upper(language.Und)
		w.caser = &c
	case CaseLower:
		c = cases.Lower(language.Und)
		w.caser = &c
	}
	return w
}

// Bytes returns the accumulated output.
func (w *Writer) Bytes() []byte {
	return w.buf
}

func (w *Writer) writeTrivia(list []token.Trivia) {
	for _, tv := range list {
		w.buf = append(w.buf, tv.Raw...)
	}
}

// WriteToken emits leading trivia, text and trailing trivia. recase applies
// the keyword case to the text.
func (w *Writer) WriteToken(tok token.Token, recase bool) {
	w.writeTrivia(tok.Leading)
	if recase && w.caser != nil {
		w.buf = append(w.buf, w.caser.String(tok.Text)...)
	} else {
		w.buf = append(w.buf, tok.Text...)
	}
	w.writeTrivia(tok.Trailing)
}
