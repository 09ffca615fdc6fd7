package lexer

import (
	"strings"

	"sqlex/internal/token"
)

// scanString: '...' или N'...'; '' внутри означает экранированную кавычку.
// Строка может занимать несколько строк файла.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	kind := token.String
	if ch := lx.cursor.Peek(); ch == 'N' || ch == 'n' {
		lx.cursor.Bump()
		kind = token.NString
	}
	lx.cursor.Bump() // '
	var val strings.Builder
	for {
		if lx.cursor.EOF() {
			return lx.errorToken(token.ErrUnterminatedString, start)
		}
		ch := lx.cursor.Bump()
		if ch == '\'' {
			if lx.cursor.Eat('\'') {
				val.WriteByte('\'')
				continue
			}
			break
		}
		val.WriteByte(ch)
	}
	return token.Token{
		Kind:  kind,
		Span:  lx.cursor.SpanFrom(start),
		Text:  lx.cursor.Slice(start),
		Value: val.String(),
	}
}
