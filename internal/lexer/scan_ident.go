package lexer

import (
	"strings"

	"sqlex/internal/token"
)

// scanIdentOrKeyword: первый символ уже проверен диспетчером.
// @name: переменная, в таблицу ключевых слов не смотрим.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	first := lx.cursor.BumpRune()
	lx.skipIdentContinue()

	sp := lx.cursor.SpanFrom(start)
	text := lx.cursor.Slice(start)

	if first == '@' {
		return token.Token{Kind: token.Variable, Span: sp, Text: text, Name: text}
	}
	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text, Name: text}
	}
	return token.Token{Kind: token.Identifier, Span: sp, Text: text, Name: text}
}

// scanDelimitedIdent сканирует [..] и ".."; удвоенный закрывающий
// разделитель: экранирование.
func (lx *Lexer) scanDelimitedIdent(open, closing byte) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // open
	var name strings.Builder
	for {
		if lx.cursor.EOF() {
			return lx.errorToken(token.ErrUnterminatedIdentifier, start)
		}
		ch := lx.cursor.Bump()
		if ch == closing {
			if lx.cursor.Eat(closing) {
				name.WriteByte(closing)
				continue
			}
			break
		}
		name.WriteByte(ch)
	}
	kind := token.IdentifierQuotedBracket
	if open == '"' {
		kind = token.IdentifierQuoted
	}
	return token.Token{
		Kind: kind,
		Span: lx.cursor.SpanFrom(start),
		Text: lx.cursor.Slice(start),
		Name: name.String(),
	}
}
