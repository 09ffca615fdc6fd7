package lexer

import (
	"fmt"

	"sqlex/internal/diag"
	"sqlex/internal/source"
	"sqlex/internal/token"
)

type Options struct {
	Reporter diag.Reporter // может быть nil: тогда ошибки только в токене
}

var errorCodes = map[token.Kind]diag.Code{
	token.ErrInvalidChar:            diag.LexInvalidChar,
	token.ErrUnterminatedString:     diag.LexUnterminatedString,
	token.ErrUnterminatedIdentifier: diag.LexUnterminatedIdentifier,
	token.ErrBadNumber:              diag.LexBadNumber,
	token.ErrNumberIdentFollows:     diag.LexNumberIdentFollows,
}

// ErrorCode maps a lexical error kind to its diagnostic code.
func ErrorCode(k token.Kind) diag.Code {
	if c, ok := errorCodes[k]; ok {
		return c
	}
	return diag.UnknownCode
}

// ErrorMessage describes a lexical error token for humans.
func ErrorMessage(tok token.Token) string {
	switch tok.Kind {
	case token.ErrInvalidChar:
		return fmt.Sprintf("invalid character %q", tok.Text)
	case token.ErrUnterminatedString:
		return "unterminated string literal"
	case token.ErrUnterminatedIdentifier:
		return "unterminated delimited identifier"
	case token.ErrBadNumber:
		return fmt.Sprintf("malformed number %q", tok.Text)
	case token.ErrNumberIdentFollows:
		return fmt.Sprintf("identifier character right after number in %q", tok.Text)
	}
	return "lexical error"
}

func (lx *Lexer) report(tok token.Token) {
	diag.Send(lx.opts.Reporter, diag.NewError(ErrorCode(tok.Kind), tok.Span, ErrorMessage(tok)))
}

func (lx *Lexer) errorToken(kind token.Kind, m Mark) token.Token {
	sp := lx.cursor.SpanFrom(m)
	return token.Token{Kind: kind, Span: sp, Text: lx.cursor.Slice(m)}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.At(lx.file.ID, lx.cursor.Offset())
}
