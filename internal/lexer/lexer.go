package lexer

import (
	"iter"

	"sqlex/internal/source"
	"sqlex/internal/token"
)

// Lexer превращает источник в поток токенов с leading/trailing trivia.
// Экземпляр однопоточный; параллельный разбор: по лексеру на вход.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	cur    token.Token
	done   bool // стоим на EOF или ошибке
	pool   textPool
}

func New(opts Options) *Lexer {
	return &Lexer{opts: opts}
}

// Reset starts lexing file and primes the first token. It reports whether
// the first token is a real one (false on EOF or a lexical error).
// A nil file is a contract violation.
func (lx *Lexer) Reset(file *source.File) bool {
	if file == nil {
		panic("lexer: Reset with nil file")
	}
	lx.file = file
	lx.cursor = NewCursor(file)
	lx.pool = newTextPool()
	lx.done = false
	return lx.Advance()
}

// ResetString lexes src as an anonymous in-memory file.
func (lx *Lexer) ResetString(src string) bool {
	return lx.Reset(source.NewVirtualFile("<input>", []byte(src)))
}

// File returns the file being lexed.
func (lx *Lexer) File() *source.File { return lx.file }

// Current returns the token under the lexer.
func (lx *Lexer) Current() token.Token { return lx.cur }

// Advance moves to the next token. It returns false once the lexer sits on
// EOF or an error token; further calls keep it there.
func (lx *Lexer) Advance() bool {
	if lx.file == nil {
		panic("lexer: Advance before Reset")
	}
	if lx.done {
		return false
	}
	lx.cur = lx.scan()
	if lx.cur.Kind.IsSentinel() {
		lx.done = true
		if lx.cur.Kind.IsError() {
			lx.report(lx.cur)
		}
		return false
	}
	return true
}

// Next возвращает текущий токен и продвигается дальше.
// После EOF всегда возвращает EOF (или ту же ошибку).
func (lx *Lexer) Next() token.Token {
	tok := lx.cur
	lx.Advance()
	return tok
}

// All yields the remaining tokens starting with Current; the terminal
// sentinel is included only when includeEnd is set.
func (lx *Lexer) All(includeEnd bool) iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		for {
			tok := lx.cur
			if tok.Kind.IsSentinel() {
				if includeEnd {
					yield(tok)
				}
				return
			}
			if !yield(tok) {
				return
			}
			lx.Advance()
		}
	}
}

// Tokenize lexes src completely.
func Tokenize(src string, includeEnd bool) []token.Token {
	lx := New(Options{})
	lx.ResetString(src)
	return Collect(lx, includeEnd)
}

// Collect drains lx into a slice.
func Collect(lx *Lexer, includeEnd bool) []token.Token {
	var out []token.Token
	for tok := range lx.All(includeEnd) {
		out = append(out, tok)
	}
	return out
}

// scan производит один токен: leading trivia, сам токен, trailing trivia.
func (lx *Lexer) scan() token.Token {
	leading := lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		return token.Token{
			Kind:     token.EOF,
			Span:     lx.emptySpan(),
			Leading:  leading,
			Trailing: []token.Trivia{},
		}
	}

	tok := lx.dispatch()
	tok.Leading = leading
	if tok.Kind.IsError() {
		tok.Trailing = []token.Trivia{}
		return tok
	}
	tok.Trailing = lx.collectTrailingTrivia()
	return tok
}

func (lx *Lexer) dispatch() token.Token {
	ch := lx.cursor.Peek()
	switch {
	case (ch == 'N' || ch == 'n') && lx.cursor.PeekAt(1) == '\'':
		return lx.scanString()
	case ch == '$':
		if lx.looksLikeMoney() {
			return lx.scanMoney()
		}
		return lx.scanIdentOrKeyword()
	case isIdentStartByte(ch):
		return lx.scanIdentOrKeyword()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '.' && isDec(lx.cursor.PeekAt(1)):
		return lx.scanNumber()
	case ch == '\'':
		return lx.scanString()
	case ch == '[':
		return lx.scanDelimitedIdent('[', ']')
	case ch == '"':
		return lx.scanDelimitedIdent('"', '"')
	case ch >= utf8RuneSelf:
		r, _ := lx.cursor.PeekRune()
		switch {
		case isCurrencySymbol(r):
			return lx.scanMoney()
		case isIdentStartRune(r):
			return lx.scanIdentOrKeyword()
		}
		m := lx.cursor.Mark()
		lx.cursor.BumpRune()
		return lx.errorToken(token.ErrInvalidChar, m)
	}
	return lx.scanOperatorOrPunct()
}
