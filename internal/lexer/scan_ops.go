package lexer

import (
	"sqlex/internal/token"
)

// scanOperatorOrPunct: прямая диспетчеризация по символу с жадным
// совпадением двухсимвольных форм. Комментарии уже сняты как trivia.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	ch := lx.cursor.Peek()

	// op= формы
	compound := func(plain, assign token.Kind) token.Kind {
		if lx.try2(ch, '=') {
			return assign
		}
		lx.cursor.Bump()
		return plain
	}

	var kind token.Kind
	switch ch {
	case '+':
		kind = compound(token.Plus, token.PlusAssign)
	case '-':
		kind = compound(token.Minus, token.MinusAssign)
	case '*':
		kind = compound(token.Star, token.StarAssign)
	case '/':
		kind = compound(token.Slash, token.SlashAssign)
	case '%':
		kind = compound(token.Percent, token.PercentAssign)
	case '&':
		kind = compound(token.Amp, token.AmpAssign)
	case '^':
		kind = compound(token.Caret, token.CaretAssign)
	case '|':
		kind = compound(token.Pipe, token.PipeAssign)
	case '=':
		lx.cursor.Bump()
		kind = token.Assign
	case '!':
		switch {
		case lx.try2('!', '='):
			kind = token.BangEqual
		case lx.try2('!', '<'):
			kind = token.NotLess
		case lx.try2('!', '>'):
			kind = token.NotGreater
		default:
			lx.cursor.Bump()
			return lx.errorToken(token.ErrInvalidChar, start)
		}
	case '<':
		switch {
		case lx.try2('<', '='):
			kind = token.LessEqual
		case lx.try2('<', '>'):
			kind = token.NotEqual
		default:
			lx.cursor.Bump()
			kind = token.Less
		}
	case '>':
		if lx.try2('>', '=') {
			kind = token.GreaterEqual
		} else {
			lx.cursor.Bump()
			kind = token.Greater
		}
	case ':':
		if lx.try2(':', ':') {
			kind = token.DoubleColon
		} else {
			lx.cursor.Bump()
			kind = token.Colon
		}
	case '~':
		lx.cursor.Bump()
		kind = token.Tilde
	case '(':
		lx.cursor.Bump()
		kind = token.LParen
	case ')':
		lx.cursor.Bump()
		kind = token.RParen
	case ',':
		lx.cursor.Bump()
		kind = token.Comma
	case '.':
		lx.cursor.Bump()
		kind = token.Dot
	case ';':
		lx.cursor.Bump()
		kind = token.Semicolon
	default:
		lx.cursor.BumpRune()
		return lx.errorToken(token.ErrInvalidChar, start)
	}
	return token.Token{Kind: kind, Span: lx.cursor.SpanFrom(start), Text: lx.cursor.Slice(start)}
}
