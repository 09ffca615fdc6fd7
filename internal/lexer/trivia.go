package lexer

import (
	"strings"

	"sqlex/internal/token"
)

// collectLeadingTrivia собирает все trivia перед значимым токеном:
//   - подряд идущие пробельные символы (включая переводы строк): один TriviaWhitespace
//   - -- ... до конца строки включительно: TriviaLineComment
//   - /* ... */ с вложенностью: TriviaBlockComment; незакрытый съедает хвост файла
func (lx *Lexer) collectLeadingTrivia() []token.Trivia {
	out := []token.Trivia{}
	for !lx.cursor.EOF() {
		switch {
		case lx.atSpace():
			out = append(out, lx.scanWhitespace(false))
		case lx.atLineComment():
			out = append(out, lx.scanLineComment())
		case lx.atBlockComment():
			out = append(out, lx.scanBlockComment())
		default:
			return out
		}
	}
	return out
}

// collectTrailingTrivia берёт trivia до первого перевода строки (включая его)
// или до строчного комментария (включая его); после них: стоп.
func (lx *Lexer) collectTrailingTrivia() []token.Trivia {
	out := []token.Trivia{}
	for !lx.cursor.EOF() {
		switch {
		case lx.atSpace():
			tr := lx.scanWhitespace(true)
			out = append(out, tr)
			if strings.HasSuffix(tr.Text, token.Newline) {
				return out
			}
		case lx.atLineComment():
			return append(out, lx.scanLineComment())
		case lx.atBlockComment():
			out = append(out, lx.scanBlockComment())
		default:
			return out
		}
	}
	return out
}

func (lx *Lexer) atSpace() bool {
	ch := lx.cursor.Peek()
	if ch < utf8RuneSelf {
		return isSpaceByte(ch)
	}
	r, _ := lx.cursor.PeekRune()
	return isSpaceRune(r)
}

func (lx *Lexer) atLineComment() bool {
	b0, b1, ok := lx.cursor.Peek2()
	return ok && b0 == '-' && b1 == '-'
}

func (lx *Lexer) atBlockComment() bool {
	b0, b1, ok := lx.cursor.Peek2()
	return ok && b0 == '/' && b1 == '*'
}

// scanWhitespace: при stopAtNewline останавливается сразу после первого
// терминатора строки (\n, \r\n или \r).
func (lx *Lexer) scanWhitespace(stopAtNewline bool) token.Trivia {
	start := lx.cursor.Mark()
	hasCR := false
	for !lx.cursor.EOF() && lx.atSpace() {
		ch := lx.cursor.Peek()
		if ch == '\r' || ch == '\n' {
			lx.cursor.Bump()
			if ch == '\r' {
				hasCR = true
				lx.cursor.Eat('\n')
			}
			if stopAtNewline {
				break
			}
			continue
		}
		lx.cursor.BumpRune()
	}
	raw := lx.cursor.Slice(start)
	text := raw
	if hasCR {
		text = normalizeNewlines(raw)
	}
	text = lx.pool.whitespace(text)
	if text == raw {
		raw = text
	}
	return lx.makeTrivia(token.TriviaWhitespace, text, raw, start)
}

// scanLineComment: -- до конца строки; терминатор в Raw, но не в Text.
func (lx *Lexer) scanLineComment() token.Trivia {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	lx.cursor.Bump()
	bodyStart := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		if ch == '\n' || ch == '\r' {
			break
		}
		lx.cursor.Bump()
	}
	text := lx.cursor.Slice(bodyStart)
	if lx.cursor.Eat('\r') {
		lx.cursor.Eat('\n')
	} else {
		lx.cursor.Eat('\n')
	}
	return lx.makeTrivia(token.TriviaLineComment, text, lx.cursor.Slice(start), start)
}

// scanBlockComment: /* ... */ с вложенностью. Незакрытый комментарий
// поглощает остаток файла без ошибки: следующим будет EOF.
func (lx *Lexer) scanBlockComment() token.Trivia {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	lx.cursor.Bump()
	bodyStart := lx.cursor.Mark()
	bodyEnd := bodyStart
	depth := 1
	for !lx.cursor.EOF() {
		b0, b1, ok := lx.cursor.Peek2()
		if ok && b0 == '/' && b1 == '*' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			depth++
			continue
		}
		if ok && b0 == '*' && b1 == '/' {
			depth--
			if depth == 0 {
				bodyEnd = lx.cursor.Mark()
				lx.cursor.Bump()
				lx.cursor.Bump()
				break
			}
			lx.cursor.Bump()
			lx.cursor.Bump()
			continue
		}
		lx.cursor.Bump()
	}
	if depth > 0 {
		bodyEnd = lx.cursor.Mark()
	}
	return lx.makeTrivia(token.TriviaBlockComment, string(lx.file.Content[bodyStart:bodyEnd]), lx.cursor.Slice(start), start)
}

// makeTrivia: виды здесь константы, ошибка NewTrivia означает баг лексера.
func (lx *Lexer) makeTrivia(kind token.TriviaKind, text, raw string, start Mark) token.Trivia {
	tr, err := token.NewTrivia(kind, text, raw)
	if err != nil {
		panic(err)
	}
	tr.Span = lx.cursor.SpanFrom(start)
	return tr
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", token.Newline)
	return strings.ReplaceAll(s, "\r", token.Newline)
}
