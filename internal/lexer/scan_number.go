package lexer

import (
	"strconv"
	"strings"

	"sqlex/internal/token"
)

// maxNumericDigits: предел точности decimal/numeric.
const maxNumericDigits = 38

// scanNumber за один проход разбирает:
//   - 0x[0-9a-fA-F]*          → Binary
//   - 123                     → Integer (если влезает в int32), иначе Decimal
//   - 1.5, 1., .5             → Decimal
//   - 1e5, 1.5E-3, .5e+2      → Float
//
// Символ идентификатора сразу после числа: ErrNumberIdentFollows,
// экспонента без цифр или больше 38 цифр: ErrBadNumber.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' && (b1 == 'x' || b1 == 'X') {
		lx.cursor.Bump()
		lx.cursor.Bump()
		lx.cursor.BumpWhile(isHex)
		if tok, bad := lx.identFollows(start); bad {
			return tok
		}
		text := lx.cursor.Slice(start)
		return token.Token{Kind: token.Binary, Span: lx.cursor.SpanFrom(start), Text: text, Value: text}
	}

	intDigits, fracDigits := lx.cursor.BumpWhile(isDec), 0
	hasDot := lx.cursor.Eat('.')
	if hasDot {
		fracDigits = lx.cursor.BumpWhile(isDec)
	}

	hasExp := false
	if ch := lx.cursor.Peek(); ch == 'e' || ch == 'E' {
		hasExp = true
		lx.cursor.Bump()
		if ch := lx.cursor.Peek(); ch == '+' || ch == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			lx.skipIdentContinue()
			return lx.errorToken(token.ErrBadNumber, start)
		}
		lx.cursor.BumpWhile(isDec)
	}

	if tok, bad := lx.identFollows(start); bad {
		return tok
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.cursor.Slice(start)

	if hasExp {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil && !isRangeErr(err) {
			return token.Token{Kind: token.ErrBadNumber, Span: sp, Text: text}
		}
		return token.Token{Kind: token.Float, Span: sp, Text: text, Value: text, Float: f}
	}

	intPart := strings.TrimLeft(text[:intDigits], "0")
	if len(intPart)+fracDigits > maxNumericDigits {
		return token.Token{Kind: token.ErrBadNumber, Span: sp, Text: text}
	}

	if !hasDot {
		if n, err := strconv.ParseInt(text, 10, 32); err == nil {
			return token.Token{
				Kind: token.Integer, Span: sp, Text: text,
				Value: strconv.FormatInt(n, 10), Int: int32(n), //nolint:gosec // ParseInt bitSize 32
			}
		}
		return token.Token{Kind: token.Decimal, Span: sp, Text: text, Value: canonicalDecimal(intPart, "", false)}
	}
	frac := text[intDigits+1:]
	return token.Token{Kind: token.Decimal, Span: sp, Text: text, Value: canonicalDecimal(intPart, frac, true)}
}

// identFollows: 1abc считается ошибкой, а не числом и идентификатором.
func (lx *Lexer) identFollows(start Mark) (token.Token, bool) {
	if !lx.atIdentContinue() {
		return token.Token{}, false
	}
	lx.skipIdentContinue()
	return lx.errorToken(token.ErrNumberIdentFollows, start), true
}

// canonicalDecimal: без ведущих нулей, "5." → "5.0", ".5" → "0.5".
func canonicalDecimal(intPart, frac string, hasDot bool) string {
	if intPart == "" {
		intPart = "0"
	}
	if !hasDot {
		return intPart
	}
	if frac == "" {
		frac = "0"
	}
	return intPart + "." + frac
}

func isRangeErr(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}
