package lexer

import (
	"slices"
	"strings"

	"sqlex/internal/token"
)

// maxMoneyIntDigits: money хранит 15 цифр целой части.
const maxMoneyIntDigits = 15

// currencySymbols: отсортированные кодовые точки префиксов money.
var currencySymbols = []rune{
	0x0024, // $
	0x00A2, // ¢
	0x00A3, // £
	0x00A4, // ¤
	0x00A5, // ¥
	0x09F2, 0x09F3, 0x0E3F, 0x17DB,
	0x20A0, 0x20A1, 0x20A2, 0x20A3, 0x20A4, 0x20A5, 0x20A6, 0x20A7,
	0x20A8, 0x20A9, 0x20AA, 0x20AB, 0x20AC, 0x20AD, 0x20AE, 0x20AF,
	0x20B0, 0x20B1,
	0xFDFC, 0xFE69, 0xFF04, 0xFFE0, 0xFFE1, 0xFFE5, 0xFFE6,
}

func isCurrencySymbol(r rune) bool {
	_, ok := slices.BinarySearch(currencySymbols, r)
	return ok
}

// looksLikeMoney: '$' начинает деньги, только если дальше пробелы и затем знак,
// цифра, точка или конец ввода. Иначе '$' начинает идентификатор.
func (lx *Lexer) looksLikeMoney() bool {
	n := 1
	for isBlank(lx.cursor.PeekAt(n)) {
		n++
	}
	if n >= lx.cursor.Remaining() {
		return true
	}
	ch := lx.cursor.PeekAt(n)
	if ch == '+' || ch == '-' {
		n++
		ch = lx.cursor.PeekAt(n)
	}
	return isDec(ch) || ch == '.'
}

// scanMoney: символ валюты, пробелы, [+-], цифры[.цифры].
// Value хранит каноническую форму: $ → 0, $-0 → 0, $5. → 5.0, $.5 → 0.5.
func (lx *Lexer) scanMoney() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.BumpRune()

	// пробелы съедаем, только если за ними число
	afterSym := lx.cursor.Mark()
	lx.cursor.BumpWhile(isBlank)
	if ch := lx.cursor.Peek(); !isDec(ch) && ch != '.' && ch != '+' && ch != '-' {
		lx.cursor.Reset(afterSym)
	}

	neg := false
	signMark := lx.cursor.Mark()
	if ch := lx.cursor.Peek(); ch == '+' || ch == '-' {
		lx.cursor.Bump()
		if next := lx.cursor.Peek(); !isDec(next) && next != '.' {
			lx.cursor.Reset(signMark)
		} else {
			neg = ch == '-'
		}
	}

	digitsStart := lx.cursor.Mark()
	lx.cursor.BumpWhile(isDec)
	intPart := strings.TrimLeft(lx.cursor.Slice(digitsStart), "0")
	hasDot := false
	frac := ""
	if lx.cursor.Peek() == '.' {
		hasDot = true
		lx.cursor.Bump()
		fracStart := lx.cursor.Mark()
		lx.cursor.BumpWhile(isDec)
		frac = lx.cursor.Slice(fracStart)
	}

	if tok, bad := lx.identFollows(start); bad {
		return tok
	}
	sp := lx.cursor.SpanFrom(start)
	text := lx.cursor.Slice(start)
	if len(intPart) > maxMoneyIntDigits {
		return token.Token{Kind: token.ErrBadNumber, Span: sp, Text: text}
	}

	value := canonicalDecimal(intPart, frac, hasDot)
	if neg && strings.Trim(intPart+frac, "0") != "" {
		value = "-" + value
	}
	return token.Token{Kind: token.Money, Span: sp, Text: text, Value: value}
}
