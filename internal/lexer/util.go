package lexer

import (
	"unicode"
)

const utf8RuneSelf = 0x80

// ===== Классификаторы =====

// ASCII fast-path; '$' начинает идентификатор только после проверки на money.
func isIdentStartByte(b byte) bool {
	return b == '_' || b == '@' || b == '#' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || b == '$' || isDec(b)
}

func isIdentStartRune(r rune) bool {
	if r < utf8RuneSelf {
		return isIdentStartByte(byte(r))
	}
	return unicode.IsLetter(r)
}

func isIdentContinueRune(r rune) bool {
	if r < utf8RuneSelf {
		return isIdentContinueByte(byte(r))
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isHex(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}

func isSpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isSpaceRune(r rune) bool {
	if r < utf8RuneSelf {
		return isSpaceByte(byte(r))
	}
	return unicode.IsSpace(r)
}

func isBlank(b byte) bool { return b == ' ' || b == '\t' }

// ===== Матчеры последовательностей операторов (жадность) =====

func (lx *Lexer) try2(a, b byte) bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != a || b1 != b {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	return true
}

// atIdentContinue reports whether the cursor sits on an identifier
// continuation character (ASCII or Unicode).
func (lx *Lexer) atIdentContinue() bool {
	if lx.cursor.EOF() {
		return false
	}
	ch := lx.cursor.Peek()
	if ch < utf8RuneSelf {
		return isIdentContinueByte(ch)
	}
	r, _ := lx.cursor.PeekRune()
	return isIdentContinueRune(r)
}

func (lx *Lexer) skipIdentContinue() {
	for lx.atIdentContinue() {
		lx.cursor.BumpRune()
	}
}
