package parser

import (
	"sqlex/internal/token"
)

// ledKind: что делает токен в позиции после левого операнда.
type ledKind uint8

const (
	ledNone ledKind = iota
	ledBinary
	ledAssign
	ledComma
	ledCall
	ledNot // NOT BETWEEN / NOT LIKE / NOT IN
	ledBetween
	ledLike
	ledIn
	ledIs
)

// ledLevel returns the level at which the current token continues an
// expression. NOT continues at comparison level, not at its own.
func ledLevel(k token.Kind) int {
	if k == token.KwNot {
		return token.PrecComparison
	}
	return k.Precedence()
}

// classifyLed: у ORDER/FOR/UNION/EXCEPT/INTERSECT есть приоритет, но нет
// продолжения в выражении: на них разбор выражения заканчивается.
func classifyLed(k token.Kind) ledKind {
	switch k {
	case token.KwNot:
		return ledNot
	case token.KwBetween:
		return ledBetween
	case token.KwLike:
		return ledLike
	case token.KwIn:
		return ledIn
	case token.KwIs:
		return ledIs
	case token.Comma:
		return ledComma
	case token.LParen:
		return ledCall
	case token.KwAnd, token.KwOr, token.KwCollate:
		return ledBinary
	case token.Tilde, token.Dot, token.DoubleColon:
		return ledNone
	}
	switch {
	case k.IsAssignment():
		return ledAssign
	case k.IsOperator() && k.Precedence() > 0:
		return ledBinary
	}
	return ledNone
}

// nudIdentifier: ключевые слова, которые в выражении ведут себя как имена
// (встроенные функции и ниладические функции).
var nudIdentifierKeywords = map[token.Kind]bool{
	token.KwCoalesce:         true,
	token.KwConvert:          true,
	token.KwTryConvert:       true,
	token.KwNullif:           true,
	token.KwLeft:             true,
	token.KwRight:            true,
	token.KwCurrentDate:      true,
	token.KwCurrentTime:      true,
	token.KwCurrentTimestamp: true,
	token.KwCurrentUser:      true,
	token.KwSessionUser:      true,
	token.KwSystemUser:       true,
	token.KwUser:             true,
}

// isNameToken: токен может быть частью имени.
func isNameToken(k token.Kind) bool {
	if !k.IsIdentifier() {
		return false
	}
	return !k.IsKeyword() || k.IsScalarType() || nudIdentifierKeywords[k]
}
