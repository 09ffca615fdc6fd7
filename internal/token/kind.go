package token

import "fmt"

// Kind classifies a token. See package doc for the bit layout.
type Kind int32

const (
	valueMask Kind = 0xFF
	precShift      = 8
	precMask  Kind = 0xF << precShift
)

// Category flags (mutually exclusive).
const (
	FlagOperator Kind = 1 << (12 + iota)
	FlagBracket
	FlagPunct
	FlagLiteral
	FlagIdentifier
	FlagComment
)

// Identifier sub-kind flags.
const (
	FlagKeyword Kind = 1 << (18 + iota) // reserved word
	FlagQuoted                          // "name"
	FlagBracketed                       // [name]
	FlagVariable                        // @name
	FlagSpecial                         // statement starter
	FlagScalarType                      // value slot indexes the scalar-type table
)

// Family flags for the '=' duality.
const (
	FlagAssignment Kind = 1 << (24 + iota)
	FlagComparison
)

const categoryMask = FlagOperator | FlagBracket | FlagPunct | FlagLiteral | FlagIdentifier | FlagComment

// Precedence levels, highest binds tightest.
const (
	PrecNone       = 0
	PrecComma      = 1
	PrecOrder      = 2 // ORDER, FOR
	PrecUnion      = 3
	PrecExcept     = 4
	PrecIntersect  = 5
	PrecAssignment = 6
	PrecOr         = 8
	PrecAnd        = 9
	PrecNot        = 10
	PrecComparison = 11
	PrecAdditive   = 12 // + - & ^ | (unary and binary)
	PrecMultiply   = 13
	PrecBitNot     = 14 // ~ and COLLATE
	PrecPrimary    = 15 // . :: (
)

// Sentinels.
const (
	None Kind = 0
	// EOF marks the end of input.
	EOF Kind = -1
	// ErrInvalidChar: a character that starts no token.
	ErrInvalidChar Kind = -2
	// ErrUnterminatedString: '...' without closing quote.
	ErrUnterminatedString Kind = -3
	// ErrUnterminatedIdentifier: [..] or ".." without closing delimiter.
	ErrUnterminatedIdentifier Kind = -4
	// ErrBadNumber: dangling exponent or too many digits.
	ErrBadNumber Kind = -5
	// ErrNumberIdentFollows: identifier character right after a number (1abc).
	ErrNumberIdentFollows Kind = -6
)

// Operators.
const (
	Plus          = FlagOperator | Kind(PrecAdditive)<<precShift | 1
	Minus         = FlagOperator | Kind(PrecAdditive)<<precShift | 2
	Star          = FlagOperator | Kind(PrecMultiply)<<precShift | 3
	Slash         = FlagOperator | Kind(PrecMultiply)<<precShift | 4
	Percent       = FlagOperator | Kind(PrecMultiply)<<precShift | 5
	Amp           = FlagOperator | Kind(PrecAdditive)<<precShift | 6
	Caret         = FlagOperator | Kind(PrecAdditive)<<precShift | 7
	Pipe          = FlagOperator | Kind(PrecAdditive)<<precShift | 8
	Tilde         = FlagOperator | Kind(PrecBitNot)<<precShift | 9
	Equal         = FlagOperator | FlagComparison | Kind(PrecComparison)<<precShift | 10
	NotEqual      = FlagOperator | FlagComparison | Kind(PrecComparison)<<precShift | 11 // <>
	BangEqual     = FlagOperator | FlagComparison | Kind(PrecComparison)<<precShift | 12 // !=
	Less          = FlagOperator | FlagComparison | Kind(PrecComparison)<<precShift | 13
	Greater       = FlagOperator | FlagComparison | Kind(PrecComparison)<<precShift | 14
	LessEqual     = FlagOperator | FlagComparison | Kind(PrecComparison)<<precShift | 15
	GreaterEqual  = FlagOperator | FlagComparison | Kind(PrecComparison)<<precShift | 16
	NotLess       = FlagOperator | FlagComparison | Kind(PrecComparison)<<precShift | 17 // !<
	NotGreater    = FlagOperator | FlagComparison | Kind(PrecComparison)<<precShift | 18 // !>
	Assign        = FlagOperator | FlagAssignment | Kind(PrecAssignment)<<precShift | 19
	PlusAssign    = FlagOperator | FlagAssignment | Kind(PrecAssignment)<<precShift | 20
	MinusAssign   = FlagOperator | FlagAssignment | Kind(PrecAssignment)<<precShift | 21
	StarAssign    = FlagOperator | FlagAssignment | Kind(PrecAssignment)<<precShift | 22
	SlashAssign   = FlagOperator | FlagAssignment | Kind(PrecAssignment)<<precShift | 23
	PercentAssign = FlagOperator | FlagAssignment | Kind(PrecAssignment)<<precShift | 24
	AmpAssign     = FlagOperator | FlagAssignment | Kind(PrecAssignment)<<precShift | 25
	CaretAssign   = FlagOperator | FlagAssignment | Kind(PrecAssignment)<<precShift | 26
	PipeAssign    = FlagOperator | FlagAssignment | Kind(PrecAssignment)<<precShift | 27
)

// Brackets and punctuation.
const (
	LParen      = FlagBracket | Kind(PrecPrimary)<<precShift | 1
	RParen      = FlagBracket | 2
	Comma       = FlagPunct | Kind(PrecComma)<<precShift | 1
	Dot         = FlagPunct | Kind(PrecPrimary)<<precShift | 2
	DoubleColon = FlagPunct | Kind(PrecPrimary)<<precShift | 3
	Colon       = FlagPunct | 4
	Semicolon   = FlagPunct | 5
)

// Literals.
const (
	String  = FlagLiteral | 1
	NString = FlagLiteral | 2 // N'...'
	Integer = FlagLiteral | 3
	Decimal = FlagLiteral | 4
	Float   = FlagLiteral | 5
	Binary  = FlagLiteral | 6 // 0x...
	Money   = FlagLiteral | 7
)

// Non-keyword identifiers.
const (
	Identifier              = FlagIdentifier
	IdentifierQuoted        = FlagIdentifier | FlagQuoted
	IdentifierQuotedBracket = FlagIdentifier | FlagBracketed
	Variable                = FlagIdentifier | FlagVariable
)

// Category is the discriminator derived from a Kind.
type Category uint8

const (
	CatError Category = iota
	CatOperator
	CatBracket
	CatPunct
	CatLiteral
	CatIdentifier
	CatComment
)

func (c Category) String() string {
	switch c {
	case CatOperator:
		return "operator"
	case CatBracket:
		return "bracket"
	case CatPunct:
		return "punct"
	case CatLiteral:
		return "literal"
	case CatIdentifier:
		return "identifier"
	case CatComment:
		return "comment"
	default:
		return "error"
	}
}

// Category reports the kind's category; sentinels are CatError.
func (k Kind) Category() Category {
	if k <= 0 {
		return CatError
	}
	switch k & categoryMask {
	case FlagOperator:
		return CatOperator
	case FlagBracket:
		return CatBracket
	case FlagPunct:
		return CatPunct
	case FlagLiteral:
		return CatLiteral
	case FlagIdentifier:
		return CatIdentifier
	case FlagComment:
		return CatComment
	}
	return CatError
}

// Precedence returns the level 0..15; 0 for sentinels and non-operators.
func (k Kind) Precedence() int {
	if k <= 0 {
		return PrecNone
	}
	return int((k & precMask) >> precShift)
}

// Value returns the 8-bit value slot.
func (k Kind) Value() uint8 {
	if k <= 0 {
		return 0
	}
	return uint8(k & valueMask) //nolint:gosec // masked to 8 bits
}

func (k Kind) has(f Kind) bool { return k > 0 && k&f != 0 }

func (k Kind) IsError() bool      { return k < 0 && k != EOF }
func (k Kind) IsEOF() bool        { return k == EOF }
func (k Kind) IsSentinel() bool   { return k < 0 }
func (k Kind) IsOperator() bool   { return k.has(FlagOperator) }
func (k Kind) IsLiteral() bool    { return k.has(FlagLiteral) }
func (k Kind) IsIdentifier() bool { return k.has(FlagIdentifier) }
func (k Kind) IsKeyword() bool    { return k.has(FlagKeyword) }
func (k Kind) IsVariable() bool   { return k.has(FlagVariable) }
func (k Kind) IsQuoted() bool     { return k.has(FlagQuoted) }
func (k Kind) IsBracketed() bool  { return k.has(FlagBracketed) }
func (k Kind) IsSpecial() bool    { return k.has(FlagSpecial) }
func (k Kind) IsScalarType() bool { return k.has(FlagScalarType) }

// IsAssignment reports membership in the assignment family (=, +=, ...).
func (k Kind) IsAssignment() bool { return k.has(FlagAssignment) }

// IsComparison reports membership in the comparison family (=, <>, ...).
func (k Kind) IsComparison() bool { return k.has(FlagComparison) }

// IsReserved: keywords other than scalar type names.
func (k Kind) IsReserved() bool { return k.IsKeyword() && !k.IsScalarType() }

// IsPlainIdentifier reports a standard, quoted or bracketed identifier
// (variables included), excluding keywords.
func (k Kind) IsPlainIdentifier() bool {
	return k.IsIdentifier() && !k.IsKeyword()
}

// BindingPower maps a precedence level to a Pratt binding power. The low
// bit stays free so right-associative constructs can recurse with bp-1.
func BindingPower(level int) int { return level << 1 }

// String returns a stable name used in dumps.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	if k.IsKeyword() {
		if text, ok := keywordText(k); ok {
			return "Kw" + text
		}
	}
	return fmt.Sprintf("Kind(%#x)", int32(k))
}

var kindNames = map[Kind]string{
	None:                      "None",
	EOF:                       "EOF",
	ErrInvalidChar:            "ErrInvalidChar",
	ErrUnterminatedString:     "ErrUnterminatedString",
	ErrUnterminatedIdentifier: "ErrUnterminatedIdentifier",
	ErrBadNumber:              "ErrBadNumber",
	ErrNumberIdentFollows:     "ErrNumberIdentFollows",

	Plus: "Plus", Minus: "Minus", Star: "Star", Slash: "Slash", Percent: "Percent",
	Amp: "Amp", Caret: "Caret", Pipe: "Pipe", Tilde: "Tilde",
	Equal: "Equal", NotEqual: "NotEqual", BangEqual: "BangEqual",
	Less: "Less", Greater: "Greater", LessEqual: "LessEqual", GreaterEqual: "GreaterEqual",
	NotLess: "NotLess", NotGreater: "NotGreater",
	Assign: "Assign", PlusAssign: "PlusAssign", MinusAssign: "MinusAssign",
	StarAssign: "StarAssign", SlashAssign: "SlashAssign", PercentAssign: "PercentAssign",
	AmpAssign: "AmpAssign", CaretAssign: "CaretAssign", PipeAssign: "PipeAssign",

	LParen: "LParen", RParen: "RParen", Comma: "Comma", Dot: "Dot",
	DoubleColon: "DoubleColon", Colon: "Colon", Semicolon: "Semicolon",

	String: "String", NString: "NString", Integer: "Integer", Decimal: "Decimal",
	Float: "Float", Binary: "Binary", Money: "Money",

	Identifier: "Identifier", IdentifierQuoted: "IdentifierQuoted",
	IdentifierQuotedBracket: "IdentifierQuotedBracket", Variable: "Variable",
}
