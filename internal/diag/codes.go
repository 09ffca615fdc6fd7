package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo                   Code = 1000
	LexInvalidChar            Code = 1001
	LexUnterminatedString     Code = 1002
	LexUnterminatedIdentifier Code = 1003
	LexBadNumber              Code = 1004
	LexNumberIdentFollows     Code = 1005

	// Синтаксические
	SynInfo              Code = 2000
	SynUnexpectedToken   Code = 2001
	SynExpectExpression  Code = 2002
	SynExpectRParen      Code = 2003
	SynExpectLParen      Code = 2004
	SynBetweenMissingAnd Code = 2005
	SynIsMissingNull     Code = 2006
	SynAssignTarget      Code = 2007
	SynEmptyBlock        Code = 2008
	SynLexical           Code = 2009
	SynTrailingTokens    Code = 2010
	SynExpectPredicate   Code = 2011

	// Driver / IO
	IOInfo           Code = 4000
	IOLoadFileError  Code = 4001
	IORoundTripError Code = 4002
	IOCacheError     Code = 4003
)

var codeTitles = map[Code]string{
	UnknownCode:               "Unknown error",
	LexInfo:                   "Lexical information",
	LexInvalidChar:            "Invalid character",
	LexUnterminatedString:     "Unterminated string literal",
	LexUnterminatedIdentifier: "Unterminated delimited identifier",
	LexBadNumber:              "Malformed number",
	LexNumberIdentFollows:     "Identifier character after number",
	SynInfo:                   "Syntax information",
	SynUnexpectedToken:        "Unexpected token",
	SynExpectExpression:       "Expected expression",
	SynExpectRParen:           "Expected ')'",
	SynExpectLParen:           "Expected '('",
	SynBetweenMissingAnd:      "BETWEEN without AND",
	SynIsMissingNull:          "IS without NULL",
	SynAssignTarget:           "Invalid assignment target",
	SynEmptyBlock:             "Empty list",
	SynLexical:                "Lexical error in expression",
	SynTrailingTokens:         "Unexpected tokens after expression",
	SynExpectPredicate:        "Expected BETWEEN, LIKE or IN after NOT",
	IOInfo:                    "I/O information",
	IOLoadFileError:           "Failed to load file",
	IORoundTripError:          "Token stream does not reproduce the source",
	IOCacheError:              "Token cache failure",
}

// ID возвращает стабильный идентификатор вида LEX1001.
func (c Code) ID() string {
	switch {
	case c >= 1000 && c < 2000:
		return fmt.Sprintf("LEX%04d", uint16(c))
	case c >= 2000 && c < 3000:
		return fmt.Sprintf("SYN%04d", uint16(c))
	case c >= 4000 && c < 5000:
		return fmt.Sprintf("IO%04d", uint16(c))
	}
	return fmt.Sprintf("E%04d", uint16(c))
}

func (c Code) Title() string {
	if t, ok := codeTitles[c]; ok {
		return t
	}
	return codeTitles[UnknownCode]
}

func (c Code) String() string {
	return c.ID()
}
