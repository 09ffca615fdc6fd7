package format

import (
	"fmt"
	"strings"
)

// KeywordCase selects how keyword tokens are spelled.
type KeywordCase uint8

const (
	CasePreserve KeywordCase = iota
	CaseUpper
	CaseLower
)

func (c KeywordCase) String() string {
	switch c {
	case CaseUpper:
		return "upper"
	case CaseLower:
		return "lower"
	}
	return "preserve"
}

// ParseKeywordCase accepts upper, lower and preserve in any case.
func ParseKeywordCase(s string) (KeywordCase, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "preserve":
		return CasePreserve, nil
	case "upper":
		return CaseUpper, nil
	case "lower":
		return CaseLower, nil
	}
	return CasePreserve, fmt.Errorf("format: unknown keyword case %q", s)
}

type Options struct {
	KeywordCase KeywordCase
	// NormalizeCommas drops blanks before ',' and leaves exactly one space after it.
	NormalizeCommas bool
}
