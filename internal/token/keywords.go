package token

import (
	"fmt"
	"sync"
)

// maxKeywordLen bounds the fold buffer; longer words are never keywords.
const maxKeywordLen = 32

type keywordTable struct {
	byText map[string]Kind // upper-case text
	byKind map[Kind]string
}

var keywords = sync.OnceValue(buildKeywordTable)

func buildKeywordTable() *keywordTable {
	t := &keywordTable{
		byText: make(map[string]Kind, len(keywordList)+int(scalarCount)),
		byKind: make(map[Kind]string, len(keywordList)+int(scalarCount)),
	}
	add := func(text string, k Kind) {
		if len(text) > maxKeywordLen {
			panic(fmt.Sprintf("token: keyword %q longer than %d", text, maxKeywordLen))
		}
		if !k.IsKeyword() {
			panic(fmt.Sprintf("token: %q registered with non-keyword kind %#x", text, int32(k)))
		}
		if _, dup := t.byText[text]; dup {
			panic(fmt.Sprintf("token: duplicate keyword %q", text))
		}
		if prev, dup := t.byKind[k]; dup {
			panic(fmt.Sprintf("token: keywords %q and %q share kind %#x", prev, text, int32(k)))
		}
		t.byText[text] = k
		t.byKind[k] = text
	}
	for _, e := range keywordList {
		if e.kind.IsScalarType() {
			panic(fmt.Sprintf("token: reserved keyword %q carries scalar flag", e.text))
		}
		add(e.text, e.kind)
	}
	for s := ScalarNone + 1; s < scalarCount; s++ {
		k := s.Kind()
		if back, ok := ScalarTypeOf(k); !ok || back != s {
			panic(fmt.Sprintf("token: scalar type %s does not round-trip", s))
		}
		add(upperASCII(scalarNames[s]), k)
	}
	return t
}

// LookupKeyword returns the keyword kind for text, ignoring ASCII case.
// Safe for concurrent use.
func LookupKeyword(text string) (Kind, bool) {
	if len(text) == 0 || len(text) > maxKeywordLen {
		return None, false
	}
	var buf [maxKeywordLen]byte
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c >= 'a' && c <= 'z':
			c -= 'a' - 'A'
		case c >= 0x80:
			return None, false
		}
		buf[i] = c
	}
	k, ok := keywords().byText[string(buf[:len(text)])]
	return k, ok
}

// IsReservedKeyword: keyword that is not a scalar type name.
func IsReservedKeyword(text string) bool {
	k, ok := LookupKeyword(text)
	return ok && k.IsReserved()
}

// KeywordText returns the canonical upper-case spelling for a keyword kind.
func KeywordText(k Kind) (string, bool) {
	return keywordText(k)
}

func keywordText(k Kind) (string, bool) {
	s, ok := keywords().byKind[k]
	return s, ok
}

func upperASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}
