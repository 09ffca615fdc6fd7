package format

import (
	"strings"

	"sqlex/internal/token"
)

// normalizeCommas rewrites trivia around commas in place.
//
// Rules:
//   - blanks between the previous token and ',' are removed;
//   - exactly one space follows ',' unless the next token is ')', ',' or
//     EOF, or the comma's trailing trivia holds a newline or a comment.
func normalizeCommas(toks []token.Token) {
	for i := range toks {
		if toks[i].Kind != token.Comma {
			continue
		}
		if len(toks[i].Leading) == 0 && i > 0 {
			toks[i-1].Trailing = dropTrailingBlanks(toks[i-1].Trailing)
		}
		next := token.EOF
		if i+1 < len(toks) {
			next = toks[i+1].Kind
		}
		toks[i].Trailing = oneSpaceAfter(toks[i], next)
	}
}

// dropTrailingBlanks removes a final same-line whitespace run.
func dropTrailingBlanks(list []token.Trivia) []token.Trivia {
	if len(list) == 0 {
		return list
	}
	last := list[len(list)-1]
	if last.Kind != token.TriviaWhitespace || strings.Contains(last.Raw, "\n") || strings.Contains(last.Raw, "\r") {
		return list
	}
	return list[:len(list)-1]
}

func oneSpaceAfter(comma token.Token, next token.Kind) []token.Trivia {
	tr := comma.Trailing
	for _, tv := range tr {
		if tv.IsComment() || strings.ContainsAny(tv.Raw, "\r\n") {
			return tr
		}
	}
	if next == token.RParen || next == token.Comma || next == token.EOF {
		return nil
	}
	if len(tr) == 1 && tr[0].Raw == " " {
		return tr
	}
	// новый пробел не привязан к исходнику: пустой Span
	return []token.Trivia{{Kind: token.TriviaWhitespace, Text: " ", Raw: " "}}
}
