package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/vmihailenco/msgpack/v5"

	"sqlex/internal/source"
	"sqlex/internal/token"
)

type TriviaOutput struct {
	Kind string `json:"kind" msgpack:"kind"`
	Text string `json:"text" msgpack:"text"`
	Raw  string `json:"raw" msgpack:"raw"`
}

// TokenOutput is the serializable form of a token.
type TokenOutput struct {
	Kind     string         `json:"kind" msgpack:"kind"`
	Text     string         `json:"text" msgpack:"text"`
	Start    uint32         `json:"start" msgpack:"start"`
	End      uint32         `json:"end" msgpack:"end"`
	Line     uint32         `json:"line,omitempty" msgpack:"line,omitempty"`
	Col      uint32         `json:"col,omitempty" msgpack:"col,omitempty"`
	Name     string         `json:"name,omitempty" msgpack:"name,omitempty"`
	Value    string         `json:"value,omitempty" msgpack:"value,omitempty"`
	Leading  []TriviaOutput `json:"leading,omitempty" msgpack:"leading,omitempty"`
	Trailing []TriviaOutput `json:"trailing,omitempty" msgpack:"trailing,omitempty"`
}

func triviaOutput(list []token.Trivia) []TriviaOutput {
	if len(list) == 0 {
		return nil
	}
	out := make([]TriviaOutput, len(list))
	for i, tv := range list {
		out[i] = TriviaOutput{Kind: tv.Kind.String(), Text: tv.Text, Raw: tv.Raw}
	}
	return out
}

// BuildTokensOutput converts tokens; fs may be nil, then no line/col is filled.
func BuildTokensOutput(tokens []token.Token, fs *source.FileSet) []TokenOutput {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		o := TokenOutput{
			Kind:     tok.Kind.String(),
			Text:     tok.Text,
			Start:    tok.Span.Start,
			End:      tok.Span.End,
			Name:     tok.Name,
			Value:    tok.Value,
			Leading:  triviaOutput(tok.Leading),
			Trailing: triviaOutput(tok.Trailing),
		}
		if fs != nil && int(tok.Span.File) < fs.Len() {
			pos, _ := fs.Resolve(tok.Span)
			o.Line, o.Col = pos.Line, pos.Col
		}
		out = append(out, o)
	}
	return out
}

// FormatTokensPretty prints one token per line:
//
//	1:1    KwSelect         "SELECT"
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for _, o := range BuildTokensOutput(tokens, fs) {
		pos := fmt.Sprintf("%d:%d", o.Line, o.Col)
		line := fmt.Sprintf("%-8s %-24s %s", pos, o.Kind, strconv.Quote(o.Text))
		if o.Value != "" && o.Value != o.Text {
			line += " value=" + strconv.Quote(o.Value)
		}
		if o.Name != "" && o.Name != o.Text {
			line += " name=" + strconv.Quote(o.Name)
		}
		for _, tv := range o.Leading {
			if tv.Kind != token.TriviaWhitespace.String() {
				line += " lead:" + tv.Kind
			}
		}
		for _, tv := range o.Trailing {
			if tv.Kind != token.TriviaWhitespace.String() {
				line += " trail:" + tv.Kind
			}
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func FormatTokensJSON(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildTokensOutput(tokens, fs))
}

// FormatTokensMsgpack writes the same structure as FormatTokensJSON in msgpack.
func FormatTokensMsgpack(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	enc := msgpack.NewEncoder(w)
	return enc.Encode(BuildTokensOutput(tokens, fs))
}
