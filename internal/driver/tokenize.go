package driver

import (
	"context"
	"fmt"

	"sqlex/internal/diag"
	"sqlex/internal/lexer"
	"sqlex/internal/source"
	"sqlex/internal/token"
	"sqlex/internal/trace"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token // с завершающим EOF или токеном ошибки
	Bag     *diag.Bag
	Cached  bool
}

// TokenizeFile loads path and lexes it completely.
func TokenizeFile(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	res := tokenizeFile(ctx, fs.Get(id), opts)
	res.FileSet = fs
	return res, nil
}

// TokenizeSource lexes an in-memory source registered under name.
func TokenizeSource(ctx context.Context, name string, src []byte, opts Options) *TokenizeResult {
	fs := source.NewFileSet()
	res := tokenizeFile(ctx, fs.Get(fs.AddVirtual(name, src)), opts)
	res.FileSet = fs
	return res
}

func tokenizeFile(ctx context.Context, file *source.File, opts Options) *TokenizeResult {
	_, sp := trace.StartFile(ctx, "lex", file.Path)
	bag := diag.NewBag(opts.maxDiagnostics())
	res := &TokenizeResult{File: file, Bag: bag}

	if toks, ok := opts.Cache.Load(file); ok {
		// из кэша диагностики не читаются: восстанавливаем по токену ошибки
		reportLexErrors(bag, toks)
		res.Tokens, res.Cached = toks, true
		sp.WithCount("tokens", len(toks)).End("cached")
		return res
	}

	lx := lexer.New(lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	lx.Reset(file)
	res.Tokens = lexer.Collect(lx, true)
	if err := opts.Cache.Store(file, res.Tokens); err != nil {
		sp.Point("cache", err.Error())
		bag.Add(diag.New(diag.SevWarning, diag.IOCacheError,
			source.Span{File: file.ID}, "token cache write failed: "+err.Error()))
	}
	sp.WithCount("tokens", len(res.Tokens)).End("")
	return res
}

func reportLexErrors(bag *diag.Bag, toks []token.Token) {
	for _, tok := range toks {
		if tok.Kind.IsError() {
			bag.Add(diag.NewError(lexer.ErrorCode(tok.Kind), tok.Span, lexer.ErrorMessage(tok)))
		}
	}
}
