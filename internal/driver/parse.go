package driver

import (
	"context"
	"fmt"

	"sqlex/internal/ast"
	"sqlex/internal/diag"
	"sqlex/internal/parser"
	"sqlex/internal/source"
	"sqlex/internal/token"
	"sqlex/internal/trace"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Expr    ast.Expr    // *ast.Error при синтаксической ошибке
	End     token.Token // EOF с хвостовым trivia
	Bag     *diag.Bag
	Err     *parser.Error
}

// ParseExprSource parses src as one complete expression.
func ParseExprSource(ctx context.Context, name, src string, opts Options) *ParseResult {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(name, []byte(src)))
	res := parseExprFile(ctx, file, opts)
	res.FileSet = fs
	return res
}

// ParseExprFile parses the whole file at path as one expression.
func ParseExprFile(ctx context.Context, path string, opts Options) (*ParseResult, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	res := parseExprFile(ctx, fs.Get(id), opts)
	res.FileSet = fs
	return res, nil
}

func parseExprFile(ctx context.Context, file *source.File, opts Options) *ParseResult {
	_, sp := trace.StartFile(ctx, "parse", file.Path)
	bag := diag.NewBag(opts.maxDiagnostics())
	p := parser.New(file, parser.Options{
		Context:  opts.Context,
		Reporter: diag.NewDedupReporter(diag.BagReporter{Bag: bag}),
	})
	r, _ := p.ParseTop() // ошибка та же, что p.Err()
	res := &ParseResult{File: file, Expr: r.Expr, End: r.End, Bag: bag, Err: p.Err()}
	if res.Err != nil {
		sp.End(res.Err.Code.ID())
	} else {
		sp.End("ok")
	}
	return res
}

// Render reproduces the parsed source.
func (r *ParseResult) Render() string {
	if r.Err != nil {
		return ""
	}
	return token.Render(append(r.Expr.Tokens(), r.End))
}

type SelectResult struct {
	FileSet *source.FileSet
	File    *source.File
	Header  *parser.SelectHeader
	Bag     *diag.Bag
	Err     *parser.Error
}

// ParseSelectSource parses the SELECT header at the start of src.
func ParseSelectSource(ctx context.Context, name, src string, opts Options) *SelectResult {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(name, []byte(src)))
	_, sp := trace.StartFile(ctx, "parse-select", file.Path)
	bag := diag.NewBag(opts.maxDiagnostics())
	p := parser.New(file, parser.Options{Reporter: diag.NewDedupReporter(diag.BagReporter{Bag: bag})})
	h, _ := p.ParseSelectHeader()
	if h != nil {
		sp.WithCount("columns", len(h.Columns))
	}
	if err := p.Err(); err != nil {
		sp.End(err.Code.ID())
	} else {
		sp.End("ok")
	}
	return &SelectResult{FileSet: fs, File: file, Header: h, Bag: bag, Err: p.Err()}
}
