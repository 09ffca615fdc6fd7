package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"sqlex/internal/diag"
	"sqlex/internal/source"
	"sqlex/internal/token"
	"sqlex/internal/trace"
)

// FileResult is the outcome for one file of a directory run.
type FileResult struct {
	Path      string
	FileID    source.FileID
	Loaded    bool
	Tokens    []token.Token
	Bag       *diag.Bag
	Cached    bool
	RoundTrip bool // CheckDir: поток воспроизводит файл байт в байт
}

// ListSQLFiles returns the *.sql files under dir in sorted order. A path to
// a single file yields just that file.
func ListSQLFiles(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{dir}, nil
	}
	var files []string
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".sql") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(files)
	return files, nil
}

// TokenizeDir lexes every *.sql file under dir in parallel.
func TokenizeDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []FileResult, error) {
	return runDir(ctx, dir, opts, "tokenize", false)
}

// CheckDir lexes every *.sql file under dir and verifies that each token
// stream renders back to its file.
func CheckDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []FileResult, error) {
	return runDir(ctx, dir, opts, "check", true)
}

func runDir(ctx context.Context, dir string, opts Options, pass string, verify bool) (*source.FileSet, []FileResult, error) {
	ctx, sp := trace.Start(ctx, trace.ScopePass, pass)
	defer sp.End("")

	files, err := ListSQLFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	base := dir
	if len(files) == 1 && files[0] == dir {
		base = filepath.Dir(dir)
	}
	fileSet := source.NewFileSetWithBase(base)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// FileSet не потокобезопасен на запись: грузим всё заранее
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error)
	for _, path := range files {
		id, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = id
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	jobs = min(jobs, len(files))
	sp.WithCount("files", len(files)).WithCount("jobs", jobs)

	// номера слотов пула для trace: воркер берёт свободный и возвращает
	slots := make(chan int, jobs)
	for w := 1; w <= jobs; w++ {
		slots <- w
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]FileResult, len(files))
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			w := <-slots
			defer func() { slots <- w }()
			wctx := trace.WithWorker(gctx, w)
			opts.notify(ProgressEvent{Path: path, Status: ProgressStart, Total: len(files)})
			started := time.Now()

			res := FileResult{Path: path}
			if loadErr, failed := loadErrors[path]; failed {
				res.Bag = diag.NewBag(opts.maxDiagnostics())
				res.Bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFileError,
					Message:  "failed to load file: " + loadErr.Error(),
				})
			} else {
				file := fileSet.Get(fileIDs[path])
				tr := tokenizeFile(wctx, file, opts)
				res.FileID, res.Loaded = file.ID, true
				res.Tokens, res.Bag, res.Cached = tr.Tokens, tr.Bag, tr.Cached
				if verify {
					res.RoundTrip = verifyRoundTrip(file, tr.Tokens, tr.Bag)
				}
			}
			results[i] = res

			opts.notify(ProgressEvent{
				Path:    path,
				Status:  ProgressDone,
				Done:    int(done.Add(1)),
				Total:   len(files),
				Errors:  countErrors(res.Bag),
				Cached:  res.Cached,
				Elapsed: time.Since(started),
			})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

func countErrors(bag *diag.Bag) int {
	if bag == nil {
		return 0
	}
	n := 0
	for _, d := range bag.Items() {
		if d.Severity >= diag.SevError {
			n++
		}
	}
	return n
}

// Summary aggregates a directory run.
type Summary struct {
	Files             int
	Tokens            int
	Errors            int
	Warnings          int
	Cached            int
	RoundTripFailures int
}

// Summarize counts over results; verify selects whether round-trip
// failures are counted.
func Summarize(results []FileResult, verify bool) Summary {
	var s Summary
	for _, r := range results {
		s.Files++
		s.Tokens += len(r.Tokens)
		if r.Cached {
			s.Cached++
		}
		if verify && r.Loaded && !r.RoundTrip {
			s.RoundTripFailures++
		}
		if r.Bag == nil {
			continue
		}
		for _, d := range r.Bag.Items() {
			switch d.Severity {
			case diag.SevError:
				s.Errors++
			case diag.SevWarning:
				s.Warnings++
			}
		}
	}
	return s
}

// MergeBags collects the diagnostics of every result into one sorted bag.
func MergeBags(results []FileResult) *diag.Bag {
	out := diag.NewBag(0)
	for _, r := range results {
		if r.Bag != nil {
			out.Merge(r.Bag)
		}
	}
	out.Sort()
	return out
}
