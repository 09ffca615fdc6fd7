package fix

import (
	"errors"
	"fmt"
	"sort"

	"sqlex/internal/diag"
	"sqlex/internal/source"
)

// ErrNoFixes is returned when no fixes were applied.
var ErrNoFixes = errors.New("no applicable fixes found")

// ApplyMode determines selection strategy for fixes.
type ApplyMode uint8

const (
	// ApplyModeOnce applies the first fix in source order.
	ApplyModeOnce ApplyMode = iota
	// ApplyModeAll applies every fix that does not overlap an earlier one.
	ApplyModeAll
)

// AppliedFix records a successfully applied fix.
type AppliedFix struct {
	Title     string
	Code      diag.Code
	File      source.FileID
	EditCount int
}

// SkippedFix captures a fix that was not applied, with a reason.
type SkippedFix struct {
	Title  string
	Code   diag.Code
	Reason string
}

// ApplyResult aggregates applied fixes, skipped ones and the rewritten
// contents, keyed by file.
type ApplyResult struct {
	Applied []AppliedFix
	Skipped []SkippedFix
	Content map[source.FileID][]byte
}

type candidate struct {
	diag  diag.Diagnostic
	fix   diag.Fix
	order int
}

// Apply collects fixes from diagnostics, selects a subset by mode and
// applies them to in-memory copies of the files. Nothing is written to disk.
func Apply(fs *source.FileSet, diagnostics []diag.Diagnostic, mode ApplyMode) (*ApplyResult, error) {
	result := &ApplyResult{Content: make(map[source.FileID][]byte)}
	if fs == nil {
		return result, errors.New("fix: FileSet is nil")
	}

	candidates, skips := gatherCandidates(diagnostics)
	result.Skipped = append(result.Skipped, skips...)
	if len(candidates) == 0 {
		return result, ErrNoFixes
	}
	sortCandidates(candidates)
	if mode == ApplyModeOnce {
		candidates = candidates[:1]
	}

	applied := make(map[source.FileID][]diag.FixEdit)
	for _, cand := range candidates {
		if reason := validate(fs, cand.fix.Edits, applied); reason != "" {
			result.Skipped = append(result.Skipped, SkippedFix{Title: cand.fix.Title, Code: cand.diag.Code, Reason: reason})
			continue
		}
		file := cand.fix.Edits[0].Span.File
		applied[file] = append(applied[file], cand.fix.Edits...)
		result.Applied = append(result.Applied, AppliedFix{
			Title:     cand.fix.Title,
			Code:      cand.diag.Code,
			File:      file,
			EditCount: len(cand.fix.Edits),
		})
	}
	if len(result.Applied) == 0 {
		return result, ErrNoFixes
	}
	for file, edits := range applied {
		out, err := ApplyEdits(fs.Get(file).Content, edits)
		if err != nil {
			return result, fmt.Errorf("fix: %s: %w", fs.Get(file).Path, err)
		}
		result.Content[file] = out
	}
	return result, nil
}

func gatherCandidates(diagnostics []diag.Diagnostic) ([]candidate, []SkippedFix) {
	var cands []candidate
	var skips []SkippedFix
	for _, d := range diagnostics {
		for _, f := range d.Fixes {
			if len(f.Edits) == 0 {
				skips = append(skips, SkippedFix{Title: f.Title, Code: d.Code, Reason: "fix has no edits"})
				continue
			}
			cands = append(cands, candidate{diag: d, fix: f, order: len(cands)})
		}
	}
	return cands, skips
}

// sortCandidates orders by primary span, then insertion order.
func sortCandidates(candidates []candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		di, dj := candidates[i].diag, candidates[j].diag
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		return candidates[i].order < candidates[j].order
	})
}

// validate: все правки в одном файле, в границах и не пересекаются с принятыми.
func validate(fs *source.FileSet, edits []diag.FixEdit, applied map[source.FileID][]diag.FixEdit) string {
	file := edits[0].Span.File
	f, ok := fs.Lookup(file)
	if !ok {
		return "unknown file"
	}
	size := uint32(len(f.Content))
	for i, e := range edits {
		if e.Span.File != file {
			return "fix spans several files"
		}
		if e.Span.End < e.Span.Start || e.Span.End > size {
			return "edit span out of range"
		}
		for _, prev := range applied[file] {
			if overlaps(prev.Span, e.Span) {
				return "conflicts with a previously applied edit"
			}
		}
		for _, other := range edits[:i] {
			if overlaps(other.Span, e.Span) {
				return "fix has overlapping edits"
			}
		}
	}
	return ""
}

// overlaps: две вставки в одну точку тоже конфликтуют.
func overlaps(a, b source.Span) bool {
	if a.Start == b.Start {
		return true
	}
	return a.Start < b.End && b.Start < a.End
}

// ApplyEdits rewrites content with non-overlapping edits given in any order.
func ApplyEdits(content []byte, edits []diag.FixEdit) ([]byte, error) {
	sorted := append([]diag.FixEdit(nil), edits...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Span.Start > sorted[j].Span.Start
	})
	out := append([]byte(nil), content...)
	limit := uint32(len(content))
	for _, e := range sorted {
		if e.Span.End < e.Span.Start || e.Span.End > limit {
			return nil, fmt.Errorf("edit %s out of range", e.Span)
		}
		suffix := append([]byte(nil), out[e.Span.End:]...)
		out = append(append(out[:e.Span.Start], e.NewText...), suffix...)
		limit = e.Span.Start
	}
	return out, nil
}
