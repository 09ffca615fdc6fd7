package source

import (
	"bytes"
	"path/filepath"
	"slices"
	"strings"
)

func indexLines(content []byte) []uint32 {
	idx := make([]uint32, 0, bytes.Count(content, []byte{'\n'}))
	for i, b := range content {
		if b == '\n' {
			idx = append(idx, uint32(i)) //nolint:gosec // длина проверена в Add
		}
	}
	return idx
}

// Position converts a byte offset into a line/column pair. A '\n' belongs
// to the line it ends.
func (f *File) Position(off uint32) LineCol {
	// число переводов строки строго до off
	line, _ := slices.BinarySearch(f.LineIdx, off)
	lineStart := uint32(0)
	if line > 0 {
		lineStart = f.LineIdx[line-1] + 1
	}
	return LineCol{Line: uint32(line) + 1, Col: off - lineStart + 1} //nolint:gosec // line <= len(LineIdx)
}

// GetLine returns line n (1-based) without its terminator, "" when out of range.
func (f *File) GetLine(n uint32) string {
	if n == 0 || int(n) > len(f.LineIdx)+1 {
		return ""
	}
	start := 0
	if n > 1 {
		start = int(f.LineIdx[n-2]) + 1
	}
	end := len(f.Content)
	if int(n) <= len(f.LineIdx) {
		end = int(f.LineIdx[n-1])
	}
	return strings.TrimSuffix(string(f.Content[start:end]), "\r")
}

// RelPath is Path relative to base; paths outside base stay as they are.
func (f *File) RelPath(base string) string {
	absPath, err := filepath.Abs(f.Path)
	if err != nil {
		return f.Path
	}
	absBase, err := filepath.Abs(base)
	if err != nil {
		return f.Path
	}
	rel, err := filepath.Rel(absBase, absPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return f.Path
	}
	return cleanPath(rel)
}

func (f *File) AbsPath() string {
	abs, err := filepath.Abs(f.Path)
	if err != nil {
		return f.Path
	}
	return cleanPath(abs)
}

func (f *File) BaseName() string { return filepath.Base(f.Path) }

// cleanPath: слеши одинаковые на всех платформах, для golden-файлов.
func cleanPath(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}
