package source

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"os"

	"fortio.org/safecast"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// FileSet owns the files of one run and hands out FileIDs in insertion
// order. Add is not safe for concurrent use; once added, a File is
// read-only and may be shared between goroutines.
type FileSet struct {
	files []*File
	base  string // пусто: рабочая директория
}

func NewFileSet() *FileSet { return &FileSet{} }

// NewFileSetWithBase sets the directory relative paths are printed from.
func NewFileSetWithBase(base string) *FileSet { return &FileSet{base: base} }

func (fs *FileSet) SetBaseDir(dir string) { fs.base = dir }

// BaseDir returns the base directory, defaulting to the working directory.
func (fs *FileSet) BaseDir() string {
	if fs.base != "" {
		return fs.base
	}
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return wd
}

// Add registers content under path. Spans address bytes with uint32, so
// content of 4 GiB or more is rejected. The same path added twice gets
// two IDs.
func (fs *FileSet) Add(path string, content []byte, flags FileFlags) (FileID, error) {
	n, err := safecast.Conv[uint32](len(fs.files))
	if err != nil {
		return 0, fmt.Errorf("too many files: %w", err)
	}
	id := FileID(n)
	if _, err := safecast.Conv[uint32](len(content)); err != nil {
		return 0, fmt.Errorf("%s: file too large: %w", path, err)
	}
	fs.files = append(fs.files, &File{
		ID:      id,
		Path:    cleanPath(path),
		Content: content,
		LineIdx: indexLines(content),
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	})
	return id, nil
}

// Load reads path, drops a leading UTF-8 BOM (recorded in Flags) and adds
// the rest unchanged; CRLF stays as is.
func (fs *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	var flags FileFlags
	if rest, ok := bytes.CutPrefix(content, utf8BOM); ok {
		content, flags = rest, FileHadBOM
	}
	return fs.Add(path, content, flags)
}

// AddVirtual adds in-memory text (-e, stdin, repl, tests).
func (fs *FileSet) AddVirtual(name string, content []byte) FileID {
	id, err := fs.Add(name, content, FileVirtual)
	if err != nil {
		// строки в памяти такого размера сюда не доходят
		panic(err)
	}
	return id
}

// Get panics on an ID from another FileSet; see Lookup.
func (fs *FileSet) Get(id FileID) *File { return fs.files[id] }

func (fs *FileSet) Lookup(id FileID) (*File, bool) {
	if int(id) >= len(fs.files) {
		return nil, false
	}
	return fs.files[id], true
}

func (fs *FileSet) Len() int { return len(fs.files) }

// Resolve converts both ends of span to line/column.
func (fs *FileSet) Resolve(span Span) (start, end LineCol) {
	f := fs.files[span.File]
	return f.Position(span.Start), f.Position(span.End)
}

// NewVirtualFile builds a standalone file with ID 0.
func NewVirtualFile(name string, content []byte) *File {
	fs := NewFileSet()
	return fs.Get(fs.AddVirtual(name, content))
}
