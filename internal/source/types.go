package source

import "fmt"

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32 // просто ID источника
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, repl).
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM is set when a UTF-8 BOM was stripped on load.
	FileHadBOM
)

// File captures metadata and content for a single SQL source.
// Content is kept byte-exact (CRLF is not normalized) so that a token
// stream can always be rendered back to it.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // offsets of every '\n'
	Hash    [32]byte
	Flags   FileFlags
}

// HadBOM reports that a UTF-8 BOM was stripped; writers put it back.
func (f *File) HadBOM() bool { return f.Flags&FileHadBOM != 0 }

// IsVirtual reports an in-memory file (-e, stdin, repl, tests).
func (f *File) IsVirtual() bool { return f.Flags&FileVirtual != 0 }

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based, in bytes
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Col) }
