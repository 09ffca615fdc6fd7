package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("q.sql", []byte("SELECT 1\nFROM t\r\nWHERE x"))
	f := fs.Get(id)

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{7, LineCol{Line: 1, Col: 8}},
		{8, LineCol{Line: 1, Col: 9}}, // сам '\n' принадлежит первой строке
		{9, LineCol{Line: 2, Col: 1}},
		{17, LineCol{Line: 3, Col: 1}},
		{23, LineCol{Line: 3, Col: 7}},
	}
	for _, tt := range tests {
		if got := f.Position(tt.off); got != tt.want {
			t.Errorf("Position(%d) = %+v, want %+v", tt.off, got, tt.want)
		}
	}

	start, end := fs.Resolve(Span{File: id, Start: 9, End: 13})
	if start.Line != 2 || end.Col != 5 {
		t.Fatalf("Resolve gave %+v..%+v", start, end)
	}
}

func TestGetLineTrimsCR(t *testing.T) {
	f := NewVirtualFile("q.sql", []byte("a\r\nbb\nccc"))
	for n, want := range map[uint32]string{1: "a", 2: "bb", 3: "ccc", 4: "", 0: ""} {
		if got := f.GetLine(n); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestLoadStripsBOMOnly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bom.sql")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBFSELECT\r\n1"), 0o600); err != nil {
		t.Fatal(err)
	}
	fs := NewFileSetWithBase(dir)
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "SELECT\r\n1" {
		t.Fatalf("content = %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 {
		t.Fatalf("expected FileHadBOM flag")
	}
	if got := f.RelPath(dir); got != "bom.sql" {
		t.Fatalf("relative path = %q", got)
	}
	if got := f.RelPath(t.TempDir()); got != f.Path {
		t.Fatalf("path outside base must stay absolute, got %q", got)
	}
	if f.BaseName() != "bom.sql" || !f.HadBOM() || f.IsVirtual() {
		t.Fatalf("basename=%q flags=%b", f.BaseName(), f.Flags)
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 8}
	b := Span{File: 1, Start: 2, End: 6}
	if got := a.Cover(b); got != (Span{File: 1, Start: 2, End: 8}) {
		t.Fatalf("Cover = %v", got)
	}
	if got := a.Cover(Span{File: 2, Start: 0, End: 100}); got != a {
		t.Fatalf("cross-file Cover must keep receiver, got %v", got)
	}
}

func TestInternerCanonical(t *testing.T) {
	in := NewInterner(" ", "\n")
	a := in.Canonical(" ")
	b := in.Canonical(string([]byte{' '}))
	if a != b || in.Len() != 2 || in.Hits() != 2 {
		t.Fatalf("expected one shared entry, len=%d hits=%d", in.Len(), in.Hits())
	}
	in.Canonical("\t")
	if in.Len() != 3 || in.Hits() != 2 {
		t.Fatalf("new string must be stored, len=%d hits=%d", in.Len(), in.Hits())
	}
}
