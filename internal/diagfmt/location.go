package diagfmt

import (
	"sqlex/internal/diag"
	"sqlex/internal/source"
)

// hasLocation: у ошибок загрузки файла нет осмысленного места.
func hasLocation(d diag.Diagnostic, fs *source.FileSet) bool {
	if fs == nil || d.Code == diag.IOLoadFileError {
		return false
	}
	_, ok := fs.Lookup(d.Primary.File)
	return ok
}

func displayPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeRelative:
		return f.RelPath(fs.BaseDir())
	case PathModeAbsolute:
		return f.AbsPath()
	case PathModeBasename:
		return f.BaseName()
	}
	return f.Path
}
