package diagfmt

import (
	"sqlex/internal/diag"
	"sqlex/internal/source"
)

// previewLine applies edit to the line it starts on and returns the result.
// Edits spanning several lines are not previewed.
func previewLine(file *source.File, edit diag.FixEdit) (string, bool) {
	start := file.Position(edit.Span.Start)
	end := file.Position(edit.Span.End)
	if start.Line != end.Line {
		return "", false
	}
	line := file.GetLine(start.Line)
	from, to := int(start.Col)-1, int(end.Col)-1
	if from < 0 || to < from || to > len(line) {
		return "", false
	}
	return line[:from] + edit.NewText + line[to:], true
}
