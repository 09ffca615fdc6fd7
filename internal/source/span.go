package source

import (
	"fmt"
)

// Span is a half-open byte range inside one file. Token spans cover the
// token text only; trivia carries its own spans.
type Span struct {
	File  FileID
	Start uint32 // в байтах включительно
	End   uint32 // в байтах не включительно
}

func (s Span) Empty() bool { return s.Start == s.End }

func (s Span) Len() uint32 { return s.End - s.Start }

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Cover returns the smallest span containing both s and other.
// Spans from different files are not merged.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	s.Start = min(s.Start, other.Start)
	s.End = max(s.End, other.End)
	return s
}

// Contains reports whether off lies inside the span.
func (s Span) Contains(off uint32) bool {
	return off >= s.Start && off < s.End
}

// Within reports whether s lies inside outer (same file, bounds included).
func (s Span) Within(outer Span) bool {
	return s.File == outer.File && s.Start >= outer.Start && s.End <= outer.End
}

// Precedes reports whether s ends at or before other starts.
func (s Span) Precedes(other Span) bool { return s.End <= other.Start }

// At is the empty span at off, used for insertions and end-of-input errors.
func At(file FileID, off uint32) Span { return Span{File: file, Start: off, End: off} }
