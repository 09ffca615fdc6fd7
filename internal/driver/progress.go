package driver

import "time"

// ProgressStatus tells whether a file started or finished.
type ProgressStatus uint8

const (
	ProgressStart ProgressStatus = iota
	ProgressDone
)

// ProgressEvent is sent for every file of a directory run.
type ProgressEvent struct {
	Path    string
	Status  ProgressStatus
	Done    int // завершено файлов, включая этот
	Total   int
	Errors  int // ошибок в этом файле
	Cached  bool
	Elapsed time.Duration
}

// ProgressObserver is called from worker goroutines and must be safe for
// concurrent use.
type ProgressObserver func(ProgressEvent)
