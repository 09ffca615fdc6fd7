package driver

import (
	"sqlex/internal/parser"
)

// DefaultMaxDiagnostics caps the diagnostics kept per file.
const DefaultMaxDiagnostics = 100

// Options shared by every driver entry point.
type Options struct {
	MaxDiagnostics int
	Jobs           int            // <= 0: GOMAXPROCS
	Context        parser.Context // для ParseExpr*
	Cache          *TokenCache    // nil: без кэша
	Observer       ProgressObserver
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return DefaultMaxDiagnostics
	}
	return o.MaxDiagnostics
}

func (o Options) notify(ev ProgressEvent) {
	if o.Observer != nil {
		o.Observer(ev)
	}
}
