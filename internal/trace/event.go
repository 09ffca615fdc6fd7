package trace

import "time"

// Kind of a trace event.
type Kind uint8

const (
	KindSpanBegin Kind = iota + 1
	KindSpanEnd
	KindPoint
	KindHeartbeat
)

func (k Kind) String() string {
	switch k {
	case KindSpanBegin:
		return "begin"
	case KindSpanEnd:
		return "end"
	case KindPoint:
		return "point"
	case KindHeartbeat:
		return "heartbeat"
	default:
		return "unknown"
	}
}

// Scope is the granularity of an event; smaller is coarser.
type Scope uint8

const (
	ScopeDriver Scope = iota + 1 // команда CLI целиком
	ScopePass                    // lex, parse, roundtrip
	ScopeFile                    // один .sql файл
	ScopeNode                    // отдельные токены / узлы
)

func (s Scope) String() string {
	switch s {
	case ScopeDriver:
		return "driver"
	case ScopePass:
		return "pass"
	case ScopeFile:
		return "file"
	case ScopeNode:
		return "node"
	default:
		return "unknown"
	}
}

// Event is one trace record.
type Event struct {
	Time     time.Time
	Seq      uint64 // порядковый номер, монотонный
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64 // 0 для корня
	Worker   int    // слот пула driver, 0 вне пула
	Name     string // "check", "lex", "parse", ...
	File     string // путь .sql для ScopeFile
	Detail   string
	Extra    map[string]string
}

// Label is Name with the file appended: "lex q.sql".
func (ev *Event) Label() string {
	if ev.File == "" {
		return ev.Name
	}
	return ev.Name + " " + ev.File
}
