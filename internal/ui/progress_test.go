package ui

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"sqlex/internal/driver"
)

func TestProgressModelAppliesEvents(t *testing.T) {
	files := []string{"a.sql", "b.sql"}
	m := NewProgressModel("check", files, nil).(*progressModel)

	m.Update(eventMsg(driver.ProgressEvent{Path: "a.sql", Status: driver.ProgressStart, Total: 2}))
	if got := m.rows[0].state; got != stateLexing {
		t.Fatalf("a.sql state = %v", got)
	}
	m.Update(eventMsg(driver.ProgressEvent{Path: "a.sql", Status: driver.ProgressDone, Done: 1, Total: 2, Errors: 2}))
	m.Update(eventMsg(driver.ProgressEvent{Path: "b.sql", Status: driver.ProgressDone, Done: 2, Total: 2, Cached: true}))
	m.Update(eventMsg(driver.ProgressEvent{Path: "unknown.sql", Status: driver.ProgressDone}))

	if m.done != 2 || m.errors != 2 {
		t.Fatalf("done=%d errors=%d", m.done, m.errors)
	}
	if m.rows[0].state != stateFailed || m.rows[1].state != stateCached {
		t.Fatalf("states = %v, %v", m.rows[0].state, m.rows[1].state)
	}

	m.Update(doneMsg{})
	view := m.View()
	for _, want := range []string{"done: check 2/2, 2 errors", "error(2)", "cached", "a.sql", "b.sql"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestProgressModelWindow(t *testing.T) {
	files := make([]string, 30)
	for i := range files {
		files[i] = fmt.Sprintf("q%02d.sql", i)
	}
	m := NewProgressModel("check", files, nil).(*progressModel)
	for i, path := range files[:25] {
		ev := driver.ProgressEvent{Path: path, Status: driver.ProgressDone, Done: i + 1, Total: 30, Elapsed: time.Millisecond}
		if path == "q03.sql" {
			ev.Errors = 1
		}
		if path == "q07.sql" {
			ev.Elapsed = time.Second
		}
		m.Update(eventMsg(ev))
	}
	m.Update(eventMsg(driver.ProgressEvent{Path: "q25.sql", Status: driver.ProgressStart}))

	shown, hidden := m.visible()
	// в работе q25, ошибка q03, ещё десять последних готовых
	if len(shown) != maxRows || hidden != 14 {
		t.Fatalf("shown=%d hidden=%d", len(shown), hidden)
	}
	view := m.View()
	for _, want := range []string{"q03.sql", "q25.sql", "q24.sql", "4 files", "14 more", "slowest q07.sql (1s)"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "q00.sql") {
		t.Errorf("oldest finished file must be folded:\n%s", view)
	}
}

func TestProgressModelEmpty(t *testing.T) {
	m := NewProgressModel("check", nil, nil)
	if v := m.View(); v != "" {
		t.Fatalf("view = %q", v)
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"short.sql", 20, "short.sql"},
		{"a/very/long/path.sql", 10, "a/very/..."},
		{"日本語.sql", 5, "日..."},
		{"abcdef", 3, "abc"},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.width); got != tc.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}

func TestRunProgressReturnsWorkError(t *testing.T) {
	var out bytes.Buffer
	boom := errors.New("boom")
	err := RunProgress(&out, "check", []string{"x.sql"}, func(obs driver.ProgressObserver) error {
		obs(driver.ProgressEvent{Path: "x.sql", Status: driver.ProgressStart, Total: 1})
		obs(driver.ProgressEvent{Path: "x.sql", Status: driver.ProgressDone, Done: 1, Total: 1})
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
}
