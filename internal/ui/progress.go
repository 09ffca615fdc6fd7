package ui

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"sqlex/internal/driver"
)

type fileState uint8

const (
	stateQueued fileState = iota
	stateLexing
	stateOK
	stateCached
	stateFailed
)

var (
	stateLabels = [...]string{"queued", "lexing", "ok", "cached", "error"}
	stateColors = [...]lipgloss.Color{"8", "6", "2", "2", "1"}
)

func (s fileState) style() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(stateColors[s])
}

// maxRows: больше строк файлов не рисуем, остальное сводкой.
const maxRows = 12

type fileRow struct {
	path    string
	state   fileState
	errors  int
	elapsed time.Duration
}

type progressModel struct {
	title   string
	events  <-chan driver.ProgressEvent
	spinner spinner.Model
	bar     progress.Model
	rows    []fileRow
	byPath  map[string]int
	recent  []int // завершённые, новые в конце
	done    int
	errors  int
	busy    time.Duration
	slowest int // индекс, -1 пока ничего не готово
	width   int
	closed  bool
}

type eventMsg driver.ProgressEvent
type doneMsg struct{}

// NewProgressModel renders a directory run: a bar, files being lexed,
// files with errors and the most recently finished ones. It quits once
// events is closed.
func NewProgressModel(title string, files []string, events <-chan driver.ProgressEvent) tea.Model {
	sp := spinner.New(spinner.WithSpinner(spinner.MiniDot))
	sp.Style = stateLexing.style()

	m := &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(76)),
		rows:    make([]fileRow, len(files)),
		byPath:  make(map[string]int, len(files)),
		slowest: -1,
		width:   80,
	}
	for i, path := range files {
		m.rows[i] = fileRow{path: path}
		m.byPath[path] = i
	}
	return m
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.next())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		return m, tea.Batch(m.apply(driver.ProgressEvent(msg)), m.next())
	case doneMsg:
		m.closed = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case spinner.TickMsg:
		if !m.closed {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.bar.Width = max(msg.Width-4, 10)
		}
	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) next() tea.Cmd {
	return func() tea.Msg {
		if ev, ok := <-m.events; ok {
			return eventMsg(ev)
		}
		return doneMsg{}
	}
}

func (m *progressModel) apply(ev driver.ProgressEvent) tea.Cmd {
	i, ok := m.byPath[ev.Path]
	if !ok {
		return nil
	}
	row := &m.rows[i]
	if ev.Status == driver.ProgressStart {
		row.state = stateLexing
		return nil
	}

	row.errors, row.elapsed = ev.Errors, ev.Elapsed
	switch {
	case ev.Errors > 0:
		row.state = stateFailed
		m.errors += ev.Errors
	case ev.Cached:
		row.state = stateCached
	default:
		row.state = stateOK
	}
	m.done++
	m.busy += ev.Elapsed
	m.recent = append(m.recent, i)
	if m.slowest < 0 || ev.Elapsed > m.rows[m.slowest].elapsed {
		m.slowest = i
	}
	return m.bar.SetPercent(float64(m.done) / float64(len(m.rows)))
}

// visible: сначала файлы в работе и с ошибками, затем последние готовые.
func (m *progressModel) visible() (shown []int, hidden int) {
	for i, row := range m.rows {
		if row.state == stateLexing || row.state == stateFailed {
			shown = append(shown, i)
		}
	}
	room := maxRows - len(shown)
	for _, i := range slices.Backward(m.recent) {
		if m.rows[i].state == stateFailed {
			continue
		}
		if room <= 0 {
			hidden++
			continue
		}
		shown = append(shown, i)
		room--
	}
	slices.Sort(shown)
	return shown, hidden
}

func (m *progressModel) View() string {
	if len(m.rows) == 0 {
		return ""
	}
	header := fmt.Sprintf("%s %d/%d", m.title, m.done, len(m.rows))
	if m.errors > 0 {
		header += fmt.Sprintf(", %d errors", m.errors)
	}
	if m.closed {
		header = "done: " + header
	} else {
		header = m.spinner.View() + " " + header
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(header))
	b.WriteString("\n\n")

	shown, hidden := m.visible()
	nameWidth := max(m.width-16, 20)
	for _, i := range shown {
		row := m.rows[i]
		label := stateLabels[row.state]
		if row.errors > 0 {
			label = fmt.Sprintf("%s(%d)", label, row.errors)
		}
		fmt.Fprintf(&b, "  %s %s\n", row.state.style().Render(fmt.Sprintf("%10s", label)), truncate(row.path, nameWidth))
	}
	if hidden > 0 {
		fmt.Fprintf(&b, "  %10s %d more\n", "", hidden)
	}
	if queued := m.countState(stateQueued); queued > 0 {
		fmt.Fprintf(&b, "  %s %d files\n", stateQueued.style().Render(fmt.Sprintf("%10s", stateLabels[stateQueued])), queued)
	}

	b.WriteString("\n")
	if m.closed {
		b.WriteString(m.bar.ViewAs(1))
	} else {
		b.WriteString(m.bar.View())
	}
	b.WriteString("\n")
	if m.done > 0 {
		avg := m.busy / time.Duration(m.done)
		slow := m.rows[m.slowest]
		fmt.Fprintf(&b, "avg %s/file, slowest %s (%s)\n",
			avg.Round(time.Microsecond), truncate(slow.path, nameWidth/2), slow.elapsed.Round(time.Microsecond))
	}
	return b.String()
}

func (m *progressModel) countState(s fileState) int {
	n := 0
	for _, row := range m.rows {
		if row.state == s {
			n++
		}
	}
	return n
}

// truncate cuts value to width terminal cells, with "..." when there is room.
func truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	tail := "..."
	if width <= len(tail) {
		tail = ""
	}
	return runewidth.Truncate(value, width, tail)
}
