package ui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"sqlex/internal/driver"
)

// RunProgress drives work while rendering progress to out. work receives
// an observer to hand to the driver; its error is returned after the view
// has finished.
func RunProgress(out io.Writer, title string, files []string, work func(driver.ProgressObserver) error) error {
	events := make(chan driver.ProgressEvent, len(files)*2+1)
	prog := tea.NewProgram(NewProgressModel(title, files, events), tea.WithOutput(out), tea.WithInput(nil))

	workErr := make(chan error, 1)
	go func() {
		defer close(events)
		workErr <- work(func(ev driver.ProgressEvent) { events <- ev })
	}()

	if _, err := prog.Run(); err != nil {
		// view сломался, но работу всё равно дожидаемся
		for range events {
		}
		if werr := <-workErr; werr != nil {
			return werr
		}
		return err
	}
	return <-workErr
}
