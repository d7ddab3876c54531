package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"cedar/internal/driver"
	"cedar/internal/pipeline"
	"cedar/internal/ui"
)

type checkOutcome struct {
	results []driver.FileResult
	err     error
}

// runCheckWithUI runs the directory check in the background and shows its
// progress until the last event.
func (s *session) runCheckWithUI(ctx context.Context, title string, files []string, opts *driver.Options) ([]driver.FileResult, error) {
	events := make(chan pipeline.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		optsCopy := *opts
		optsCopy.Progress = pipeline.ChannelSink{Ch: events}
		res, err := driver.CheckFiles(ctx, files, &optsCopy)
		outcomeCh <- checkOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(s.stdout), tea.WithContext(ctx))
	_, uiErr := program.Run()
	// вид мог закрыться раньше (ctrl+c): дочитываем события,
	// чтобы воркеры не встали на полном канале
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
