package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/matzehuels/patterndb/pkg/pdb"
)

// progressStrideFor spreads roughly one hundred updates over a run.
func progressStrideFor(space pdb.Offset) pdb.Offset {
	stride := space / 100
	if stride == 0 {
		stride = 1
	}
	return stride
}

// expandedMsg carries the running expansion count into the model.
type expandedMsg pdb.Offset

// generateDoneMsg ends the program when the search drains or fails.
type generateDoneMsg struct{ err error }

// progressModel renders a one-line expansion bar while the generator
// runs. The address space of the search pattern is known up front, so
// the bar is exact, not an estimate.
type progressModel struct {
	total    pdb.Offset
	expanded pdb.Offset
	start    time.Time
	err      error
}

func (m progressModel) Init() tea.Cmd { return nil }

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case expandedMsg:
		m.expanded = pdb.Offset(msg)
		return m, nil
	case generateDoneMsg:
		m.err = msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m progressModel) View() string {
	const width = 30
	filled := 0
	if m.total > 0 {
		filled = int(m.expanded * width / m.total)
		if filled > width {
			filled = width
		}
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("  %s %s  %d/%d expansions (%s)\n",
		styleNumber.Render(bar), styleLabel.Render("generating"),
		m.expanded, m.total,
		time.Since(m.start).Round(time.Second))
}

// progressSink wires a generator progress callback to whatever surface
// fits the session: send feeds expansion counts (pass it to
// pdb.WithProgress) and run drives the generator to completion while
// rendering.
type progressSink struct {
	send func(pdb.Offset)
	run  func(generate func() error) error
}

// newProgressSink renders a bubbletea bar on interactive terminals and
// degrades to a bare run otherwise.
func newProgressSink(ctx context.Context, total pdb.Offset) *progressSink {
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		return &progressSink{
			send: func(pdb.Offset) {},
			run:  func(generate func() error) error { return generate() },
		}
	}

	program := tea.NewProgram(
		progressModel{total: total, start: time.Now()},
		tea.WithContext(ctx),
		tea.WithOutput(os.Stderr),
	)
	return &progressSink{
		send: func(expanded pdb.Offset) { program.Send(expandedMsg(expanded)) },
		run: func(generate func() error) error {
			done := make(chan error, 1)
			go func() {
				err := generate()
				program.Send(generateDoneMsg{err: err})
				done <- err
			}()
			if _, err := program.Run(); err != nil {
				return err
			}
			return <-done
		},
	}
}

