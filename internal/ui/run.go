package ui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"switchcraft/internal/catalog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Pick runs the selector on out (normally stderr, so stdout stays evaluable)
// and returns the chosen project or ErrCancelled.
func Pick(ctx context.Context, out io.Writer, opts Options) (catalog.Project, error) {
	if opts.Renderer == nil {
		opts.Renderer = lipgloss.NewRenderer(out)
	}

	p := tea.NewProgram(NewSelector(opts), tea.WithContext(ctx), tea.WithOutput(out))
	final, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return catalog.Project{}, ErrCancelled
	}
	if err != nil {
		return catalog.Project{}, fmt.Errorf("running selector: %w", err)
	}

	m, ok := final.(Selector)
	if !ok {
		return catalog.Project{}, fmt.Errorf("unexpected model %T", final)
	}
	if chosen, ok := m.Chosen(); ok {
		return chosen, nil
	}
	return catalog.Project{}, ErrCancelled
}
