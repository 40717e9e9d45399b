package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"switchcraft/internal/catalog"
	"switchcraft/internal/fuzzy"
	"switchcraft/internal/integration"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var ErrCancelled = errors.New("selection cancelled")

// VisibleRows is the height of the project window.
const VisibleRows = 10

// TickInterval drives the title and highlight animation.
const TickInterval = 100 * time.Millisecond

const (
	title       = "switch-craft"
	pauseFrames = 20
)

// metaKeys are shown next to each project name, in this order.
var metaKeys = []integration.Key{
	integration.Kubernetes,
	integration.GCloud,
	integration.AWS,
	integration.Azure,
	integration.Venv,
}

type Options struct {
	Projects []catalog.Project
	Registry *integration.Registry
	Icons    map[integration.Key]string
	Renderer *lipgloss.Renderer

	// Preview lists the commands a switch to the project would run.
	Preview func(catalog.Project) []string

	// Copy writes to the clipboard. Defaults to atotto/clipboard.
	Copy func(string) error
}

type direction int

const (
	forward direction = iota
	backward
	paused
)

type tickMsg time.Time

type copiedMsg struct{ err error }

// Selector is the bubbletea model of the project picker.
type Selector struct {
	opts   Options
	names  []string
	keys   keyMap
	styles styles
	input  textinput.Model

	filtered    []catalog.Project
	index       int
	offset      int
	showPreview bool
	status      string

	phase    int
	rotation int
	dir      direction
	pause    int

	chosen    *catalog.Project
	cancelled bool
	quitting  bool
}

func NewSelector(opts Options) Selector {
	if opts.Registry == nil {
		opts.Registry = integration.NewRegistry()
	}
	if opts.Renderer == nil {
		opts.Renderer = lipgloss.DefaultRenderer()
	}
	if opts.Copy == nil {
		opts.Copy = clipboard.WriteAll
	}
	st := newStyles(opts.Renderer)

	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = "Type to filter..."
	in.PlaceholderStyle = st.dim
	in.TextStyle = opts.Renderer.NewStyle()
	in.Cursor.Style = opts.Renderer.NewStyle()
	in.Cursor.TextStyle = opts.Renderer.NewStyle()
	in.Focus()

	names := make([]string, len(opts.Projects))
	for i, p := range opts.Projects {
		names[i] = p.Name
	}

	return Selector{
		opts:     opts,
		names:    names,
		keys:     defaultKeyMap(),
		styles:   st,
		input:    in,
		filtered: opts.Projects,
	}
}

func tick() tea.Cmd {
	return tea.Tick(TickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Selector) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tick())
}

func (m Selector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.quitting {
			return m, nil
		}
		m.animate()
		return m, tick()

	case copiedMsg:
		if msg.err != nil {
			m.status = "Copy failed: " + msg.err.Error()
		} else {
			m.status = "Copied preview to clipboard"
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.cancelled = true
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Select):
			if p, ok := m.Highlighted(); ok {
				m.chosen = &p
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		case key.Matches(msg, m.keys.Up):
			m.move(-1)
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.move(1)
			return m, nil
		case key.Matches(msg, m.keys.Preview):
			m.showPreview = !m.showPreview
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			return m, m.copyPreview()
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.setQuery(m.input.Value())
	}
	return m, cmd
}

// SetQuery replaces the filter text as if it had been typed.
func (m *Selector) SetQuery(q string) {
	m.input.SetValue(q)
	m.setQuery(q)
}

func (m *Selector) setQuery(q string) {
	m.filtered = m.filter(q)
	m.index = 0
	m.offset = 0
	m.status = ""
}

func (m Selector) filter(q string) []catalog.Project {
	if q == "" {
		return m.opts.Projects
	}
	results := fuzzy.Search(q, m.names)
	out := make([]catalog.Project, len(results))
	for i, r := range results {
		out[i] = m.opts.Projects[r.Index]
	}
	return out
}

// move keeps the highlighted row inside the visible window.
func (m *Selector) move(delta int) {
	next := m.index + delta
	if next < 0 || next >= len(m.filtered) {
		return
	}
	m.index = next
	if m.index < m.offset {
		m.offset = m.index
	}
	if m.index >= m.offset+VisibleRows {
		m.offset = m.index - VisibleRows + 1
	}
}

func (m *Selector) animate() {
	m.phase = (m.phase + 1) % len(rainbowHex)

	n := len([]rune(title))
	switch m.dir {
	case forward:
		if m.rotation >= n {
			m.dir = paused
		} else {
			m.rotation++
		}
	case backward:
		if m.rotation <= 0 {
			m.dir = paused
		} else {
			m.rotation--
		}
	case paused:
		m.pause++
		if m.pause >= pauseFrames {
			m.pause = 0
			if m.rotation >= n {
				m.dir = backward
			} else {
				m.dir = forward
			}
		}
	}
}

func (m Selector) copyPreview() tea.Cmd {
	p, ok := m.Highlighted()
	if !ok || m.opts.Preview == nil {
		return nil
	}
	text := strings.Join(m.opts.Preview(p), "\n")
	write := m.opts.Copy
	return func() tea.Msg {
		return copiedMsg{err: write(text)}
	}
}

func (m Selector) Highlighted() (catalog.Project, bool) {
	if m.index < 0 || m.index >= len(m.filtered) {
		return catalog.Project{}, false
	}
	return m.filtered[m.index], true
}

func (m Selector) Filtered() []catalog.Project {
	return m.filtered
}

func (m Selector) Index() int {
	return m.index
}

func (m Selector) Offset() int {
	return m.offset
}

func (m Selector) PreviewVisible() bool {
	return m.showPreview
}

// Chosen reports the selected project once the program has exited.
func (m Selector) Chosen() (catalog.Project, bool) {
	if m.chosen == nil {
		return catalog.Project{}, false
	}
	return *m.chosen, true
}

func (m Selector) Cancelled() bool {
	return m.cancelled
}

func rotate(s string, n int) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	shift := ((n % len(runes)) + len(runes)) % len(runes)
	return string(runes[shift:]) + string(runes[:shift])
}

func (m Selector) View() string {
	if m.quitting {
		return ""
	}
	st := m.styles
	var b strings.Builder

	b.WriteString(st.dim.Render(">") + " " + st.rainbow(rotate(title, m.rotation), 0))
	b.WriteString(st.dim.Render(" - Select a project"))
	b.WriteString("\n\n")
	b.WriteString(st.prompt.Render("Search: ") + m.input.View())
	b.WriteString("\n\n")

	if m.offset > 0 {
		b.WriteString(st.dim.Render(fmt.Sprintf(" ↑ %d more above", m.offset)) + "\n")
	}
	if len(m.filtered) == 0 {
		b.WriteString(st.dim.Render(" No matches found") + "\n")
	}
	end := min(m.offset+VisibleRows, len(m.filtered))
	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderRow(m.filtered[i], i == m.index) + "\n")
	}
	if below := len(m.filtered) - end; below > 0 {
		b.WriteString(st.dim.Render(fmt.Sprintf(" ↓ %d more below", below)) + "\n")
	}

	if p, ok := m.Highlighted(); ok && m.showPreview && m.opts.Preview != nil {
		lines := []string{st.heading.Render("Commands Preview:")}
		for _, c := range m.opts.Preview(p) {
			lines = append(lines, st.dim.Render(" "+c))
		}
		b.WriteString(st.preview.Render(strings.Join(lines, "\n")) + "\n")
	}

	if m.status != "" {
		b.WriteString(st.status.Render(m.status) + "\n")
	}

	b.WriteString("\n" + m.renderHelp())
	return b.String()
}

func (m Selector) renderRow(p catalog.Project, selected bool) string {
	st := m.styles
	var line string
	if selected {
		line = st.rainbow(">", m.phase) + " " + st.bold.Render(st.rainbow(p.Name, m.phase))
	} else {
		line = "  " + p.Name
	}

	var meta []string
	for _, k := range metaKeys {
		v := p.Value(k)
		if v == "" {
			continue
		}
		desc := m.opts.Registry.Descriptor(k)
		label := desc.Label
		if icon := m.opts.Icons[k]; icon != "" {
			label = icon + " " + label
		}
		meta = append(meta, st.fg(desc.Color).Render(label+":")+" "+v)
	}
	if len(meta) > 0 {
		line += " [" + strings.Join(meta, "] [") + "]"
	}
	return line
}

func (m Selector) renderHelp() string {
	var parts []string
	for _, k := range m.keys.help() {
		h := k.Help()
		parts = append(parts, "["+h.Key+"] "+h.Desc)
	}
	return m.styles.dim.Render(strings.Join(parts, "   "))
}
