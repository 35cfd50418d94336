// Package teaui hosts the Bubble Tea program for the daylist TUI.
package teaui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/daylist/pkg/dategroup"
	"tableflip.dev/daylist/pkg/listmodel"
	"tableflip.dev/daylist/pkg/source"
	"tableflip.dev/daylist/pkg/store"
	"tableflip.dev/daylist/pkg/tui/theme"
)

const (
	layoutDay = "Monday, January 2, 2006"
	helpText  = "j/k move · g/G top/bottom · r refresh · q quit"
)

// Options configures a Model.
type Options struct {
	Theme    theme.Theme
	Location *time.Location
	Logger   *slog.Logger
	ShowID   bool
}

// Model shows the grouped list of a source.Store and follows it as the store
// changes on disk. All refreshes happen inside Update.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc

	src   *source.Store
	mut   *dategroup.Mutator
	rows  *listmodel.Model[dategroup.Row]
	edits listmodel.Recorder

	theme    theme.Theme
	viewport viewport.Model
	showID   bool

	width  int
	height int
	offset int
	cursor int
	// selected is the key of the row under the cursor, so the cursor can
	// follow its item when rows move.
	selected string

	status string

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc
}

// New builds a model over src. The returned model owns a mutator subscribed
// to src until the program quits.
func New(parent context.Context, src *source.Store, opts Options) *Model {
	ctx, cancel := context.WithCancel(parent)
	m := &Model{
		ctx:      ctx,
		cancel:   cancel,
		src:      src,
		rows:     listmodel.New[dategroup.Row](),
		theme:    opts.Theme,
		showID:   opts.ShowID,
		viewport: viewport.New(viewport.WithWidth(1), viewport.WithHeight(1)),
	}
	m.rows.AddObserver(&m.edits)

	m.mut = dategroup.New(src, m.rows,
		dategroup.WithLocation(opts.Location),
		dategroup.WithLogger(opts.Logger))
	m.edits.Reset()

	m.cursor = m.nextContent(0, 1)
	m.remember()
	m.status = fmt.Sprintf("%d items", m.mut.Len())
	return m
}

// Run launches the Bubble Tea program.
func Run(ctx context.Context, src *source.Store, opts Options) error {
	m := New(ctx, src, opts)
	defer m.stop()
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init starts watching the store.
func (m *Model) Init() tea.Cmd {
	return startWatchCmd(m.ctx, m.src.Persistence())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.stop()
			return m, tea.Quit
		case "j", "down":
			m.move(1)
		case "k", "up":
			m.move(-1)
		case "g", "home":
			m.cursor = m.nextContent(0, 1)
			m.remember()
		case "G", "end":
			m.cursor = m.nextContent(m.rows.Len()-1, -1)
			m.remember()
		case "r":
			m.refresh()
		}
	case watchStartedMsg:
		if msg.err != nil {
			m.status = "ERR: watch " + msg.err.Error()
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchEventMsg:
		m.refresh()
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchStoppedMsg:
		m.stopWatch()
		if m.ctx.Err() == nil {
			cmds = append(cmds, startWatchCmd(m.ctx, m.src.Persistence()))
		}
	}

	m.render()
	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

// View renders the list above a one line footer.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "initializing…"
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), m.footer())
}

// Status is the text shown on the left of the footer.
func (m *Model) Status() string {
	return m.status
}

// Selected returns the row under the cursor.
func (m *Model) Selected() (dategroup.Row, bool) {
	if m.cursor < 0 || m.cursor >= m.rows.Len() {
		return dategroup.Row{}, false
	}
	return m.rows.Get(m.cursor), true
}

func (m *Model) stop() {
	m.stopWatch()
	m.mut.Close()
	m.cancel()
}

// refresh rereads the store; the mutator folds the difference into rows.
func (m *Model) refresh() {
	m.edits.Reset()
	changes := m.src.Refresh(m.ctx)
	m.reselect()
	m.status = fmt.Sprintf("%d items · %s · %d row edits", m.mut.Len(), changes, len(m.edits.Changes))
}

func (m *Model) layout() {
	m.viewport.SetWidth(max(m.width, 1))
	m.viewport.SetHeight(max(m.height-1, 1))
}

func (m *Model) move(delta int) {
	if next := m.nextContent(m.cursor+delta, delta); next >= 0 {
		m.cursor = next
		m.remember()
	}
}

// nextContent walks from i in direction dir to the first content row. It
// returns -1 when there is none.
func (m *Model) nextContent(i, dir int) int {
	for ; i >= 0 && i < m.rows.Len(); i += dir {
		if m.rows.Get(i).Kind == dategroup.KindContent {
			return i
		}
	}
	return -1
}

func (m *Model) remember() {
	if r, ok := m.Selected(); ok {
		m.selected = r.Key()
		return
	}
	m.selected = ""
}

// reselect puts the cursor back on the remembered row, or on the nearest
// content row to where it was when that row is gone.
func (m *Model) reselect() {
	if m.selected != "" {
		for i, r := range m.rows.Items() {
			if r.Key() == m.selected {
				m.cursor = i
				return
			}
		}
	}
	at := min(max(m.cursor, 0), m.rows.Len()-1)
	next := m.nextContent(at, 1)
	if next < 0 {
		next = m.nextContent(at, -1)
	}
	m.cursor = next
	m.remember()
}

func (m *Model) render() {
	if m.rows.Len() == 0 {
		m.viewport.SetContent(m.theme.Footer.Status.Render("no items yet"))
		m.viewport.SetYOffset(0)
		return
	}
	lines := make([]string, 0, m.rows.Len())
	for i, r := range m.rows.Items() {
		lines = append(lines, m.line(r, i == m.cursor))
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))

	h := max(m.height-1, 1)
	switch {
	case m.cursor < 0:
	case m.cursor < m.offset:
		m.offset = m.cursor
	case m.cursor >= m.offset+h:
		m.offset = m.cursor - h + 1
	}
	m.offset = min(m.offset, max(len(lines)-h, 0))
	m.viewport.SetYOffset(m.offset)
}

func (m *Model) line(r dategroup.Row, selected bool) string {
	var s string
	switch r.Kind {
	case dategroup.KindDateHeader:
		s = m.theme.List.Date.Render(r.Day.Format(layoutDay))
	case dategroup.KindSectionHeader:
		s = "  " + m.theme.Category(r.Category).Render(r.Category.Symbol()+" "+r.Category.String())
	case dategroup.KindContent:
		when := r.Item.Created.In(r.Day.Location()).Format("15:04")
		text := r.Item.Title
		if m.showID {
			text = r.Item.ID + "  " + text
		}
		if selected {
			s = "    " + m.theme.List.Selected.Render(when+"  "+text)
		} else {
			s = "    " + m.theme.List.Time.Render(when) + "  " + m.theme.List.Title.Render(text)
		}
	case dategroup.KindSeparator:
		if r.DateBoundary {
			s = m.theme.List.Rule.Render(strings.Repeat("─", max(m.width, 1)))
		}
	}
	if m.width > 0 {
		s = truncate.StringWithTail(s, uint(m.width), "…")
	}
	return s
}

func (m *Model) footer() string {
	status := m.theme.Footer.Status.Render(m.status)
	if strings.HasPrefix(m.status, "ERR:") {
		status = m.theme.Footer.Error.Render(m.status)
	}
	help := m.theme.Footer.Help.Render(helpText)
	gap := max(m.width-lipgloss.Width(status)-lipgloss.Width(help), 1)
	return truncate.String(status+strings.Repeat(" ", gap)+help, uint(max(m.width, 1)))
}
