package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/Mr-Dark-debug/abxdash/internal/logging"
	"github.com/Mr-Dark-debug/abxdash/internal/page"
	"github.com/Mr-Dark-debug/abxdash/internal/tab"
)

// ────────────────────────────────────────────────────────────
// Messages
// ────────────────────────────────────────────────────────────

// SelectViewMsg asks the model to switch tabs. It is the only message that
// changes which view is shown; key presses are translated into it.
type SelectViewMsg struct {
	ID string
}

// SelectView returns a command that emits SelectViewMsg for id.
func SelectView(id string) tea.Cmd {
	return func() tea.Msg { return SelectViewMsg{ID: id} }
}

// ────────────────────────────────────────────────────────────
// Model
// ────────────────────────────────────────────────────────────

// Model is the root BubbleTea model for the abxdash TUI. The tab
// controller owns the active view; the model only keeps the composed page
// and the scroll position of its body.
type Model struct {
	ctrl     *tab.Controller
	composer *page.Composer
	log      logrus.FieldLogger
	keys     keyMap

	page     page.Page
	viewport viewport.Model
	ready    bool
	width    int
	height   int

	// Status
	statusMsg string
	err       error
}

// NewModel creates a model showing the controller's active view.
func NewModel(ctrl *tab.Controller, composer *page.Composer, log logrus.FieldLogger) Model {
	if log == nil {
		log = logging.Discard()
	}
	return Model{
		ctrl:     ctrl,
		composer: composer,
		log:      log,
		keys:     defaultKeyMap(),
		page:     composer.Compose(ctrl.State()),
	}
}

// Page returns the currently composed page.
func (m Model) Page() page.Page { return m.page }

// ────────────────────────────────────────────────────────────
// Init
// ────────────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.page.Header.Title)
}

// ────────────────────────────────────────────────────────────
// Update
// ────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if !m.ready {
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case SelectViewMsg:
		if err := m.ctrl.SelectView(msg.ID); err != nil {
			m.err = err
			m.statusMsg = fmt.Sprintf("No tab %q", msg.ID)
			m.log.WithError(err).WithField("view", msg.ID).Warn("tab selection rejected")
			return m, nil
		}
		m.err = nil
		m.statusMsg = ""
		m.page = m.composer.Compose(m.ctrl.State())
		if m.ready {
			m.viewport.SetContent(renderScrollBody(m.page, m.width))
			m.viewport.GotoTop()
		}
		return m, nil
	}

	return m, nil
}

// handleKey maps keys to tab selections, scrolling or quitting.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		return m, m.step(1)

	case key.Matches(msg, m.keys.Prev):
		return m, m.step(-1)

	case key.Matches(msg, m.keys.Jump):
		n := int(msg.String()[0] - '1')
		if n < len(m.page.Nav) {
			return m, SelectView(m.page.Nav[n].ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Scroll):
		if !m.ready {
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// step selects the tab delta places from the active one, wrapping.
func (m Model) step(delta int) tea.Cmd {
	n := len(m.page.Nav)
	if n == 0 {
		return nil
	}
	cur := 0
	for i, item := range m.page.Nav {
		if item.Active {
			cur = i
			break
		}
	}
	return SelectView(m.page.Nav[((cur+delta)%n+n)%n].ID)
}

// resize fits the body viewport between the header and status bars.
func (m *Model) resize() {
	chrome := lipgloss.Height(renderHeader(m.page, m.width)) +
		lipgloss.Height(renderNav(m.page, m.width)) +
		1 // status bar
	bodyHeight := max(m.height-chrome, 1)

	if !m.ready {
		m.viewport = viewport.New(m.width, bodyHeight)
		m.viewport.MouseWheelEnabled = true
		m.ready = true
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = bodyHeight
	}
	m.viewport.SetContent(renderScrollBody(m.page, m.width))
}

// ────────────────────────────────────────────────────────────
// View
// ────────────────────────────────────────────────────────────

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(m.page, m.width),
		renderNav(m.page, m.width),
		m.viewport.View(),
		renderStatusBar(&m),
	)
}
