package confirm

import (
	"log/slog"
	"math"
	"strings"
	"sync"

	"github.com/billie-coop/confirm/dialog"
	"github.com/billie-coop/confirm/dialog/content"
	"github.com/billie-coop/confirm/dialog/sizing"
	"github.com/billie-coop/confirm/internal/logging"
	"github.com/billie-coop/confirm/internal/tui/components/core"
	"github.com/billie-coop/confirm/internal/tui/events"
	"github.com/billie-coop/confirm/internal/tui/styles"
	"github.com/charmbracelet/bubbles/v2/key"
	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// Rows taken by everything but the message: blank line, button row,
// blank line, help line.
const buttonAreaRows = 4

var (
	_ dialog.Container = (*Model)(nil)
	_ core.Component   = (*Model)(nil)
	_ core.Sizeable    = (*Model)(nil)
	_ core.Focusable   = (*Model)(nil)
)

// ResolvedMsg is sent after a key press resolved a dialog
type ResolvedMsg struct {
	DialogID   string
	Resolution dialog.Resolution
	Trigger    dialog.Trigger
}

// Model renders one open confirmation dialog. It is the dialog.Container
// handed back by Manager.Open.
type Model struct {
	*BaseDialog

	d      *dialog.Dialog
	keys   KeyMap
	broker *events.Broker
	logger *slog.Logger

	// Container setters may run outside the Bubble Tea loop.
	mu       sync.Mutex
	message  string
	buttons  []*dialog.Button
	focused  int
	size     sizing.Dimensions
	width    int
	height   int
	viewport viewport.Model

	onDismiss func(m *Model)
}

// NewModel creates a closed model for d
func NewModel(d *dialog.Dialog, theme *styles.Theme, broker *events.Broker, logger *slog.Logger) *Model {
	if logger == nil {
		logger = logging.Discard()
	}
	m := &Model{
		BaseDialog: NewBaseDialog(d.Caption(), theme),
		d:          d,
		keys:       DefaultKeyMap(),
		broker:     broker,
		logger:     logger.With("dialog", d.ID()),
		viewport:   viewport.New(),
	}
	m.viewport.MouseWheelEnabled = true
	return m
}

// Dialog returns the dialog this model renders
func (m *Model) Dialog() *dialog.Dialog {
	return m.d
}

// SetCaption implements dialog.TextHost
func (m *Model) SetCaption(caption string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetTitle(caption)
	m.layout()
}

// SetMessage implements dialog.TextHost
func (m *Model) SetMessage(text string, mode content.Mode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.message = content.Format(text, mode)
	m.layout()
}

// SetButtons implements dialog.ButtonHost. Focus starts on the primary
// button, or on the last one when none is primary.
func (m *Model) SetButtons(buttons []*dialog.Button) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.buttons = buttons
	m.focused = len(buttons) - 1
	for i, b := range buttons {
		if b.Primary {
			m.focused = i
			break
		}
	}
}

// Resize implements dialog.Resizer. One ch is one terminal column and one
// em is one terminal row.
func (m *Model) Resize(size sizing.Dimensions) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.size = size
	m.layout()
}

// Dismiss implements dialog.Dismisser. It closes the model and tells the
// manager, once.
func (m *Model) Dismiss() {
	m.mu.Lock()
	if !m.IsOpen() {
		m.mu.Unlock()
		return
	}
	m.Close()
	hook := m.onDismiss
	m.mu.Unlock()

	if hook != nil {
		hook(m)
	}
}

// SetSize sets the window size the dialog is centered in
func (m *Model) SetSize(width, height int) tea.Cmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SizeableBase.SetSize(width, height)
	m.layout()
	return nil
}

// Visible returns whether the dialog is open and not yet dismissed
func (m *Model) Visible() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.IsOpen()
}

// Focused returns the id of the focused button
func (m *Model) Focused() (dialog.ButtonID, bool) {
	b := m.focusedButton()
	if b == nil {
		return "", false
	}
	return b.ID, true
}

func (m *Model) focusedButton() *dialog.Button {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.focused < 0 || m.focused >= len(m.buttons) {
		return nil
	}
	return m.buttons[m.focused]
}

// OuterSize returns the rendered size in cells, borders included
func (m *Model) OuterSize() (width, height int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.width, m.height
}

// layout turns the estimated size into cells and rebuilds the scrollable
// message area. Callers hold mu.
func (m *Model) layout() {
	s := m.theme.S()
	frame := s.DialogBorder

	w := int(math.Ceil(m.size.Width))
	h := int(math.Ceil(m.size.Height))
	w, h = m.Fit(w, h)

	innerW := max(w-frame.GetHorizontalFrameSize(), 1)
	innerH := max(h-frame.GetVerticalFrameSize(), 1)

	rows := innerH - buttonAreaRows
	if m.Title() != "" {
		rows -= 2
	}
	rows = max(rows, 1)

	m.width, m.height = w, h
	m.viewport = viewport.New(
		viewport.WithWidth(innerW),
		viewport.WithHeight(rows),
	)
	m.viewport.MouseWheelEnabled = true
	m.viewport.SetContent(s.Text.Width(innerW).Render(m.message))
}

// Init initializes the dialog
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.Visible() {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, m.keys.Next):
			m.moveFocus(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.moveFocus(-1)
			return m, nil
		case key.Matches(msg, m.keys.Activate):
			b := m.focusedButton()
			if b == nil {
				return m, nil
			}
			return m, m.resolve(m.d.PressButton(b))
		case key.Matches(msg, m.keys.Dismiss):
			return m, m.resolve(m.d.Activate(dialog.TriggerDismiss))
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) moveFocus(delta int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := len(m.buttons)
	if n == 0 {
		return
	}
	m.focused = ((m.focused+delta)%n + n) % n
}

// resolve reports the outcome of a press. The controller has already
// called the listener and dismissed the model by the time this runs.
func (m *Model) resolve(err error) tea.Cmd {
	if err != nil {
		m.logger.Warn("failed to resolve dialog", "error", err)
		if m.broker != nil {
			m.broker.Publish(events.Event{
				Type: events.ErrorMessageEvent,
				Payload: events.StatusMessagePayload{
					Message: err.Error(),
					Type:    "error",
				},
			})
		}
		return nil
	}

	t, ok := m.d.Trigger()
	if !ok {
		return nil
	}
	out := ResolvedMsg{
		DialogID:   m.d.ID(),
		Resolution: m.d.Resolution(),
		Trigger:    t,
	}
	return func() tea.Msg { return out }
}

// View renders the dialog
func (m *Model) View() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.IsOpen() {
		return ""
	}

	s := m.theme.S()
	var parts []string
	if title := m.RenderTitle(); title != "" {
		parts = append(parts, title, "")
	}
	parts = append(parts,
		m.viewport.View(),
		"",
		m.renderButtons(),
		"",
		s.Help.Render(m.renderHelp()),
	)

	body := lipgloss.JoinVertical(lipgloss.Left, parts...)
	return m.RenderDialog(body, m.width, m.height)
}

func (m *Model) renderButtons() string {
	s := m.theme.S()
	rendered := make([]string, 0, len(m.buttons)*2)
	for i, b := range m.buttons {
		style := s.Button
		switch {
		case i == m.focused:
			style = s.ButtonFocused
		case b.Primary:
			style = s.ButtonPrimary
		}
		if i > 0 {
			rendered = append(rendered, " ")
		}
		rendered = append(rendered, style.Render(b.Caption))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, rendered...)
}

func (m *Model) renderHelp() string {
	bindings := m.keys.ShortHelp()
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
