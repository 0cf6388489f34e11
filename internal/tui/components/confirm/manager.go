package confirm

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/billie-coop/confirm/dialog"
	"github.com/billie-coop/confirm/internal/csync"
	"github.com/billie-coop/confirm/internal/logging"
	"github.com/billie-coop/confirm/internal/tui/events"
	"github.com/billie-coop/confirm/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
)

var (
	ErrNilDialog   = errors.New("nil dialog")
	ErrAlreadyOpen = errors.New("dialog already open")
)

// Manager opens confirmation dialogs modally on top of the application.
// Dialogs stack; only the most recent one receives input and is drawn.
type Manager struct {
	dialogs *csync.Map[string, *Model]
	broker  *events.Broker
	theme   *styles.Theme
	logger  *slog.Logger

	mu     sync.Mutex
	order  []string
	width  int
	height int
}

var _ dialog.Host = (*Manager)(nil)

// NewManager creates a dialog manager. broker may be nil.
func NewManager(broker *events.Broker, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Manager{
		dialogs: csync.NewMap[string, *Model](),
		broker:  broker,
		logger:  logger,
	}
}

// SetTheme sets the theme used by dialogs opened afterwards
func (m *Manager) SetTheme(theme *styles.Theme) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.theme = theme
}

// Open implements dialog.Host
func (m *Manager) Open(d *dialog.Dialog) (dialog.Container, error) {
	if d == nil {
		return nil, ErrNilDialog
	}
	if _, ok := m.dialogs.Get(d.ID()); ok {
		return nil, fmt.Errorf("failed to open dialog %s: %w", d.ID(), ErrAlreadyOpen)
	}

	m.mu.Lock()
	theme := m.theme
	width, height := m.width, m.height
	m.mu.Unlock()

	model := NewModel(d, theme, m.broker, m.logger)
	model.onDismiss = m.remove
	model.SetSize(width, height)
	model.Open()

	m.dialogs.Set(d.ID(), model)
	m.mu.Lock()
	m.order = append(m.order, d.ID())
	m.mu.Unlock()

	m.logger.Debug("dialog opened", "dialog", d.ID(), "three_way", d.ThreeWay())
	m.publish(events.DialogOpenedEvent, d)
	return model, nil
}

// remove forgets a dismissed dialog
func (m *Manager) remove(model *Model) {
	d := model.Dialog()
	if _, ok := m.dialogs.Take(d.ID()); !ok {
		return
	}

	m.mu.Lock()
	if i := slices.Index(m.order, d.ID()); i >= 0 {
		m.order = slices.Delete(m.order, i, i+1)
	}
	m.mu.Unlock()

	m.logger.Debug("dialog closed", "dialog", d.ID(), "resolution", d.Resolution())
	if d.Resolved() {
		m.publish(events.DialogResolvedEvent, d)
	}
	m.publish(events.DialogClosedEvent, d)
}

func (m *Manager) publish(t events.EventType, d *dialog.Dialog) {
	if m.broker == nil {
		return
	}
	payload := events.DialogPayload{
		DialogID:   d.ID(),
		Caption:    d.Caption(),
		ThreeWay:   d.ThreeWay(),
		Resolution: d.Resolution(),
	}
	if trigger, ok := d.Trigger(); ok {
		payload.Trigger = trigger
	}
	m.broker.Publish(events.Event{Type: t, Payload: payload})
}

// Active returns the dialog receiving input
func (m *Manager) Active() (*Model, bool) {
	m.mu.Lock()
	if len(m.order) == 0 {
		m.mu.Unlock()
		return nil, false
	}
	id := m.order[len(m.order)-1]
	m.mu.Unlock()
	return m.dialogs.Get(id)
}

// IsDialogOpen returns whether any dialog is open
func (m *Manager) IsDialogOpen() bool {
	return m.dialogs.Len() > 0
}

// Len returns the number of open dialogs
func (m *Manager) Len() int {
	return m.dialogs.Len()
}

// Init initializes the manager
func (m *Manager) Init() tea.Cmd {
	return nil
}

// Update routes messages to the active dialog
func (m *Manager) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		return m, m.SetSize(wsm.Width, wsm.Height)
	}

	active, ok := m.Active()
	if !ok {
		return m, nil
	}
	_, cmd := active.Update(msg)
	return m, cmd
}

// View renders the active dialog
func (m *Manager) View() string {
	active, ok := m.Active()
	if !ok {
		return ""
	}
	return active.View()
}

// SetSize sets the window size for all open dialogs
func (m *Manager) SetSize(width, height int) tea.Cmd {
	m.mu.Lock()
	m.width = width
	m.height = height
	m.mu.Unlock()

	var cmds []tea.Cmd
	m.dialogs.Range(func(_ string, model *Model) bool {
		cmds = append(cmds, model.SetSize(width, height))
		return true
	})
	return tea.Batch(cmds...)
}
