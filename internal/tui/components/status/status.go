package status

import (
	"strings"
	"time"

	"github.com/billie-coop/confirm/dialog"
	"github.com/billie-coop/confirm/internal/tui/components/core"
	"github.com/billie-coop/confirm/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// MessageType represents the type of status message
type MessageType int

const (
	Info MessageType = iota
	Warning
	Error
	Success
)

// ForResolution picks the message type that reports a dialog outcome
func ForResolution(r dialog.Resolution) MessageType {
	switch r {
	case dialog.Confirmed:
		return Success
	case dialog.Declined:
		return Warning
	default:
		return Info
	}
}

var _ core.Sizeable = (*Component)(nil)

// Component is a one line status bar with a fixed left side and a
// temporary message on the right.
type Component struct {
	content string
	kind    MessageType
	seq     int
	width   int
	left    string

	clearAfter time.Duration
}

// clearMessageMsg is sent when a status message should be cleared
type clearMessageMsg struct {
	seq int
}

// New creates a status bar. Messages disappear after clearAfter; zero
// keeps them until replaced.
func New(clearAfter time.Duration) *Component {
	return &Component{clearAfter: clearAfter}
}

// Show replaces the current message
func (c *Component) Show(content string, kind MessageType) tea.Cmd {
	c.seq++
	c.content = content
	c.kind = kind

	if c.clearAfter <= 0 {
		return nil
	}
	seq := c.seq
	return tea.Tick(c.clearAfter, func(time.Time) tea.Msg {
		return clearMessageMsg{seq: seq}
	})
}

// Message returns the current message
func (c *Component) Message() (string, MessageType) {
	return c.content, c.kind
}

// SetLeftContent sets the text on the left side
func (c *Component) SetLeftContent(content string) {
	c.left = content
}

// SetSize implements core.Sizeable
func (c *Component) SetSize(width, height int) tea.Cmd {
	c.width = width
	return nil
}

// GetSize implements core.Sizeable
func (c *Component) GetSize() (int, int) {
	return c.width, 1
}

func (c *Component) Init() tea.Cmd {
	return nil
}

func (c *Component) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Older timers must not clear a newer message
	if msg, ok := msg.(clearMessageMsg); ok && msg.seq == c.seq {
		c.content = ""
	}
	return c, nil
}

func (c *Component) View() string {
	if c.width == 0 {
		return ""
	}

	theme := styles.CurrentTheme()
	bar := lipgloss.NewStyle().
		Width(c.width).
		Background(theme.BgSubtle).
		Foreground(theme.FgBase).
		Padding(0, 1)

	avail := c.width - bar.GetHorizontalPadding()
	right := ansi.Truncate(c.formatMessage(), avail/2, "…")
	left := ansi.Truncate(c.left, max(avail-lipgloss.Width(right)-1, 0), "…")

	gap := max(avail-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return bar.Render(left + strings.Repeat(" ", gap) + right)
}

func (c *Component) formatMessage() string {
	if c.content == "" {
		return ""
	}
	s := styles.CurrentTheme().S()
	switch c.kind {
	case Success:
		return s.Success.Render("✓ " + c.content)
	case Warning:
		return s.Warning.Render("! " + c.content)
	case Error:
		return s.Error.Render("✗ " + c.content)
	default:
		return c.content
	}
}
