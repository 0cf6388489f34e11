package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/billie-coop/confirm/dialog"
	"github.com/billie-coop/confirm/dialog/content"
	"github.com/billie-coop/confirm/internal/tui/components/confirm"
	"github.com/billie-coop/confirm/internal/tui/components/status"
	"github.com/billie-coop/confirm/internal/tui/events"
	"github.com/billie-coop/confirm/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

const helpMarkdown = `## Dialogs

- **1** two-way confirmation
- **2** three-way confirmation (save, discard, cancel)
- **3** long message, scrollable
- **4** HTML message
- **5** preformatted message
- **6** default dialog

Inside a dialog: *tab* moves focus, *enter* presses, *esc* cancels.
Press **q** to quit.
`

const longMessage = `The selected directory contains generated files, cached build artifacts and
local configuration that is not tracked by version control. Removing it frees disk
space but the next build will have to regenerate everything from scratch, which can
take several minutes on large projects. Tools that keep state in this directory,
such as language servers and test runners, may need to be restarted afterwards.
Files that were opened in an editor will show as deleted until they are recreated.`

const htmlMessage = `<p>Publish <b>v2.4.0</b> to the registry?</p>
<ul><li>12 commits since v2.3.1</li><li>2 breaking changes</li></ul>
<p>This cannot be undone.</p>`

const preformattedMessage = `  M  dialog/sizing/sizing.go
  M  dialog/outcome.go
 ??  notes.txt

Commit these changes?`

const maxHistory = 8

type app struct {
	scope    *dialog.Scope
	dialogs  *confirm.Manager
	broker   *events.Broker
	eventSub <-chan events.Event
	mode     content.Mode
	logger   *slog.Logger

	width  int
	height int

	help      string
	helpWidth int
	status    *status.Component
	history   []string
}

func newApp(scope *dialog.Scope, mode content.Mode, logger *slog.Logger) *app {
	broker := events.NewBroker()
	dialogs := confirm.NewManager(broker, logger)
	dialogs.SetTheme(styles.CurrentTheme())

	bar := status.New(0)
	bar.SetLeftContent("confirm demo")
	bar.Show("No dialog shown yet", status.Info)

	return &app{
		scope:   scope,
		dialogs: dialogs,
		broker:  broker,
		eventSub: broker.Subscribe(
			events.DialogOpenedEvent,
			events.DialogResolvedEvent,
			events.ErrorMessageEvent,
		),
		mode:   mode,
		logger: logger,
		status: bar,
	}
}

// listenForEvents waits for the next broker event
func (a *app) listenForEvents() tea.Cmd {
	return func() tea.Msg {
		event, ok := <-a.eventSub
		if !ok {
			return nil
		}
		return event
	}
}

func (a *app) Init() tea.Cmd {
	return a.listenForEvents()
}

func (a *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.status.SetSize(msg.Width, 1)
		return a, a.dialogs.SetSize(msg.Width, msg.Height)

	case events.Event:
		a.handleEvent(msg)
		return a, a.listenForEvents()

	case confirm.ResolvedMsg:
		text := fmt.Sprintf("%s via %s", msg.Resolution, msg.Trigger)
		return a, a.status.Show(text, status.ForResolution(msg.Resolution))

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			a.broker.Clear()
			return a, tea.Quit
		}
		// Open dialogs own the keyboard
		if a.dialogs.IsDialogOpen() {
			_, cmd := a.dialogs.Update(msg)
			return a, cmd
		}
		return a, a.handleKey(msg.String())
	}

	if a.dialogs.IsDialogOpen() {
		_, cmd := a.dialogs.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *app) handleKey(k string) tea.Cmd {
	var err error
	switch k {
	case "q":
		a.broker.Clear()
		return tea.Quit
	case "1":
		_, err = dialog.Show(a.dialogs, "Delete", "Delete the selected branch?", "Delete", "Keep", a.onClose)
	case "2":
		_, err = dialog.ShowThreeWay(a.dialogs, "Unsaved changes",
			"Save changes to notes.txt before closing?", "Save", "Cancel", "Discard", a.onClose)
	case "3":
		_, err = a.show(dialog.Request{Title: "Clean build directory", Message: longMessage, OkLabel: "Clean"})
	case "4":
		_, err = a.show(dialog.Request{Title: "Publish", Message: htmlMessage, ContentMode: content.HTML, OkLabel: "Publish"})
	case "5":
		_, err = a.show(dialog.Request{Title: "Commit", Message: preformattedMessage, ContentMode: content.Preformatted, OkLabel: "Commit"})
	case "6":
		_, err = dialog.ShowDefault(a.dialogs, a.onClose)
	default:
		return nil
	}
	if err != nil {
		a.logger.Error("failed to show dialog", "error", err)
		return a.status.Show(err.Error(), status.Error)
	}
	return nil
}

// show opens req in the configured content mode unless it picks one
func (a *app) show(req dialog.Request) (*dialog.Dialog, error) {
	if req.ContentMode == content.Default {
		req.ContentMode = a.mode
	}
	return a.scope.Show(a.dialogs, req, a.onClose)
}

func (a *app) onClose(d *dialog.Dialog) {
	a.logger.Info("dialog resolved",
		"dialog", d.ID(),
		"caption", d.Caption(),
		"resolution", d.Resolution(),
	)
}

func (a *app) handleEvent(event events.Event) {
	switch event.Type {
	case events.DialogOpenedEvent:
		if p, ok := event.Payload.(events.DialogPayload); ok {
			a.record(fmt.Sprintf("opened %q", p.Caption))
		}
	case events.DialogResolvedEvent:
		if p, ok := event.Payload.(events.DialogPayload); ok {
			a.record(fmt.Sprintf("%q %s (%s)", p.Caption, p.Resolution, p.Trigger))
		}
	case events.ErrorMessageEvent:
		if p, ok := event.Payload.(events.StatusMessagePayload); ok {
			a.record("error: " + p.Message)
		}
	}
}

func (a *app) record(line string) {
	a.history = append(a.history, line)
	if len(a.history) > maxHistory {
		a.history = a.history[len(a.history)-maxHistory:]
	}
}

func (a *app) renderHelp(width int) string {
	if a.help == "" || a.helpWidth != width {
		a.help = styles.RenderMarkdown(helpMarkdown, width)
		a.helpWidth = width
	}
	return a.help
}

func (a *app) View() tea.View {
	if a.dialogs.IsDialogOpen() {
		return tea.NewView(a.dialogs.View())
	}

	t := styles.CurrentTheme()
	s := t.S()
	width := min(max(a.width, 40), 80)

	var b strings.Builder
	b.WriteString(styles.ApplyGradient("confirm demo", t.Primary, t.Accent, true))
	b.WriteString("\n")
	b.WriteString(a.renderHelp(width))

	if len(a.history) > 0 {
		b.WriteString(s.Title.Render("Events") + "\n")
		for _, line := range a.history {
			b.WriteString(s.Muted.Render("  "+line) + "\n")
		}
	}

	body := lipgloss.NewStyle().Padding(1, 2).Render(b.String())
	if a.height > 0 {
		body = lipgloss.PlaceVertical(a.height-1, lipgloss.Top, body)
	}
	return tea.NewView(lipgloss.JoinVertical(lipgloss.Left, body, a.status.View()))
}
