package status

import (
	"strings"
	"testing"
	"time"

	"github.com/billie-coop/confirm/dialog"
	"github.com/charmbracelet/lipgloss/v2"
)

func TestForResolution(t *testing.T) {
	tests := []struct {
		r    dialog.Resolution
		want MessageType
	}{
		{dialog.Confirmed, Success},
		{dialog.Declined, Warning},
		{dialog.Canceled, Info},
	}
	for _, tt := range tests {
		if got := ForResolution(tt.r); got != tt.want {
			t.Errorf("ForResolution(%v) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestComponent_StaleClearIgnored(t *testing.T) {
	c := New(time.Second)
	c.Show("first", Info)
	c.Show("second", Success)

	// the timer of the first message fires late
	c.Update(clearMessageMsg{seq: 1})
	if got, _ := c.Message(); got != "second" {
		t.Errorf("Message() = %q, want second", got)
	}

	c.Update(clearMessageMsg{seq: 2})
	if got, _ := c.Message(); got != "" {
		t.Errorf("Message() = %q, want cleared", got)
	}
}

func TestComponent_NoTimer(t *testing.T) {
	c := New(0)
	if cmd := c.Show("kept", Warning); cmd != nil {
		t.Error("Show() without clearAfter should not schedule a clear")
	}
}

func TestComponent_View(t *testing.T) {
	c := New(0)
	if c.View() != "" {
		t.Error("View() before SetSize should be empty")
	}

	c.SetSize(40, 1)
	c.SetLeftContent("confirm demo")
	c.Show("confirmed via ok", Success)

	view := c.View()
	if w := lipgloss.Width(view); w != 40 {
		t.Errorf("width = %d, want 40", w)
	}
	for _, want := range []string{"confirm demo", "confirmed via ok"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q: %q", want, view)
		}
	}
}
