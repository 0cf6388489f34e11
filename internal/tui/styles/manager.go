package styles

import (
	"fmt"
	"sort"
	"sync"
)

// Manager holds the registered themes and the current one
type Manager struct {
	mu      sync.RWMutex
	themes  map[string]*Theme
	current *Theme
}

var (
	defaultMu      sync.Mutex
	defaultManager *Manager
)

// SetDefaultManager replaces the manager behind CurrentTheme
func SetDefaultManager(m *Manager) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultManager = m
}

// DefaultManager returns the process wide manager, creating it on first use
func DefaultManager() *Manager {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultManager == nil {
		defaultManager = NewManager("confirm")
	}
	return defaultManager
}

// CurrentTheme returns the current theme of the default manager
func CurrentTheme() *Theme {
	return DefaultManager().Current()
}

// NewManager registers the built in themes and selects defaultTheme,
// falling back to "confirm" for unknown names.
func NewManager(defaultTheme string) *Manager {
	m := &Manager{themes: make(map[string]*Theme)}
	m.Register(NewConfirmTheme())
	m.Register(NewDarkTheme())

	if m.current = m.themes[defaultTheme]; m.current == nil {
		m.current = m.themes["confirm"]
	}
	return m
}

func (m *Manager) Register(theme *Theme) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.themes[theme.Name] = theme
}

func (m *Manager) Current() *Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

func (m *Manager) SetTheme(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	theme, ok := m.themes[name]
	if !ok {
		return fmt.Errorf("theme %s not found", name)
	}
	m.current = theme
	return nil
}

// List returns the registered theme names, sorted
func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.themes))
	for name := range m.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
