// Package plugintest provides an in-memory EditorAPI for plugin tests.
package plugintest

import (
	"fmt"
	"strings"
	"sync"

	"github.com/bethropolis/tidepad/internal/event"
	"github.com/bethropolis/tidepad/internal/plugin"
	"github.com/gdamore/tcell/v2"
)

// API is a fake plugin.EditorAPI. Post queues functions until RunPosted.
type API struct {
	Text     string
	Path     string
	Modified bool
	SaveErr  error
	Saves    int

	Config   map[string]map[string]interface{}
	Commands map[string]plugin.CommandFunc
	Labels   map[string]string
	Status   []string
	Messages [][]string
	Events   *event.Manager

	mu     sync.Mutex
	posted []func()
}

var _ plugin.EditorAPI = (*API)(nil)

// New creates an empty fake.
func New() *API {
	return &API{
		Config:   make(map[string]map[string]interface{}),
		Commands: make(map[string]plugin.CommandFunc),
		Labels:   make(map[string]string),
		Events:   event.NewManager(),
	}
}

func (a *API) GetBufferText() string     { return a.Text }
func (a *API) GetBufferFilePath() string { return a.Path }
func (a *API) IsBufferModified() bool    { return a.Modified }

func (a *API) GetBufferLineCount() int {
	return strings.Count(a.Text, "\n") + 1
}

func (a *API) SaveBuffer() error {
	if a.SaveErr != nil {
		return a.SaveErr
	}
	a.Saves++
	a.Modified = false
	return nil
}

func (a *API) DispatchEvent(t event.Type, data interface{}) { a.Events.Dispatch(t, data) }

func (a *API) SubscribeEvent(t event.Type, h event.Handler) { a.Events.Subscribe(t, h) }

func (a *API) Post(fn func()) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.posted = append(a.posted, fn)
	return nil
}

// Pending returns how many posted functions are waiting.
func (a *API) Pending() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.posted)
}

// RunPosted runs and clears the queued functions.
func (a *API) RunPosted() {
	a.mu.Lock()
	fns := a.posted
	a.posted = nil
	a.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

func (a *API) RegisterCommand(id, label string, fn plugin.CommandFunc) error {
	if _, ok := a.Commands[id]; ok {
		return fmt.Errorf("command %s already registered", id)
	}
	a.Commands[id] = fn
	a.Labels[id] = label
	return nil
}

func (a *API) SetStatusMessage(format string, args ...interface{}) {
	a.Status = append(a.Status, fmt.Sprintf(format, args...))
}

func (a *API) ShowMessage(title string, lines ...string) {
	a.Messages = append(a.Messages, append([]string{title}, lines...))
}

func (a *API) GetThemeStyle(string) tcell.Style { return tcell.StyleDefault }
func (a *API) SetTheme(string) error            { return nil }
func (a *API) ListThemes() []string             { return []string{"default"} }

func (a *API) GetPluginConfigValue(pluginName, key string) (interface{}, bool) {
	v, ok := a.Config[pluginName][key]
	return v, ok
}
