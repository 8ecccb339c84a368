// Package commands maps command identifiers to handlers and lays them out
// in menus.
package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bethropolis/tidepad/internal/logger"
)

var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrDuplicateCommand = errors.New("command already registered")
)

// Func runs a command.
type Func func() error

// Command is one entry of the command table.
type Command struct {
	ID       string
	Label    string // Menu text
	Menu     string // Menu the item appears in; "" hides it
	Shortcut string // Display only, e.g. "Ctrl+S"
	Run      Func
}

// Registry is the command table. Menus reference commands by ID only.
type Registry struct {
	commands map[string]*Command
	order    []string // Registration order, used for menu layout
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]*Command)}
}

// Register adds cmd. IDs are unique.
func (r *Registry) Register(cmd Command) error {
	if cmd.ID == "" || cmd.Run == nil {
		return fmt.Errorf("invalid command %q: id and handler are required", cmd.ID)
	}
	if _, exists := r.commands[cmd.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateCommand, cmd.ID)
	}
	if cmd.Label == "" {
		cmd.Label = cmd.ID
	}
	c := cmd
	r.commands[cmd.ID] = &c
	r.order = append(r.order, cmd.ID)
	logger.DebugTagf("commands", "Registered '%s' (%s)", cmd.ID, cmd.Menu)
	return nil
}

// Lookup returns the command registered under id.
func (r *Registry) Lookup(id string) (Command, bool) {
	c, ok := r.commands[id]
	if !ok {
		return Command{}, false
	}
	return *c, true
}

// Execute runs the command registered under id.
func (r *Registry) Execute(id string) error {
	c, ok := r.commands[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, id)
	}
	logger.DebugTagf("commands", "Executing '%s'", id)
	return c.Run()
}

// IDs returns all registered command IDs in registration order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// MenuItem is one row in a menu.
type MenuItem struct {
	CommandID string
	Label     string
	Shortcut  string
}

// Menu is one drop-down of the menu bar.
type Menu struct {
	Title string
	Items []MenuItem
}

// Accel returns the menu's accelerator letter (its initial), lower-cased.
func (m Menu) Accel() rune {
	for _, r := range strings.ToLower(m.Title) {
		return r
	}
	return 0
}

// MenuTitles is the fixed menu bar layout.
var MenuTitles = []string{MenuFile, MenuEdit, MenuFormat, MenuView, MenuHelp}

// Menus builds the menu bar from the registered commands, in registration
// order within each menu. Empty menus are omitted.
func (r *Registry) Menus() []Menu {
	byTitle := make(map[string][]MenuItem)
	for _, id := range r.order {
		c := r.commands[id]
		if c.Menu == "" {
			continue
		}
		byTitle[c.Menu] = append(byTitle[c.Menu], MenuItem{CommandID: c.ID, Label: c.Label, Shortcut: c.Shortcut})
	}

	menus := make([]Menu, 0, len(MenuTitles))
	for _, title := range MenuTitles {
		if items := byTitle[title]; len(items) > 0 {
			menus = append(menus, Menu{Title: title, Items: items})
		}
	}
	return menus
}
