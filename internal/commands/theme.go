package commands

import (
	"fmt"
	"sort"
)

// ThemeAPI is what the theme command needs from the application.
type ThemeAPI interface {
	CurrentTheme() string
	ListThemes() []string
	SetTheme(name string) error
	SetStatusMessage(format string, args ...interface{})
}

// RegisterThemeCommands adds View > Next Theme, which cycles through the
// available themes in name order.
func RegisterThemeCommands(r *Registry, api ThemeAPI) error {
	return r.Register(Command{
		ID:    ViewTheme,
		Label: "Next Theme",
		Menu:  MenuView,
		Run: func() error {
			names := api.ListThemes()
			if len(names) == 0 {
				return fmt.Errorf("no themes available")
			}
			sort.Strings(names)
			next := names[0]
			current := api.CurrentTheme()
			for i, n := range names {
				if n == current {
					next = names[(i+1)%len(names)]
					break
				}
			}
			if err := api.SetTheme(next); err != nil {
				return fmt.Errorf("theme '%s': %w", next, err)
			}
			api.SetStatusMessage("Theme: %s", next)
			return nil
		},
	})
}
