package app

import (
	"errors"
	"fmt"

	"github.com/bethropolis/tidepad/internal/logger"
	"github.com/bethropolis/tidepad/internal/plugin"

	"github.com/bethropolis/tidepad/plugins/autosave"
	"github.com/bethropolis/tidepad/plugins/wordcount"
)

// builtinPlugins lists the plugins compiled into the editor.
func builtinPlugins() []plugin.Plugin {
	return []plugin.Plugin{
		wordcount.New(),
		autosave.New(),
	}
}

// registerPlugins registers the built-in plugins. A failed registration is
// logged and the rest still register.
func registerPlugins(pm *plugin.Manager) error {
	if pm == nil {
		return fmt.Errorf("plugin manager is nil")
	}

	var errs []error
	for _, p := range builtinPlugins() {
		logger.Debugf("Registering plugin: %s", p.Name())
		if err := pm.Register(p); err != nil {
			errs = append(errs, fmt.Errorf("failed to register plugin '%s': %w", p.Name(), err))
		}
	}
	return errors.Join(errs...)
}
