package app

import (
	"github.com/bethropolis/tidepad/internal/event"
	"github.com/bethropolis/tidepad/internal/logger"
)

// subscribeEvents wires app-level reactions to editor events.
func (a *App) subscribeEvents() {
	a.eventManager.Subscribe(event.TypeBufferLoaded, a.handleBufferLoaded)
	a.eventManager.Subscribe(event.TypeBufferSaved, a.handleBufferSaved)
	a.eventManager.Subscribe(event.TypeFormatChanged, a.handleFormatChanged)
	a.eventManager.Subscribe(event.TypeThemeChanged, a.handleThemeChanged)
}

// handleBufferLoaded scrolls a freshly loaded or new document to the top.
func (a *App) handleBufferLoaded(e event.Event) bool {
	a.view.Reset()
	if data, ok := e.Data.(event.BufferLoadedData); ok {
		logger.Debugf("App: buffer loaded '%s'", data.FilePath)
	}
	return false
}

func (a *App) handleBufferSaved(e event.Event) bool {
	if data, ok := e.Data.(event.BufferSavedData); ok {
		a.statusBar.SetTemporaryMessage("Saved %s", data.FilePath)
	}
	return false
}

func (a *App) handleFormatChanged(e event.Event) bool {
	a.statusBar.SetFont(a.editor.Font().Summary())
	return false
}

func (a *App) handleThemeChanged(e event.Event) bool {
	a.applyTheme()
	return false
}
