// internal/app/app.go
package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bethropolis/tidepad/internal/buffer"
	"github.com/bethropolis/tidepad/internal/commands"
	"github.com/bethropolis/tidepad/internal/config"
	"github.com/bethropolis/tidepad/internal/core"
	"github.com/bethropolis/tidepad/internal/core/clipboard"
	"github.com/bethropolis/tidepad/internal/event"
	"github.com/bethropolis/tidepad/internal/highlight"
	"github.com/bethropolis/tidepad/internal/highlighter"
	"github.com/bethropolis/tidepad/internal/input"
	"github.com/bethropolis/tidepad/internal/logger"
	"github.com/bethropolis/tidepad/internal/modehandler"
	"github.com/bethropolis/tidepad/internal/plugin"
	"github.com/bethropolis/tidepad/internal/render"
	"github.com/bethropolis/tidepad/internal/statusbar"
	"github.com/bethropolis/tidepad/internal/theme"
	"github.com/bethropolis/tidepad/internal/tui"
	"github.com/gdamore/tcell/v2"
)

// App encapsulates the core components and main loop of the editor.
type App struct {
	cfg *config.Config

	tuiManager       *tui.TUI
	editor           *core.Editor
	statusBar        *statusbar.StatusBar
	eventManager     *event.Manager
	themeManager     *theme.Manager
	highlightManager *highlight.Manager
	inputProcessor   *input.InputProcessor
	registry         *commands.Registry
	modeHandler      *modehandler.ModeHandler
	pluginManager    *plugin.Manager
	editorAPI        *appEditorAPI
	view             *render.View

	quitRequested bool
}

// NewApp builds the editor around screen (nil opens the real terminal) and
// loads filePath if given. A path that does not exist yet starts an empty
// document that will be saved there.
func NewApp(cfg *config.Config, filePath string, screen tcell.Screen) (*App, error) {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}

	var tuiManager *tui.TUI
	var err error
	if screen == nil {
		tuiManager, err = tui.New()
	} else {
		tuiManager, err = tui.NewWithScreen(screen)
	}
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	font, err := cfg.FontStyle()
	if err != nil {
		logger.Warnf("App: %v; using default colours", err)
	}

	eventManager := event.NewManager()
	editor := core.NewEditor(buffer.NewRuneBuffer(), core.Options{
		UndoLimit: cfg.Editor.UndoLimit,
		Clipboard: clipboard.New(cfg.Editor.SystemClipboard),
		Font:      font,
	})
	editor.SetEventManager(eventManager)

	themesDir := ""
	if dir, err := config.Dir(); err == nil {
		themesDir = filepath.Join(dir, config.ThemesDirName)
	}
	themeManager := theme.NewManager(themesDir)
	if err := themeManager.SetTheme(cfg.Editor.Theme); err != nil {
		logger.Warnf("App: theme '%s': %v; using '%s'", cfg.Editor.Theme, err, themeManager.Current().Name)
	}

	statusBar := statusbar.New(statusbar.ConfigFromTheme(themeManager.Current(), config.MessageTimeout))
	statusBar.SetVisible(cfg.Editor.StatusBar)

	inputProcessor := input.NewInputProcessor()
	registry := commands.NewRegistry()

	a := &App{
		cfg:              cfg,
		tuiManager:       tuiManager,
		editor:           editor,
		statusBar:        statusBar,
		eventManager:     eventManager,
		themeManager:     themeManager,
		highlightManager: highlight.NewManager(editor, highlighter.NewHighlighter(), cfg.Editor.SyntaxHighlight),
		inputProcessor:   inputProcessor,
		registry:         registry,
		pluginManager:    plugin.NewManager(),
		view:             render.NewView(cfg.Editor.TabWidth, cfg.Editor.ScrollOff),
	}
	a.modeHandler = modehandler.New(modehandler.Config{
		Editor:         editor,
		InputProcessor: inputProcessor,
		Registry:       registry,
		StatusBar:      statusBar,
	})
	a.editorAPI = newEditorAPI(a)
	a.tuiManager.SetStyle(themeManager.Current().GetStyle("Default"))

	if err := a.registerCommands(); err != nil {
		tuiManager.Close()
		return nil, fmt.Errorf("command registration failed: %w", err)
	}
	if err := commands.RegisterThemeCommands(registry, a.editorAPI); err != nil {
		tuiManager.Close()
		return nil, fmt.Errorf("command registration failed: %w", err)
	}

	a.highlightManager.Subscribe(eventManager)
	a.subscribeEvents()

	if err := registerPlugins(a.pluginManager); err != nil {
		logger.Warnf("App: %v", err)
	}
	if failed := a.pluginManager.InitializePlugins(a.editorAPI); failed > 0 {
		statusBar.SetErrorMessage("%d plugin(s) failed to start; see log", failed)
	}

	a.openInitialFile(filePath)
	return a, nil
}

// openInitialFile loads the file named on the command line.
func (a *App) openInitialFile(filePath string) {
	if filePath == "" {
		a.highlightManager.Refresh()
		return
	}
	err := a.editor.Load(filePath)
	switch {
	case err == nil:
	case errors.Is(err, os.ErrNotExist):
		logger.Infof("App: '%s' does not exist yet; starting empty", filePath)
		a.editor.SetFilePath(filePath)
		a.highlightManager.Refresh()
		a.statusBar.SetTemporaryMessage("New file: %s", filepath.Base(filePath))
	default:
		a.highlightManager.Refresh()
		a.modeHandler.ShowError("Open Failed", err.Error())
	}
}

// Run processes terminal events until the user exits.
func (a *App) Run() error {
	defer a.tuiManager.Close()
	defer a.pluginManager.ShutdownPlugins()

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	if _, active := a.statusBar.Message(); !active {
		a.statusBar.SetTemporaryMessage("F10 menu | Ctrl+S save | Ctrl+Q exit")
	}
	a.draw()

	for !a.quitRequested {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			logger.Warnf("App: screen closed unexpectedly")
			break
		}
		if a.handleEvent(ev) {
			a.draw()
		}
	}

	a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
	if a.editor.IsModified() {
		logger.Warnf("App: exited with unsaved changes")
	}
	logger.Infof("Exiting application.")
	return nil
}

// handleEvent applies one terminal event. It reports whether to redraw.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.Sync()
		return true
	case *tcell.EventKey:
		return a.modeHandler.HandleKeyEvent(e)
	case *tcell.EventInterrupt:
		if fn, ok := e.Data().(func()); ok {
			fn()
			return true
		}
		logger.Debugf("App: ignoring interrupt with %T", e.Data())
	}
	return false
}

// post queues fn to run on the event loop.
func (a *App) post(fn func()) error {
	if fn == nil {
		return fmt.Errorf("nil function")
	}
	return a.tuiManager.PostEvent(tcell.NewEventInterrupt(fn))
}

// requestQuit ends Run after the current event.
func (a *App) requestQuit() {
	logger.Debugf("App: quit requested")
	a.quitRequested = true
}
