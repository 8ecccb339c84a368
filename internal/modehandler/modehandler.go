// internal/modehandler/modehandler.go
package modehandler

import (
	"github.com/bethropolis/tidepad/internal/commands"
	"github.com/bethropolis/tidepad/internal/core"
	"github.com/bethropolis/tidepad/internal/input"
	"github.com/bethropolis/tidepad/internal/logger"
	"github.com/bethropolis/tidepad/internal/statusbar"
	"github.com/bethropolis/tidepad/internal/tui"
	"github.com/gdamore/tcell/v2"
)

// InputMode defines the different states for user input.
type InputMode int

const (
	ModeEdit    InputMode = iota // Typing into the document
	ModeMenu                     // Menu bar open
	ModePrompt                   // Dialog with input fields
	ModeConfirm                  // Dialog with buttons only
	ModeMessage                  // Informational box, any key dismisses
)

func (m InputMode) String() string {
	switch m {
	case ModeEdit:
		return "Edit"
	case ModeMenu:
		return "Menu"
	case ModePrompt:
		return "Prompt"
	case ModeConfirm:
		return "Confirm"
	case ModeMessage:
		return "Message"
	}
	return "Unknown"
}

// ButtonFunc receives the pressed button index (-1 for Esc) and the field
// values. Returning true keeps the dialog open.
type ButtonFunc func(button int, values []string) bool

// ModeHandler routes key events according to the current mode and owns the
// menu and dialog state.
type ModeHandler struct {
	editor         *core.Editor
	inputProcessor *input.InputProcessor
	registry       *commands.Registry
	statusBar      *statusbar.StatusBar

	currentMode InputMode

	// Menu state
	menuActive   int
	menuSelected int

	// Dialog state (Prompt, Confirm, Message)
	dialog   *tui.Dialog
	onButton ButtonFunc
}

// Config holds dependencies for the ModeHandler.
type Config struct {
	Editor         *core.Editor
	InputProcessor *input.InputProcessor
	Registry       *commands.Registry
	StatusBar      *statusbar.StatusBar
}

// New creates a new ModeHandler.
func New(cfg Config) *ModeHandler {
	if cfg.Editor == nil || cfg.InputProcessor == nil || cfg.Registry == nil || cfg.StatusBar == nil {
		panic("modehandler.New: Missing required dependencies in Config")
	}
	return &ModeHandler{
		editor:         cfg.Editor,
		inputProcessor: cfg.InputProcessor,
		registry:       cfg.Registry,
		statusBar:      cfg.StatusBar,
		currentMode:    ModeEdit,
	}
}

// HandleKeyEvent decides what to do based on current mode and key event.
// Returns true if the screen needs a redraw.
func (mh *ModeHandler) HandleKeyEvent(ev *tcell.EventKey) bool {
	actionEvent := mh.inputProcessor.ProcessEvent(ev)
	logger.DebugTagf("input", "mode=%v key=%v action=%d", mh.currentMode, ev.Name(), actionEvent.Action)

	switch mh.currentMode {
	case ModeEdit:
		return mh.handleActionEdit(actionEvent)
	case ModeMenu:
		return mh.handleActionMenu(actionEvent)
	case ModePrompt:
		return mh.handleActionPrompt(actionEvent)
	case ModeConfirm:
		return mh.handleActionConfirm(actionEvent)
	case ModeMessage:
		mh.closeDialog()
		return true
	}
	logger.Warnf("ModeHandler: unknown input mode %v", mh.currentMode)
	return false
}

// GetCurrentMode returns the current input mode.
func (mh *ModeHandler) GetCurrentMode() InputMode {
	return mh.currentMode
}

// Dialog returns the open dialog, or nil.
func (mh *ModeHandler) Dialog() *tui.Dialog {
	return mh.dialog
}

// MenuView describes the menu bar for drawing.
func (mh *ModeHandler) MenuView() tui.MenuView {
	return tui.MenuView{
		Menus:    mh.registry.Menus(),
		Open:     mh.currentMode == ModeMenu,
		Active:   mh.menuActive,
		Selected: mh.menuSelected,
	}
}

// RunCommand executes a command and reports a failure in a message box.
func (mh *ModeHandler) RunCommand(id string) {
	if err := mh.registry.Execute(id); err != nil {
		logger.Warnf("Command '%s' failed: %v", id, err)
		mh.ShowError("Error", err.Error())
	}
}
