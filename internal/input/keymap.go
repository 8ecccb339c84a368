// internal/input/keymap.go
package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/tidepad/internal/commands"
)

// Keymap maps special keys to actions.
type Keymap map[tcell.Key]Action

// ShortcutMap maps Ctrl+key chords to command IDs.
type ShortcutMap map[tcell.Key]string

// InputProcessor translates tcell events into ActionEvents.
type InputProcessor struct {
	keymap    Keymap
	shortcuts ShortcutMap
	ctrlMoves Keymap // Ctrl+Home/End
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:    make(Keymap),
		shortcuts: make(ShortcutMap),
		ctrlMoves: make(Keymap),
	}
	p.loadDefaultBindings()
	return p
}

func (p *InputProcessor) loadDefaultBindings() {
	p.keymap[tcell.KeyUp] = ActionMoveUp
	p.keymap[tcell.KeyDown] = ActionMoveDown
	p.keymap[tcell.KeyLeft] = ActionMoveLeft
	p.keymap[tcell.KeyRight] = ActionMoveRight
	p.keymap[tcell.KeyPgUp] = ActionMovePageUp
	p.keymap[tcell.KeyPgDn] = ActionMovePageDown
	p.keymap[tcell.KeyHome] = ActionMoveHome
	p.keymap[tcell.KeyEnd] = ActionMoveEnd
	p.keymap[tcell.KeyBackspace] = ActionDeleteCharBackward
	p.keymap[tcell.KeyBackspace2] = ActionDeleteCharBackward
	p.keymap[tcell.KeyDelete] = ActionDeleteCharForward
	p.keymap[tcell.KeyEnter] = ActionInsertNewLine
	p.keymap[tcell.KeyTab] = ActionInsertTab
	p.keymap[tcell.KeyBacktab] = ActionPrevField
	p.keymap[tcell.KeyEscape] = ActionCancel
	p.keymap[tcell.KeyF10] = ActionOpenMenu

	p.ctrlMoves[tcell.KeyHome] = ActionMoveDocStart
	p.ctrlMoves[tcell.KeyEnd] = ActionMoveDocEnd

	p.shortcuts[tcell.KeyCtrlN] = commands.FileNew
	p.shortcuts[tcell.KeyCtrlO] = commands.FileOpen
	p.shortcuts[tcell.KeyCtrlS] = commands.FileSave
	p.shortcuts[tcell.KeyCtrlQ] = commands.FileExit
	p.shortcuts[tcell.KeyCtrlZ] = commands.EditUndo
	p.shortcuts[tcell.KeyCtrlY] = commands.EditRedo
	p.shortcuts[tcell.KeyCtrlX] = commands.EditCut
	p.shortcuts[tcell.KeyCtrlC] = commands.EditCopy
	p.shortcuts[tcell.KeyCtrlV] = commands.EditPaste
	p.shortcuts[tcell.KeyCtrlA] = commands.EditSelectAll
	p.shortcuts[tcell.KeyCtrlF] = commands.EditFind
	p.shortcuts[tcell.KeyCtrlB] = commands.FormatBold
	p.shortcuts[tcell.KeyCtrlU] = commands.FormatUnderline
}

// ShortcutFor returns the display text of the chord bound to id, or "".
func (p *InputProcessor) ShortcutFor(id string) string {
	if id == commands.FormatItalic {
		return "Ctrl+I"
	}
	for key, cmd := range p.shortcuts {
		if cmd == id {
			return "Ctrl+" + string(rune('A'+int(key-tcell.KeyCtrlA)))
		}
	}
	return ""
}

// ProcessEvent takes a tcell key event and returns the corresponding
// ActionEvent. The mode handler decides what the action means in its mode.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()
	extend := mod&tcell.ModShift != 0

	// Ctrl+I and Tab are the same byte; only a terminal that reports the
	// Ctrl modifier separately lets us tell them apart.
	if key == tcell.KeyTab && mod&tcell.ModCtrl != 0 {
		return ActionEvent{Action: ActionCommand, Command: commands.FormatItalic}
	}

	if id, ok := p.shortcuts[key]; ok {
		return ActionEvent{Action: ActionCommand, Command: id}
	}

	if key == tcell.KeyRune {
		r := ev.Rune()
		if mod&tcell.ModAlt != 0 {
			return ActionEvent{Action: ActionOpenMenu, Rune: unicode.ToLower(r)}
		}
		// Some terminals report Ctrl+letter as a rune with ModCtrl.
		if mod&tcell.ModCtrl != 0 {
			lr := unicode.ToLower(r)
			if lr == 'i' {
				return ActionEvent{Action: ActionCommand, Command: commands.FormatItalic}
			}
			if lr >= 'a' && lr <= 'z' {
				if id, ok := p.shortcuts[tcell.KeyCtrlA+tcell.Key(lr-'a')]; ok {
					return ActionEvent{Action: ActionCommand, Command: id}
				}
			}
			return ActionEvent{Action: ActionUnknown}
		}
		return ActionEvent{Action: ActionInsertRune, Rune: r}
	}

	if mod&tcell.ModCtrl != 0 {
		if action, ok := p.ctrlMoves[key]; ok {
			return ActionEvent{Action: action, Extend: extend}
		}
	}

	if action, ok := p.keymap[key]; ok {
		return ActionEvent{Action: action, Extend: extend}
	}

	return ActionEvent{Action: ActionUnknown}
}
