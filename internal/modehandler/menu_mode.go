package modehandler

import (
	"github.com/bethropolis/tidepad/internal/input"
	"github.com/bethropolis/tidepad/internal/logger"
)

// openMenu opens the menu whose initial is accel, or the first menu when
// accel is 0. Returns false if no menu matched.
func (mh *ModeHandler) openMenu(accel rune) bool {
	menus := mh.registry.Menus()
	if len(menus) == 0 {
		return false
	}
	idx := 0
	if accel != 0 {
		idx = -1
		for i, m := range menus {
			if m.Accel() == accel {
				idx = i
				break
			}
		}
		if idx < 0 {
			return false
		}
	}
	mh.menuActive = idx
	mh.menuSelected = 0
	mh.currentMode = ModeMenu
	logger.DebugTagf("input", "ModeHandler: menu '%s' opened", menus[idx].Title)
	return true
}

func (mh *ModeHandler) closeMenu() {
	mh.currentMode = ModeEdit
}

// handleActionMenu navigates the open menu bar.
func (mh *ModeHandler) handleActionMenu(actionEvent input.ActionEvent) bool {
	menus := mh.registry.Menus()
	if len(menus) == 0 || mh.menuActive >= len(menus) {
		mh.closeMenu()
		return true
	}
	items := menus[mh.menuActive].Items

	switch actionEvent.Action {
	case input.ActionMoveLeft:
		mh.menuActive = (mh.menuActive - 1 + len(menus)) % len(menus)
		mh.menuSelected = 0
	case input.ActionMoveRight:
		mh.menuActive = (mh.menuActive + 1) % len(menus)
		mh.menuSelected = 0
	case input.ActionMoveUp:
		mh.menuSelected = (mh.menuSelected - 1 + len(items)) % len(items)
	case input.ActionMoveDown:
		mh.menuSelected = (mh.menuSelected + 1) % len(items)
	case input.ActionMoveHome, input.ActionMovePageUp:
		mh.menuSelected = 0
	case input.ActionMoveEnd, input.ActionMovePageDown:
		mh.menuSelected = len(items) - 1

	case input.ActionInsertNewLine:
		id := items[mh.menuSelected].CommandID
		mh.closeMenu()
		mh.RunCommand(id)

	case input.ActionOpenMenu:
		if actionEvent.Rune == 0 {
			mh.closeMenu() // F10 toggles
		} else {
			mh.openMenu(actionEvent.Rune)
		}
	case input.ActionCancel:
		mh.closeMenu()

	case input.ActionCommand:
		// Shortcuts still work with a menu open.
		mh.closeMenu()
		mh.RunCommand(actionEvent.Command)

	default:
		return false
	}
	return true
}
