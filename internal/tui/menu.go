package tui

import (
	"github.com/bethropolis/tidepad/internal/commands"
	"github.com/bethropolis/tidepad/internal/theme"
	"github.com/gdamore/tcell/v2"
)

// MenuView is what the menu bar needs to draw itself.
type MenuView struct {
	Menus    []commands.Menu
	Open     bool // A drop-down is showing
	Active   int  // Highlighted menu title
	Selected int  // Highlighted item in the open drop-down
}

const menuTitlePad = 2

// MenuTitleX returns the screen column of menu i's title.
func MenuTitleX(menus []commands.Menu, i int) int {
	x := 1
	for j := 0; j < i && j < len(menus); j++ {
		x += TextWidth(menus[j].Title) + menuTitlePad
	}
	return x
}

// DrawMenuBar draws the bar on row 0 and, when open, the active drop-down.
func DrawMenuBar(s tcell.Screen, width int, view MenuView, th *theme.Theme) {
	barStyle := th.GetStyle("MenuBar")
	activeStyle := th.GetStyle("MenuBarActive")
	Fill(s, Rect{0, 0, width, 1}, barStyle)

	for i, m := range view.Menus {
		x := MenuTitleX(view.Menus, i)
		style := barStyle
		if view.Open && i == view.Active {
			style = activeStyle
		}
		s.SetContent(x-1, 0, ' ', nil, style)
		end := DrawText(s, x, 0, width, m.Title, style)
		if end < width {
			s.SetContent(end, 0, ' ', nil, style)
		}
		// Underline the accelerator letter.
		if mr, _, st, _ := s.GetContent(x, 0); mr != ' ' {
			s.SetContent(x, 0, mr, nil, st.Underline(true))
		}
	}

	if view.Open && view.Active >= 0 && view.Active < len(view.Menus) {
		drawDropdown(s, view, th)
	}
}

func drawDropdown(s tcell.Screen, view MenuView, th *theme.Theme) {
	menu := view.Menus[view.Active]
	itemStyle := th.GetStyle("Menu")
	selStyle := th.GetStyle("MenuSelected")
	keyStyle := th.GetStyle("MenuShortcut")

	labelW, keyW := 0, 0
	for _, it := range menu.Items {
		if w := TextWidth(it.Label); w > labelW {
			labelW = w
		}
		if w := TextWidth(it.Shortcut); w > keyW {
			keyW = w
		}
	}
	inner := labelW + 2
	if keyW > 0 {
		inner += keyW + 2
	}
	box := Rect{X: MenuTitleX(view.Menus, view.Active) - 1, Y: 1, Width: inner + 2, Height: len(menu.Items) + 2}
	DrawBox(s, box, itemStyle)

	for i, it := range menu.Items {
		y := box.Y + 1 + i
		style, kStyle := itemStyle, keyStyle
		if i == view.Selected {
			style, kStyle = selStyle, selStyle
		}
		Fill(s, Rect{box.X + 1, y, inner, 1}, style)
		DrawText(s, box.X+2, y, box.X+1+inner, it.Label, style)
		if it.Shortcut != "" {
			kx := box.X + 1 + inner - 1 - TextWidth(it.Shortcut)
			DrawText(s, kx, y, box.X+1+inner, it.Shortcut, kStyle)
		}
	}
}
