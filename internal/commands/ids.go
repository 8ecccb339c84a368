package commands

// Built-in command identifiers.
const (
	FileNew    = "file.new"
	FileOpen   = "file.open"
	FileSave   = "file.save"
	FileSaveAs = "file.saveas"
	FileExit   = "file.exit"

	EditUndo      = "edit.undo"
	EditRedo      = "edit.redo"
	EditCut       = "edit.cut"
	EditCopy      = "edit.copy"
	EditPaste     = "edit.paste"
	EditSelectAll = "edit.selectall"
	EditFind      = "edit.find"

	FormatFont      = "format.font"
	FormatSize      = "format.size"
	FormatBold      = "format.bold"
	FormatItalic    = "format.italic"
	FormatUnderline = "format.underline"
	FormatFg        = "format.fg"
	FormatBg        = "format.bg"

	ViewStatusBar = "view.statusbar"
	ViewSyntax    = "view.syntax"
	ViewTheme     = "view.theme"

	HelpAbout = "help.about"
)

// Menu titles, in menu bar order.
const (
	MenuFile   = "File"
	MenuEdit   = "Edit"
	MenuFormat = "Format"
	MenuView   = "View"
	MenuHelp   = "Help"
)
