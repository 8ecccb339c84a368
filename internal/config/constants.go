package config

import "time"

// Base application details
const AppName = "tidepad"
const Version = "0.3.0"
const ThemesDirName = "themes"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "tidepad.log"

// UI Layout
const MenuBarHeight = 1
const StatusBarHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

const DefaultTabWidth = 4
const DefaultScrollOff = 3
const DefaultUndoLimit = 100
const SystemClipboard = true
const DefaultTheme = "default"
