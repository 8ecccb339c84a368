// cmd/tidepad/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	stlog "log" // Standard log for fatal errors before the logger is ready
	"os"

	"golang.org/x/term"

	"github.com/bethropolis/tidepad/internal/app"
	"github.com/bethropolis/tidepad/internal/config"
	"github.com/bethropolis/tidepad/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// --- Argument & Flag Parsing ---
	flags := config.NewFlags(config.AppName)
	rest, err := flags.Parse(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, config.Version)
		return 0
	}
	if len(rest) > 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] [file]\n", config.AppName)
		return 2
	}
	filePath := ""
	if len(rest) == 1 {
		filePath = rest[0]
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintf(os.Stderr, "%s: standard output is not a terminal\n", config.AppName)
		return 1
	}

	// --- Configuration ---
	cfg, cfgErr := config.LoadConfig(*flags.ConfigFilePath, flags)

	// --- Logger Initialization ---
	out, closeLog, err := logger.OpenOutput(cfg.Logger.LogFilePath, config.DefaultLogPath())
	if err != nil {
		stlog.Printf("Warning: %v; logging disabled", err)
		out, closeLog = nil, func() error { return nil }
	}
	defer closeLog()
	logger.SetDebugFilter(*flags.DebugLog)
	logger.Init(cfg.Logger, out)

	logger.Infof("Starting %s %s", config.AppName, config.Version)
	if cfgErr != nil {
		logger.Errorf("Config: %v; using defaults", cfgErr)
	} else if src := cfg.Source(); src != "" {
		logger.Infof("Config loaded from '%s'", src)
	}
	for _, key := range cfg.UndecodedKeys() {
		logger.Warnf("Config: unknown key '%s'", key)
	}
	if filePath != "" {
		logger.Debugf("File path specified: %s", filePath)
	} else {
		logger.Debugf("No file specified, starting empty.")
	}

	// --- Create and Run App ---
	editorApp, err := app.NewApp(cfg, filePath, nil)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		return 1
	}
	if err := editorApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		return 1
	}

	logger.Infof("%s finished.", config.AppName)
	return 0
}
