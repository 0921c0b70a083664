package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/kids-arcade/internal/config"
	"github.com/vovakirdan/kids-arcade/internal/core"
	"github.com/vovakirdan/kids-arcade/internal/level"
	"github.com/vovakirdan/kids-arcade/internal/storage"
)

// loadTable reads the level table, falling back to the defaults with a
// warning when the configured file is unusable.
func loadTable() level.Table {
	cfg, err := config.LoadLevels(flagLevels)
	if err != nil {
		logger.Warn("using default level table", "error", err)
	}
	return cfg.Table()
}

// runtimeConfig builds the config for local play from the global flags and
// the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	cfg.Table = loadTable()
	cfg.Logger = logger
	return cfg
}

// openStore opens the score database. Games still run without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// fail prints err and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
