// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the wordcheck spell checker: an interactive shell
and a msgpack IPC server over a dictionary-backed prefix tree.

For every word it is given, wordcheck lists the dictionary words that start
with it, tells whether the word itself is in the dictionary and, when it is
not, suggests the dictionary words within one edit (one substitution,
insertion or deletion).

# Usage

Run the interactive shell against a word list:

	wordcheck -c -dict dictionary.txt

	Enter a word (or 'exit' to quit): speling
	Word not found: speling
	Did you mean: spelling

Serve msgpack requests on stdin/stdout, loading chunked binary dictionaries:

	wordcheck -dict data/

Convert a text word list to the binary chunk format:

	wordcheck -dict words.txt -normalize -export data/dict_0001.bin

# Dictionaries

A dictionary is either a text file with one lowercase word per line, a
binary chunk file, or a directory of chunks named dict_0001.bin,
dict_0002.bin, ... Entries outside a-z are skipped unless -normalize folds
them into range. A dictionary that cannot be read leaves the index empty.

# Configuration

Settings live in a TOML file in the user config dir (created with defaults
on first run), or the file given with -config. Flags override it. See
package config for the keys.

# Command Line Flags

	-version     Show current version
	-d           Enable debug logging
	-c           Run the interactive shell instead of the IPC server
	-dict path   Dictionary file or chunk directory
	-config path Config file
	-words n     Maximum words to load (0 for all)
	-normalize   Fold case and strip diacritics while loading
	-export path Write the loaded words as a binary chunk and exit
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bastiangx/wordcheck/internal/cli"
	"github.com/bastiangx/wordcheck/internal/logger"
	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/bastiangx/wordcheck/pkg/config"
	"github.com/bastiangx/wordcheck/pkg/dictionary"
	"github.com/bastiangx/wordcheck/pkg/server"
	"github.com/bastiangx/wordcheck/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "wordcheck"
	gh      = "https://github.com/bastiangx/wordcheck"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, dictionary, checker and the selected front end.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run the interactive shell instead of the IPC server")
	dictPath := flag.String("dict", "", "Dictionary file or chunk directory (overrides config)")
	configPath := flag.String("config", "", "Path to the config file")
	wordLimit := flag.Int("words", -1, "Maximum number of words to load (0 for all, overrides config)")
	normalize := flag.Bool("normalize", false, "Fold case and strip diacritics while loading")
	exportPath := flag.String("export", "", "Write the loaded words as a binary chunk to this file and exit")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	resolver, err := utils.NewPathResolver()
	if err != nil {
		log.Warnf("Failed to initialize path resolver: %v", err)
	}

	cfg, activeConfig := loadConfig(resolver, *configPath)
	log.Debugf("Using config file: (%s)", activeConfig)

	if *dictPath != "" {
		cfg.Dict.Path = *dictPath
	}
	if *wordLimit >= 0 {
		cfg.Dict.MaxWords = *wordLimit
	}
	if *normalize {
		cfg.Dict.Normalize = true
	}

	checker := suggest.NewChecker(cfg.Server.CacheSize)
	loadDictionary(checker, resolver, cfg.Dict)

	if *exportPath != "" {
		if err := exportChunk(checker, *exportPath); err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		return
	}

	// the shell is the primary way to try things out by hand
	if *cliMode {
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(checker, cfg.CLI, os.Stdin, os.Stdout)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(checker, cfg, os.Stdin, os.Stdout)
	showStartupInfo(cfg.Dict.Path, checker.Stats())
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// loadConfig returns the config and the path it came from
func loadConfig(resolver *utils.PathResolver, customPath string) (*config.Config, string) {
	path := customPath
	if path == "" {
		if resolver == nil {
			log.Warn("No config location available, using built-in defaults")
			return config.DefaultConfig(), "builtin"
		}
		log.Debugf("Config dir: %s", resolver.GetConfigDir())
		path = resolver.GetConfigPath(config.FileName)
	}

	cfg, err := config.InitConfig(path)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg, config.GetActiveConfigPath(path)
}

// loadDictionary fills checker; failures leave it empty
func loadDictionary(checker *suggest.Checker, resolver *utils.PathResolver, dict config.DictConfig) {
	path := dict.Path
	if resolver != nil {
		path = resolver.GetDictPath(path)
	}

	start := time.Now()
	stats, err := dictionary.LoadPath(path, checker, dictionary.Options{
		MaxWords:  dict.MaxWords,
		Normalize: dict.Normalize,
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Warnf("Dictionary not found at %s, running with empty dict...", path)
		} else {
			log.Errorf("Unable to load dictionary: %v", err)
		}
		return
	}

	log.Debug("Dictionary loaded",
		"path", path,
		"words", stats.Loaded,
		"duplicates", stats.Duplicates,
		"skipped", stats.Skipped,
		"took", time.Since(start))
	if stats.Skipped > 0 {
		log.Warnf("Skipped %d dictionary entries outside a-z (try -normalize)", stats.Skipped)
	}
}

// exportChunk writes every stored word, sorted, as one binary chunk
func exportChunk(checker *suggest.Checker, path string) error {
	words, err := checker.Complete("")
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	if err := dictionary.WriteChunk(file, words); err != nil {
		return err
	}
	log.Infof("Exported %d words to %s", len(words), path)
	return nil
}

func printVersion() {
	banner := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	banner.SetStyles(styles)

	banner.Print("")
	banner.Print("[ wordcheck ] prefix lookups and spelling suggestions")
	banner.Print("", "version", Version)
	banner.Print("")
	banner.Print("use -h or --help to see available options")
	banner.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(dictPath string, stats map[string]int) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	log.Infof("%s %s", AppName, Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("dictionary: ( %s )", dictPath)
	log.Infof("words: %s", utils.FormatWithCommas(stats["totalWords"]))
	log.Info("status: ready")

	log.SetLevel(currentLevel)
}
