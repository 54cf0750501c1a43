package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"
)

// repl reads lines of the form "<solution> [input-file]" and runs them until
// EOF. Failed solutions are logged and the prompt continues.
func repl(cfg *config) error {
	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".advent_history")
	}
	var items []readline.PrefixCompleterInterface
	for _, name := range solutionNames() {
		items = append(items, readline.PcItem(name))
	}
	l, err := readline.NewEx(&readline.Config{
		Prompt:       "advent> ",
		HistoryFile:  historyFile,
		AutoComplete: readline.NewPrefixCompleter(items...),
	})
	if err != nil {
		return err
	}
	defer l.Close()

	for {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return nil
		default:
			return err
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if err := runSolution(cfg, fields[0], fields[1:], nil); err != nil {
			log.Error().Err(err).Msg("solution failed")
		}
	}
}
