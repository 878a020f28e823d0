package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/lifecycle"
	"github.com/peterh/liner"

	"github.com/aretw0/fitbook"
	fblifecycle "github.com/aretw0/fitbook/pkg/adapters/lifecycle"
	"github.com/aretw0/fitbook/pkg/core"
)

const historyFileName = "history"

// shell is the interactive command loop.
type shell struct {
	app         *fitbook.App
	line        *liner.State
	out         io.Writer
	historyFile string
	changes     chan lifecycle.Event
}

func runREPL(ctx context.Context, app *fitbook.App) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	sh := &shell{
		app:         app,
		line:        line,
		out:         os.Stdout,
		historyFile: historyPath(),
	}
	sh.loadHistory()
	defer sh.close()

	if src, ok := app.Changes(); ok {
		if err := sh.watch(ctx, src); err != nil {
			slog.Warn("watching disabled", "error", err)
		}
	}

	printNotice(sh.out, fmt.Sprintf("FitBook %s. Type 'help' to see all commands.", strings.TrimSpace(fitbook.Version)))
	printPersons(sh.out, app.FilteredPersonList())
	return sh.loop(ctx)
}

// historyPath resolves the liner history file: the config value, else
// $HOME/.fitbook/history.
func historyPath() string {
	if cfg.HistoryFile != "" {
		return cfg.HistoryFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fitbook", historyFileName)
}

// watch forwards external data file changes into a buffered channel that
// the loop drains between commands, so reloads never race with a running
// command.
func (s *shell) watch(ctx context.Context, src lifecycle.Source) error {
	if err := src.Start(ctx); err != nil {
		return err
	}
	s.changes = make(chan lifecycle.Event, 16)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		for e := range src.Events() {
			select {
			case s.changes <- e:
			default:
				// A reload is already queued; it will pick this change up too.
			}
		}
		return nil
	})
	return nil
}

func (s *shell) loop(ctx context.Context) error {
	prefill := ""
	for {
		input, err := s.read(prefill)
		prefill = ""
		if err != nil {
			fmt.Fprintln(s.out)
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		s.line.AppendHistory(input)

		s.applyChanges(ctx)

		res, err := s.app.Execute(ctx, input)
		if err != nil {
			printError(s.out, err)
			continue
		}
		printResult(s.out, res, s.app.FilteredPersonList())

		if res.Exit() {
			return nil
		}
		prefill = res.Prefill
	}
}

func (s *shell) read(prefill string) (string, error) {
	prompt := promptStyle.Render("fitbook> ")
	if prefill != "" {
		return s.line.PromptWithSuggestion(prompt, prefill, -1)
	}
	return s.line.Prompt(prompt)
}

// applyChanges reloads the address book once if any external change is
// pending.
func (s *shell) applyChanges(ctx context.Context) {
	if s.changes == nil {
		return
	}

	var last lifecycle.Event
	for pending := true; pending; {
		select {
		case e := <-s.changes:
			last = e
		default:
			pending = false
		}
	}
	if last == nil {
		return
	}

	if changed, ok := last.(fblifecycle.DataChanged); ok && changed.Type == core.EventDelete {
		printNotice(s.out, changed.String()+"; keeping the clients in memory")
		return
	}
	if err := s.app.Reload(ctx); err != nil {
		printError(s.out, err)
		return
	}
	printNotice(s.out, last.String()+"; reloaded")
}

func (s *shell) loadHistory() {
	if s.historyFile == "" {
		return
	}
	if f, err := os.Open(s.historyFile); err == nil {
		s.line.ReadHistory(f)
		f.Close()
	}
}

func (s *shell) close() {
	defer s.line.Close()
	if s.historyFile == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.historyFile), 0o700); err != nil {
		return
	}
	f, err := os.OpenFile(s.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return
	}
	defer f.Close()
	s.line.WriteHistory(f)
}
