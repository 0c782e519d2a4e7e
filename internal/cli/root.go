// Package cli wires configuration, logging and the store to the two views:
// the interactive TUI (default) and the line-oriented script runner.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/snapshot"
	"github.com/Makepad-fr/tada/internal/store"
	"github.com/Makepad-fr/tada/internal/tui"
	"github.com/Makepad-fr/tada/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Exit codes: 0 ok, 1 error, 2 usage.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// logToStderr marks commands whose logs may share the terminal.
const logToStderr = "log-stderr"

// codedError carries the exit code a failure maps to.
type codedError struct {
	code int
	err  error
}

func (e *codedError) Error() string { return e.err.Error() }
func (e *codedError) Unwrap() error { return e.err }

func usageError(err error) error {
	if err == nil {
		return nil
	}
	return &codedError{code: exitUsage, err: err}
}

// Streams are the process's standard streams, replaceable in tests.
type Streams struct {
	In       io.Reader
	Out, Err io.Writer
}

// app is the state shared by every command once flags are parsed.
type app struct {
	streams Streams

	configPath string
	jsonOut    bool

	cfg    config.Config
	logger *log.Logger
	closer io.Closer
}

// NewRootCommand builds the tada command tree.
func NewRootCommand(streams Streams) *cobra.Command {
	a := &app{streams: streams}
	var printList bool

	root := &cobra.Command{
		Use:           "tada",
		Short:         "A tiny to-do list for the terminal",
		Long:          "tada keeps a to-do list in memory for the length of a session.\nRun without arguments for the interactive list, or use `tada run` to apply a script.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			return usageError(cobra.NoArgs(cmd, args))
		},
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.teardown()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.newStore()
			if err != nil {
				return err
			}
			err = tui.Run(cmd.Context(), s, tui.Options{
				Theme:     ui.Named(a.cfg.Theme),
				NotifyTTL: a.cfg.NotifyTTL,
				Logger:    a.logger,
			}, a.programOptions()...)
			if err != nil {
				return err
			}
			a.logger.Info("session ended", "items", s.Len())
			switch {
			case a.jsonOut:
				return snapshot.Write(a.streams.Out, s.Items())
			case printList:
				th := ui.Named(a.cfg.Theme)
				fmt.Fprintln(a.streams.Out, th.Panel(th.ListLines(s.Items())))
			}
			return nil
		},
	}
	root.SetIn(streams.In)
	root.SetOut(streams.Out)
	root.SetErr(streams.Err)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/tada/config.yaml)")
	pf.BoolVar(&a.jsonOut, "json", false, "print the final list as JSON")
	config.RegisterFlags(pf)
	root.Flags().BoolVar(&printList, "print", false, "print the final list after quitting")

	root.AddCommand(newRunCommand(a), newVersionCommand())
	return root
}

// setup loads config and builds the logger before any command runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath, cmd.Flags())
	if err != nil {
		return usageError(err)
	}
	a.cfg = cfg

	var fallback io.Writer
	if cmd.Annotations[logToStderr] == "true" {
		fallback = a.streams.Err
	}
	logger, closer, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	}, fallback)
	if err != nil {
		return err
	}
	a.logger, a.closer = logger, closer
	a.logger.Debug("config loaded", "file", cfg.File, "theme", cfg.Theme, "ids", cfg.IDSource, "strict", cfg.Strict)
	return nil
}

func (a *app) teardown() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

// newStore builds an empty store from the loaded config.
func (a *app) newStore() (*store.Store, error) {
	ids, err := store.NewIDSource(a.cfg.IDSource)
	if err != nil {
		return nil, usageError(err)
	}
	return store.New(
		store.WithIDSource(ids),
		store.WithLogger(a.logger),
		store.WithStrictText(a.cfg.Strict),
	), nil
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context, args []string, streams Streams) int {
	root := NewRootCommand(streams)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	p := ui.Printer{Out: streams.Out, Err: streams.Err, Theme: ui.Named(ui.DefaultTheme)}
	var ee *codedError
	if errors.As(err, &ee) {
		if ee.code == exitUsage {
			p.Fail(err.Error())
			p.Hint("run `tada --help` for usage")
		}
		return ee.code
	}
	p.Fail(err.Error())
	return exitError
}

// programOptions points the TUI at non-standard streams (tests, pipes).
func (a *app) programOptions() []tea.ProgramOption {
	var opts []tea.ProgramOption
	if a.streams.In != nil && a.streams.In != io.Reader(os.Stdin) {
		opts = append(opts, tea.WithInput(a.streams.In))
	}
	if a.streams.Out != nil && a.streams.Out != io.Writer(os.Stdout) {
		opts = append(opts, tea.WithOutput(a.streams.Out))
	}
	return opts
}

// StdStreams returns the process's standard streams.
func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}
