package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/tada/internal/snapshot"
	"github.com/Makepad-fr/tada/internal/ui"
)

const runExample = `  # one command per line
  printf 'add buy milk\nadd walk dog\ntoggle 1\nls\n' | tada run

  # from a file, confirming deletes without asking
  tada run --yes today.txt`

func newRunCommand(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "run [file|-]",
		Short: "Apply a script of add/toggle/edit/rm lines and print the list",
		Long: `Apply a script to an empty list, then print the result.

Commands (one per line, # starts a comment):
  add <text...>          Add a new todo
  toggle <id>            Toggle done (alias: done)
  edit <id> <text...>    Replace the text of a todo
  rm <id>                Delete a todo (alias: delete); asks first unless --yes
  ls                     Print the list so far`,
		Example:     runExample,
		Annotations: map[string]string{logToStderr: "true"},
		Args: func(cmd *cobra.Command, args []string) error {
			return usageError(cobra.MaximumNArgs(1)(cmd, args))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.newStore()
			if err != nil {
				return err
			}

			src, confirm, closeSrc, err := a.scriptSource(args, yes)
			if err != nil {
				return err
			}
			defer closeSrc()

			th := ui.Named(a.cfg.Theme)
			r := &scriptRunner{
				store:   s,
				printer: ui.Printer{Out: a.streams.Out, Err: a.streams.Err, Theme: th},
				confirm: confirm,
				logger:  a.logger,
			}
			if err := r.Run(src); err != nil {
				return err
			}
			a.logger.Info("script done", "items", s.Len(), "malformed", r.usageErrors)

			if a.jsonOut {
				if err := snapshot.Write(a.streams.Out, s.Items()); err != nil {
					return err
				}
			} else {
				fmt.Fprintln(a.streams.Out, th.Panel(th.ListLines(s.Items())))
			}

			if r.usageErrors > 0 {
				return &codedError{code: exitUsage, err: fmt.Errorf("%d malformed line(s)", r.usageErrors)}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm every delete without asking")
	return cmd
}

// scriptSource opens the script and picks how deletes are confirmed. A
// script read from stdin cannot also answer prompts, so its deletes are
// declined unless --yes is given.
func (a *app) scriptSource(args []string, yes bool) (io.Reader, Confirmer, func(), error) {
	var confirm Confirmer = declineAll{}
	if yes {
		confirm = confirmAll{}
	}

	if len(args) == 0 || args[0] == "-" {
		return a.streams.In, confirm, func() {}, nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open script: %w", err)
	}
	if !yes {
		confirm = newPromptConfirmer(a.streams.In, a.streams.Out)
	}
	return f, confirm, func() { f.Close() }, nil
}
