package main

import (
	"errors"
	"os"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"pathshadow/internal/diag"
	"pathshadow/internal/model"
	"pathshadow/internal/scan"
	"pathshadow/internal/shadow"
	"pathshadow/internal/tui"
)

func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newBrowseCmd(a *app) *cobra.Command {
	vis := model.Suppress
	cmd := &cobra.Command{
		Use:   "browse [PATH]",
		Short: "Explore shadowed commands interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := a.setup(cmd)
			if err != nil {
				return err
			}
			if !isTerminal(a.stdout) {
				return errors.New("browse needs a terminal; use 'pathshadow shadows' for piped output")
			}
			v, err := cfg.Visibility()
			if err != nil {
				return err
			}
			sp, _, err := a.searchPath(cmd, args, true)
			if err != nil {
				return err
			}

			load := func() ([]model.ShadowEvent, []string, error) {
				diags := &diag.Collector{}
				det := shadow.NewDetector(nil, diags)
				// Keep every event, the browser filters on the fly.
				events := slices.Collect(det.Detect(scan.NewScanner(diags).Scan(sp)))
				var msgs []string
				for _, d := range diags.Items() {
					msgs = append(msgs, d.Error())
				}
				return events, msgs, nil
			}

			m := tui.InitialModel(load, v)
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(a.stdout))
			_, err = p.Run()
			return err
		},
	}
	cmd.Flags().Var(&vis, "show-same", "Initial same-file mode: false, true or only")
	cmd.Flags().String("path", "", "Search path to inspect instead of $PATH")
	return cmd
}
