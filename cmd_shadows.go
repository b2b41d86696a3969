package main

import (
	"iter"
	"slices"

	"github.com/spf13/cobra"

	"pathshadow/internal/diag"
	"pathshadow/internal/model"
	"pathshadow/internal/scan"
	"pathshadow/internal/shadow"
)

func newShadowsCmd(a *app) *cobra.Command {
	vis := model.Suppress
	cmd := &cobra.Command{
		Use:   "shadows [PATH]",
		Short: "List commands shadowed by an earlier search path entry",
		Long: `List every command that also exists in an earlier directory of the search path.
Each line is "<runs><delimiter><shadowed>": the first path is the one the shell
runs, the second is never reached.

PATH defaults to the PATH environment variable.

--show-same controls entries that resolve to the same file (symlinks, hardlinks):
  false  hide them (default)
  true   show them along with genuinely different files
  only   show nothing but them`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, printer, err := a.setup(cmd)
			if err != nil {
				return err
			}
			v, err := cfg.Visibility()
			if err != nil {
				return err
			}
			sp, _, err := a.searchPath(cmd, args, true)
			if err != nil {
				return err
			}

			sink := diag.Tee(diag.LogSink{Logger: logger}, printer.Diagnostics())
			entries := scan.NewScanner(sink, scan.WithLogger(logger)).Scan(sp)
			det := shadow.NewDetector(nil, sink)

			var events iter.Seq[model.ShadowEvent]
			if cfg.Jobs > 1 {
				list, err := det.DetectParallel(cmd.Context(), entries, cfg.Jobs)
				if err != nil {
					return err
				}
				events = slices.Values(list)
			} else {
				events = det.Detect(entries)
			}

			n, err := printer.Shadows(shadow.Filter(events, v), cfg.Delimiter)
			logger.Debug("scan finished", "reported", n)
			return err
		},
	}
	cmd.Flags().Var(&vis, "show-same", "Report entries that are the same file: false, true or only")
	cmd.Flags().String("delimiter", shadow.DefaultDelimiter, "String printed between the two paths of a line")
	cmd.Flags().Int("jobs", 1, "Compare file identities on this many goroutines")
	cmd.Flags().String("path", "", "Search path to inspect instead of $PATH")
	return cmd
}
