package main

import (
	"github.com/spf13/cobra"

	"pathshadow/internal/diag"
	"pathshadow/internal/locate"
	"pathshadow/internal/model"
	"pathshadow/internal/scan"
)

func newWhereCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "where COMMAND_NAME...",
		Short: "Print every search path directory entry matching the given names",
		Long: `Print the full path of every search path entry whose filename matches one of the
given names, in search path order. Only the last element of each name is compared.
Names found nowhere are reported once the whole path has been scanned.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, printer, err := a.setup(cmd)
			if err != nil {
				return err
			}
			sp, _, err := a.searchPath(cmd, args, false)
			if err != nil {
				return err
			}

			sink := diag.Tee(diag.LogSink{Logger: logger}, printer.Diagnostics())
			var writeErr error
			res := locate.New(scan.NewScanner(sink, scan.WithLogger(logger)), sink).Locate(sp, args, func(m model.Match) {
				if writeErr == nil {
					writeErr = printer.Match(m)
				}
			})
			if writeErr != nil {
				return writeErr
			}
			return printer.Located(res)
		},
	}
	cmd.Flags().String("path", "", "Search path to inspect instead of $PATH")
	return cmd
}
