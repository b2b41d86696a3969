package main

import (
	"github.com/spf13/cobra"

	"pathshadow/internal/validate"
)

func newValidateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the search path for empty, duplicate, relative or missing entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, printer, err := a.setup(cmd)
			if err != nil {
				return err
			}
			_, raw, err := a.searchPath(cmd, args, false)
			if err != nil {
				return err
			}
			return printer.Issues(validate.New(nil).Validate(raw))
		},
	}
	cmd.Flags().String("path", "", "Search path to inspect instead of $PATH")
	return cmd
}
