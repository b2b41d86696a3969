package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"pathshadow/internal/config"
	"pathshadow/internal/diag"
	"pathshadow/internal/report"
	"pathshadow/internal/scan"
)

// app carries the process boundary so commands can be run against buffers in tests.
type app struct {
	stdout io.Writer
	stderr io.Writer
	lookup scan.LookupFunc

	cfgFile string
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "pathshadow",
		Short: "Find commands hidden by earlier entries of your PATH",
		Long: `pathshadow inspects the directories of your PATH in the order a shell
searches them and reports every command name that appears more than once.
Only the first one is ever run; the later ones are shadowed.

Examples:
  pathshadow shadows                  # Shadowed commands on $PATH
  pathshadow shadows --show-same=true # Include entries that are the same file
  pathshadow where python3 pip        # Every directory holding these names
  pathshadow validate                 # Check $PATH itself for mistakes`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/pathshadow/config.toml)")
	pf.BoolP("verbose", "v", false, "Log every directory as it is scanned")
	pf.String("color", config.ColorAuto, "Color output: auto, always or never")
	pf.String("format", config.FormatText, "Output format: text or json")

	root.AddCommand(
		newShadowsCmd(a),
		newWhereCmd(a),
		newValidateCmd(a),
		newBrowseCmd(a),
		newServeCmd(a),
		newVersionCmd(a),
	)
	return root
}

// setup loads the layered configuration for cmd and builds its output helpers.
func (a *app) setup(cmd *cobra.Command) (*config.Config, *log.Logger, *report.Printer, error) {
	cfg, err := config.Load(cmd.Flags(), a.cfgFile)
	if err != nil {
		return nil, nil, nil, err
	}
	logger := diag.NewLogger(a.stderr, cfg.Verbose)
	return cfg, logger, report.NewPrinter(a.stdout, cfg.Format, cfg.Color), nil
}

// searchPath resolves the --path flag, or the first positional argument when
// fromArgs is set, falling back to $PATH.
func (a *app) searchPath(cmd *cobra.Command, args []string, fromArgs bool) (scan.SearchPath, string, error) {
	override, given := "", false
	if f := cmd.Flags().Lookup("path"); f != nil && f.Changed {
		override, given = f.Value.String(), true
	}
	if fromArgs && len(args) > 0 {
		override, given = args[0], true
	}
	raw, err := scan.Resolve(override, given, a.lookup)
	if err != nil {
		return nil, "", err
	}
	return scan.Split(raw), raw, nil
}

func run(args []string, stdout, stderr io.Writer, lookup scan.LookupFunc) int {
	root := newRootCmd(&app{stdout: stdout, stderr: stderr, lookup: lookup})
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, os.LookupEnv))
}
