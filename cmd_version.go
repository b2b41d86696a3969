package main

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/tcnksm/go-latest"

	"pathshadow/internal/config"
	"pathshadow/internal/model"
)

// VersionInfo contains version information for the binary.
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

func releaseTag() *latest.GithubTag {
	return &latest.GithubTag{
		Owner:      model.ReleaseOwner,
		Repository: model.ReleaseRepository,
	}
}

// checkUpdate compares against the latest GitHub release tag. Network failures are silent.
func checkUpdate(cmd *cobra.Command, currentVer string) {
	res, err := latest.Check(releaseTag(), currentVer)
	if err != nil {
		return
	}

	if res.Outdated {
		cmd.Printf("A new version is available: %s (you have %s)\n", res.Current, currentVer)
	} else {
		cmd.Printf("You are using the latest version: %s\n", currentVer)
	}
}

func newVersionCmd(a *app) *cobra.Command {
	var check bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, _, err := a.setup(cmd)
			if err != nil {
				return err
			}
			info := VersionInfo{
				Version:   model.Version,
				GoVersion: runtime.Version(),
				Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
			}

			if cfg.Format == config.FormatJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}
			cmd.Printf("pathshadow version %s\n", info.Version)
			if check {
				checkUpdate(cmd, info.Version)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "Check GitHub for a newer release")
	return cmd
}
