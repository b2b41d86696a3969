package model

// Version is the release version, overridden with -ldflags at build time.
var Version = "0.3.0"

// ReleaseOwner and ReleaseRepository name the GitHub repository that publishes
// release tags for "version --check". Set them with -ldflags like Version.
var (
	ReleaseOwner      = "pathshadow"
	ReleaseRepository = "pathshadow"
)
