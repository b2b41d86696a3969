package model

// Entry is a single non-directory item found while listing a search path directory.
type Entry struct {
	Index int    // Position of the owning directory in the search path
	Dir   string // The search path entry the item was listed from (e.g., /usr/bin)
	Name  string // Filename as the shell would look it up (e.g., python3)
	Path  string // Dir joined with Name
}

// ShadowEvent records a filename that appears in more than one search path directory.
// Shadowing is the earlier entry that the shell runs; Shadowed is the later one it never reaches.
type ShadowEvent struct {
	Name           string `json:"name"`
	Shadowing      string `json:"shadowing"`
	Shadowed       string `json:"shadowed"`
	ShadowingIndex int    `json:"shadowingIndex"`
	ShadowedIndex  int    `json:"shadowedIndex"`
	Identical      bool   `json:"identical"` // Both paths resolve to the same underlying file
}

// Match is one directory that holds a requested command name.
type Match struct {
	Target int    `json:"target"` // Index into the requested names
	Name   string `json:"name"`
	Path   string `json:"path"`
	Index  int    `json:"index"` // Position of the directory in the search path
}

// IssueKind classifies a problem with a search path entry.
type IssueKind string

const (
	IssueEmpty         IssueKind = "empty"
	IssueDuplicate     IssueKind = "duplicate"
	IssueNotAbsolute   IssueKind = "not-absolute"
	IssueMissing       IssueKind = "missing"
	IssueNotDirectory  IssueKind = "not-directory"
	IssueUninspectable IssueKind = "uninspectable"
)

// Issue is a single finding about the search path string itself.
type Issue struct {
	Index int       `json:"index"`
	Entry string    `json:"entry"`
	Kind  IssueKind `json:"kind"`
	Err   string    `json:"error,omitempty"`
}
