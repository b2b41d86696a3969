// Package validate checks the search path string itself without listing any directory.
package validate

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"pathshadow/internal/model"
	"pathshadow/internal/scan"
)

// StatFunc has the signature of os.Stat.
type StatFunc func(name string) (fs.FileInfo, error)

// Validator reports empty, duplicate, relative, missing and non-directory entries.
type Validator struct {
	stat StatFunc
}

// New creates a Validator. A nil stat uses os.Stat.
func New(stat StatFunc) *Validator {
	if stat == nil {
		stat = os.Stat
	}
	return &Validator{stat: stat}
}

// Validate checks every entry of raw in order. The first failing check wins for each entry.
// A path repeated n times is reported n-1 times, once per repeat.
func (v *Validator) Validate(raw string) []model.Issue {
	var issues []model.Issue
	seen := make(map[string]bool)

	for i, entry := range scan.Split(raw) {
		if issue, bad := v.check(entry, seen); bad {
			issue.Index = i
			issue.Entry = entry
			issues = append(issues, issue)
		}
		seen[entry] = true
	}
	return issues
}

func (v *Validator) check(entry string, seen map[string]bool) (model.Issue, bool) {
	switch {
	case entry == "":
		return model.Issue{Kind: model.IssueEmpty}, true
	case seen[entry]:
		return model.Issue{Kind: model.IssueDuplicate}, true
	case !filepath.IsAbs(entry):
		return model.Issue{Kind: model.IssueNotAbsolute}, true
	}

	info, err := v.stat(entry)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return model.Issue{Kind: model.IssueMissing}, true
	case err != nil:
		return model.Issue{Kind: model.IssueUninspectable, Err: err.Error()}, true
	case !info.IsDir():
		return model.Issue{Kind: model.IssueNotDirectory}, true
	}
	return model.Issue{}, false
}

// Message renders the warning line for an issue.
func Message(is model.Issue) string {
	switch is.Kind {
	case model.IssueEmpty:
		return fmt.Sprintf("entry %d is empty, so the shell will also search the current working directory", is.Index+1)
	case model.IssueDuplicate:
		return is.Entry + " is duplicated"
	case model.IssueNotAbsolute:
		return is.Entry + " is not absolute"
	case model.IssueMissing:
		return is.Entry + " does not exist"
	case model.IssueNotDirectory:
		return is.Entry + " is not a directory"
	case model.IssueUninspectable:
		return fmt.Sprintf("%s cannot be inspected: %s", is.Entry, is.Err)
	}
	return is.Entry + ": " + string(is.Kind)
}
