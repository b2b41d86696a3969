package model

import "fmt"

// Visibility decides which shadow events are reported, based on whether
// the two paths resolve to the same underlying file.
type Visibility int

const (
	// Suppress hides identical files and reports only genuinely different ones.
	Suppress Visibility = iota
	// Show reports every shadow event.
	Show
	// Only reports identical files exclusively.
	Only
)

// ParseVisibility accepts the command line spellings false, true and only.
func ParseVisibility(s string) (Visibility, error) {
	switch s {
	case "false", "suppress", "":
		return Suppress, nil
	case "true", "show":
		return Show, nil
	case "only":
		return Only, nil
	}
	return Suppress, fmt.Errorf("invalid visibility %q: must be one of false, true, only", s)
}

// ShowsIdentical reports whether events between the same underlying file are kept.
func (v Visibility) ShowsIdentical() bool {
	return v == Show || v == Only
}

// ShowsDistinct reports whether events between different files are kept.
func (v Visibility) ShowsDistinct() bool {
	return v == Suppress || v == Show
}

// Allows is the filter predicate applied to every shadow event.
func (v Visibility) Allows(identical bool) bool {
	if identical {
		return v.ShowsIdentical()
	}
	return v.ShowsDistinct()
}

// Next cycles Suppress -> Show -> Only -> Suppress.
func (v Visibility) Next() Visibility {
	return (v + 1) % 3
}

func (v Visibility) String() string {
	switch v {
	case Show:
		return "true"
	case Only:
		return "only"
	default:
		return "false"
	}
}

// Set implements pflag.Value.
func (v *Visibility) Set(s string) error {
	parsed, err := ParseVisibility(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Type implements pflag.Value.
func (v *Visibility) Type() string {
	return "false|true|only"
}
