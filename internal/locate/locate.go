// Package locate finds every search path directory that holds a given command name.
package locate

import (
	"path/filepath"

	"pathshadow/internal/diag"
	"pathshadow/internal/model"
	"pathshadow/internal/scan"
)

// Locator matches directory entries against requested names by exact filename.
type Locator struct {
	scanner *scan.Scanner
	sink    diag.Sink
}

// New creates a Locator. Names never found are reported to sink after the scan.
func New(scanner *scan.Scanner, sink diag.Sink) *Locator {
	if sink == nil {
		sink = diag.Discard
	}
	return &Locator{scanner: scanner, sink: sink}
}

// Result is the outcome of one lookup.
type Result struct {
	Targets []string      `json:"targets"`
	Matches []model.Match `json:"matches"`
	Found   []bool        `json:"found"`
}

// Missing returns the targets that matched nothing, in request order.
func (r Result) Missing() []string {
	var out []string
	for i, ok := range r.Found {
		if !ok {
			out = append(out, r.Targets[i])
		}
	}
	return out
}

// Locate scans sp once. Each target is reduced to its filename; a repeated
// target is matched independently. emit, when non-nil, sees every match as it
// is found, once per matching target.
func (l *Locator) Locate(sp scan.SearchPath, targets []string, emit func(model.Match)) Result {
	res := Result{
		Targets: make([]string, len(targets)),
		Found:   make([]bool, len(targets)),
	}
	byName := make(map[string][]int)
	for i, t := range targets {
		name := filepath.Base(t)
		res.Targets[i] = name
		byName[name] = append(byName[name], i)
	}

	for e := range l.scanner.Scan(sp) {
		for _, i := range byName[e.Name] {
			m := model.Match{Target: i, Name: e.Name, Path: e.Path, Index: e.Index}
			res.Found[i] = true
			res.Matches = append(res.Matches, m)
			if emit != nil {
				emit(m)
			}
		}
	}

	for i, ok := range res.Found {
		if !ok {
			l.sink.Report(diag.Diagnostic{Kind: diag.ErrNotFound, Path: res.Targets[i]})
		}
	}
	return res
}
