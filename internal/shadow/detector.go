// Package shadow finds filenames that occur in more than one search path
// directory, where only the first occurrence is ever run by a shell.
package shadow

import (
	"context"
	"iter"

	"golang.org/x/sync/errgroup"

	"pathshadow/internal/diag"
	"pathshadow/internal/model"
	"pathshadow/internal/scan"
)

// Detector keeps the first-seen entry for every filename. A winner is never replaced.
type Detector struct {
	same    scan.IdentityFunc
	sink    diag.Sink
	winners map[string]model.Entry
}

// NewDetector creates a Detector. A nil same uses scan.SameFile; a nil sink discards.
func NewDetector(same scan.IdentityFunc, sink diag.Sink) *Detector {
	if same == nil {
		same = scan.SameFile
	}
	if sink == nil {
		sink = diag.Discard
	}
	return &Detector{
		same:    same,
		sink:    sink,
		winners: make(map[string]model.Entry),
	}
}

// Winner returns the entry currently holding name.
func (d *Detector) Winner(name string) (model.Entry, bool) {
	w, ok := d.winners[name]
	return w, ok
}

// challenge records e as winner if its name is new, otherwise returns the incumbent.
func (d *Detector) challenge(e model.Entry) (model.Entry, bool) {
	if w, ok := d.winners[e.Name]; ok {
		return w, true
	}
	d.winners[e.Name] = e
	return model.Entry{}, false
}

// compare builds the event for a collision. A failed comparison is reported and yields no event.
func (d *Detector) compare(winner, challenger model.Entry) (model.ShadowEvent, bool) {
	identical, err := d.same(winner.Path, challenger.Path)
	if err != nil {
		d.sink.Report(diag.Diagnostic{
			Kind:  diag.ErrIdentityCheckFailed,
			Path:  winner.Path,
			Other: challenger.Path,
			Err:   err,
		})
		return model.ShadowEvent{}, false
	}
	return model.ShadowEvent{
		Name:           winner.Name,
		Shadowing:      winner.Path,
		Shadowed:       challenger.Path,
		ShadowingIndex: winner.Index,
		ShadowedIndex:  challenger.Index,
		Identical:      identical,
	}, true
}

// Detect yields one event per challenger, in the order challengers arrive.
func (d *Detector) Detect(entries iter.Seq[model.Entry]) iter.Seq[model.ShadowEvent] {
	return func(yield func(model.ShadowEvent) bool) {
		for e := range entries {
			w, taken := d.challenge(e)
			if !taken {
				continue
			}
			ev, ok := d.compare(w, e)
			if !ok {
				continue
			}
			if !yield(ev) {
				return
			}
		}
	}
}

type pair struct {
	winner, challenger model.Entry
}

// DetectParallel settles every winner in a sequential pass first, then runs the
// identity comparisons on up to jobs goroutines. Events keep challenger order.
func (d *Detector) DetectParallel(ctx context.Context, entries iter.Seq[model.Entry], jobs int) ([]model.ShadowEvent, error) {
	var pairs []pair
	for e := range entries {
		if w, taken := d.challenge(e); taken {
			pairs = append(pairs, pair{winner: w, challenger: e})
		}
	}

	events := make([]model.ShadowEvent, len(pairs))
	ok := make([]bool, len(pairs))

	g, gctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, p := range pairs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			events[i], ok[i] = d.compare(p.winner, p.challenger)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := events[:0]
	for i, ev := range events {
		if ok[i] {
			out = append(out, ev)
		}
	}
	return out, nil
}
