package shadow

import (
	"io"
	"iter"

	"pathshadow/internal/model"
)

// DefaultDelimiter separates the two paths of a report line.
const DefaultDelimiter = ":"

// Filter drops events the visibility policy rejects, keeping order.
func Filter(events iter.Seq[model.ShadowEvent], v model.Visibility) iter.Seq[model.ShadowEvent] {
	return func(yield func(model.ShadowEvent) bool) {
		for ev := range events {
			if !v.Allows(ev.Identical) {
				continue
			}
			if !yield(ev) {
				return
			}
		}
	}
}

// Format renders "<shadowing><delim><shadowed>".
func Format(ev model.ShadowEvent, delim string) string {
	return ev.Shadowing + delim + ev.Shadowed
}

// Write prints one line per event and returns how many were written.
func Write(w io.Writer, events iter.Seq[model.ShadowEvent], delim string) (int, error) {
	n := 0
	for ev := range events {
		if _, err := io.WriteString(w, Format(ev, delim)+"\n"); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
