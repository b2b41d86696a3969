package scan

import (
	"errors"
	"io"
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"pathshadow/internal/diag"
	"pathshadow/internal/model"
)

const (
	readBatch = 128
	// Give up on a directory after this many consecutive failed reads that yielded nothing.
	maxFailedReads = 8
)

// DirReader is the part of *os.File used for listing.
type DirReader interface {
	ReadDir(n int) ([]fs.DirEntry, error)
	Stat() (fs.FileInfo, error)
	Close() error
}

// OpenFunc opens a directory for listing.
type OpenFunc func(name string) (DirReader, error)

func openOS(name string) (DirReader, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Lister reads one directory at a time and yields its non-directory entries.
type Lister struct {
	open OpenFunc
	sink diag.Sink
}

// NewLister creates a Lister reporting problems to sink. A nil open uses the OS.
func NewLister(open OpenFunc, sink diag.Sink) *Lister {
	if open == nil {
		open = openOS
	}
	if sink == nil {
		sink = diag.Discard
	}
	return &Lister{open: open, sink: sink}
}

// List yields the entries of dir in the order the OS returns them.
// An unopenable directory yields nothing and is reported once.
func (l *Lister) List(index int, dir string) iter.Seq[model.Entry] {
	return func(yield func(model.Entry) bool) {
		f, err := l.open(dir)
		if err != nil {
			l.sink.Report(diag.Diagnostic{Kind: diag.ErrDirectoryUnreadable, Path: dir, Err: err})
			return
		}
		defer f.Close()

		failed := 0
		for first := true; ; first = false {
			batch, err := f.ReadDir(readBatch)
			for _, d := range batch {
				if d.IsDir() {
					continue
				}
				e := model.Entry{
					Index: index,
					Dir:   dir,
					Name:  d.Name(),
					Path:  filepath.Join(dir, d.Name()),
				}
				if !yield(e) {
					return
				}
			}
			if err == nil {
				failed = 0
				continue
			}
			if errors.Is(err, io.EOF) {
				return
			}
			if first && len(batch) == 0 && !isDir(f) {
				// Opened but not listable, e.g. a regular file.
				l.sink.Report(diag.Diagnostic{Kind: diag.ErrDirectoryUnreadable, Path: dir, Err: err})
				return
			}
			l.sink.Report(diag.Diagnostic{Kind: diag.ErrEntryUnreadable, Path: dir, Err: err})
			if len(batch) > 0 {
				failed = 0
				continue
			}
			failed++
			if failed >= maxFailedReads {
				return
			}
		}
	}
}

// isDir reports whether the opened handle is a directory. A failed Stat counts as one
// so a listing error is treated as a per-entry problem.
func isDir(f DirReader) bool {
	info, err := f.Stat()
	if err != nil {
		return true
	}
	return info.IsDir()
}
