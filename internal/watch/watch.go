// Package watch polls a set of directories for content changes and
// invokes a callback when anything is added, removed, or edited. A
// polling scan over the walker's content hashes keeps the dependency
// surface small and works on every filesystem.
package watch

import (
	"context"
	"log"
	"time"

	"github.com/luis-eduardo-ferreira-galvao/portfolio/internal/walker"
)

// DefaultInterval is the poll interval used when none is configured.
const DefaultInterval = 500 * time.Millisecond

// Watcher polls the configured roots and reports changes.
type Watcher struct {
	Roots    []string
	Interval time.Duration

	// OnChange is invoked once per detected change set, never
	// concurrently with itself.
	OnChange func()

	last map[string]string
}

// New creates a watcher over the given root directories.
func New(roots []string, onChange func()) *Watcher {
	return &Watcher{
		Roots:    roots,
		Interval: DefaultInterval,
		OnChange: onChange,
	}
}

// Run polls until ctx is cancelled. The first scan establishes the
// baseline without firing OnChange.
func (w *Watcher) Run(ctx context.Context) error {
	snapshot, err := w.scan()
	if err != nil {
		return err
	}
	w.last = snapshot

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			current, err := w.scan()
			if err != nil {
				log.Printf("watch: scan failed: %v", err)
				continue
			}
			if changed(w.last, current) {
				w.last = current
				if w.OnChange != nil {
					w.OnChange()
				}
			}
		}
	}
}

// scan hashes every file under every root into one path->hash map.
// Missing roots contribute nothing, so a directory created later is
// picked up on a following poll.
func (w *Watcher) scan() (map[string]string, error) {
	snapshot := make(map[string]string)
	for _, root := range w.Roots {
		files, err := walker.Walk(walker.Config{RootDir: root})
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			snapshot[f.Path] = f.ContentHash
		}
	}
	return snapshot, nil
}

func changed(prev, curr map[string]string) bool {
	if len(prev) != len(curr) {
		return true
	}
	for path, hash := range curr {
		if prev[path] != hash {
			return true
		}
	}
	return false
}
