// Package walker drives normalization over a file tree: it enumerates
// matching script files, pushes each one through the jsx pipeline and
// rewrites it only when something changed. Failures are isolated per
// file; one broken file never aborts the run.
package walker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/log"

	"github.com/jsxkit/jsxkit/jsx"
)

// DefaultPattern matches the script files this tool targets.
const DefaultPattern = "**/*.jsx"

// Stats accumulates per-run counters. It is a plain local value passed
// back to the caller; there is no process-wide state.
type Stats struct {
	Visited  int
	Modified int
	Failed   int
}

// Process normalizes a single file in place and reports whether the
// file was rewritten. The file is written only when the pipeline
// changed its text.
func Process(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}
	text := string(data)
	out, changed := jsx.Normalize(text)
	if !changed {
		log.Debug("unchanged", "file", path)
		return false, nil
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	log.Debug("rewrote", "file", path, "guard", guardOf(text))
	return true, nil
}

// guardOf names the guard kind of the wrapper a file carried before
// normalization, for log output.
func guardOf(text string) string {
	if w, ok := jsx.ExtractWrapper(text); ok {
		return w.Kind.String()
	}
	return jsx.GuardNone.String()
}

// Run normalizes every file matching pattern under root. Per-file
// failures are logged and counted but do not stop the traversal; only
// an unreadable root is an error.
func Run(root, pattern string) (Stats, error) {
	var stats Stats
	if _, err := os.Stat(root); err != nil {
		return stats, fmt.Errorf("cannot access %s: %w", root, err)
	}
	err := doublestar.GlobWalk(os.DirFS(root), pattern, func(p string, d fs.DirEntry) error {
		if d.IsDir() {
			return nil
		}
		stats.Visited++
		path := filepath.Join(root, p)
		changed, err := Process(path)
		if err != nil {
			stats.Failed++
			log.Error("normalize failed", "file", path, "err", err)
			return nil
		}
		if changed {
			stats.Modified++
		}
		return nil
	})
	if err != nil {
		return stats, fmt.Errorf("walking %s: %w", root, err)
	}
	return stats, nil
}
