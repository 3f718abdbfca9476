// Package generate stamps out canonical-shaped Illustrator scripts
// from the scripts.toml manifest: simple legacy scripts are converted
// automatically, everything else is queued for manual porting. It
// writes a generation log, a manual-processing queue and a JSON stats
// summary next to the manifest.
package generate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/jsxkit/jsxkit/manifest"
)

// Report artifact names, fixed under the scripts root.
const (
	LogFile     = "generated_scripts.log"
	ManualQueue = "manual_queue.txt"
	StatsFile   = "generation_stats.json"
)

// Result is the machine-readable run summary persisted to StatsFile.
type Result struct {
	Total     int `json:"total_scripts"`
	Generated int `json:"simple_generated"`
	Manual    int `json:"complex_manual"`
	Failed    int `json:"failed"`
	Missing   int `json:"missing"`
}

// queued is a script held back from automation, with the reason.
type queued struct {
	script manifest.Script
	reason string
}

// Run generates scripts for every simple manifest entry under root and
// writes the three report artifacts. Per-entry failures are recorded
// and never abort the run; only a missing manifest or an unwritable
// artifact is an error.
func Run(root string) (Result, error) {
	scripts, err := manifest.Load(filepath.Join(root, manifest.FileName))
	if err != nil {
		return Result{}, err
	}

	var (
		generated []manifest.Script
		manual    []queued
		failed    []queued
		missing   []manifest.Script
	)

	for _, s := range scripts {
		oldPath := filepath.Join(root, s.OldPath)
		data, err := os.ReadFile(oldPath)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				missing = append(missing, s)
				continue
			}
			manual = append(manual, queued{s, fmt.Sprintf("read error: %v", err)})
			continue
		}
		simple, reason := Classify(string(data))
		if !simple {
			manual = append(manual, queued{s, reason})
			continue
		}

		target := s.TargetPath(root)
		content := Render(s, string(data))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			failed = append(failed, queued{s, err.Error()})
			continue
		}
		if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
			failed = append(failed, queued{s, err.Error()})
			continue
		}
		generated = append(generated, s)
		log.Debug("generated", "file", target)
	}

	res := Result{
		Total:     len(scripts),
		Generated: len(generated),
		Manual:    len(manual),
		Failed:    len(failed),
		Missing:   len(missing),
	}
	if err := writeLog(root, generated); err != nil {
		return res, err
	}
	if err := writeManualQueue(root, manual, failed); err != nil {
		return res, err
	}
	if err := writeStats(root, res); err != nil {
		return res, err
	}
	return res, nil
}

const rule = "============================================================"

func writeLog(root string, generated []manifest.Script) error {
	var b strings.Builder
	b.WriteString("Generated Scripts Log\n" + rule + "\n\n")
	for _, s := range generated {
		fmt.Fprintf(&b, "%s/%s\n", s.Category, s.TargetFilename())
		fmt.Fprintf(&b, "  Original: %s\n", s.OldPath)
		fmt.Fprintf(&b, "  Quality: %g\n", s.Quality)
		fmt.Fprintf(&b, "  Description: %s\n\n", s.Desc)
	}
	return writeArtifact(filepath.Join(root, LogFile), b.String())
}

func writeManualQueue(root string, manual, failed []queued) error {
	var b strings.Builder
	b.WriteString("Scripts Requiring Manual Processing\n" + rule + "\n\n")
	b.WriteString("COMPLEX SCRIPTS:\n")
	for _, q := range manual {
		fmt.Fprintf(&b, "\n%s\n", q.script.Name)
		fmt.Fprintf(&b, "  File: %s\n", q.script.OldPath)
		fmt.Fprintf(&b, "  Quality: %g\n", q.script.Quality)
		fmt.Fprintf(&b, "  Reason: %s\n", q.reason)
		fmt.Fprintf(&b, "  Category: %s\n", q.script.Category)
	}
	b.WriteString("\n\nFAILED GENERATION:\n")
	for _, q := range failed {
		fmt.Fprintf(&b, "\n%s\n", q.script.Name)
		fmt.Fprintf(&b, "  File: %s\n", q.script.OldPath)
		fmt.Fprintf(&b, "  Error: %s\n", q.reason)
	}
	return writeArtifact(filepath.Join(root, ManualQueue), b.String())
}

func writeStats(root string, res Result) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	return writeArtifact(filepath.Join(root, StatsFile), string(data)+"\n")
}

func writeArtifact(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
