// Package manifest reads the scripts.toml catalog that drives the
// generator: two-level tables keyed by category and script name, each
// entry pointing at a legacy source file.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the manifest's fixed name under the scripts root.
const FileName = "scripts.toml"

// Entry is the raw per-script record as it appears in the manifest.
type Entry struct {
	OldPath  string  `toml:"old_path"`
	Desc     string  `toml:"desc"`
	Refactor string  `toml:"refactor"`
	Quality  float64 `toml:"quality"`
}

// Script is a flattened manifest entry with its section coordinates.
type Script struct {
	Category string
	Name     string
	OldPath  string
	Desc     string
	Refactor string
	Quality  float64
}

// Load parses the manifest and returns its scripts sorted by category
// then name, so every artifact the generator writes is deterministic.
func Load(path string) ([]Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	var raw map[string]map[string]Entry
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	var scripts []Script
	for category, entries := range raw {
		for name, e := range entries {
			scripts = append(scripts, Script{
				Category: category,
				Name:     name,
				OldPath:  e.OldPath,
				Desc:     e.Desc,
				Refactor: e.Refactor,
				Quality:  e.Quality,
			})
		}
	}
	sort.Slice(scripts, func(i, j int) bool {
		if scripts[i].Category != scripts[j].Category {
			return scripts[i].Category < scripts[j].Category
		}
		return scripts[i].Name < scripts[j].Name
	})
	return scripts, nil
}

var (
	knownSuffixRe = regexp.MustCompile(`\s*\((?:LAScripts|FR|Folder)\)$`)
	wordRe        = regexp.MustCompile(`[A-Za-z0-9]+`)
)

// TargetFilename derives the output filename: known suffixes stripped,
// remaining words capitalized and concatenated, fixed .jsx extension.
// "resize to size (LAScripts)" becomes "ResizeToSize.jsx".
func (s Script) TargetFilename() string {
	name := knownSuffixRe.ReplaceAllString(s.Name, "")
	var b strings.Builder
	for _, w := range wordRe.FindAllString(name, -1) {
		b.WriteString(strings.ToUpper(w[:1]))
		b.WriteString(strings.ToLower(w[1:]))
	}
	return b.String() + ".jsx"
}

// TargetPath is where the generated script lands: a category-named
// subdirectory under the scripts root.
func (s Script) TargetPath(root string) string {
	return filepath.Join(root, s.Category, s.TargetFilename())
}
