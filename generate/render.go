package generate

import (
	"fmt"
	"strings"

	"github.com/jsxkit/jsxkit/jsx"
	"github.com/jsxkit/jsxkit/manifest"
)

// Render produces the full canonical-shaped script for a simple
// manifest entry. The output is a fixpoint of the normalizer: header
// trio in canonical order, no self-invoking wrapper, one execute
// block, so a later normalize run reports it unchanged.
func Render(s manifest.Script, original string) string {
	requiresSel := strings.Contains(strings.ToLower(original), "selection")

	var b strings.Builder
	fmt.Fprintf(&b, `/**
 * %s
 * @version 1.0.0
 * @description %s
 * @author Adobe Illustrator Scripts
 * @license MIT
 * @category %s
 */
`, s.Name, s.Desc, s.Category)

	b.WriteString(jsx.TargetPragma + "\n")
	b.WriteString(jsx.LoaderSnippet + "\n")
	b.WriteString(jsx.PreferenceStatement + "\n\n")

	fmt.Fprintf(&b, `var SCRIPT = {
    name: '%s',
    version: '1.0.0',
    description: '%s',
    category: '%s',
    requiresDocument: true,
    requiresSelection: %t
};

`, quote(s.Name), quote(s.Desc), quote(s.Category), requiresSel)

	fmt.Fprintf(&b, `function main() {
    var doc = app.activeDocument;
    %s
}

`, mainBody(original, s.OldPath))

	b.WriteString(`function validateEnvironment() {
    if (SCRIPT.requiresDocument && app.documents.length === 0) {
        return { valid: false, message: 'Please open a document first.' };
    }
    if (SCRIPT.requiresSelection && app.activeDocument.selection.length === 0) {
        return { valid: false, message: 'Please select at least one object.' };
    }
    return { valid: true };
}

`)

	b.WriteString(jsx.BuildExecuteBlock(jsx.GuardValidationFunction, jsx.Messages{}, s.Name))
	return b.String()
}

// mainBody salvages the legacy script's logic when it is short enough
// to carry over verbatim: framework lines, comments and blanks are
// dropped, and anything longer than a handful of statements is left
// for a human with a pointer back to the original.
func mainBody(original, oldPath string) string {
	var kept []string
	for _, line := range strings.Split(strings.TrimSpace(original), "\n") {
		t := strings.TrimSpace(line)
		if t == "" || strings.HasPrefix(t, "//") {
			continue
		}
		if strings.Contains(strings.ToLower(t), "lascripts") {
			continue
		}
		kept = append(kept, t)
	}
	if len(kept) == 0 || len(kept) > 5 {
		return "// Original: " + oldPath + "\n    // Needs manual implementation"
	}
	return strings.Join(kept, "\n    ")
}

// quote escapes single quotes for embedding in the dialect's string
// literals.
func quote(s string) string {
	return strings.ReplaceAll(s, `'`, `\'`)
}
