package jsx

import (
	"regexp"
	"strings"
)

// The canonical header trio. Every normalized script starts with these
// three elements, in this order, right after the leading doc comment.
const (
	// TargetPragma declares the host application.
	TargetPragma = "//@target illustrator"

	// LoaderSnippet locates and evaluates the shared support library.
	LoaderSnippet = "var AIS_HOME = File($.fileName).parent.parent.fsName;\n" +
		"$.evalFile(File(AIS_HOME + '/lib/core.jsx'));"

	// PreferenceStatement suppresses the drag-and-drop .jsx warning dialog.
	PreferenceStatement = "app.preferences.setBooleanPreference('ShowExternalJSXWarning', false);"
)

// loaderWrapped is the legacy self-invoking form of the loader snippet,
// removed wherever it appears.
const loaderWrapped = "(function () {\n" +
	"    var AIS_HOME = File($.fileName).parent.parent.fsName;\n" +
	"    $.evalFile(File(AIS_HOME + '/lib/core.jsx'));\n" +
	"})();"

var (
	pragmaLineRe = regexp.MustCompile(`(?m)^[ \t]*//@target illustrator[ \t]*\r?$`)
	prefLineRe   = regexp.MustCompile(`(?m)^[ \t]*app\.preferences\.setBooleanPreference\('ShowExternalJSXWarning', false\);[ \t]*\r?$`)
)

// NormalizeHeader rewrites the pragma / loader / preference trio into
// one canonical ordered block and removes stale loader copies. The
// returned bool reports whether the text changed; callers use it to
// decide whether the file needs rewriting.
//
// When a pragma exists without a preference statement the canonical
// block is still inserted whole, which duplicates the pragma line.
// That mirrors the historical behavior and is pinned by a test rather
// than silently fixed.
func NormalizeHeader(text string) (string, bool) {
	orig := text

	// Drop every existing loader occurrence first, wrapped or bare,
	// with or without an adjacent newline, so duplicates never
	// accumulate across runs.
	for _, form := range []string{
		loaderWrapped + "\n",
		"\n" + loaderWrapped,
		loaderWrapped,
		LoaderSnippet + "\n",
		"\n" + LoaderSnippet,
		LoaderSnippet,
	} {
		text = strings.ReplaceAll(text, form, "")
	}

	trio := TargetPragma + "\n" + LoaderSnippet + "\n" + PreferenceStatement

	pLoc := pragmaLineRe.FindStringIndex(text)
	fLoc := prefLineRe.FindStringIndex(text)

	if pLoc != nil && fLoc != nil {
		// Both anchors found: replace the whole span between them with
		// the canonical trio. Taking min/max keeps this correct when
		// the original had them reversed or separated by other code.
		start := min(pLoc[0], fLoc[0])
		end := max(pLoc[1], fLoc[1])
		text = text[:start] + trio + text[end:]
	} else {
		block := TargetPragma + "\n" + LoaderSnippet + "\n"
		if fLoc == nil {
			block += PreferenceStatement + "\n"
		}
		at := docCommentEnd(text)
		text = text[:at] + block + text[at:]
	}

	return text, text != orig
}

// docCommentEnd returns the insertion point just past the leading doc
// comment block, or 0 when the file does not start with one.
func docCommentEnd(text string) int {
	i := 0
	for i < len(text) && (text[i] == ' ' || text[i] == '\t' || text[i] == '\r' || text[i] == '\n') {
		i++
	}
	if !strings.HasPrefix(text[i:], "/*") {
		return 0
	}
	end := strings.Index(text[i:], "*/")
	if end < 0 {
		return 0
	}
	j := i + end + 2
	if j < len(text) && text[j] == '\r' {
		j++
	}
	if j < len(text) && text[j] == '\n' {
		j++
	}
	return j
}
