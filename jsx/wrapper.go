package jsx

import (
	"regexp"
	"strings"
)

// GuardKind classifies the precondition style of a legacy entry-point
// wrapper.
type GuardKind int

const (
	GuardNone GuardKind = iota
	GuardValidationFunction
	GuardDocumentOnly
	GuardSelectionOnly
	GuardDocumentAndSelection
)

func (k GuardKind) String() string {
	switch k {
	case GuardValidationFunction:
		return "validation-function"
	case GuardDocumentOnly:
		return "document"
	case GuardSelectionOnly:
		return "selection"
	case GuardDocumentAndSelection:
		return "document+selection"
	default:
		return "none"
	}
}

// Messages carries the user-facing guard statements lifted out of a
// wrapper, verbatim except for stripped early returns. Empty fields
// fall back to the canonical defaults at build time.
type Messages struct {
	Document   string
	Selection  string
	Validation string
}

// Wrapper is a located self-invoking entry-point span [Start,End) with
// its guard classification and preserved messages.
type Wrapper struct {
	Start, End int
	Body       string
	Kind       GuardKind
	Msgs       Messages
}

var (
	mainCallRe       = regexp.MustCompile(`(?m)^[ \t]*main\s*\(\s*\)\s*;?[ \t]*\r?$`)
	validationCallRe = regexp.MustCompile(`validateEnvironment\s*\(`)
	wrapperTailRe    = regexp.MustCompile(`^\s*(?:\)\s*\(\s*\)|\(\s*\)\s*\))\s*;?`)

	docGuardRe = regexp.MustCompile(
		`if\s*\(\s*(?:!app\.documents\.length|!documents\.length|(?:app\.)?documents\.length\s*===?\s*0)\s*\)\s*\{`)
	selGuardRe = regexp.MustCompile(
		`if\s*\(\s*(?:!(?:app\.activeDocument\.)?selection\.length|(?:app\.activeDocument\.)?selection\.length\s*===?\s*0)\s*\)\s*\{`)

	alertCallRe = regexp.MustCompile(`alert\s*\(`)
	returnRe    = regexp.MustCompile(`(?m)[ \t]*\breturn\s*;[ \t]*\r?\n?`)

	scriptNameRe = regexp.MustCompile(`var\s+SCRIPT\s*=\s*\{[^}]*?name\s*:\s*['"]([^'"]*)['"]`)
)

// DefaultErrorTitle is used when a script declares no SCRIPT.name.
const DefaultErrorTitle = "Script"

// ExtractWrapper locates the script's self-invoking entry-point
// wrapper, classifies its guard style and lifts out the user-facing
// messages. ok is false when the text has no wrapper at all.
//
// Among all candidates the first whose body contains a standalone
// main() call wins; if none qualifies the first candidate is used as a
// fallback, so an ambiguous file never errors.
func ExtractWrapper(text string) (Wrapper, bool) {
	spans := findWrapperSpans(text)
	if len(spans) == 0 {
		return Wrapper{}, false
	}
	chosen := spans[0]
	for _, s := range spans {
		if mainCallRe.MatchString(text[s[0]:s[1]]) {
			chosen = s
			break
		}
	}

	w := Wrapper{Start: chosen[0], End: chosen[1]}
	w.Body = text[w.Start:w.End]
	w.Kind, w.Msgs = classifyGuard(w.Body)
	return w, true
}

// findWrapperSpans returns every "(function ... })();" span, detected
// with an explicit brace-depth scan so nested blocks and string
// literals containing braces cannot produce a mismatched span.
func findWrapperSpans(text string) [][2]int {
	var spans [][2]int
	t := NewStringTracker(text)
	for ch, ok := t.Next(); ok; ch, ok = t.Next() {
		if ch != '(' || !t.InCode() {
			continue
		}
		start := t.Pos()
		if !funcKeywordFollows(text, start+1) {
			continue
		}
		if end, matched := matchWrapperEnd(text, start); matched {
			spans = append(spans, [2]int{start, end})
			// Resume scanning after the wrapper.
			for t.Pos() < end-1 {
				if _, ok := t.Next(); !ok {
					break
				}
			}
		}
	}
	return spans
}

// funcKeywordFollows reports whether the "function" keyword starts at
// or after pos, separated only by whitespace.
func funcKeywordFollows(text string, pos int) bool {
	for pos < len(text) && (text[pos] == ' ' || text[pos] == '\t' || text[pos] == '\n' || text[pos] == '\r') {
		pos++
	}
	if !strings.HasPrefix(text[pos:], "function") {
		return false
	}
	after := pos + len("function")
	if after >= len(text) {
		return false
	}
	// "function" must be the keyword, not a prefix of an identifier.
	c := text[after]
	return !isWordByte(c) || c == '('
}

// matchWrapperEnd scans from the opening '(' of "(function" to the
// matching close-and-invoke syntax ("})();" or "}());"), returning the
// index one past the span, trailing newline included.
func matchWrapperEnd(text string, start int) (int, bool) {
	t := NewStringTracker(text[start:])
	depth := 0
	seenBrace := false
	bodyEnd := -1
	for ch, ok := t.Next(); ok; ch, ok = t.Next() {
		if !t.InCode() {
			continue
		}
		switch ch {
		case '{':
			depth++
			seenBrace = true
		case '}':
			depth--
			if seenBrace && depth == 0 {
				bodyEnd = start + t.Pos()
			}
		}
		if bodyEnd >= 0 {
			break
		}
	}
	if bodyEnd < 0 {
		return 0, false
	}
	tail := wrapperTailRe.FindString(text[bodyEnd+1:])
	if tail == "" {
		return 0, false
	}
	end := bodyEnd + 1 + len(tail)
	if end < len(text) && text[end] == '\r' {
		end++
	}
	if end < len(text) && text[end] == '\n' {
		end++
	}
	return end, true
}

// classifyGuard inspects a wrapper body and returns its guard kind
// plus the preserved messages. Precedence: a validateEnvironment call
// wins outright; otherwise the document and selection probes are
// independent, and both present means both checked.
func classifyGuard(body string) (GuardKind, Messages) {
	var msgs Messages
	if validationCallRe.MatchString(body) {
		if stmt, ok := alertStatement(body, 0); ok {
			msgs.Validation = stripReturns(stmt)
		}
		return GuardValidationFunction, msgs
	}

	kind := GuardNone
	if loc := docGuardRe.FindStringIndex(body); loc != nil {
		kind = GuardDocumentOnly
		msgs.Document = guardBody(body, loc[1]-1)
	}
	if loc := selGuardRe.FindStringIndex(body); loc != nil {
		if kind == GuardDocumentOnly {
			kind = GuardDocumentAndSelection
		} else {
			kind = GuardSelectionOnly
		}
		msgs.Selection = guardBody(body, loc[1]-1)
	}
	return kind, msgs
}

// guardBody extracts the statements of the conditional block whose
// opening '{' sits at open, with early returns stripped: the text is
// relocated from a nested conditional into a top-level branch where a
// bare return is not legal.
func guardBody(body string, open int) string {
	t := NewStringTracker(body[open:])
	depth := 0
	for ch, ok := t.Next(); ok; ch, ok = t.Next() {
		if !t.InCode() {
			continue
		}
		switch ch {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				inner := body[open+1 : open+t.Pos()]
				return strings.TrimSpace(stripReturns(inner))
			}
		}
	}
	return ""
}

// alertStatement returns the first alert(...) statement at or after
// from, verbatim including the trailing semicolon.
func alertStatement(text string, from int) (string, bool) {
	loc := alertCallRe.FindStringIndex(text[from:])
	if loc == nil {
		return "", false
	}
	start := from + loc[0]
	t := NewStringTracker(text[start:])
	depth := 0
	for ch, ok := t.Next(); ok; ch, ok = t.Next() {
		if !t.InCode() {
			continue
		}
		switch ch {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				end := start + t.Pos() + 1
				if end < len(text) && text[end] == ';' {
					end++
				}
				return text[start:end], true
			}
		}
	}
	return "", false
}

func stripReturns(s string) string {
	return returnRe.ReplaceAllString(s, "")
}

// ScriptTitle derives the error-report title from the SCRIPT
// configuration object's name field, falling back to a fixed default.
// Header canonicalization must have run first: the lookup assumes the
// declaration sits in the post-header body.
func ScriptTitle(text string) string {
	if m := scriptNameRe.FindStringSubmatch(text); m != nil && m[1] != "" {
		return m[1]
	}
	return DefaultErrorTitle
}

func isWordByte(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
