package generate

import (
	"fmt"
	"regexp"
	"strings"
)

// A script qualifies for automated generation only when it is small
// and structurally flat; everything else goes to the manual queue.
const (
	maxSimpleLines  = 30
	maxSimpleBlocks = 5
)

// complexKeywords disqualify a legacy script from automation: UI
// construction, loops, nested functions and switch dispatch all need
// a human port.
var complexKeywords = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Window`),
	regexp.MustCompile(`(?i)dialog`),
	regexp.MustCompile(`(?i)\.show\(\)`),
	regexp.MustCompile(`(?i)panel`),
	regexp.MustCompile(`(?i)for\s*\(`),
	regexp.MustCompile(`(?i)while\s*\(`),
	regexp.MustCompile(`(?i)do\s*\{`),
	regexp.MustCompile(`(?i)function.*function`),
	regexp.MustCompile(`(?i)switch`),
	regexp.MustCompile(`(?i)case`),
}

// Classify decides whether a legacy script is simple enough for
// automated generation. The reason explains a negative verdict.
func Classify(content string) (bool, string) {
	count := 0
	for _, line := range strings.Split(content, "\n") {
		t := strings.TrimSpace(line)
		if t == "" || strings.HasPrefix(t, "//") {
			continue
		}
		count++
	}
	if count > maxSimpleLines {
		return false, fmt.Sprintf("too many lines (%d)", count)
	}
	for _, re := range complexKeywords {
		if re.MatchString(content) {
			return false, "contains complex keyword: " + re.String()
		}
	}
	if strings.Count(content, "{") > maxSimpleBlocks {
		return false, "too many code blocks"
	}
	return true, "simple"
}
