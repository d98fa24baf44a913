package ingestion

import (
	"regexp"
	"strings"
)

var (
	trailingSpace = regexp.MustCompile(`[ \t]+\n`)
	blankRuns     = regexp.MustCompile(`\n{3,}`)
	spaceRuns     = regexp.MustCompile(`[ \t]{2,}`)
)

// CleanText normalizes decoded resume text before extraction: line endings
// become LF, trailing whitespace and space runs collapse, and runs of blank
// lines shrink to one. Line structure is preserved because the extractor's
// company and title patterns are line-sensitive.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = trailingSpace.ReplaceAllString(content, "\n")
	content = spaceRuns.ReplaceAllString(content, " ")
	content = blankRuns.ReplaceAllString(content, "\n\n")

	return strings.TrimSpace(content)
}
