package extraction

import (
	"regexp"
	"strings"
)

// dashVariants collapses Unicode dash variants to a plain hyphen so that
// patterns over year ranges and compound skills only need to handle "-".
// Normalize applies it for skill matching; foldDashes applies it to the
// text handed to the line-sensitive phrase extractors.
var dashVariants = strings.NewReplacer(
	"‐", "-", // hyphen
	"‑", "-", // non-breaking hyphen
	"‒", "-", // figure dash
	"–", "-", // en dash
	"—", "-", // em dash
	"−", "-", // minus sign
)

// bulletGlyphs collapses common resume bullet glyphs to spaces.
var bulletGlyphs = strings.NewReplacer(
	"•", " ", // bullet
	"●", " ", // black circle
	"▪", " ", // black small square
	"·", " ", // middle dot
	"‣", " ", // triangular bullet
	"⁃", " ", // hyphen bullet
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Normalize prepares resume text for vocabulary matching: dash variants
// become "-", bullet glyphs become spaces, whitespace runs collapse to a
// single space, and the result is trimmed. Capitalization is preserved;
// case folding is the matcher's job. Extraction steps that depend on
// original capitalization and line structure must run on the raw text,
// not on this normalized copy.
func Normalize(text string) string {
	text = dashVariants.Replace(text)
	text = bulletGlyphs.Replace(text)
	text = whitespaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// foldDashes maps dash variants to "-" without touching whitespace, so
// capitalization and line structure survive for the phrase extractors.
func foldDashes(text string) string {
	return dashVariants.Replace(text)
}
