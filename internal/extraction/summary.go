package extraction

import (
	"fmt"
	"strings"

	"github.com/jonathan/careergpt/internal/types"
)

// Summary returns a one-line human-readable description of what the
// extractor found, suitable for showing to the user after an upload.
func Summary(p *types.ResumeProfile) string {
	if p == nil {
		return "Parsed your resume but found limited structured information."
	}

	var parts []string
	if n := len(p.Skills); n > 0 {
		parts = append(parts, fmt.Sprintf("%d skills", n))
	}
	if n := len(p.Companies); n > 0 {
		parts = append(parts, fmt.Sprintf("%d companies", n))
	}
	if n := len(p.Projects); n > 0 {
		parts = append(parts, fmt.Sprintf("%d projects", n))
	}

	if len(parts) == 0 {
		return "Parsed your resume but found limited structured information."
	}
	return fmt.Sprintf("Parsed %s from your resume.", strings.Join(parts, ", "))
}
