// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/careergpt/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// writeCategory appends a truncated bullet list for one profile category.
func writeCategory(sb *strings.Builder, label string, items []string, limit int) {
	if len(items) == 0 {
		return
	}

	sb.WriteString(label + ":\n")
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		item := items[i]
		if len(item) > 50 {
			item = item[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("  • %s\n", item))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
	sb.WriteString("\n")
}

// PrintResumeProfile outputs a human-readable summary of the parsed resume.
func (p *Printer) PrintResumeProfile(profile *types.ResumeProfile) {
	if profile == nil {
		return
	}

	if profile.IsEmpty() {
		p.printBox("PARSED RESUME PROFILE", "No structured information found.")
		return
	}

	var sb strings.Builder

	if len(profile.Skills) > 0 {
		skills := strings.Join(profile.Skills, ", ")
		if len(skills) > 100 {
			skills = skills[:97] + "..."
		}
		sb.WriteString(fmt.Sprintf("Skills (%d): %s\n\n", len(profile.Skills), skills))
	}

	writeCategory(&sb, "Job Titles", profile.JobTitles, 3)
	writeCategory(&sb, "Companies", profile.Companies, 3)
	writeCategory(&sb, "Experience", profile.Experience, maxItemsToShow)
	writeCategory(&sb, "Education", profile.Education, 3)
	writeCategory(&sb, "Projects", profile.Projects, 3)
	writeCategory(&sb, "Achievements", profile.Achievements, maxItemsToShow)

	p.printBox("PARSED RESUME PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRoleInference outputs the inferred target role with its confidence.
func (p *Printer) PrintRoleInference(inference types.RoleInference) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role:       %s\n", inference.Role))
	sb.WriteString(fmt.Sprintf("Confidence: %.2f", inference.Confidence))

	p.printBox("INFERRED ROLE", sb.String())
}

// PrintSettings outputs resolved configuration values, used by verbose
// server startup. Callers redact secrets before passing them in.
func (p *Printer) PrintSettings(settings [][2]string) {
	if len(settings) == 0 {
		return
	}

	var sb strings.Builder
	for _, kv := range settings {
		sb.WriteString(fmt.Sprintf("%-22s %s\n", kv[0]+":", kv[1]))
	}

	p.printBox("SERVER SETTINGS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTranscript outputs an interview conversation so far.
func (p *Printer) PrintTranscript(messages []types.Message) {
	if len(messages) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d messages:\n\n", len(messages)))

	for i, msg := range messages {
		text := msg.Text
		if len(text) > 45 {
			text = text[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("%s: %s\n", msg.Speaker, text))
		if i < len(messages)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("INTERVIEW TRANSCRIPT", sb.String())
}
