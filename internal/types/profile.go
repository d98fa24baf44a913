// Package types provides type definitions for structured data used throughout the careergpt system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ResumeProfile is the structured signal extracted from one resume.
// It is a value type derived entirely from the resume text: it carries no
// identity of its own and is recomputed whenever the source text changes.
type ResumeProfile struct {
	Skills       []string `json:"skills"`
	Experience   []string `json:"experience"`
	Education    []string `json:"education"`
	Projects     []string `json:"projects"`
	Companies    []string `json:"companies"`
	JobTitles    []string `json:"job_titles"`
	Achievements []string `json:"achievements"`
}

// IsEmpty reports whether the extraction produced no signal at all.
// A nil profile counts as empty.
func (p *ResumeProfile) IsEmpty() bool {
	if p == nil {
		return true
	}
	return len(p.Skills) == 0 &&
		len(p.Experience) == 0 &&
		len(p.Education) == 0 &&
		len(p.Projects) == 0 &&
		len(p.Companies) == 0 &&
		len(p.JobTitles) == 0 &&
		len(p.Achievements) == 0
}

// RoleInference is a single best-guess job-role label with a confidence score in [0, 1].
type RoleInference struct {
	Role       string  `json:"role"`
	Confidence float64 `json:"confidence"`
}
