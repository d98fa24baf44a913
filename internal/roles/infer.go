// Package roles infers a best-guess job role from an extracted resume profile.
package roles

import (
	"regexp"

	"github.com/jonathan/careergpt/internal/types"
)

// Confidence levels per rule tier. Only the first matching rule applies;
// rules are never combined or averaged.
const (
	confidenceTitle     = 0.95
	confidenceML        = 0.85
	confidenceCloud     = 0.80
	confidenceFullStack = 0.80
	confidenceFrontend  = 0.75
	confidenceBackend   = 0.75
	confidenceBI        = 0.70
	confidenceDefault   = 0.60
)

// DefaultRole is returned when neither titles nor skill clusters match.
const DefaultRole = "Software Engineer"

// titleRule maps a job-title pattern to a canonical role.
type titleRule struct {
	Pattern *regexp.Regexp
	Role    string
}

// titleRules are checked in order against every extracted job title.
// An explicit title is the strongest signal a resume carries.
var titleRules = []titleRule{
	{regexp.MustCompile(`(?i)\bproduct\s+manager\b`), "Product Manager"},
	{regexp.MustCompile(`(?i)\bproject\s+manager\b`), "Project Manager"},
	{regexp.MustCompile(`(?i)\bdata\s+scientist\b`), "Data Scientist"},
	{regexp.MustCompile(`(?i)\bdata\s+analyst\b`), "Data Analyst"},
	{regexp.MustCompile(`(?i)\bmachine\s?learning\b|\bml\s+engineer\b`), "Machine Learning Engineer"},
	{regexp.MustCompile(`(?i)\bdevops\b|\bsite\s?reliability\b|\bsre\b`), "DevOps Engineer"},
	{regexp.MustCompile(`(?i)\bfull[\s-]?stack\b`), "Full Stack Developer"},
	{regexp.MustCompile(`(?i)\bfront[\s-]?end\s+(?:engineer|developer)\b`), "Frontend Engineer"},
	{regexp.MustCompile(`(?i)\bback[\s-]?end\s+(?:engineer|developer)\b`), "Backend Engineer"},
	{regexp.MustCompile(`(?i)\b(?:ui/ux|ui|ux)\s+designer\b`), "UX Designer"},
}

// Skill clusters, checked in fixed priority order after title rules.
var (
	mlSkills        = []string{"TensorFlow", "PyTorch", "Pandas", "NumPy", "Scikit-learn"}
	cloudSkills     = []string{"AWS", "Kubernetes", "Docker", "CI/CD", "Terraform"}
	frontendSkills  = []string{"React", "HTML", "CSS", "TypeScript", "JavaScript"}
	backendSkills   = []string{"Java", "SQL", "PostgreSQL", "MongoDB", "Express", "Django", "Flask"}
	biSkills        = []string{"Tableau", "Power BI", "SQL"}
	fullStackSkills = []string{"React", "Node.js"}
)

// Infer maps a resume profile to a canonical role with a confidence score.
// Title rules win over skill clusters; clusters are evaluated in fixed
// priority order; the default is a generic software engineering role.
func Infer(profile *types.ResumeProfile) types.RoleInference {
	if profile == nil {
		return types.RoleInference{Role: DefaultRole, Confidence: confidenceDefault}
	}

	for _, title := range profile.JobTitles {
		for _, rule := range titleRules {
			if rule.Pattern.MatchString(title) {
				return types.RoleInference{Role: rule.Role, Confidence: confidenceTitle}
			}
		}
	}

	skills := make(map[string]struct{}, len(profile.Skills))
	for _, s := range profile.Skills {
		skills[s] = struct{}{}
	}

	switch {
	case hasAny(skills, mlSkills):
		return types.RoleInference{Role: "Data Scientist", Confidence: confidenceML}
	case hasAny(skills, cloudSkills):
		return types.RoleInference{Role: "DevOps Engineer", Confidence: confidenceCloud}
	case hasAll(skills, fullStackSkills):
		return types.RoleInference{Role: "Full Stack Developer", Confidence: confidenceFullStack}
	case hasAny(skills, frontendSkills):
		return types.RoleInference{Role: "Frontend Engineer", Confidence: confidenceFrontend}
	case hasAny(skills, backendSkills):
		return types.RoleInference{Role: "Backend Engineer", Confidence: confidenceBackend}
	case hasAny(skills, biSkills):
		return types.RoleInference{Role: "Data Analyst", Confidence: confidenceBI}
	}

	return types.RoleInference{Role: DefaultRole, Confidence: confidenceDefault}
}

func hasAny(skills map[string]struct{}, candidates []string) bool {
	for _, c := range candidates {
		if _, ok := skills[c]; ok {
			return true
		}
	}
	return false
}

func hasAll(skills map[string]struct{}, candidates []string) bool {
	for _, c := range candidates {
		if _, ok := skills[c]; !ok {
			return false
		}
	}
	return len(candidates) > 0
}
