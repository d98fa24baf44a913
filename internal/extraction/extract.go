// Package extraction implements the regex-driven resume profile extractor.
// It turns unstructured resume text into a types.ResumeProfile using a fixed
// skill vocabulary and ordered pattern lists. Matching is deliberately
// lightweight pattern matching, not an NLP pipeline: false positives and
// negatives on company and project phrases are accepted behavior.
package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/careergpt/internal/types"
)

// minContentLength is the trimmed-input threshold below which extraction
// returns an empty profile. Short input is a valid "no signal" result,
// never an error.
const minContentLength = 20

// Per-category caps and length bands.
const (
	maxSkills       = 15
	maxExperience   = 6
	maxJobTitles    = 5
	maxEducation    = 4
	maxProjects     = 6
	maxCompanies    = 5
	maxAchievements = 6

	projectMinLen     = 5
	projectMaxLen     = 80
	companyMinLen     = 2
	companyMaxLen     = 60
	achievementMinLen = 10
	achievementMaxLen = 150
)

// Extract derives a ResumeProfile from raw resume text. All extraction
// steps are independent and best-effort: a category that matches nothing
// yields an empty list, and no input ever produces an error. Skill matching
// runs on the normalized text; every other category runs on a dash-folded
// copy that keeps capitalization and line structure intact, because
// company and title detection depend on both.
func Extract(text string) *types.ResumeProfile {
	profile := &types.ResumeProfile{}
	if len(strings.TrimSpace(text)) < minContentLength {
		return profile
	}

	normalized := Normalize(text)
	folded := foldDashes(text)

	profile.Skills = matchSkills(normalized)
	profile.Experience = matchWhole(experiencePatterns, folded, maxExperience, 0, 0)
	profile.JobTitles = matchWhole(jobTitlePatterns, folded, maxJobTitles, 0, 0)
	profile.Education = matchWhole(educationPatterns, folded, maxEducation, 0, 0)
	profile.Projects = matchCaptures(projectPatterns, folded, maxProjects, projectMinLen, projectMaxLen, nil)
	profile.Companies = matchCaptures(companyPatterns, folded, maxCompanies, companyMinLen, companyMaxLen, companyStoplist)
	profile.Achievements = matchWhole(achievementPatterns, folded, maxAchievements, achievementMinLen, achievementMaxLen)

	return profile
}

// matchSkills returns canonical skill names whose pattern matches the
// normalized text, in vocabulary order, capped at maxSkills.
func matchSkills(normalized string) []string {
	var skills []string
	for _, sp := range skillVocabulary {
		if sp.Pattern.MatchString(normalized) {
			skills = append(skills, sp.Name)
			if len(skills) >= maxSkills {
				break
			}
		}
	}
	return skills
}

// matchWhole collects whole-pattern matches across an ordered regex list,
// preserving first-seen order, deduplicated and capped. A zero minLen/maxLen
// disables the length band.
func matchWhole(patterns []*regexp.Regexp, text string, max, minLen, maxLen int) []string {
	c := newCollector(max, minLen, maxLen)
	for _, p := range patterns {
		for _, m := range p.FindAllString(text, -1) {
			if c.full() {
				return c.items
			}
			c.add(m)
		}
	}
	return c.items
}

// matchCaptures collects first-group captures across an ordered regex list,
// applying the length band and an optional lower-cased stoplist.
func matchCaptures(patterns []*regexp.Regexp, text string, max, minLen, maxLen int, stoplist map[string]struct{}) []string {
	c := newCollector(max, minLen, maxLen)
	for _, p := range patterns {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			if c.full() {
				return c.items
			}
			if len(m) < 2 {
				continue
			}
			capture := strings.TrimSpace(m[1])
			if stoplist != nil {
				if _, blocked := stoplist[strings.ToLower(capture)]; blocked {
					continue
				}
			}
			c.add(capture)
		}
	}
	return c.items
}

// collector accumulates trimmed matches with exact-match dedup, a cap,
// and an optional length band.
type collector struct {
	max    int
	minLen int
	maxLen int
	seen   map[string]struct{}
	items  []string
}

func newCollector(max, minLen, maxLen int) *collector {
	return &collector{max: max, minLen: minLen, maxLen: maxLen, seen: make(map[string]struct{})}
}

func (c *collector) full() bool {
	return len(c.items) >= c.max
}

func (c *collector) add(s string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return
	}
	if c.minLen > 0 && len(s) < c.minLen {
		return
	}
	if c.maxLen > 0 && len(s) > c.maxLen {
		return
	}
	if _, dup := c.seen[s]; dup {
		return
	}
	c.seen[s] = struct{}{}
	c.items = append(c.items, s)
}
