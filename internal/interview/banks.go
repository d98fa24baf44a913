package interview

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/careergpt/internal/schemas"
)

//go:embed question_banks.schema.json
var bankSchema string

// Banks holds the canned question tables used by the Selector: per-skill
// deep-dive questions and per-interview-type default questions. The tables
// are data, not control flow; extending a bank never touches the selector.
type Banks struct {
	SkillQuestions map[string][]string `json:"skill_questions"`
	TypeQuestions  map[string][]string `json:"type_questions"`
}

// defaultSkillQuestions maps canonical skill names (as produced by the
// extractor) to canned questions. Keys must match the extractor vocabulary.
var defaultSkillQuestions = map[string][]string{
	"JavaScript": {
		"Can you explain the difference between let, const, and var in JavaScript, and when you would use each?",
		"How does the JavaScript event loop handle asynchronous work? Walk me through what happens when a promise resolves.",
	},
	"TypeScript": {
		"What does TypeScript give you over plain JavaScript on a large codebase, and where have its types actually caught a bug for you?",
	},
	"Python": {
		"Tell me about a Python project you're proud of. What libraries did you lean on and why?",
		"How do you manage dependencies and environments across Python projects?",
	},
	"Java": {
		"How does garbage collection work in the JVM, and when has it actually mattered for something you shipped?",
	},
	"React": {
		"How do you decide between state, props, and context in a React application? Give me a concrete example from your work.",
		"Tell me about a performance problem you debugged in a React app. How did you find it and what fixed it?",
	},
	"Node.js": {
		"Node.js is single-threaded. How have you handled CPU-heavy work in a Node service without blocking the event loop?",
	},
	"SQL": {
		"Tell me about the most complex query or schema problem you've solved. How did you approach optimizing it?",
	},
	"PostgreSQL": {
		"When have you had to tune PostgreSQL performance? What did you look at first?",
	},
	"AWS": {
		"Which AWS services have you used in production, and how did you decide between them for your workload?",
	},
	"Docker": {
		"Walk me through how you've used Docker in your development and deployment workflow. What problems did it solve for you?",
	},
	"Kubernetes": {
		"Tell me about running a service on Kubernetes. How did you handle rollouts, scaling, and debugging a misbehaving pod?",
	},
	"Machine Learning": {
		"Walk me through a machine learning project end to end: the data, the model choice, and how you validated it.",
	},
}

// defaultTypeQuestions are the per-interview-type default lists, used when
// no more specific branch applies.
var defaultTypeQuestions = map[string][]string{
	"screening": {
		"What are you looking for in your next role, and what would make it a clear step up from your last one?",
		"Tell me a bit about your background and what kind of work energizes you most.",
	},
	"technical": {
		"Tell me about the most technically challenging thing you've built. What made it hard?",
		"How do you approach debugging a problem you've never seen before?",
	},
	"behavioral": {
		"Tell me about a time you disagreed with a teammate on a technical decision. How was it resolved?",
		"Describe a situation where a project was slipping. What did you do?",
	},
	"system-design": {
		"Design a URL shortener for me. Start with the requirements you'd want to pin down first.",
		"How would you design a notification system that has to reach millions of users reliably?",
	},
	"cultural-fit": {
		"What does a healthy engineering culture look like to you, and when have you experienced the opposite?",
		"How do you like to receive feedback, and how do you give it?",
	},
}

// DefaultBanks returns a deep copy of the built-in question tables, so a
// caller can merge custom entries without mutating package state.
func DefaultBanks() *Banks {
	b := &Banks{
		SkillQuestions: make(map[string][]string, len(defaultSkillQuestions)),
		TypeQuestions:  make(map[string][]string, len(defaultTypeQuestions)),
	}
	for k, v := range defaultSkillQuestions {
		b.SkillQuestions[k] = append([]string(nil), v...)
	}
	for k, v := range defaultTypeQuestions {
		b.TypeQuestions[k] = append([]string(nil), v...)
	}
	return b
}

// LoadBanks reads an operator-supplied bank file, validates it against the
// embedded JSON Schema, and merges it over the defaults. Custom entries
// replace the default list for the same key; unknown keys are added as-is.
func LoadBanks(path string) (*Banks, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read question bank file %s: %w", path, err)
	}

	if err := schemas.ValidateJSONString(bankSchema, string(data)); err != nil {
		return nil, fmt.Errorf("invalid question bank file %s: %w", path, err)
	}

	var custom Banks
	if err := json.Unmarshal(data, &custom); err != nil {
		return nil, fmt.Errorf("failed to parse question bank file %s: %w", path, err)
	}

	merged := DefaultBanks()
	for k, v := range custom.SkillQuestions {
		if len(v) > 0 {
			merged.SkillQuestions[k] = append([]string(nil), v...)
		}
	}
	for k, v := range custom.TypeQuestions {
		if len(v) > 0 {
			merged.TypeQuestions[k] = append([]string(nil), v...)
		}
	}
	return merged, nil
}
