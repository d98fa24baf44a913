package extraction

import "regexp"

// skillPattern pairs a canonical skill name with a pattern matching its
// common variant spellings. Output order over the vocabulary is the table
// order, so extraction stays deterministic regardless of where a skill
// appears in the text.
type skillPattern struct {
	Name    string
	Pattern *regexp.Regexp
}

// skillVocabulary is the fixed skill table. Patterns are case-insensitive
// and tolerate the usual spelling variants (dots, spacing, abbreviations).
// The literal list is a seed, not an exhaustive contract; extend it here
// without touching the extractor control flow.
var skillVocabulary = []skillPattern{
	{"JavaScript", regexp.MustCompile(`(?i)\b(?:javascript|ecmascript)\b|\bjs\b`)},
	{"TypeScript", regexp.MustCompile(`(?i)\btypescript\b`)},
	{"Python", regexp.MustCompile(`(?i)\bpython\b`)},
	{"Java", regexp.MustCompile(`(?i)\bjava\b`)},
	{"C++", regexp.MustCompile(`(?i)\bc\+\+`)},
	{"C#", regexp.MustCompile(`(?i)\bc#|\bc\s?sharp\b`)},
	{"Go", regexp.MustCompile(`(?i)\bgolang\b`)},
	{"Ruby", regexp.MustCompile(`(?i)\bruby\b`)},
	{"PHP", regexp.MustCompile(`(?i)\bphp\b`)},
	{"React", regexp.MustCompile(`(?i)\breact(?:[.\s]?js)?\b`)},
	{"Angular", regexp.MustCompile(`(?i)\bangular(?:[.\s]?js)?\b`)},
	{"Vue", regexp.MustCompile(`(?i)\bvue(?:[.\s]?js)?\b`)},
	{"Node.js", regexp.MustCompile(`(?i)\bnode[.\s]?js\b`)},
	{"Express", regexp.MustCompile(`(?i)\bexpress[.\s]?js\b|\bexpress\b`)},
	{"Django", regexp.MustCompile(`(?i)\bdjango\b`)},
	{"Flask", regexp.MustCompile(`(?i)\bflask\b`)},
	{"Spring", regexp.MustCompile(`(?i)\bspring(?:\s?boot)?\b`)},
	{".NET", regexp.MustCompile(`(?i)\.net\b|\bdotnet\b`)},
	{"HTML", regexp.MustCompile(`(?i)\bhtml5?\b`)},
	{"CSS", regexp.MustCompile(`(?i)\bcss3?\b`)},
	{"SQL", regexp.MustCompile(`(?i)\bsql\b`)},
	{"PostgreSQL", regexp.MustCompile(`(?i)\bpostgres(?:ql)?\b`)},
	{"MySQL", regexp.MustCompile(`(?i)\bmysql\b`)},
	{"MongoDB", regexp.MustCompile(`(?i)\bmongo(?:db)?\b`)},
	{"Redis", regexp.MustCompile(`(?i)\bredis\b`)},
	{"GraphQL", regexp.MustCompile(`(?i)\bgraphql\b`)},
	{"REST API", regexp.MustCompile(`(?i)\brest(?:ful)?\s?api`)},
	{"Microservices", regexp.MustCompile(`(?i)\bmicro[\s-]?services?\b`)},
	{"AWS", regexp.MustCompile(`(?i)\baws\b|\bamazon web services\b`)},
	{"Azure", regexp.MustCompile(`(?i)\bazure\b`)},
	{"GCP", regexp.MustCompile(`(?i)\bgcp\b|\bgoogle cloud\b`)},
	{"Docker", regexp.MustCompile(`(?i)\bdocker\b`)},
	{"Kubernetes", regexp.MustCompile(`(?i)\bkubernetes\b|\bk8s\b`)},
	{"Terraform", regexp.MustCompile(`(?i)\bterraform\b`)},
	{"Jenkins", regexp.MustCompile(`(?i)\bjenkins\b`)},
	{"CI/CD", regexp.MustCompile(`(?i)\bci\s?/?\s?cd\b`)},
	{"DevOps", regexp.MustCompile(`(?i)\bdev\s?ops\b`)},
	{"Git", regexp.MustCompile(`(?i)\bgit\b`)},
	{"Linux", regexp.MustCompile(`(?i)\blinux\b`)},
	{"Machine Learning", regexp.MustCompile(`(?i)\bmachine\s?learning\b`)},
	{"TensorFlow", regexp.MustCompile(`(?i)\btensor\s?flow\b`)},
	{"PyTorch", regexp.MustCompile(`(?i)\bpy\s?torch\b`)},
	{"Pandas", regexp.MustCompile(`(?i)\bpandas\b`)},
	{"NumPy", regexp.MustCompile(`(?i)\bnumpy\b`)},
	{"Scikit-learn", regexp.MustCompile(`(?i)\bscikit[\s-]?learn\b|\bsklearn\b`)},
	{"Data Analysis", regexp.MustCompile(`(?i)\bdata\s?analysis\b`)},
	{"Tableau", regexp.MustCompile(`(?i)\btableau\b`)},
	{"Power BI", regexp.MustCompile(`(?i)\bpower\s?bi\b`)},
	{"Salesforce", regexp.MustCompile(`(?i)\bsalesforce\b`)},
	{"Figma", regexp.MustCompile(`(?i)\bfigma\b`)},
	{"Jira", regexp.MustCompile(`(?i)\bjira\b`)},
	{"Agile", regexp.MustCompile(`(?i)\bagile\b`)},
	{"Scrum", regexp.MustCompile(`(?i)\bscrum\b`)},
	{"Project Management", regexp.MustCompile(`(?i)\bproject\s?management\b`)},
	{"Leadership", regexp.MustCompile(`(?i)\bleadership\b`)},
}

// experiencePatterns match years-of-experience phrases and year ranges.
// They run against the original text so captured substrings read naturally.
var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\d+\+?\s*years?\s+(?:of\s+)?experience`),
	regexp.MustCompile(`(?i)\d+\+?\s*years?\s+(?:working\s+)?(?:with|in|as)\b`),
	regexp.MustCompile(`(?:19|20)\d{2}\s*-\s*(?:(?:19|20)\d{2}|[Pp]resent|[Cc]urrent)`),
}

// jobTitlePatterns match seniority and function word combinations.
var jobTitlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:senior|lead|principal|staff|junior)\s+(?:software|frontend|front[\s-]end|backend|back[\s-]end|full[\s-]stack|data|machine\s?learning|devops|cloud|qa|platform)?\s*(?:engineer|developer|scientist|analyst|architect|designer)\b`),
	regexp.MustCompile(`(?i)\b(?:software|frontend|front[\s-]end|backend|back[\s-]end|full[\s-]stack|data|machine\s?learning|devops|cloud|site\s?reliability)\s+(?:engineer|developer|scientist|analyst)\b`),
	regexp.MustCompile(`(?i)\b(?:senior\s+|lead\s+)?(?:product|project|program|engineering)\s+manager\b`),
	regexp.MustCompile(`(?i)\b(?:ui/ux|ui|ux|product|graphic)\s+designer\b`),
	regexp.MustCompile(`(?i)\b(?:director|head)\s+of\s+[a-z]+(?:\s+[a-z]+)?\b`),
}

// educationPatterns match degree keywords, institutions, and known fields.
var educationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:bachelor|master|mba|ph\.?d|doctorate|b\.?sc?\.?|m\.?sc?\.?)(?:'s)?(?:\s+(?:of|in)\s+[a-z][a-z &]{2,40})?`),
	regexp.MustCompile(`(?i)\b(?:university|college|institute)\s+of\s+[a-z][a-z ]{2,40}`),
	regexp.MustCompile(`(?i)\b[a-z]+\s+(?:university|college|institute of technology)\b`),
	regexp.MustCompile(`(?i)\b(?:computer science|software engineering|electrical engineering|information technology|data science|mathematics|physics|business administration)\b`),
}

// projectPatterns capture a noun phrase after a build/lead verb, ending
// in a project-type noun. The capture is band-filtered by the extractor.
var projectPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:built|developed|created|designed|implemented|architected)\s+(?:a|an|the)?\s*([a-z0-9][a-z0-9 ,&\-]{1,68}?(?:application|system|platform|website|app|service|api|tool|pipeline|dashboard))`),
	regexp.MustCompile(`(?i)\b(?:led|managed|coordinated)\s+(?:a|an|the)?\s*([a-z0-9][a-z0-9 ,&\-]{1,68}?(?:project|initiative|migration|redesign|development))`),
}

// companyPatterns capture proper-noun phrases after employment prepositions,
// plus phrases immediately preceding a year range. They rely on original
// capitalization and must never run on lower-cased text.
var companyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:\b(?i:at)|@)[ \t]+([A-Z][A-Za-z0-9&.]*(?:[ \t]+[A-Z][A-Za-z0-9&.]*)*)`),
	regexp.MustCompile(`\b(?i:worked|employed|joined)[ \t]+(?i:at|with|for)[ \t]+([A-Z][A-Za-z0-9&.]*(?:[ \t]+[A-Z][A-Za-z0-9&.]*)*)`),
	regexp.MustCompile(`([A-Z][A-Za-z0-9&.]*(?:[ \t]+[A-Z][A-Za-z0-9&.]*)*)[ \t]*[,|]?[ \t]+(?:19|20)\d{2}\s*-\s*(?:(?:19|20)\d{2}|[Pp]resent)`),
}

// companyStoplist rejects resume section headers that the company patterns
// would otherwise pick up when a header precedes a dateline or follows "at".
var companyStoplist = map[string]struct{}{
	"experience":   {},
	"skills":       {},
	"education":    {},
	"projects":     {},
	"work":         {},
	"employment":   {},
	"professional": {},
	"career":       {},
	"summary":      {},
	"objective":    {},
}

// achievementPatterns match improvement clauses, quantified claims, and
// recognition keywords. Captures are band-filtered by the extractor.
var achievementPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:increased|improved|reduced|optimized|enhanced|boosted|accelerated|grew|cut|saved)\s+[^.\n]{3,140}`),
	regexp.MustCompile(`(?i)[^.\n]{0,60}?\b(?:\d+(?:\.\d+)?\s?%|\$\s?\d[\d,.]*\s?(?:k|m|b|million|billion)?|\d+x)\b[^.\n]{0,80}`),
	regexp.MustCompile(`(?i)[^.\n]{0,60}?\b(?:award(?:ed)?|recognition|recognized|certified|certification|promoted|patent(?:ed)?)\b[^.\n]{0,80}`),
}
