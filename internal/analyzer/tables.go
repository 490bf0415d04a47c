package analyzer

import (
	"regexp"

	"github.com/fairyhunter13/resume-analyzer/internal/domain"
)

// degreePattern pairs a compiled pattern with the degree level it names.
// Patterns run against lowercased text.
type degreePattern struct {
	re    *regexp.Regexp
	level string
}

// degreePatterns is iterated in declared order.
var degreePatterns = []degreePattern{
	// PhD / Doctorate
	{regexp.MustCompile(`\bphd\b`), domain.DegreePhD},
	{regexp.MustCompile(`\bph\.?\s*d\.?\b`), domain.DegreePhD}, // "Ph. D", "Ph.D", "Ph D"
	{regexp.MustCompile(`doctor of philosophy`), domain.DegreePhD},
	{regexp.MustCompile(`doctoral (degree|studies|candidate)`), domain.DegreePhD},

	// Master's level
	{regexp.MustCompile(`\bm\.?\s*tech\b`), domain.DegreeMaster},
	{regexp.MustCompile(`\bmaster of technology\b`), domain.DegreeMaster},
	{regexp.MustCompile(`\bm\.?\s*e\b`), domain.DegreeMaster},
	{regexp.MustCompile(`\bmaster of engineering\b`), domain.DegreeMaster},
	{regexp.MustCompile(`\bm\.?\s*sc\b`), domain.DegreeMaster},
	{regexp.MustCompile(`\bmaster of science\b`), domain.DegreeMaster},
	{regexp.MustCompile(`\bm\.?\s*a\b`), domain.DegreeMaster}, // "M.A", "MA"
	{regexp.MustCompile(`\bmaster of arts\b`), domain.DegreeMaster},
	{regexp.MustCompile(`\bmca\b`), domain.DegreeMaster},
	{regexp.MustCompile(`\bmaster of computer applications\b`), domain.DegreeMaster},
	{regexp.MustCompile(`\bmba\b`), domain.DegreeMaster},
	{regexp.MustCompile(`\bmaster of business administration\b`), domain.DegreeMaster},

	// Bachelor's level
	{regexp.MustCompile(`\bb\.?\s*tech\b`), domain.DegreeBachelor},
	{regexp.MustCompile(`\bbtech\b`), domain.DegreeBachelor},
	{regexp.MustCompile(`\bb\.?\s*e\b`), domain.DegreeBachelor},
	{regexp.MustCompile(`\bbachelor of engineering\b`), domain.DegreeBachelor},
	{regexp.MustCompile(`\bb\.?\s*sc\b`), domain.DegreeBachelor},
	{regexp.MustCompile(`\bbachelor of science\b`), domain.DegreeBachelor},
	{regexp.MustCompile(`\bb\.?\s*a\b`), domain.DegreeBachelor}, // "B.A", "BA"
	{regexp.MustCompile(`\bbachelor of arts\b`), domain.DegreeBachelor},
	{regexp.MustCompile(`\bb\.?\s*com\b`), domain.DegreeBachelor},
	{regexp.MustCompile(`\bbachelor of commerce\b`), domain.DegreeBachelor},

	// Diploma / School
	{regexp.MustCompile(`\bdiploma\b`), domain.DegreeDiploma},
	{regexp.MustCompile(`higher secondary`), domain.DegreeHighSchool},
	{regexp.MustCompile(`high school`), domain.DegreeHighSchool},
	{regexp.MustCompile(`\bssc\b`), domain.DegreeHighSchool},
	{regexp.MustCompile(`\bhsc\b`), domain.DegreeHighSchool},
}

// departmentKeyword maps a phrase to a department. Lookup is first-match-wins
// over the declared order: specific phrases must precede generic ones (e.g.
// "computer science and engineering" before "english"), so the order below is
// a contract, not cosmetics.
type departmentKeyword struct {
	phrase     string
	department string
}

var departmentKeywords = []departmentKeyword{
	// English / Humanities
	{"english language and literature", "English"},
	{"department of english language and literature", "English"},
	{"english literature", "English"},
	{"department of english", "English"},
	{"m.a (english)", "English"},
	{"ma (english)", "English"},
	{"b.a (english)", "English"},
	{"b.a (english literature)", "English"},
	{"ba (english)", "English"},
	{"english", "English"}, // generic

	// Computer Science / IT
	{"computer science and engineering", "Computer Science"},
	{"computer science & engineering", "Computer Science"},
	{"computer science", "Computer Science"},
	{"information technology", "Computer Science"},
	{"information systems", "Computer Science"},
	{"cse", "Computer Science"},
	{"it engineering", "Computer Science"},
	{"data science", "Computer Science"},
	{"data structures", "Computer Science"},
	{"algorithms", "Computer Science"},
	{"machine learning", "Computer Science"},
	{"artificial intelligence", "Computer Science"},
	{"operating systems", "Computer Science"},
	{"database systems", "Computer Science"},
	{"databases", "Computer Science"},

	// Electronics / Electrical
	{"electronics and communication", "Electronics"},
	{"electronics & communication", "Electronics"},
	{"ece", "Electronics"},
	{"electronics engineering", "Electronics"},
	{"vlsi", "Electronics"},
	{"signal processing", "Electronics"},
	{"embedded systems", "Electronics"},
	{"electrical engineering", "Electrical"},
	{"eee", "Electrical"},

	// Mechanical
	{"mechanical engineering", "Mechanical"},
	{"thermal engineering", "Mechanical"},
	{"thermodynamics", "Mechanical"},
	{"fluid mechanics", "Mechanical"},

	// Civil
	{"civil engineering", "Civil"},
	{"structural engineering", "Civil"},

	// Sciences
	{"applied physics", "Physics"},
	{"physics", "Physics"},
	{"applied mathematics", "Mathematics"},
	{"mathematics", "Mathematics"},
	{"chemistry", "Chemistry"},
	{"biotechnology", "Biotechnology"},
}

var eduSectionTitles = []string{
	"education",
	"educational qualification",
	"educational qualifications",
	"academic background",
	"academic qualifications",
	"qualifications",
}

var pursuingKeywords = []string{"pursuing", "ongoing", "currently", "in progress"}

var teachingKeywords = []string{
	"professor", "assistant professor", "associate professor",
	"lecturer", "teacher", "faculty", "school", "college", "university",
	"institute", "academy",
}

var industryKeywords = []string{
	"developer", "software", "engineer", "company", "pvt", "ltd",
	"solutions", "consultant", "analyst", "manager", "industry",
	"it services", "technologies", "firm", "corporation",
}

var articleKeywords = []string{"journal", "volume", "issue", "issn", "paper published"}

var orgKeywords = []string{"university", "college", "institute", "school", "company", "pvt", "ltd", "inc"}

var salutationPrefixes = []string{"mr ", "ms ", "mrs ", "dr ", "prof. ", "prof "}

const monthAlt = `Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|` +
	`Jul(?:y)?|Aug(?:ust)?|Sep(?:t(?:ember)?)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?`

// Compiled once at init; the tables are immutable after that.
var (
	parenRe        = regexp.MustCompile(`\(([^)]+)\)`)
	digitRunRe     = regexp.MustCompile(`\d{2,4}`)
	institutionRe  = regexp.MustCompile(`([A-Z][A-Za-z&. ]+(University|College|Institute|School|Academy))`)
	yearRangeRe    = regexp.MustCompile(`(19|20)\d{2}\s*[-–]\s*(\d{4}|Present|present|Ongoing|ongoing|Pursuing|pursuing|Till Date|till date|Current|current)`)
	yearRe         = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	phdMentionRe   = regexp.MustCompile(`ph\.?\s*d\.?|phd`)
	emailRe        = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phoneRe        = regexp.MustCompile(`\+?\d[\d\s\-]{8,}\d`)
	locationRe     = regexp.MustCompile(`(?i)([A-Za-z ]+,\s*India\b)`)
	numberedLineRe = regexp.MustCompile(`^\s*\d+\s`)
	digitsOnlyRe   = regexp.MustCompile(`^\d+$`)
	nonDigitRe     = regexp.MustCompile(`\D`)

	expRangeRe = regexp.MustCompile(`(?i)(?P<from_month>` + monthAlt + `)\s+(?P<from_year>\d{4})\s*[-–]\s*` +
		`(?:(?P<to_month>` + monthAlt + `)\s+(?P<to_year>\d{4})|(?P<to_label>Present|Currently Working|Current|Till Date|Now))`)

	expFromMonth = expRangeRe.SubexpIndex("from_month")
	expFromYear  = expRangeRe.SubexpIndex("from_year")
	expToMonth   = expRangeRe.SubexpIndex("to_month")
	expToYear    = expRangeRe.SubexpIndex("to_year")
)

var monthIndex = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}
