package domain

// KeyPrefix namespaces every Redis key written or read by seekdex.
const KeyPrefix = "seekdex:"

// DocType identifies the kind of indexed resource.
type DocType string

const (
	// TypeReport is a BI report or dashboard.
	TypeReport DocType = "report"
	// TypeTrainingVideo is a recorded training session.
	TypeTrainingVideo DocType = "training_video"
	// TypeGlossary is a glossary term entry.
	TypeGlossary DocType = "glossary"
	// TypeFAQ is a frequently-asked-question entry.
	TypeFAQ DocType = "faq"
)

// Metadata is the descriptive payload of an indexed document, fetched from the
// document store after ranking. Only the fields relevant to the document's
// type are populated.
type Metadata struct {
	ID   string
	Type DocType

	// Reports and training videos.
	Title       string
	Description string
	URL         string
	Category    string
	Platform    string
	Tags        []string

	// Glossary entries.
	Term       string
	Definition string

	// FAQ entries.
	Question string
	Answer   string
}
