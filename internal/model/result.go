package model

// Category is the conversion-maturity class a respondent lands in.
type Category string

const (
	CategoryContentCreator Category = "content_creator"
	CategoryGettingThere   Category = "getting_there"
	CategoryConversionPro  Category = "conversion_pro"
)

// Label returns the human-readable category name used in outbound
// submissions and UI labelling.
func (c Category) Label() string {
	switch c {
	case CategoryContentCreator:
		return "Content Creator"
	case CategoryGettingThere:
		return "Getting There"
	case CategoryConversionPro:
		return "Conversion Pro"
	}
	return string(c)
}

// AssessmentResult is the derived outcome of a completed answer set.
// Answers maps "q{id}" to the selected option's key; unanswered questions
// have no entry.
type AssessmentResult struct {
	Score    int               `json:"score"`
	MaxScore int               `json:"maxScore"`
	Category Category          `json:"category"`
	Answers  map[string]string `json:"answers"`
}

// ResultTemplate is the narrative report shown on the results step.
// String fields may contain embedded newlines that the renderer preserves
// as paragraph breaks.
type ResultTemplate struct {
	Category          Category `json:"category"`
	Title             string   `json:"title"`
	Subtitle          string   `json:"subtitle"`
	Diagnosis         string   `json:"diagnosis"`
	ProblemWhy        string   `json:"problemWhy"`
	QuickWin          string   `json:"quickWin"`
	ThirtyDayStrategy string   `json:"thirtyDayStrategy"`
	OverlySocialIntro string   `json:"overlySocialIntro"`
}
