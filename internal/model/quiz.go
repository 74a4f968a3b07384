package model

// Option is one answer choice of a question. The option's position inside
// Question.Options is the answer index referenced everywhere else; Key is the
// stable semantic identifier used by the result customization rules.
type Option struct {
	Text  string `json:"text"`
	Score int    `json:"score"`
	Key   string `json:"key"`
}

// Question is one step of the assessment. ID is 1-based and stable.
type Question struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Options  []Option `json:"options"`
}

// NoAnswer marks an unanswered position in a dense answer-index slice.
const NoAnswer = -1
