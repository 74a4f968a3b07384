package service

import (
	"fmt"

	"overlysocial/internal/model"
)

// Score thresholds partition the 0..24 range into three contiguous bands.
const (
	contentCreatorMax = 8
	gettingThereMax   = 16
)

// maxScorePerQuestion is fixed by contract: every catalog question tops out
// at 3. The categorization thresholds were tuned against n*3, so maxScore is
// NOT derived from per-question maxima.
const maxScorePerQuestion = 3

// ScoringService converts an answer-index sequence into a scored,
// categorized result.
type ScoringService struct{}

// NewScoringService creates a new scoring service.
func NewScoringService() *ScoringService {
	return &ScoringService{}
}

// CalculateScore scores answers against questions. answers[i] is the chosen
// option index for questions[i]; model.NoAnswer or an out-of-range index
// contributes 0 and produces no entry in the answers map, so partial
// completion never fails.
func (s *ScoringService) CalculateScore(answers []int, questions []model.Question) model.AssessmentResult {
	totalScore := 0
	answerKeys := make(map[string]string)

	for i, q := range questions {
		if i >= len(answers) {
			break
		}
		idx := answers[i]
		if idx < 0 || idx >= len(q.Options) {
			continue
		}
		opt := q.Options[idx]
		totalScore += opt.Score
		answerKeys[fmt.Sprintf("q%d", q.ID)] = opt.Key
	}

	maxScore := len(questions) * maxScorePerQuestion

	var category model.Category
	switch {
	case totalScore <= contentCreatorMax:
		category = model.CategoryContentCreator
	case totalScore <= gettingThereMax:
		category = model.CategoryGettingThere
	default:
		category = model.CategoryConversionPro
	}

	return model.AssessmentResult{
		Score:    totalScore,
		MaxScore: maxScore,
		Category: category,
		Answers:  answerKeys,
	}
}
