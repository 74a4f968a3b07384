package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"overlysocial/internal/catalog"
	"overlysocial/internal/model"
)

func allAnswers(idx int) []int {
	answers := make([]int, catalog.Count())
	for i := range answers {
		answers[i] = idx
	}
	return answers
}

func TestCalculateScoreBounds(t *testing.T) {
	svc := NewScoringService()

	min := svc.CalculateScore(allAnswers(0), catalog.Questions())
	assert.Equal(t, 0, min.Score)
	assert.Equal(t, 24, min.MaxScore)
	assert.Equal(t, model.CategoryContentCreator, min.Category)

	max := svc.CalculateScore(allAnswers(3), catalog.Questions())
	assert.Equal(t, 24, max.Score)
	assert.Equal(t, 24, max.MaxScore)
	assert.Equal(t, model.CategoryConversionPro, max.Category)
}

func TestCategoryBoundaries(t *testing.T) {
	svc := NewScoringService()
	cases := []struct {
		name    string
		answers []int
		score   int
		want    model.Category
	}{
		// 8 questions, option index == option score.
		{"score 8 is still content_creator", []int{3, 3, 2, 0, 0, 0, 0, 0}, 8, model.CategoryContentCreator},
		{"score 9 crosses into getting_there", []int{3, 3, 3, 0, 0, 0, 0, 0}, 9, model.CategoryGettingThere},
		{"score 16 is still getting_there", []int{2, 2, 2, 2, 2, 2, 2, 2}, 16, model.CategoryGettingThere},
		{"score 17 crosses into conversion_pro", []int{3, 2, 2, 2, 2, 2, 2, 2}, 17, model.CategoryConversionPro},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			result := svc.CalculateScore(c.answers, catalog.Questions())
			assert.Equal(t, c.score, result.Score)
			assert.Equal(t, c.want, result.Category)
		})
	}
}

func TestAnswerKeyMapping(t *testing.T) {
	svc := NewScoringService()
	result := svc.CalculateScore([]int{3, 2, 1, 0, 3, 2, 1, 0}, catalog.Questions())

	require.Len(t, result.Answers, 8)
	assert.Equal(t, "content_resource", result.Answers["q1"])
	assert.Equal(t, "lead_content_regular", result.Answers["q2"])
	assert.Equal(t, "magnet_pdf", result.Answers["q3"])
	assert.Equal(t, "conversion_very_low", result.Answers["q4"])
	assert.Equal(t, "followup_sequence", result.Answers["q5"])
	assert.Equal(t, "nurture_regular", result.Answers["q6"])
	assert.Equal(t, "booking_generic", result.Answers["q7"])
	assert.Equal(t, "close_low", result.Answers["q8"])
}

func TestMissingAndInvalidAnswers(t *testing.T) {
	svc := NewScoringService()

	// Holes score zero and produce no map entry.
	result := svc.CalculateScore([]int{3, model.NoAnswer, 3, model.NoAnswer, 3, model.NoAnswer, 3, model.NoAnswer}, catalog.Questions())
	assert.Equal(t, 12, result.Score)
	require.Len(t, result.Answers, 4)
	_, ok := result.Answers["q2"]
	assert.False(t, ok)

	// Out-of-range indexes are treated the same as absent.
	result = svc.CalculateScore([]int{7, -3, 0, 0, 0, 0, 0, 0}, catalog.Questions())
	assert.Equal(t, 0, result.Score)
	assert.Len(t, result.Answers, 6)

	// Short sequences tolerate the missing tail.
	result = svc.CalculateScore([]int{3, 3}, catalog.Questions())
	assert.Equal(t, 6, result.Score)
	assert.Equal(t, 24, result.MaxScore)
	assert.Len(t, result.Answers, 2)

	// Empty input is a zero result, not a failure.
	result = svc.CalculateScore(nil, catalog.Questions())
	assert.Equal(t, 0, result.Score)
	assert.Equal(t, model.CategoryContentCreator, result.Category)
	assert.Empty(t, result.Answers)
}

func TestCalculateScoreDeterministic(t *testing.T) {
	svc := NewScoringService()
	answers := []int{1, 2, 0, 3, 1, 2, 3, 0}
	first := svc.CalculateScore(answers, catalog.Questions())
	second := svc.CalculateScore(answers, catalog.Questions())
	assert.Equal(t, first, second)
}
