// Package catalog holds the fixed assessment question set. The content is
// contract data: option keys and scores are referenced by the scoring
// thresholds and the result customization rules, so option order must never
// change without updating those references.
package catalog

import "overlysocial/internal/model"

var questions = []model.Question{
	{
		ID:       1,
		Question: "When someone sees your content for the first time, what happens next?",
		Options: []model.Option{
			{Text: "They like/comment and that's it (I hope they follow)", Score: 0, Key: "content_hope"},
			{Text: "I tell them to \"DM me for more info\"", Score: 1, Key: "content_dm"},
			{Text: "I have a link in bio to book a call", Score: 2, Key: "content_call"},
			{Text: "I offer a specific free resource that captures their email", Score: 3, Key: "content_resource"},
		},
	},
	{
		ID:       2,
		Question: "How often do you post content specifically designed to generate leads (not just engagement)?",
		Options: []model.Option{
			{Text: "Never - I focus on valuable content and hope people reach out", Score: 0, Key: "lead_content_never"},
			{Text: "Occasionally - maybe once a week", Score: 1, Key: "lead_content_weekly"},
			{Text: "Regularly - 2-3 times per week", Score: 2, Key: "lead_content_regular"},
			{Text: "Strategically - every post has a purpose in my client journey", Score: 3, Key: "lead_content_strategic"},
		},
	},
	{
		ID:       3,
		Question: "What free resource do you offer to capture contact information?",
		Options: []model.Option{
			{Text: "Nothing - I rely on social media followers", Score: 0, Key: "magnet_none"},
			{Text: "Generic PDF guide or checklist", Score: 1, Key: "magnet_pdf"},
			{Text: "Specific resource that solves one problem", Score: 2, Key: "magnet_specific"},
			{Text: "Interactive tool/assessment that provides personalized results", Score: 3, Key: "magnet_interactive"},
		},
	},
	{
		ID:       4,
		Question: "How many email subscribers do you get per 1000 content views?",
		Options: []model.Option{
			{Text: "I don't track this / Less than 5", Score: 0, Key: "conversion_very_low"},
			{Text: "5-15 subscribers", Score: 1, Key: "conversion_low"},
			{Text: "15-30 subscribers", Score: 2, Key: "conversion_med"},
			{Text: "30+ subscribers", Score: 3, Key: "conversion_high"},
		},
	},
	{
		ID:       5,
		Question: "What happens after someone downloads your free resource?",
		Options: []model.Option{
			{Text: "They get the resource and that's it", Score: 0, Key: "followup_none"},
			{Text: "They go on my general newsletter list", Score: 1, Key: "followup_newsletter"},
			{Text: "They get 2-3 follow-up emails with more value", Score: 2, Key: "followup_few"},
			{Text: "They enter a strategic sequence that builds trust and positions my services", Score: 3, Key: "followup_sequence"},
		},
	},
	{
		ID:       6,
		Question: "How do you stay in touch with prospects who aren't ready to buy yet?",
		Options: []model.Option{
			{Text: "I don't - I hope they see my social media posts", Score: 0, Key: "nurture_none"},
			{Text: "Occasional newsletter when I remember", Score: 1, Key: "nurture_occasional"},
			{Text: "Regular newsletter with business tips", Score: 2, Key: "nurture_regular"},
			{Text: "Strategic email sequence + regular value-driven content", Score: 3, Key: "nurture_strategic"},
		},
	},
	{
		ID:       7,
		Question: "How do prospects typically book a call with you?",
		Options: []model.Option{
			{Text: "They have to DM me or email me directly", Score: 0, Key: "booking_dm"},
			{Text: "Generic \"book a call\" link in bio", Score: 1, Key: "booking_generic"},
			{Text: "Dedicated booking page with clear value proposition", Score: 2, Key: "booking_dedicated"},
			{Text: "Multi-step process that pre-qualifies and warms them up first", Score: 3, Key: "booking_qualified"},
		},
	},
	{
		ID:       8,
		Question: "What percentage of your discovery calls convert to clients?",
		Options: []model.Option{
			{Text: "Less than 30% (or I don't track this)", Score: 0, Key: "close_low"},
			{Text: "30-50%", Score: 1, Key: "close_med"},
			{Text: "50-70%", Score: 2, Key: "close_good"},
			{Text: "70%+ (because only qualified prospects book calls)", Score: 3, Key: "close_excellent"},
		},
	},
}

// Questions returns the ordered assessment question catalog.
func Questions() []model.Question {
	return questions
}

// Count returns the number of questions in the catalog.
func Count() int {
	return len(questions)
}

// ByID returns the question with the given 1-based ID, or nil.
func ByID(id int) *model.Question {
	if id < 1 || id > len(questions) {
		return nil
	}
	return &questions[id-1]
}
