package service

import "overlysocial/internal/model"

// overrideRule rewrites specific template fields when a particular answer
// combination is present. Rules run in order over a value copy of the base
// template; no two rules touch the same field, so they compose without
// clobbering each other.
type overrideRule struct {
	predicate func(model.AssessmentResult) bool
	apply     func(model.ResultTemplate) model.ResultTemplate
}

// ResultService selects the base narrative for a category and applies
// answer-specific overrides.
type ResultService struct {
	rules []overrideRule
}

// NewResultService creates a result service with the standard override rules.
func NewResultService() *ResultService {
	return &ResultService{rules: defaultOverrideRules()}
}

// CustomizedResult returns the complete narrative template for a result.
// The base template constants are never mutated; every call builds a fresh
// copy.
func (s *ResultService) CustomizedResult(result model.AssessmentResult) model.ResultTemplate {
	template := baseTemplates[result.Category]
	for _, rule := range s.rules {
		if rule.predicate(result) {
			template = rule.apply(template)
		}
	}
	return template
}

func defaultOverrideRules() []overrideRule {
	return []overrideRule{
		// Interactive lead magnet but a sub-16 score: the magnet choice is
		// right, the follow-up is the weak point.
		{
			predicate: func(r model.AssessmentResult) bool {
				return r.Answers["q3"] == "magnet_interactive" && r.Score < 16
			},
			apply: func(t model.ResultTemplate) model.ResultTemplate {
				t.Diagnosis += "\n\nNote: Your interactive lead magnet approach is excellent - that's exactly the right strategy.\n\nThe issue isn't your lead magnet choice, it's likely in your follow-up sequence."
				t.QuickWin = "Your lead magnet strategy is spot-on.\n\nFocus your 30 minutes on improving your first follow-up email after someone completes your assessment.\n\nMake sure it delivers immediate value and sets up the next step in your sequence."
				return t
			},
		},
		// Generic PDF despite an otherwise strong funnel: the PDF is the
		// bottleneck.
		{
			predicate: func(r model.AssessmentResult) bool {
				return r.Answers["q3"] == "magnet_pdf" && r.Score > 16
			},
			apply: func(t model.ResultTemplate) model.ResultTemplate {
				t.ProblemWhy += "\n\nSpecific to your situation: Your generic PDF guide is likely your biggest conversion bottleneck.\n\nEven with everything else working well, that PDF is probably getting downloaded and forgotten."
				t.QuickWin = "Skip the 30-minute fix - this needs a bigger change.\n\nReplace that PDF with something interactive (assessment, calculator, template, or mini-course) within the next week.\n\nThis single change often doubles conversion rates."
				return t
			},
		},
		// Excellent closer starved of leads: reframe the 30-day plan around
		// lead generation, keeping the base strategy text after the framing.
		{
			predicate: func(r model.AssessmentResult) bool {
				return r.Answers["q8"] == "close_excellent" && r.Answers["q4"] == "conversion_very_low"
			},
			apply: func(t model.ResultTemplate) model.ResultTemplate {
				t.Diagnosis += "\n\nUnique insight for you: Your 70%+ call conversion rate is incredible - you're clearly excellent at sales.\n\nThe problem isn't your closing ability, it's that you need way more qualified people booking those calls."
				t.ThirtyDayStrategy = "Your 30-day focus should be 90% on lead generation and 10% on optimization.\n\nWith your closing skills, more qualified leads directly equals more revenue.\n\n" + t.ThirtyDayStrategy
				return t
			},
		},
	}
}
