package service

import (
	"log"
	"math"
	"strconv"

	"overlysocial/internal/model"
)

// GroupMapping maps result categories to mailing-list group IDs, with an
// optional default used when a category has no mapping. Empty IDs mean
// "unmapped".
type GroupMapping struct {
	ContentCreator string
	GettingThere   string
	ConversionPro  string
	Default        string
}

// GroupFor resolves the group ID for a category, falling back to Default.
func (m GroupMapping) GroupFor(category model.Category) string {
	var id string
	switch category {
	case model.CategoryContentCreator:
		id = m.ContentCreator
	case model.CategoryGettingThere:
		id = m.GettingThere
	case model.CategoryConversionPro:
		id = m.ConversionPro
	}
	if id == "" {
		id = m.Default
	}
	return id
}

// SubscriberSyncService submits captured contact info plus assessment data
// to the email-marketing list for the respondent's category. Failures are
// reported as values; they never interrupt the caller's flow.
type SubscriberSyncService struct {
	client *MailerLiteClient
	groups GroupMapping
}

// NewSubscriberSyncService creates a new subscriber sync service.
func NewSubscriberSyncService(client *MailerLiteClient, groups GroupMapping) *SubscriberSyncService {
	return &SubscriberSyncService{
		client: client,
		groups: groups,
	}
}

// SyncAssessmentSubscriber performs one best-effort submission. A missing
// API key short-circuits with a reported failure instead of an HTTP call.
func (s *SubscriberSyncService) SyncAssessmentSubscriber(email, name string, result *model.AssessmentResult) model.SyncResult {
	if !s.client.IsConfigured() {
		log.Println("[SubscriberSync] skipped: API key not configured")
		return model.SyncResult{Success: false, Error: "mailerlite API key not configured"}
	}

	subscriber := s.BuildSubscriber(email, name, result)

	if err := s.client.AddSubscriber(subscriber); err != nil {
		log.Printf("[SubscriberSync] failed for %s: %v", email, err)
		return model.SyncResult{Success: false, Error: err.Error()}
	}

	groupID := s.groups.GroupFor(result.Category)
	if groupID != "" {
		log.Printf("[SubscriberSync] added %s to group %s (%s)", email, groupID, result.Category.Label())
	} else {
		log.Printf("[SubscriberSync] added %s without group assignment", email)
	}
	return model.SyncResult{Success: true}
}

// BuildSubscriber assembles the outbound payload for a scored assessment.
func (s *SubscriberSyncService) BuildSubscriber(email, name string, result *model.AssessmentResult) *model.Subscriber {
	fields := map[string]string{
		"name":                name,
		"assessment_score":    strconv.Itoa(result.Score),
		"assessment_category": string(result.Category),
	}
	if result.MaxScore > 0 {
		percentage := int(math.Round(float64(result.Score) / float64(result.MaxScore) * 100))
		fields["assessment_percentage"] = strconv.Itoa(percentage)
	}

	var groups []string
	if groupID := s.groups.GroupFor(result.Category); groupID != "" {
		groups = []string{groupID}
	}

	return &model.Subscriber{
		Email:  email,
		Fields: fields,
		Groups: groups,
		Status: "active",
	}
}
