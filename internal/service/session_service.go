package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"overlysocial/internal/cache"
	"overlysocial/internal/model"
)

var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrInvalidStep         = errors.New("operation not allowed in current step")
	ErrInvalidAnswer       = errors.New("answer index out of range")
	ErrQuestionNotAnswered = errors.New("current question not answered")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationError carries field-level messages for rejected contact info.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid contact info: %d field(s)", len(e.Fields))
}

// SubscriberSyncer submits contact info plus results to the mailing list.
// The return is a report, not an error: the session flow never depends on it.
type SubscriberSyncer interface {
	SyncAssessmentSubscriber(email, name string, result *model.AssessmentResult) model.SyncResult
}

// SessionService drives one assessment session through
// welcome → questions → email → results.
type SessionService struct {
	sessions  cache.SessionCache
	scoring   *ScoringService
	results   *ResultService
	syncer    SubscriberSyncer
	questions []model.Question
}

// NewSessionService creates a new session service.
func NewSessionService(
	sessions cache.SessionCache,
	scoring *ScoringService,
	results *ResultService,
	syncer SubscriberSyncer,
	questions []model.Question,
) *SessionService {
	return &SessionService{
		sessions:  sessions,
		scoring:   scoring,
		results:   results,
		syncer:    syncer,
		questions: questions,
	}
}

// Create starts a fresh session on the welcome step.
func (s *SessionService) Create(ctx context.Context) (*model.Session, error) {
	now := time.Now()
	session := &model.Session{
		ID:        uuid.New().String(),
		Step:      model.StepWelcome,
		Answers:   make(map[int]int),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}
	return session, nil
}

// Get loads a session by ID.
func (s *SessionService) Get(ctx context.Context, id string) (*model.Session, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Start moves a welcome-step session into the questions step.
func (s *SessionService) Start(ctx context.Context, id string) (*model.Session, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Step != model.StepWelcome {
		return nil, ErrInvalidStep
	}

	session.Step = model.StepQuestions
	session.CurrentQuestion = 0
	return s.save(ctx, session)
}

// SelectAnswer records the option index for the current question,
// overwriting any earlier selection for that position.
func (s *SessionService) SelectAnswer(ctx context.Context, id string, answerIndex int) (*model.Session, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Step != model.StepQuestions {
		return nil, ErrInvalidStep
	}

	question := s.questions[session.CurrentQuestion]
	if answerIndex < 0 || answerIndex >= len(question.Options) {
		return nil, ErrInvalidAnswer
	}
	if session.Answers == nil {
		session.Answers = make(map[int]int)
	}
	session.Answers[session.CurrentQuestion] = answerIndex
	return s.save(ctx, session)
}

// NextQuestion advances past an answered question. From the last question it
// moves to the email step, never straight to results.
func (s *SessionService) NextQuestion(ctx context.Context, id string) (*model.Session, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Step != model.StepQuestions {
		return nil, ErrInvalidStep
	}
	if _, answered := session.Answers[session.CurrentQuestion]; !answered {
		return nil, ErrQuestionNotAnswered
	}

	if session.CurrentQuestion < len(s.questions)-1 {
		session.CurrentQuestion++
	} else {
		session.Step = model.StepEmail
	}
	return s.save(ctx, session)
}

// PreviousQuestion steps back within the questions step. At the first
// question it stays put; it never leaves the step backward.
func (s *SessionService) PreviousQuestion(ctx context.Context, id string) (*model.Session, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Step != model.StepQuestions {
		return nil, ErrInvalidStep
	}

	if session.CurrentQuestion > 0 {
		session.CurrentQuestion--
	}
	return s.save(ctx, session)
}

// SubmitContact validates contact info, computes the result and customized
// template, fires the subscriber sync best-effort, and lands on results.
// Sync failure is logged and swallowed; the respondent always gets their
// report.
func (s *SessionService) SubmitContact(ctx context.Context, id, email, name string) (*model.Session, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Step != model.StepEmail {
		return nil, ErrInvalidStep
	}

	if err := validateContact(email, name); err != nil {
		return nil, err
	}

	answers := make([]int, len(s.questions))
	for i := range answers {
		idx, ok := session.Answers[i]
		if !ok {
			idx = model.NoAnswer
		}
		answers[i] = idx
	}

	result := s.scoring.CalculateScore(answers, s.questions)
	template := s.results.CustomizedResult(result)

	// Best-effort lead capture: one attempt, outcome logged and discarded.
	syncResult := s.syncer.SyncAssessmentSubscriber(email, name, &result)
	if !syncResult.Success {
		log.Printf("Warning: subscriber sync failed for session %s: %s", session.ID, syncResult.Error)
	}

	session.UserInfo = &model.UserInfo{Name: name, Email: email}
	session.Result = &result
	session.Template = &template
	session.Step = model.StepResults
	return s.save(ctx, session)
}

// Restart wipes the session back to a fresh welcome state, keeping its ID.
func (s *SessionService) Restart(ctx context.Context, id string) (*model.Session, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	session.Step = model.StepWelcome
	session.CurrentQuestion = 0
	session.Answers = make(map[int]int)
	session.UserInfo = nil
	session.Result = nil
	session.Template = nil
	return s.save(ctx, session)
}

// Questions returns the catalog this service scores against.
func (s *SessionService) Questions() []model.Question {
	return s.questions
}

func (s *SessionService) save(ctx context.Context, session *model.Session) (*model.Session, error) {
	session.UpdatedAt = time.Now()
	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}
	return session, nil
}

func validateContact(email, name string) error {
	fields := make(map[string]string)
	if strings.TrimSpace(name) == "" {
		fields["name"] = "Please enter your first name"
	}
	if !emailPattern.MatchString(strings.TrimSpace(email)) {
		fields["email"] = "Please enter a valid email address"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
