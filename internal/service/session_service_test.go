package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"overlysocial/internal/catalog"
	"overlysocial/internal/model"
)

// memorySessionCache is an in-memory stand-in for the Redis cache.
type memorySessionCache struct {
	mu       sync.Mutex
	sessions map[string]*model.Session
}

func newMemorySessionCache() *memorySessionCache {
	return &memorySessionCache{sessions: make(map[string]*model.Session)}
}

func (c *memorySessionCache) Set(_ context.Context, session *model.Session) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	copied := *session
	c.sessions[session.ID] = &copied
	return nil
}

func (c *memorySessionCache) Get(_ context.Context, id string) (*model.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	session, ok := c.sessions[id]
	if !ok {
		return nil, nil
	}
	copied := *session
	return &copied, nil
}

func (c *memorySessionCache) Delete(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, id)
	return nil
}

// stubSyncer records submissions and returns a configured outcome.
type stubSyncer struct {
	result model.SyncResult
	calls  int
	email  string
	name   string
	last   *model.AssessmentResult
}

func (s *stubSyncer) SyncAssessmentSubscriber(email, name string, result *model.AssessmentResult) model.SyncResult {
	s.calls++
	s.email = email
	s.name = name
	s.last = result
	return s.result
}

func newSessionFixture(syncer SubscriberSyncer) *SessionService {
	if syncer == nil {
		syncer = &stubSyncer{result: model.SyncResult{Success: true}}
	}
	return NewSessionService(
		newMemorySessionCache(),
		NewScoringService(),
		NewResultService(),
		syncer,
		catalog.Questions(),
	)
}

// answerAll walks the session through every question with the given option
// index, leaving it on the email step.
func answerAll(t *testing.T, svc *SessionService, id string, optionIndex int) {
	t.Helper()
	for i := 0; i < catalog.Count(); i++ {
		_, err := svc.SelectAnswer(context.Background(), id, optionIndex)
		require.NoError(t, err)
		_, err = svc.NextQuestion(context.Background(), id)
		require.NoError(t, err)
	}
}

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newSessionFixture(nil)

	session, err := svc.Create(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.StepWelcome, session.Step)
	assert.Empty(t, session.Answers)

	session, err = svc.Start(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StepQuestions, session.Step)
	assert.Equal(t, 0, session.CurrentQuestion)

	answerAll(t, svc, session.ID, 2)

	session, err = svc.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StepEmail, session.Step, "advance from the last question lands on email, not results")

	session, err = svc.SubmitContact(ctx, session.ID, "jo@example.com", "Jo")
	require.NoError(t, err)
	assert.Equal(t, model.StepResults, session.Step)
	require.NotNil(t, session.Result)
	assert.Equal(t, 16, session.Result.Score)
	assert.Equal(t, model.CategoryGettingThere, session.Result.Category)
	require.NotNil(t, session.Template)
	assert.Equal(t, model.CategoryGettingThere, session.Template.Category)
	require.NotNil(t, session.UserInfo)
	assert.Equal(t, "jo@example.com", session.UserInfo.Email)
}

func TestStartOnlyFromWelcome(t *testing.T) {
	ctx := context.Background()
	svc := newSessionFixture(nil)

	session, _ := svc.Create(ctx)
	_, err := svc.Start(ctx, session.ID)
	require.NoError(t, err)

	_, err = svc.Start(ctx, session.ID)
	assert.ErrorIs(t, err, ErrInvalidStep)
}

func TestSelectAnswerOverwrites(t *testing.T) {
	ctx := context.Background()
	svc := newSessionFixture(nil)

	session, _ := svc.Create(ctx)
	_, err := svc.SelectAnswer(ctx, session.ID, 1)
	assert.ErrorIs(t, err, ErrInvalidStep, "cannot answer from welcome")

	svc.Start(ctx, session.ID)

	_, err = svc.SelectAnswer(ctx, session.ID, 1)
	require.NoError(t, err)
	session, err = svc.SelectAnswer(ctx, session.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{0: 3}, session.Answers, "last selection wins")

	_, err = svc.SelectAnswer(ctx, session.ID, 4)
	assert.ErrorIs(t, err, ErrInvalidAnswer)
	_, err = svc.SelectAnswer(ctx, session.ID, -1)
	assert.ErrorIs(t, err, ErrInvalidAnswer)
}

func TestNextRequiresAnswer(t *testing.T) {
	ctx := context.Background()
	svc := newSessionFixture(nil)

	session, _ := svc.Create(ctx)
	svc.Start(ctx, session.ID)

	_, err := svc.NextQuestion(ctx, session.ID)
	assert.ErrorIs(t, err, ErrQuestionNotAnswered)

	svc.SelectAnswer(ctx, session.ID, 0)
	session, err = svc.NextQuestion(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, session.CurrentQuestion)
}

func TestPreviousStaysInQuestions(t *testing.T) {
	ctx := context.Background()
	svc := newSessionFixture(nil)

	session, _ := svc.Create(ctx)
	svc.Start(ctx, session.ID)

	// At the first question, previous is a no-op, not an exit to welcome.
	session, err := svc.PreviousQuestion(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StepQuestions, session.Step)
	assert.Equal(t, 0, session.CurrentQuestion)

	svc.SelectAnswer(ctx, session.ID, 0)
	svc.NextQuestion(ctx, session.ID)
	session, err = svc.PreviousQuestion(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, session.CurrentQuestion)
}

func TestSubmitContactValidation(t *testing.T) {
	ctx := context.Background()
	syncer := &stubSyncer{result: model.SyncResult{Success: true}}
	svc := newSessionFixture(syncer)

	session, _ := svc.Create(ctx)
	svc.Start(ctx, session.ID)
	answerAll(t, svc, session.ID, 1)

	_, err := svc.SubmitContact(ctx, session.ID, "not-an-email", "  ")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Please enter your first name", vErr.Fields["name"])
	assert.Equal(t, "Please enter a valid email address", vErr.Fields["email"])
	assert.Zero(t, syncer.calls, "sync must not be attempted until validation passes")

	session, err = svc.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StepEmail, session.Step)
}

func TestSubmitContactBestEffortSync(t *testing.T) {
	ctx := context.Background()
	syncer := &stubSyncer{result: model.SyncResult{Success: false, Error: "connection refused"}}
	svc := newSessionFixture(syncer)

	session, _ := svc.Create(ctx)
	svc.Start(ctx, session.ID)
	answerAll(t, svc, session.ID, 3)

	session, err := svc.SubmitContact(ctx, session.ID, "jo@example.com", "Jo")
	require.NoError(t, err, "sync failure must never block the results transition")
	assert.Equal(t, model.StepResults, session.Step)
	require.NotNil(t, session.Result)
	assert.Equal(t, 24, session.Result.Score)
	assert.Equal(t, model.CategoryConversionPro, session.Result.Category)
	require.NotNil(t, session.Template)

	assert.Equal(t, 1, syncer.calls, "exactly one attempt")
	assert.Equal(t, "jo@example.com", syncer.email)
	assert.Equal(t, "Jo", syncer.name)
	require.NotNil(t, syncer.last)
	assert.Equal(t, 24, syncer.last.Score)
}

func TestSubmitFromWrongStep(t *testing.T) {
	ctx := context.Background()
	svc := newSessionFixture(nil)

	session, _ := svc.Create(ctx)
	_, err := svc.SubmitContact(ctx, session.ID, "jo@example.com", "Jo")
	assert.ErrorIs(t, err, ErrInvalidStep)

	svc.Start(ctx, session.ID)
	_, err = svc.SubmitContact(ctx, session.ID, "jo@example.com", "Jo")
	assert.ErrorIs(t, err, ErrInvalidStep, "cannot submit while questions remain")
}

func TestRestartClearsEverything(t *testing.T) {
	ctx := context.Background()
	svc := newSessionFixture(nil)

	session, _ := svc.Create(ctx)
	svc.Start(ctx, session.ID)
	answerAll(t, svc, session.ID, 2)
	_, err := svc.SubmitContact(ctx, session.ID, "jo@example.com", "Jo")
	require.NoError(t, err)

	session, err = svc.Restart(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StepWelcome, session.Step)
	assert.Equal(t, 0, session.CurrentQuestion)
	assert.Empty(t, session.Answers)
	assert.Nil(t, session.UserInfo)
	assert.Nil(t, session.Result)
	assert.Nil(t, session.Template)
}

func TestGetUnknownSession(t *testing.T) {
	svc := newSessionFixture(nil)
	_, err := svc.Get(context.Background(), "missing")
	assert.True(t, errors.Is(err, ErrSessionNotFound))
}
