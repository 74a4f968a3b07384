package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"overlysocial/internal/model"
	"overlysocial/internal/service"
	"overlysocial/internal/transport/rest/middleware"
)

// AssessmentHandler handles the assessment session endpoints.
type AssessmentHandler struct {
	sessionSvc *service.SessionService
	tokenSvc   *service.TokenService
}

// NewAssessmentHandler creates a new assessment handler.
func NewAssessmentHandler(sessionSvc *service.SessionService, tokenSvc *service.TokenService) *AssessmentHandler {
	return &AssessmentHandler{
		sessionSvc: sessionSvc,
		tokenSvc:   tokenSvc,
	}
}

// SelectAnswerRequest is the request body for answering the current question.
type SelectAnswerRequest struct {
	AnswerIndex int `json:"answerIndex"`
}

// SubmitContactRequest is the request body for the email step.
type SubmitContactRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// SessionResponse is the presentation view of a session.
type SessionResponse struct {
	ID              string                  `json:"id"`
	Step            model.Step              `json:"step"`
	CurrentQuestion int                     `json:"currentQuestion"`
	TotalQuestions  int                     `json:"totalQuestions"`
	Question        *model.Question         `json:"question,omitempty"`
	SelectedAnswer  *int                    `json:"selectedAnswer,omitempty"`
	Progress        float64                 `json:"progress"`
	Result          *model.AssessmentResult `json:"result,omitempty"`
	Template        *model.ResultTemplate   `json:"template,omitempty"`
}

// Create handles POST /v1/assessments
func (h *AssessmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionSvc.Create(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	token, err := h.tokenSvc.IssueSessionToken(session.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"token":   token,
		"session": h.sessionView(session),
	})
}

// Get handles GET /v1/assessments/current
func (h *AssessmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionSvc.Get(r.Context(), middleware.GetSessionID(r.Context()))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.sessionView(session))
}

// Start handles POST /v1/assessments/current/start
func (h *AssessmentHandler) Start(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionSvc.Start(r.Context(), middleware.GetSessionID(r.Context()))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.sessionView(session))
}

// SelectAnswer handles PUT /v1/assessments/current/answer
func (h *AssessmentHandler) SelectAnswer(w http.ResponseWriter, r *http.Request) {
	var req SelectAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.sessionSvc.SelectAnswer(r.Context(), middleware.GetSessionID(r.Context()), req.AnswerIndex)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.sessionView(session))
}

// Next handles POST /v1/assessments/current/next
func (h *AssessmentHandler) Next(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionSvc.NextQuestion(r.Context(), middleware.GetSessionID(r.Context()))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.sessionView(session))
}

// Previous handles POST /v1/assessments/current/previous
func (h *AssessmentHandler) Previous(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionSvc.PreviousQuestion(r.Context(), middleware.GetSessionID(r.Context()))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.sessionView(session))
}

// Submit handles POST /v1/assessments/current/submit
func (h *AssessmentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.sessionSvc.SubmitContact(r.Context(), middleware.GetSessionID(r.Context()), req.Email, req.Name)
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
				"error":  "invalid contact info",
				"fields": vErr.Fields,
			})
			return
		}
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.sessionView(session))
}

// Restart handles POST /v1/assessments/current/restart
func (h *AssessmentHandler) Restart(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionSvc.Restart(r.Context(), middleware.GetSessionID(r.Context()))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.sessionView(session))
}

func (h *AssessmentHandler) sessionView(session *model.Session) *SessionResponse {
	questions := h.sessionSvc.Questions()
	resp := &SessionResponse{
		ID:              session.ID,
		Step:            session.Step,
		CurrentQuestion: session.CurrentQuestion,
		TotalQuestions:  len(questions),
		Result:          session.Result,
		Template:        session.Template,
	}

	answered := 0.0
	if session.Step == model.StepQuestions {
		q := questions[session.CurrentQuestion]
		resp.Question = &q
		if idx, ok := session.Answers[session.CurrentQuestion]; ok {
			selected := idx
			resp.SelectedAnswer = &selected
			answered = 1
		}
		resp.Progress = (float64(session.CurrentQuestion) + answered) / float64(len(questions)) * 100
	}
	if session.Step == model.StepEmail || session.Step == model.StepResults {
		resp.Progress = 100
	}

	return resp
}

func (h *AssessmentHandler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidStep):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidAnswer), errors.Is(err, service.ErrQuestionNotAnswered):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
