package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Step is the assessment funnel stage.
type Step string

const (
	StepWelcome   Step = "welcome"
	StepQuestions Step = "questions"
	StepEmail     Step = "email"
	StepResults   Step = "results"
)

// UserInfo is the contact info captured on the email step.
type UserInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session is one in-progress assessment. Answers maps question position
// (0-based) to the chosen option index; selecting again for the same
// position overwrites. Result and Template are set once on contact
// submission; Restart clears everything back to a welcome-state session.
type Session struct {
	ID              string            `json:"id"`
	Step            Step              `json:"step"`
	CurrentQuestion int               `json:"currentQuestion"`
	Answers         map[int]int       `json:"answers"`
	UserInfo        *UserInfo         `json:"userInfo,omitempty"`
	Result          *AssessmentResult `json:"result,omitempty"`
	Template        *ResultTemplate   `json:"template,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// SessionClaims are the JWT claims of a session token. The token is a
// handle binding requests to their session, not a user credential.
type SessionClaims struct {
	SessionID string `json:"sessionId"`
	jwt.RegisteredClaims
}
