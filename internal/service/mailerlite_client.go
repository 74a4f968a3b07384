package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"overlysocial/internal/model"
)

// MailerLiteClient wraps the MailerLite connect API. Submission is a single
// attempt: no retries, because the caller treats the whole call as
// best-effort and never waits on a second try.
type MailerLiteClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewMailerLiteClient creates a new MailerLite API client.
func NewMailerLiteClient(baseURL, apiKey string) *MailerLiteClient {
	if baseURL == "" {
		baseURL = "https://connect.mailerlite.com/api"
	}
	if apiKey == "" {
		log.Println("Warning: MAILERLITE_API_KEY not set, subscriber sync disabled")
	}

	return &MailerLiteClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// IsConfigured returns true if the API key is set.
func (c *MailerLiteClient) IsConfigured() bool {
	return c.apiKey != ""
}

// AddSubscriber submits a subscriber via POST /subscribers.
func (c *MailerLiteClient) AddSubscriber(subscriber *model.Subscriber) error {
	payload, err := json.Marshal(subscriber)
	if err != nil {
		return fmt.Errorf("failed to marshal subscriber: %w", err)
	}

	url := c.baseURL + "/subscribers"
	log.Printf("[MailerLite] POST /subscribers email=%s groups=%v", subscriber.Email, subscriber.Groups)

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		// MailerLite error payloads carry a message field.
		var apiErr struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("mailerlite API error %d: %s", resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("mailerlite API error %d: %s", resp.StatusCode, string(respBody))
	}

	log.Printf("[MailerLite] subscriber accepted: status=%d", resp.StatusCode)
	return nil
}
