// Package mailer provides the outbound notification capability consumed by
// the deliverable orchestration service. Delivery failures are reported as
// structured results, never panics: a missing mail configuration is a valid
// deployment, not a defect.
package mailer

import (
	"bytes"
	"context"
	"fmt"

	"github.com/eventfold/sponsorpipe/internal/adapter"
)

// Attachment is a named payload attached to an outbound message
type Attachment struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"data"`
}

// Message is one outbound email
type Message struct {
	To          string       `json:"to"`
	Subject     string       `json:"subject"`
	HTML        string       `json:"html"`
	Text        string       `json:"text"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Result is the structured outcome of a send attempt
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Mailer defines the interface for sending notification emails
//
//go:generate mockgen -source=mailer.go -destination=../mocks/mailer.go -package=mocks -mock_names=Mailer=MockMailer
type Mailer interface {
	// Send attempts delivery and reports the outcome. Transport failures
	// are folded into the result; only context cancellation propagates
	// as an error.
	Send(ctx context.Context, msg Message) Result
}

// Config holds mail API client configuration
type Config struct {
	// APIURL is the transactional mail API endpoint
	APIURL string
	// APIKey is the bearer credential for the mail API
	APIKey string
	// From is the sender address stamped on every message
	From string
}

// apiMailer implements Mailer against a transactional mail HTTP API
type apiMailer struct {
	config Config
	http   adapter.HTTPClient
	json   adapter.JSON
}

// NewAPIMailer creates a Mailer backed by a transactional mail HTTP API
func NewAPIMailer(cfg Config, httpClient adapter.HTTPClient, jsonAdapter adapter.JSON) Mailer {
	return &apiMailer{
		config: cfg,
		http:   httpClient,
		json:   jsonAdapter,
	}
}

// apiPayload is the wire shape of the mail API request
type apiPayload struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html,omitempty"`
	Text    string `json:"text,omitempty"`
}

func (m *apiMailer) Send(ctx context.Context, msg Message) Result {
	if msg.To == "" {
		return Result{Success: false, Error: "missing recipient address"}
	}

	payload, err := m.json.Marshal(apiPayload{
		From:    m.config.From,
		To:      msg.To,
		Subject: msg.Subject,
		HTML:    msg.HTML,
		Text:    msg.Text,
	})
	if err != nil {
		return Result{Success: false, Error: fmt.Sprintf("failed to marshal message: %v", err)}
	}

	headers := map[string]string{
		"Content-Type":  "application/json",
		"Authorization": "Bearer " + m.config.APIKey,
	}

	if _, err := m.http.Post(ctx, m.config.APIURL, headers, bytes.NewReader(payload)); err != nil {
		return Result{Success: false, Error: err.Error()}
	}

	return Result{Success: true}
}
