// Package arvin is the HTTP client for the Arvin chat backend. The backend
// owns all conversational logic including crisis detection; this client only
// carries messages and renders what comes back.
package arvin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/neuropulse/neuropulse/internal/constants"
	"github.com/neuropulse/neuropulse/internal/models"
)

// Sentiment is the backend's read on the user's message.
type Sentiment struct {
	Score float64 `json:"score"`
	Mood  string  `json:"mood"`
}

// Reply is one chat response. When IsCrisis is set the backend has already
// escalated: Message carries the crisis text and Hotlines the contact list,
// and Sentiment/Timestamp are absent.
type Reply struct {
	IsCrisis  bool             `json:"is_crisis"`
	Message   string           `json:"message"`
	Sentiment *Sentiment       `json:"sentiment,omitempty"`
	Hotlines  []models.Hotline `json:"hotlines,omitempty"`
	Timestamp string           `json:"timestamp,omitempty"`
}

// SessionStats reports conversation counters for one user session.
type SessionStats struct {
	UserMessages      int  `json:"user_messages"`
	AssistantMessages int  `json:"assistant_messages"`
	TotalExchanges    int  `json:"total_exchanges"`
	SessionActive     bool `json:"session_active"`
}

// CrisisHotline extends the basic hotline with availability info, as served
// by the resources endpoint.
type CrisisHotline struct {
	Name      string `json:"name"`
	Number    string `json:"number"`
	Country   string `json:"country"`
	Available string `json:"available"`
}

// Resource is one mental health resource listing.
type Resource struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// Resources is the full resources listing.
type Resources struct {
	CrisisHotlines []CrisisHotline `json:"crisis_hotlines"`
	Resources      []Resource      `json:"resources"`
}

// Health is the backend's health check payload.
type Health struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// Client talks to one Arvin backend on behalf of one user id.
type Client struct {
	baseURL string
	userID  string
	httpc   *http.Client
}

// New creates a client. baseURL is the server root without the API prefix;
// empty means the default local backend.
func New(baseURL, userID string) *Client {
	if baseURL == "" {
		baseURL = constants.DefaultArvinURL
	}
	return &Client{
		baseURL: baseURL,
		userID:  userID,
		httpc:   &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *Client) url(endpoint string) string {
	return c.baseURL + constants.ArvinAPIPrefix + endpoint
}

func (c *Client) do(ctx context.Context, method, endpoint string, payload, out any) error {
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(endpoint), body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach chat backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("chat backend error: %s", apiErr.Error)
		}
		return fmt.Errorf("chat backend returned %s", resp.Status)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// Chat sends one message and returns the backend's reply. The is_crisis
// flag on the reply is authoritative.
func (c *Client) Chat(ctx context.Context, message string) (Reply, error) {
	payload := map[string]string{"message": message, "user_id": c.userID}
	var reply Reply
	err := c.do(ctx, http.MethodPost, "/chat", payload, &reply)
	return reply, err
}

// SessionStats returns message counters for this client's session.
func (c *Client) SessionStats(ctx context.Context) (SessionStats, error) {
	payload := map[string]string{"user_id": c.userID}
	var s SessionStats
	err := c.do(ctx, http.MethodPost, "/session-stats", payload, &s)
	return s, err
}

// ClearSession drops the server-side conversation history for this user.
func (c *Client) ClearSession(ctx context.Context) error {
	payload := map[string]string{"user_id": c.userID}
	return c.do(ctx, http.MethodPost, "/clear-session", payload, nil)
}

// Resources fetches the hotline and resource listing.
func (c *Client) Resources(ctx context.Context) (Resources, error) {
	var r Resources
	err := c.do(ctx, http.MethodGet, "/resources", nil, &r)
	return r, err
}

// Health checks that the backend is up.
func (c *Client) Health(ctx context.Context) (Health, error) {
	var h Health
	err := c.do(ctx, http.MethodGet, "/health", nil, &h)
	return h, err
}
