package expo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	cfgpkg "github.com/lumenshop/beacon/pkg/config"
)

// MaxBatchSize is Expo's documented per-request message cap.
const MaxBatchSize = 100

// Message is one push message in Expo's wire format.
type Message struct {
	To    string            `json:"to"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Sound string            `json:"sound,omitempty"`
	Data  map[string]string `json:"data,omitempty"`
}

// Ticket is Expo's per-message receipt.
type Ticket struct {
	Status  string `json:"status"`
	ID      string `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
}

func (t Ticket) OK() bool { return t.Status == "ok" }

type sendResponse struct {
	Data   []Ticket `json:"data"`
	Errors []struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

// IsPushToken reports whether token looks like an Expo push token. Anything
// else is skipped rather than sent.
func IsPushToken(token string) bool {
	return (strings.HasPrefix(token, "ExponentPushToken[") || strings.HasPrefix(token, "ExpoPushToken[")) &&
		strings.HasSuffix(token, "]")
}

// Client talks to the Expo push HTTP API.
type Client struct {
	httpClient  *http.Client
	url         string
	accessToken string
}

func NewClient(cfg *cfgpkg.Config) *Client {
	return &Client{
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		url:         cfg.Expo.APIURL,
		accessToken: cfg.Expo.AccessToken,
	}
}

// Send delivers one batch of at most MaxBatchSize messages and returns one
// ticket per message, in order.
func (c *Client) Send(ctx context.Context, messages []Message) ([]Ticket, error) {
	if len(messages) == 0 {
		return nil, nil
	}
	if len(messages) > MaxBatchSize {
		return nil, fmt.Errorf("batch of %d exceeds expo limit %d", len(messages), MaxBatchSize)
	}

	body, err := json.Marshal(messages)
	if err != nil {
		return nil, fmt.Errorf("failed to encode messages: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("expo request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read expo response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("expo returned status %d: %s", resp.StatusCode, string(raw))
	}

	var out sendResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode expo response: %w", err)
	}
	if len(out.Errors) > 0 {
		return nil, fmt.Errorf("expo error: %s: %s", out.Errors[0].Code, out.Errors[0].Message)
	}
	return out.Data, nil
}
