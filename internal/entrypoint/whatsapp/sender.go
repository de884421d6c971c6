// Package whatsapp serves direct conversations through an HTTP webhook
// and a wasender-shaped outbound message API.
package whatsapp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Sender delivers one outbound message to a phone number.
type Sender interface {
	Send(number, message string) error
}

// Client posts messages to the configured send-message endpoint with a
// bearer key.
type Client struct {
	url    string
	apiKey string
	http   *http.Client
}

func NewClient(url, apiKey string) *Client {
	return &Client{
		url:    url,
		apiKey: apiKey,
		http:   &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) Send(number, message string) error {
	payload, err := json.Marshal(map[string]any{
		"to":   number,
		"text": message,
	})
	if err != nil {
		return fmt.Errorf("encoding message: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.url, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sending to %s: %w", number, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("sending to %s: unexpected status %s", number, resp.Status)
	}
	return nil
}
