// Package authclient talks to the authentication service over HTTP.
package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/port"
)

type validateTokenRequest struct {
	Token string `json:"token"`
}

// Client implements AuthClientPort against the authentication service's
// REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// ValidateToken sends the token for validation and returns its claims.
func (c *Client) ValidateToken(ctx context.Context, token string) (*port.Claims, error) {
	reqBody, err := json.Marshal(validateTokenRequest{Token: token})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal validation request: %w", err)
	}

	url := c.baseURL + "/api/v1/auth/validate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create validation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	traceID := contextkeys.TraceIDFromContext(ctx)
	if traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send validation request to auth service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// 401 means the token itself is bad, not that the call failed.
		if resp.StatusCode == http.StatusUnauthorized {
			return nil, fmt.Errorf("token is invalid or expired")
		}
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("auth service returned non-200 status: %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var claims port.Claims
	if err := json.NewDecoder(resp.Body).Decode(&claims); err != nil {
		return nil, fmt.Errorf("failed to decode validation response: %w", err)
	}

	return &claims, nil
}
