package frontend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-notes-ai/internal/logger"
)

// APIClient forwards credential submissions to the backend API as JSON.
type APIClient struct {
	baseURL string
	client  *http.Client
}

// NewAPIClient creates a client for the backend at baseURL.
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// Register submits a registration and returns the backend's status code.
func (c *APIClient) Register(ctx context.Context, username, password string) (int, error) {
	resp, err := c.postJSON(ctx, "/register", credentialsRequest{Username: username, Password: password})
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	return resp.StatusCode, nil
}

// Login submits credentials and returns the backend's status code plus the
// authenticated user id on success.
func (c *APIClient) Login(ctx context.Context, username, password string) (int, string, error) {
	resp, err := c.postJSON(ctx, "/login", credentialsRequest{Username: username, Password: password})
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode, "", nil
	}

	var body loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return resp.StatusCode, "", fmt.Errorf("decode login response: %w", err)
	}

	return resp.StatusCode, body.UserID, nil
}

func (c *APIClient) postJSON(ctx context.Context, path string, payload any) (*http.Response, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Log.Errorw("backend request failed", "path", path, "error", err)
		return nil, err
	}

	return resp, nil
}
