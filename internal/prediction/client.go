// Package prediction implements the client for the external payment
// prediction service.
package prediction

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrUnavailable indicates the prediction service could not produce a
// usable prediction: connection failure, non-2xx response, or a
// malformed response body.
var ErrUnavailable = errors.New("prediction service unavailable")

// Predictor produces a textual payment prediction for an amount and
// due date.
type Predictor interface {
	Predict(ctx context.Context, value float64, dueDate string) (string, error)
}

// Client calls the prediction endpoint over HTTP. It is stateless and
// safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

var _ Predictor = (*Client)(nil)

// NewClient creates a prediction client for the given base URL. A nil
// httpClient falls back to http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// predictRequest mirrors the prediction endpoint's wire schema. The
// amount field is named "valor" by that service's contract.
type predictRequest struct {
	Valor   float64 `json:"valor"`
	DueDate string  `json:"due_date"`
}

type predictResponse struct {
	Prediction *string `json:"prediction"`
}

// Predict posts the (value, due date) pair to the prediction endpoint
// and returns the prediction string. Best effort: no retries, single
// synchronous call.
func (c *Client) Predict(ctx context.Context, value float64, dueDate string) (string, error) {
	body, err := json.Marshal(predictRequest{Valor: value, DueDate: dueDate})
	if err != nil {
		return "", fmt.Errorf("failed to encode prediction request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build prediction request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close() //nolint:errcheck // nothing useful to do with a close error

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	var parsed predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: malformed response body: %v", ErrUnavailable, err)
	}

	if parsed.Prediction == nil {
		return "", fmt.Errorf("%w: response missing prediction field", ErrUnavailable)
	}

	return *parsed.Prediction, nil
}
