// Package payment talks to the Razorpay subscriptions API.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/techconnect-india/backend/internal/domain"
)

const defaultBaseURL = "https://api.razorpay.com/v1"

// billingCycles is the number of cycles a subscription is created for.
const billingCycles = 12

// Subscription is the gateway-side record returned on create and fetch.
type Subscription struct {
	ID       string
	Status   string
	ShortURL string
}

// Client calls the Razorpay REST API with basic auth credentials.
type Client struct {
	baseURL    string
	keyID      string
	keySecret  string
	httpClient *http.Client
	log        *slog.Logger
}

// New creates a Client against the production Razorpay endpoint.
func New(keyID, keySecret string, logger *slog.Logger) *Client {
	return NewWithURL(defaultBaseURL, keyID, keySecret, logger)
}

// NewWithURL creates a Client with a custom base URL (for testing).
func NewWithURL(baseURL, keyID, keySecret string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		keyID:      keyID,
		keySecret:  keySecret,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "payment"),
	}
}

type createRequest struct {
	PlanID         string            `json:"plan_id"`
	CustomerNotify int               `json:"customer_notify"`
	Quantity       int               `json:"quantity"`
	TotalCount     int               `json:"total_count"`
	Notes          map[string]string `json:"notes"`
}

type subscriptionResponse struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	ShortURL string `json:"short_url"`
}

// CreateSubscription opens a subscription for the plan and returns the
// gateway record, including the hosted payment link the user completes
// checkout on.
func (c *Client) CreateSubscription(ctx context.Context, email string, plan domain.Plan) (*Subscription, error) {
	payload := createRequest{
		PlanID:         plan.ID.String(),
		CustomerNotify: 1,
		Quantity:       1,
		TotalCount:     billingCycles,
		Notes: map[string]string{
			"user_email": email,
			"plan_name":  plan.Name,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("payment: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/subscriptions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("payment: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.keyID, c.keySecret)

	sub, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}

	c.log.InfoContext(ctx, "subscription created",
		slog.String("subscription_id", sub.ID),
		slog.String("plan", plan.ID.String()),
	)

	return sub, nil
}

// FetchSubscription returns the current gateway state of a subscription.
func (c *Client) FetchSubscription(ctx context.Context, subscriptionID string) (*Subscription, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/subscriptions/"+subscriptionID, nil)
	if err != nil {
		return nil, fmt.Errorf("payment: create request: %w", err)
	}
	req.SetBasicAuth(c.keyID, c.keySecret)

	return c.do(ctx, req)
}

// do executes the request with a single retry on 5xx or network errors
// and decodes the subscription body.
func (c *Client) do(ctx context.Context, req *http.Request) (*Subscription, error) {
	resp, err := c.doWithRetry(ctx, req)
	if err != nil {
		c.log.ErrorContext(ctx, "payment request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("payment: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("payment: subscription: %w", domain.ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("payment: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("payment: read body: %w", err)
	}

	var sr subscriptionResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("payment: decode json: %w", err)
	}

	return &Subscription{ID: sr.ID, Status: sr.Status, ShortURL: sr.ShortURL}, nil
}

func (c *Client) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	// Requests with a body need it rewound before the second attempt.
	var bodyCopy []byte
	if req.Body != nil {
		var err error
		bodyCopy, err = io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
		req.Body = io.NopCloser(bytes.NewReader(bodyCopy))
	}

	resp, err := c.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.WarnContext(ctx, "payment retry", slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	if bodyCopy != nil {
		req.Body = io.NopCloser(bytes.NewReader(bodyCopy))
	}
	resp, err = c.httpClient.Do(req)
	return resp, err
}
