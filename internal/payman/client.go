package payman

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vendorfund-dev/vendorfund/internal/model"
)

// DefaultBaseURL is the production Payman API endpoint.
const DefaultBaseURL = "https://api.paymanai.com"

const (
	authPath = "/v1beta/auth/token"
	sendPath = "/v1beta/payments/send"
)

// Client talks to the Payman payment API. It authenticates with client
// credentials per request batch and submits payments; its responses are
// classified into the three-way PaymentResult by Classify so callers
// never see the provider's wire shape.
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	strict       bool
	http         *http.Client
}

// Options configures a Client.
type Options struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	// Strict requires an explicit success signal in the provider
	// response instead of assuming success when nothing is rejected.
	Strict bool
}

// NewClient creates a Client. An empty BaseURL uses the production API.
func NewClient(opts Options) *Client {
	base := opts.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	return &Client{
		baseURL:      base,
		clientID:     opts.ClientID,
		clientSecret: opts.ClientSecret,
		strict:       opts.Strict,
		http:         &http.Client{Timeout: 30 * time.Second},
	}
}

// Authenticate obtains an access token using client credentials.
func (c *Client) Authenticate(ctx context.Context) (string, error) {
	payload := map[string]string{
		"clientId":     c.clientID,
		"clientSecret": c.clientSecret,
		"grantType":    "client_credentials",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal auth payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+authPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build auth request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("auth request: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("auth failed: status %d, body: %s", resp.StatusCode, respBody)
	}

	var out struct {
		AccessToken string `json:"accessToken"`
	}
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("parse auth response: %w", err)
	}
	if out.AccessToken == "" {
		return "", fmt.Errorf("auth response missing accessToken")
	}
	return out.AccessToken, nil
}

// SubmitPayment sends amount to destination. Transport and auth
// failures come back as OutcomeTransportError; everything else is
// classified from the response body.
func (c *Client) SubmitPayment(ctx context.Context, destination string, amount decimal.Decimal, memo, currency string) model.PaymentResult {
	token, err := c.Authenticate(ctx)
	if err != nil {
		return model.PaymentResult{
			Outcome: model.OutcomeTransportError,
			Reason:  fmt.Sprintf("authenticate: %v", err),
		}
	}

	payload := map[string]any{
		"paymentDestinationId": destination,
		"amountDecimal":        amount,
		"memo":                 memo,
		"currency":             currency,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return model.PaymentResult{
			Outcome: model.OutcomeTransportError,
			Reason:  fmt.Sprintf("marshal payment payload: %v", err),
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+sendPath, bytes.NewReader(body))
	if err != nil {
		return model.PaymentResult{
			Outcome: model.OutcomeTransportError,
			Reason:  fmt.Sprintf("build payment request: %v", err),
		}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return model.PaymentResult{
			Outcome: model.OutcomeTransportError,
			Reason:  fmt.Sprintf("payment request: %v", err),
		}
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return model.PaymentResult{
			Outcome: model.OutcomeRejected,
			Reason:  fmt.Sprintf("status %d: %s", resp.StatusCode, respBody),
			Raw:     respBody,
		}
	}

	return Classify(respBody, c.strict)
}
