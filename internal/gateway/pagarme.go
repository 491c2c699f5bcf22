package gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jeffleon2/draftea-checkout-service/internal/models/dto"
)

const signaturePrefix = "sha1="

// APIError is returned when the gateway answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("pagarme responded %d: %s", e.StatusCode, e.Body)
}

// PagarmeClient talks to the Pagar.me v1 transactions API.
type PagarmeClient struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

func NewPagarmeClient(baseURL, apiKey string, timeout time.Duration) *PagarmeClient {
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &PagarmeClient{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// GetTransaction fetches the current state of a transaction.
func (c *PagarmeClient) GetTransaction(ctx context.Context, id string) (*dto.Transaction, error) {
	endpoint := fmt.Sprintf("%s/transactions/%s?%s", c.BaseURL, url.PathEscape(id), url.Values{"api_key": {c.APIKey}}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating transaction request: %w", err)
	}

	return c.do(req)
}

// CaptureTransaction settles an authorized transaction for the given amount in cents.
func (c *PagarmeClient) CaptureTransaction(ctx context.Context, id string, amount int64) (*dto.Transaction, error) {
	endpoint := fmt.Sprintf("%s/transactions/%s/capture", c.BaseURL, url.PathEscape(id))

	payload, err := json.Marshal(dto.CaptureRequest{APIKey: c.APIKey, Amount: amount})
	if err != nil {
		return nil, fmt.Errorf("error marshaling capture request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("error creating capture request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

// VerifySignature checks the X-Hub-Signature header sent with postbacks, an
// HMAC-SHA1 of the raw body keyed with the API key.
func (c *PagarmeClient) VerifySignature(body []byte, signature string) bool {
	if !strings.HasPrefix(signature, signaturePrefix) {
		return false
	}
	expected, err := hex.DecodeString(strings.TrimPrefix(signature, signaturePrefix))
	if err != nil {
		return false
	}
	return hmac.Equal(expected, Sign(c.APIKey, body))
}

func Sign(apiKey string, body []byte) []byte {
	mac := hmac.New(sha1.New, []byte(apiKey))
	mac.Write(body)
	return mac.Sum(nil)
}

func (c *PagarmeClient) do(req *http.Request) (*dto.Transaction, error) {
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling pagarme: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading pagarme response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var transaction dto.Transaction
	if err := json.Unmarshal(body, &transaction); err != nil {
		return nil, fmt.Errorf("error parsing pagarme transaction: %w", err)
	}

	return &transaction, nil
}
