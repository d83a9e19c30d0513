// Package paypal implements the redirect payment flow on the PayPal REST v1
// payments API.
package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/gateway"
)

const (
	SandboxBaseURL = "https://api-m.sandbox.paypal.com"
	LiveBaseURL    = "https://api-m.paypal.com"

	DefaultTimeout = 10 * time.Second

	// AccountIDPlaceholder in the cancel URL is replaced with the paying account
	AccountIDPlaceholder = "{accountId}"

	// tokens are refreshed this long before PayPal expires them
	tokenExpirySkew = time.Minute
	maxErrorBody    = 64 << 10
)

// names of API errors that mean the payer or PayPal refused the payment
var declinedErrors = map[string]bool{
	"INSTRUMENT_DECLINED":                true,
	"PAYMENT_NOT_APPROVED_FOR_EXECUTION": true,
	"PAYER_CANNOT_PAY":                   true,
	"TRANSACTION_REFUSED":                true,
	"PAYMENT_EXPIRED":                    true,
	"PAYMENT_DENIED":                     true,
}

// Config holds the client settings
type Config struct {
	Mode         string
	BaseURL      string
	ClientID     string
	ClientSecret string
	ReturnURL    string
	CancelURL    string
	Timeout      time.Duration
}

// RequestError is a non-2xx answer from the API
type RequestError struct {
	StatusCode int
	Name       string
	Message    string
	DebugID    string
}

func (e *RequestError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("paypal: unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("paypal: %s (status %d): %s", e.Name, e.StatusCode, e.Message)
}

// Client is a RedirectGateway talking to PayPal
type Client struct {
	config       Config
	baseURL      string
	httpClient   *http.Client
	timeProvider coreport.TimeProvider
	logger       coreport.Logger

	mu    sync.Mutex
	token *cachedToken
}

var _ gateway.RedirectGateway = (*Client)(nil)

// NewClient creates a PayPal client. A nil httpClient uses a client bounded by
// config.Timeout.
func NewClient(config Config, httpClient *http.Client, timeProvider coreport.TimeProvider, logger coreport.Logger) *Client {
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.Timeout}
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = SandboxBaseURL
		if strings.EqualFold(config.Mode, "live") {
			baseURL = LiveBaseURL
		}
	}

	return &Client{
		config:       config,
		baseURL:      strings.TrimRight(baseURL, "/"),
		httpClient:   httpClient,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Initiate creates a sale payment and returns the URL the payer approves it at
func (c *Client) Initiate(ctx context.Context, req gateway.InitiateRequest) (*gateway.Approval, error) {
	body := createPaymentRequest{
		Intent: "sale",
		Payer:  payer{PaymentMethod: "paypal"},
		Transactions: []paymentTransaction{{
			Amount:      amount{Total: entity.FormatCents(req.AmountInCents), Currency: req.Currency},
			Description: req.Description,
		}},
		RedirectURLs: redirectURLs{
			ReturnURL: c.config.ReturnURL,
			CancelURL: strings.ReplaceAll(c.config.CancelURL, AccountIDPlaceholder, strconv.FormatUint(req.AccountID, 10)),
		},
	}

	var created payment
	if err := c.do(ctx, http.MethodPost, "/v1/payments/payment", body, &created); err != nil {
		return nil, err
	}

	approvalURL := ""
	for _, l := range created.Links {
		if l.Rel == "approval_url" {
			approvalURL = l.Href
			break
		}
	}
	if created.ID == "" || approvalURL == "" {
		return nil, errors.New("paypal: created payment has no id or approval link")
	}

	c.logger.Info("PayPal payment created", map[string]any{
		"payment_id": created.ID,
		"account_id": req.AccountID,
		"amount":     body.Transactions[0].Amount.Total,
		"currency":   req.Currency,
	})
	return &gateway.Approval{PaymentID: created.ID, ApprovalURL: approvalURL}, nil
}

// Execute captures a payment the payer approved
func (c *Client) Execute(ctx context.Context, paymentID, payerID string) (*gateway.ExecuteResult, error) {
	var executed payment
	path := "/v1/payments/payment/" + url.PathEscape(paymentID) + "/execute"
	if err := c.do(ctx, http.MethodPost, path, executePaymentRequest{PayerID: payerID}, &executed); err != nil {
		return nil, err
	}

	if executed.State != "approved" {
		return nil, fmt.Errorf("%w: payment %s is %s %s", errs.ErrPaymentDeclined, paymentID, executed.State, executed.FailureReason)
	}

	cents, currency, err := totalOf(executed)
	if err != nil {
		return nil, err
	}
	return &gateway.ExecuteResult{PaymentID: paymentID, AmountInCents: cents, Currency: currency}, nil
}

// Find looks a payment up
func (c *Client) Find(ctx context.Context, paymentID string) (*gateway.PaymentRecord, error) {
	var found payment
	if err := c.do(ctx, http.MethodGet, "/v1/payments/payment/"+url.PathEscape(paymentID), nil, &found); err != nil {
		return nil, err
	}

	record := &gateway.PaymentRecord{PaymentID: paymentID, State: paymentState(found.State)}
	if cents, currency, err := totalOf(found); err == nil {
		record.AmountInCents, record.Currency = cents, currency
	}
	return record, nil
}

func paymentState(state string) gateway.PaymentState {
	switch state {
	case "approved":
		return gateway.PaymentApproved
	case "created":
		return gateway.PaymentCreated
	default:
		return gateway.PaymentFailed
	}
}

func totalOf(p payment) (int64, string, error) {
	if len(p.Transactions) == 0 {
		return 0, "", fmt.Errorf("paypal: payment %s has no transactions", p.ID)
	}
	a := p.Transactions[0].Amount
	cents, err := entity.ParseAmount(a.Total)
	if err != nil {
		return 0, "", fmt.Errorf("paypal: payment %s total %q: %w", p.ID, a.Total, err)
	}
	return cents, a.Currency, nil
}

// do sends an authenticated JSON request. An expired token is refreshed once.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	var payload []byte
	if in != nil {
		var err error
		if payload, err = json.Marshal(in); err != nil {
			return fmt.Errorf("paypal: encode request: %w", err)
		}
	}

	for attempt := 0; ; attempt++ {
		token, err := c.accessToken(ctx)
		if err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("paypal: build request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Accept", "application/json")
		if in != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		start := c.timeProvider.Now()
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("paypal: %s %s: %w", method, path, err)
		}

		c.logger.Debug("PayPal API call", map[string]any{
			"method":      method,
			"path":        path,
			"status":      resp.StatusCode,
			"duration_ms": c.timeProvider.Since(start).Std().Milliseconds(),
			"debug_id":    resp.Header.Get("Paypal-Debug-Id"),
		})

		if resp.StatusCode == http.StatusUnauthorized && attempt == 0 {
			drain(resp)
			c.invalidateToken()
			continue
		}
		return decodeResponse(resp, out)
	}
}

func decodeResponse(resp *http.Response, out any) error {
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		reqErr := &RequestError{StatusCode: resp.StatusCode}
		var body apiError
		if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&body); err == nil {
			reqErr.Name, reqErr.Message, reqErr.DebugID = body.Name, body.Message, body.DebugID
		}

		switch {
		case resp.StatusCode == http.StatusNotFound || reqErr.Name == "INVALID_RESOURCE_ID":
			return fmt.Errorf("%w: %w", errs.ErrPaymentNotFound, reqErr)
		case declinedErrors[reqErr.Name]:
			return fmt.Errorf("%w: %w", errs.ErrPaymentDeclined, reqErr)
		default:
			return reqErr
		}
	}

	if out == nil {
		drain(resp)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("paypal: decode response: %w", err)
	}
	return nil
}

// accessToken returns a cached OAuth2 token, fetching a new one when it is
// missing or about to expire
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.timeProvider.Now()
	if c.token != nil && now.Before(c.token.expiresAt) {
		return c.token.value, nil
	}

	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("paypal: build token request: %w", err)
	}
	req.SetBasicAuth(c.config.ClientID, c.config.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("paypal: token request: %w", err)
	}

	var body tokenResponse
	if err := decodeResponse(resp, &body); err != nil {
		return "", fmt.Errorf("paypal: authenticate: %w", err)
	}
	if body.AccessToken == "" {
		return "", errors.New("paypal: token response has no access token")
	}

	lifetime := time.Duration(body.ExpiresIn)*time.Second - tokenExpirySkew
	c.token = &cachedToken{value: body.AccessToken, expiresAt: now.Add(lifetime)}
	return body.AccessToken, nil
}

func (c *Client) invalidateToken() {
	c.mu.Lock()
	c.token = nil
	c.mu.Unlock()
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
	_ = resp.Body.Close()
}
