package paypal

import "time"

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type amount struct {
	Total    string `json:"total"`
	Currency string `json:"currency"`
}

type paymentTransaction struct {
	Amount      amount `json:"amount"`
	Description string `json:"description,omitempty"`
}

type redirectURLs struct {
	ReturnURL string `json:"return_url"`
	CancelURL string `json:"cancel_url"`
}

type payer struct {
	PaymentMethod string `json:"payment_method"`
}

type createPaymentRequest struct {
	Intent       string               `json:"intent"`
	Payer        payer                `json:"payer"`
	Transactions []paymentTransaction `json:"transactions"`
	RedirectURLs redirectURLs         `json:"redirect_urls"`
}

type executePaymentRequest struct {
	PayerID string `json:"payer_id"`
}

type link struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method"`
}

type payment struct {
	ID            string               `json:"id"`
	State         string               `json:"state"`
	FailureReason string               `json:"failure_reason,omitempty"`
	Transactions  []paymentTransaction `json:"transactions"`
	Links         []link               `json:"links"`
}

// apiError is the error body of the REST API
type apiError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	DebugID string `json:"debug_id"`
}

type cachedToken struct {
	value     string
	expiresAt time.Time
}
