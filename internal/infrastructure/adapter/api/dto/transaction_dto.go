package dto

import (
	"encoding/json"
	"time"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
)

// CashInRequest funds a wallet. Amount may be sent as a JSON number or string.
type CashInRequest struct {
	Amount json.Number `json:"amount" binding:"required"`
	Method string      `json:"method" binding:"required"`
}

// WithdrawalRequest asks for money to leave a wallet
type WithdrawalRequest struct {
	Amount json.Number `json:"amount" binding:"required"`
	Method string      `json:"method" binding:"required"`
}

// CashInResponse is returned for both synchronous and redirect cash-ins.
// ApprovalURL is only set while the payer still has to approve the payment.
type CashInResponse struct {
	TransactionID uint64 `json:"transactionId"`
	Status        string `json:"status"`
	Amount        string `json:"amount"`
	Method        string `json:"method"`
	Balance       string `json:"balance,omitempty"`
	ApprovalURL   string `json:"approvalUrl,omitempty"`
}

// WithdrawalResponse describes a recorded withdrawal request
type WithdrawalResponse struct {
	TransactionID uint64 `json:"transactionId"`
	Status        string `json:"status"`
	Amount        string `json:"amount"`
	Method        string `json:"method"`
}

// CancelResponse reports how many pending cash-ins were cancelled
type CancelResponse struct {
	Message   string `json:"message"`
	Cancelled int    `json:"cancelled"`
}

// CallbackResponse is returned when a provider payment has been credited
type CallbackResponse struct {
	Message       string `json:"message"`
	TransactionID uint64 `json:"transactionId"`
	Balance       string `json:"balance"`
}

// TransactionDTO is the public shape of a ledger entry
type TransactionDTO struct {
	ID                uint64     `json:"id"`
	AccountID         uint64     `json:"accountId"`
	Type              string     `json:"type"`
	Amount            string     `json:"amount"`
	Method            string     `json:"method"`
	ExternalReference string     `json:"externalReference,omitempty"`
	Status            string     `json:"status"`
	CreatedAt         time.Time  `json:"createdAt"`
	ProcessedAt       *time.Time `json:"processedAt,omitempty"`
	FailureReason     string     `json:"failureReason,omitempty"`
}

// NewTransactionDTO converts a ledger entry
func NewTransactionDTO(t *entity.Transaction) TransactionDTO {
	return TransactionDTO{
		ID:                t.ID,
		AccountID:         t.AccountID,
		Type:              string(t.Type),
		Amount:            t.Amount(),
		Method:            string(t.Method),
		ExternalReference: t.Reference(),
		Status:            string(t.Status),
		CreatedAt:         t.CreatedAt,
		ProcessedAt:       t.ProcessedAt,
		FailureReason:     t.FailureReason,
	}
}

// NewTransactionDTOs converts a list, never returning nil
func NewTransactionDTOs(list []*entity.Transaction) []TransactionDTO {
	out := make([]TransactionDTO, 0, len(list))
	for _, t := range list {
		out = append(out, NewTransactionDTO(t))
	}
	return out
}

// TransactionListResponse wraps a page of transactions
type TransactionListResponse struct {
	Transactions []TransactionDTO `json:"transactions"`
}

// SettlementResponse is a transaction after an operator or provider settled it
type SettlementResponse struct {
	Transaction TransactionDTO `json:"transaction"`
	Balance     string         `json:"balance,omitempty"`
}

// RejectRequest carries the operator's reason; it may be omitted
type RejectRequest struct {
	Reason string `json:"reason"`
}

// BulkRequest names the withdrawals a bulk operator action applies to
type BulkRequest struct {
	TransactionIDs []uint64 `json:"transactionIds" binding:"required,min=1,max=100"`
	Reason         string   `json:"reason"`
}

// BulkResult is the outcome for one transaction of a bulk action
type BulkResult struct {
	TransactionID uint64          `json:"transactionId"`
	Success       bool            `json:"success"`
	Transaction   *TransactionDTO `json:"transaction,omitempty"`
	Error         *ErrorResponse  `json:"error,omitempty"`
}

// BulkResponse summarizes a bulk action
type BulkResponse struct {
	Results   []BulkResult `json:"results"`
	Succeeded int          `json:"succeeded"`
	Failed    int          `json:"failed"`
}
