package dto

import "github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"

// BalanceResponse represents the API response for an account's balance
type BalanceResponse struct {
	AccountID uint64 `json:"accountId"`
	Balance   string `json:"balance"`
}

// SummaryResponse is the account summary
type SummaryResponse struct {
	AccountID          uint64           `json:"accountId"`
	Balance            string           `json:"balance"`
	TotalDeposited     string           `json:"totalDeposited"`
	TotalWithdrawn     string           `json:"totalWithdrawn"`
	RecentTransactions []TransactionDTO `json:"recentTransactions"`
}

// NewSummaryResponse converts the summary read model
func NewSummaryResponse(s *entity.Summary) SummaryResponse {
	return SummaryResponse{
		AccountID:          s.AccountID,
		Balance:            s.Balance(),
		TotalDeposited:     s.TotalDeposited(),
		TotalWithdrawn:     s.TotalWithdrawn(),
		RecentTransactions: NewTransactionDTOs(s.Recent),
	}
}

// HealthResponse reports whether the service can reach its ledger store
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Time     string `json:"time"`
}
