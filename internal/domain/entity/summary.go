package entity

// Summary is the read model behind the account summary endpoint
type Summary struct {
	AccountID          uint64
	BalanceInCents     int64
	TotalCashInCents   int64
	TotalWithdrawCents int64
	Recent             []*Transaction
}

// Balance returns the balance formatted with two decimal places
func (s *Summary) Balance() string {
	return FormatCents(s.BalanceInCents)
}

// TotalDeposited returns completed cash-ins formatted with two decimal places
func (s *Summary) TotalDeposited() string {
	return FormatCents(s.TotalCashInCents)
}

// TotalWithdrawn returns completed withdrawals formatted with two decimal places
func (s *Summary) TotalWithdrawn() string {
	return FormatCents(s.TotalWithdrawCents)
}
