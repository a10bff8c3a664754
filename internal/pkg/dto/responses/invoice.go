package responses

type PaymentResult struct {
	InvoiceID       string `json:"invoice_id"`
	Status          string `json:"status"`
	AmountApplied   int64  `json:"amount_applied"`
	CreditDeposited int64  `json:"credit_deposited"`
	CreditUsed      int64  `json:"credit_used"`
	Balance         int64  `json:"balance"`
	CreditBalance   int64  `json:"credit_balance"`
}
