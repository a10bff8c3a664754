package responses

import "time"

type StatisticsSummary struct {
	From             time.Time          `json:"from"`
	To               time.Time          `json:"to"`
	BranchID         string             `json:"branch_id,omitempty"`
	Revenue          int64              `json:"revenue"`
	Invoiced         int64              `json:"invoiced"`
	Outstanding      int64              `json:"outstanding"`
	NewPatients      int64              `json:"new_patients"`
	Appointments     map[string]int64   `json:"appointments"`
	RevenueByMethod  map[string]int64   `json:"revenue_by_method"`
	TopTreatments    []TreatmentRevenue `json:"top_treatments"`
	StockValuation   int64              `json:"stock_valuation"`
	LowStockProducts int64              `json:"low_stock_products"`
	GeneratedAt      time.Time          `json:"generated_at"`
}

type TreatmentRevenue struct {
	TreatmentID string `json:"treatment_id"`
	Description string `json:"description"`
	Quantity    int64  `json:"quantity"`
	Revenue     int64  `json:"revenue"`
}
