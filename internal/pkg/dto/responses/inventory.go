package responses

type LowStockItem struct {
	ProductID string `json:"product_id"`
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	Unit      string `json:"unit"`
	BranchID  string `json:"branch_id"`
	Quantity  int    `json:"quantity"`
	MinStock  int    `json:"min_stock"`
}
