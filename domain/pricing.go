package domain

type (
	PricedItem struct {
		MenuItemID uint    `json:"menu_item_id"`
		Quantity   int     `json:"quantity"`
		TotalPrice float64 `json:"total_price"`
	}

	PricingResult struct {
		LineItems []PricedItem `json:"line_items"`
		Total     float64      `json:"total"`
	}
)
