package model

import "github.com/shopspring/decimal"

// Intent is the classified analytical category of a user question.
type Intent string

const (
	IntentLowStock      Intent = "LOW_STOCK"
	IntentOutOfStock    Intent = "OUT_OF_STOCK"
	IntentMostSold      Intent = "MOST_SOLD"
	IntentStockValue    Intent = "STOCK_VALUE"
	IntentCategoryInfo  Intent = "CATEGORY_INFO"
	IntentSupplierInfo  Intent = "SUPPLIER_INFO"
	IntentFastestMoving Intent = "FASTEST_MOVING"
	IntentGeneralStats  Intent = "GENERAL_STATS"
)

// AnalyticResult is the only value the engine produces. Answer is the
// human-facing report (markdown emphasis and emoji markers are part of the
// contract); Data is the intent-specific payload and must be consumable
// without parsing Answer.
type AnalyticResult struct {
	Answer string      `json:"answer"`
	Data   interface{} `json:"data"`
}

// ProductMovement is one ranked entry of a sales/velocity aggregation:
// a product and the summed units moved out.
type ProductMovement struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// StockValueSummary is the STOCK_VALUE payload.
type StockValueSummary struct {
	TotalValue    decimal.Decimal `json:"total_value"`
	TotalItems    int             `json:"total_items"`
	TotalProducts int             `json:"total_products"`
}

// CategoryBreakdown is one group of the CATEGORY_INFO payload, ordered by
// product count descending.
type CategoryBreakdown struct {
	Category string          `json:"category"`
	Count    int             `json:"count"`
	Value    decimal.Decimal `json:"value"`
}

// SupplierBreakdown is one group of the SUPPLIER_INFO payload, ordered by
// product count descending. The answer text shows the top five only, but the
// payload always carries the full list.
type SupplierBreakdown struct {
	Supplier   string          `json:"supplier"`
	Products   int             `json:"products"`
	StockValue decimal.Decimal `json:"stock_value"`
}
