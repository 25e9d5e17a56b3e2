package model

import "github.com/shopspring/decimal"

// Product is one entry of the inventory snapshot served by the backend's
// /products endpoint. The assistant only ever reads it: quantities and reorder
// levels are maintained by the backend, and a fresh copy is fetched per query.
type Product struct {
	ID           string          `json:"_id"`
	ProductID    string          `json:"productId"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	Category     string          `json:"category"`
	Supplier     string          `json:"supplier"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity"`
	ReorderLevel int             `json:"reorderLevel"`
	Description  string          `json:"description"`
	IsActive     bool            `json:"isActive"`
}

// StockValue is price multiplied by the on-hand quantity.
func (p *Product) StockValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// IsLowStock reports whether the product is below its reorder level but not
// fully depleted. Depleted products belong to IsOutOfStock, never both.
func (p *Product) IsLowStock() bool {
	return p.Quantity > 0 && p.Quantity <= p.ReorderLevel
}

// IsOutOfStock reports whether the product has no stock left at all.
func (p *Product) IsOutOfStock() bool {
	return p.Quantity == 0
}
