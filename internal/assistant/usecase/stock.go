package usecase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fekuna/inventory-assistant-service/internal/model"
)

// filterLowStock returns products with 0 < quantity <= reorderLevel, most
// urgent first. Fully depleted products are excluded; they are a distinct
// intent.
func filterLowStock(products []model.Product) []model.Product {
	var low []model.Product
	for i := range products {
		if products[i].IsLowStock() {
			low = append(low, products[i])
		}
	}
	sort.SliceStable(low, func(i, j int) bool {
		return low[i].Quantity < low[j].Quantity
	})
	return low
}

// filterOutOfStock returns products with zero quantity in snapshot order.
func filterOutOfStock(products []model.Product) []model.Product {
	var out []model.Product
	for i := range products {
		if products[i].IsOutOfStock() {
			out = append(out, products[i])
		}
	}
	return out
}

func handleLowStock(products []model.Product) *model.AnalyticResult {
	low := filterLowStock(products)
	if len(low) == 0 {
		return &model.AnalyticResult{
			Answer: "Great news! No products are currently at low stock levels. All inventory is well maintained.",
			Data:   []model.Product{},
		}
	}

	top := low
	if len(top) > 5 {
		top = top[:5]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "⚠️ **%d products** are running low on stock:\n\n", len(low))
	for i, p := range top {
		fmt.Fprintf(&b, "%d. **%s** (SKU: %s)\n", i+1, p.Name, p.SKU)
		fmt.Fprintf(&b, "   - Current Stock: **%d** | Reorder Level: %d\n\n", p.Quantity, p.ReorderLevel)
	}
	if len(low) > 5 {
		fmt.Fprintf(&b, "...and %d more items.\n\n", len(low)-5)
	}
	b.WriteString("💡 **Recommendation:** Place orders soon to avoid stockouts!")

	return &model.AnalyticResult{Answer: b.String(), Data: top}
}

func handleOutOfStock(products []model.Product) *model.AnalyticResult {
	out := filterOutOfStock(products)
	if len(out) == 0 {
		return &model.AnalyticResult{
			Answer: "✅ Excellent! No products are out of stock. Your inventory is fully stocked.",
			Data:   []model.Product{},
		}
	}

	top := out
	if len(top) > 5 {
		top = top[:5]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "❌ **%d products** are currently out of stock:\n\n", len(out))
	for i, p := range top {
		fmt.Fprintf(&b, "%d. **%s** (SKU: %s)\n", i+1, p.Name, p.SKU)
		fmt.Fprintf(&b, "   - Supplier: %s\n\n", p.Supplier)
	}
	b.WriteString("🚨 **Action Required:** Reorder these items immediately!")

	return &model.AnalyticResult{Answer: b.String(), Data: top}
}
