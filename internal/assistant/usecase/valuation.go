package usecase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fekuna/inventory-assistant-service/internal/model"
	"github.com/shopspring/decimal"
)

// summarizeStockValue totals price*quantity and on-hand units over the snapshot.
func summarizeStockValue(products []model.Product) model.StockValueSummary {
	total := decimal.Zero
	items := 0
	for i := range products {
		total = total.Add(products[i].StockValue())
		items += products[i].Quantity
	}
	return model.StockValueSummary{
		TotalValue:    total,
		TotalItems:    items,
		TotalProducts: len(products),
	}
}

// groupByCategory accumulates product count and stock value per category
// label, ordered by count descending.
func groupByCategory(products []model.Product) []model.CategoryBreakdown {
	index := make(map[string]int)
	var groups []model.CategoryBreakdown
	for i := range products {
		p := &products[i]
		j, ok := index[p.Category]
		if !ok {
			j = len(groups)
			index[p.Category] = j
			groups = append(groups, model.CategoryBreakdown{Category: p.Category, Value: decimal.Zero})
		}
		groups[j].Count++
		groups[j].Value = groups[j].Value.Add(p.StockValue())
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Count > groups[j].Count
	})
	return groups
}

// groupBySupplier accumulates product count and stock value per supplier
// label, ordered by count descending.
func groupBySupplier(products []model.Product) []model.SupplierBreakdown {
	index := make(map[string]int)
	var groups []model.SupplierBreakdown
	for i := range products {
		p := &products[i]
		j, ok := index[p.Supplier]
		if !ok {
			j = len(groups)
			index[p.Supplier] = j
			groups = append(groups, model.SupplierBreakdown{Supplier: p.Supplier, StockValue: decimal.Zero})
		}
		groups[j].Products++
		groups[j].StockValue = groups[j].StockValue.Add(p.StockValue())
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Products > groups[j].Products
	})
	return groups
}

func handleStockValue(products []model.Product) *model.AnalyticResult {
	// Guarded up front: the average below divides by the product count.
	if len(products) == 0 {
		return &model.AnalyticResult{
			Answer: "No products in inventory.",
			Data:   []model.Product{},
		}
	}

	summary := summarizeStockValue(products)
	average := summary.TotalValue.Div(decimal.NewFromInt(int64(summary.TotalProducts)))

	var b strings.Builder
	fmt.Fprintf(&b, "💰 **Total Inventory Value:** %s\n\n", formatCurrency(summary.TotalValue))
	fmt.Fprintf(&b, "📦 **Total Items in Stock:** %s\n", formatInt(summary.TotalItems))
	fmt.Fprintf(&b, "📊 **Total Products:** %d\n", summary.TotalProducts)
	fmt.Fprintf(&b, "📈 **Average Value per Product:** %s", formatCurrency(average))

	return &model.AnalyticResult{Answer: b.String(), Data: summary}
}

func handleCategoryInfo(products []model.Product) *model.AnalyticResult {
	groups := groupByCategory(products)

	var b strings.Builder
	b.WriteString("📁 **Inventory by Category:**\n\n")
	for _, g := range groups {
		fmt.Fprintf(&b, "• **%s**: %d products | Value: %s\n", g.Category, g.Count, formatCurrency(g.Value))
	}

	// Every category is reported; no truncation here.
	return &model.AnalyticResult{Answer: b.String(), Data: groups}
}

func handleSupplierInfo(products []model.Product) *model.AnalyticResult {
	groups := groupBySupplier(products)

	top := groups
	if len(top) > 5 {
		top = top[:5]
	}

	var b strings.Builder
	b.WriteString("🏢 **Suppliers Overview:**\n\n")
	for i, g := range top {
		fmt.Fprintf(&b, "%d. **%s**\n", i+1, g.Supplier)
		fmt.Fprintf(&b, "   - Products: %d | Value: %s\n\n", g.Products, formatCurrency(g.StockValue))
	}

	// The answer shows the top five; the payload carries the full list.
	return &model.AnalyticResult{Answer: b.String(), Data: groups}
}
