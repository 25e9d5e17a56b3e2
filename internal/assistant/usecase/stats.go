package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/fekuna/inventory-assistant-service/internal/model"
	"github.com/shopspring/decimal"
)

type generalStats struct {
	totalProducts      int
	lowStock           int
	outOfStock         int
	totalValue         decimal.Decimal
	recentTransactions int
}

// summarizeGeneralStats computes the overview counters in one pass over each
// collection. The recent-transaction count covers the trailing 7 days and
// deliberately includes both IN and OUT movements, unlike the fastest-moving
// window which is OUT-only. Records without a parseable timestamp are skipped.
func summarizeGeneralStats(products []model.Product, transactions []model.Transaction, now time.Time) generalStats {
	stats := generalStats{
		totalProducts: len(products),
		totalValue:    decimal.Zero,
	}
	for i := range products {
		p := &products[i]
		if p.IsLowStock() {
			stats.lowStock++
		}
		if p.IsOutOfStock() {
			stats.outOfStock++
		}
		stats.totalValue = stats.totalValue.Add(p.StockValue())
	}

	cutoff := now.AddDate(0, 0, -7)
	for i := range transactions {
		if ts, ok := transactions[i].Time(); ok && !ts.Before(cutoff) {
			stats.recentTransactions++
		}
	}
	return stats
}

func handleGeneralStats(products []model.Product, transactions []model.Transaction, now time.Time) *model.AnalyticResult {
	stats := summarizeGeneralStats(products, transactions, now)

	var b strings.Builder
	b.WriteString("📊 **Inventory Overview:**\n\n")
	fmt.Fprintf(&b, "• **Total Products:** %d\n", stats.totalProducts)
	fmt.Fprintf(&b, "• **Low Stock Items:** %d\n", stats.lowStock)
	fmt.Fprintf(&b, "• **Out of Stock:** %d\n", stats.outOfStock)
	fmt.Fprintf(&b, "• **Total Value:** %s\n", formatCurrency(stats.totalValue))
	fmt.Fprintf(&b, "• **Recent Transactions (7 days):** %d\n\n", stats.recentTransactions)
	b.WriteString("💡 Ask me about:\n")
	b.WriteString("- Low stock items\n")
	b.WriteString("- Best selling products\n")
	b.WriteString("- Category breakdown\n")
	b.WriteString("- Supplier information")

	return &model.AnalyticResult{Answer: b.String(), Data: map[string]interface{}{}}
}
