package usecase

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fekuna/inventory-assistant-service/internal/model"
)

// rankMovements sums outbound quantities per referenced product, descending.
// Transactions without a product reference are skipped, as are records with a
// missing or unparseable timestamp when a window is set. since is the
// inclusive window start; the zero time means the whole log. Ties keep
// first-seen order: the appearance order is recorded during the pass and used
// as the secondary key instead of leaning on sort-algorithm stability.
func rankMovements(transactions []model.Transaction, since time.Time) []model.ProductMovement {
	totals := make(map[string]*model.ProductMovement)
	var order []string

	for i := range transactions {
		t := &transactions[i]
		if t.Type != model.TransactionOut || t.Product == nil {
			continue
		}
		if !since.IsZero() {
			ts, ok := t.Time()
			if !ok || ts.Before(since) {
				continue
			}
		}
		m, seen := totals[t.Product.ID]
		if !seen {
			m = &model.ProductMovement{Name: t.Product.Name}
			totals[t.Product.ID] = m
			order = append(order, t.Product.ID)
		}
		m.Quantity += t.Quantity
	}

	ranked := make([]model.ProductMovement, 0, len(order))
	for _, id := range order {
		ranked = append(ranked, *totals[id])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Quantity > ranked[j].Quantity
	})
	return ranked
}

func handleMostSold(transactions []model.Transaction) *model.AnalyticResult {
	if len(transactions) == 0 {
		return &model.AnalyticResult{
			Answer: "No transaction data available yet.",
			Data:   []model.ProductMovement{},
		}
	}

	ranked := rankMovements(transactions, time.Time{})
	if len(ranked) == 0 {
		return &model.AnalyticResult{
			Answer: "No sales recorded yet.",
			Data:   []model.ProductMovement{},
		}
	}

	top := ranked
	if len(top) > 5 {
		top = top[:5]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📈 **Top %d Best-Selling Products:**\n\n", len(top))
	for i, m := range top {
		fmt.Fprintf(&b, "%d. **%s** - Sold: **%d units**\n", i+1, m.Name, m.Quantity)
	}

	return &model.AnalyticResult{Answer: b.String(), Data: top}
}

func handleFastestMoving(transactions []model.Transaction, now time.Time) *model.AnalyticResult {
	if len(transactions) == 0 {
		return &model.AnalyticResult{
			Answer: "No transaction data available.",
			Data:   []model.ProductMovement{},
		}
	}

	ranked := rankMovements(transactions, now.AddDate(0, 0, -7))
	if len(ranked) == 0 {
		return &model.AnalyticResult{
			Answer: "No recent sales in the last 7 days.",
			Data:   []model.ProductMovement{},
		}
	}

	top := ranked
	if len(top) > 3 {
		top = top[:3]
	}

	var b strings.Builder
	b.WriteString("🚀 **Fastest Moving Products (Last 7 Days):**\n\n")
	for i, m := range top {
		fmt.Fprintf(&b, "%d. **%s** - %d units moved\n", i+1, m.Name, m.Quantity)
	}

	return &model.AnalyticResult{Answer: b.String(), Data: top}
}
