package usecase

import (
	"strings"
	"testing"
	"time"

	"github.com/fekuna/inventory-assistant-service/internal/model"
	"github.com/shopspring/decimal"
)

func TestSummarizeGeneralStats(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	products := []model.Product{
		pricedProduct("A", 10, 5),               // healthy
		product("B", "B1", 2, 5),                // low stock
		product("C", "C1", 0, 5),                // out of stock
	}
	transactions := []model.Transaction{
		// Unlike fastest-moving, IN transactions count here too.
		{Type: model.TransactionIn, Quantity: 5, TransactionDate: "2024-06-14T10:00:00Z"},
		outTx("p1", "A", 2, "2024-06-13T10:00:00Z"),
		outTx("p2", "B", 2, "2024-01-01T10:00:00Z"), // outside window
		outTx("p3", "C", 2, "garbage"),              // skipped
	}

	stats := summarizeGeneralStats(products, transactions, now)
	if stats.totalProducts != 3 || stats.lowStock != 1 || stats.outOfStock != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if !stats.totalValue.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("total value = %s, want 50", stats.totalValue)
	}
	if stats.recentTransactions != 2 {
		t.Fatalf("recent transactions = %d, want 2", stats.recentTransactions)
	}
}

func TestHandleGeneralStatsAnswer(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	res := handleGeneralStats(nil, nil, now)
	if !strings.Contains(res.Answer, "Inventory Overview") {
		t.Fatalf("unexpected answer: %s", res.Answer)
	}
	// The fallback always closes with usage hints for the other intents.
	for _, hint := range []string{"Low stock items", "Best selling products", "Category breakdown", "Supplier information"} {
		if !strings.Contains(res.Answer, hint) {
			t.Fatalf("answer missing hint %q: %s", hint, res.Answer)
		}
	}
	if data := res.Data.(map[string]interface{}); len(data) != 0 {
		t.Fatalf("expected empty data map")
	}
}
