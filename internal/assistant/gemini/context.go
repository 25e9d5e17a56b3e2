package gemini

import (
	"fmt"
	"strings"

	"github.com/fekuna/inventory-assistant-service/internal/model"
	"github.com/shopspring/decimal"
)

// buildInventoryContext renders the full snapshot into the grounding block
// sent ahead of every question: summary statistics, the complete product list
// with stock status, low/out-of-stock sections and the last 100 transactions.
func buildInventoryContext(products []model.Product, transactions []model.Transaction) string {
	totalValue := decimal.Zero
	var lowStock, outOfStock []model.Product
	categoryCounts := make(map[string]int)
	var categoryOrder []string

	for i := range products {
		p := &products[i]
		totalValue = totalValue.Add(p.StockValue())
		if p.IsLowStock() {
			lowStock = append(lowStock, *p)
		}
		if p.IsOutOfStock() {
			outOfStock = append(outOfStock, *p)
		}
		if _, seen := categoryCounts[p.Category]; !seen {
			categoryOrder = append(categoryOrder, p.Category)
		}
		categoryCounts[p.Category]++
	}

	categories := make([]string, 0, len(categoryOrder))
	for _, cat := range categoryOrder {
		categories = append(categories, fmt.Sprintf("%s (%d)", cat, categoryCounts[cat]))
	}

	var b strings.Builder
	b.WriteString("\n=== COMPLETE INVENTORY DATABASE ===\n\n")
	b.WriteString("SUMMARY STATISTICS:\n")
	fmt.Fprintf(&b, "- Total Products: %d\n", len(products))
	fmt.Fprintf(&b, "- Total Stock Value: ₹%s\n", totalValue.StringFixed(2))
	fmt.Fprintf(&b, "- Low Stock Items: %d\n", len(lowStock))
	fmt.Fprintf(&b, "- Out of Stock Items: %d\n", len(outOfStock))
	fmt.Fprintf(&b, "- Categories: %s\n", strings.Join(categories, ", "))

	b.WriteString("\n=== ALL PRODUCTS (Complete List) ===\n")
	for i := range products {
		p := &products[i]
		status := "IN STOCK"
		switch {
		case p.IsOutOfStock():
			status = "OUT OF STOCK"
		case p.Quantity <= p.ReorderLevel:
			status = "LOW STOCK"
		}
		fmt.Fprintf(&b, "- %s (SKU: %s)\n", p.Name, p.SKU)
		fmt.Fprintf(&b, "  Category: %s, Price: ₹%s, Current Stock: %d, Reorder Level: %d, Status: %s\n",
			p.Category, p.Price.StringFixed(2), p.Quantity, p.ReorderLevel, status)
	}

	b.WriteString("\n=== LOW STOCK ALERTS ===\n")
	if len(lowStock) == 0 {
		b.WriteString("None\n")
	}
	for i := range lowStock {
		p := &lowStock[i]
		fmt.Fprintf(&b, "- %s: Current %d units (Reorder at: %d)\n", p.Name, p.Quantity, p.ReorderLevel)
	}

	b.WriteString("\n=== OUT OF STOCK ITEMS ===\n")
	if len(outOfStock) == 0 {
		b.WriteString("None\n")
	}
	for i := range outOfStock {
		fmt.Fprintf(&b, "- %s (SKU: %s)\n", outOfStock[i].Name, outOfStock[i].SKU)
	}

	recent := transactions
	if len(recent) > 100 {
		recent = recent[:100]
	}
	fmt.Fprintf(&b, "\n=== RECENT TRANSACTIONS (Last %d) ===\n", len(recent))
	if len(transactions) == 0 {
		b.WriteString("No transactions recorded yet\n")
	}
	for i := range recent {
		b.WriteString(formatTransactionLine(&recent[i]))
		b.WriteString("\n")
	}

	b.WriteString(`
IMPORTANT INSTRUCTIONS:
- When user asks about a product, search through ALL products listed above
- Product names are case-insensitive (e.g., "iphone 15 pro" matches "iPhone 15 Pro")
- When user asks for recent transactions, count from the transaction list above
- You can perform calculations and analysis on any product or transaction data
- Always provide specific numbers and product names from the data above
- If user asks to add stock or perform transactions, politely explain they should use the "Perform Transaction" button in the product details page
`)

	return b.String()
}

func formatTransactionLine(t *model.Transaction) string {
	dateStr := "Unknown date"
	if ts, ok := t.Time(); ok {
		dateStr = ts.Format("2006-01-02 15:04")
	}

	productName := "Unknown"
	if t.Product != nil && t.Product.Name != "" {
		productName = t.Product.Name
	}
	performedBy := "Unknown"
	if t.PerformedBy != nil && t.PerformedBy.Name != "" {
		performedBy = t.PerformedBy.Name
	}

	line := fmt.Sprintf("- %s: %s %d units of %s by %s", dateStr, t.Type, t.Quantity, productName, performedBy)
	if t.Notes != "" {
		line += fmt.Sprintf(" (Notes: %s)", t.Notes)
	}
	return line
}
