package usecase

import (
	"strings"
	"testing"

	"github.com/fekuna/inventory-assistant-service/internal/model"
	"github.com/shopspring/decimal"
)

func TestSummarizeStockValue(t *testing.T) {
	products := []model.Product{
		pricedProduct("A", 10, 5),
		pricedProduct("B", 20, 0),
	}

	summary := summarizeStockValue(products)
	if !summary.TotalValue.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("total value = %s, want 50", summary.TotalValue)
	}
	if summary.TotalItems != 5 || summary.TotalProducts != 2 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestHandleStockValueAnswer(t *testing.T) {
	products := []model.Product{
		pricedProduct("A", 10, 5),
		pricedProduct("B", 20, 0),
	}

	res := handleStockValue(products)
	summary, ok := res.Data.(model.StockValueSummary)
	if !ok {
		t.Fatalf("unexpected data type %T", res.Data)
	}
	if !summary.TotalValue.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("total value = %s, want 50", summary.TotalValue)
	}
	if !strings.Contains(res.Answer, "₹50.00") {
		t.Fatalf("answer missing total: %s", res.Answer)
	}
	if !strings.Contains(res.Answer, "₹25.00") {
		t.Fatalf("answer missing average: %s", res.Answer)
	}
	if !strings.Contains(res.Answer, "**Total Products:** 2") {
		t.Fatalf("answer missing product count: %s", res.Answer)
	}
}

func TestHandleStockValueNoProducts(t *testing.T) {
	// Must not attempt the average when there is nothing to divide by.
	res := handleStockValue(nil)
	if res.Answer != "No products in inventory." {
		t.Fatalf("unexpected answer: %s", res.Answer)
	}
}

func TestGroupByCategory(t *testing.T) {
	products := []model.Product{
		withCategory(pricedProduct("A", 10, 2), "Electronics"),
		withCategory(pricedProduct("B", 5, 4), "Grocery"),
		withCategory(pricedProduct("C", 1, 1), "Grocery"),
	}

	groups := groupByCategory(products)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Category != "Grocery" || groups[0].Count != 2 {
		t.Fatalf("expected Grocery first with 2 products: %+v", groups[0])
	}
	if !groups[0].Value.Equal(decimal.NewFromInt(21)) {
		t.Fatalf("grocery value = %s, want 21", groups[0].Value)
	}
	if !groups[1].Value.Equal(decimal.NewFromInt(20)) {
		t.Fatalf("electronics value = %s, want 20", groups[1].Value)
	}
}

func TestHandleCategoryInfoListsEveryCategory(t *testing.T) {
	var products []model.Product
	categories := []string{"A", "B", "C", "D", "E", "F", "G"}
	for _, cat := range categories {
		products = append(products, withCategory(pricedProduct(cat, 1, 1), cat))
	}

	res := handleCategoryInfo(products)
	for _, cat := range categories {
		if !strings.Contains(res.Answer, "**"+cat+"**") {
			t.Fatalf("answer missing category %s: %s", cat, res.Answer)
		}
	}
	if data := res.Data.([]model.CategoryBreakdown); len(data) != len(categories) {
		t.Fatalf("expected full payload, got %d groups", len(data))
	}
}

func TestHandleSupplierInfoDisplayPayloadAsymmetry(t *testing.T) {
	var products []model.Product
	suppliers := []string{"S1", "S2", "S3", "S4", "S5", "S6"}
	for i, sup := range suppliers {
		// Descending product counts so S6 ends up last.
		for j := 0; j <= len(suppliers)-i; j++ {
			p := pricedProduct(sup, 1, 1)
			p.Supplier = sup
			products = append(products, p)
		}
	}

	res := handleSupplierInfo(products)
	data := res.Data.([]model.SupplierBreakdown)
	if len(data) != 6 {
		t.Fatalf("payload must carry all suppliers, got %d", len(data))
	}
	if strings.Contains(res.Answer, "S6") {
		t.Fatalf("answer should show top five only: %s", res.Answer)
	}
	if !strings.Contains(res.Answer, "S5") {
		t.Fatalf("answer missing fifth supplier: %s", res.Answer)
	}
}

func TestFormatHelpers(t *testing.T) {
	if got := formatCurrency(decimal.NewFromFloat(1234567.5)); got != "₹1,234,567.50" {
		t.Fatalf("formatCurrency = %s", got)
	}
	if got := formatCurrency(decimal.NewFromInt(50)); got != "₹50.00" {
		t.Fatalf("formatCurrency = %s", got)
	}
	if got := formatInt(1234567); got != "1,234,567" {
		t.Fatalf("formatInt = %s", got)
	}
	if got := formatInt(999); got != "999" {
		t.Fatalf("formatInt = %s", got)
	}
}

func withCategory(p model.Product, category string) model.Product {
	p.Category = category
	return p
}
