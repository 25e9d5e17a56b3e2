package usecase

import (
	"strings"

	"github.com/fekuna/inventory-assistant-service/internal/model"
)

// intentRule binds a set of trigger phrases to one intent.
type intentRule struct {
	intent   model.Intent
	triggers []string
}

// intentRules is evaluated top to bottom and the first match wins, so order is
// significant: a question mentioning both categories and suppliers classifies
// as CATEGORY_INFO because that rule is checked first.
var intentRules = []intentRule{
	{model.IntentLowStock, []string{"low stock", "running out", "shortage"}},
	{model.IntentOutOfStock, []string{"out of stock", "no stock"}},
	{model.IntentMostSold, []string{"most sold", "popular", "top selling"}},
	{model.IntentStockValue, []string{"stock value", "total value", "inventory value"}},
	{model.IntentCategoryInfo, []string{"category", "categories"}},
	{model.IntentSupplierInfo, []string{"supplier", "vendor"}},
	{model.IntentFastestMoving, []string{"fastest", "quick", "moving fast"}},
}

// classify maps a question to an intent by case-insensitive substring match.
// Questions matching no rule fall back to GENERAL_STATS.
func classify(question string) model.Intent {
	q := strings.ToLower(question)
	for _, rule := range intentRules {
		for _, trigger := range rule.triggers {
			if strings.Contains(q, trigger) {
				return rule.intent
			}
		}
	}
	return model.IntentGeneralStats
}
