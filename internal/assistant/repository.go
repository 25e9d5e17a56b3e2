package assistant

import (
	"context"

	"github.com/fekuna/inventory-assistant-service/internal/model"
)

// Repository is the pull interface over the inventory backend. Implementations
// read the caller's bearer token from the context and pass it through.
type Repository interface {
	FetchProducts(ctx context.Context) ([]model.Product, error)
	// FetchTransactions returns the transaction log. lookbackDays > 0 bounds
	// the fetch to transactions on or after now minus that many days.
	FetchTransactions(ctx context.Context, lookbackDays int) ([]model.Transaction, error)
}
