package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/fekuna/inventory-assistant-service/internal/assistant"
	"github.com/fekuna/inventory-assistant-service/internal/assistant/dto"
	"github.com/fekuna/inventory-assistant-service/internal/model"
	"github.com/fekuna/inventory-assistant-service/pkg/logger"
	"go.uber.org/zap"
)

type assistantUseCase struct {
	repo         assistant.Repository
	logger       logger.ZapLogger
	lookbackDays int
	now          func() time.Time
}

func NewAssistantUseCase(repo assistant.Repository, lookbackDays int, log logger.ZapLogger) assistant.UseCase {
	return &assistantUseCase{
		repo:         repo,
		logger:       log,
		lookbackDays: lookbackDays,
		now:          time.Now,
	}
}

// Analyze classifies the question, computes the matching aggregate over a
// fresh snapshot and renders the answer. Stateless per call: nothing is kept
// between invocations, so concurrent queries need no coordination.
func (uc *assistantUseCase) Analyze(ctx context.Context, input *dto.ChatInput) (*model.AnalyticResult, error) {
	products, transactions := uc.fetchSnapshot(ctx)

	switch classify(input.Message) {
	case model.IntentLowStock:
		return handleLowStock(products), nil
	case model.IntentOutOfStock:
		return handleOutOfStock(products), nil
	case model.IntentMostSold:
		return handleMostSold(transactions), nil
	case model.IntentStockValue:
		return handleStockValue(products), nil
	case model.IntentCategoryInfo:
		return handleCategoryInfo(products), nil
	case model.IntentSupplierInfo:
		return handleSupplierInfo(products), nil
	case model.IntentFastestMoving:
		return handleFastestMoving(transactions, uc.now()), nil
	default:
		return handleGeneralStats(products, transactions, uc.now()), nil
	}
}

// fetchSnapshot pulls products and transactions concurrently; the reads are
// independent. Either leg failing degrades to an empty collection so the
// handlers produce "no data" answers instead of an engine fault.
func (uc *assistantUseCase) fetchSnapshot(ctx context.Context) ([]model.Product, []model.Transaction) {
	var (
		wg           sync.WaitGroup
		products     []model.Product
		transactions []model.Transaction
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		res, err := uc.repo.FetchProducts(ctx)
		if err != nil {
			uc.logger.Warn("failed to fetch products, continuing with empty snapshot", zap.Error(err))
			return
		}
		products = res
	}()
	go func() {
		defer wg.Done()
		res, err := uc.repo.FetchTransactions(ctx, uc.lookbackDays)
		if err != nil {
			uc.logger.Warn("failed to fetch transactions, continuing with empty snapshot", zap.Error(err))
			return
		}
		transactions = res
	}()
	wg.Wait()

	return products, transactions
}
