package gemini

import (
	"context"
	"sync"
	"time"

	"github.com/fekuna/inventory-assistant-service/config"
	"github.com/fekuna/inventory-assistant-service/internal/assistant"
	"github.com/fekuna/inventory-assistant-service/internal/assistant/dto"
	"github.com/fekuna/inventory-assistant-service/internal/model"
	"github.com/fekuna/inventory-assistant-service/pkg/logger"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

const systemPrompt = `You are an intelligent inventory management assistant.
You help users manage their inventory by providing insights, analytics, and recommendations.
You have access to COMPLETE real-time inventory data including ALL products, stock levels, transactions, and suppliers.

When answering:
- Be concise and direct
- Use emojis to make responses friendly
- Provide actionable insights
- Format numbers clearly (use commas for thousands)
- When suggesting actions, be specific
- Always search through ALL products data provided
- If user asks about a specific product, search by name (case-insensitive)
- If user asks for recent transactions, provide the exact number requested
- When user asks to add/modify stock, explain they should use the transaction feature in the UI

Your tone should be professional yet friendly, like a helpful colleague.`

const fallbackAnswer = "I apologize, but I encountered an error processing your request. Please try rephrasing your question."

// Engine answers questions through the Gemini API, grounding the model with
// the full inventory snapshot on every exchange. It implements
// assistant.UseCase as an alternative to the rule engine.
type Engine struct {
	repo         assistant.Repository
	client       *genai.Client
	model        string
	lookbackDays int
	logger       logger.ZapLogger
	now          func() time.Time
}

func NewEngine(ctx context.Context, cfg *config.GeminiConfig, repo assistant.Repository, lookbackDays int, log logger.ZapLogger) (*Engine, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	return &Engine{
		repo:         repo,
		client:       client,
		model:        cfg.Model,
		lookbackDays: lookbackDays,
		logger:       log,
		now:          time.Now,
	}, nil
}

// Analyze sends the inventory context, trailing conversation history and the
// user's question to Gemini. Any API failure degrades to an apologetic
// fallback answer; the chat endpoint never errors because the model did.
func (e *Engine) Analyze(ctx context.Context, input *dto.ChatInput) (*model.AnalyticResult, error) {
	products, transactions := e.fetchSnapshot(ctx)
	inventoryContext := buildInventoryContext(products, transactions)

	contents := []*genai.Content{
		genai.NewContentFromText(systemPrompt, genai.RoleUser),
		genai.NewContentFromText("I understand. I'm your inventory management assistant with access to COMPLETE real-time data. How can I help you today?", genai.RoleModel),
		genai.NewContentFromText("Here's the COMPLETE inventory database:\n"+inventoryContext, genai.RoleUser),
		genai.NewContentFromText("I've received the complete inventory data including all products and transactions. I can now answer any question about your inventory. What would you like to know?", genai.RoleModel),
	}

	history := input.History
	if len(history) > 6 {
		history = history[len(history)-6:]
	}
	for _, turn := range history {
		role := genai.Role(genai.RoleUser)
		if turn.Role == "assistant" {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Content, role))
	}

	contents = append(contents, genai.NewContentFromText(input.Message, genai.RoleUser))

	resp, err := e.client.Models.GenerateContent(ctx, e.model, contents, nil)
	if err != nil {
		e.logger.Error("gemini generate failed", zap.Error(err))
		return &model.AnalyticResult{
			Answer: fallbackAnswer,
			Data:   map[string]interface{}{},
		}, nil
	}

	return &model.AnalyticResult{
		Answer: resp.Text(),
		Data:   map[string]interface{}{},
	}, nil
}

func (e *Engine) fetchSnapshot(ctx context.Context) ([]model.Product, []model.Transaction) {
	var (
		wg           sync.WaitGroup
		products     []model.Product
		transactions []model.Transaction
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		res, err := e.repo.FetchProducts(ctx)
		if err != nil {
			e.logger.Warn("failed to fetch products for gemini context", zap.Error(err))
			return
		}
		products = res
	}()
	go func() {
		defer wg.Done()
		res, err := e.repo.FetchTransactions(ctx, e.lookbackDays)
		if err != nil {
			e.logger.Warn("failed to fetch transactions for gemini context", zap.Error(err))
			return
		}
		transactions = res
	}()
	wg.Wait()

	return products, transactions
}
