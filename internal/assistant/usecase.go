package assistant

import (
	"context"

	"github.com/fekuna/inventory-assistant-service/internal/assistant/dto"
	"github.com/fekuna/inventory-assistant-service/internal/model"
)

type UseCase interface {
	// Analyze answers a free-text inventory question. It always returns a
	// well-formed result for non-empty input; data-source failures degrade to
	// "no data" answers instead of surfacing as errors.
	Analyze(ctx context.Context, input *dto.ChatInput) (*model.AnalyticResult, error)
}
