package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fekuna/inventory-assistant-service/config"
	"github.com/fekuna/inventory-assistant-service/internal/assistant/dto"
	"github.com/fekuna/inventory-assistant-service/internal/assistant/handler"
	"github.com/fekuna/inventory-assistant-service/internal/auth"
	"github.com/fekuna/inventory-assistant-service/internal/model"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type stubUseCase struct {
	lastToken string
}

func (s *stubUseCase) Analyze(ctx context.Context, input *dto.ChatInput) (*model.AnalyticResult, error) {
	s.lastToken = auth.GetToken(ctx)
	return &model.AnalyticResult{
		Answer: "stub answer for: " + input.Message,
		Data:   []model.ProductMovement{},
	}, nil
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, fields ...zap.Field) {}
func (nopLogger) Info(msg string, fields ...zap.Field)  {}
func (nopLogger) Warn(msg string, fields ...zap.Field)  {}
func (nopLogger) Error(msg string, fields ...zap.Field) {}
func (nopLogger) Fatal(msg string, fields ...zap.Field) {}
func (nopLogger) Sync() error                           { return nil }

func setupTestRouter(t *testing.T) (*gin.Engine, *stubUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	uc := &stubUseCase{}
	h := handler.NewAssistantHandler(uc, nopLogger{})
	cfg := &config.ServerConfig{
		AppEnv:      "test",
		CORSOrigins: []string{"http://localhost:5173"},
	}
	return SetupRoutes(cfg, h), uc
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "healthy") {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
}

func TestChatRequiresToken(t *testing.T) {
	router, _ := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"low stock"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	router, _ := setupTestRouter(t)

	for _, body := range []string{`{}`, `{"message":"   "}`} {
		req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer tok")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, rr.Code)
		}
	}
}

func TestChatSuccess(t *testing.T) {
	router, uc := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"low stock"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer tok123")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp dto.ChatResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if resp.Answer != "stub answer for: low stock" {
		t.Fatalf("unexpected answer: %s", resp.Answer)
	}
	if resp.RequestID == "" {
		t.Fatalf("expected request id")
	}
	if uc.lastToken != "tok123" {
		t.Fatalf("token not propagated to usecase context, got %q", uc.lastToken)
	}
}

func TestCORSPreflight(t *testing.T) {
	router, _ := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/chat", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204 preflight, got %d", rr.Code)
	}
	if rr.Header().Get("Access-Control-Allow-Origin") != "http://localhost:5173" {
		t.Fatalf("missing CORS allow-origin header")
	}

	// Unknown origins get no CORS headers.
	req = httptest.NewRequest(http.MethodOptions, "/chat", nil)
	req.Header.Set("Origin", "http://evil.example")
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Fatalf("unexpected CORS header for unknown origin")
	}
}
