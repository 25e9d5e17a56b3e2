package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fekuna/inventory-assistant-service/config"
	"github.com/fekuna/inventory-assistant-service/internal/auth"
	"github.com/fekuna/inventory-assistant-service/internal/model"
)

// envelope is the backend's standard response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// BackendRepository fetches snapshots from the Node inventory backend over
// REST. It never caches: every call hits the backend.
type BackendRepository struct {
	baseURL string
	client  *http.Client
}

func NewBackendRepository(cfg *config.BackendConfig) *BackendRepository {
	return &BackendRepository{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

func (r *BackendRepository) FetchProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := r.getJSON(ctx, "/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *BackendRepository) FetchTransactions(ctx context.Context, lookbackDays int) ([]model.Transaction, error) {
	params := url.Values{}
	if lookbackDays > 0 {
		start := time.Now().AddDate(0, 0, -lookbackDays).Format("2006-01-02")
		params.Set("startDate", start)
	}

	var transactions []model.Transaction
	if err := r.getJSON(ctx, "/transactions", params, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

func (r *BackendRepository) getJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	endpoint := r.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	if token := auth.GetToken(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("backend returned status %d for %s", resp.StatusCode, path)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	if !env.Success {
		return fmt.Errorf("backend rejected %s: %s", path, env.Message)
	}
	if len(env.Data) == 0 {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}
