package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jefdiaz/balanceone-api/pkg/apperror"
	"go.uber.org/zap"
)

// Client talks to the function backend that owns the master catalog and
// counterparty data. Every endpoint returns an envelope of the form
// { "data": { "<entity_plural>": [ { "data": {...} }, ... ] } } and
// requires a bearer credential; non-2xx replies carry a JSON error body.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new upstream client
func NewClient(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Supplier is a counterparty row from the upstream suppliers collection
type Supplier struct {
	Name    string `json:"supplier_name"`
	Slug    string `json:"supplier_slug"`
	TIN     string `json:"supplier_tin"`
	Address string `json:"supplier_address,omitempty"`
}

// Branch is a counterparty row from the upstream branches collection
type Branch struct {
	Name    string `json:"branch_name"`
	Slug    string `json:"branch_slug"`
	TIN     string `json:"branch_tin"`
	Address string `json:"branch_address,omitempty"`
}

// Product is a catalog row priced for one counterparty
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unit_price"`
	ImageURL    string  `json:"image_url,omitempty"`
}

// datum is the per-row wrapper used by the upstream collections
type datum[T any] struct {
	Data T `json:"data"`
}

type envelope struct {
	Data  map[string]json.RawMessage `json:"data"`
	Error string                     `json:"error,omitempty"`
}

// GetSuppliers fetches all suppliers from the upstream backend
func (c *Client) GetSuppliers(ctx context.Context) ([]Supplier, error) {
	return fetchList[Supplier](ctx, c, "/suppliers/get-suppliers", nil, "suppliers")
}

// GetBranches fetches all branches from the upstream backend
func (c *Client) GetBranches(ctx context.Context) ([]Branch, error) {
	return fetchList[Branch](ctx, c, "/branches/get-branches", nil, "branches")
}

// GetSupplierProducts fetches the purchasing catalog for one supplier
func (c *Client) GetSupplierProducts(ctx context.Context, supplierSlug string) ([]Product, error) {
	query := url.Values{"supplier_slug": []string{supplierSlug}}
	return fetchList[Product](ctx, c, "/supplier-products/get-supplier-products-by-supplier-slug", query, "supplier_products")
}

// GetBranchProducts fetches the sales catalog for one branch
func (c *Client) GetBranchProducts(ctx context.Context, branchSlug string) ([]Product, error) {
	query := url.Values{"branch_slug": []string{branchSlug}}
	return fetchList[Product](ctx, c, "/branch-products/get-branch-products-by-branch-slug", query, "branch_products")
}

func fetchList[T any](ctx context.Context, c *Client, path string, query url.Values, entity string) ([]T, error) {
	body, err := c.get(ctx, path, query)
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decoding upstream %s response: %w", entity, err)
	}

	raw, ok := env.Data[entity]
	if !ok {
		return []T{}, nil
	}

	var rows []datum[T]
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("decoding upstream %s rows: %w", entity, err)
	}

	out := make([]T, len(rows))
	for i, row := range rows {
		out[i] = row.Data
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u = u + "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading upstream response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("upstream returned non-2xx status",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return nil, apperror.NewUpstreamError(resp.StatusCode, string(body))
	}

	return body, nil
}
