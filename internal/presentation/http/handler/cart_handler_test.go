package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jefdiaz/balanceone-api/internal/application/service"
	"github.com/jefdiaz/balanceone-api/internal/domain/entity"
	"github.com/jefdiaz/balanceone-api/internal/infrastructure/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubProductRepo serves products from a map, enough catalog for
// routing requests through the real handler and service.
type stubProductRepo struct {
	products map[uuid.UUID]*entity.Product
}

func (r *stubProductRepo) Create(ctx context.Context, product *entity.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *stubProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *stubProductRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	var out []entity.Product
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductRepo) ListBySupplierSlug(ctx context.Context, slug string) ([]entity.Product, error) {
	return nil, nil
}

func (r *stubProductRepo) ListByBranchSlug(ctx context.Context, slug string) ([]entity.Product, error) {
	return nil, nil
}

func (r *stubProductRepo) Update(ctx context.Context, product *entity.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *stubProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

type cartBody struct {
	Data struct {
		Items []entity.LineItem `json:"items"`
	} `json:"data"`
}

func setupCartRouter(userID uuid.UUID, products ...*entity.Product) *gin.Engine {
	gin.SetMode(gin.TestMode)

	repo := &stubProductRepo{products: make(map[uuid.UUID]*entity.Product)}
	for _, p := range products {
		repo.products[p.ID] = p
	}

	cartService := service.NewCartService(kvstore.NewMemoryStore(), repo, zap.NewNop())
	h := NewCartHandler(cartService)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
	})

	cart := router.Group("/cart/:kind")
	cart.GET("", h.Get)
	cart.POST("/items", h.AddItem)
	cart.PUT("/items/:item_id", h.UpdateItem)

	return router
}

func cartRequest(router *gin.Engine, method, path string, payload any) (*httptest.ResponseRecorder, cartBody) {
	var buf bytes.Buffer
	if payload != nil {
		_ = json.NewEncoder(&buf).Encode(payload)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var body cartBody
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestCartHandlerUpdateItemQuantityCoercedToOne(t *testing.T) {
	acme := &entity.Supplier{ID: uuid.New(), Name: "Acme", Slug: "acme"}
	widget := &entity.Product{
		ID:         uuid.New(),
		Name:       "Widget",
		Unit:       "pcs",
		UnitPrice:  10.0,
		SupplierID: &acme.ID,
		Supplier:   acme,
	}
	router := setupCartRouter(uuid.New(), widget)

	w, body := cartRequest(router, http.MethodPost, "/cart/purchase/items",
		gin.H{"product_id": widget.ID.String(), "quantity": 3})
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, body.Data.Items, 1)
	itemID := body.Data.Items[0].ID

	for _, qty := range []int{0, -5} {
		t.Run(fmt.Sprintf("quantity %d", qty), func(t *testing.T) {
			w, body := cartRequest(router, http.MethodPut,
				"/cart/purchase/items/"+itemID.String(), gin.H{"quantity": qty})
			require.Equal(t, http.StatusOK, w.Code)
			require.Len(t, body.Data.Items, 1)
			assert.Equal(t, 1, body.Data.Items[0].Quantity)
			assert.Equal(t, 10.0, body.Data.Items[0].TotalPrice)
		})
	}
}

func TestCartHandlerUpdateUnknownItem(t *testing.T) {
	router := setupCartRouter(uuid.New())

	w, _ := cartRequest(router, http.MethodPut,
		"/cart/purchase/items/"+uuid.New().String(), gin.H{"quantity": 2})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
