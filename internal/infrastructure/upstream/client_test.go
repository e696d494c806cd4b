package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jefdiaz/balanceone-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, "test-key", 5*time.Second, zap.NewNop())
}

func TestClientGetSuppliers(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/suppliers/get-suppliers", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"data": {
				"suppliers": [
					{"data": {"supplier_name": "Acme Corp", "supplier_slug": "acme-corp", "supplier_tin": "123-456-789"}},
					{"data": {"supplier_name": "Globex", "supplier_slug": "globex", "supplier_tin": "987-654-321"}}
				]
			}
		}`))
	})

	suppliers, err := client.GetSuppliers(context.Background())
	require.NoError(t, err)
	require.Len(t, suppliers, 2)
	assert.Equal(t, "Acme Corp", suppliers[0].Name)
	assert.Equal(t, "acme-corp", suppliers[0].Slug)
	assert.Equal(t, "987-654-321", suppliers[1].TIN)
}

func TestClientGetSupplierProducts(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "acme-corp", r.URL.Query().Get("supplier_slug"))

		w.Write([]byte(`{
			"data": {
				"supplier_products": [
					{"data": {"id": "p1", "name": "Widget", "unit": "pcs", "unit_price": 10.5}}
				]
			}
		}`))
	})

	products, err := client.GetSupplierProducts(context.Background(), "acme-corp")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Widget", products[0].Name)
	assert.Equal(t, 10.5, products[0].UnitPrice)
}

func TestClientGetBranches(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"branches": [{"data": {"branch_name": "Main Branch", "branch_slug": "main-branch", "branch_tin": "111"}}]}}`))
	})

	branches, err := client.GetBranches(context.Background())
	require.NoError(t, err)
	require.Len(t, branches, 1)
	assert.Equal(t, "main-branch", branches[0].Slug)
}

func TestClientMissingCollectionYieldsEmptyList(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {}}`))
	})

	suppliers, err := client.GetSuppliers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, suppliers)
}

func TestClientSurfacesUpstreamErrors(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error": "invalid api key"}`))
	})

	_, err := client.GetSuppliers(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid api key")
	assert.Contains(t, err.Error(), "403")

	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusBadGateway, appErr.Code)
}

func TestClientMalformedEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})

	_, err := client.GetSuppliers(context.Background())
	assert.Error(t, err)
}
