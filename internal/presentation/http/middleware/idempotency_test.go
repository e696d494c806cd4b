package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jefdiaz/balanceone-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIdempotencyRepo struct {
	keys map[string]*entity.IdempotencyKey
}

func newFakeIdempotencyRepo() *fakeIdempotencyRepo {
	return &fakeIdempotencyRepo{keys: make(map[string]*entity.IdempotencyKey)}
}

func (r *fakeIdempotencyRepo) GetByKey(ctx context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error) {
	k, ok := r.keys[key+":"+userID.String()]
	if !ok {
		return nil, nil
	}
	return k, nil
}

func (r *fakeIdempotencyRepo) Create(ctx context.Context, key *entity.IdempotencyKey) error {
	r.keys[key.Key+":"+key.UserID.String()] = key
	return nil
}

func (r *fakeIdempotencyRepo) DeleteExpired(ctx context.Context) error {
	return nil
}

func setupIdempotencyRouter(repo *fakeIdempotencyRepo, userID uuid.UUID, calls *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
	})
	router.Use(Idempotency(repo))
	router.POST("/checkout", func(c *gin.Context) {
		*calls++
		c.JSON(201, gin.H{"records": *calls})
	})
	return router
}

func TestIdempotencyReplaysRecordedResponse(t *testing.T) {
	repo := newFakeIdempotencyRepo()
	userID := uuid.New()
	calls := 0
	router := setupIdempotencyRouter(repo, userID, &calls)

	first := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
	req.Header.Set(IdempotencyKeyHeader, "abc-123")
	router.ServeHTTP(first, req)

	require.Equal(t, 201, first.Code)
	require.Equal(t, 1, calls)

	// Same key again: handler must not run a second time
	second := httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/checkout", nil)
	req.Header.Set(IdempotencyKeyHeader, "abc-123")
	router.ServeHTTP(second, req)

	assert.Equal(t, 201, second.Code)
	assert.Equal(t, 1, calls)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, "true", second.Header().Get("X-Idempotency-Replayed"))
}

func TestIdempotencyDistinctKeysRunSeparately(t *testing.T) {
	repo := newFakeIdempotencyRepo()
	userID := uuid.New()
	calls := 0
	router := setupIdempotencyRouter(repo, userID, &calls)

	for _, key := range []string{"key-1", "key-2"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
		req.Header.Set(IdempotencyKeyHeader, key)
		router.ServeHTTP(w, req)
	}

	assert.Equal(t, 2, calls)
}

func TestIdempotencyWithoutHeaderPassesThrough(t *testing.T) {
	repo := newFakeIdempotencyRepo()
	userID := uuid.New()
	calls := 0
	router := setupIdempotencyRouter(repo, userID, &calls)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/checkout", nil))
	}

	assert.Equal(t, 2, calls)
	assert.Empty(t, repo.keys)
}
