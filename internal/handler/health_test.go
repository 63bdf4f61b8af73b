package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"github.com/tonynagyeurope/news-ai-agent/internal/cache"
)

type downStore struct{}

func (downStore) Get(ctx context.Context, key string) (string, bool, error) {
	return "", false, errors.New("down")
}
func (downStore) SetEx(ctx context.Context, key, value string, ttl time.Duration) error {
	return errors.New("down")
}
func (downStore) Incr(ctx context.Context, key string) (int64, error) { return 0, errors.New("down") }
func (downStore) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return errors.New("down")
}
func (downStore) TTL(ctx context.Context, key string) (time.Duration, bool, error) {
	return 0, false, errors.New("down")
}

func getHealth(store cache.Store) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health", Health(store))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestHealth_NoCache(t *testing.T) {
	w := getHealth(nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "healthy", res["status"])
	assert.Equal(t, "disabled", res["cache"])
}

func TestHealth_CacheConnected(t *testing.T) {
	w := getHealth(newMemStore())

	assert.Equal(t, http.StatusOK, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "connected", res["cache"])
}

func TestHealth_CacheDown(t *testing.T) {
	w := getHealth(downStore{})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "unhealthy", res["status"])
}
