package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ecommerce-backend/internal/config"
	"ecommerce-backend/internal/handlers"
)

// MockCollectionLister is a mock implementation of handlers.CollectionLister.
type MockCollectionLister struct {
	mock.Mock
}

func (m *MockCollectionLister) CollectionNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func setupHealthRouter(store handlers.CollectionLister, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := handlers.NewHealthHandler(store, cfg)
	router.GET("/", h.Root)
	router.GET("/api/hello", h.Hello)
	router.GET("/test", h.TestDatabase)
	return router
}

func TestRoot(t *testing.T) {
	router := setupHealthRouter(nil, &config.Config{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"E-Commerce Backend is running"}`, w.Body.String())
}

func TestHello(t *testing.T) {
	router := setupHealthRouter(nil, &config.Config{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/hello", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Hello from the backend API!"}`, w.Body.String())
}

func TestTestDatabase_NoStore(t *testing.T) {
	router := setupHealthRouter(nil, &config.Config{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	// The diagnostic endpoint always answers 200 and reports failures as
	// data.
	assert.Equal(t, http.StatusOK, w.Code)

	var report map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, "✅ Running", report["backend"])
	assert.Equal(t, "❌ Not Available", report["database"])
	assert.Equal(t, "Not Connected", report["connection_status"])
	assert.Equal(t, "❌ Not Set", report["database_url"])
	assert.Equal(t, "❌ Not Set", report["database_name"])
	assert.Empty(t, report["collections"])
}

func TestTestDatabase_EnvConfiguredButUnreachable(t *testing.T) {
	router := setupHealthRouter(nil, &config.Config{
		DatabaseURL:  "mongodb://localhost:27017",
		DatabaseName: "ecommerce",
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var report map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, "✅ Set", report["database_url"])
	assert.Equal(t, "✅ Set", report["database_name"])
	assert.Equal(t, "❌ Not Available", report["database"])
}

func TestTestDatabase_Connected(t *testing.T) {
	store := new(MockCollectionLister)
	store.On("CollectionNames", mock.Anything).Return([]string{"product"}, nil).Once()

	router := setupHealthRouter(store, &config.Config{
		DatabaseURL:  "mongodb://localhost:27017",
		DatabaseName: "ecommerce",
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var report map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, "✅ Connected & Working", report["database"])
	assert.Equal(t, "Connected", report["connection_status"])
	assert.Equal(t, []interface{}{"product"}, report["collections"])
	store.AssertExpectations(t)
}

func TestTestDatabase_CollectionsCappedAtTen(t *testing.T) {
	names := make([]string, 12)
	for i := range names {
		names[i] = fmt.Sprintf("collection_%d", i)
	}

	store := new(MockCollectionLister)
	store.On("CollectionNames", mock.Anything).Return(names, nil).Once()

	router := setupHealthRouter(store, &config.Config{DatabaseURL: "mongodb://localhost:27017"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	var report map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Len(t, report["collections"], 10)
}

func TestTestDatabase_ListError(t *testing.T) {
	longErr := strings.Repeat("x", 80)
	store := new(MockCollectionLister)
	store.On("CollectionNames", mock.Anything).Return(nil, errors.New(longErr)).Once()

	router := setupHealthRouter(store, &config.Config{DatabaseURL: "mongodb://localhost:27017"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	// The endpoint still answers 200; the error is reported as data,
	// truncated to 50 characters.
	assert.Equal(t, http.StatusOK, w.Code)

	var report map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, "⚠️ Connected but Error: "+strings.Repeat("x", 50), report["database"])
	assert.Equal(t, "Connected", report["connection_status"])
	assert.Empty(t, report["collections"])
	store.AssertExpectations(t)
}

func TestTestDatabase_ListErrorMultibyteTruncation(t *testing.T) {
	// 49 ASCII chars followed by multibyte runes; the cut must not split
	// a rune.
	longErr := strings.Repeat("x", 49) + "日本語エラー"
	store := new(MockCollectionLister)
	store.On("CollectionNames", mock.Anything).Return(nil, errors.New(longErr)).Once()

	router := setupHealthRouter(store, &config.Config{DatabaseURL: "mongodb://localhost:27017"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	var report map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))

	database, ok := report["database"].(string)
	require.True(t, ok)
	assert.Equal(t, "⚠️ Connected but Error: "+strings.Repeat("x", 49)+"日", database)
	assert.True(t, utf8.ValidString(database))
}
