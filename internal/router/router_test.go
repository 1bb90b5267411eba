package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"catalog-api/internal/handler"
	"catalog-api/internal/middleware"
	"catalog-api/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// stubService records which operation was routed to it.
type stubService struct {
	called string
}

func (s *stubService) Create(ctx context.Context, input model.ProductInput) (*model.Product, error) {
	s.called = "create"
	return &model.Product{ID: 1, Name: input.Name}, nil
}

func (s *stubService) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	s.called = "list"
	return []model.Product{}, nil
}

func (s *stubService) Update(ctx context.Context, id uint, patch model.ProductPatch) (*model.Product, error) {
	s.called = "update"
	return &model.Product{ID: id}, nil
}

func (s *stubService) Delete(ctx context.Context, id uint) (*model.Product, error) {
	s.called = "delete"
	return &model.Product{ID: id}, nil
}

func TestRouter_Routes(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		apiKey         string
		expectedStatus int
		expectedCall   string
	}{
		{
			name:           "Health check without key",
			method:         http.MethodGet,
			path:           "/health",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Create product",
			method:         http.MethodPost,
			path:           "/products",
			body:           `{"name":"Laptop","price":8500,"stock":10,"category_id":1}`,
			apiKey:         "secret",
			expectedStatus: http.StatusOK,
			expectedCall:   "create",
		},
		{
			name:           "List products",
			method:         http.MethodGet,
			path:           "/products?category=Electronics",
			apiKey:         "secret",
			expectedStatus: http.StatusOK,
			expectedCall:   "list",
		},
		{
			name:           "Update product",
			method:         http.MethodPatch,
			path:           "/products/1",
			body:           `{"stock":3}`,
			apiKey:         "secret",
			expectedStatus: http.StatusOK,
			expectedCall:   "update",
		},
		{
			name:           "Delete product",
			method:         http.MethodDelete,
			path:           "/products/1",
			apiKey:         "secret",
			expectedStatus: http.StatusOK,
			expectedCall:   "delete",
		},
		{
			name:           "Unsupported method",
			method:         http.MethodPut,
			path:           "/products/1",
			apiKey:         "secret",
			expectedStatus: http.StatusMethodNotAllowed,
		},
		{
			name:           "Unknown path",
			method:         http.MethodGet,
			path:           "/orders",
			apiKey:         "secret",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Missing API key",
			method:         http.MethodGet,
			path:           "/products",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{}
			productHandler := handler.NewProductHandler(svc, zerolog.Nop())
			router := New(productHandler, "secret", zerolog.Nop())

			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}
			if tt.apiKey != "" {
				req.Header.Set("X-API-Key", tt.apiKey)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedCall, svc.called)
			assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		})
	}
}
