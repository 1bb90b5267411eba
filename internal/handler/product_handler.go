package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"catalog-api/internal/model"
	"catalog-api/internal/service"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// Create handles POST /products requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input model.ProductInput
	if err := decodeJSON(w, r, &input); err != nil {
		h.writeDecodeError(w, r, err)
		return
	}

	product, err := h.service.Create(r.Context(), input)
	if err != nil {
		h.writeServiceError(w, r, err, "failed to create product")
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// List handles GET /products requests with optional category and price filters.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r.URL.Query())
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidQuery, err.Error(), h.logger)
		return
	}

	products, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.writeServiceError(w, r, err, "failed to retrieve products")
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// Update handles PATCH /products/{id} requests.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var patch model.ProductPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		h.writeDecodeError(w, r, err)
		return
	}

	product, err := h.service.Update(r.Context(), id, patch)
	if err != nil {
		h.writeServiceError(w, r, err, "failed to update product")
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Delete handles DELETE /products/{id} requests.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	product, err := h.service.Delete(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err, "failed to delete product")
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// pathID extracts the numeric {id} path value, writing a 400 when it is not
// a positive integer.
func (h *ProductHandler) pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := r.PathValue("id")

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidID, fmt.Sprintf("invalid product ID: %q", raw), h.logger)
		return 0, false
	}

	return uint(id), true
}

// writeDecodeError answers 400 for a body that is not JSON and 500 for JSON
// that does not fit a product row, the same status a rejected insert gets.
func (h *ProductHandler) writeDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, errFieldMismatch) {
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInvalidProduct, err.Error(), h.logger)
		return
	}
	writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body: "+err.Error(), h.logger)
}

// writeServiceError maps service errors onto responses. Every failure past
// decoding answers 500, a missing row included; the error code tells them
// apart.
func (h *ProductHandler) writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		writeError(w, r, http.StatusInternalServerError, domainErr.Code, domainErr.Message, h.logger)
		return
	}

	writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, fallback, h.logger)
}

// parseFilter builds a product filter from query parameters. Absent or empty
// parameters leave the corresponding field unset.
func parseFilter(q url.Values) (model.ProductFilter, error) {
	var filter model.ProductFilter

	if category := q.Get("category"); category != "" {
		filter.Category = &category
	}

	minPrice, err := parsePrice(q, "minPrice")
	if err != nil {
		return filter, err
	}
	filter.MinPrice = minPrice

	maxPrice, err := parsePrice(q, "maxPrice")
	if err != nil {
		return filter, err
	}
	filter.MaxPrice = maxPrice

	return filter, nil
}

func parsePrice(q url.Values, key string) (*decimal.Decimal, error) {
	raw := q.Get(key)
	if raw == "" {
		return nil, nil
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s parameter: %q is not a number", key, raw)
	}

	return &value, nil
}
