package purchases

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	v1 "github.com/aevon-lab/grocery-tracker/internal/api/v1"
	"github.com/aevon-lab/grocery-tracker/internal/auth"
	httperr "github.com/aevon-lab/grocery-tracker/internal/core/errors"
	"github.com/aevon-lab/grocery-tracker/internal/core/storage"
	"github.com/aevon-lab/grocery-tracker/internal/core/view"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const (
	msgReadBodyFailed  = "Failed to read request body"
	msgInvalidJSON     = "Invalid JSON body"
	msgPersistFailed   = "Failed to persist purchase"
	msgLoadFailed      = "Failed to load purchases"
	msgDuplicate       = "Purchase already exists"
	msgNotFound        = "Purchase not found"
	msgUnauthenticated = "Unauthorized"
)

// purchaseInput is the writable subset of a purchase accepted from clients.
type purchaseInput struct {
	Name   string          `json:"name"`
	Brand  *string         `json:"brand"`
	Store  string          `json:"store"`
	Count  *int            `json:"count"`
	Amount decimal.Decimal `json:"amount"`
	Unit   v1.Unit         `json:"unit"`
	Price  decimal.Decimal `json:"price"`
	Date   v1.Date         `json:"date"`
	IsSale bool            `json:"is_sale"`
}

// apply copies the input onto p. An omitted count means a single item.
func (in purchaseInput) apply(p *v1.Purchase) {
	p.Name = in.Name
	p.Brand = in.Brand
	p.Store = in.Store
	p.Count = 1
	if in.Count != nil {
		p.Count = *in.Count
	}
	p.Amount = in.Amount
	p.Unit = in.Unit
	p.Price = in.Price
	p.Date = in.Date
	p.IsSale = in.IsSale
	p.Normalize()
}

// CreateHandler handles POST /v1/purchases.
func (s *Service) CreateHandler(c *gin.Context) {
	userID, apiErr := requireUser(c)
	if apiErr != nil {
		httperr.Write(c, apiErr)
		return
	}

	in, apiErr := s.parseInput(c)
	if apiErr != nil {
		httperr.Write(c, apiErr)
		return
	}

	p := &v1.Purchase{ID: s.newID(), UserID: userID}
	in.apply(p)
	if apiErr := validatePurchase(p); apiErr != nil {
		httperr.Write(c, apiErr)
		return
	}

	if apiErr := s.persistPurchase(c.Request.Context(), p); apiErr != nil {
		httperr.Write(c, apiErr)
		return
	}

	slog.Info("[Purchases] Created purchase", "purchase_id", p.ID, "user_id", userID)
	c.JSON(http.StatusCreated, p)
}

// ListHandler handles GET /v1/purchases?q=&sort=&view=.
func (s *Service) ListHandler(c *gin.Context) {
	userID, apiErr := requireUser(c)
	if apiErr != nil {
		httperr.Write(c, apiErr)
		return
	}

	sortMode, err := view.ParseSortMode(c.Query("sort"))
	if err != nil {
		httperr.Write(c, httperr.New(http.StatusBadRequest, httperr.HttpInvalidQueryError, err.Error()))
		return
	}
	viewMode, err := view.ParseViewMode(c.Query("view"))
	if err != nil {
		httperr.Write(c, httperr.New(http.StatusBadRequest, httperr.HttpInvalidQueryError, err.Error()))
		return
	}

	records, err := s.store.ListPurchases(c.Request.Context(), userID)
	if err != nil {
		slog.Error("[Purchases] Failed to list purchases", "error", err, "user_id", userID)
		httperr.Write(c, httperr.New(http.StatusInternalServerError, httperr.HttpInternalError, msgLoadFailed))
		return
	}

	c.JSON(http.StatusOK, view.ComputeView(dereference(records), c.Query("q"), sortMode, viewMode))
}

// GetHandler handles GET /v1/purchases/:id.
func (s *Service) GetHandler(c *gin.Context) {
	userID, apiErr := requireUser(c)
	if apiErr != nil {
		httperr.Write(c, apiErr)
		return
	}

	p, apiErr := s.loadPurchase(c.Request.Context(), userID, c.Param("id"))
	if apiErr != nil {
		httperr.Write(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdateHandler handles PUT /v1/purchases/:id. The body replaces every writable field.
func (s *Service) UpdateHandler(c *gin.Context) {
	userID, apiErr := requireUser(c)
	if apiErr != nil {
		httperr.Write(c, apiErr)
		return
	}

	in, apiErr := s.parseInput(c)
	if apiErr != nil {
		httperr.Write(c, apiErr)
		return
	}

	p := &v1.Purchase{ID: c.Param("id"), UserID: userID}
	in.apply(p)
	if apiErr := validatePurchase(p); apiErr != nil {
		httperr.Write(c, apiErr)
		return
	}

	if err := s.store.UpdatePurchase(c.Request.Context(), p); err != nil {
		httperr.Write(c, storeError(err, "update", p.ID))
		return
	}

	slog.Info("[Purchases] Updated purchase", "purchase_id", p.ID, "user_id", userID)
	c.JSON(http.StatusOK, p)
}

// DeleteHandler handles DELETE /v1/purchases/:id.
func (s *Service) DeleteHandler(c *gin.Context) {
	userID, apiErr := requireUser(c)
	if apiErr != nil {
		httperr.Write(c, apiErr)
		return
	}

	id := c.Param("id")
	if err := s.store.DeletePurchase(c.Request.Context(), userID, id); err != nil {
		httperr.Write(c, storeError(err, "delete", id))
		return
	}

	slog.Info("[Purchases] Deleted purchase", "purchase_id", id, "user_id", userID)
	c.Status(http.StatusNoContent)
}

func requireUser(c *gin.Context) (string, *httperr.APIError) {
	userID, ok := auth.UserID(c)
	if !ok {
		return "", httperr.New(http.StatusUnauthorized, httperr.HttpUnauthorizedError, msgUnauthenticated)
	}
	return userID, nil
}

// parseInput reads the size-limited request body and binds it.
func (s *Service) parseInput(c *gin.Context) (*purchaseInput, *httperr.APIError) {
	maxBytes := int64(s.maxBodySizeBytes)
	bodyBytes, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBytes+1)) // +1 to detect oversized requests
	if err != nil {
		slog.Error("[Purchases] Failed to read request body", "error", err)
		return nil, httperr.New(http.StatusInternalServerError, httperr.HttpInternalError, msgReadBodyFailed)
	}

	if int64(len(bodyBytes)) > maxBytes {
		slog.Warn("[Purchases] Request body exceeds maximum size", "size", len(bodyBytes), "max", maxBytes)
		return nil, &httperr.APIError{
			StatusCode: http.StatusRequestEntityTooLarge,
			ErrorType:  httperr.HttpPayloadTooLarge,
			Message:    "Request body exceeds maximum allowed size",
			Details: map[string]interface{}{
				"max_size_mb": maxBytes / (1024 * 1024),
			},
		}
	}

	c.Request.Body = io.NopCloser(bytes.NewReader(bodyBytes))

	var in purchaseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		slog.Warn("[Purchases] Invalid JSON body received", "error", err, "payload_size", len(bodyBytes))
		return nil, &httperr.APIError{
			StatusCode: http.StatusBadRequest,
			ErrorType:  httperr.HttpInvalidJsonError,
			Message:    msgInvalidJSON,
			Details:    err.Error(),
		}
	}
	return &in, nil
}

func validatePurchase(p *v1.Purchase) *httperr.APIError {
	if err := p.Validate(); err != nil {
		slog.Warn("[Purchases] Validation failed", "error", err, "purchase_id", p.ID)
		return httperr.New(http.StatusBadRequest, httperr.HttpValidationError, err.Error())
	}
	return nil
}

func (s *Service) persistPurchase(ctx context.Context, p *v1.Purchase) *httperr.APIError {
	if err := s.store.SavePurchase(ctx, p); err != nil {
		return storeError(err, "save", p.ID)
	}
	return nil
}

func (s *Service) loadPurchase(ctx context.Context, userID, id string) (*v1.Purchase, *httperr.APIError) {
	p, err := s.store.GetPurchase(ctx, userID, id)
	if err != nil {
		return nil, storeError(err, "get", id)
	}
	return p, nil
}

// storeError maps storage sentinels onto HTTP statuses.
func storeError(err error, op, id string) *httperr.APIError {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return httperr.New(http.StatusNotFound, httperr.HttpNotFoundError, msgNotFound)
	case errors.Is(err, storage.ErrDuplicate):
		slog.Info("[Purchases] Duplicate purchase rejected", "purchase_id", id)
		return httperr.New(http.StatusConflict, httperr.HttpDuplicateError, msgDuplicate)
	default:
		slog.Error("[Purchases] Store operation failed", "op", op, "error", err, "purchase_id", id)
		msg := msgPersistFailed
		if op == "get" {
			msg = msgLoadFailed
		}
		return httperr.New(http.StatusInternalServerError, httperr.HttpInternalError, msg)
	}
}

func dereference(records []*v1.Purchase) []v1.Purchase {
	out := make([]v1.Purchase, 0, len(records))
	for _, p := range records {
		if p != nil {
			out = append(out, *p)
		}
	}
	return out
}
