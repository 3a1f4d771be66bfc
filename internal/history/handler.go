package history

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	v1 "github.com/aevon-lab/grocery-tracker/internal/api/v1"
	"github.com/aevon-lab/grocery-tracker/internal/auth"
	"github.com/aevon-lab/grocery-tracker/internal/core/daterange"
	httperr "github.com/aevon-lab/grocery-tracker/internal/core/errors"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterRoutes registers the history routes. The router must carry auth.Middleware.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/history", s.HandleQueryHistory)
}

// HandleQueryHistory handles GET /v1/history
// Query parameters: name, brand, store, count, amount, unit, timeframe, offset
func (s *Service) HandleQueryHistory(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		httperr.Write(c, httperr.New(http.StatusUnauthorized, httperr.HttpUnauthorizedError, "Unauthorized"))
		return
	}

	var query struct {
		Name      string `form:"name"`
		Brand     string `form:"brand"`
		Store     string `form:"store"`
		Count     string `form:"count"`
		Amount    string `form:"amount"`
		Unit      string `form:"unit"`
		TimeFrame string `form:"timeframe"`
		Offset    string `form:"offset"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		writeInvalid(c, "Invalid query parameters", err.Error())
		return
	}

	req := QueryRequest{
		UserID:    userID,
		Name:      query.Name,
		Brand:     query.Brand,
		Store:     query.Store,
		Count:     1,
		Unit:      v1.Unit(strings.ToLower(strings.TrimSpace(query.Unit))),
		TimeFrame: daterange.Month,
	}
	if query.TimeFrame != "" {
		req.TimeFrame = daterange.TimeFrame(query.TimeFrame)
	}
	if query.Count != "" {
		n, err := strconv.Atoi(query.Count)
		if err != nil {
			writeInvalid(c, "Invalid history query", "count must be an integer")
			return
		}
		req.Count = n
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(query.Amount))
	if err != nil {
		writeInvalid(c, "Invalid history query", "amount must be a decimal number")
		return
	}
	req.Amount = amount
	if query.Offset != "" {
		n, err := strconv.Atoi(query.Offset)
		if err != nil {
			writeInvalid(c, "Invalid history query", "offset must be an integer")
			return
		}
		req.Offset = &n
	}

	resp, err := s.QueryHistory(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidQuery):
			writeInvalid(c, "Invalid history query", err.Error())
		case errors.Is(err, ErrNoHistory):
			httperr.Write(c, httperr.New(http.StatusNotFound, httperr.HttpNotFoundError, "No purchases found for product"))
		default:
			slog.Error("[History] Failed to query history", "error", err, "user_id", userID)
			httperr.Write(c, httperr.New(http.StatusInternalServerError, httperr.HttpInternalError, "Failed to query history"))
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

func writeInvalid(c *gin.Context, message string, details interface{}) {
	httperr.Write(c, &httperr.APIError{
		StatusCode: http.StatusBadRequest,
		ErrorType:  httperr.HttpInvalidQueryError,
		Message:    message,
		Details:    details,
	})
}
