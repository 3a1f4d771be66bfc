package receipt

import (
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	v1 "github.com/aevon-lab/grocery-tracker/internal/api/v1"
	"github.com/aevon-lab/grocery-tracker/internal/auth"
	httperr "github.com/aevon-lab/grocery-tracker/internal/core/errors"
	"github.com/gin-gonic/gin"
)

const imageField = "image"

type scanResponse struct {
	Results []ScanResult `json:"results"`
}

// RegisterRoutes registers the receipt routes. The router must carry auth.Middleware.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.POST("/v1/receipts/scan", s.ScanHandler)
}

// ScanHandler handles POST /v1/receipts/scan with one or more multipart "image" parts.
// Optional "store" and "date" form fields override what the analyzer reads.
func (s *Service) ScanHandler(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		httperr.Write(c, httperr.New(http.StatusUnauthorized, httperr.HttpUnauthorizedError, "Unauthorized"))
		return
	}

	commit, err := parseCommit(c.Query("commit"))
	if err != nil {
		httperr.Write(c, httperr.New(http.StatusBadRequest, httperr.HttpInvalidQueryError, err.Error()))
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		slog.Warn("[Receipts] Invalid multipart body", "error", err)
		httperr.Write(c, httperr.New(http.StatusBadRequest, httperr.HttpValidationError, "Expected multipart/form-data with image fields"))
		return
	}

	ov, apiErr := parseOverrides(form)
	if apiErr != nil {
		httperr.Write(c, apiErr)
		return
	}

	images, apiErr := s.readImages(form.File[imageField])
	if apiErr != nil {
		httperr.Write(c, apiErr)
		return
	}

	results, err := s.Scan(c.Request.Context(), userID, images, ov, commit)
	if err != nil {
		if errors.Is(err, ErrAnalyze) {
			httperr.Write(c, httperr.New(http.StatusUnprocessableEntity, httperr.HttpReceiptAnalyzeError, "Could not read receipt"))
			return
		}
		slog.Error("[Receipts] Scan failed", "error", err, "user_id", userID)
		httperr.Write(c, httperr.New(http.StatusInternalServerError, httperr.HttpInternalError, "Failed to store scanned purchases"))
		return
	}

	status := http.StatusOK
	if commit {
		status = http.StatusCreated
	}
	c.JSON(status, scanResponse{Results: results})
}

func parseCommit(raw string) (bool, error) {
	if raw == "" {
		return false, nil
	}
	commit, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.New("commit must be a boolean")
	}
	return commit, nil
}

func parseOverrides(form *multipart.Form) (Overrides, *httperr.APIError) {
	var ov Overrides
	if v := form.Value["store"]; len(v) > 0 {
		ov.Store = strings.TrimSpace(v[0])
	}
	if v := form.Value["date"]; len(v) > 0 && strings.TrimSpace(v[0]) != "" {
		d, err := v1.ParseDate(strings.TrimSpace(v[0]))
		if err != nil {
			return ov, httperr.New(http.StatusBadRequest, httperr.HttpValidationError, "date must be YYYY-MM-DD")
		}
		ov.Date = d
	}
	return ov, nil
}

func (s *Service) readImages(files []*multipart.FileHeader) ([]Image, *httperr.APIError) {
	if len(files) == 0 {
		return nil, httperr.New(http.StatusBadRequest, httperr.HttpValidationError, "At least one image is required")
	}
	if len(files) > s.maxImages {
		return nil, &httperr.APIError{
			StatusCode: http.StatusBadRequest,
			ErrorType:  httperr.HttpValidationError,
			Message:    "Too many images",
			Details:    map[string]interface{}{"max_images": s.maxImages},
		}
	}

	images := make([]Image, 0, len(files))
	for i, fh := range files {
		if fh.Size > s.maxBytes {
			slog.Warn("[Receipts] Image exceeds maximum size", "image", i, "size", fh.Size, "max", s.maxBytes)
			return nil, &httperr.APIError{
				StatusCode: http.StatusRequestEntityTooLarge,
				ErrorType:  httperr.HttpPayloadTooLarge,
				Message:    "Image exceeds maximum allowed size",
				Details:    map[string]interface{}{"image": i, "max_size_bytes": s.maxBytes},
			}
		}

		data, err := readPart(fh)
		if err != nil {
			slog.Error("[Receipts] Failed to read image", "image", i, "error", err)
			return nil, httperr.New(http.StatusInternalServerError, httperr.HttpInternalError, "Failed to read image")
		}
		if len(data) == 0 {
			return nil, httperr.New(http.StatusBadRequest, httperr.HttpValidationError, "Image is empty")
		}

		images = append(images, Image{Data: data, MimeType: mimeType(fh, data)})
	}
	return images, nil
}

func readPart(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// mimeType trusts a specific part header and otherwise sniffs the bytes.
func mimeType(fh *multipart.FileHeader, data []byte) string {
	ct := fh.Header.Get("Content-Type")
	if ct != "" && ct != "application/octet-stream" {
		return ct
	}
	return http.DetectContentType(data)
}
