package errors

import "github.com/gin-gonic/gin"

const (
	HttpInternalError       = "internal_error"
	HttpInvalidJsonError    = "invalid_json"
	HttpValidationError     = "validation_failed"
	HttpInvalidQueryError   = "invalid_query"
	HttpNotFoundError       = "not_found"
	HttpDuplicateError      = "duplicate_purchase"
	HttpUnauthorizedError   = "unauthorized"
	HttpRateLimitedError    = "rate_limited"
	HttpPayloadTooLarge     = "payload_too_large"
	HttpReceiptAnalyzeError = "receipt_analysis_failed"
	HttpUnavailableError    = "service_unavailable"
)

// ErrorResponse is the error body returned by every HTTP endpoint.
type ErrorResponse struct {
	Error     string      `json:"error"`
	ErrorType string      `json:"error_type"`
	Details   interface{} `json:"details,omitempty"`
}

// APIError carries the structured HTTP error shape from a helper back to the handler.
// Helpers return this instead of writing to gin.Context directly.
type APIError struct {
	StatusCode int
	ErrorType  string
	Message    string
	Details    interface{}
}

func (e *APIError) Error() string {
	return e.Message
}

// New builds an APIError without details.
func New(statusCode int, errorType, message string) *APIError {
	return &APIError{StatusCode: statusCode, ErrorType: errorType, Message: message}
}

// Write serializes err as the JSON response and aborts the handler chain.
func Write(c *gin.Context, err *APIError) {
	c.AbortWithStatusJSON(err.StatusCode, ErrorResponse{
		Error:     err.Message,
		ErrorType: err.ErrorType,
		Details:   err.Details,
	})
}
