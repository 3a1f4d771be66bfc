package purchases

import (
	"github.com/aevon-lab/grocery-tracker/internal/core/storage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Service struct {
	store            storage.PurchaseStore
	maxBodySizeBytes int
	newID            func() string
}

func NewService(repo storage.PurchaseStore, maxBodySizeMB int) *Service {
	if repo == nil {
		panic("purchases: store must not be nil")
	}
	if maxBodySizeMB <= 0 {
		maxBodySizeMB = 1 // default to 1MB
	}
	return &Service{
		store:            repo,
		maxBodySizeBytes: maxBodySizeMB * 1024 * 1024,
		newID:            uuid.NewString,
	}
}

// RegisterRoutes registers the purchase routes. The router must carry auth.Middleware.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.POST("/v1/purchases", s.CreateHandler)
	r.GET("/v1/purchases", s.ListHandler)
	r.GET("/v1/purchases/:id", s.GetHandler)
	r.PUT("/v1/purchases/:id", s.UpdateHandler)
	r.DELETE("/v1/purchases/:id", s.DeleteHandler)
}
