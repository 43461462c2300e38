package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finwise-ai/finchat/internal/domain"
	"github.com/finwise-ai/finchat/internal/service"
)

// Handler handles admin API requests
type Handler struct {
	companyService *service.CompanyService
}

// NewHandler creates a new admin handler
func NewHandler(companyService *service.CompanyService) *Handler {
	return &Handler{companyService: companyService}
}

// RegisterRoutes registers admin routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/company", h.GetCompanyInfo)
	r.PUT("/company", h.UpsertCompanyInfo)
}

// GetCompanyInfo returns the stored company document
func (h *Handler) GetCompanyInfo(c *gin.Context) {
	info, err := h.companyService.Document(c.Request.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNotConfigured) {
			c.JSON(http.StatusNotFound, domain.ErrorResponse{Error: "company info not configured"})
			return
		}
		c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, info)
}

// UpsertCompanyInfo stores the company document
func (h *Handler) UpsertCompanyInfo(c *gin.Context) {
	var req domain.UpsertCompanyInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: err.Error()})
		return
	}

	info := &domain.CompanyInfo{
		Organization: req.Organization,
		Sections:     req.Sections,
	}
	if err := h.companyService.Save(c.Request.Context(), info); err != nil {
		c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, info)
}
