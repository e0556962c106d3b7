package handlers

import (
	"errors"
	"net/http"
	"strconv"

	freelancerRepo "freelanceai/database/repository/freelancer"
	"freelanceai/models"
	"freelanceai/services/listing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListingHandler exposes the freelancer catalog and its query engine.
type ListingHandler struct {
	Svc    listing.Service
	Logger *zap.Logger
}

func NewListingHandler(svc listing.Service, logger *zap.Logger) *ListingHandler {
	return &ListingHandler{Svc: svc, Logger: logger}
}

// browseRequest is the query parameter set plus the view mode, which picks
// the default page size when the body does not set one explicitly.
type browseRequest struct {
	models.QueryParams
	View string `json:"view"`
}

// Browse handles POST /api/freelancers/search. The body carries the full
// query parameter set; omitted fields fall back to defaults.
func (h *ListingHandler) Browse(c *gin.Context) {
	req := browseRequest{QueryParams: models.DefaultQueryParams()}
	req.PageSize = 0
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid search parameters", "message": err.Error()})
		return
	}
	if req.PageSize <= 0 {
		req.PageSize = models.PageSizeForView(req.View)
	}

	result, err := h.Svc.Browse(c.Request.Context(), req.QueryParams)
	if err != nil {
		h.Logger.Error("browse failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search freelancers"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetFreelancer handles GET /api/freelancers/:id.
func (h *ListingHandler) GetFreelancer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid freelancer id"})
		return
	}

	freelancer, err := h.Svc.GetFreelancer(c.Request.Context(), id)
	if errors.Is(err, freelancerRepo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "freelancer not found"})
		return
	}
	if err != nil {
		h.Logger.Error("freelancer lookup failed", zap.Int("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch freelancer"})
		return
	}
	c.JSON(http.StatusOK, freelancer)
}

// GetSkills handles GET /api/freelancers/skills: the skill picker's options.
func (h *ListingHandler) GetSkills(c *gin.Context) {
	skills, err := h.Svc.AllSkills(c.Request.Context())
	if err != nil {
		h.Logger.Error("skill listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch skills"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"skills": skills})
}

// GetCategories handles GET /api/freelancers/categories.
func (h *ListingHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": listing.Categories})
}
