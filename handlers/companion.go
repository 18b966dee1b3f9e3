package handlers

import (
	"net/http"

	"amora/models"
	"amora/services/companion"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CompanionHandler exposes the companion directory.
type CompanionHandler struct {
	Svc    companion.Service
	Logger *zap.Logger
}

func NewCompanionHandler(svc companion.Service, logger *zap.Logger) *CompanionHandler {
	return &CompanionHandler{Svc: svc, Logger: logger}
}

// GetCompanionByID handles GET /api/companions/id/:id.
func (h *CompanionHandler) GetCompanionByID(c *gin.Context) {
	id := c.Param("id")
	profile, err := h.Svc.GetProfile(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "companion not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// ListCompanions handles GET /api/companions.
func (h *CompanionHandler) ListCompanions(c *gin.Context) {
	profiles, err := h.Svc.ListProfiles(c.Request.Context())
	if err != nil {
		h.Logger.Error("ListCompanions: failed to fetch profiles", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch companions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"companions": profiles})
}

// RegisterCompanion handles POST /api/companions.
func (h *CompanionHandler) RegisterCompanion(c *gin.Context) {
	var profile models.CompanionProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	id, err := h.Svc.RegisterProfile(c.Request.Context(), profile)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to register companion", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// UpdateCompanionFCMToken handles PUT /api/companions/id/:id/fcm-token.
func (h *CompanionHandler) UpdateCompanionFCMToken(c *gin.Context) {
	var input struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Svc.UpdateFCMToken(c.Request.Context(), c.Param("id"), input.Token); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "companion not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
