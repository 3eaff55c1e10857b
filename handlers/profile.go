package handlers

import (
	"errors"
	"net/http"

	profileRepo "laundr/database/repository/profile"
	"laundr/models"

	"github.com/gin-gonic/gin"
)

// ProfileHandler exposes the minimal profile surface the compliance gate and
// transaction router resolve against. Full profile management lives outside
// this core.
type ProfileHandler struct {
	Repo profileRepo.ProfileRepository
}

// NewProfileHandler returns a handler bound to the given repository.
func NewProfileHandler(repo profileRepo.ProfileRepository) *ProfileHandler {
	return &ProfileHandler{Repo: repo}
}

// CreateProfile handles POST /profiles.
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var profile models.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if profile.LaundrID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "laundr_id is required"})
		return
	}
	if profile.KYCStatus == "" {
		profile.KYCStatus = models.KYCUnverified
	}

	if err := h.Repo.Create(c.Request.Context(), &profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create profile", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetProfile handles GET /profiles/:id.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.Repo.Resolve(c.Request.Context(), c.Param("id"))
	if errors.Is(err, profileRepo.ErrProfileNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve profile", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// ListProfiles handles GET /profiles.
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	all, err := h.Repo.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list profiles", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, all)
}
