package users

import (
	"context"
	"errors"
	"net/http"

	"canvas-app/config"
	"canvas-app/internal/domain/canvases"
	"canvas-app/internal/domain/users"
	"canvas-app/internal/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ProfileStore is the lookup the public profile route needs.
type ProfileStore interface {
	ProfileName(ctx context.Context, userID string) (string, error)
}

type Handler struct {
	DB       *gorm.DB
	Profiles ProfileStore
}

func NewHandler(db *gorm.DB, profiles ProfileStore) *Handler {
	return &Handler{DB: db, Profiles: profiles}
}

type MeResponse struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Lastname   string `json:"lastname,omitempty"`
	Role       string `json:"role"`
	IsVerified bool   `json:"is_verified"`
}

func (h *Handler) GetCurrentUser(c *gin.Context) {
	email := c.GetString("email")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user users.User
	if err := h.DB.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, MeResponse{
		ID:         user.ID,
		Email:      user.Email,
		Name:       user.Name,
		Lastname:   user.Lastname,
		Role:       user.Role,
		IsVerified: user.IsVerified,
	})
}

// GET /profiles/:id/name
// Public lookup used for canvas attribution in the UI.
func (h *Handler) GetProfileName(c *gin.Context) {
	userID := c.Param("id")
	if !canvases.IsValidUserID(userID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	name, err := h.Profiles.ProfileName(c.Request.Context(), userID)
	if errors.Is(err, store.ErrProfileNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"name": name})
}

func (h *Handler) VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing token"})
		return
	}

	var t users.VerificationToken
	if err := h.DB.Where("token = ? AND type = ?", token, "verify").First(&t).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired token"})
		return
	}

	if err := h.DB.Model(&users.User{}).Where("id = ?", t.UserID).Update("is_verified", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify user"})
		return
	}

	h.DB.Delete(&t)

	c.Redirect(http.StatusTemporaryRedirect, config.FRONTEND_URL+"/signin")
}
