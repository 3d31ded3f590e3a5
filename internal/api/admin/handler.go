package admin

import (
	"net/http"
	"time"

	"canvas-app/internal/domain/canvases"
	"canvas-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	DB    *gorm.DB
	Store canvases.Store
}

func NewHandler(db *gorm.DB, store canvases.Store) *Handler {
	return &Handler{DB: db, Store: store}
}

type AdminUser struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Lastname   string    `json:"lastname"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}

func (h *Handler) Dashboard(c *gin.Context) {
	var totalUsers int64
	var totalCanvases int64
	var publicCanvases int64

	h.DB.Model(&users.User{}).Count(&totalUsers)
	h.DB.Table("canvases").Count(&totalCanvases)
	h.DB.Table("canvases").Where("is_public = ?", true).Count(&publicCanvases)

	c.JSON(http.StatusOK, gin.H{
		"total_users":     totalUsers,
		"total_canvases":  totalCanvases,
		"public_canvases": publicCanvases,
	})
}

func (h *Handler) ListAllUsers(c *gin.Context) {
	var list []users.User
	if err := h.DB.Order("created_at DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	out := make([]AdminUser, 0, len(list))
	for _, u := range list {
		out = append(out, AdminUser{
			ID:         u.ID,
			Name:       u.Name,
			Lastname:   u.Lastname,
			Email:      u.Email,
			Role:       u.Role,
			IsVerified: u.IsVerified,
			CreatedAt:  u.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, out)
}

func (h *Handler) GetUserDetails(c *gin.Context) {
	id := c.Param("id")

	var user users.User
	if err := h.DB.First(&user, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	owned, err := h.Store.SelectByOwner(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user canvases"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": AdminUser{
			ID:         user.ID,
			Name:       user.Name,
			Lastname:   user.Lastname,
			Email:      user.Email,
			Role:       user.Role,
			IsVerified: user.IsVerified,
			CreatedAt:  user.CreatedAt,
		},
		"canvas_count": len(owned),
	})
}

type SeedCanvasInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Gradient    int    `json:"gradient"`
	Version     string `json:"version"`

	Domain           string `json:"domain"`
	PotentialUseCase string `json:"potential_use_case"`
	DomainData       string `json:"domain_data"`
	Implications     string `json:"implications"`
	Resources        string `json:"resources"`
	Learners         string `json:"learners"`
	Instructors      string `json:"instructors"`
	Support          string `json:"support"`
	Outcomes         string `json:"outcomes"`
	Assessment       string `json:"assessment"`
	Activities       string `json:"activities"`
}

// POST /admin/canvases/seed
// Seed canvases are public and carry no owner, so every edit by a user forks
// them into an owned copy.
func (h *Handler) SeedCanvases(c *gin.Context) {
	var req struct {
		Canvases []SeedCanvasInput `json:"canvases" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ids := make([]string, 0, len(req.Canvases))
	for _, in := range req.Canvases {
		version := in.Version
		if version == "" {
			version = canvases.DefaultVersion
		}

		created, err := h.Store.Insert(c.Request.Context(), canvases.Canvas{
			Title:       in.Title,
			Description: in.Description,
			Gradient:    in.Gradient,
			Version:     version,
			IsPublic:    true,
			Content: canvases.Content{
				Domain:           in.Domain,
				PotentialUseCase: in.PotentialUseCase,
				DomainData:       in.DomainData,
				Implications:     in.Implications,
				Resources:        in.Resources,
				Learners:         in.Learners,
				Instructors:      in.Instructors,
				Support:          in.Support,
				Outcomes:         in.Outcomes,
				Assessment:       in.Assessment,
				Activities:       in.Activities,
			},
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to seed canvases", "created": ids})
			return
		}
		ids = append(ids, created.ID)
	}

	c.JSON(http.StatusCreated, gin.H{"ids": ids})
}
