package canvases

import (
	"errors"
	"net/http"

	dc "canvas-app/internal/domain/canvases"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Handler struct {
	Svc   *dc.Service
	Store dc.Store
	Log   zerolog.Logger
}

func NewHandler(svc *dc.Service, store dc.Store, log zerolog.Logger) *Handler {
	return &Handler{Svc: svc, Store: store, Log: log.With().Str("component", "canvases-api").Logger()}
}

func mustUserID(c *gin.Context) (string, bool) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

func validCanvasID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid canvas id"})
		return "", false
	}
	return id, true
}

// ------------------------------
// GET /canvases
// ------------------------------
func (h *Handler) ListPublic(c *gin.Context) {
	list, err := h.Store.SelectPublic(c.Request.Context())
	if err != nil {
		h.Log.Error().Err(err).Msg("list public canvases failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load canvases"})
		return
	}
	c.JSON(http.StatusOK, toCanvasDTOList(list))
}

// ------------------------------
// GET /my/canvases
// ------------------------------
func (h *Handler) ListMine(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	if !dc.IsValidUserID(userID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	list, err := h.Store.SelectByOwner(c.Request.Context(), userID)
	if err != nil {
		h.Log.Error().Err(err).Str("user_id", userID).Msg("list user canvases failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load your canvases"})
		return
	}
	c.JSON(http.StatusOK, toCanvasDTOList(list))
}

// ------------------------------
// GET /canvases/:id
// ------------------------------
func (h *Handler) Get(c *gin.Context) {
	id, ok := validCanvasID(c)
	if !ok {
		return
	}

	canvas, err := h.Store.SelectByID(c.Request.Context(), id)
	if errors.Is(err, dc.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Canvas not found"})
		return
	}
	if err != nil {
		h.Log.Error().Err(err).Str("canvas_id", id).Msg("get canvas failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load canvas"})
		return
	}
	c.JSON(http.StatusOK, toCanvasDTO(canvas))
}

// ------------------------------
// POST /canvases
// ------------------------------
func (h *Handler) Create(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req CreateCanvasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// blank canvases default to public, unlike forks
	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	canvas := dc.Canvas{
		Title:       plain.Sanitize(req.Title),
		Description: plain.Sanitize(req.Description),
		Gradient:    req.Gradient,
		OwnerUserID: userID,
		Version:     firstNonEmptyString(plain.Sanitize(req.Version), dc.DefaultVersion),
		IsPublic:    isPublic,
		Content:     req.Content.sanitized(),
	}

	created, err := h.Store.Insert(c.Request.Context(), canvas)
	if err != nil {
		h.Log.Error().Err(err).Str("user_id", userID).Msg("create canvas failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create canvas"})
		return
	}

	c.JSON(http.StatusCreated, toCanvasDTO(created))
}

// ------------------------------
// PUT /canvases/:id  (save orchestrator)
// ------------------------------
func (h *Handler) Save(c *gin.Context) {
	id, ok := validCanvasID(c)
	if !ok {
		return
	}
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req SaveCanvasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.Svc.Save(c.Request.Context(), id, userID, req.Content.sanitized(), req.metadata())
	if err != nil {
		h.saveError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, toSaveResponse(res))
}

// ------------------------------
// POST /canvases/:id/clone
// ------------------------------
func (h *Handler) Clone(c *gin.Context) {
	id, ok := validCanvasID(c)
	if !ok {
		return
	}
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req CloneCanvasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	opts := dc.CloneOptions{Title: plain.Sanitize(req.Title)}
	if req.IsPublic != nil {
		opts.IsPublic = *req.IsPublic
	}

	created, err := h.Svc.Clone(c.Request.Context(), id, userID, req.Content.sanitized(), opts)
	if err != nil {
		h.saveError(c, id, err)
		return
	}

	c.JSON(http.StatusCreated, toCanvasDTO(created))
}

// ------------------------------
// PUT /canvases/:id/title | /version | /visibility
// ------------------------------
func (h *Handler) UpdateTitle(c *gin.Context) {
	var req UpdateTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.ownerUpdate(c, "title", func(id string) error {
		return h.Store.UpdateTitle(c.Request.Context(), id, plain.Sanitize(req.Title))
	})
}

func (h *Handler) UpdateVersion(c *gin.Context) {
	var req UpdateVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.ownerUpdate(c, "version", func(id string) error {
		return h.Store.UpdateVersion(c.Request.Context(), id, plain.Sanitize(req.Version))
	})
}

func (h *Handler) UpdateVisibility(c *gin.Context) {
	var req UpdateVisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.ownerUpdate(c, "visibility", func(id string) error {
		return h.Store.UpdateVisibility(c.Request.Context(), id, *req.IsPublic)
	})
}

// ------------------------------
// DELETE /canvases/:id
// ------------------------------
func (h *Handler) Delete(c *gin.Context) {
	h.ownerUpdate(c, "delete", func(id string) error {
		return h.Store.Delete(c.Request.Context(), id)
	})
}

// ownerUpdate runs op against the canvas only when the acting user owns it.
// The metadata routes and delete are owner-only; non-owners fork through
// Save instead.
func (h *Handler) ownerUpdate(c *gin.Context, op string, fn func(id string) error) {
	id, ok := validCanvasID(c)
	if !ok {
		return
	}
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	own, err := dc.ResolveOwnership(c.Request.Context(), h.Store, id, userID)
	if errors.Is(err, dc.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Canvas not found"})
		return
	}
	if err != nil {
		h.Log.Error().Err(err).Str("canvas_id", id).Str("op", op).Msg("ownership lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load canvas"})
		return
	}
	if !own.IsOwner {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not the canvas owner"})
		return
	}

	if err := fn(id); err != nil {
		h.Log.Error().Err(err).Str("canvas_id", id).Str("op", op).Msg("canvas update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update canvas"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

func (h *Handler) saveError(c *gin.Context, id string, err error) {
	switch {
	case errors.Is(err, dc.ErrInvalidUserID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID format is invalid"})
	case errors.Is(err, dc.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Canvas not found"})
	case errors.Is(err, dc.ErrConcurrentSave):
		c.JSON(http.StatusConflict, gin.H{"error": "A save for this canvas is already in progress"})
	default:
		h.Log.Error().Err(err).Str("canvas_id", id).Msg("save failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save canvas"})
	}
}

func firstNonEmptyString(s ...string) string {
	for _, v := range s {
		if v != "" {
			return v
		}
	}
	return ""
}
