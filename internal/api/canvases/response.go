package canvases

import (
	"time"

	dc "canvas-app/internal/domain/canvases"
)

// CanvasDTO is the wire shape of a canvas: one flat object, content fields
// alongside metadata, matching what the editor consumes.
type CanvasDTO struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	UserID           *string `json:"user_id"`
	Gradient         int     `json:"gradient"`
	Version          string  `json:"version"`
	IsPublic         bool    `json:"is_public"`
	OriginalCanvasID *string `json:"original_canvas_id,omitempty"`

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

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SaveResponse reports a save outcome. Status is "ok" or "partial"; Forked
// tells the client to navigate to the new canvas id.
type SaveResponse struct {
	Status        string    `json:"status"`
	Forked        bool      `json:"forked"`
	FailedUpdates []string  `json:"failed_updates,omitempty"`
	Canvas        CanvasDTO `json:"canvas"`
}

func toCanvasDTO(c dc.Canvas) CanvasDTO {
	return CanvasDTO{
		ID:               c.ID,
		Title:            c.Title,
		Description:      c.Description,
		UserID:           optional(c.OwnerUserID),
		Gradient:         c.Gradient,
		Version:          c.Version,
		IsPublic:         c.IsPublic,
		OriginalCanvasID: optional(c.OriginalCanvasID),
		Domain:           c.Content.Domain,
		PotentialUseCase: c.Content.PotentialUseCase,
		DomainData:       c.Content.DomainData,
		Implications:     c.Content.Implications,
		Resources:        c.Content.Resources,
		Learners:         c.Content.Learners,
		Instructors:      c.Content.Instructors,
		Support:          c.Content.Support,
		Outcomes:         c.Content.Outcomes,
		Assessment:       c.Content.Assessment,
		Activities:       c.Content.Activities,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func toCanvasDTOList(list []dc.Canvas) []CanvasDTO {
	out := make([]CanvasDTO, 0, len(list))
	for _, c := range list {
		out = append(out, toCanvasDTO(c))
	}
	return out
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toSaveResponse(res dc.SaveResult) SaveResponse {
	status := "ok"
	if res.Partial() {
		status = "partial"
	}
	return SaveResponse{
		Status:        status,
		Forked:        res.Forked,
		FailedUpdates: res.Failed,
		Canvas:        toCanvasDTO(res.Canvas),
	}
}
