package canvases

import (
	dc "canvas-app/internal/domain/canvases"

	"github.com/microcosm-cc/bluemonday"
)

// Content fields are rich text coming from the editor widget, so they get
// the UGC policy (formatting kept, scripts stripped) instead of the strict
// one used on the public auth routes. Plain metadata strings are stripped
// entirely.
var (
	richText = bluemonday.UGCPolicy()
	plain    = bluemonday.StrictPolicy()
)

// ---------- requests

type ContentInput struct {
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

func (in ContentInput) sanitized() dc.Content {
	return dc.Content{
		Domain:           richText.Sanitize(in.Domain),
		PotentialUseCase: richText.Sanitize(in.PotentialUseCase),
		DomainData:       richText.Sanitize(in.DomainData),
		Implications:     richText.Sanitize(in.Implications),
		Resources:        richText.Sanitize(in.Resources),
		Learners:         richText.Sanitize(in.Learners),
		Instructors:      richText.Sanitize(in.Instructors),
		Support:          richText.Sanitize(in.Support),
		Outcomes:         richText.Sanitize(in.Outcomes),
		Assessment:       richText.Sanitize(in.Assessment),
		Activities:       richText.Sanitize(in.Activities),
	}
}

type CreateCanvasRequest struct {
	Title       string       `json:"title" binding:"required"`
	Description string       `json:"description"`
	Gradient    int          `json:"gradient"`
	Version     string       `json:"version"`
	IsPublic    *bool        `json:"is_public"`
	Content     ContentInput `json:"content"`
}

type SaveCanvasRequest struct {
	Content  ContentInput `json:"content"`
	Title    *string      `json:"title"`
	Version  *string      `json:"version"`
	IsPublic *bool        `json:"is_public"`
}

func (r SaveCanvasRequest) metadata() dc.Metadata {
	meta := dc.Metadata{IsPublic: r.IsPublic}
	if r.Title != nil {
		t := plain.Sanitize(*r.Title)
		meta.Title = &t
	}
	if r.Version != nil {
		v := plain.Sanitize(*r.Version)
		meta.Version = &v
	}
	return meta
}

type CloneCanvasRequest struct {
	Title    string       `json:"title"`
	IsPublic *bool        `json:"is_public"`
	Content  ContentInput `json:"content"`
}

type UpdateTitleRequest struct {
	Title string `json:"title" binding:"required"`
}

type UpdateVersionRequest struct {
	Version string `json:"version" binding:"required"`
}

type UpdateVisibilityRequest struct {
	IsPublic *bool `json:"is_public" binding:"required"`
}
