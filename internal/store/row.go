package store

import (
	"time"

	"canvas-app/internal/domain/canvases"
)

// CanvasRow is the storage shape of a canvas. Text columns are nullable
// because historical rows predate several fields; toCanvas is the single
// place where those nulls collapse to empty strings, keeping domain values
// total. original_canvas_id carries no FK constraint on purpose: deleting a
// source leaves its forks with a dangling reference, which is tolerated.
type CanvasRow struct {
	ID          string  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Title       string  `gorm:"not null"`
	Description *string `gorm:""`
	Gradient    int     `gorm:"not null;default:0"`

	UserID           *string `gorm:"type:uuid;index"`
	Version          *string `gorm:""`
	IsPublic         bool    `gorm:"not null;default:false;index"`
	OriginalCanvasID *string `gorm:"type:uuid"`

	Domain           *string `gorm:""`
	PotentialUseCase *string `gorm:""`
	DomainData       *string `gorm:""`
	Implications     *string `gorm:""`
	Resources        *string `gorm:""`
	Learners         *string `gorm:""`
	Instructors      *string `gorm:""`
	Support          *string `gorm:""`
	Outcomes         *string `gorm:""`
	Assessment       *string `gorm:""`
	Activities       *string `gorm:""`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CanvasRow) TableName() string { return "canvases" }

func toCanvas(r CanvasRow) canvases.Canvas {
	version := deref(r.Version)
	if version == "" {
		version = canvases.DefaultVersion
	}

	return canvases.Canvas{
		ID:               r.ID,
		Title:            r.Title,
		Description:      deref(r.Description),
		OwnerUserID:      deref(r.UserID),
		Gradient:         r.Gradient,
		Version:          version,
		IsPublic:         r.IsPublic,
		OriginalCanvasID: deref(r.OriginalCanvasID),
		Content: canvases.Content{
			Domain:           deref(r.Domain),
			PotentialUseCase: deref(r.PotentialUseCase),
			DomainData:       deref(r.DomainData),
			Implications:     deref(r.Implications),
			Resources:        deref(r.Resources),
			Learners:         deref(r.Learners),
			Instructors:      deref(r.Instructors),
			Support:          deref(r.Support),
			Outcomes:         deref(r.Outcomes),
			Assessment:       deref(r.Assessment),
			Activities:       deref(r.Activities),
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toRow(c canvases.Canvas) CanvasRow {
	return CanvasRow{
		ID:               c.ID,
		Title:            c.Title,
		Description:      ptr(c.Description),
		Gradient:         c.Gradient,
		UserID:           nullable(c.OwnerUserID),
		Version:          ptr(c.Version),
		IsPublic:         c.IsPublic,
		OriginalCanvasID: nullable(c.OriginalCanvasID),
		Domain:           ptr(c.Content.Domain),
		PotentialUseCase: ptr(c.Content.PotentialUseCase),
		DomainData:       ptr(c.Content.DomainData),
		Implications:     ptr(c.Content.Implications),
		Resources:        ptr(c.Content.Resources),
		Learners:         ptr(c.Content.Learners),
		Instructors:      ptr(c.Content.Instructors),
		Support:          ptr(c.Content.Support),
		Outcomes:         ptr(c.Content.Outcomes),
		Assessment:       ptr(c.Content.Assessment),
		Activities:       ptr(c.Content.Activities),
	}
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ptr(s string) *string { return &s }

// nullable maps "" to NULL, used for the uuid reference columns where an
// empty string is not a valid value.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
