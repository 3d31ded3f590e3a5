package store

import (
	"testing"

	"canvas-app/internal/domain/canvases"

	"github.com/stretchr/testify/assert"
)

func TestToCanvasNormalizesNulls(t *testing.T) {
	row := CanvasRow{
		ID:    "9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d",
		Title: "Legacy",
		// all nullable columns left NULL
	}

	c := toCanvas(row)

	assert.Equal(t, "", c.Description)
	assert.Equal(t, "", c.OwnerUserID)
	assert.Equal(t, "", c.OriginalCanvasID)
	assert.Equal(t, canvases.DefaultVersion, c.Version)
	assert.Equal(t, canvases.Content{}, c.Content)
}

func TestToCanvasKeepsValues(t *testing.T) {
	owner := "6b2d5c6a-7f9e-4c1b-9a3d-0f1e2d3c4b5a"
	origin := "0a1b2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d"
	version := "2.0"
	domain := "<p>Biology</p>"

	row := CanvasRow{
		ID:               "9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d",
		Title:            "Intro",
		UserID:           &owner,
		OriginalCanvasID: &origin,
		Version:          &version,
		Domain:           &domain,
		IsPublic:         true,
	}

	c := toCanvas(row)

	assert.Equal(t, owner, c.OwnerUserID)
	assert.Equal(t, origin, c.OriginalCanvasID)
	assert.Equal(t, "2.0", c.Version)
	assert.Equal(t, domain, c.Content.Domain)
	assert.True(t, c.IsPublic)
}

func TestToRowMapsEmptyRefsToNull(t *testing.T) {
	row := toRow(canvases.Canvas{Title: "Blank"})

	assert.Nil(t, row.UserID)
	assert.Nil(t, row.OriginalCanvasID)
	// plain text fields stay non-null empty strings
	assert.NotNil(t, row.Domain)
	assert.Equal(t, "", *row.Domain)
}

func TestRowRoundTrip(t *testing.T) {
	in := canvases.Canvas{
		Title:            "Intro",
		Description:      "desc",
		OwnerUserID:      "6b2d5c6a-7f9e-4c1b-9a3d-0f1e2d3c4b5a",
		Gradient:         2,
		Version:          "1.3",
		IsPublic:         true,
		OriginalCanvasID: "0a1b2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d",
		Content: canvases.Content{
			Domain:     "d",
			Learners:   "l",
			Activities: "a",
		},
	}

	out := toCanvas(toRow(in))

	// timestamps are store-assigned and zero here
	in.CreatedAt = out.CreatedAt
	in.UpdatedAt = out.UpdatedAt
	assert.Equal(t, in, out)
}
