package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"canvas-app/internal/domain/canvases"

	"gorm.io/gorm"
)

// CanvasStore implements canvases.Store over postgres.
type CanvasStore struct {
	db *gorm.DB
}

func NewCanvasStore(db *gorm.DB) *CanvasStore {
	return &CanvasStore{db: db}
}

func (s *CanvasStore) SelectPublic(ctx context.Context) ([]canvases.Canvas, error) {
	var rows []CanvasRow
	err := s.db.WithContext(ctx).
		Where("is_public = ?", true).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, readErr("select public canvases", err)
	}
	return toCanvasList(rows), nil
}

func (s *CanvasStore) SelectByOwner(ctx context.Context, userID string) ([]canvases.Canvas, error) {
	var rows []CanvasRow
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, readErr("select canvases by owner", err)
	}
	return toCanvasList(rows), nil
}

func (s *CanvasStore) SelectByID(ctx context.Context, id string) (canvases.Canvas, error) {
	var row CanvasRow
	err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return canvases.Canvas{}, canvases.ErrNotFound
	}
	if err != nil {
		return canvases.Canvas{}, readErr("select canvas by id", err)
	}
	return toCanvas(row), nil
}

func (s *CanvasStore) Insert(ctx context.Context, c canvases.Canvas) (canvases.Canvas, error) {
	row := toRow(c)
	row.ID = "" // server-assigned
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return canvases.Canvas{}, writeErr("insert canvas", err)
	}
	return toCanvas(row), nil
}

func (s *CanvasStore) UpdateContent(ctx context.Context, id string, content canvases.Content) (canvases.Canvas, error) {
	fields := map[string]any{
		"domain":             content.Domain,
		"potential_use_case": content.PotentialUseCase,
		"domain_data":        content.DomainData,
		"implications":       content.Implications,
		"resources":          content.Resources,
		"learners":           content.Learners,
		"instructors":        content.Instructors,
		"support":            content.Support,
		"outcomes":           content.Outcomes,
		"assessment":         content.Assessment,
		"activities":         content.Activities,
		"updated_at":         time.Now(),
	}

	res := s.db.WithContext(ctx).Model(&CanvasRow{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return canvases.Canvas{}, writeErr("update canvas content", res.Error)
	}
	if res.RowsAffected == 0 {
		return canvases.Canvas{}, canvases.ErrNotFound
	}
	return s.SelectByID(ctx, id)
}

func (s *CanvasStore) UpdateTitle(ctx context.Context, id, title string) error {
	return s.updateField(ctx, id, "title", title)
}

func (s *CanvasStore) UpdateVersion(ctx context.Context, id, version string) error {
	return s.updateField(ctx, id, "version", version)
}

func (s *CanvasStore) UpdateVisibility(ctx context.Context, id string, isPublic bool) error {
	return s.updateField(ctx, id, "is_public", isPublic)
}

func (s *CanvasStore) updateField(ctx context.Context, id, column string, value any) error {
	err := s.db.WithContext(ctx).Model(&CanvasRow{}).
		Where("id = ?", id).
		Updates(map[string]any{column: value, "updated_at": time.Now()}).Error
	if err != nil {
		return writeErr("update canvas "+column, err)
	}
	return nil
}

func (s *CanvasStore) Delete(ctx context.Context, id string) error {
	if err := s.db.WithContext(ctx).Delete(&CanvasRow{}, "id = ?", id).Error; err != nil {
		return writeErr("delete canvas", err)
	}
	return nil
}

func toCanvasList(rows []CanvasRow) []canvases.Canvas {
	out := make([]canvases.Canvas, 0, len(rows))
	for _, r := range rows {
		out = append(out, toCanvas(r))
	}
	return out
}

func readErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, canvases.ErrStoreRead, err)
}

func writeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, canvases.ErrStoreWrite, err)
}
