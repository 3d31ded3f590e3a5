package canvases

import "context"

// Store is the persistence surface the canvas service runs on. Every
// component takes an explicit Store; there is no shared handle. The gorm
// implementation lives in internal/store.
//
// Read methods return ErrNotFound for a missing canvas and wrap other
// failures with ErrStoreRead; write methods wrap failures with ErrStoreWrite.
type Store interface {
	SelectPublic(ctx context.Context) ([]Canvas, error)
	SelectByOwner(ctx context.Context, userID string) ([]Canvas, error)
	SelectByID(ctx context.Context, id string) (Canvas, error)

	// Insert persists a new canvas; the store assigns id and timestamps.
	Insert(ctx context.Context, c Canvas) (Canvas, error)

	// UpdateContent overwrites all content fields and updated_at, returning
	// the refreshed row. Last write wins; there is no merge.
	UpdateContent(ctx context.Context, id string, content Content) (Canvas, error)

	// Metadata updates touch a single column plus updated_at and are
	// independently fallible.
	UpdateTitle(ctx context.Context, id, title string) error
	UpdateVersion(ctx context.Context, id, version string) error
	UpdateVisibility(ctx context.Context, id string, isPublic bool) error

	// Delete is unconditional and non-cascading: forks keep their
	// original_canvas_id even when it dangles afterwards.
	Delete(ctx context.Context, id string) error
}
