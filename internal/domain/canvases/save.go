package canvases

import "context"

// SaveResult reports what a save did. Forked is set when the write landed on
// a new canvas instead of the requested one, so callers can redirect to
// Canvas.ID. Failed lists metadata fields whose updates did not apply; the
// content write itself had already committed by then.
type SaveResult struct {
	Canvas Canvas
	Forked bool
	Failed []string
}

// Partial reports whether the save committed content but lost one or more
// metadata updates.
func (r SaveResult) Partial() bool {
	return len(r.Failed) > 0
}

// Save is the single entry point for writes to a canvas. Ownership is
// re-resolved from the store on every call: owners get an in-place update,
// everyone else gets a fork. A second save for the same canvas while one is
// in flight fails with ErrConcurrentSave before any store contact.
//
// Within one call the content write precedes the metadata writes, and the
// metadata writes run one at a time. Nothing spans them transactionally; a
// failed metadata write is collected in the result, not rolled back.
func (s *Service) Save(ctx context.Context, canvasID, actingUserID string, content Content, meta Metadata) (SaveResult, error) {
	if !s.begin(canvasID) {
		return SaveResult{}, ErrConcurrentSave
	}
	defer s.end(canvasID)

	if !IsValidUserID(actingUserID) {
		return SaveResult{}, ErrInvalidUserID
	}

	own, err := ResolveOwnership(ctx, s.store, canvasID, actingUserID)
	if err != nil {
		s.log.Error().Err(err).Str("canvas_id", canvasID).Msg("save: ownership lookup failed")
		return SaveResult{}, err
	}

	if !own.IsOwner {
		return s.saveAsFork(ctx, canvasID, actingUserID, content, meta)
	}

	updated, err := s.store.UpdateContent(ctx, canvasID, content)
	if err != nil {
		s.log.Error().Err(err).Str("canvas_id", canvasID).Msg("save: content update failed")
		return SaveResult{}, err
	}

	res := SaveResult{Canvas: updated}
	res.Canvas, res.Failed = s.applyMetadata(ctx, updated, meta)
	return res, nil
}

// saveAsFork runs when the acting user does not own the canvas: the write
// produces a new owned copy. Any metadata not already baked into the
// fork is applied against the new id; the source is never mutated here.
func (s *Service) saveAsFork(ctx context.Context, sourceID, actingUserID string, content Content, meta Metadata) (SaveResult, error) {
	opts := CloneOptions{}
	if meta.Title != nil {
		opts.Title = *meta.Title
	}
	if meta.IsPublic != nil {
		opts.IsPublic = *meta.IsPublic
	}

	forked, err := s.Clone(ctx, sourceID, actingUserID, content, opts)
	if err != nil {
		return SaveResult{}, err
	}

	res := SaveResult{Forked: true}
	res.Canvas, res.Failed = s.applyMetadata(ctx, forked, meta)
	return res, nil
}

// applyMetadata issues one update per provided-and-differing metadata field,
// sequentially, each independently fallible. It returns the canvas with the
// applied values folded in plus the names of the fields that failed.
func (s *Service) applyMetadata(ctx context.Context, c Canvas, meta Metadata) (Canvas, []string) {
	var failed []string

	if meta.Title != nil && *meta.Title != c.Title {
		if err := s.store.UpdateTitle(ctx, c.ID, *meta.Title); err != nil {
			s.log.Error().Err(err).Str("canvas_id", c.ID).Msg("save: title update failed")
			failed = append(failed, "title")
		} else {
			c.Title = *meta.Title
		}
	}

	if meta.Version != nil && *meta.Version != c.Version {
		if err := s.store.UpdateVersion(ctx, c.ID, *meta.Version); err != nil {
			s.log.Error().Err(err).Str("canvas_id", c.ID).Msg("save: version update failed")
			failed = append(failed, "version")
		} else {
			c.Version = *meta.Version
		}
	}

	if meta.IsPublic != nil && *meta.IsPublic != c.IsPublic {
		if err := s.store.UpdateVisibility(ctx, c.ID, *meta.IsPublic); err != nil {
			s.log.Error().Err(err).Str("canvas_id", c.ID).Msg("save: visibility update failed")
			failed = append(failed, "is_public")
		} else {
			c.IsPublic = *meta.IsPublic
		}
	}

	return c, failed
}
