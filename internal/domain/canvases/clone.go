package canvases

import "context"

// CloneOptions tunes a fork. An empty Title means "derive a copy title from
// the source"; a non-empty Title is used verbatim and skips the copy-count
// scan entirely. IsPublic defaults to false: forks are private even when the
// source is public.
type CloneOptions struct {
	Title    string
	IsPublic bool
}

// Clone creates a new canvas owned by targetUserID, copied from the source
// and linked back to it through OriginalCanvasID. Content fields come from
// updates where non-empty, else from the source, else stay empty. The source
// row is never touched.
func (s *Service) Clone(ctx context.Context, sourceID, targetUserID string, updates Content, opts CloneOptions) (Canvas, error) {
	if !IsValidUserID(targetUserID) {
		return Canvas{}, ErrInvalidUserID
	}

	src, err := s.store.SelectByID(ctx, sourceID)
	if err != nil {
		s.log.Error().Err(err).Str("canvas_id", sourceID).Msg("clone: source lookup failed")
		return Canvas{}, err
	}

	title := opts.Title
	if title == "" {
		title, err = s.nextCopyTitle(ctx, targetUserID, src.Title)
		if err != nil {
			return Canvas{}, err
		}
	}

	next := Canvas{
		Title:            title,
		Description:      src.Description,
		Gradient:         src.Gradient,
		OwnerUserID:      targetUserID,
		Version:          firstNonEmpty(src.Version, DefaultVersion),
		IsPublic:         opts.IsPublic,
		OriginalCanvasID: sourceID,
		Content:          merged(updates, src.Content),
	}

	created, err := s.store.Insert(ctx, next)
	if err != nil {
		s.log.Error().Err(err).Str("source_id", sourceID).Str("user_id", targetUserID).Msg("clone: insert failed")
		return Canvas{}, err
	}

	s.log.Info().
		Str("source_id", sourceID).
		Str("canvas_id", created.ID).
		Str("user_id", targetUserID).
		Msg("cloned canvas")
	return created, nil
}

// nextCopyTitle scans the target user's canvases for existing copies of
// sourceTitle and picks the next title per the copy-title policy.
func (s *Service) nextCopyTitle(ctx context.Context, userID, sourceTitle string) (string, error) {
	base := CopyTitle(sourceTitle)

	owned, err := s.store.SelectByOwner(ctx, userID)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("clone: copy scan failed")
		return "", err
	}

	var copies []string
	for _, c := range owned {
		if HasCopyPrefix(c.Title, base) {
			copies = append(copies, c.Title)
		}
	}
	return NextCopyTitle(base, copies), nil
}
