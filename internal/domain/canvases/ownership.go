package canvases

import "context"

// Ownership is the result of resolving a canvas against an acting user.
type Ownership struct {
	IsOwner bool
	Canvas  Canvas
}

// ResolveOwnership fetches the current row for canvasID and reports whether
// actingUserID owns it. An unowned canvas (empty OwnerUserID) is owned by
// nobody, so any write to it forks. No side effects.
func ResolveOwnership(ctx context.Context, store Store, canvasID, actingUserID string) (Ownership, error) {
	c, err := store.SelectByID(ctx, canvasID)
	if err != nil {
		return Ownership{}, err
	}
	return Ownership{
		IsOwner: c.OwnerUserID != "" && c.OwnerUserID == actingUserID,
		Canvas:  c,
	}, nil
}
