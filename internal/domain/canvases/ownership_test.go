package canvases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveOwnership(t *testing.T) {
	fs := newFakeStore()
	owned := fs.add(Canvas{Title: "Mine", OwnerUserID: userAlice})
	seed := fs.add(Canvas{Title: "Seed", OwnerUserID: "", IsPublic: true})

	cases := []struct {
		name     string
		canvasID string
		actingID string
		isOwner  bool
	}{
		{name: "owner matches", canvasID: owned.ID, actingID: userAlice, isOwner: true},
		{name: "different user", canvasID: owned.ID, actingID: userBob, isOwner: false},
		{name: "unowned canvas matches nobody", canvasID: seed.ID, actingID: userAlice, isOwner: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			own, err := ResolveOwnership(context.Background(), fs, tc.canvasID, tc.actingID)
			require.NoError(t, err)
			assert.Equal(t, tc.isOwner, own.IsOwner)
			assert.Equal(t, tc.canvasID, own.Canvas.ID)
		})
	}
}

func TestResolveOwnershipMissingCanvas(t *testing.T) {
	_, err := ResolveOwnership(context.Background(), newFakeStore(), "missing", userAlice)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIsValidUserID(t *testing.T) {
	assert.True(t, IsValidUserID(userAlice))
	assert.False(t, IsValidUserID(""))
	assert.False(t, IsValidUserID("42"))
	assert.False(t, IsValidUserID("not-a-uuid"))
}
