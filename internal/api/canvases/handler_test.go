package canvases

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	dc "canvas-app/internal/domain/canvases"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testUserAlice = "6b2d5c6a-7f9e-4c1b-9a3d-0f1e2d3c4b5a"
	testUserBob   = "0a1b2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d"

	seedCanvasID = "11111111-2222-4333-8444-555555555555"
)

type memStore struct {
	byID map[string]dc.Canvas
	seq  int
}

func newMemStore() *memStore {
	return &memStore{byID: make(map[string]dc.Canvas)}
}

func (m *memStore) add(c dc.Canvas) dc.Canvas {
	m.seq++
	if c.ID == "" {
		c.ID = fmt.Sprintf("%08d-0000-4000-8000-000000000000", m.seq)
	}
	if c.Version == "" {
		c.Version = dc.DefaultVersion
	}
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	m.byID[c.ID] = c
	return c
}

func (m *memStore) SelectPublic(ctx context.Context) ([]dc.Canvas, error) {
	var out []dc.Canvas
	for _, c := range m.byID {
		if c.IsPublic {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memStore) SelectByOwner(ctx context.Context, userID string) ([]dc.Canvas, error) {
	var out []dc.Canvas
	for _, c := range m.byID {
		if c.OwnerUserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memStore) SelectByID(ctx context.Context, id string) (dc.Canvas, error) {
	c, ok := m.byID[id]
	if !ok {
		return dc.Canvas{}, dc.ErrNotFound
	}
	return c, nil
}

func (m *memStore) Insert(ctx context.Context, c dc.Canvas) (dc.Canvas, error) {
	return m.add(c), nil
}

func (m *memStore) UpdateContent(ctx context.Context, id string, content dc.Content) (dc.Canvas, error) {
	c, ok := m.byID[id]
	if !ok {
		return dc.Canvas{}, dc.ErrNotFound
	}
	c.Content = content
	c.UpdatedAt = time.Now()
	m.byID[id] = c
	return c, nil
}

func (m *memStore) UpdateTitle(ctx context.Context, id, title string) error {
	c := m.byID[id]
	c.Title = title
	m.byID[id] = c
	return nil
}

func (m *memStore) UpdateVersion(ctx context.Context, id, version string) error {
	c := m.byID[id]
	c.Version = version
	m.byID[id] = c
	return nil
}

func (m *memStore) UpdateVisibility(ctx context.Context, id string, isPublic bool) error {
	c := m.byID[id]
	c.IsPublic = isPublic
	m.byID[id] = c
	return nil
}

func (m *memStore) Delete(ctx context.Context, id string) error {
	delete(m.byID, id)
	return nil
}

// asUser mimics the JWT middleware by planting the acting user id.
func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID != "" {
			c.Set("user_id", userID)
		}
		c.Next()
	}
}

func newTestRouter(store *memStore, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(dc.NewService(store, zerolog.Nop()), store, zerolog.Nop())

	r := gin.New()
	r.GET("/canvases", h.ListPublic)
	r.GET("/canvases/:id", h.Get)

	auth := r.Group("/", asUser(userID))
	auth.GET("/my/canvases", h.ListMine)
	auth.POST("/canvases", h.Create)
	auth.PUT("/canvases/:id", h.Save)
	auth.POST("/canvases/:id/clone", h.Clone)
	auth.DELETE("/canvases/:id", h.Delete)
	auth.PUT("/canvases/:id/title", h.UpdateTitle)
	auth.PUT("/canvases/:id/visibility", h.UpdateVisibility)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSaveRouteOwnedCanvas(t *testing.T) {
	store := newMemStore()
	store.add(dc.Canvas{ID: seedCanvasID, Title: "Intro", OwnerUserID: testUserAlice})
	r := newTestRouter(store, testUserAlice)

	w := doJSON(t, r, http.MethodPut, "/canvases/"+seedCanvasID, SaveCanvasRequest{
		Content: ContentInput{Domain: "<p>Biology</p>"},
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp SaveResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.False(t, resp.Forked)
	assert.Equal(t, seedCanvasID, resp.Canvas.ID)
	assert.Equal(t, "<p>Biology</p>", resp.Canvas.Domain)
}

func TestSaveRouteForksForNonOwner(t *testing.T) {
	store := newMemStore()
	store.add(dc.Canvas{ID: seedCanvasID, Title: "Intro", OwnerUserID: testUserBob, IsPublic: true})
	r := newTestRouter(store, testUserAlice)

	w := doJSON(t, r, http.MethodPut, "/canvases/"+seedCanvasID, SaveCanvasRequest{
		Content: ContentInput{Domain: "mine now"},
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp SaveResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Forked)
	assert.NotEqual(t, seedCanvasID, resp.Canvas.ID)
	assert.Equal(t, "Copy of Intro", resp.Canvas.Title)
	require.NotNil(t, resp.Canvas.OriginalCanvasID)
	assert.Equal(t, seedCanvasID, *resp.Canvas.OriginalCanvasID)
	assert.False(t, resp.Canvas.IsPublic)
}

func TestSaveRouteStripsScriptTags(t *testing.T) {
	store := newMemStore()
	store.add(dc.Canvas{ID: seedCanvasID, Title: "Intro", OwnerUserID: testUserAlice})
	r := newTestRouter(store, testUserAlice)

	w := doJSON(t, r, http.MethodPut, "/canvases/"+seedCanvasID, SaveCanvasRequest{
		Content: ContentInput{Domain: `<p>ok</p><script>alert(1)</script>`},
	})

	require.Equal(t, http.StatusOK, w.Code)
	saved := store.byID[seedCanvasID]
	assert.Equal(t, "<p>ok</p>", saved.Content.Domain)
}

func TestSaveRouteUnknownCanvas(t *testing.T) {
	r := newTestRouter(newMemStore(), testUserAlice)

	w := doJSON(t, r, http.MethodPut, "/canvases/"+seedCanvasID, SaveCanvasRequest{})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSaveRouteMalformedCanvasID(t *testing.T) {
	r := newTestRouter(newMemStore(), testUserAlice)

	w := doJSON(t, r, http.MethodPut, "/canvases/not-a-uuid", SaveCanvasRequest{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSaveRouteRequiresUser(t *testing.T) {
	store := newMemStore()
	store.add(dc.Canvas{ID: seedCanvasID, Title: "Intro", OwnerUserID: testUserAlice})
	r := newTestRouter(store, "")

	w := doJSON(t, r, http.MethodPut, "/canvases/"+seedCanvasID, SaveCanvasRequest{})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMetadataRouteForbiddenForNonOwner(t *testing.T) {
	store := newMemStore()
	store.add(dc.Canvas{ID: seedCanvasID, Title: "Intro", OwnerUserID: testUserBob})
	r := newTestRouter(store, testUserAlice)

	w := doJSON(t, r, http.MethodPut, "/canvases/"+seedCanvasID+"/title", UpdateTitleRequest{Title: "Stolen"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Intro", store.byID[seedCanvasID].Title)
}

func TestDeleteOwnedCanvas(t *testing.T) {
	store := newMemStore()
	store.add(dc.Canvas{ID: seedCanvasID, Title: "Intro", OwnerUserID: testUserAlice})
	r := newTestRouter(store, testUserAlice)

	w := doJSON(t, r, http.MethodDelete, "/canvases/"+seedCanvasID, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	_, exists := store.byID[seedCanvasID]
	assert.False(t, exists)
}

func TestCreateDefaultsToPublic(t *testing.T) {
	store := newMemStore()
	r := newTestRouter(store, testUserAlice)

	w := doJSON(t, r, http.MethodPost, "/canvases", CreateCanvasRequest{Title: "Blank"})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp CanvasDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsPublic)
	assert.Equal(t, dc.DefaultVersion, resp.Version)
	require.NotNil(t, resp.UserID)
	assert.Equal(t, testUserAlice, *resp.UserID)
}

func TestListPublicOnly(t *testing.T) {
	store := newMemStore()
	store.add(dc.Canvas{Title: "Public", IsPublic: true})
	store.add(dc.Canvas{Title: "Private", OwnerUserID: testUserBob})
	r := newTestRouter(store, "")

	w := doJSON(t, r, http.MethodGet, "/canvases", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var list []CanvasDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Public", list[0].Title)
}
