package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PRASANNAPATIL12/2.31weddingcard/internal/application"
	"github.com/PRASANNAPATIL12/2.31weddingcard/internal/domain/entity"
	"github.com/PRASANNAPATIL12/2.31weddingcard/internal/infrastructure/jsonfile"
	"github.com/PRASANNAPATIL12/2.31weddingcard/internal/session"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	users := jsonfile.NewStore[entity.User](filepath.Join(dir, "users.json"), nil)
	weddings := jsonfile.NewStore[entity.WeddingProfile](filepath.Join(dir, "weddings.json"), nil)

	authSvc := application.NewAuthService(users, session.NewRegistry(), nil)
	weddingSvc := application.NewWeddingService(weddings, authSvc, nil)

	authH := NewAuthHandler(authSvc, newTestLogger())
	weddingH := NewWeddingHandler(weddingSvc, newTestLogger())

	r := gin.New()
	api := r.Group("/api")
	api.POST("/auth/register", authH.Register)
	api.POST("/auth/login", authH.Login)
	api.GET("/profile", authH.Profile)
	api.POST("/wedding", weddingH.Create)
	api.PUT("/wedding", weddingH.Update)
	api.GET("/wedding", weddingH.GetPrivate)
	api.GET("/wedding/public/custom/:custom_url", weddingH.GetPublicByCustomURL)
	api.GET("/wedding/public/user/:user_id", weddingH.GetPublicByUserID)
	api.GET("/wedding/public/:wedding_id", weddingH.GetPublicByID)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	return w, parsed
}

func data(t *testing.T, envelope map[string]any) map[string]any {
	t.Helper()
	d, ok := envelope["data"].(map[string]any)
	require.True(t, ok, "response has no data object: %v", envelope)
	return d
}

// End-to-end walk of the card lifecycle over HTTP: register, create, public
// lookups without a session, duplicate create.
func TestWeddingLifecycle(t *testing.T) {
	r := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{"username": "alice", "password": "pw1"})
	require.Equal(t, http.StatusOK, w.Code)
	sessionID := data(t, body)["session_id"].(string)
	require.NotEmpty(t, sessionID)

	card := gin.H{
		"session_id":     sessionID,
		"couple_name_1":  "A",
		"couple_name_2":  "B",
		"wedding_date":   "2026-11-21",
		"venue_name":     "Taj Falaknuma",
		"venue_location": "Hyderabad",
		"their_story":    "story",
		"custom_url":     "sridhar-sneha-wedding",
	}
	w, body = doJSON(t, r, http.MethodPost, "/api/wedding", card)
	require.Equal(t, http.StatusOK, w.Code)
	created := data(t, body)
	weddingID := created["id"].(string)
	require.NotEmpty(t, weddingID)
	assert.Equal(t, "classic", created["theme"], "theme defaults when omitted")

	t.Run("public by id strips user_id", func(t *testing.T) {
		w, body := doJSON(t, r, http.MethodGet, "/api/wedding/public/"+weddingID, nil)
		require.Equal(t, http.StatusOK, w.Code)
		pub := data(t, body)
		assert.Equal(t, weddingID, pub["id"])
		assert.Equal(t, "A", pub["couple_name_1"])
		assert.NotContains(t, pub, "user_id")
	})

	t.Run("public by custom url", func(t *testing.T) {
		w, body := doJSON(t, r, http.MethodGet, "/api/wedding/public/custom/sridhar-sneha-wedding", nil)
		require.Equal(t, http.StatusOK, w.Code)
		pub := data(t, body)
		assert.Equal(t, weddingID, pub["id"])
		assert.NotContains(t, pub, "user_id")
	})

	t.Run("unknown custom url is 404", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodGet, "/api/wedding/public/custom/nobody", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("second create is a conflict", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodPost, "/api/wedding", card)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("private get includes user_id", func(t *testing.T) {
		w, body := doJSON(t, r, http.MethodGet, "/api/wedding?session_id="+sessionID, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, data(t, body), "user_id")
	})

	t.Run("private get without session is 401", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodGet, "/api/wedding?session_id=bogus", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRegisterValidation(t *testing.T) {
	r := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{"username": "alice"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["success"])
}

func TestRegisterConflictStatus(t *testing.T) {
	r := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{"username": "alice", "password": "pw1"})
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{"username": "alice", "password": "pw2"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginEndpoint(t *testing.T) {
	r := newTestRouter(t)

	_, body := doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{"username": "alice", "password": "pw1"})
	uid := data(t, body)["user_id"].(string)

	w, body := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{"username": "alice", "password": "pw1"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uid, data(t, body)["user_id"])

	w, _ = doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{"username": "alice", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfileEndpoint(t *testing.T) {
	r := newTestRouter(t)

	_, body := doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{"username": "alice", "password": "pw1"})
	sid := data(t, body)["session_id"].(string)

	w, body := doJSON(t, r, http.MethodGet, "/api/profile?session_id="+sid, nil)
	require.Equal(t, http.StatusOK, w.Code)
	profile := data(t, body)
	assert.Equal(t, "alice", profile["username"])
	assert.NotContains(t, profile, "password")

	w, _ = doJSON(t, r, http.MethodGet, "/api/profile?session_id=bogus", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
