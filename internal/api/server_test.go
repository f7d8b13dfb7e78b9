package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/saskan-astro/internal/chaos"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	store, err := chaos.OpenStore(filepath.Join(t.TempDir(), "chaos.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return &Server{Chaos: store, AdminKey: "sekrit"}
}

func TestHandleDate(t *testing.T) {
	s := testServer(t)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/date?day=400000", nil)
	w := httptest.NewRecorder()
	s.handleDate(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "Rosetta (Canonical)")
	assert.Contains(t, body, "Moon Phases")
	assert.Contains(t, body, "Sky Context")
}

func TestHandleDate_MissingDay(t *testing.T) {
	s := testServer(t)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/date", nil)
	w := httptest.NewRecorder()
	s.handleDate(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleMoons(t *testing.T) {
	s := testServer(t)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/moons?day=1", nil)
	w := httptest.NewRecorder()
	s.handleMoons(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Full Moons")
}

func TestAdminOnly_RequiresToken(t *testing.T) {
	s := testServer(t)
	handler := s.adminOnly(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r := httptest.NewRequest(http.MethodPost, "/api/v1/chaos/seed", strings.NewReader("{}"))
	w := httptest.NewRecorder()
	handler(w, r)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	r = httptest.NewRequest(http.MethodPost, "/api/v1/chaos/seed", strings.NewReader("{}"))
	r.Header.Set("Authorization", "Bearer sekrit")
	w = httptest.NewRecorder()
	handler(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminOnly_DisabledWithoutKey(t *testing.T) {
	s := testServer(t)
	s.AdminKey = ""
	handler := s.adminOnly(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r := httptest.NewRequest(http.MethodPost, "/api/v1/chaos/seed", strings.NewReader("{}"))
	w := httptest.NewRecorder()
	handler(w, r)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandleChaosSeed_AppliesPerturbations(t *testing.T) {
	s := testServer(t)

	body := strings.NewReader(`{"seed": 7, "max_turns": 100}`)
	r := httptest.NewRequest(http.MethodPost, "/api/v1/chaos/seed", body)
	w := httptest.NewRecorder()
	s.handleChaosSeed(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Seed   int64 `json:"seed"`
		Events int   `json:"events"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.Seed)

	seed, err := s.Chaos.Seed()
	require.NoError(t, err)
	assert.Equal(t, int64(7), seed)
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(2, time.Hour)

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.2"))
	assert.Positive(t, rl.RetryAfter("10.0.0.1"))
	assert.Equal(t, 0, rl.RetryAfter("10.0.0.3"))
}

func TestClientAddr(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "192.0.2.7:55001"
	assert.Equal(t, "192.0.2.7", clientAddr(r))

	r.Header.Set("X-Forwarded-For", "203.0.113.9, 192.0.2.7")
	assert.Equal(t, "203.0.113.9", clientAddr(r))
}
