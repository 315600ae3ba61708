package rest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexiquiz/internal/model"
	"lexiquiz/internal/service"
	"lexiquiz/internal/transport/ws"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Setenv("HOST_USERNAME", "builder")
	t.Setenv("HOST_PASSWORD", "s3cret")
	t.Setenv("JWT_SECRET", "test-secret")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pool.json"), []byte("[]"), 0o644))

	return NewRouter(&Container{
		AuthService: service.NewAuthService(),
		DatasetDir:  dir,
		WSHub:       ws.NewHub(),
	})
}

func login(t *testing.T, router http.Handler) string {
	body, _ := json.Marshal(model.LoginRequest{Username: "builder", Password: "s3cret"})
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Token
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestLoginFlow(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)
	assert.NotEmpty(t, token)
}

func TestDatasetRoutesRequireAuth(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/datasets", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListDatasetFiles(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	req := httptest.NewRequest(http.MethodGet, "/v1/datasets", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var files []struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &files))
	require.Len(t, files, 1)
	assert.Equal(t, "pool.json", files[0].Name)
}

func TestGetDatasetFileRejectsTraversal(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	req := httptest.NewRequest(http.MethodGet, "/v1/datasets/..%2Fsecrets", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.NotEqual(t, http.StatusOK, rec.Code)
}

func TestCrawlLaunchValidation(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	req := httptest.NewRequest(http.MethodPost, "/v1/crawls", bytes.NewReader([]byte(`{"seeds":[]}`)))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
