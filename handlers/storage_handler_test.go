package handlers_test

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeStorageFile(t *testing.T) {
	app := setupApp(t)

	dir := t.TempDir()
	t.Setenv("STORAGE_DIR", dir)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "skills"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skills", "pic.png"), []byte("png-bytes"), 0o644))

	resp, _ := doRequest(t, app, "GET", "/api/storage/skills/pic.png", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doRequest(t, app, "GET", "/api/storage/skills/missing.png", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServeStorageFileRejectsTraversal(t *testing.T) {
	app := setupApp(t)

	dir := t.TempDir()
	t.Setenv("STORAGE_DIR", dir)

	// A secret outside the storage root must not be reachable.
	secret := filepath.Join(filepath.Dir(dir), "secret.txt")
	require.NoError(t, os.WriteFile(secret, []byte("secret"), 0o644))

	resp, _ := doRequest(t, app, "GET", "/api/storage/..%2fsecret.txt", nil, "")
	assert.NotEqual(t, http.StatusOK, resp.StatusCode)

	resp, _ = doRequest(t, app, "GET", "/api/storage/../secret.txt", nil, "")
	assert.NotEqual(t, http.StatusOK, resp.StatusCode)
}

func TestGetCategoriesSeeded(t *testing.T) {
	app := setupApp(t)
	createCategory(t)

	resp, body := doRequest(t, app, "GET", "/api/categories", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	items, _ := body["data"].([]any)
	assert.Len(t, items, 1)
}
