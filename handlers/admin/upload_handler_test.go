package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"groupeatlas.com/configs/configslog"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	configslog.InitLogger()
	os.Exit(m.Run())
}

func newUploadApp(t *testing.T) (*fiber.App, string) {
	dir := t.TempDir()
	t.Setenv("UPLOAD_DIR", dir)

	app := fiber.New()
	app.Post("/upload", NewUploadHandler().Upload)
	return app, dir
}

func multipartImage(t *testing.T, contentType string, content []byte) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="visuel.png"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

func TestUploadStoresImageUnderRandomName(t *testing.T) {
	app, dir := newUploadApp(t)

	body, contentType := multipartImage(t, "image/png", []byte("contenu-png-factice"))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set(fiber.HeaderContentType, contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, "téléversement: %s", raw)

	var result struct {
		URL      string `json:"url"`
		Filename string `json:"filename"`
	}
	require.NoError(t, json.Unmarshal(raw, &result))
	assert.True(t, strings.HasPrefix(result.URL, "/uploads/"))
	assert.True(t, strings.HasSuffix(result.Filename, ".png"))
	assert.NotContains(t, result.Filename, "visuel", "le nom d'origine ne doit pas être réutilisé")

	saved, err := os.ReadFile(filepath.Join(dir, result.Filename))
	require.NoError(t, err)
	assert.Equal(t, []byte("contenu-png-factice"), saved)
}

func TestUploadRejectsUnsupportedType(t *testing.T) {
	app, _ := newUploadApp(t)

	body, contentType := multipartImage(t, "application/pdf", []byte("%PDF-1.4"))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set(fiber.HeaderContentType, contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(raw), "Format non supporté")
}

func TestUploadRequiresFile(t *testing.T) {
	app, _ := newUploadApp(t)

	req := httptest.NewRequest(http.MethodPost, "/upload", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(raw), "Aucun fichier reçu")
}
