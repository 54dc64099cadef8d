package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmazur/slidegen/internal/config"
	"github.com/jmazur/slidegen/internal/deck"
	"github.com/jmazur/slidegen/internal/render"
	"github.com/jmazur/slidegen/internal/render/htmlslides"
	"github.com/jmazur/slidegen/internal/theme"
)

type stubRenderer struct {
	res    *render.Result
	err    error
	slides []deck.Slide
}

func (s *stubRenderer) Render(_ context.Context, slides []deck.Slide, _ render.Target) (*render.Result, error) {
	s.slides = slides
	return s.res, s.err
}

func newTestServer(t *testing.T, cfg config.Config) *Server {
	t.Helper()
	registry := theme.NewRegistry()
	html, err := htmlslides.New(registry)
	require.NoError(t, err)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(cfg, registry, html, log)
}

func testConfig() config.Config {
	return config.Config{
		Port:            "0",
		MaxUploadBytes:  1 << 20,
		MaxBullets:      7,
		MaxBulletLength: 120,
		DefaultTheme:    "black",
		DefaultTemplate: "simple",
	}
}

func uploadRequest(t *testing.T, path, filename, content string, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = io.WriteString(fw, content)
	require.NoError(t, err)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestHandlePreview(t *testing.T) {
	s := newTestServer(t, testConfig())

	req := uploadRequest(t, "/api/preview", "talk.md", "# Title\n\n## Section\n- a\n- b\n", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Title  string       `json:"title"`
		Slides []deck.Slide `json:"slides"`
		Stats  struct {
			TotalSlides int `json:"total_slides"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "Title", body.Title)
	require.Len(t, body.Slides, 2)
	assert.Equal(t, deck.KindTitle, body.Slides[0].Kind)
	assert.Equal(t, deck.KindBullets, body.Slides[1].Kind)
	assert.Equal(t, 2, body.Stats.TotalSlides)
}

func TestHandlePreview_EmptyInput(t *testing.T) {
	s := newTestServer(t, testConfig())

	req := uploadRequest(t, "/api/preview", "empty.md", "   \n", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "empty input")
}

func TestHandlePreview_UnsupportedExtension(t *testing.T) {
	s := newTestServer(t, testConfig())

	req := uploadRequest(t, "/api/preview", "deck.exe", "content", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unsupported file type")
}

func TestHandleGenerate_HTMLDownload(t *testing.T) {
	s := newTestServer(t, testConfig())

	req := uploadRequest(t, "/api/generate", "talk.md", "# Title\n\n## Section\n- a\n", map[string]string{
		"mode":  "html",
		"theme": "night",
	})
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "talk.html")
	assert.Contains(t, rec.Body.String(), "theme/night.css")
	assert.Contains(t, rec.Body.String(), "<h1>Title</h1>")
}

func TestHandleGenerate_UnknownTheme(t *testing.T) {
	s := newTestServer(t, testConfig())

	req := uploadRequest(t, "/api/generate", "talk.md", "# Title\n- a\n", map[string]string{
		"mode":  "html",
		"theme": "definitely-not-a-theme",
	})
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown theme")
	assert.Empty(t, rec.Header().Get("Content-Disposition"), "failed renders must not look like downloads")
}

func TestHandleGenerate_UnknownTemplate(t *testing.T) {
	s := newTestServer(t, testConfig())
	s.cloud = &stubRenderer{}

	req := uploadRequest(t, "/api/generate", "talk.md", "# Title\n- a\n", map[string]string{
		"mode":     "google",
		"template": "no-such-template",
	})
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown template")
}

func TestHandleGenerate_GoogleMode(t *testing.T) {
	s := newTestServer(t, testConfig())
	stub := &stubRenderer{res: &render.Result{
		Mode:           render.ModeGoogle,
		PresentationID: "p1",
		EditLink:       "https://docs.google.com/presentation/d/p1/edit",
		SlideCount:     2,
	}}
	s.cloud = stub

	req := uploadRequest(t, "/api/generate", "talk.md", "# Title\n\n## S\n- a\n", map[string]string{
		"mode": "google",
	})
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"presentation_id":"p1"`)
	assert.Len(t, stub.slides, 2)
}

func TestHandleGenerate_BadMode(t *testing.T) {
	s := newTestServer(t, testConfig())

	req := uploadRequest(t, "/api/generate", "talk.md", "# T\n", map[string]string{"mode": "keynote"})
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown render mode")
}

func TestAuthMiddleware_Enabled(t *testing.T) {
	cfg := testConfig()
	cfg.APIKey = "sekrit"
	s := newTestServer(t, cfg)

	req := uploadRequest(t, "/api/preview", "talk.md", "# T\n", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"missing authorization"}`, rec.Body.String())

	req = uploadRequest(t, "/api/preview", "talk.md", "# T\n", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"invalid api key"}`, rec.Body.String())

	req = uploadRequest(t, "/api/preview", "talk.md", "# T\n", nil)
	req.Header.Set("Authorization", "Bearer sekrit")
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleThemes(t *testing.T) {
	s := newTestServer(t, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/themes", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Themes    []string `json:"themes"`
		Templates []string `json:"templates"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Themes, "black")
	assert.Contains(t, body.Templates, "modern")
}

func TestHandleIndex(t *testing.T) {
	s := newTestServer(t, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<form")
	assert.Contains(t, rec.Body.String(), `value="black"`)
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
