package gslides

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmazur/slidegen/internal/deck"
	"github.com/jmazur/slidegen/internal/render"
	"github.com/jmazur/slidegen/internal/theme"
)

func TestRenderer_FullRun(t *testing.T) {
	var batchBody struct {
		Requests []Request `json:"requests"`
	}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/presentations":
			io.WriteString(w, `{"presentationId":"p42","title":"Deck","slides":[{"objectId":"default_0"}]}`)
		case "/presentations/p42:batchUpdate":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&batchBody))
			io.WriteString(w, `{}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	client := NewClient(ts.URL, "tok", discardLogger())
	r := NewRenderer(client, theme.NewRegistry(), discardLogger())

	slides := []deck.Slide{
		{Kind: deck.KindTitle, Title: "Deck"},
		{Kind: deck.KindBullets, Title: "Points", Body: []string{"a", "b"}},
	}
	res, err := r.Render(context.Background(), slides, render.Target{
		Mode:     render.ModeGoogle,
		Title:    "Deck",
		Template: "simple",
	})
	require.NoError(t, err)

	assert.Equal(t, "p42", res.PresentationID)
	assert.Equal(t, 2, res.SlideCount)
	assert.Contains(t, res.EditLink, "p42")

	// The default slide is removed before new slides are created.
	require.NotEmpty(t, batchBody.Requests)
	require.NotNil(t, batchBody.Requests[0].DeleteObject)
	assert.Equal(t, "default_0", batchBody.Requests[0].DeleteObject.ObjectID)
}

func TestRenderer_UnknownTemplate(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "tok", discardLogger())
	r := NewRenderer(client, theme.NewRegistry(), discardLogger())

	_, err := r.Render(context.Background(), nil, render.Target{Template: "nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown template")
}

func TestLoadToken_Sources(t *testing.T) {
	t.Run("env wins", func(t *testing.T) {
		t.Setenv("GOOGLE_ACCESS_TOKEN", "env-tok")
		tok, err := LoadToken("")
		require.NoError(t, err)
		assert.Equal(t, "env-tok", tok)
	})

	t.Run("token json", func(t *testing.T) {
		t.Setenv("GOOGLE_ACCESS_TOKEN", "")
		path := t.TempDir() + "/token.json"
		require.NoError(t, writeFile(path, `{"access_token":"file-tok"}`))
		tok, err := LoadToken(path)
		require.NoError(t, err)
		assert.Equal(t, "file-tok", tok)
	})

	t.Run("bare token", func(t *testing.T) {
		t.Setenv("GOOGLE_ACCESS_TOKEN", "")
		path := t.TempDir() + "/token.txt"
		require.NoError(t, writeFile(path, "raw-tok\n"))
		tok, err := LoadToken(path)
		require.NoError(t, err)
		assert.Equal(t, "raw-tok", tok)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Setenv("GOOGLE_ACCESS_TOKEN", "")
		_, err := LoadToken("does/not/exist.json")
		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
	})

	t.Run("empty token json", func(t *testing.T) {
		t.Setenv("GOOGLE_ACCESS_TOKEN", "")
		path := t.TempDir() + "/token.json"
		require.NoError(t, writeFile(path, `{}`))
		_, err := LoadToken(path)
		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
	})
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
