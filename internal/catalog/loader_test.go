package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const sampleIndex = `{
  "hogs": [
    {"filename": "20240101-000000-Alpha.png", "tags": ["pink"]},
    {"filename": "Beta-v2.jpg", "width": 512}
  ],
  "generated": "2024-01-01"
}`

func TestParse(t *testing.T) {
	filenames, err := Parse(strings.NewReader(sampleIndex))
	require.NoError(t, err)
	assert.Equal(t, []string{"20240101-000000-Alpha.png", "Beta-v2.jpg"}, filenames)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		malformed bool
	}{
		{"invalid json", `{"hogs": [`, false},
		{"not an object", `[1, 2]`, false},
		{"trailing garbage", `{"hogs":[{"filename":"a.png"}]} }garbage`, false},
		{"second document", `{"hogs":[]} {"hogs":[]}`, false},
		{"missing hogs", `{"images": []}`, true},
		{"null hogs", `{"hogs": null}`, true},
		{"entry without filename", `{"hogs": [{"name": "a.png"}]}`, true},
		{"null entry", `{"hogs": [null]}`, true},
		{"filename not a string", `{"hogs": [{"filename": 42}]}`, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.input))
			require.Error(t, err)
			assert.Equal(t, tc.malformed, errorsIsMalformed(err))
		})
	}
}

func TestParse_EmptyList(t *testing.T) {
	filenames, err := Parse(strings.NewReader(`{"hogs": []}`))
	require.NoError(t, err)
	assert.Empty(t, filenames)
}

func TestLoad_HTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/index.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleIndex))
	}))
	defer server.Close()

	svc := NewService(server.URL+"/index.json", server.Client(), zaptest.NewLogger(t))
	filenames := svc.Load(context.Background())
	assert.Equal(t, []string{"20240101-000000-Alpha.png", "Beta-v2.jpg"}, filenames)
}

func TestLoad_HTTPStatusFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	svc := NewService(server.URL+"/index.json", server.Client(), zaptest.NewLogger(t))

	_, err := svc.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")

	filenames := svc.Load(context.Background())
	assert.NotNil(t, filenames)
	assert.Empty(t, filenames)
}

func TestLoad_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL + "/index.json"
	server.Close()

	svc := NewService(url, nil, zaptest.NewLogger(t))
	assert.Empty(t, svc.Load(context.Background()))
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleIndex), 0o644))

	svc := NewService(path, nil, zaptest.NewLogger(t))
	assert.Equal(t, []string{"20240101-000000-Alpha.png", "Beta-v2.jpg"}, svc.Load(context.Background()))
}

func TestLoad_TrailingDataYieldsEmptyCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"hogs":[{"filename":"a.png"}]} }garbage`), 0o644))

	svc := NewService(path, nil, zaptest.NewLogger(t))
	filenames := svc.Load(context.Background())
	assert.NotNil(t, filenames)
	assert.Empty(t, filenames)
}

func TestLoad_MissingFile(t *testing.T) {
	svc := NewService(filepath.Join(t.TempDir(), "missing.json"), nil, zaptest.NewLogger(t))
	filenames := svc.Load(context.Background())
	assert.NotNil(t, filenames)
	assert.Empty(t, filenames)
}

func TestNewService_Defaults(t *testing.T) {
	svc := NewService("", nil, nil)
	assert.Equal(t, DefaultIndex, svc.Source())
	assert.Equal(t, http.DefaultClient, svc.client)
}

func TestIsRemote(t *testing.T) {
	assert.True(t, isRemote("https://example.com/index.json"))
	assert.True(t, isRemote("HTTP://example.com/index.json"))
	assert.False(t, isRemote("index.json"))
	assert.False(t, isRemote("/srv/hogs/index.json"))
}

func errorsIsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedIndex)
}
