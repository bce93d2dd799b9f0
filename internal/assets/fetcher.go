package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/ytget/hog-gallery/internal/model"
)

// DefaultFolder is the asset folder used when none is configured
const DefaultFolder = "all-the-hogs"

// ErrNotFound is returned when the asset does not exist at its path
var ErrNotFound = errors.New("asset not found")

// Asset is a fetched image with the content type it was served with
type Asset struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Size returns the asset length in bytes
func (a *Asset) Size() int64 {
	return int64(len(a.Data))
}

// Fetcher reads assets from a directory or over HTTP
type Fetcher struct {
	base   string
	client *http.Client
}

// NewFetcher creates a fetcher rooted at base
func NewFetcher(base string, client *http.Client) *Fetcher {
	if base == "" {
		base = DefaultFolder
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{base: base, client: client}
}

// Base returns the asset folder
func (f *Fetcher) Base() string {
	return f.base
}

// Path returns where filename is addressable
func (f *Fetcher) Path(filename string) string {
	return model.AssetPath(f.base, filename)
}

// Fetch reads the bytes of filename. The name is a slash-separated path
// relative to the asset folder and may not leave it.
func (f *Fetcher) Fetch(ctx context.Context, filename string) (*Asset, error) {
	if !validName(filename) {
		return nil, fmt.Errorf("invalid asset filename %q", filename)
	}

	if isRemote(f.base) {
		return f.fetchRemote(ctx, filename)
	}
	return f.fetchLocal(filename)
}

func (f *Fetcher) fetchLocal(filename string) (*Asset, error) {
	data, err := os.ReadFile(filepath.Join(f.base, filepath.FromSlash(filename)))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, filename)
		}
		return nil, fmt.Errorf("failed to read asset: %w", err)
	}

	return &Asset{
		Filename:    filename,
		ContentType: ContentType(filename, "", data),
		Data:        data,
	}, nil
}

func (f *Fetcher) fetchRemote(ctx context.Context, filename string) (*Asset, error) {
	target := strings.TrimRight(f.base, "/") + "/" + escapePath(filename)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build asset request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch asset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, filename)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch asset: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read asset body: %w", err)
	}

	return &Asset{
		Filename:    filename,
		ContentType: ContentType(filename, resp.Header.Get("Content-Type"), data),
		Data:        data,
	}, nil
}

// validName accepts non-empty relative paths without "." or ".." elements
func validName(filename string) bool {
	return filename != "." && fs.ValidPath(filename) && !strings.Contains(filename, `\`)
}

// escapePath escapes each segment of a slash-separated path
func escapePath(filename string) string {
	segments := strings.Split(filename, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}

// ContentType picks the media type for an asset: the served header first,
// then the file extension, then content sniffing.
func ContentType(filename, header string, data []byte) string {
	if header != "" {
		if mediaType, _, err := mime.ParseMediaType(header); err == nil && mediaType != "application/octet-stream" {
			return mediaType
		}
	}

	if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename))); byExt != "" {
		if mediaType, _, err := mime.ParseMediaType(byExt); err == nil {
			return mediaType
		}
	}

	mediaType, _, _ := mime.ParseMediaType(http.DetectContentType(data))
	return mediaType
}

func isRemote(base string) bool {
	lower := strings.ToLower(base)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
