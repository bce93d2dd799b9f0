package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/ytget/hog-gallery/internal/logging"
)

// DefaultIndex is the index location used when none is configured
const DefaultIndex = "index.json"

// ErrMalformedIndex is returned when the index parses but lacks required fields
var ErrMalformedIndex = errors.New("malformed index")

// Service reads the index from an http(s) URL or a file path
type Service struct {
	source string
	client *http.Client
	logger *zap.Logger
}

// NewService creates a catalog loader for source
func NewService(source string, client *http.Client, logger *zap.Logger) *Service {
	if source == "" {
		source = DefaultIndex
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Service{
		source: source,
		client: client,
		logger: logging.OrNop(logger).Named("catalog"),
	}
}

// Source returns the configured index location
func (s *Service) Source() string {
	return s.source
}

// Load fetches the index and returns its filenames. Failures are logged and
// produce an empty, non-nil slice.
func (s *Service) Load(ctx context.Context) []string {
	filenames, err := s.Fetch(ctx)
	if err != nil {
		s.logger.Error("Failed to load index", zap.String("source", s.source), zap.Error(err))
		return []string{}
	}

	s.logger.Info("Index loaded", zap.String("source", s.source), zap.Int("count", len(filenames)))
	return filenames
}

// Fetch is the strict variant of Load that reports why loading failed
func (s *Service) Fetch(ctx context.Context) ([]string, error) {
	body, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	return Parse(body)
}

// open returns a reader over the index contents
func (s *Service) open(ctx context.Context) (io.ReadCloser, error) {
	if !isRemote(s.source) {
		f, err := os.Open(s.source)
		if err != nil {
			return nil, fmt.Errorf("failed to open index: %w", err)
		}
		return f, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.source, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build index request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch index: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("failed to fetch index: unexpected status %s", resp.Status)
	}

	return resp.Body, nil
}

// Parse decodes an index document shaped {"hogs":[{"filename":"..."}]} and
// projects it to filenames, keeping source order. Other entry fields are
// ignored.
func Parse(r io.Reader) ([]string, error) {
	var raw struct {
		Hogs *[]map[string]json.RawMessage `json:"hogs"`
	}
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode index: %w", err)
	}
	// The document must be the whole body
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("failed to decode index: trailing data after document")
	}
	if raw.Hogs == nil {
		return nil, fmt.Errorf("%w: missing \"hogs\" list", ErrMalformedIndex)
	}

	filenames := make([]string, 0, len(*raw.Hogs))
	for i, fields := range *raw.Hogs {
		value, ok := fields["filename"]
		if !ok {
			return nil, fmt.Errorf("%w: entry %d has no filename", ErrMalformedIndex, i)
		}

		var filename string
		if err := json.Unmarshal(value, &filename); err != nil {
			return nil, fmt.Errorf("%w: entry %d filename is not a string", ErrMalformedIndex, i)
		}
		filenames = append(filenames, filename)
	}

	return filenames, nil
}

// isRemote reports whether source should be fetched over HTTP
func isRemote(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
