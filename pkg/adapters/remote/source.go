package remote

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/aretw0/branchtale/pkg/domain"
)

// DefaultMaxTableSize bounds the body read for a single table (8MB).
const DefaultMaxTableSize = 8 << 20

// Source implements ports.TableSource by fetching the tables over HTTP,
// at fixed paths relative to a base URL (<base>/NODES.json, <base>/CHOICES.json).
type Source struct {
	base    *url.URL
	client  *http.Client
	maxSize int64
}

// Option configures the Source.
type Option func(*Source)

// WithHTTPClient overrides the client used for fetches.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Source) {
		if client != nil {
			s.client = client
		}
	}
}

// WithMaxTableSize sets the maximum accepted body size in bytes.
func WithMaxTableSize(n int64) Option {
	return func(s *Source) {
		if n > 0 {
			s.maxSize = n
		}
	}
}

// New creates a Source for the given base URL.
func New(baseURL string, opts ...Option) (*Source, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url %q: scheme must be http or https", baseURL)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}

	s := &Source{
		base:    u,
		client:  http.DefaultClient,
		maxSize: DefaultMaxTableSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// URL returns the absolute location of the table.
func (s *Source) URL(table domain.Table) string {
	return s.base.ResolveReference(&url.URL{Path: table.FileName("")}).String()
}

// Fetch performs a GET for the table and requires a 2xx status.
func (s *Source) Fetch(ctx context.Context, table domain.Table) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL(table), nil)
	if err != nil {
		return nil, &domain.LoadError{Table: table, Err: err}
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9, */*;q=0.1")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &domain.LoadError{Table: table, Reason: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.LoadError{Table: table, Status: resp.StatusCode}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, s.maxSize+1))
	if err != nil {
		return nil, &domain.LoadError{Table: table, Reason: "reading body failed", Err: err}
	}
	if int64(len(data)) > s.maxSize {
		return nil, &domain.LoadError{Table: table, Reason: fmt.Sprintf("body exceeds %d bytes", s.maxSize)}
	}
	return data, nil
}
