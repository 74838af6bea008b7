package httpsrc

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/pp-tools/pizza-pulse/pkg/models/store"
	"github.com/pp-tools/pizza-pulse/pkg/store/csvsource"
)

const defaultTimeout = 30 * time.Second

// Source fetches a CSV dataset over HTTP and parses it like the file source.
type Source struct {
	client *http.Client
	url    string
}

func NewSource(url string) *Source {
	return &Source{
		client: &http.Client{Timeout: defaultTimeout},
		url:    url,
	}
}

// NewSourceWithClient lets callers supply their own client, e.g. for tests
// or custom transport settings.
func NewSourceWithClient(url string, client *http.Client) *Source {
	return &Source{client: client, url: url}
}

func (s *Source) Rows(ctx context.Context) ([]store.RawRow, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", s.url, resp.StatusCode)
	}

	return csvsource.NewSource(resp.Body).Rows(ctx)
}
