package dataset

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3/client"
)

const DefaultFetchTimeout = 60 * time.Second

// Fetcher downloads a remote table part.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

type FetchError struct {
	URL     string
	Message string
	Cause   error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch %s: %s", e.URL, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// HTTPFetcher issues a single GET per part. Startup must not serve a partial
// table, so failures are returned as is and never retried.
type HTTPFetcher struct {
	client *client.Client
}

func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	c := client.New()
	c.SetTimeout(timeout)
	return &HTTPFetcher{client: c}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	resp, err := f.client.Get(url, client.Config{Ctx: ctx})
	if err != nil {
		return nil, &FetchError{URL: url, Message: "request failed", Cause: err}
	}
	defer resp.Close()

	if code := resp.StatusCode(); code < 200 || code > 299 {
		return nil, &FetchError{URL: url, Message: fmt.Sprintf("unexpected status %d", code)}
	}

	// the response buffer is recycled on Close
	body := resp.Body()
	out := make([]byte, len(body))
	copy(out, body)
	return out, nil
}

func isRemote(location string) bool {
	l := strings.ToLower(strings.TrimSpace(location))
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}
