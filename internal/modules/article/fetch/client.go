package fetch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/rtcl/newsdesk/internal/modules/article/domain"
	catalogDomain "github.com/rtcl/newsdesk/internal/modules/catalog/domain"
	"github.com/samber/oops"
)

// Client fetches one feed's items through the external feed conversion
// endpoint (RSS in, normalized JSON items out). The endpoint is untrusted:
// non-2xx statuses, malformed bodies and a missing items array all surface
// as an error the caller is expected to log and treat as zero articles.
type Client struct {
	convertURL string
	httpClient *http.Client
}

// New creates a new conversion endpoint client
func New(convertURL string, timeout time.Duration) *Client {
	return &Client{
		convertURL: convertURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// conversionResponse is the envelope returned by the conversion endpoint
type conversionResponse struct {
	Status string              `json:"status"`
	Items  []domain.RawArticle `json:"items"`
}

// Fetch retrieves the items of a single feed source. The returned slice may
// be empty; a nil error does not guarantee any articles.
func (c *Client) Fetch(ctx context.Context, source catalogDomain.Source) ([]domain.RawArticle, error) {
	reqURL := c.convertURL + "?rss_url=" + url.QueryEscape(source.URL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, oops.With("feed", source.Name).Wrap(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, oops.With("feed", source.Name, "context", "conversion request failed").Wrap(err)
	}
	defer resp.Body.Close()

	// Rate limiting (429) and converter rejections (422) land here too
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, oops.With("feed", source.Name, "status", resp.StatusCode).
			Errorf("conversion endpoint returned %d", resp.StatusCode)
	}

	var body conversionResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, oops.With("feed", source.Name, "context", "malformed conversion response").Wrap(err)
	}

	return body.Items, nil
}
