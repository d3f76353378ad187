// SPDX-License-Identifier: MPL-2.0

package wiki

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// maxJSONResponseBytes is the upper bound on API response size (10 MB).
// Prevents unbounded memory consumption from a malformed response.
const maxJSONResponseBytes = 10 << 20

type (
	// Section is one heading entry of a wiki page: a display title and the
	// stable anchor used to link to it.
	Section struct {
		Title  string
		Anchor string
	}

	// parseResponse is the JSON wire format of a MediaWiki
	// action=parse&prop=sections response. Only the fields we read are declared.
	parseResponse struct {
		Parse struct {
			Sections []wireSection `json:"sections"`
		} `json:"parse"`
	}

	// wireSection is a single entry of parse.sections on the wire.
	wireSection struct {
		Line   string `json:"line"`
		Anchor string `json:"anchor"`
	}

	// Client fetches the section list of a single wiki page through the
	// MediaWiki API.
	Client struct {
		httpClient *http.Client
		baseURL    string // API endpoint (default: "https://en.wikipedia.org/w/api.php", overridable for tests)
		page       string // Page title whose sections are requested
		userAgent  string // User-Agent header value
	}

	// ClientOption configures a Client during construction.
	ClientOption func(*Client)
)

// WithHTTPClient sets a custom HTTP client, useful for tests or proxy configurations.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(w *Client) {
		w.httpClient = c
	}
}

// WithBaseURL overrides the API endpoint URL, primarily for test servers.
func WithBaseURL(base string) ClientOption {
	return func(w *Client) {
		w.baseURL = base
	}
}

// WithPage sets the wiki page whose sections are fetched.
func WithPage(page string) ClientOption {
	return func(w *Client) {
		w.page = page
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) ClientOption {
	return func(w *Client) {
		w.userAgent = ua
	}
}

// NewClient creates a Client with sensible defaults.
// Defaults: baseURL="https://en.wikipedia.org/w/api.php",
// page="List_of_people_named_in_the_Epstein_files",
// userAgent="EpsteinFilesHighlighter/1.0", httpClient=http.DefaultClient.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		baseURL:    "https://en.wikipedia.org/w/api.php",
		page:       "List_of_people_named_in_the_Epstein_files",
		userAgent:  "EpsteinFilesHighlighter/1.0",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Sections fetches the section list of the configured page with a single GET.
// The response's parse.sections array is returned in page order; an absent key
// yields an empty slice. Transport and decode errors propagate to the caller;
// there is no retry.
func (c *Client) Sections(ctx context.Context) ([]Section, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.sectionsURL(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching sections: %w", err)
	}
	defer func() { _ = resp.Body.Close() }() // read-only response body

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching sections: unexpected status %d", resp.StatusCode)
	}

	var pr parseResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxJSONResponseBytes)).Decode(&pr); err != nil {
		return nil, fmt.Errorf("decoding sections response: %w", err)
	}

	sections := make([]Section, 0, len(pr.Parse.Sections))
	for _, ws := range pr.Parse.Sections {
		sections = append(sections, Section{Title: ws.Line, Anchor: ws.Anchor})
	}
	return sections, nil
}

// sectionsURL builds the action=parse&prop=sections request URL for the
// configured page.
func (c *Client) sectionsURL() string {
	q := url.Values{}
	q.Set("action", "parse")
	q.Set("page", c.page)
	q.Set("prop", "sections")
	q.Set("format", "json")
	q.Set("origin", "*")
	return c.baseURL + "?" + q.Encode()
}
