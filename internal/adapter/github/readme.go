// Package github fetches project READMEs from the GitHub REST API.
package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const DefaultBaseURL = "https://api.github.com"

// maxBody bounds the README response we are willing to read.
const maxBody = 4 << 20

type Fetcher struct {
	baseURL    string
	token      string
	stripHTML  bool
	httpClient *http.Client
	logger     *slog.Logger
}

type Option func(*Fetcher)

// WithToken authenticates requests, raising the API rate limit.
func WithToken(token string) Option {
	return func(f *Fetcher) { f.token = token }
}

// WithStripHTML reduces inline HTML in the README to its text.
func WithStripHTML(strip bool) Option {
	return func(f *Fetcher) { f.stripHTML = strip }
}

// WithHTTPClient replaces the default client, e.g. to apply a configured timeout.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) { f.httpClient = c }
}

func NewFetcher(baseURL string, opts ...Option) *Fetcher {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	f := &Fetcher{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     slog.Default().With("component", "github"),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

type readmeResponse struct {
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

// FetchReadme returns the decoded README of owner/repo. Every failure is
// reported as false.
func (f *Fetcher) FetchReadme(ctx context.Context, owner, repo string) (string, bool) {
	if owner == "" || repo == "" {
		f.logger.Debug("no repository for project", "owner", owner, "repo", repo)
		return "", false
	}

	text, err := f.fetch(ctx, owner, repo)
	if err != nil {
		f.logger.Warn("readme unavailable", "owner", owner, "repo", repo, "error", err)
		return "", false
	}
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	return text, true
}

func (f *Fetcher) fetch(ctx context.Context, owner, repo string) (string, error) {
	endpoint := fmt.Sprintf("%s/repos/%s/%s/readme", f.baseURL, url.PathEscape(owner), url.PathEscape(repo))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if f.token != "" {
		req.Header.Set("Authorization", "Bearer "+f.token)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch readme: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("github error: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var payload readmeResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}
	if payload.Content == "" {
		return "", fmt.Errorf("readme has no content")
	}
	if payload.Encoding != "" && payload.Encoding != "base64" {
		return "", fmt.Errorf("unsupported encoding %q", payload.Encoding)
	}

	// GitHub wraps the base64 payload at 60 columns.
	encoded := strings.NewReplacer("\n", "", "\r", "").Replace(payload.Content)
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("decode content: %w", err)
	}

	text := string(data)
	if f.stripHTML {
		text, err = stripHTML(text)
		if err != nil {
			return "", err
		}
	}
	return text, nil
}

// stripHTML drops markup such as badge rows and centered headers and keeps the
// text and image alt attributes.
func stripHTML(text string) (string, error) {
	if !strings.Contains(text, "<") {
		return text, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return "", fmt.Errorf("parse readme html: %w", err)
	}
	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		alt, _ := sel.Attr("alt")
		sel.ReplaceWithHtml(html.EscapeString(alt))
	})
	doc.Find("script, style").Remove()

	return strings.TrimSpace(doc.Text()), nil
}
