package catalog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"encore.dev/rlog"

	"readarrbridge.app/bridge/model"
)

const (
	apiPrefix          = "/api/v1"
	apiKeyHeader       = "X-Api-Key"
	defaultTimeout     = 30 * time.Second
	maxErrorBodyLength = 512

	pathSearch           = "/search"
	pathMetadataProfiles = "/metadataprofile"
	pathBook             = "/book"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ReadarrClient talks to the Readarr v1 HTTP API.
type ReadarrClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// ReadarrOption customizes a ReadarrClient.
type ReadarrOption func(*ReadarrClient)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) ReadarrOption {
	return func(r *ReadarrClient) {
		if c != nil {
			r.httpClient = c
		}
	}
}

// WithTimeout sets the per-call timeout of the default HTTP client.
func WithTimeout(d time.Duration) ReadarrOption {
	return func(r *ReadarrClient) {
		if d > 0 {
			r.httpClient.Timeout = d
		}
	}
}

// NewReadarrClient builds a client for the Readarr instance at baseURL.
func NewReadarrClient(baseURL, apiKey string, opts ...ReadarrOption) (*ReadarrClient, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, fmt.Errorf("readarr: base url must be provided")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("readarr: invalid base url: %w", err)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("readarr: api key must be provided")
	}

	c := &ReadarrClient{
		baseURL:    strings.TrimRight(baseURL, "/") + apiPrefix,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// flexID accepts identifiers encoded either as JSON strings or numbers.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	*f = flexID(b)
	return nil
}

type searchResult struct {
	ForeignID flexID      `json:"foreignId"`
	Book      *searchBook `json:"book"`
}

type searchBook struct {
	Title         string        `json:"title"`
	ForeignBookID flexID        `json:"foreignBookId"`
	Author        *searchAuthor `json:"author"`
}

type searchAuthor struct {
	ForeignAuthorID flexID `json:"foreignAuthorId"`
	AuthorName      string `json:"authorName"`
}

// SearchBooks runs a free-text search. Results without a book keep their rank
// but carry no identifiers.
func (c *ReadarrClient) SearchBooks(ctx context.Context, query string) ([]model.Candidate, error) {
	var results []searchResult
	if _, err := c.do(ctx, http.MethodGet, pathSearch, url.Values{"term": {query}}, nil, &results); err != nil {
		return nil, err
	}

	candidates := make([]model.Candidate, 0, len(results))
	for _, r := range results {
		var cand model.Candidate
		if r.Book != nil {
			cand.Title = r.Book.Title
			cand.ForeignBookID = string(r.Book.ForeignBookID)
			if r.Book.Author != nil {
				cand.ForeignAuthorID = string(r.Book.Author.ForeignAuthorID)
				cand.AuthorName = r.Book.Author.AuthorName
			}
		}
		candidates = append(candidates, cand)
	}
	return candidates, nil
}

func (c *ReadarrClient) GetMetadataProfiles(ctx context.Context) ([]model.MetadataProfile, error) {
	var profiles []model.MetadataProfile
	if _, err := c.do(ctx, http.MethodGet, pathMetadataProfiles, nil, nil, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

type addBookAuthor struct {
	ForeignAuthorID   string           `json:"foreignAuthorId"`
	QualityProfileID  int32            `json:"qualityProfileId"`
	MetadataProfileID int32            `json:"metadataProfileId"`
	RootFolderPath    string           `json:"rootFolderPath"`
	Monitored         bool             `json:"monitored"`
	Tags              []int32          `json:"tags"`
	AddOptions        authorAddOptions `json:"addOptions"`
}

type authorAddOptions struct {
	Monitor               string `json:"monitor"`
	SearchForMissingBooks bool   `json:"searchForMissingBooks"`
}

type addBookRequest struct {
	Title         string         `json:"title"`
	ForeignBookID string         `json:"foreignBookId"`
	Monitored     bool           `json:"monitored"`
	AnyEditionOk  bool           `json:"anyEditionOk"`
	Author        addBookAuthor  `json:"author"`
	Editions      []any          `json:"editions"`
	AddOptions    bookAddOptions `json:"addOptions"`
}

type bookAddOptions struct {
	SearchForNewBook bool `json:"searchForNewBook"`
}

// AddBook adds the book and its author to Readarr and monitors the book.
func (c *ReadarrClient) AddBook(ctx context.Context, spec model.AddBookSpec) (*model.AddedBook, error) {
	tags := spec.Tags
	if tags == nil {
		tags = []int32{}
	}

	body := addBookRequest{
		Title:         spec.Title,
		ForeignBookID: strconv.FormatInt(spec.ForeignBookID, 10),
		Monitored:     true,
		AnyEditionOk:  true,
		Author: addBookAuthor{
			ForeignAuthorID:   strconv.FormatInt(spec.ForeignAuthorID, 10),
			QualityProfileID:  spec.QualityProfileID,
			MetadataProfileID: spec.MetadataProfileID,
			RootFolderPath:    spec.RootFolderPath,
			Monitored:         true,
			Tags:              tags,
			AddOptions:        authorAddOptions{Monitor: "none", SearchForMissingBooks: false},
		},
		Editions:   []any{},
		AddOptions: bookAddOptions{SearchForNewBook: spec.SearchNow},
	}

	var added model.AddedBook
	raw, err := c.do(ctx, http.MethodPost, pathBook, nil, body, &added)
	if err != nil {
		return nil, err
	}
	added.Raw = raw
	return &added, nil
}

// do performs one API call and decodes a 2xx body into out. It returns the raw body.
func (c *ReadarrClient) do(ctx context.Context, method, path string, query url.Values, in, out any) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("readarr: encode %s %s: %w", method, path, err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("readarr: build %s %s: %w", method, path, err)
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("readarr: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("readarr: read %s %s response: %w", method, path, err)
	}

	rlog.Debug("readarr call", "method", method, "path", path, "status", resp.StatusCode, "duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body := string(raw)
		if len(body) > maxErrorBodyLength {
			body = body[:maxErrorBodyLength]
		}
		return nil, &APIError{Method: method, Path: path, StatusCode: resp.StatusCode, Body: body}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return nil, fmt.Errorf("readarr: decode %s %s response: %w", method, path, err)
		}
	}
	return raw, nil
}
