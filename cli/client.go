package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"readarrbridge.app/bridge/model"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const idempotencyHeader = "X-Idempotency-Key"

// Client talks to the bridge service API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// APIError is an error answered by the service.
type APIError struct {
	StatusCode int
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server answered %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	if e.Code == "" {
		return e.Message
	}
	return e.Code + ": " + e.Message
}

// ActionResult is the answer to a retry or remove.
type ActionResult struct {
	Success bool           `json:"success"`
	Error   string         `json:"error,omitempty"`
	Outcome *model.Outcome `json:"outcome,omitempty"`
	Request *model.Request `json:"request,omitempty"`
}

type listRequestsResponse struct {
	Success bool                   `json:"success"`
	Data    []model.RequestSummary `json:"data"`
}

type requestResponse struct {
	Success bool           `json:"success"`
	Data    *model.Request `json:"data"`
}

type listCachesResponse struct {
	Success bool              `json:"success"`
	Data    []model.CacheInfo `json:"data"`
}

type flushCacheResponse struct {
	Success bool            `json:"success"`
	Data    model.CacheInfo `json:"data"`
}

func (c *Client) ListRequests(ctx context.Context, status string, limit, offset int) ([]model.RequestSummary, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", status)
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		query.Set("offset", strconv.Itoa(offset))
	}

	var out listRequestsResponse
	if err := c.do(ctx, http.MethodGet, "/api/requests", query, "", &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) GetRequest(ctx context.Context, id int64) (*model.Request, error) {
	var out requestResponse
	if err := c.do(ctx, http.MethodGet, requestPath(id, ""), nil, "", &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) RetryRequest(ctx context.Context, id int64, idempotencyKey string) (*ActionResult, error) {
	var out ActionResult
	if err := c.do(ctx, http.MethodPost, requestPath(id, "retry"), nil, idempotencyKey, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RemoveRequest(ctx context.Context, id int64, idempotencyKey string) (*ActionResult, error) {
	var out ActionResult
	if err := c.do(ctx, http.MethodPost, requestPath(id, "remove"), nil, idempotencyKey, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListCaches(ctx context.Context) ([]model.CacheInfo, error) {
	var out listCachesResponse
	if err := c.do(ctx, http.MethodGet, "/api/caches", nil, "", &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) FlushCache(ctx context.Context, id string) (*model.CacheInfo, error) {
	var out flushCacheResponse
	if err := c.do(ctx, http.MethodPost, "/api/caches/"+url.PathEscape(id)+"/flush", nil, "", &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func requestPath(id int64, action string) string {
	path := "/api/requests/" + strconv.FormatInt(id, 10)
	if action != "" {
		path += "/" + action
	}
	return path
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, idempotencyKey string, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if idempotencyKey != "" {
		req.Header.Set(idempotencyHeader, idempotencyKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		_ = json.Unmarshal(body, apiErr)
		return apiErr
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
