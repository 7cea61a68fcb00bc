package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/futig/design-wizard/internal/entity"
	"github.com/futig/design-wizard/internal/pkg/response"
)

// Client calls the project endpoints of a wizard server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, opts ...Option) *Client {
	cfg := defaultHTTPConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: newHTTPClient(cfg),
	}
}

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("HTTP %d %s", e.StatusCode, e.Status)
	}
	return fmt.Sprintf("HTTP %d %s: %s", e.StatusCode, e.Status, e.Message)
}

// NetworkError is a failure below HTTP (connection, timeout, etc.)
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

func (c *Client) CreateProject(ctx context.Context, req entity.CreateProjectRequest) (*entity.ProjectDetailResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request body: %w", err)
	}

	var out entity.ProjectDetailResponse
	if err := c.doJSON(ctx, http.MethodPost, "/projects", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetProject(ctx context.Context, id string) (*entity.ProjectDetailResponse, error) {
	var out entity.ProjectDetailResponse
	if err := c.doJSON(ctx, http.MethodGet, "/projects/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Generate(ctx context.Context, id string) (*entity.GenerateResponse, error) {
	var out entity.GenerateResponse
	if err := c.doJSON(ctx, http.MethodPost, "/projects/"+url.PathEscape(id)+"/generate", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Import sends an interchange document as is. The server repairs what it can.
func (c *Client) Import(ctx context.Context, id string, document []byte) (*entity.ImportResponse, error) {
	var out entity.ImportResponse
	if err := c.doJSON(ctx, http.MethodPost, "/projects/"+url.PathEscape(id)+"/import", document, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Export downloads an artifact and returns its bytes untouched.
func (c *Client) Export(ctx context.Context, id string, format entity.ExportFormat) ([]byte, error) {
	endpoint := "/projects/" + url.PathEscape(id) + "/export?format=" + url.QueryEscape(string(format))
	return c.do(ctx, http.MethodGet, endpoint, nil)
}

func (c *Client) doJSON(ctx context.Context, method, endpoint string, body []byte, out any) error {
	data, err := c.do(ctx, method, endpoint, body)
	if err != nil {
		return err
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, body []byte) ([]byte, error) {
	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Status: http.StatusText(resp.StatusCode)}
		var errBody response.ErrorResponse
		if json.Unmarshal(data, &errBody) == nil {
			apiErr.Message = errBody.Message
		}
		return nil, apiErr
	}

	return data, nil
}
