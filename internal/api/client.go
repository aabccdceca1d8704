package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/sabhahq/sabha/internal/errors"
	"github.com/sabhahq/sabha/internal/log"
)

// TokenSource supplies the current bearer token. An empty string means
// no credential is attached.
type TokenSource interface {
	Token() string
}

// Client is the association backend API client.
//
// All outbound requests flow through here: the bearer credential is
// attached centrally and HTTP 401 responses trigger the unauthorized
// hook exactly once per failing response. Every other status passes
// through to the caller.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	tokens       TokenSource
	unauthorized func()
	logger       *log.Logger
}

// NewClient creates a new API client
func NewClient(baseURL string, tokens TokenSource, logger *log.Logger) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		tokens: tokens,
		logger: logger,
	}
}

// SetUnauthorizedHook registers the handler invoked when the server
// rejects the session token. The hook is responsible for clearing
// session state and for guarding against redirect loops.
func (c *Client) SetUnauthorizedHook(fn func()) {
	c.unauthorized = fn
}

// doRequest performs a JSON HTTP request with authentication
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.decorate(req)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.NewAPIRequestError(err)
	}

	return resp, nil
}

// doUpload performs a multipart/form-data upload. The content type comes
// from the multipart writer so the boundary is always correct; no JSON
// content type is ever forced onto an upload.
func (c *Client) doUpload(ctx context.Context, path string, fields map[string]string, fileField, fileName string, file io.Reader) (*http.Response, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			return nil, fmt.Errorf("failed to write form field %s: %w", key, err)
		}
	}

	part, err := w.CreateFormFile(fileField, fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to copy file contents: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", w.FormDataContentType())
	c.decorate(req)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.NewAPIRequestError(err)
	}

	return resp, nil
}

// decorate attaches the bearer credential and a request ID
func (c *Client) decorate(req *http.Request) {
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// parseResponse parses the response body into the target struct.
//
// A 401 fires the unauthorized hook before returning; this is the only
// place token invalidation is detected, so callers never need their own
// 401 handling.
func (c *Client) parseResponse(resp *http.Response, target interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if c.logger != nil {
			c.logger.Warn("server rejected session token", "status", resp.StatusCode)
		}
		if c.unauthorized != nil {
			c.unauthorized()
		}
		return errors.NewUnauthorizedError()
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)

		var errResp ErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil {
			if errResp.Error != "" {
				return errors.NewAPIServerError(resp.StatusCode, errResp.Error)
			}
			if errResp.Message != "" {
				return errors.NewAPIServerError(resp.StatusCode, errResp.Message)
			}
		}

		return errors.NewAPIServerError(resp.StatusCode, string(body))
	}

	if target != nil {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return errors.Wrap(errors.ErrCodeAPIResponse, "failed to decode response", err)
		}
	}

	return nil
}

// get issues a GET request and decodes the response into target
func (c *Client) get(ctx context.Context, path string, target interface{}) error {
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return c.parseResponse(resp, target)
}

// post issues a POST request and decodes the response into target
func (c *Client) post(ctx context.Context, path string, body, target interface{}) error {
	resp, err := c.doRequest(ctx, http.MethodPost, path, body)
	if err != nil {
		return err
	}
	return c.parseResponse(resp, target)
}
