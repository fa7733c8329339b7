package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/homearc/homearc/internal/apperrors"
	"github.com/homearc/homearc/internal/notify"
)

// request describes one backend call before execution.
type request struct {
	method  string
	path    string
	query   url.Values
	body    any           // marshalled to JSON when non-nil
	raw     io.Reader     // pre-encoded body (multipart uploads); overrides body
	rawType string        // content type for raw bodies
	timeout time.Duration // zero means the client default
	cached  bool          // route through the caching transport
}

// execute performs the call and classifies the result.
//
// Exactly one of three things happens: a response arrives within the timeout
// and an Outcome is returned (success or application error), or the call
// fails in transport and an error is returned. The deadline context is
// cancelled on every path, which also aborts the in-flight request once the
// caller stops waiting.
func (c *Client) execute(ctx context.Context, req request) (*Outcome, error) {
	timeout := req.timeout
	if timeout <= 0 {
		timeout = c.timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	rel := &url.URL{Path: req.path}
	if req.query != nil {
		rel.RawQuery = req.query.Encode()
	}
	reqURL := c.baseURL.ResolveReference(rel)

	var bodyReader io.Reader
	contentType := ""
	switch {
	case req.raw != nil:
		bodyReader = req.raw
		contentType = req.rawType
	case req.body != nil:
		encoded, err := json.Marshal(req.body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
		contentType = "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, reqURL.String(), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	httpClient := c.httpClient
	if req.cached && c.cachedClient != nil {
		httpClient = c.cachedClient
	}

	start := time.Now()
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		observeRequest(req.method, outcomeTransport, time.Since(start))
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("request %s %s timed out after %s: %w", req.method, req.path, timeout, err)
		}
		return nil, fmt.Errorf("execute request %s %s: %w", req.method, req.path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		observeRequest(req.method, outcomeTransport, time.Since(start))
		return nil, fmt.Errorf("read response body: %w", err)
	}

	outcome := &Outcome{Status: resp.StatusCode, Body: payload}
	if outcome.OK() {
		observeRequest(req.method, outcomeSuccess, time.Since(start))
		return outcome, nil
	}

	outcome.AppErr = decodeAppError(resp.StatusCode, payload)
	observeRequest(req.method, outcomeAppError, time.Since(start))

	// Write-protect rejections are intercepted here so that every mutating
	// operation surfaces the same warning, exactly once per call.
	if outcome.Status == http.StatusForbidden && outcome.AppErr.Code == apperrors.ErrCodeWriteProtect {
		c.notifier.Notify(notify.New(notify.LevelWarning,
			"Write-protect mode is enabled",
			"The appliance is write-protected. Disable write-protect mode to make changes."))
	}

	return outcome, nil
}

// Method wrappers fix the HTTP method and forward defaults. They add no
// additional semantics.

func (c *Client) get(ctx context.Context, path string, query url.Values) (*Outcome, error) {
	return c.execute(ctx, request{method: http.MethodGet, path: path, query: query})
}

func (c *Client) post(ctx context.Context, path string, body any) (*Outcome, error) {
	return c.execute(ctx, request{method: http.MethodPost, path: path, body: body})
}

func (c *Client) put(ctx context.Context, path string, body any) (*Outcome, error) {
	return c.execute(ctx, request{method: http.MethodPut, path: path, body: body})
}

func (c *Client) patch(ctx context.Context, path string, body any) (*Outcome, error) {
	return c.execute(ctx, request{method: http.MethodPatch, path: path, body: body})
}

func (c *Client) delete(ctx context.Context, path string) (*Outcome, error) {
	return c.execute(ctx, request{method: http.MethodDelete, path: path})
}

// notifyAppError emits the endpoint-specific error toast for an application
// error. Write-protect rejections are skipped - the executor has already
// raised the global warning for those. A nil appErr (a 2xx response that
// missed an endpoint's stricter status contract) gets the generic message.
func (c *Client) notifyAppError(title string, appErr *AppError) {
	if appErr != nil && appErr.Code == apperrors.ErrCodeWriteProtect {
		return
	}
	message := "The request failed. Please try again."
	if appErr != nil && appErr.Message != "" {
		message = appErr.Message
	}
	c.notifier.Notify(notify.New(notify.LevelError, title, message))
}
