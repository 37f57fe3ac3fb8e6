package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"notesync/internal/domain"
)

const userAgent = "NoteSync/1.0"

// Config holds note service client configuration.
type Config struct {
	BaseURL        string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// HTTPError is a non-2xx response from the note service.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status: %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status: %d: %s", e.StatusCode, e.Body)
}

func (e *HTTPError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrUnauthorized
	case http.StatusNotFound:
		return domain.ErrNotFound
	}
	return nil
}

func (e *HTTPError) retryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests
}

// Client talks to the note service.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

// New creates a new note service client.
func New(cfg Config, logger *slog.Logger) *Client {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("component", "remote"),
	}
}

// IssueSession acquires a fresh login session id.
func (c *Client) IssueSession(ctx context.Context) (string, error) {
	var resp sessionResponse
	if err := c.doJSON(ctx, http.MethodPost, "/session", "", nil, &resp); err != nil {
		return "", fmt.Errorf("issue session: %w", err)
	}
	if resp.SessionID == "" {
		return "", errors.New("issue session: empty session id")
	}
	return resp.SessionID, nil
}

// PollLoginStatus reports whether the session was approved. It makes a single
// request; the login poller's tick budget stands in for retries.
func (c *Client) PollLoginStatus(ctx context.Context, sessionID string) (*domain.LoginStatus, error) {
	var resp loginStatusResponse
	path := "/session/status?sessionId=" + url.QueryEscape(sessionID)
	if err := c.doJSONAttempts(ctx, 1, http.MethodGet, path, "", nil, &resp); err != nil {
		return nil, fmt.Errorf("poll login status: %w", err)
	}
	return &domain.LoginStatus{
		Approved:         resp.Status,
		Token:            resp.Token,
		UserID:           resp.ID,
		UserName:         resp.Name,
		Avatar:           resp.Avatar,
		InvalidSessionID: resp.InvalidSessionID,
	}, nil
}

// CheckIntegration asks whether the account binding is still active. A
// rejected token is reported as an invalid integration.
func (c *Client) CheckIntegration(ctx context.Context, sessionID, token string) (*domain.IntegrationStatus, error) {
	var resp checkResponse
	err := c.doJSON(ctx, http.MethodPost, "/integration/check", token, checkRequest{SessionID: sessionID}, &resp)
	if errors.Is(err, domain.ErrUnauthorized) {
		return &domain.IntegrationStatus{Valid: false}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("check integration: %w", err)
	}
	return &domain.IntegrationStatus{
		Valid:           resp.Valid,
		FailedTaskCount: resp.FailedTaskCount,
	}, nil
}

// ListPendingTasks fetches one page of tasks waiting to be synced.
func (c *Client) ListPendingTasks(ctx context.Context, token string) (*domain.TaskPage, error) {
	var resp taskListResponse
	err := c.doJSON(ctx, http.MethodGet, "/tasks/pending", token, nil, &resp)
	if errors.Is(err, domain.ErrUnauthorized) {
		return &domain.TaskPage{Valid: false}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list pending tasks: %w", err)
	}

	page := &domain.TaskPage{
		Valid:   resp.Valid,
		Limit:   resp.Limit,
		TaskIDs: make([]string, 0, len(resp.Result)),
	}
	for _, item := range resp.Result {
		page.TaskIDs = append(page.TaskIDs, item.ID)
	}
	return page, nil
}

// FetchNoteContent returns the note behind a task. A note that no longer
// exists comes back with an empty ID.
func (c *Client) FetchNoteContent(ctx context.Context, id, token string) (*domain.NoteContent, error) {
	var resp noteResponse
	err := c.doJSON(ctx, http.MethodGet, "/notes/"+url.PathEscape(id), token, nil, &resp)
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.NoteContent{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch note %s: %w", id, err)
	}

	note, err := resp.toDomain()
	if err != nil {
		return nil, fmt.Errorf("fetch note %s: %w", id, err)
	}
	return note, nil
}

func (c *Client) AckSuccess(ctx context.Context, id, token string) error {
	if err := c.doJSON(ctx, http.MethodPost, "/tasks/"+url.PathEscape(id)+"/success", token, nil, nil); err != nil {
		return fmt.Errorf("ack success %s: %w", id, err)
	}
	return nil
}

func (c *Client) AckFailure(ctx context.Context, id, token, description string) error {
	body := failureRequest{Error: description}
	if err := c.doJSON(ctx, http.MethodPost, "/tasks/"+url.PathEscape(id)+"/failure", token, body, nil); err != nil {
		return fmt.Errorf("ack failure %s: %w", id, err)
	}
	return nil
}

// Unbind revokes the integration for token.
func (c *Client) Unbind(ctx context.Context, token string) error {
	if err := c.doJSON(ctx, http.MethodPost, "/integration/unbind", token, nil, nil); err != nil {
		return fmt.Errorf("unbind: %w", err)
	}
	return nil
}

// RetryFailed re-queues every task that was acknowledged as failed.
func (c *Client) RetryFailed(ctx context.Context, token string) error {
	if err := c.doJSON(ctx, http.MethodPost, "/tasks/retry-failed", token, nil, nil); err != nil {
		return fmt.Errorf("retry failed tasks: %w", err)
	}
	return nil
}

func (c *Client) doJSON(ctx context.Context, method, path, token string, in, out any) error {
	return c.doJSONAttempts(ctx, c.maxAttempts, method, path, token, in, out)
}

func (c *Client) doJSONAttempts(ctx context.Context, maxAttempts int, method, path, token string, in, out any) error {
	var payload []byte
	if in != nil {
		var err error
		if payload, err = json.Marshal(in); err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
	}

	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = c.doRequest(ctx, method, path, token, payload, out)
		if err == nil {
			return nil
		}

		var httpErr *HTTPError
		if errors.As(err, &httpErr) && !httpErr.retryable() {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if attempt == maxAttempts {
			break
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("request failed, retrying",
			"method", method,
			"path", path,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}

	if maxAttempts > 1 {
		return fmt.Errorf("after %d attempts: %w", maxAttempts, err)
	}
	return err
}

func (c *Client) doRequest(ctx context.Context, method, path, token string, payload []byte, out any) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &HTTPError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}
