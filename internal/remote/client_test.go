package remote

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notesync/internal/domain"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return New(Config{
		BaseURL:        srv.URL + "/",
		Timeout:        5 * time.Second,
		MaxAttempts:    3,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
	}, logger)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func TestIssueSession(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/session", r.URL.Path)
		writeJSON(w, map[string]any{"sessionId": "sess-1"})
	}))

	id, err := client.IssueSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "sess-1", id)
}

func TestPollLoginStatus(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "sess-1", r.URL.Query().Get("sessionId"))
		writeJSON(w, map[string]any{
			"status": true, "token": "tok", "id": "u1", "name": "Ada", "avatar": "a.png",
		})
	}))

	status, err := client.PollLoginStatus(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, &domain.LoginStatus{
		Approved: true, Token: "tok", UserID: "u1", UserName: "Ada", Avatar: "a.png",
	}, status)
}

func TestListPendingTasks(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		writeJSON(w, map[string]any{
			"valid":  true,
			"limit":  20,
			"result": []map[string]string{{"id": "t1"}, {"id": "t2"}},
		})
	}))

	page, err := client.ListPendingTasks(context.Background(), "tok")
	require.NoError(t, err)
	assert.True(t, page.Valid)
	assert.Equal(t, 20, page.Limit)
	assert.Equal(t, []string{"t1", "t2"}, page.TaskIDs)
}

func TestListPendingTasks_Unauthorized(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))

	page, err := client.ListPendingTasks(context.Background(), "tok")
	require.NoError(t, err)
	assert.False(t, page.Valid)
	assert.Equal(t, int32(1), calls.Load(), "4xx is not retried")
}

func TestCheckIntegration(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req checkRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "sess-1", req.SessionID)
		writeJSON(w, map[string]any{"valid": true, "failedTaskCount": 3})
	}))

	status, err := client.CheckIntegration(context.Background(), "sess-1", "tok")
	require.NoError(t, err)
	assert.Equal(t, &domain.IntegrationStatus{Valid: true, FailedTaskCount: 3}, status)
}

func TestFetchNoteContent(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/notes/n-1", r.URL.Path)
		_, _ = io.WriteString(w, `{
			"id": "n-1",
			"title": "Bar",
			"superType": "SUPER_RICH_TEXT",
			"noteType": "HIGHLIGHT",
			"properties": [
				{"key": "author", "value": "Ada"},
				{"key": "labels", "value": ["x", "y"]},
				{"key": "words", "value": 120},
				{"key": "author", "value": "Grace"}
			],
			"text": "quoted text",
			"tags": ["reading"],
			"relatedContentTitle": "Foo",
			"relatedContentSuperType": "SUPER_LINK"
		}`)
	}))

	note, err := client.FetchNoteContent(context.Background(), "n-1", "tok")
	require.NoError(t, err)

	assert.True(t, note.Exists())
	assert.Equal(t, domain.SuperRichText, note.SuperType)
	assert.Equal(t, domain.NoteHighlight, note.NoteType)
	assert.True(t, note.AnchoredToLink())
	assert.Equal(t, map[string]any{
		"author": "Grace",
		"labels": []string{"x", "y"},
		"words":  "120",
	}, note.PropertyMap())
}

func TestFetchNoteContent_Gone(t *testing.T) {
	tests := map[string]http.HandlerFunc{
		"null id": func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"id": null}`)
		},
		"404": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		},
	}

	for name, handler := range tests {
		t.Run(name, func(t *testing.T) {
			client := newTestClient(t, handler)

			note, err := client.FetchNoteContent(context.Background(), "n-1", "tok")
			require.NoError(t, err)
			assert.False(t, note.Exists())
		})
	}
}

func TestRetryOnServerError(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	err := client.AckSuccess(context.Background(), "t1", "tok")
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestRetryExhausted(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	err := client.RetryFailed(context.Background(), "tok")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.Contains(t, err.Error(), "boom")

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
	assert.Equal(t, int32(3), calls.Load())
}

func TestPollLoginStatus_NoRetryOnServerError(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "unavailable", http.StatusInternalServerError)
	}))

	status, err := client.PollLoginStatus(context.Background(), "sess-1")

	require.Error(t, err)
	assert.Nil(t, status)
	assert.NotContains(t, err.Error(), "attempts")
	assert.Equal(t, int32(1), calls.Load())
}

func TestAckFailure_SendsDescription(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tasks/t1/failure", r.URL.Path)
		var req failureRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "write failed", req.Error)
		w.WriteHeader(http.StatusOK)
	}))

	require.NoError(t, client.AckFailure(context.Background(), "t1", "tok", "write failed"))
}

func TestUnbind_Unauthorized(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))

	err := client.Unbind(context.Background(), "tok")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestCalculateBackoff(t *testing.T) {
	c := &Client{initialBackoff: time.Second, maxBackoff: 5 * time.Second}

	assert.Equal(t, time.Second, c.calculateBackoff(1))
	assert.Equal(t, 2*time.Second, c.calculateBackoff(2))
	assert.Equal(t, 4*time.Second, c.calculateBackoff(3))
	assert.Equal(t, 5*time.Second, c.calculateBackoff(4))
}
