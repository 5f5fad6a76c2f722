package activity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/readmegen/internal/config"
	"github.com/vk/readmegen/internal/github"
)

func TestFormatEvent(t *testing.T) {
	event := github.Event{Type: "PushEvent"}
	event.Repo.Name = "octocat/hello"
	event.CreatedAt = time.Date(2026, 8, 25, 10, 4, 0, 0, time.UTC)

	line := formatEvent(event)
	assert.Equal(t, "2026-08-25 10:04 | Push            | octocat/hello", line)
}

func TestOnRenderActivity(t *testing.T) {
	restore := now
	now = func() time.Time { return time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = restore })

	mux := http.NewServeMux()
	mux.HandleFunc("/users/octocat/events/public", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"type":"PushEvent","repo":{"name":"octocat/one"},"created_at":"2026-08-25T10:00:00Z"},
			{"type":"WatchEvent","repo":{"name":"octocat/two"},"created_at":"2026-08-24T09:00:00Z"},
			{"type":"IssuesEvent","repo":{"name":"octocat/three"},"created_at":"2026-08-23T08:00:00Z"}
		]`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := github.NewClient(&config.Profile{Username: "octocat", APIURL: srv.URL}, 1)

	block, err := OnRenderActivity(context.Background(), client, &Options{Limit: 2})
	require.NoError(t, err)

	assert.Contains(t, block.Markdown, "#### 🔥 Activity")
	assert.Contains(t, block.Markdown, "octocat/one")
	assert.Contains(t, block.Markdown, "octocat/two")
	// The third event falls outside the limit.
	assert.NotContains(t, block.Markdown, "octocat/three")
	assert.Contains(t, block.Markdown, "Last updated: 2026-08-26 12:00:00")
}

func TestOnRenderActivity_WrongOptionsType(t *testing.T) {
	_, err := OnRenderActivity(context.Background(), nil, &struct{}{})
	require.Error(t, err)
}
