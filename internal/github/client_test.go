package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/readmegen/internal/config"
)

// newTestClient points a client at a local fake GitHub server.
func newTestClient(srv *httptest.Server) *Client {
	return NewClient(&config.Profile{
		Username:  "octocat",
		Token:     "test-token",
		APIURL:    srv.URL,
		UserAgent: "readmegen-test",
	}, 2)
}

func TestPublicEvents(t *testing.T) {
	t.Parallel()

	var gotAuth, gotAccept, gotAgent string
	mux := http.NewServeMux()
	mux.HandleFunc("/users/octocat/events/public", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		gotAgent = r.Header.Get("User-Agent")
		w.Write([]byte(`[
			{"type":"PushEvent","repo":{"name":"octocat/hello"},"created_at":"2026-08-25T10:04:00Z"},
			{"type":"WatchEvent","repo":{"name":"octocat/world"},"created_at":"2026-08-24T09:00:00Z"}
		]`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	events, err := newTestClient(srv).PublicEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "PushEvent", events[0].Type)
	assert.Equal(t, "octocat/hello", events[0].Repo.Name)
	assert.Equal(t, 2026, events[0].CreatedAt.Year())

	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "application/vnd.github+json", gotAccept)
	assert.Equal(t, "readmegen-test", gotAgent)
}

func TestPublicEvents_ErrorStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).PublicEvents(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}

func TestFollowers(t *testing.T) {
	t.Parallel()

	t.Run("returns the follower count", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/users/octocat", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"login":"octocat","followers":123}`))
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		assert.Equal(t, int64(123), newTestClient(srv).Followers(context.Background()))
	})

	t.Run("degrades to zero on failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		assert.Equal(t, int64(0), newTestClient(srv).Followers(context.Background()))
	})
}

func TestStats(t *testing.T) {
	t.Parallel()

	var requests int
	mux := http.NewServeMux()
	mux.HandleFunc("/graphql", func(w http.ResponseWriter, r *http.Request) {
		requests++
		require.Equal(t, http.MethodPost, r.Method)
		w.Write([]byte(`{"data":{"user":{
			"contributionsCollection":{
				"totalCommitContributions":900,
				"totalPullRequestContributions":40,
				"totalIssueContributions":15,
				"restrictedContributionsCount":100
			},
			"repositories":{"totalCount":12,"nodes":[{"stargazerCount":5},{"stargazerCount":7}]},
			"repositoriesContributedTo":{"totalCount":3}
		}}}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(srv)
	stats, err := client.Stats(context.Background())
	require.NoError(t, err)

	// Restricted contributions count toward the commit total.
	assert.Equal(t, int64(1000), stats.TotalCommits)
	assert.Equal(t, int64(40), stats.TotalPRs)
	assert.Equal(t, int64(15), stats.TotalIssues)
	assert.Equal(t, int64(12), stats.ReposOwned)
	assert.Equal(t, int64(3), stats.ContributedTo)
	assert.Equal(t, int64(12), stats.TotalStars)

	// A second call is served from the per-client cache.
	again, err := client.Stats(context.Background())
	require.NoError(t, err)
	assert.Same(t, stats, again)
	assert.Equal(t, 1, requests)
}

func TestTopLanguages(t *testing.T) {
	t.Parallel()

	t.Run("aggregates and sorts shares", func(t *testing.T) {
		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		mux.HandleFunc("/users/octocat/repos", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[
				{"name":"a","languages_url":"` + srv.URL + `/repos/octocat/a/languages"},
				{"name":"b","languages_url":"` + srv.URL + `/repos/octocat/b/languages"}
			]`))
		})
		mux.HandleFunc("/repos/octocat/a/languages", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"Go":5000,"Rust":2500}`))
		})
		mux.HandleFunc("/repos/octocat/b/languages", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"Go":2500}`))
		})

		shares, err := newTestClient(srv).TopLanguages(context.Background(), 10)
		require.NoError(t, err)
		require.Len(t, shares, 2)

		assert.Equal(t, "Go", shares[0].Name)
		assert.InDelta(t, 75.0, shares[0].Percent, 0.001)
		assert.Equal(t, "Rust", shares[1].Name)
		assert.InDelta(t, 25.0, shares[1].Percent, 0.001)
	})

	t.Run("truncates to top entries", func(t *testing.T) {
		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		mux.HandleFunc("/users/octocat/repos", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"name":"a","languages_url":"` + srv.URL + `/repos/octocat/a/languages"}]`))
		})
		mux.HandleFunc("/repos/octocat/a/languages", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"Go":60,"Rust":30,"Zig":10}`))
		})

		shares, err := newTestClient(srv).TopLanguages(context.Background(), 2)
		require.NoError(t, err)
		require.Len(t, shares, 2)
		assert.Equal(t, "Go", shares[0].Name)
		assert.Equal(t, "Rust", shares[1].Name)
	})

	t.Run("no language data yields empty result", func(t *testing.T) {
		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		mux.HandleFunc("/users/octocat/repos", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"name":"a","languages_url":"` + srv.URL + `/repos/octocat/a/languages"}]`))
		})
		mux.HandleFunc("/repos/octocat/a/languages", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		})

		shares, err := newTestClient(srv).TopLanguages(context.Background(), 10)
		require.NoError(t, err)
		assert.Empty(t, shares)
	})

	t.Run("propagates a repo fetch failure", func(t *testing.T) {
		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		mux.HandleFunc("/users/octocat/repos", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"name":"a","languages_url":"` + srv.URL + `/repos/octocat/a/languages"}]`))
		})
		mux.HandleFunc("/repos/octocat/a/languages", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := newTestClient(srv).TopLanguages(context.Background(), 10)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 502")
	})
}
