package header

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/readmegen/internal/config"
	"github.com/vk/readmegen/internal/github"
)

func newHeaderServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/users/octocat", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"login":"octocat","followers":42}`))
	})
	mux.HandleFunc("/graphql", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"user":{
			"contributionsCollection":{},
			"repositories":{"totalCount":2,"nodes":[{"stargazerCount":3},{"stargazerCount":4}]},
			"repositoriesContributedTo":{"totalCount":1}
		}}}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestOnRenderHeader(t *testing.T) {
	srv := newHeaderServer(t)
	client := github.NewClient(&config.Profile{Username: "octocat", APIURL: srv.URL}, 1)

	block, err := OnRenderHeader(context.Background(), client, &Options{Tagline: "hello there"})
	require.NoError(t, err)

	md := block.Markdown
	assert.True(t, strings.HasPrefix(md, "> [!WARNING]\n> ```\n"))
	assert.Contains(t, md, "Followers")
	assert.Contains(t, md, "42")
	assert.Contains(t, md, "Stars")
	assert.Contains(t, md, "7") // 3 + 4 stars
	assert.Contains(t, md, "> <p>hello there</p>\n")
	assert.True(t, strings.HasSuffix(md, "\n---\n\n"))

	// Every line of the fenced figure is quoted.
	inFence := false
	for _, line := range strings.Split(md, "\n") {
		if line == "> ```" {
			inFence = !inFence
			continue
		}
		if inFence {
			assert.True(t, strings.HasPrefix(line, ">"), "line %q should be quoted", line)
		}
	}
}

func TestOnRenderHeader_CustomFigure(t *testing.T) {
	srv := newHeaderServer(t)
	client := github.NewClient(&config.Profile{Username: "octocat", APIURL: srv.URL}, 1)

	block, err := OnRenderHeader(context.Background(), client, &Options{Figure: "xx\nyy"})
	require.NoError(t, err)

	assert.Contains(t, block.Markdown, "> xx")
	assert.Contains(t, block.Markdown, "> yy")
}

func TestOnRenderHeader_NoTagline(t *testing.T) {
	srv := newHeaderServer(t)
	client := github.NewClient(&config.Profile{Username: "octocat", APIURL: srv.URL}, 1)

	block, err := OnRenderHeader(context.Background(), client, &Options{})
	require.NoError(t, err)
	assert.NotContains(t, block.Markdown, "<p>")
}
