package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// Stats is the aggregated contribution summary for a user.
type Stats struct {
	TotalCommits  int64
	TotalPRs      int64
	TotalIssues   int64
	TotalStars    int64
	ReposOwned    int64
	ContributedTo int64
}

// statsQuery asks the GraphQL API for the contribution collection, owned
// repositories (with star counts, forks excluded) and the contributed-to
// count in a single round trip.
const statsQuery = `
query {
  user(login: %q) {
    contributionsCollection {
      totalCommitContributions
      totalPullRequestContributions
      totalIssueContributions
      restrictedContributionsCount
    }
    repositories(first: 100, ownerAffiliations: OWNER, isFork: false) {
      totalCount
      nodes {
        stargazerCount
      }
    }
    repositoriesContributedTo(first: 1, contributionTypes: [COMMIT, ISSUE, PULL_REQUEST, REPOSITORY]) {
      totalCount
    }
  }
}`

// statsResponse mirrors the GraphQL response shape.
type statsResponse struct {
	Data struct {
		User struct {
			ContributionsCollection struct {
				TotalCommitContributions      int64 `json:"totalCommitContributions"`
				TotalPullRequestContributions int64 `json:"totalPullRequestContributions"`
				TotalIssueContributions       int64 `json:"totalIssueContributions"`
				RestrictedContributionsCount  int64 `json:"restrictedContributionsCount"`
			} `json:"contributionsCollection"`
			Repositories struct {
				TotalCount int64 `json:"totalCount"`
				Nodes      []struct {
					StargazerCount int64 `json:"stargazerCount"`
				} `json:"nodes"`
			} `json:"repositories"`
			RepositoriesContributedTo struct {
				TotalCount int64 `json:"totalCount"`
			} `json:"repositoriesContributedTo"`
		} `json:"user"`
	} `json:"data"`
}

// Stats fetches the contribution summary. The result is cached for the
// lifetime of the client, so multiple sections can share one GraphQL call.
func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	c.statsOnce.Do(func() {
		c.stats, c.statsErr = c.fetchStats(ctx)
	})
	return c.stats, c.statsErr
}

func (c *Client) fetchStats(ctx context.Context) (*Stats, error) {
	payload, err := json.Marshal(map[string]string{
		"query": fmt.Sprintf(statsQuery, c.username),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode GraphQL query: %w", err)
	}

	var resp statsResponse
	if err := c.postJSON(ctx, c.baseURL+"/graphql", bytes.NewReader(payload), &resp); err != nil {
		return nil, err
	}

	user := resp.Data.User
	var totalStars int64
	for _, repo := range user.Repositories.Nodes {
		totalStars += repo.StargazerCount
	}

	contributions := user.ContributionsCollection
	return &Stats{
		TotalCommits:  contributions.TotalCommitContributions + contributions.RestrictedContributionsCount,
		TotalPRs:      contributions.TotalPullRequestContributions,
		TotalIssues:   contributions.TotalIssueContributions,
		TotalStars:    totalStars,
		ReposOwned:    user.Repositories.TotalCount,
		ContributedTo: user.RepositoriesContributedTo.TotalCount,
	}, nil
}
