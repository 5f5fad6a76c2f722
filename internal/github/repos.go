package github

import (
	"context"
	"sort"
	"sync"
)

// Repo is the subset of repository metadata the sections need.
type Repo struct {
	Name         string `json:"name"`
	FullName     string `json:"full_name"`
	Fork         bool   `json:"fork"`
	Stars        int64  `json:"stargazers_count"`
	LanguagesURL string `json:"languages_url"`
}

// Repos lists the user's repositories.
func (c *Client) Repos(ctx context.Context) ([]Repo, error) {
	var repos []Repo
	if err := c.getJSON(ctx, c.userPath("/repos"), &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// LanguageShare is one language's share of the user's total code, as a
// percentage of all language bytes across all repositories.
type LanguageShare struct {
	Name    string
	Percent float64
}

// TopLanguages aggregates per-repository language byte counts into overall
// percentages, sorted descending, truncated to the top entries. Repositories
// are fetched concurrently by a bounded worker pool.
//
// Percentages are computed against the aggregate total before truncation, so
// the untruncated set sums to 100 within float tolerance. When the user has
// no language data at all the result is empty.
func (c *Client) TopLanguages(ctx context.Context, top int) ([]LanguageShare, error) {
	repos, err := c.Repos(ctx)
	if err != nil {
		return nil, err
	}

	jobs := make(chan string)
	var wg sync.WaitGroup

	var mu sync.Mutex
	totals := make(map[string]int64)
	var firstErr error

	for w := 0; w < c.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for u := range jobs {
				var langs map[string]int64
				err := c.getJSON(ctx, u, &langs)

				mu.Lock()
				if err != nil {
					if firstErr == nil {
						firstErr = err
					}
				} else {
					for lang, bytes := range langs {
						totals[lang] += bytes
					}
				}
				mu.Unlock()
			}
		}()
	}

	for _, repo := range repos {
		if repo.LanguagesURL == "" {
			continue
		}
		jobs <- repo.LanguagesURL
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	var total int64
	for _, bytes := range totals {
		total += bytes
	}
	if total == 0 {
		return nil, nil
	}

	shares := make([]LanguageShare, 0, len(totals))
	for lang, bytes := range totals {
		shares = append(shares, LanguageShare{
			Name:    lang,
			Percent: float64(bytes) / float64(total) * 100.0,
		})
	}

	// Descending by share, name as the deterministic tie-break.
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Percent != shares[j].Percent {
			return shares[i].Percent > shares[j].Percent
		}
		return shares[i].Name < shares[j].Name
	})

	if top > 0 && len(shares) > top {
		shares = shares[:top]
	}
	return shares, nil
}
