// Package stats renders the contribution statistics table.
package stats

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/readmegen/internal/github"
	"github.com/vk/readmegen/internal/registry"
	"github.com/vk/readmegen/internal/render"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Options is empty; the stats section has no attributes yet.
type Options struct{}

const tableBorder = "+-------------+------------------------+----------------+--------------------------------------+"

// OnRenderStats is the handler for the 'stats' section.
func OnRenderStats(ctx context.Context, client *github.Client, opts any) (render.Block, error) {
	if _, ok := opts.(*Options); !ok {
		return render.Block{}, fmt.Errorf("stats: unexpected options type %T", opts)
	}

	stats, err := client.Stats(ctx)
	if err != nil {
		return render.Block{}, fmt.Errorf("stats: %w", err)
	}

	var b strings.Builder
	b.WriteString("#### 📊 Stats\n")
	b.WriteString("```\n")
	b.WriteString(tableBorder + "\n")
	b.WriteString("|   Metric    |         Value          |     Metric     |                Value                 |\n")
	b.WriteString(tableBorder + "\n")
	fmt.Fprintf(&b, "|   Commits   | %22d | Issues opened  | %36d |\n", stats.TotalCommits, stats.TotalIssues)
	fmt.Fprintf(&b, "| PRs opened  | %22d | Stars received | %36d |\n", stats.TotalPRs, stats.TotalStars)
	fmt.Fprintf(&b, "| Repos owned | %22d | Contributed to | %36d |\n", stats.ReposOwned, stats.ContributedTo)
	b.WriteString(tableBorder + "\n")
	b.WriteString("```\n\n")

	return render.Block{Markdown: b.String()}, nil
}

// Register registers the handler with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterSection("stats", &registry.RegisteredSection{
		NewOptions: func() any { return new(Options) },
		Fn:         OnRenderStats,
	})
}
