// Package activity renders the recent public activity log.
package activity

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vk/readmegen/internal/github"
	"github.com/vk/readmegen/internal/registry"
	"github.com/vk/readmegen/internal/render"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Options defines the attributes of the `section "activity"` block.
type Options struct {
	Limit int `hcl:"limit,optional"`
}

// now is stubbed in tests for a stable "Last updated" line.
var now = time.Now

const ruleWidth = 60

// OnRenderActivity is the handler for the 'activity' section.
func OnRenderActivity(ctx context.Context, client *github.Client, opts any) (render.Block, error) {
	options, ok := opts.(*Options)
	if !ok {
		return render.Block{}, fmt.Errorf("activity: unexpected options type %T", opts)
	}

	limit := options.Limit
	if limit <= 0 {
		limit = 5
	}

	events, err := client.PublicEvents(ctx)
	if err != nil {
		return render.Block{}, fmt.Errorf("activity: %w", err)
	}
	if len(events) > limit {
		events = events[:limit]
	}

	rule := strings.Repeat("-", ruleWidth)

	var b strings.Builder
	b.WriteString("#### 🔥 Activity\n")
	b.WriteString("```\n")
	b.WriteString(rule + "\n")
	for _, event := range events {
		b.WriteString(formatEvent(event))
		b.WriteString("\n")
	}
	b.WriteString(rule + "\n\n")
	fmt.Fprintf(&b, "Last updated: %s\n", now().Format("2006-01-02 15:04:05"))
	b.WriteString("```\n\n")

	return render.Block{Markdown: b.String()}, nil
}

// formatEvent renders one feed entry as `timestamp | type | repo`. The
// redundant "Event" suffix of the API's type names is dropped.
func formatEvent(event github.Event) string {
	eventType := strings.ReplaceAll(event.Type, "Event", "")
	return fmt.Sprintf("%-16s | %-15s | %s",
		event.CreatedAt.Format("2006-01-02 15:04"), eventType, event.Repo.Name)
}

// Register registers the handler with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterSection("activity", &registry.RegisteredSection{
		NewOptions: func() any { return new(Options) },
		Fn:         OnRenderActivity,
	})
}
