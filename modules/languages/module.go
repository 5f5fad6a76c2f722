// Package languages renders the top-languages section: one percentage bar
// per language, optionally decorated with right-aligned ASCII art on the
// trailing rows.
package languages

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

// Options defines the attributes of the `section "languages"` block.
type Options struct {
	Top       int      `hcl:"top,optional"`
	BarWidth  int      `hcl:"bar_width,optional"`
	Art       []string `hcl:"art,optional"`
	ArtOffset int      `hcl:"art_offset,optional"`
}

// nameWidth is the column the language name is padded to.
const nameWidth = 12

// OnRenderLanguages is the handler for the 'languages' section.
func OnRenderLanguages(ctx context.Context, client *github.Client, opts any) (render.Block, error) {
	options, ok := opts.(*Options)
	if !ok {
		return render.Block{}, fmt.Errorf("languages: unexpected options type %T", opts)
	}

	top := options.Top
	if top <= 0 {
		top = 10
	}
	barWidth := options.BarWidth
	if barWidth <= 0 {
		barWidth = 20
	}
	artOffset := options.ArtOffset
	if artOffset <= 0 {
		artOffset = 50
	}

	shares, err := client.TopLanguages(ctx, top)
	if err != nil {
		return render.Block{}, fmt.Errorf("languages: %w", err)
	}

	// Rows wide enough to hold name, bar and percentage before any art.
	lineWidth := nameWidth + barWidth + 10

	var b strings.Builder
	b.WriteString("#### 🛠️ Languages\n")
	b.WriteString("```css\n")

	artStart := len(shares) - len(options.Art)
	for i, share := range shares {
		line := fmt.Sprintf("%-*s %s %.1f%%", nameWidth, share.Name, render.Bar(share.Percent, barWidth), share.Percent)
		if artIdx := i - artStart; len(options.Art) > 0 && artIdx >= 0 && artIdx < len(options.Art) {
			line = fmt.Sprintf("%-*s %*s", lineWidth, line, artOffset, options.Art[artIdx])
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("```\n\n")
	return render.Block{Markdown: b.String()}, nil
}

// Register registers the handler with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterSection("languages", &registry.RegisteredSection{
		NewOptions: func() any { return new(Options) },
		Fn:         OnRenderLanguages,
	})
}
