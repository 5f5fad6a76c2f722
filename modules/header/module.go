// Package header renders the top of the README: an ASCII figure laid out
// beside follower and star badges inside a quoted code fence, followed by an
// optional tagline.
package header

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/vk/readmegen/internal/github"
	"github.com/vk/readmegen/internal/registry"
	"github.com/vk/readmegen/internal/render"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Options defines the attributes of the `section "header"` block.
type Options struct {
	Tagline    string `hcl:"tagline,optional"`
	Figure     string `hcl:"figure,optional"`
	BadgeWidth int    `hcl:"badge_width,optional"`
}

// badgeOffset is how many rows down the badge column starts relative to the
// figure.
const badgeOffset = 4

// defaultFigure is used when the config does not supply its own art.
const defaultFigure = `
        .--.
       |o_o |
       |:_/ |
      //   \ \
     (|     | )
    /'\_   _/` + "`" + `\
    \___)=(___/
`

// OnRenderHeader is the handler for the 'header' section.
func OnRenderHeader(ctx context.Context, client *github.Client, opts any) (render.Block, error) {
	options, ok := opts.(*Options)
	if !ok {
		return render.Block{}, fmt.Errorf("header: unexpected options type %T", opts)
	}

	badgeWidth := options.BadgeWidth
	if badgeWidth <= 0 {
		badgeWidth = 20
	}
	figure := options.Figure
	if figure == "" {
		figure = defaultFigure
	}

	followers := client.Followers(ctx)
	stats, err := client.Stats(ctx)
	if err != nil {
		return render.Block{}, fmt.Errorf("header: %w", err)
	}

	followersBadge := render.Badge("Followers", strconv.FormatInt(followers, 10), badgeWidth)
	starsBadge := render.Badge("Stars", strconv.FormatInt(stats.TotalStars, 10), badgeWidth)

	figureLines := strings.Split(strings.Trim(figure, "\n"), "\n")
	badgeLines := strings.Split(followersBadge+"\n\n"+starsBadge, "\n")

	width := 0
	for _, line := range figureLines {
		if n := utf8.RuneCountInString(line); n > width {
			width = n
		}
	}

	var b strings.Builder
	b.WriteString("> [!WARNING]\n> ```\n")
	for _, line := range render.SideBySide(figureLines, badgeLines, badgeOffset, width+2) {
		b.WriteString(strings.TrimRight("> "+line, " "))
		b.WriteString("\n")
	}
	b.WriteString("> ```\n")
	if options.Tagline != "" {
		fmt.Fprintf(&b, "> <p>%s</p>\n", options.Tagline)
	}
	b.WriteString("\n---\n\n")

	return render.Block{Markdown: b.String()}, nil
}

// Register registers the handler with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterSection("header", &registry.RegisteredSection{
		NewOptions: func() any { return new(Options) },
		Fn:         OnRenderHeader,
	})
}
