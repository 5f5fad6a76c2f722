package github

import (
	"context"

	"github.com/vk/readmegen/internal/ctxlog"
)

// Followers fetches the user's follower count. A failed lookup degrades to
// zero so a transient API error never blocks the whole render.
func (c *Client) Followers(ctx context.Context) int64 {
	var user struct {
		Followers int64 `json:"followers"`
	}
	if err := c.getJSON(ctx, c.userPath(""), &user); err != nil {
		ctxlog.FromContext(ctx).Warn("Follower lookup failed, defaulting to zero.", "error", err)
		return 0
	}
	return user.Followers
}
