package github

import (
	"context"
	"time"
)

// Event is one entry of a user's public activity feed.
type Event struct {
	Type string `json:"type"`
	Repo struct {
		Name string `json:"name"`
	} `json:"repo"`
	CreatedAt time.Time `json:"created_at"`
}

// PublicEvents fetches the user's public activity feed, newest first.
func (c *Client) PublicEvents(ctx context.Context) ([]Event, error) {
	var events []Event
	if err := c.getJSON(ctx, c.userPath("/events/public"), &events); err != nil {
		return nil, err
	}
	return events, nil
}
