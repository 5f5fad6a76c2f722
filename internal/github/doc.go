// Package github is a minimal client for the pieces of the GitHub REST and
// GraphQL APIs the README sections need: public events, per-repository
// language byte counts, contribution statistics, and the follower count.
// The client is scoped to a single username and shares one tuned
// http.Client across all requests.
package github
