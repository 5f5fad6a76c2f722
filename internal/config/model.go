package config

import (
	"github.com/hashicorp/hcl/v2"
)

// Model is the unified, format-agnostic representation of the entire
// application configuration: the profile to render, the output target, the
// ordered list of README sections, and the optional daemon schedule.
type Model struct {
	Profile  *Profile
	Output   *Output
	Sections []*Section
	Schedule *Schedule

	// EvalCtx carries the evaluation context the sections were parsed
	// under, so section option bodies can be decoded lazily with the same
	// variables (e.g. env.*) available.
	EvalCtx *hcl.EvalContext
}

// Profile identifies the GitHub account the README is generated for.
type Profile struct {
	Username  string
	Token     string
	APIURL    string
	UserAgent string
}

// Output describes where the rendered document goes and how it is published.
type Output struct {
	Path          string
	CommitMessage string
	Push          bool
	Remote        string
	Branch        string
}

// Section is the format-agnostic representation of a `section` block. The
// body holds the section's options; it is decoded against the registered
// handler's options struct at startup.
type Section struct {
	Name string
	Body hcl.Body
}

// Schedule configures the in-process daemon trigger.
type Schedule struct {
	Cron string
}

// DefaultCommitMessage is used when the output block does not override it.
const DefaultCommitMessage = "docs: update README"

// DefaultCron matches the original daily trigger of the automation job.
const DefaultCron = "0 0 * * *"

// ApplyDefaults fills in the documented defaults for any omitted fields.
func (m *Model) ApplyDefaults() {
	if m.Profile == nil {
		m.Profile = &Profile{}
	}
	if m.Profile.APIURL == "" {
		m.Profile.APIURL = "https://api.github.com"
	}
	if m.Profile.UserAgent == "" {
		m.Profile.UserAgent = "readmegen"
	}
	if m.Output == nil {
		m.Output = &Output{}
	}
	if m.Output.Path == "" {
		m.Output.Path = "README.md"
	}
	if m.Output.CommitMessage == "" {
		m.Output.CommitMessage = DefaultCommitMessage
	}
	if m.Output.Remote == "" {
		m.Output.Remote = "origin"
	}
	if m.Schedule == nil {
		m.Schedule = &Schedule{}
	}
	if m.Schedule.Cron == "" {
		m.Schedule.Cron = DefaultCron
	}
}
