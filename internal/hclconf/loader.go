package hclconf

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/readmegen/internal/config"
	"github.com/vk/readmegen/internal/ctxlog"
	"github.com/vk/readmegen/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot is a struct used to decode all possible top-level blocks from any file.
type fileRoot struct {
	Profile  *profileBlock   `hcl:"profile,block"`
	Output   *outputBlock    `hcl:"output,block"`
	Sections []*sectionBlock `hcl:"section,block"`
	Schedule *scheduleBlock  `hcl:"schedule,block"`
	Remain   hcl.Body        `hcl:",remain"`
}

type profileBlock struct {
	Username  string `hcl:"username"`
	Token     string `hcl:"token,optional"`
	APIURL    string `hcl:"api_url,optional"`
	UserAgent string `hcl:"user_agent,optional"`
}

type outputBlock struct {
	Path          string `hcl:"path,optional"`
	CommitMessage string `hcl:"commit_message,optional"`
	Push          bool   `hcl:"push,optional"`
	Remote        string `hcl:"remote,optional"`
	Branch        string `hcl:"branch,optional"`
}

type sectionBlock struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

type scheduleBlock struct {
	Cron string `hcl:"cron,optional"`
}

// Load orchestrates the entire HCL configuration loading process. It is
// agnostic to the origin of the paths and merges valid blocks from any file.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	hclFiles, err := fsutil.CollectFiles(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	if len(hclFiles) == 0 {
		return nil, fmt.Errorf("no .hcl configuration files found in %v", paths)
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	evalCtx := EnvEvalContext()
	model := &config.Model{EvalCtx: evalCtx}

	parser := hclparse.NewParser()

	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		if root.Profile != nil {
			if model.Profile != nil {
				return nil, fmt.Errorf("duplicate profile block in %s", file)
			}
			model.Profile = &config.Profile{
				Username:  root.Profile.Username,
				Token:     root.Profile.Token,
				APIURL:    root.Profile.APIURL,
				UserAgent: root.Profile.UserAgent,
			}
		}
		if root.Output != nil {
			if model.Output != nil {
				return nil, fmt.Errorf("duplicate output block in %s", file)
			}
			model.Output = &config.Output{
				Path:          root.Output.Path,
				CommitMessage: root.Output.CommitMessage,
				Push:          root.Output.Push,
				Remote:        root.Output.Remote,
				Branch:        root.Output.Branch,
			}
		}
		if root.Schedule != nil {
			if model.Schedule != nil {
				return nil, fmt.Errorf("duplicate schedule block in %s", file)
			}
			model.Schedule = &config.Schedule{Cron: root.Schedule.Cron}
		}
		for _, section := range root.Sections {
			model.Sections = append(model.Sections, &config.Section{
				Name: section.Name,
				Body: section.Body,
			})
		}
	}

	if model.Profile == nil {
		return nil, fmt.Errorf("configuration is missing the required profile block")
	}
	if model.Profile.Username == "" {
		return nil, fmt.Errorf("profile.username must not be empty")
	}

	model.ApplyDefaults()
	logger.Debug("HCL loading complete.", "sections", len(model.Sections))
	return model, nil
}

// EnvEvalContext builds the evaluation context shared by every decode pass.
// Process environment variables are exposed as the `env` object, e.g.
// `token = env.GITHUB_TOKEN`.
func EnvEvalContext() *hcl.EvalContext {
	envVars := make(map[string]cty.Value)
	for _, e := range os.Environ() {
		pair := strings.SplitN(e, "=", 2)
		if len(pair) == 2 {
			envVars[pair[0]] = cty.StringVal(pair[1])
		}
	}

	env := cty.EmptyObjectVal
	if len(envVars) > 0 {
		env = cty.ObjectVal(envVars)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": env,
		},
	}
}
