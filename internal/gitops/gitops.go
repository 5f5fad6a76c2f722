// Package gitops publishes the rendered README by shelling out to the git
// binary: stage, commit, push. Commit and push failures are deliberately
// non-fatal; a run that produced no content change must not fail the job.
package gitops

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/vk/readmegen/internal/config"
	"github.com/vk/readmegen/internal/ctxlog"
)

// Runner executes a git command in a directory and returns its combined
// output. Tests substitute a recorder for the real binary.
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) (string, error)
}

// ExecRunner runs git via os/exec.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	output := strings.TrimSpace(string(out))
	if err != nil {
		return output, fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return output, nil
}

// Publisher stages, commits and pushes one file in a repository.
type Publisher struct {
	dir    string
	runner Runner
}

// NewPublisher creates a Publisher operating on the repository at dir.
func NewPublisher(dir string) *Publisher {
	return &Publisher{dir: dir, runner: ExecRunner{}}
}

// NewPublisherWithRunner creates a Publisher with a custom Runner.
func NewPublisherWithRunner(dir string, runner Runner) *Publisher {
	return &Publisher{dir: dir, runner: runner}
}

// Publish stages the output path, commits it with the configured message and
// pushes to the configured remote. It reports whether a commit went through.
// Every git failure is logged at warn and swallowed: a no-op commit (nothing
// changed since the last run) is the expected steady state, and a rejected
// push must not fail the run either.
func (p *Publisher) Publish(ctx context.Context, out *config.Output) bool {
	logger := ctxlog.FromContext(ctx)

	if output, err := p.runner.Run(ctx, p.dir, "add", out.Path); err != nil {
		logger.Warn("Staging failed, skipping publish.", "error", err, "output", output)
		return false
	}

	if output, err := p.runner.Run(ctx, p.dir, "commit", "-m", out.CommitMessage); err != nil {
		logger.Warn("Nothing to commit, or commit failed.", "error", err, "output", output)
		return false
	}

	pushArgs := []string{"push", out.Remote}
	if out.Branch != "" {
		pushArgs = append(pushArgs, out.Branch)
	}
	if output, err := p.runner.Run(ctx, p.dir, pushArgs...); err != nil {
		logger.Warn("Push failed.", "error", err, "output", output)
		return true
	}

	logger.Info("README committed and pushed.", "path", out.Path, "remote", out.Remote)
	return true
}
