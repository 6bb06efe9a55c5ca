package gitlog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// separator marks the start of every message in the git log output. It is a
// line no real commit message is expected to contain.
const separator = "# ------------------------ COMMIT >! ------------------------"

// ExecReader reads commits by running the git binary.
type ExecReader struct {
	GitBin string
	opts   Options
}

// NewExecReader returns a reader that runs "git" from PATH.
func NewExecReader(opts Options) *ExecReader {
	return &ExecReader{GitBin: "git", opts: opts}
}

// Messages runs git log for the query and splits its output into messages.
func (r *ExecReader) Messages(ctx context.Context, q Query) ([]string, error) {
	var defaultBranch string
	if q.needsDefaultBranch() {
		branch, err := r.DefaultBranch(ctx)
		if err != nil {
			return nil, err
		}
		defaultBranch = branch
	}

	rev := q.Revision(defaultBranch)
	args := logArgs(q, rev)
	r.opts.logger().Debug("reading commits", "backend", BackendExec, "args", strings.Join(args, " "))

	out, err := r.gitOutput(ctx, args...)
	if err != nil {
		return nil, fmt.Errorf("git log %s: %w", q, err)
	}
	return cleanMessages(strings.Split(out, separator)), nil
}

func logArgs(q Query, rev string) []string {
	args := []string{"log", "--reverse", "--pretty=format:" + separator + "%n%B"}
	if q.MaxCount > 0 {
		args = append(args, fmt.Sprintf("--max-count=%d", q.MaxCount))
	}
	args = append(args, strings.Fields(rev)...)
	return append(args, "--")
}

// DefaultBranch reads init.defaultBranch from git config.
func (r *ExecReader) DefaultBranch(ctx context.Context) (string, error) {
	out, err := r.gitOutput(ctx, "config", "--get", "init.defaultBranch")
	if err != nil {
		// git config exits 1 when the key is unset.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return r.opts.fallback(), nil
		}
		return "", fmt.Errorf("git config init.defaultBranch: %w", err)
	}
	if branch := strings.TrimSpace(out); branch != "" {
		return branch, nil
	}
	return r.opts.fallback(), nil
}

func (r *ExecReader) gitOutput(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, r.GitBin, args...)
	if strings.TrimSpace(r.opts.RepoPath) != "" {
		cmd.Dir = r.opts.RepoPath
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return stdout.String(), &gitError{err: err, stderr: msg}
		}
		return stdout.String(), err
	}
	return stdout.String(), nil
}

// gitError carries git's stderr while keeping the underlying error
// reachable with errors.As.
type gitError struct {
	err    error
	stderr string
}

func (e *gitError) Error() string { return fmt.Sprintf("%s: %s", e.err, e.stderr) }

func (e *gitError) Unwrap() error { return e.err }
