package gitlog

import (
	"context"
	"fmt"
	"strings"

	"github.com/dshills/commit-format/internal/logging"
)

// Backend names accepted by NewReader.
const (
	BackendExec  = "exec"
	BackendGoGit = "gogit"
)

// FallbackBranch is used when init.defaultBranch is not configured.
const FallbackBranch = "main"

// Reader returns raw commit messages for a query.
type Reader interface {
	// Messages returns trimmed, non-empty commit messages, oldest first.
	Messages(ctx context.Context, q Query) ([]string, error)
	// DefaultBranch returns init.defaultBranch, or the fallback branch.
	DefaultBranch(ctx context.Context) (string, error)
}

// Options configure a Reader.
type Options struct {
	// RepoPath is the repository (or any directory inside it). Empty means
	// the current directory.
	RepoPath string
	// Fallback replaces FallbackBranch when init.defaultBranch is unset.
	Fallback string
	Logger   logging.Logger
}

func (o Options) fallback() string {
	if strings.TrimSpace(o.Fallback) != "" {
		return o.Fallback
	}
	return FallbackBranch
}

func (o Options) logger() logging.Logger {
	if o.Logger == nil {
		return logging.Nop()
	}
	return o.Logger
}

// NewReader returns the reader for the named backend.
func NewReader(backend string, opts Options) (Reader, error) {
	switch backend {
	case "", BackendExec:
		return NewExecReader(opts), nil
	case BackendGoGit:
		return NewGoGitReader(opts), nil
	default:
		return nil, fmt.Errorf("unknown git backend: %s", backend)
	}
}

// cleanMessages trims every message and drops the empty ones.
func cleanMessages(raw []string) []string {
	var messages []string
	for _, m := range raw {
		m = strings.TrimSpace(m)
		if m != "" {
			messages = append(messages, m)
		}
	}
	return messages
}
