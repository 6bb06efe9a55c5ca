package gitlog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// GoGitReader reads commits with go-git, without a git binary.
//
// Supported selectors are a single revision ("v1.2.0", "HEAD~3"), a range
// ("A..B") and a symmetric range ("A...B"). Either side of a range may be
// empty and then means HEAD.
type GoGitReader struct {
	opts Options
}

// NewGoGitReader returns a go-git backed reader.
func NewGoGitReader(opts Options) *GoGitReader {
	return &GoGitReader{opts: opts}
}

func (r *GoGitReader) open() (*git.Repository, error) {
	path := r.opts.RepoPath
	if strings.TrimSpace(path) == "" {
		path = "."
	}
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repository %s: %w", path, err)
	}
	return repo, nil
}

// DefaultBranch reads init.defaultBranch from the local and global config.
func (r *GoGitReader) DefaultBranch(ctx context.Context) (string, error) {
	repo, err := r.open()
	if err != nil {
		return "", err
	}
	return r.defaultBranch(repo), nil
}

func (r *GoGitReader) defaultBranch(repo *git.Repository) string {
	cfg, err := repo.ConfigScoped(config.GlobalScope)
	if err != nil {
		r.opts.logger().Debug("reading git config failed", "error", err)
		return r.opts.fallback()
	}
	if branch := strings.TrimSpace(cfg.Init.DefaultBranch); branch != "" {
		return branch
	}
	return r.opts.fallback()
}

// Messages walks the history selected by the query, newest first, applies
// the count limit and returns the messages oldest first.
func (r *GoGitReader) Messages(ctx context.Context, q Query) ([]string, error) {
	repo, err := r.open()
	if err != nil {
		return nil, err
	}

	var defaultBranch string
	if q.needsDefaultBranch() {
		defaultBranch = r.defaultBranch(repo)
	}
	rev := q.Revision(defaultBranch)
	r.opts.logger().Debug("reading commits", "backend", BackendGoGit, "revision", rev, "maxCount", q.MaxCount)

	selected, err := r.selectCommits(ctx, repo, rev)
	if err != nil {
		return nil, fmt.Errorf("git log %s: %w", q, err)
	}

	ordered := orderNewestFirst(selected)
	if q.MaxCount > 0 && len(ordered) > q.MaxCount {
		ordered = ordered[:q.MaxCount]
	}

	raw := make([]string, 0, len(ordered))
	for i := len(ordered) - 1; i >= 0; i-- {
		raw = append(raw, ordered[i].Message)
	}
	return cleanMessages(raw), nil
}

func (r *GoGitReader) selectCommits(ctx context.Context, repo *git.Repository, rev string) (map[plumbing.Hash]*object.Commit, error) {
	if len(strings.Fields(rev)) > 1 {
		return nil, fmt.Errorf("selector %q: multiple revisions are not supported by the %s backend", rev, BackendGoGit)
	}

	if left, right, ok := strings.Cut(rev, "..."); ok {
		lh, err := resolve(repo, left)
		if err != nil {
			return nil, err
		}
		rh, err := resolve(repo, right)
		if err != nil {
			return nil, err
		}
		leftSet, err := ancestors(ctx, repo, lh)
		if err != nil {
			return nil, err
		}
		rightSet, err := ancestors(ctx, repo, rh)
		if err != nil {
			return nil, err
		}
		onlyOneSide := func(h plumbing.Hash) bool { return leftSet[h] != rightSet[h] }
		return collect(ctx, repo, []plumbing.Hash{lh, rh}, onlyOneSide)
	}

	if left, right, ok := strings.Cut(rev, ".."); ok {
		lh, err := resolve(repo, left)
		if err != nil {
			return nil, err
		}
		rh, err := resolve(repo, right)
		if err != nil {
			return nil, err
		}
		excluded, err := ancestors(ctx, repo, lh)
		if err != nil {
			return nil, err
		}
		notExcluded := func(h plumbing.Hash) bool { return !excluded[h] }
		return collect(ctx, repo, []plumbing.Hash{rh}, notExcluded)
	}

	h, err := resolve(repo, rev)
	if err != nil {
		return nil, err
	}
	return collect(ctx, repo, []plumbing.Hash{h}, func(plumbing.Hash) bool { return true })
}

func resolve(repo *git.Repository, rev string) (plumbing.Hash, error) {
	if strings.TrimSpace(rev) == "" {
		rev = "HEAD"
	}
	h, err := repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("unknown revision %q: %w", rev, err)
	}
	return *h, nil
}

// ancestors returns every commit reachable from h, h included.
func ancestors(ctx context.Context, repo *git.Repository, h plumbing.Hash) (map[plumbing.Hash]bool, error) {
	seen := make(map[plumbing.Hash]bool)
	_, err := collect(ctx, repo, []plumbing.Hash{h}, func(c plumbing.Hash) bool {
		seen[c] = true
		return false
	})
	return seen, err
}

// collect walks the history of every head and keeps the commits accepted by
// keep. Commits reached from several heads are kept once.
func collect(ctx context.Context, repo *git.Repository, heads []plumbing.Hash, keep func(plumbing.Hash) bool) (map[plumbing.Hash]*object.Commit, error) {
	commits := make(map[plumbing.Hash]*object.Commit)
	visited := make(map[plumbing.Hash]bool)
	for _, head := range heads {
		if visited[head] {
			continue
		}
		iter, err := repo.Log(&git.LogOptions{From: head})
		if err != nil {
			return nil, fmt.Errorf("walk history from %s: %w", head, err)
		}
		err = iter.ForEach(func(c *object.Commit) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if visited[c.Hash] {
				return nil
			}
			visited[c.Hash] = true
			if keep(c.Hash) {
				commits[c.Hash] = c
			}
			return nil
		})
		iter.Close()
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			return nil, fmt.Errorf("walk history from %s: %w", head, err)
		}
	}
	return commits, nil
}

// orderNewestFirst orders commits the way git log does by default: a commit
// always comes before its parents, and among the commits whose children have
// all been emitted the newest committer time goes first.
func orderNewestFirst(commits map[plumbing.Hash]*object.Commit) []*object.Commit {
	pendingChildren := make(map[plumbing.Hash]int, len(commits))
	for _, c := range commits {
		for _, p := range c.ParentHashes {
			if _, ok := commits[p]; ok {
				pendingChildren[p]++
			}
		}
	}

	var ready []*object.Commit
	for h, c := range commits {
		if pendingChildren[h] == 0 {
			ready = append(ready, c)
		}
	}

	ordered := make([]*object.Commit, 0, len(commits))
	for len(ready) > 0 {
		best := 0
		for i := 1; i < len(ready); i++ {
			if newer(ready[i], ready[best]) {
				best = i
			}
		}
		c := ready[best]
		ready = append(ready[:best], ready[best+1:]...)
		ordered = append(ordered, c)

		for _, p := range c.ParentHashes {
			parent, ok := commits[p]
			if !ok {
				continue
			}
			pendingChildren[p]--
			if pendingChildren[p] == 0 {
				ready = append(ready, parent)
			}
		}
	}
	return ordered
}

func newer(a, b *object.Commit) bool {
	if !a.Committer.When.Equal(b.Committer.When) {
		return a.Committer.When.After(b.Committer.When)
	}
	return a.Hash.String() < b.Hash.String()
}
