package gitlog

import "fmt"

// Query selects the commits to read.
type Query struct {
	// Selector is passed to git as-is, e.g. "HEAD~3..HEAD" or "main...HEAD".
	Selector string
	// MaxCount limits the result to the newest N commits. Zero means no limit.
	MaxCount int
	// BaseBranch reads "<BaseBranch>..HEAD" when no selector is given.
	BaseBranch string
}

// Revision returns the revision argument for the query. An empty result means
// git's default (HEAD), which happens when only a count limit was given.
func (q Query) Revision(defaultBranch string) string {
	switch {
	case q.Selector != "":
		return q.Selector
	case q.MaxCount > 0:
		return ""
	case q.BaseBranch != "":
		return q.BaseBranch + "..HEAD"
	default:
		return defaultBranch + "..HEAD"
	}
}

// needsDefaultBranch reports whether Revision depends on the default branch.
func (q Query) needsDefaultBranch() bool {
	return q.Selector == "" && q.MaxCount <= 0 && q.BaseBranch == ""
}

func (q Query) String() string {
	switch {
	case q.Selector != "":
		return q.Selector
	case q.MaxCount > 0:
		return fmt.Sprintf("last %d", q.MaxCount)
	case q.BaseBranch != "":
		return q.BaseBranch + "..HEAD"
	default:
		return "default branch..HEAD"
	}
}
