// Package gitlog reads commit messages from a git repository.
//
// A [Query] describes which commits to read: an explicit revision selector,
// a maximum count, or a base branch. When none is given the range defaults to
// "<init.defaultBranch>..HEAD". Messages are returned oldest first, trimmed,
// with empty messages dropped.
//
// Two [Reader] backends are available: [ExecReader] shells out to the git
// binary, and [GoGitReader] walks the object database with go-git. Use
// [NewReader] to pick one by name.
package gitlog
