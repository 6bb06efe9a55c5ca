// Commit-format prints git commit messages as a Markdown document for release
// notes and changelogs.
//
// Each commit subject becomes a level-2 heading and headings in the body are
// demoted one level. Paragraph mode joins hard-wrapped prose into one line per
// paragraph while lists, tables, quotes and code blocks pass through unchanged.
//
// Usage:
//
//	commit-format                      # <init.defaultBranch>..HEAD
//	commit-format --base-branch develop
//	commit-format -n 10 --paragraph    # newest ten commits, reflowed
//	commit-format v1.2.0..v1.3.0 --out CHANGELOG.md
//	commit-format --copy               # also copy to the clipboard
//	commit-format config init          # write a default config file
package main
