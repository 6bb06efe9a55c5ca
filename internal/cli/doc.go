// Package cli wires together the Cobra command tree for the commit-format
// binary.
//
// The root command reads commit messages from git, formats them as Markdown
// and writes the document to stdout, a file or the clipboard. The config and
// version subcommands manage settings and report the build. Run returns
// deterministic exit codes so the tool can be scripted.
package cli
