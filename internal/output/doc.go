// Package output writes formatted commits for display or machine consumption.
//
// Two formats are supported:
//   - markdown: the formatted commits separated by blank lines (default)
//   - json: an indented array of subject/markdown entries
//
// Use [GetWriter] to obtain a [Writer] for a given format string, then call
// [Writer.Write] with an [io.Writer] and the entries. [WriteEntries] handles
// destination selection and [CopyToClipboard] puts a rendered document on the
// system clipboard.
package output
