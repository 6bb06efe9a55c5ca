// Package format turns raw commit messages into Markdown sections.
//
// Every commit becomes a level-2 heading built from its subject line, followed
// by its body. Two body modes are supported:
//   - raw: body lines pass through unchanged, except ATX headings of depth
//     two or more, which are demoted by one level
//   - paragraph: hard-wrapped prose is joined into one line per paragraph and
//     every ATX heading is demoted. Code blocks, lists, tables, blockquotes
//     and setext underlines are kept byte-for-byte
//
// Use [Format] for a single commit and [FormatAll] for an ordered batch. The
// package performs no I/O and never fails.
package format
