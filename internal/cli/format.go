package cli

import (
	"context"
	"fmt"

	"github.com/dshills/commit-format/internal/config"
	"github.com/dshills/commit-format/internal/format"
	"github.com/dshills/commit-format/internal/gitlog"
	"github.com/dshills/commit-format/internal/logging"
	"github.com/dshills/commit-format/internal/output"
	"github.com/dshills/commit-format/internal/ui"
	"github.com/spf13/cobra"
)

// Format flags
var (
	flagParagraph  bool
	flagMode       modeValue
	flagMaxCount   int
	flagBaseBranch string
	flagRepo       string
	flagBackend    string
	flagFormat     string
	flagOut        string
	flagCopy       bool
	flagVerbose    bool
)

func addFormatFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&flagParagraph, "paragraph", "p", false, "Reflow hard-wrapped prose into one line per paragraph")
	cmd.Flags().Var(&flagMode, "mode", "Body rendering mode (raw, paragraph)")
	cmd.Flags().IntVarP(&flagMaxCount, "max-count", "n", 0, "Format only the newest N commits")
	cmd.Flags().StringVar(&flagBaseBranch, "base-branch", "", "Read <branch>..HEAD instead of the default branch")
	cmd.Flags().StringVar(&flagRepo, "repo", "", "Repository path (default: current directory)")
	cmd.Flags().StringVar(&flagBackend, "backend", "", "Git backend (exec, gogit)")
	cmd.Flags().StringVar(&flagFormat, "format", "", "Output format (markdown, json)")
	cmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&flagCopy, "copy", false, "Also copy the document to the clipboard")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Log debug details to stderr")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	switch {
	case flagParagraph:
		m["mode"] = format.ModeParagraph.String()
	case flagMode.set:
		m["mode"] = flagMode.String()
	}
	if flagBackend != "" {
		m["backend"] = flagBackend
	}
	if flagBaseBranch != "" {
		m["baseBranch"] = flagBaseBranch
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	return m
}

func buildQuery(cfg config.Config, args []string) gitlog.Query {
	q := gitlog.Query{
		MaxCount:   flagMaxCount,
		BaseBranch: cfg.BaseBranch,
	}
	if len(args) > 0 {
		q.Selector = args[0]
	}
	return q
}

// runFormat returns an error only for usage problems. Runtime failures are
// reported on stderr and recorded in exitCode.
func runFormat(cmd *cobra.Command, args []string) error {
	if flagMaxCount < 0 {
		return fmt.Errorf("--max-count must not be negative, got %d", flagMaxCount)
	}
	cfg, err := config.Load(buildOverrides())
	if err != nil {
		return err
	}
	mode, err := format.ParseMode(cfg.Mode)
	if err != nil {
		return err
	}

	log := logging.New(cmd.ErrOrStderr(), flagVerbose)
	reader, err := gitlog.NewReader(cfg.Backend, gitlog.Options{
		RepoPath: flagRepo,
		Fallback: cfg.DefaultBranch,
		Logger:   log,
	})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	q := buildQuery(cfg, args)
	raws, err := reader.Messages(ctx, q)
	if err != nil {
		ui.Error("%v", err)
		exitCode = ExitRuntimeError
		return nil
	}
	log.Debug("formatting commits", "query", q.String(), "count", len(raws), "mode", mode.String())
	if len(raws) == 0 {
		ui.Warning("no commits found for %s", q.String())
	}

	entries := output.NewEntries(raws, format.FormatAll(raws, mode))
	if err := output.WriteEntries(entries, cfg.Format, flagOut, cmd.OutOrStdout()); err != nil {
		ui.Error("writing output: %v", err)
		exitCode = ExitRuntimeError
		return nil
	}
	if flagOut != "" {
		ui.Success("Wrote %d commit(s) to %s", len(entries), flagOut)
	}

	if flagCopy {
		doc, err := output.Render(entries, cfg.Format)
		if err == nil {
			err = output.CopyToClipboard(doc)
		}
		if err != nil {
			ui.Error("%v", err)
			exitCode = ExitRuntimeError
			return nil
		}
		ui.Success("Copied %d commit(s) to the clipboard", len(entries))
	}
	return nil
}
