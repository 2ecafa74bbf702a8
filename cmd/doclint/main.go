package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dshills/doclint/internal/batch"
	"github.com/dshills/doclint/internal/document"
	"github.com/dshills/doclint/internal/evaluate"
	"github.com/dshills/doclint/internal/render"
	"github.com/dshills/doclint/internal/schema"
	"github.com/dshills/doclint/internal/suggest"
	"github.com/dshills/doclint/internal/template"
	"github.com/dshills/doclint/internal/watch"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

// Exit codes.
const (
	exitConformant    = 0
	exitNonConformant = 1
	exitUsage         = 2 // unknown template, unreadable input, invalid flags
)

// logger is initialized in PersistentPreRunE; tests replace it with a nop.
var logger = zap.NewNop()

// exitErr carries a numeric exit code through the cobra error path.
// An empty msg exits silently (the report was already printed).
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

// codeError returns an exitErr for the given code.
func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

// checkFlags holds the parsed flags shared by check and watch.
type checkFlags struct {
	templateID string
	rulesFile  string
	format     string
	out        string
	suggestOut string
}

func main() {
	var verbose bool

	root := &cobra.Command{
		Use:     "doclint",
		Short:   "Check documents against structural conformance templates",
		Long:    "doclint checks prompts and guideline documents for the labeled sections a template requires, without interpreting their meaning.",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			config.OutputPaths = []string{"stderr"}
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			} else {
				config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log processing steps to stderr")

	registry := template.Builtin()

	var flags checkFlags
	checkCmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Lint one document and print its report",
		Long:  "Lints a single document. With no file argument (or \"-\"), the document is read from standard input.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runCheck(path, flags, registry)
		},
	}
	addCheckFlags(checkCmd, &flags)
	checkCmd.Flags().StringVar(&flags.out, "out", "", "Write the report to a file instead of stdout")
	checkCmd.Flags().StringVar(&flags.suggestOut, "suggest-out", "", "Write a patch stubbing in missing required sections")

	var batchFlags checkFlags
	batchCmd := &cobra.Command{
		Use:   "batch <glob> [glob...]",
		Short: "Lint every file matched by glob patterns",
		Long:  "Lints each matched file against one template and prints a per-file summary. Supports doublestar patterns such as docs/**/*.md.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(args, batchFlags, registry)
		},
	}
	addCheckFlags(batchCmd, &batchFlags)

	var watchFlags checkFlags
	watchCmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Lint a document and re-lint on every change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd.Context(), args[0], watchFlags, registry)
		},
	}
	addCheckFlags(watchCmd, &watchFlags)

	templatesCmd := &cobra.Command{
		Use:   "templates",
		Short: "List registered templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplates(registry)
		},
	}

	root.AddCommand(checkCmd, batchCmd, watchCmd, templatesCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			if ee.msg != "" {
				fmt.Fprintln(os.Stderr, "Error:", ee.msg)
			}
			os.Exit(ee.code)
		}
		// cobra already printed the error
		os.Exit(exitUsage)
	}
}

// addCheckFlags registers the template/format flags shared by check, batch,
// and watch.
func addCheckFlags(cmd *cobra.Command, flags *checkFlags) {
	f := cmd.Flags()
	f.StringVar(&flags.templateID, "template", "n8n-prompt", "Template to evaluate against")
	f.StringVar(&flags.rulesFile, "rules", "", "Custom template YAML file (overrides --template)")
	f.StringVar(&flags.format, "format", "human", "Output format: human or machine")
}

// resolveTemplate returns the custom template from --rules when given,
// otherwise the registered template for --template.
func resolveTemplate(flags checkFlags, registry *template.Registry) (*template.Template, error) {
	if flags.rulesFile != "" {
		t, err := template.LoadFile(flags.rulesFile)
		if err != nil {
			return nil, codeError(exitUsage, "loading rules: %s", err)
		}
		return t, nil
	}
	t, err := registry.Get(flags.templateID)
	if err != nil {
		return nil, codeError(exitUsage, "%s", err)
	}
	return t, nil
}

// loadDocument reads the document from path, or stdin for "" / "-".
func loadDocument(path string) (*document.Document, error) {
	if path == "" || path == "-" {
		doc, err := document.Read(os.Stdin)
		if err != nil {
			return nil, codeError(exitUsage, "reading stdin: %s", err)
		}
		return doc, nil
	}
	doc, err := document.Load(path)
	if err != nil {
		return nil, codeError(exitUsage, "%s", err)
	}
	return doc, nil
}

func runCheck(path string, flags checkFlags, registry *template.Registry) error {
	// --- Step 1: Resolve template and renderer ---
	tmpl, err := resolveTemplate(flags, registry)
	if err != nil {
		return err
	}
	renderer, err := render.NewRenderer(flags.format)
	if err != nil {
		return codeError(exitUsage, "invalid format: %s", err)
	}

	// --- Step 2: Load document ---
	doc, err := loadDocument(path)
	if err != nil {
		return err
	}
	logger.Debug("loaded document",
		zap.String("path", doc.Path),
		zap.String("hash", doc.Hash),
		zap.Int("lines", doc.LineCount),
	)

	// --- Step 3: Evaluate ---
	report := evaluate.Evaluate(doc, tmpl)
	logger.Debug("evaluated document",
		zap.String("template", tmpl.ID),
		zap.String("status", string(report.Status)),
		zap.Float64("score", report.Score),
	)

	// --- Step 4: Write suggestion patch ---
	if flags.suggestOut != "" {
		diffText := suggest.GenerateDiff(doc.Raw, report)
		if err := os.WriteFile(flags.suggestOut, []byte(diffText), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "WARN: suggestion write failed: %s\n", err)
			// Continue — suggestions are advisory
		}
	}

	// --- Step 5: Render and write report ---
	outputBytes, err := renderer.Render(report)
	if err != nil {
		return codeError(exitUsage, "rendering output: %s", err)
	}
	if flags.out != "" {
		if err := os.WriteFile(flags.out, outputBytes, 0o644); err != nil {
			return codeError(exitUsage, "writing output file: %s", err)
		}
	} else {
		if _, err := os.Stdout.Write(outputBytes); err != nil {
			return codeError(exitUsage, "writing output: %s", err)
		}
		// Ensure output ends with a newline for terminal friendliness.
		if len(outputBytes) > 0 && outputBytes[len(outputBytes)-1] != '\n' {
			fmt.Fprintln(os.Stdout)
		}
	}

	// --- Step 6: Exit code reflects conformance ---
	if report.Status == schema.StatusNonConformant {
		return codeError(exitNonConformant, "")
	}
	return nil
}

func runBatch(patterns []string, flags checkFlags, registry *template.Registry) error {
	tmpl, err := resolveTemplate(flags, registry)
	if err != nil {
		return err
	}

	sum, err := batch.Run(patterns, tmpl, os.Stdout, logger)
	if err != nil {
		return codeError(exitUsage, "%s", err)
	}
	if sum.NonConformant > 0 {
		return codeError(exitNonConformant, "")
	}
	return nil
}

func runWatch(ctx context.Context, path string, flags checkFlags, registry *template.Registry) error {
	// Fail fast on bad flags or a missing file before entering the loop.
	if _, err := resolveTemplate(flags, registry); err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		return codeError(exitUsage, "%s", err)
	}

	lastNonConformant := false
	lint := func() error {
		err := runCheck(path, flags, registry)
		var ee *exitErr
		switch {
		case err == nil:
			lastNonConformant = false
		case errors.As(err, &ee) && ee.code == exitNonConformant:
			lastNonConformant = true
		default:
			return err
		}
		fmt.Fprintln(os.Stdout)
		return nil
	}

	if err := lint(); err != nil {
		return err
	}

	err := watch.Watch(ctx, path, watch.DefaultDebounce, lint, logger)
	if err != nil && !errors.Is(err, context.Canceled) {
		return codeError(exitUsage, "%s", err)
	}
	if lastNonConformant {
		return codeError(exitNonConformant, "")
	}
	return nil
}

func runTemplates(registry *template.Registry) error {
	for _, id := range registry.IDs() {
		tmpl, err := registry.Get(id)
		if err != nil {
			return codeError(exitUsage, "%s", err)
		}
		required, optional := 0, 0
		for _, r := range tmpl.Rules() {
			if r.Kind == schema.KindRequired {
				required++
			} else {
				optional++
			}
		}
		fmt.Printf("%-20s %d required, %d optional\n", id, required, optional)
	}
	return nil
}
