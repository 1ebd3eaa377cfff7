package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/nao1215/parasort/internal/config"
	"github.com/nao1215/parasort/internal/input"
	"github.com/nao1215/parasort/internal/log"
	"github.com/nao1215/parasort/internal/model"
	"github.com/nao1215/parasort/internal/param"
	"github.com/nao1215/parasort/internal/partition"
	"github.com/nao1215/parasort/internal/pipeline"
	"github.com/nao1215/parasort/internal/report"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// session holds what every command derives from its Config: the output
// streams, the color palette, the console, and the logger.
type session struct {
	cfg     *config.Config
	out     io.Writer
	errOut  io.Writer
	colors  bool
	palette *report.Palette
	console *report.Console
	logger  *slog.Logger
}

// newSession wires output and logging for cfg.
// Colors are off with --no-color and whenever fatih/color detects a
// terminal that cannot show them.
func newSession(cmd *cobra.Command, cfg *config.Config) *session {
	colors := !cfg.NoColor && !color.NoColor
	palette := report.NewPalette(colors)
	return &session{
		cfg:     cfg,
		out:     cmd.OutOrStdout(),
		errOut:  cmd.ErrOrStderr(),
		colors:  colors,
		palette: palette,
		console: report.NewConsole(cmd.OutOrStdout(), palette, cfg.Silent),
		logger:  log.NewSecureLogger(cmd.ErrOrStderr(), log.LevelFor(cfg.Verbose, cfg.Silent)),
	}
}

// runRootCmd executes the root command.
func runRootCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	stdin := pipedInput(cmd)
	if cmd.Flags().NFlag() == 0 && stdin == nil {
		return cmd.Help()
	}

	s := newSession(cmd, cfg)
	s.console.Banner()

	wordlist := s.loadWordlist()
	if cfg.ShowCategories {
		return s.showCategories(wordlist)
	}

	// Set up context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return s.sort(ctx, wordlist, stdin)
}

// pipedInput returns the command's stdin when it carries piped data, or
// nil when it is an interactive terminal.
func pipedInput(cmd *cobra.Command) io.Reader {
	if in := cmd.InOrStdin(); input.IsPiped(in) {
		return in
	}
	return nil
}

// loadWordlist finds and loads the wordlist file. Problems with the file
// never stop the run; the built-in defaults are used instead.
func (s *session) loadWordlist() *config.Wordlist {
	result := config.LoadOrBootstrap(config.FindWordlistFile(s.cfg.WordlistFile))
	if result.Warning != nil {
		s.console.Warn("Warning: %v", result.Warning)
	}
	if result.Source == config.SourceBootstrapped {
		s.console.Info("Created default wordlist: %s", result.Path)
	}

	s.logger.Debug("wordlist loaded",
		"path", result.Path,
		"source", result.Source.String(),
		"categories", result.Wordlist.Len(),
	)
	for _, c := range param.FindCollisions(result.Wordlist) {
		s.logger.Debug("wordlist entries share a normalized name",
			"normalized", c.Normalized,
			"entries", len(c.Entries),
		)
	}

	return result.Wordlist
}

// showCategories lists the categories of wordlist unless the run is silent.
func (s *session) showCategories(wordlist *config.Wordlist) error {
	if s.cfg.Silent {
		return nil
	}
	writer := report.NewSimpleWriter(s.out, report.WithPalette(s.palette))
	_, err := writer.WriteCategories(wordlist)
	return err
}

// customParams returns the custom parameter list of the run, or nil when
// none was given. An unreadable custom parameter file is fatal.
func (s *session) customParams() ([]string, error) {
	switch {
	case len(s.cfg.CustomParams) > 0:
		s.console.CustomParams(s.cfg.CustomParams)
		return s.cfg.CustomParams, nil
	case s.cfg.CustomParamsFile != "":
		params, err := config.LoadCustomParamsFile(s.cfg.CustomParamsFile)
		if err != nil {
			return nil, err
		}
		s.console.CustomParamsFile(len(params), s.cfg.CustomParamsFile)
		return params, nil
	default:
		return nil, nil
	}
}

// sort runs the partition pipeline and prints the summary.
func (s *session) sort(ctx context.Context, wordlist *config.Wordlist, stdin io.Reader) error {
	custom, err := s.customParams()
	if err != nil {
		return err
	}

	urls, err := input.Collect(input.Sources{Stdin: stdin, File: s.cfg.InputFile})
	if err != nil {
		return err
	}

	matcher, err := param.NewMatcher(wordlist, s.cfg.SelectedCategories(), custom)
	if err != nil {
		return err
	}

	s.console.Processing(len(urls), modeDescription(matcher))

	partitionOpts := []partition.Option{
		partition.WithClearValues(s.cfg.ClearValues),
		partition.WithExtractParams(s.cfg.ExtractParams),
		partition.WithRootDomainGrouping(s.cfg.GroupByRoot),
		partition.WithLogger(s.logger),
	}

	var bar *progressbar.ProgressBar
	if s.cfg.Progress && s.cfg.ConsoleEnabled() {
		bar = s.newProgressBar(len(urls))
		partitionOpts = append(partitionOpts, partition.WithProgress(bar))
	} else {
		partitionOpts = append(partitionOpts, partition.WithDomainHook(func(domain string, _ int) {
			s.console.Domain(domain)
		}))
	}

	p := pipeline.DefaultPipeline(
		partition.New(s.cfg.OutputDir, matcher, partitionOpts...),
		[]pipeline.Option{pipeline.WithLogger(s.logger)},
		pipeline.WithPipelineExportParameters(s.cfg.ExtractParams),
		pipeline.WithPipelineMarkdown(s.cfg.MarkdownSummary),
		pipeline.WithPipelineJSON(s.cfg.JSONSummary),
		pipeline.WithPipelineVersion(getVersion()),
		pipeline.WithPipelineSavedHook(s.console.Saved),
		pipeline.WithPipelineLogger(s.logger),
	)

	run := model.NewRun(urls, s.cfg.OutputDir)
	err = p.Execute(ctx, run)
	if bar != nil {
		if err != nil {
			_ = bar.Clear() //nolint:errcheck // Best effort cleanup
		} else {
			_ = bar.Finish() //nolint:errcheck // Best effort cleanup
		}
	}
	if err != nil {
		return err
	}

	if !s.cfg.ConsoleEnabled() {
		return nil
	}
	writer := report.NewSimpleWriter(s.out,
		report.WithPalette(s.palette),
		report.WithVerbose(s.cfg.DetailedSummary()),
	)
	_, err = writer.Write(run)
	return err
}

// newProgressBar creates the --progress bar on stderr.
func (s *session) newProgressBar(total int) *progressbar.ProgressBar {
	description := "Sorting URLs"
	saucer, head := "=", ">"
	if s.colors {
		description = "[cyan]Sorting URLs[reset]"
		saucer, head = "[green]=[reset]", "[green]>[reset]"
	}

	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(s.errOut),
		progressbar.OptionEnableColorCodes(s.colors),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(s.errOut)
		}),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        saucer,
			SaucerHead:    head,
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

// modeDescription names what a run matches against, for the
// "Processing N URLs using ..." line.
func modeDescription(matcher *param.Matcher) string {
	mode := fmt.Sprintf("%d categories", len(matcher.Categories()))
	if matcher.HasCustom() {
		mode += " + custom parameters"
	}
	return mode
}
