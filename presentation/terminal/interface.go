package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"formcheck/application/pages"
	"formcheck/application/scenario"
	"formcheck/domain/entities"
	"formcheck/domain/interfaces"
	"formcheck/infrastructure/browser"
	"formcheck/infrastructure/config"
	"formcheck/infrastructure/logging"
	"formcheck/infrastructure/reporting"
	"formcheck/infrastructure/storage"
)

type TerminalInterface struct {
	root   *cobra.Command
	viper  *viper.Viper
	cfg    *config.Config
	logger *logrus.Logger
	closer io.Closer
	out    io.Writer
	errOut io.Writer

	// sessions is replaced in tests
	sessions func(cfg *config.Config, logger *logrus.Logger) interfaces.SessionFactory
}

// NewTerminalInterface - builds the formcheck command tree
func NewTerminalInterface(out, errOut io.Writer) *TerminalInterface {
	t := &TerminalInterface{
		viper:    viper.New(),
		out:      out,
		errOut:   errOut,
		sessions: browserSessions,
	}

	root := &cobra.Command{
		Use:               "formcheck",
		Short:             "Browser checks for the student registration practice form",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: t.setup,
	}
	root.SetOut(out)
	root.SetErr(errOut)
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(t.listCommand(), t.runCommand(), t.installCommand(), t.reportCommand())
	t.root = root
	return t
}

// setup loads .env, config and env overrides, then builds the logger
func (t *TerminalInterface) setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	if err := config.BindFlags(t.viper, cmd.Flags()); err != nil {
		return err
	}

	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	cfg, err := config.Load(t.viper, configFile)
	if err != nil {
		return err
	}

	logger, closer, err := logging.New(cfg.Log, t.errOut)
	if err != nil {
		return err
	}
	t.cfg, t.logger, t.closer = cfg, logger, closer
	return nil
}

// Run executes the command line in args
func (t *TerminalInterface) Run(ctx context.Context, args []string) error {
	t.root.SetArgs(args)
	return t.root.ExecuteContext(ctx)
}

// Close flushes the log file, if any
func (t *TerminalInterface) Close() error {
	if t.closer == nil {
		return nil
	}
	return t.closer.Close()
}

func (t *TerminalInterface) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(t.out, 0, 4, 2, ' ', 0)
			for _, sc := range scenario.Catalog() {
				fmt.Fprintf(w, "%s\t%s\n", sc.Name, sc.Description)
			}
			return w.Flush()
		},
	}
}

// ErrScenariosFailed is returned by run when at least one scenario failed
var ErrScenariosFailed = errors.New("scenarios failed")

func (t *TerminalInterface) runCommand() *cobra.Command {
	var names []string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run scenarios against the practice form, each in a fresh browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			selected, err := scenario.Select(names...)
			if err != nil {
				return err
			}

			store, err := storage.NewArtifactStore(t.cfg.ArtifactDir)
			if err != nil {
				return err
			}

			runner := scenario.NewRunner(t.sessions(t.cfg, t.logger), PagesConfig(t.cfg), t.logger,
				scenario.WithStore(store),
				scenario.WithReporters(func(log *logrus.Entry, runID string) interfaces.StepReporter {
					return reporting.NewLogReporter(log, store, runID)
				}),
			)
			summary, err := runner.Run(cmd.Context(), selected)
			if err != nil {
				return err
			}

			if err := t.printSummary(summary); err != nil {
				return err
			}
			if !summary.OK() {
				return fmt.Errorf("%d of %d %w", summary.Failed, len(summary.Results), ErrScenariosFailed)
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&names, "scenario", "s", nil, "scenario to run, repeatable (default all)")
	return cmd
}

func (t *TerminalInterface) installCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Install the playwright driver and the configured browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t.logger.WithField("browser", t.cfg.Browser.Engine).Info("installing browser")
			if err := browser.Install(t.cfg.Browser.Engine); err != nil {
				return fmt.Errorf("failed to install %s: %w", t.cfg.Browser.Engine, err)
			}
			return nil
		},
	}
}

func (t *TerminalInterface) reportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print the summary of the last run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := storage.NewArtifactStore(t.cfg.ArtifactDir)
			if err != nil {
				return err
			}
			summary, err := store.LoadSummary()
			if err != nil {
				return err
			}
			if len(summary.Results) == 0 {
				fmt.Fprintln(t.out, "no runs recorded")
				return nil
			}
			return t.printSummary(summary)
		},
	}
}

func (t *TerminalInterface) printSummary(summary entities.Summary) error {
	w := tabwriter.NewWriter(t.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SCENARIO\tSTATUS\tDURATION\tRUN ID\tERROR")
	for _, r := range summary.Results {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			r.Scenario, strings.ToUpper(string(r.Status)), r.Duration.Round(time.Millisecond), r.RunID, firstLine(r.Error))
	}
	fmt.Fprintf(w, "\npassed: %d, failed: %d\n", summary.Passed, summary.Failed)
	return w.Flush()
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// PagesConfig - maps the loaded config onto the page objects
func PagesConfig(cfg *config.Config) pages.Config {
	return pages.Config{
		TargetURL:  cfg.TargetURL,
		UploadFile: cfg.UploadFile,
		Timeouts: pages.Timeouts{
			Assert:     cfg.Timeouts.Assert,
			PageLoad:   cfg.Timeouts.PageLoad,
			Validation: cfg.Timeouts.Validation,
			Dropdown:   cfg.Timeouts.Dropdown,
			Poll:       cfg.Timeouts.PollInterval,
		},
	}
}

// BrowserOptions - maps the loaded config onto session launch options
func BrowserOptions(cfg *config.Config) browser.Options {
	return browser.Options{
		Engine:            cfg.Browser.Engine,
		Headless:          cfg.Browser.Headless,
		SlowMo:            cfg.Browser.SlowMo,
		ViewportWidth:     cfg.Browser.ViewportWidth,
		ViewportHeight:    cfg.Browser.ViewportHeight,
		TargetURL:         cfg.TargetURL,
		NavigationTimeout: cfg.Timeouts.Navigation,
		ActionTimeout:     cfg.Timeouts.Assert,
	}
}

func browserSessions(cfg *config.Config, logger *logrus.Logger) interfaces.SessionFactory {
	return &browser.Factory{Options: BrowserOptions(cfg), Logger: logger}
}
