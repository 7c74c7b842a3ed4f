package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/aquamib/internal/app"
	"github.com/abhisek/aquamib/internal/catalog"
	"github.com/abhisek/aquamib/internal/config"
	"github.com/abhisek/aquamib/internal/logging"
	"github.com/abhisek/aquamib/internal/session"
)

// cfg is loaded once per invocation by the root PersistentPreRunE.
var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:   "aquamib",
	Short: "Water quality from benthic macroinvertebrates",
	Long: "aquamib classifies river water quality from the macroinvertebrate " +
		"families found in a sample, using their pollution tolerance.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve config path: %w", err)
		}
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides AQUAMIB_CONFIG env var)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(taxaCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfigPath returns the config path using --config (highest priority),
// then AQUAMIB_CONFIG, then the default XDG path.
func resolveConfigPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		return p, nil
	}
	return config.DefaultPath()
}

// cliLogger builds the stderr logger used by non-interactive commands.
func cliLogger(cmd *cobra.Command) (*zap.Logger, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return logging.New(cfg.Logging, verbose)
}

// runApp builds the session and launches the TUI.
func runApp(cmd *cobra.Command) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger, err := logging.NewForTUI(cfg.Logging, verbose)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	cat := catalog.New(catalog.WithLogger(logger.Named("catalog")))
	sess := session.New(cat,
		session.WithLang(cfg.Lang()),
		session.WithLogger(logger.Named("session")))

	return app.Run(app.Options{Session: sess, Logger: logger})
}
