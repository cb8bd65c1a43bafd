package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"nlpwalk/config"
	"nlpwalk/internal/adapter/corpus"
	"nlpwalk/internal/logging"
	"nlpwalk/internal/port"
	"nlpwalk/internal/usecase"
)

var (
	cfgFile   string
	cfg       *config.Config
	rootDir   string
	logLevel  string
	logFormat string
	logger    *logrus.Logger
	runID     string
)

var rootCmd = &cobra.Command{
	Use:   "nlpwalk",
	Short: "Walk through sentence splitting, stemming, tagging and chunking",
	Long: `nlpwalk runs a classic text-processing walkthrough: sentence and word
tokenization, stopword filtering, Porter stemming, training a sentence
boundary model on one corpus document, then part-of-speech tagging and
regexp chunking of another.

Each stage is also available as its own command.

Example usage:
  nlpwalk                              # Run the whole walkthrough
  nlpwalk walkthrough --skip-corpus    # Only the literal-text sections
  nlpwalk tag -t "Hello Mr. Smith."    # Tag a sentence
  echo "Python rocks." | nlpwalk chunk # Chunk text from stdin`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		level := cfg.Logging.Level
		if logLevel != "" {
			level = logLevel
		}
		format := cfg.Logging.Format
		if logFormat != "" {
			format = logFormat
		}
		logger, err = logging.New(cmd.ErrOrStderr(), level, format)
		if err != nil {
			return err
		}
		runID = uuid.NewString()

		return nil
	},
	RunE: runWalkthrough,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./nlpwalk.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "project directory (default is current directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (default from config)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text or json (default from config)")
	addWalkthroughFlags(rootCmd)
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}

func componentLog(name string) *logrus.Entry {
	return logging.Component(logger, name).WithField("run", runID)
}

func newPipeline() (*usecase.Pipeline, error) {
	p, err := usecase.NewPipelineFromConfig(GetConfig(), componentLog("pipeline"))
	if err != nil {
		return nil, fmt.Errorf("failed to set up pipeline: %w", err)
	}
	return p, nil
}

func openCorpus() (port.Corpus, error) {
	c := GetConfig().Corpus
	return corpus.Open(corpus.Options{
		Dir:      c.Dir,
		BoltPath: c.BoltPath,
		Includes: c.Includes,
		Excludes: c.Excludes,
	})
}
