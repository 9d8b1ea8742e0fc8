package main

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"textsum/internal/config"
	"textsum/internal/segmenter"
	"textsum/internal/service"
	"textsum/internal/stopwords"
	"textsum/internal/summarizer"
	"textsum/internal/tfidf"
)

// app holds the components shared by every subcommand.
type app struct {
	cfg        *config.AppConfig
	log        *logrus.Entry
	summarizer *summarizer.Summarizer
	service    *service.SummaryServiceImpl
}

var (
	current = &app{}

	rootCmd = &cobra.Command{
		Use:           "textsum",
		Short:         "Extractive text summarizer: keeps the sentences closest to the document centroid.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			_ = godotenv.Load()
			return current.setup(viper.GetString("config"))
		},
	}
)

func init() {
	rootCmd.PersistentFlags().String("config", "", "path to YAML config file (default ./config.yaml or ~/.config/textsum/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Float64("ratio", 0.5, "share of sentences to keep, in (0, 1]")
	for _, key := range []string{"config", "log-level", "ratio"} {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(key)); err != nil {
			panic(err)
		}
	}

	viper.SetEnvPrefix("textsum")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(newSummarizeCmd(), newTUICmd(), newServeCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if current.log != nil {
			current.log.WithError(err).Error("command failed")
		} else {
			logrus.WithError(err).Error("command failed")
		}
		os.Exit(1)
	}
}

func (a *app) setup(cfgPath string) error {
	var (
		cfg *config.AppConfig
		err error
	)
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	viper.SetDefault("log-level", cfg.Log.Level)
	viper.SetDefault("ratio", cfg.Summary.Ratio)
	viper.SetDefault("addr", cfg.Server.Addr)

	log, err := newLogger(viper.GetString("log-level"))
	if err != nil {
		return err
	}

	seg, err := segmenter.New(cfg.Segmenter.Type)
	if err != nil {
		return err
	}
	opts := []summarizer.Option{
		summarizer.WithSegmenter(seg),
		summarizer.WithStemming(cfg.Weighting.Stem),
		summarizer.WithWeighting(tfidf.Options{
			SublinearTF: cfg.Weighting.SublinearTF,
			Normalize:   cfg.Weighting.Normalize,
		}),
		summarizer.WithLogger(log.WithField("component", "summarizer")),
	}
	if cfg.Stopwords.Path != "" {
		set, err := stopwords.LoadFile(cfg.Stopwords.Path)
		if err != nil {
			return err
		}
		opts = append(opts, summarizer.WithStopwords(set))
	}
	sum, err := summarizer.New(opts...)
	if err != nil {
		return errors.Wrap(err, "failed to initialize summarizer")
	}

	a.cfg = cfg
	a.log = log
	a.summarizer = sum
	a.service = service.NewSummaryService(sum, log.WithField("component", "service"))
	log.WithFields(logrus.Fields{
		"segmenter": seg.Name(),
		"stem":      cfg.Weighting.Stem,
	}).Debug("summarizer ready")
	return nil
}

func newLogger(level string) (*logrus.Entry, error) {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrap(err, "invalid log level")
	}
	logger.SetLevel(lvl)
	return logger.WithField("service", "textsum"), nil
}

func ratioFlag() (float64, error) {
	ratio := viper.GetFloat64("ratio")
	if !(ratio > 0) {
		return 0, errors.Errorf("ratio must be greater than 0, got %v", ratio)
	}
	return ratio, nil
}
