// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	internal_abbreviations "github.com/rapidaai/tts-utils/api/normalizer-api/internal/abbreviations"
	internal_locale "github.com/rapidaai/tts-utils/api/normalizer-api/internal/locale"
	internal_normalizers "github.com/rapidaai/tts-utils/api/normalizer-api/internal/normalizers"
	"github.com/rapidaai/tts-utils/config"
	"github.com/rapidaai/tts-utils/pkg/commons"
	"github.com/rapidaai/tts-utils/pkg/utils"
)

// app holds everything a subcommand needs once configuration is resolved.
type app struct {
	cfg      *config.AppConfig
	logger   commons.Logger
	locale   *internal_locale.Locale
	pipeline *internal_normalizers.Pipeline
}

type rootFlags struct {
	locale           string
	normalizers      string
	abbreviationFile string
	logLevel         string
}

func Execute() error {
	return newRootCommand().Execute()
}

func newRootCommand() *cobra.Command {
	var (
		flags  rootFlags
		appCtx = &app{}
	)

	root := &cobra.Command{
		Use:           "tts-utils",
		Short:         "Text normalization for TTS training labels",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v, err := config.InitConfig()
			if err != nil {
				return err
			}
			cfg, err := config.GetApplicationConfig(v)
			if err != nil {
				return err
			}
			if err := applyOverrides(cfg, flagOverrides(cmd, flags)); err != nil {
				return err
			}
			return appCtx.setup(cfg)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appCtx.logger != nil {
				_ = appCtx.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&flags.locale, "locale", "", "number locale (pt-BR, pt-PT, en-US)")
	root.PersistentFlags().StringVar(&flags.normalizers, "normalizers", "", "comma separated stages to run (default all)")
	root.PersistentFlags().StringVar(&flags.abbreviationFile, "abbreviations", "", "JSON file merged over the built-in abbreviations")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level override")

	root.AddCommand(normalizeCmd(appCtx), serveCmd(appCtx), datasetCmd(appCtx))
	return root
}

// flagOverrides collects only the flags the user actually set.
func flagOverrides(cmd *cobra.Command, flags rootFlags) utils.Option {
	opts := utils.Option{}
	set := func(name, key, value string) {
		if cmd.Flags().Changed(name) {
			opts[key] = value
		}
	}
	set("locale", "normalizer.locale", flags.locale)
	set("normalizers", "normalizer.stages", flags.normalizers)
	set("abbreviations", "normalizer.abbreviation_file", flags.abbreviationFile)
	set("log-level", "log.level", flags.logLevel)
	return opts
}

func applyOverrides(cfg *config.AppConfig, opts utils.Option) error {
	if v, err := opts.GetString("normalizer.locale"); err == nil {
		cfg.Locale = v
	}
	if v, err := opts.GetString("normalizer.stages"); err == nil {
		cfg.Normalizers = strings.Join(utils.SplitList(v, ","), commons.SEPARATOR)
	}
	if v, err := opts.GetString("normalizer.abbreviation_file"); err == nil {
		cfg.AbbreviationFile = v
	}
	if v, err := opts.GetString("log.level"); err == nil {
		cfg.LogLevel = v
	}
	if _, ok := opts["dataset.workers"]; ok {
		v, err := opts.GetUint64("dataset.workers")
		if err != nil {
			return fmt.Errorf("invalid workers: %w", err)
		}
		if v == 0 {
			return fmt.Errorf("workers must be at least 1")
		}
		cfg.DatasetConfig.Workers = int(v)
	}
	if _, ok := opts["dataset.lowercase"]; ok {
		v, err := opts.GetBool("dataset.lowercase")
		if err != nil {
			return fmt.Errorf("invalid lowercase: %w", err)
		}
		cfg.DatasetConfig.Lowercase = v
	}
	return nil
}

func (a *app) setup(cfg *config.AppConfig) error {
	opts := []commons.LoggerOption{
		commons.Name(cfg.Name),
		commons.Level(cfg.LogLevel),
		commons.Path(cfg.LogFile),
	}
	if cfg.IsProduction() {
		opts = append(opts, commons.EnableProduction())
	}
	logger, err := commons.NewApplicationLogger(opts...)
	if err != nil {
		return fmt.Errorf("unable to build logger: %w", err)
	}

	locale, err := internal_locale.Lookup(cfg.Locale)
	if err != nil {
		return err
	}

	table, err := internal_abbreviations.LoadWithDefaults(cfg.AbbreviationFile)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	a.locale = locale
	a.pipeline = internal_normalizers.BuildNormalizerPipeline(logger, internal_normalizers.NormalizerConfig{
		Locale:        locale,
		Abbreviations: table,
		Stages:        cfg.Stages(),
	})
	logger.Debugf("pipeline ready with locale %s and stages %v", locale.Tag, a.pipeline.Stages())
	return nil
}
