// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	internal_dataset "github.com/rapidaai/tts-utils/api/normalizer-api/internal/dataset"
	"github.com/rapidaai/tts-utils/pkg/utils"
)

const metadataFile = "metadata.csv"

func datasetCmd(a *app) *cobra.Command {
	var (
		input     string
		output    string
		workers   int
		lowercase bool
	)

	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Build metadata.csv from an utterance file",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := utils.Option{}
			if cmd.Flags().Changed("workers") {
				opts["dataset.workers"] = workers
			}
			if cmd.Flags().Changed("lowercase") {
				opts["dataset.lowercase"] = lowercase
			}
			if err := applyOverrides(a.cfg, opts); err != nil {
				return err
			}

			in, err := os.Open(input)
			if err != nil {
				return err
			}
			defer in.Close()

			utterances, err := internal_dataset.ReadUtterances(in)
			if err != nil {
				return err
			}

			start := time.Now()
			builder := internal_dataset.NewBuilder(a.logger, a.pipeline, internal_dataset.BuilderConfig{
				Workers:   a.cfg.DatasetConfig.Workers,
				Lowercase: a.cfg.DatasetConfig.Lowercase,
				Language:  a.locale.Language,
			})
			records, err := builder.Build(cmd.Context(), utterances)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(output, 0o755); err != nil {
				return err
			}
			path := filepath.Join(output, metadataFile)
			out, err := os.Create(path)
			if err != nil {
				return err
			}
			if err := internal_dataset.WriteMetadata(out, records); err != nil {
				out.Close()
				return err
			}
			if err := out.Close(); err != nil {
				return err
			}

			a.logger.Benchmark("dataset.Build", time.Since(start))
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d records from %d utterances to %s\n", len(records), len(utterances), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "utterance file, one <audio-id>|<text> per line")
	cmd.Flags().StringVarP(&output, "output", "o", ".", "directory receiving metadata.csv")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent utterances (overrides DATASET__WORKERS)")
	cmd.Flags().BoolVar(&lowercase, "lowercase", true, "lowercase textCleaned (overrides DATASET__LOWERCASE)")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
