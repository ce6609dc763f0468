// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func normalizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize [text...]",
		Short: "Normalize text from arguments or, line by line, from stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) > 0 {
				normalized, err := a.pipeline.Normalize(cmd.Context(), strings.Join(args, " "))
				if err != nil {
					return err
				}
				fmt.Fprintln(out, normalized)
				return nil
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
			line := 0
			for scanner.Scan() {
				line++
				normalized, err := a.pipeline.Normalize(cmd.Context(), scanner.Text())
				if err != nil {
					return fmt.Errorf("line %d: %w", line, err)
				}
				fmt.Fprintln(out, normalized)
			}
			return scanner.Err()
		},
	}
}
