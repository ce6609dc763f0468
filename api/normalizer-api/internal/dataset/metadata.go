// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_dataset

import (
	"encoding/csv"
	"fmt"
	"io"
)

// MetadataHeader is the first row of metadata.csv.
var MetadataHeader = []string{"ID", "text", "textCleaned"}

// WriteMetadata writes records as pipe delimited rows preceded by
// MetadataHeader.
func WriteMetadata(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	cw.Comma = '|'
	if err := cw.Write(MetadataHeader); err != nil {
		return fmt.Errorf("dataset: writing header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write([]string{r.ID, r.Text, r.TextCleaned}); err != nil {
			return fmt.Errorf("dataset: writing %s: %w", r.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
