package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

// writeJSON encodes v as JSON to the command's stdout, indented unless
// compact output was requested.
func writeJSON(cmd *cobra.Command, v any, compact bool) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	if !compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
