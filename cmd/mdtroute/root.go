package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/NoleHealth/mdtroute"
)

func newRootCommand() *cobra.Command {
	var compact bool

	rootCmd := &cobra.Command{
		Use:   "mdtroute <route-string-or-file>",
		Short: "Decode Mythic Dungeon Tools route strings",
		Long: `Decode Mythic Dungeon Tools route strings into JSON.

The argument is either a literal route string or the path to a file
containing one; paths are recognized by a .txt suffix or a path separator.
The decoded document is printed to stdout, progress to stderr. Malformed
routes produce a failure document, not an error exit.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			route, err := loadRoute(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.ErrOrStderr(), "decoding route string...")
			result := mdtroute.Decode(route)
			if result.Failed() {
				fmt.Fprintln(cmd.ErrOrStderr(), "decode failed")
			} else {
				fmt.Fprintf(cmd.ErrOrStderr(), "decoded %d bytes, decompressed to %d bytes\n",
					result.Metadata.CompressedLength, result.Metadata.DecompressedLength)
			}

			return writeJSON(cmd, result, compact)
		},
	}

	rootCmd.Flags().BoolVar(&compact, "compact", false, "emit compact JSON without indentation")

	return rootCmd
}

// isFilePath reports whether the argument names a file rather than a literal
// route string.
func isFilePath(arg string) bool {
	return strings.HasSuffix(arg, ".txt") || strings.ContainsAny(arg, `/\`)
}

// loadRoute resolves the command argument into a route string, reading and
// trimming the file when the argument is a path.
func loadRoute(arg string) (string, error) {
	if !isFilePath(arg) {
		return arg, nil
	}

	data, err := os.ReadFile(arg)
	if err != nil {
		return "", fmt.Errorf("read route file: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}
