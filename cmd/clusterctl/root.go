package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "clusterctl",
	Short: "Build clustering prompts and normalize model replies",
	Long: `clusterctl runs the answer clustering flow outside the web server.

Answers files hold either a JSON array of strings or one answer per line.

Examples:
  clusterctl prompt --file answers.txt
  clusterctl normalize --file reply.json --answers 12
  clusterctl cluster --file answers.json`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log prompts, replies and degraded fields to stderr")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
