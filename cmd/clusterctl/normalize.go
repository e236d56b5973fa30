package main

import (
	"github.com/kwen1510/Realtime-clustering/pkg/cluster"
	"github.com/spf13/cobra"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize --file <reply>",
	Short: "Normalize a saved model reply into clusters",
	Long: `Normalize reads a raw model reply and prints the clusters the server would
return for it, together with a warning for every field that was defaulted.

Pass --answers to also report indices outside the answer list.`,
	Args: cobra.NoArgs,
	RunE: runNormalize,
}

type normalizeOutput struct {
	Clusters []cluster.Cluster `json:"clusters"`
	Warnings []string          `json:"warnings"`
}

func init() {
	normalizeCmd.Flags().StringP("file", "f", "", "reply file, or - for stdin (required)")
	normalizeCmd.Flags().IntP("answers", "n", -1, "number of answers the reply refers to")
	_ = normalizeCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("file")
	answerCount, _ := cmd.Flags().GetInt("answers")

	data, err := readInput(path, cmd.InOrStdin())
	if err != nil {
		return err
	}

	report, err := cluster.NormalizeReport(string(data), answerCount)
	if err != nil {
		return err
	}

	out := normalizeOutput{Clusters: report.Clusters, Warnings: report.Warnings}
	if out.Warnings == nil {
		out.Warnings = []string{}
	}
	return writeJSON(cmd.OutOrStdout(), out)
}
