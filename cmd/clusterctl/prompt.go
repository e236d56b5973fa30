package main

import (
	"fmt"

	"github.com/kwen1510/Realtime-clustering/pkg/cluster"
	"github.com/spf13/cobra"
)

var promptCmd = &cobra.Command{
	Use:   "prompt --file <answers>",
	Short: "Print the exact prompt that would be sent to the model",
	Args:  cobra.NoArgs,
	RunE:  runPrompt,
}

func init() {
	promptCmd.Flags().StringP("file", "f", "", "answers file, or - for stdin (required)")
	_ = promptCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(promptCmd)
}

func runPrompt(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("file")

	data, err := readInput(path, cmd.InOrStdin())
	if err != nil {
		return err
	}

	answers, err := parseAnswers(data)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), cluster.BuildPrompt(answers))
	return err
}
