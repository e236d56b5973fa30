package main

import (
	"fmt"
	"log/slog"

	"github.com/kwen1510/Realtime-clustering/internal/config"
	"github.com/kwen1510/Realtime-clustering/internal/service"
	"github.com/kwen1510/Realtime-clustering/pkg/cluster"
	"github.com/spf13/cobra"
)

var clusterCmd = &cobra.Command{
	Use:   "cluster --file <answers>",
	Short: "Cluster answers with the configured model",
	Long: `Cluster sends the answers to the model configured through the environment
(or a .env file) and prints the normalized result.

Examples:
  GROQ_API_KEY=... clusterctl cluster --file answers.txt
  LLM_PROVIDER=anthropic clusterctl cluster --file answers.json --model claude-haiku-4-5`,
	Args: cobra.NoArgs,
	RunE: runCluster,
}

type clusterOutput struct {
	Model    string               `json:"model"`
	Prompt   string               `json:"prompt"`
	Clusters []clusterWithAnswers `json:"clusters"`
	Warnings []string             `json:"warnings,omitempty"`
}

type clusterWithAnswers struct {
	cluster.Cluster
	Answers []string `json:"answers,omitempty"`
}

func init() {
	clusterCmd.Flags().StringP("file", "f", "", "answers file, or - for stdin (required)")
	clusterCmd.Flags().StringP("model", "m", "", "override CLUSTER_MODEL")
	clusterCmd.Flags().Bool("show-answers", false, "include the answer texts of each cluster")
	_ = clusterCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(clusterCmd)
}

func runCluster(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("file")
	modelOverride, _ := cmd.Flags().GetString("model")
	showAnswers, _ := cmd.Flags().GetBool("show-answers")

	cfg := config.Load()
	if modelOverride != "" {
		cfg.ClusterModel = modelOverride
	}
	if key := cfg.MissingKey(); key != "" {
		return fmt.Errorf("%s is not set", key)
	}

	completer, err := cfg.Completer()
	if err != nil {
		return err
	}

	data, err := readInput(path, cmd.InOrStdin())
	if err != nil {
		return err
	}

	answers, err := parseAnswers(data)
	if err != nil {
		return err
	}

	svc := service.NewClusterService(completer, nil, service.ClusterOptions{
		Model:           cfg.ClusterModel,
		MaxTokens:       cfg.MaxTokens,
		ReasoningEffort: cfg.ReasoningEffort,
	})

	slog.Info("clustering answers", "count", len(answers), "provider", cfg.Provider, "model", cfg.ClusterModel)

	set, err := svc.Cluster(cmd.Context(), answers)
	if err != nil {
		return err
	}

	out := clusterOutput{
		Model:    set.Model,
		Prompt:   set.Prompt,
		Clusters: make([]clusterWithAnswers, 0, len(set.Clusters)),
		Warnings: set.Warnings,
	}
	for _, cl := range set.Clusters {
		item := clusterWithAnswers{Cluster: cl}
		if showAnswers {
			item.Answers = cluster.Members(answers, cl.Indices)
		}
		out.Clusters = append(out.Clusters, item)
	}

	return writeJSON(cmd.OutOrStdout(), out)
}
