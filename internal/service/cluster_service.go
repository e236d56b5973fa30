package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kwen1510/Realtime-clustering/internal/model"
	"github.com/kwen1510/Realtime-clustering/pkg/cluster"
	"github.com/kwen1510/Realtime-clustering/pkg/llm"
)

const SystemInstruction = "You cluster short student answers. Respond strictly with JSON that matches the provided schema."

type Cache interface {
	Get(ctx context.Context, modelID, prompt string) (*model.ClusterSet, error)
	Set(ctx context.Context, modelID, prompt string, set *model.ClusterSet) error
}

type ClusterOptions struct {
	Model           string
	MaxTokens       int
	ReasoningEffort string
}

type ClusterService struct {
	completer llm.Completer
	cache     Cache
	opts      ClusterOptions
}

// NewClusterService wires the clustering flow. cache may be nil.
func NewClusterService(completer llm.Completer, cache Cache, opts ClusterOptions) *ClusterService {
	return &ClusterService{completer: completer, cache: cache, opts: opts}
}

// Cluster sends the answers to the model once and normalizes the reply.
// Provider failures come back as *llm.UpstreamError; an empty or non-JSON
// reply comes back as cluster.ErrEmptyReply or cluster.ErrInvalidJSON.
func (s *ClusterService) Cluster(ctx context.Context, answers []string) (*model.ClusterSet, error) {
	prompt := cluster.BuildPrompt(answers)

	if cached := s.lookup(ctx, prompt); cached != nil {
		return cached, nil
	}

	content, err := s.completer.Complete(ctx, llm.CompletionRequest{
		Model:           s.opts.Model,
		System:          SystemInstruction,
		User:            prompt,
		Temperature:     0,
		MaxTokens:       s.opts.MaxTokens,
		ReasoningEffort: s.opts.ReasoningEffort,
		JSON:            true,
	})
	if err != nil {
		return nil, fmt.Errorf("clustering call: %w", err)
	}

	slog.Debug("cluster prompt", "model", s.opts.Model, "prompt", prompt)
	slog.Debug("cluster response", "model", s.opts.Model, "content", content)

	report, err := cluster.NormalizeReport(content, len(answers))
	if err != nil {
		return nil, err
	}

	for _, warning := range report.Warnings {
		slog.Warn("degraded cluster reply", "model", s.opts.Model, "warning", warning)
	}

	set := &model.ClusterSet{
		Model:    s.opts.Model,
		Prompt:   prompt,
		Clusters: report.Clusters,
		Warnings: report.Warnings,
	}

	s.store(ctx, prompt, set)

	return set, nil
}

func (s *ClusterService) lookup(ctx context.Context, prompt string) *model.ClusterSet {
	if s.cache == nil {
		return nil
	}

	set, err := s.cache.Get(ctx, s.opts.Model, prompt)
	if err != nil {
		slog.Warn("cluster cache lookup failed", "error", err)
		return nil
	}
	if set != nil {
		slog.Info("cluster cache hit", "model", s.opts.Model, "clusters", len(set.Clusters))
	}
	return set
}

func (s *ClusterService) store(ctx context.Context, prompt string, set *model.ClusterSet) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Set(ctx, s.opts.Model, prompt, set); err != nil {
		slog.Warn("cluster cache store failed", "error", err)
	}
}
