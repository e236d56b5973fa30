package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kwen1510/Realtime-clustering/internal/model"
	"github.com/kwen1510/Realtime-clustering/pkg/cluster"
	"github.com/kwen1510/Realtime-clustering/pkg/llm"
)

type Clusterer interface {
	Cluster(ctx context.Context, answers []string) (*model.ClusterSet, error)
}

type ClusterHandler struct {
	clusterer Clusterer
}

func NewClusterHandler(clusterer Clusterer) *ClusterHandler {
	return &ClusterHandler{clusterer: clusterer}
}

func (h *ClusterHandler) PostCluster(c *gin.Context) {
	var req ClusterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "responses[] required"})
		return
	}

	answers, ok := parseAnswers(req.Responses)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "responses[] required"})
		return
	}

	set, err := h.clusterer.Cluster(c.Request.Context(), answers)
	if err != nil {
		status, msg := clusterError(err)
		slog.Error("error clustering responses", "error", err, "responses", len(answers), "status", status)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, toClusterResponse(set))
}

func clusterError(err error) (int, string) {
	switch {
	case errors.Is(err, cluster.ErrEmptyReply):
		return http.StatusBadGateway, "Model returned no content."
	case errors.Is(err, cluster.ErrInvalidJSON):
		return http.StatusInternalServerError, "Model did not return valid JSON."
	}

	if upErr, ok := llm.AsUpstreamError(err); ok {
		msg := upErr.Message
		if msg == "" {
			msg = "Clustering call failed."
		}
		return upErr.HTTPStatus(), msg
	}

	return http.StatusInternalServerError, "Clustering call failed."
}

// parseAnswers accepts any JSON array. Strings are kept as they are and other
// values are used in their JSON form.
func parseAnswers(raw json.RawMessage) ([]string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, false
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}

	answers := make([]string, len(items))
	for i, item := range items {
		if len(item) > 0 && item[0] == '"' {
			var s string
			if err := json.Unmarshal(item, &s); err != nil {
				return nil, false
			}
			answers[i] = s
			continue
		}
		var compact bytes.Buffer
		if err := json.Compact(&compact, item); err != nil {
			return nil, false
		}
		answers[i] = compact.String()
	}
	return answers, true
}

func toClusterResponse(set *model.ClusterSet) ClusterResponse {
	res := ClusterResponse{
		Model:    set.Model,
		Prompt:   set.Prompt,
		Clusters: make([]ClusterItemResponse, 0, len(set.Clusters)),
		Warnings: set.Warnings,
	}

	for _, cl := range set.Clusters {
		indices := cl.Indices
		if indices == nil {
			indices = []int{}
		}
		res.Clusters = append(res.Clusters, ClusterItemResponse{
			Title:   cl.Title,
			Indices: indices,
		})
	}

	return res
}
