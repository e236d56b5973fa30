package cluster

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const UntitledCluster = "Untitled cluster"

var (
	ErrEmptyReply  = errors.New("model returned no content")
	ErrInvalidJSON = errors.New("model did not return valid JSON")
)

type Cluster struct {
	Title   string `json:"title"`
	Indices []int  `json:"indices"`
}

// Report is the normalized reply together with a note for every field that had
// to be defaulted or dropped. Warnings never affect Clusters.
type Report struct {
	Clusters []Cluster
	Warnings []string
}

// Normalize turns a raw model reply into clusters. Only an empty reply or text
// that is not JSON fails; every shape problem below that degrades to a default.
func Normalize(reply string) ([]Cluster, error) {
	report, err := NormalizeReport(reply, -1)
	if err != nil {
		return nil, err
	}
	return report.Clusters, nil
}

// NormalizeReport behaves like Normalize and also collects warnings. When
// answerCount is non-negative, indices outside [0, answerCount) are reported;
// they are still kept in the result.
func NormalizeReport(reply string, answerCount int) (Report, error) {
	if reply == "" {
		return Report{}, ErrEmptyReply
	}
	if !json.Valid([]byte(reply)) {
		return Report{}, ErrInvalidJSON
	}

	dec := json.NewDecoder(strings.NewReader(reply))
	dec.UseNumber()

	var out any
	if err := dec.Decode(&out); err != nil {
		return Report{}, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	n := &normalizer{answerCount: answerCount}
	clusters := n.clusters(out)
	return Report{Clusters: clusters, Warnings: n.warnings}, nil
}

type normalizer struct {
	answerCount int
	warnings    []string
}

func (n *normalizer) warn(format string, args ...any) {
	n.warnings = append(n.warnings, fmt.Sprintf(format, args...))
}

func (n *normalizer) clusters(out any) []Cluster {
	clusters := []Cluster{}

	root, _ := out.(map[string]any)
	entries, ok := root["clusters"].([]any)
	if !ok {
		n.warn("reply has no clusters array")
		return clusters
	}

	for i, entry := range entries {
		clusters = append(clusters, n.cluster(i, entry))
	}
	return clusters
}

func (n *normalizer) cluster(pos int, entry any) Cluster {
	fields, ok := entry.(map[string]any)
	if !ok {
		n.warn("cluster %d: entry is %s, not an object", pos, jsonKind(entry))
	}

	c := Cluster{Title: UntitledCluster, Indices: []int{}}

	if title, ok := fields["title"].(string); ok {
		c.Title = title
		if strings.TrimSpace(title) == "" {
			n.warn("cluster %d: title is blank", pos)
		}
	} else if fields != nil {
		n.warn("cluster %d: title is %s, using %q", pos, jsonKind(fields["title"]), UntitledCluster)
	}

	for _, candidate := range n.candidates(pos, fields) {
		idx, ok := toIndex(candidate)
		if !ok {
			n.warn("cluster %d: dropped index candidate %s", pos, jsString(candidate))
			continue
		}
		if n.answerCount >= 0 && (idx < 0 || idx >= n.answerCount) {
			n.warn("cluster %d: index %d is out of range for %d answers", pos, idx, n.answerCount)
		}
		c.Indices = append(c.Indices, idx)
	}

	return c
}

func (n *normalizer) candidates(pos int, fields map[string]any) []any {
	if fields == nil {
		return nil
	}

	switch raw := fields["indices"].(type) {
	case []any:
		return raw
	case string:
		n.warn("cluster %d: indices given as string %q, reading one index per character", pos, raw)
		chars := make([]any, 0, len(raw))
		for _, r := range raw {
			chars = append(chars, string(r))
		}
		return chars
	default:
		n.warn("cluster %d: indices is %s, using none", pos, jsonKind(raw))
		return nil
	}
}
