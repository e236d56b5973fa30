package handler

import "encoding/json"

type ClusterRequest struct {
	Responses json.RawMessage `json:"responses"`
}

type ClusterItemResponse struct {
	Title   string `json:"title"`
	Indices []int  `json:"indices"`
}

type ClusterResponse struct {
	Model    string                `json:"model"`
	Prompt   string                `json:"prompt"`
	Clusters []ClusterItemResponse `json:"clusters"`
	Warnings []string              `json:"warnings,omitempty"`
}

type TranscriptResponse struct {
	Transcript string `json:"transcript"`
}

// PublicConfig is what the browser may read from /config. The Supabase anon
// key is designed to be public.
type PublicConfig struct {
	SupabaseURL         string `json:"SUPABASE_URL"`
	SupabaseAnonKey     string `json:"SUPABASE_ANON_KEY"`
	ClusterModelID      string `json:"CLUSTER_MODEL_ID"`
	ClusterModelLabel   string `json:"CLUSTER_MODEL_LABEL"`
	MinClusterResponses int    `json:"MIN_CLUSTER_RESPONSES"`
}
