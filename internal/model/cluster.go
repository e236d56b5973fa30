package model

import "github.com/kwen1510/Realtime-clustering/pkg/cluster"

type ClusterSet struct {
	Model    string
	Prompt   string
	Clusters []cluster.Cluster
	Warnings []string
}
