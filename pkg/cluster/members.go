package cluster

// Members returns the answers a cluster points at, in index order. Indices
// that do not name an answer are skipped.
func Members(answers []string, indices []int) []string {
	members := []string{}
	for _, idx := range indices {
		if idx >= 0 && idx < len(answers) {
			members = append(members, answers[idx])
		}
	}
	return members
}
