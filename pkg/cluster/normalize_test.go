package cluster

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestNormalizeFailures(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  error
	}{
		{name: "empty reply", reply: "", want: ErrEmptyReply},
		{name: "prose", reply: "not json", want: ErrInvalidJSON},
		{name: "truncated object", reply: `{"clusters":[{"title":"A"`, want: ErrInvalidJSON},
		{name: "trailing garbage", reply: `{"clusters":[]} thanks!`, want: ErrInvalidJSON},
		{name: "fenced json", reply: "```json\n{\"clusters\":[]}\n```", want: ErrInvalidJSON},
		{name: "whitespace only", reply: "   ", want: ErrInvalidJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clusters, err := Normalize(tt.reply)
			assert.Equal(t, true, errors.Is(err, tt.want))
			assert.Equal(t, 0, len(clusters))
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  []Cluster
	}{
		{
			name:  "mixed integer and numeric string indices",
			reply: `{"clusters":[{"title":"A","indices":[0,1,"2"]}]}`,
			want:  []Cluster{{Title: "A", Indices: []int{0, 1, 2}}},
		},
		{
			name:  "string indices read per character",
			reply: `{"clusters":[{"indices":"01"}]}`,
			want:  []Cluster{{Title: UntitledCluster, Indices: []int{0, 1}}},
		},
		{
			name:  "non-string title and non-numeric candidate",
			reply: `{"clusters":[{"title":42,"indices":["x","3"]}]}`,
			want:  []Cluster{{Title: UntitledCluster, Indices: []int{3}}},
		},
		{
			name:  "empty object",
			reply: `{}`,
			want:  []Cluster{},
		},
		{
			name:  "clusters is not an array",
			reply: `{"clusters":{"title":"A","indices":[0]}}`,
			want:  []Cluster{},
		},
		{
			name:  "top level array",
			reply: `[{"title":"A","indices":[0]}]`,
			want:  []Cluster{},
		},
		{
			name:  "top level null",
			reply: `null`,
			want:  []Cluster{},
		},
		{
			name:  "entries that are not objects",
			reply: `{"clusters":[null, 7, "A", [1,2]]}`,
			want: []Cluster{
				{Title: UntitledCluster, Indices: []int{}},
				{Title: UntitledCluster, Indices: []int{}},
				{Title: UntitledCluster, Indices: []int{}},
				{Title: UntitledCluster, Indices: []int{}},
			},
		},
		{
			name:  "indices of unusable types",
			reply: `{"clusters":[{"title":"A","indices":{"0":1}},{"title":"B","indices":5},{"title":"C"}]}`,
			want: []Cluster{
				{Title: "A", Indices: []int{}},
				{Title: "B", Indices: []int{}},
				{Title: "C", Indices: []int{}},
			},
		},
		{
			name:  "blank title",
			reply: `{"clusters":[{"title":"  ","indices":[1]}]}`,
			want:  []Cluster{{Title: "  ", Indices: []int{1}}},
		},
		{
			name:  "empty title",
			reply: `{"clusters":[{"title":"","indices":[0]}]}`,
			want:  []Cluster{{Title: "", Indices: []int{0}}},
		},
		{
			name:  "duplicates and out of range indices pass through",
			reply: `{"clusters":[{"title":"A","indices":[2,2,-1,99]}]}`,
			want:  []Cluster{{Title: "A", Indices: []int{2, 2, -1, 99}}},
		},
		{
			name:  "fractional and prefixed candidates",
			reply: `{"clusters":[{"title":"A","indices":[1.0,2.7," 4","5th","-6",true,null,[7,8],{},""]}]}`,
			want:  []Cluster{{Title: "A", Indices: []int{1, 2, 4, 5, -6, 7}}},
		},
		{
			name:  "exponent notation",
			reply: `{"clusters":[{"title":"A","indices":[1e1, 1e300]}]}`,
			want:  []Cluster{{Title: "A", Indices: []int{10}}},
		},
		{
			name:  "string indices with separators",
			reply: `{"clusters":[{"title":"A","indices":"[3, 12]"}]}`,
			want:  []Cluster{{Title: "A", Indices: []int{3, 1, 2}}},
		},
		{
			name:  "order of clusters is kept",
			reply: `{"clusters":[{"title":"Z","indices":[3]},{"title":"A","indices":[0]}],"extra":"ignored"}`,
			want: []Cluster{
				{Title: "Z", Indices: []int{3}},
				{Title: "A", Indices: []int{0}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clusters, err := Normalize(tt.reply)
			assert.Equal(t, nil, err)
			assert.Equal(t, tt.want, clusters)
		})
	}
}

func TestNormalizeNeverReturnsNilSlices(t *testing.T) {
	clusters, err := Normalize(`{"clusters":[{"title":"A","indices":"xyz"}]}`)
	assert.Equal(t, nil, err)

	body, _ := json.Marshal(clusters)
	assert.Equal(t, `[{"title":"A","indices":[]}]`, string(body))

	clusters, err = Normalize(`{"clusters":null}`)
	assert.Equal(t, nil, err)

	body, _ = json.Marshal(clusters)
	assert.Equal(t, `[]`, string(body))
}

func TestNormalizeRoundTrip(t *testing.T) {
	replies := []string{
		`{"clusters":[{"title":"A","indices":[0,1,"2"]},{"indices":"34"}]}`,
		`{"clusters":[{"title":42,"indices":["x","3"]}]}`,
		`{}`,
	}

	for _, reply := range replies {
		first, err := Normalize(reply)
		assert.Equal(t, nil, err)

		body, err := json.Marshal(map[string]any{"clusters": first})
		assert.Equal(t, nil, err)

		second, err := Normalize(string(body))
		assert.Equal(t, nil, err)
		assert.Equal(t, first, second)
	}
}

func TestNormalizeReportWarnings(t *testing.T) {
	report, err := NormalizeReport(`{"clusters":[{"title":"A","indices":[0,1]}]}`, 2)
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(report.Warnings))

	report, err = NormalizeReport(`{"clusters":[{"title":42,"indices":["x",5]},{"title":"B","indices":"1"}]}`, 3)
	assert.Equal(t, nil, err)
	assert.Equal(t, []Cluster{
		{Title: UntitledCluster, Indices: []int{5}},
		{Title: "B", Indices: []int{1}},
	}, report.Clusters)
	assert.Equal(t, []string{
		`cluster 0: title is a number, using "Untitled cluster"`,
		`cluster 0: dropped index candidate x`,
		`cluster 0: index 5 is out of range for 3 answers`,
		`cluster 1: indices given as string "1", reading one index per character`,
	}, report.Warnings)
}

func TestNormalizeReportBlankTitleKeptWithWarning(t *testing.T) {
	report, err := NormalizeReport(`{"clusters":[{"title":"","indices":[0]},{"title":"   ","indices":[1]}]}`, 2)
	assert.Equal(t, nil, err)
	assert.Equal(t, []Cluster{
		{Title: "", Indices: []int{0}},
		{Title: "   ", Indices: []int{1}},
	}, report.Clusters)
	assert.Equal(t, []string{
		`cluster 0: title is blank`,
		`cluster 1: title is blank`,
	}, report.Warnings)
}

func TestNormalizeExtremeNumberIndices(t *testing.T) {
	report, err := NormalizeReport(`{"clusters":[{"title":"A","indices":[1e400, 0.0000001, -1e400, 2]}]}`, 3)
	assert.Equal(t, nil, err)
	assert.Equal(t, []Cluster{{Title: "A", Indices: []int{1, 2}}}, report.Clusters)
	assert.Equal(t, []string{
		`cluster 0: dropped index candidate Infinity`,
		`cluster 0: dropped index candidate -Infinity`,
	}, report.Warnings)
}

func TestNormalizeReportWithoutAnswerCountSkipsRangeCheck(t *testing.T) {
	report, err := NormalizeReport(`{"clusters":[{"title":"A","indices":[-4,400]}]}`, -1)
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(report.Warnings))
	assert.Equal(t, []int{-4, 400}, report.Clusters[0].Indices)
}

func TestNormalizeReportMissingClusters(t *testing.T) {
	report, err := NormalizeReport(`{"groups":[]}`, 4)
	assert.Equal(t, nil, err)
	assert.Equal(t, []Cluster{}, report.Clusters)
	assert.Equal(t, []string{"reply has no clusters array"}, report.Warnings)
}
