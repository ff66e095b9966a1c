package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/filecore/pkg/node"
)

// TestScenarioFilterAndSort mirrors the documented "Pipeline filter+sort"
// scenario: hidden files are dropped and the remainder sorted by name.
func TestScenarioFilterAndSort(t *testing.T) {
	zTxt := mkNode("z.txt", false, 0, nil, "txt")
	hidden := mkNode(".hidden", false, 0, nil, "")
	hidden.Meta.Hidden = true
	aTxt := mkNode("a.txt", false, 0, nil, "txt")

	config := PipelineConfig{
		Filter: &FilterConfig{ShowHidden: false},
		Sort:   &SortConfig{Field: SortFieldName, Order: OrderWireAscending, DirectoriesFirst: false},
	}

	built, err := Build(config)
	require.NoError(t, err)

	out := built.Execute(NewFlat([]node.FileNode{zTxt, hidden, aTxt}))

	var names []string
	for _, n := range out.Flatten() {
		names = append(names, n.Name)
	}
	assert.Equal(t, []string{"a.txt", "z.txt"}, names)
}

// TestScenarioGroupingTotals mirrors the documented "Grouping totals"
// scenario: three nodes split into two extension groups, counts sum to the
// total, and groups appear in alphabetic label order.
func TestScenarioGroupingTotals(t *testing.T) {
	config := PipelineConfig{Group: &GroupConfig{By: GroupByExtension}}

	built, err := Build(config)
	require.NoError(t, err)

	in := NewFlat([]node.FileNode{
		mkNode("a.rs", false, 0, nil, "rs"),
		mkNode("b.rs", false, 0, nil, "rs"),
		mkNode("c.md", false, 0, nil, "md"),
	})

	out := built.Execute(in)

	require.Equal(t, KindGrouped, out.Kind)
	require.Len(t, out.Grouped.Groups, 2)
	assert.Equal(t, "md", out.Grouped.Groups[0].Label)
	assert.Len(t, out.Grouped.Groups[0].Nodes, 1)
	assert.Equal(t, "rs", out.Grouped.Groups[1].Label)
	assert.Len(t, out.Grouped.Groups[1].Nodes, 2)
	assert.Equal(t, 3, out.Grouped.TotalCount)
}

func TestFilterStagesAreSizeMonotone(t *testing.T) {
	in := NewFlat([]node.FileNode{
		mkNode("a.go", false, 0, nil, "go"),
		mkNode("b.txt", false, 0, nil, "txt"),
	})

	out := FilterByExtension{Extensions: []string{"go"}}.Process(in)
	assert.LessOrEqual(t, out.Len(), in.Len())
}

func TestGroupedTotalCountInvariantHolds(t *testing.T) {
	out := GroupBy{Field: GroupExtension}.Process(NewFlat([]node.FileNode{
		mkNode("a.go", false, 0, nil, "go"),
		mkNode("b.go", false, 0, nil, "go"),
		mkNode("c.md", false, 0, nil, "md"),
	}))

	sum := 0
	for _, g := range out.Grouped.Groups {
		sum += len(g.Nodes)
	}
	assert.Equal(t, out.Grouped.TotalCount, sum)
}

func TestBuildAddsNoStagesForEmptyConfig(t *testing.T) {
	built, err := Build(PipelineConfig{})
	require.NoError(t, err)
	assert.Empty(t, built.StageNames())
}

func TestBuildOrdersFilterStagesBeforeSortBeforeGroup(t *testing.T) {
	min := uint64(1)
	built, err := Build(PipelineConfig{
		Filter: &FilterConfig{
			ShowHidden:        true,
			IncludeExtensions: []string{"go"},
			ExcludeExtensions: []string{"md"},
			MinSize:           &min,
			NamePattern:       "*.go",
		},
		Sort:  &SortConfig{Field: SortFieldName, Order: OrderWireAscending},
		Group: &GroupConfig{By: GroupByExtension},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"filter_hidden",
		"filter_by_extension",
		"filter_by_extension",
		"filter_by_size",
		"filter_by_name_pattern",
		"sort_by",
		"group_by",
	}, built.StageNames())
}
