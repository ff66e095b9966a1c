package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/marmos91/filecore/pkg/node"
)

func TestGroupByExtensionLabelsNoExtensionSentinel(t *testing.T) {
	in := NewFlat([]node.FileNode{
		mkNode("a.go", false, 0, nil, ".go"),
		mkNode("b", false, 0, nil, ""),
	})

	out := GroupBy{Field: GroupExtension}.Process(in)

	labels := labelsOf(out)
	assert.Contains(t, labels, ".go")
	assert.Contains(t, labels, "No extension")
}

func TestGroupByTypeMapsToExtension(t *testing.T) {
	in := NewFlat([]node.FileNode{mkNode("a.go", false, 0, nil, ".go")})

	out := GroupBy{Field: GroupType}.Process(in)

	assert.Equal(t, ".go", out.Grouped.Groups[0].Label)
}

func TestGroupByDateUnknownBucketForMissingTime(t *testing.T) {
	in := NewFlat([]node.FileNode{mkNode("a", false, 0, nil, "")})

	out := GroupBy{Field: GroupDate, Now: time.Unix(1700000000, 0)}.Process(in)

	assert.Equal(t, "unknown", out.Grouped.Groups[0].Label)
}

func TestGroupByDateBuckets(t *testing.T) {
	now := time.Unix(1700000000, 0)
	lastHour := now.Add(-30 * time.Minute)
	older := now.Add(-20 * 365 * 24 * time.Hour)

	in := NewFlat([]node.FileNode{
		mkNode("recent", false, 0, &lastHour, ""),
		mkNode("ancient", false, 0, &older, ""),
	})

	out := GroupBy{Field: GroupDate, Now: now}.Process(in)

	labels := labelsOf(out)
	assert.Contains(t, labels, "last_hour")
	assert.Contains(t, labels, "older")
}

func TestGroupBySizeClasses(t *testing.T) {
	in := NewFlat([]node.FileNode{
		mkNode("empty", false, 0, nil, ""),
		mkNode("tiny", false, 5*1024, nil, ""),
		mkNode("massive", false, 20*gb, nil, ""),
	})

	out := GroupBy{Field: GroupSize}.Process(in)

	labels := labelsOf(out)
	assert.Contains(t, labels, "empty")
	assert.Contains(t, labels, "tiny")
	assert.Contains(t, labels, "massive")
}

func TestGroupByFirstLetterUppercasesLettersAndKeysDigitsVerbatim(t *testing.T) {
	in := NewFlat([]node.FileNode{
		mkNode("apple", false, 0, nil, ""),
		mkNode("Banana", false, 0, nil, ""),
		mkNode("123file", false, 0, nil, ""),
	})

	out := GroupBy{Field: GroupFirstLetter}.Process(in)

	labels := labelsOf(out)
	assert.Contains(t, labels, "A")
	assert.Contains(t, labels, "B")
	assert.Contains(t, labels, "1")
}

func TestGroupByFirstLetterSentinelsEmptyName(t *testing.T) {
	in := NewFlat([]node.FileNode{mkNode("", false, 0, nil, "")})

	out := GroupBy{Field: GroupFirstLetter}.Process(in)

	assert.Equal(t, "#", out.Grouped.Groups[0].Label)
}

func TestGroupByOrdersLabelsAscendingAndPreservesTotalCount(t *testing.T) {
	in := NewFlat([]node.FileNode{
		mkNode("z.zip", false, 0, nil, ".zip"),
		mkNode("a.avi", false, 0, nil, ".avi"),
		mkNode("m.mp3", false, 0, nil, ".mp3"),
	})

	out := GroupBy{Field: GroupExtension}.Process(in)

	var labels []string
	for i, g := range out.Grouped.Groups {
		labels = append(labels, g.Label)
		assert.Equal(t, i, g.Order)
	}
	assert.Equal(t, []string{".avi", ".mp3", ".zip"}, labels)
	assert.Equal(t, 3, out.Grouped.TotalCount)
}

func TestGroupByNoneIsPassthrough(t *testing.T) {
	in := NewFlat([]node.FileNode{mkNode("a", false, 0, nil, "")})
	out := GroupBy{Field: GroupNone}.Process(in)
	assert.Equal(t, KindFlat, out.Kind)
}

func TestGroupByFlattensExistingGrouping(t *testing.T) {
	in := Data{Kind: KindGrouped, Grouped: GroupedNodes{
		Groups: []Group{
			{Label: "old", Nodes: []node.FileNode{mkNode("a.go", false, 0, nil, ".go")}},
		},
		TotalCount: 1,
	}}

	out := GroupBy{Field: GroupExtension}.Process(in)
	assert.Equal(t, ".go", out.Grouped.Groups[0].Label)
}

func labelsOf(d Data) []string {
	var labels []string
	for _, g := range d.Grouped.Groups {
		labels = append(labels, g.Label)
	}
	return labels
}
