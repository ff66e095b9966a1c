package pipeline

import (
	"sort"
	"time"
	"unicode"

	"github.com/marmos91/filecore/pkg/node"
)

// GroupField selects how GroupBy partitions its input.
type GroupField int

const (
	GroupNone GroupField = iota
	GroupExtension
	GroupDate
	GroupSize
	GroupFirstLetter
	// GroupType maps to the same partitioning as GroupExtension: kind
	// (file/directory/symlink) is not a useful partition on its own, so
	// Type groups by the node's extension instead.
	GroupType
)

// GroupBy partitions its input into labeled Groups, dropping any existing
// grouping first (it always consumes and flattens Grouped input). Groups
// are ordered by label, ascending, regardless of field.
type GroupBy struct {
	Field GroupField
	Now   time.Time // zero value means time.Now() at Process time
}

func (g GroupBy) Process(in Data) Data {
	if g.Field == GroupNone {
		return in
	}

	nodes := in.Flatten()
	now := g.Now
	if now.IsZero() {
		now = time.Now()
	}

	buckets := make(map[string][]node.FileNode)
	var labels []string
	for _, n := range nodes {
		label := g.labelFor(n, now)
		if _, ok := buckets[label]; !ok {
			labels = append(labels, label)
		}
		buckets[label] = append(buckets[label], n)
	}

	sort.Strings(labels)

	groups := make([]Group, len(labels))
	total := 0
	for i, label := range labels {
		groups[i] = Group{Label: label, Nodes: buckets[label], Order: i}
		total += len(buckets[label])
	}

	return Data{Kind: KindGrouped, Grouped: GroupedNodes{Groups: groups, TotalCount: total}}
}

func (g GroupBy) Name() string { return "group_by" }

func (g GroupBy) labelFor(n node.FileNode, now time.Time) string {
	switch g.Field {
	case GroupDate:
		return timeBucket(n.ModifiedTime, now)
	case GroupSize:
		return sizeClass(n.SizeBytes)
	case GroupFirstLetter:
		return firstLetterLabel(n.Name)
	case GroupExtension, GroupType:
		return extensionLabel(n.Extension())
	default:
		return ""
	}
}

// extensionLabel maps an empty extension to the "no extension" sentinel
// label.
func extensionLabel(ext string) string {
	if ext == "" {
		return "No extension"
	}
	return ext
}

// firstLetterLabel returns the uppercased first Unicode scalar of name, or
// "#" when name is empty. A non-letter leading scalar (a digit or
// punctuation) keys its own label verbatim; uppercasing it is a no-op.
func firstLetterLabel(name string) string {
	if name == "" {
		return "#"
	}

	r := []rune(name)[0]
	return string(unicode.ToUpper(r))
}
