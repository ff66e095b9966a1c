package pipeline

import (
	"sort"
	"time"

	"github.com/marmos91/filecore/pkg/node"
)

// Field selects the node attribute SortBy orders by.
type Field int

const (
	FieldName Field = iota
	FieldSize
	FieldModified
	FieldCreated
	FieldExtension
	FieldType
)

// Order selects ascending or descending.
type Order int

const (
	OrderAscending Order = iota
	OrderDescending
)

// SortBy is a stable sort over a stage's node sequence (or, for Grouped
// data, over each group's sequence independently).
type SortBy struct {
	Field            Field
	Order            Order
	DirectoriesFirst bool
}

func (s SortBy) Process(in Data) Data {
	if in.Kind == KindFlat {
		return NewFlat(s.sortNodes(in.Flat))
	}

	groups := make([]Group, len(in.Grouped.Groups))
	for i, g := range in.Grouped.Groups {
		groups[i] = Group{Label: g.Label, Nodes: s.sortNodes(g.Nodes), Order: g.Order}
	}
	return Data{Kind: KindGrouped, Grouped: GroupedNodes{Groups: groups, TotalCount: in.Grouped.TotalCount}}
}

func (s SortBy) Name() string { return "sort_by" }

func (s SortBy) sortNodes(nodes []node.FileNode) []node.FileNode {
	out := make([]node.FileNode, len(nodes))
	copy(out, nodes)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]

		if s.DirectoriesFirst && a.IsDir() != b.IsDir() {
			return a.IsDir()
		}
		return s.less(a, b)
	})
	return out
}

// less compares a and b on Field, applying Order. The directories-first
// rule is handled by the caller and never reversed by Order.
func (s SortBy) less(a, b node.FileNode) bool {
	switch s.Field {
	case FieldSize:
		return s.applyOrder(a.SizeBytes < b.SizeBytes, a.SizeBytes > b.SizeBytes)
	case FieldModified:
		return s.lessTime(a.ModifiedTime, b.ModifiedTime)
	case FieldCreated:
		return s.lessTime(a.CreatedTime, b.CreatedTime)
	case FieldExtension:
		return s.lessExtension(a, b)
	case FieldType:
		// Type falls back to Name per the stored comparator rules.
		return s.applyOrder(a.Name < b.Name, a.Name > b.Name)
	default: // FieldName
		return s.applyOrder(a.Name < b.Name, a.Name > b.Name)
	}
}

func (s SortBy) applyOrder(asc, desc bool) bool {
	if s.Order == OrderDescending {
		return desc
	}
	return asc
}

// lessTime ranks "has a time" before "absent" in Ascending order (and the
// reverse in Descending); among two present times it compares chronologically,
// honoring Order. Mirrors lessExtension's has/hasn't relation.
func (s SortBy) lessTime(a, b *time.Time) bool {
	hasA, hasB := a != nil, b != nil

	if hasA != hasB {
		if s.Order == OrderDescending {
			return hasB
		}
		return hasA
	}
	if !hasA {
		return false
	}
	return s.applyOrder(a.Before(*b), a.After(*b))
}

// lessExtension ranks "has extension" before "no extension" in Ascending
// order (and the reverse in Descending); among two present extensions it
// compares lexicographically, honoring Order.
func (s SortBy) lessExtension(a, b node.FileNode) bool {
	extA, extB := a.Extension(), b.Extension()
	hasA, hasB := extA != "", extB != ""

	if hasA != hasB {
		if s.Order == OrderDescending {
			return hasB
		}
		return hasA
	}
	if !hasA {
		return false
	}
	return s.applyOrder(extA < extB, extA > extB)
}
