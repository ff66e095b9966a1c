// Package pipeline implements the composable, config-driven filter/sort/
// group transformation applied to a directory listing before it is emitted
// to a session as a DirectoryLoaded event.
package pipeline

import "github.com/marmos91/filecore/pkg/node"

// Group is one labeled bucket of a Grouped PipelineData, in the order it
// should be displayed.
type Group struct {
	Label string
	Nodes []node.FileNode
	Order int
}

// Data is the discriminated union a Stage consumes and produces: either a
// flat ordered sequence, or nodes partitioned into labeled groups. Exactly
// one of Flat or Grouped is meaningful, selected by Kind.
type Data struct {
	Kind    DataKind
	Flat    []node.FileNode
	Grouped GroupedNodes
}

// DataKind discriminates Data's two shapes.
type DataKind int

const (
	KindFlat DataKind = iota
	KindGrouped
)

// GroupedNodes is an ordered sequence of labeled groups plus the running
// total across them. TotalCount must always equal the sum of each group's
// node count; every stage that touches Grouped data is responsible for
// preserving that invariant.
type GroupedNodes struct {
	Groups     []Group
	TotalCount int
}

// NewFlat wraps a flat node sequence as Data.
func NewFlat(nodes []node.FileNode) Data {
	return Data{Kind: KindFlat, Flat: nodes}
}

// NewGrouped wraps pre-built groups as Data, computing TotalCount.
func NewGrouped(groups []Group) Data {
	total := 0
	for _, g := range groups {
		total += len(g.Nodes)
	}
	return Data{Kind: KindGrouped, Grouped: GroupedNodes{Groups: groups, TotalCount: total}}
}

// Flatten concatenates group nodes in order if Grouped, or returns the flat
// sequence unchanged. Used by the Scanner to emit a single ordered entry
// list regardless of how the pipeline left the data shaped.
func (d Data) Flatten() []node.FileNode {
	if d.Kind == KindFlat {
		return d.Flat
	}
	out := make([]node.FileNode, 0, d.Grouped.TotalCount)
	for _, g := range d.Grouped.Groups {
		out = append(out, g.Nodes...)
	}
	return out
}

// Len returns the total node count regardless of shape.
func (d Data) Len() int {
	if d.Kind == KindFlat {
		return len(d.Flat)
	}
	return d.Grouped.TotalCount
}
