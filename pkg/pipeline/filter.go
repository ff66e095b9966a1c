package pipeline

import "github.com/marmos91/filecore/pkg/node"

// filterNodes applies keep to a node slice, preserving relative order.
func filterNodes(nodes []node.FileNode, keep func(node.FileNode) bool) []node.FileNode {
	out := make([]node.FileNode, 0, len(nodes))
	for _, n := range nodes {
		if keep(n) {
			out = append(out, n)
		}
	}
	return out
}

// applyFilter runs keep over data, preserving its shape. For Grouped data,
// filtering happens within each group; groups left empty are dropped and
// TotalCount is recomputed, preserving the invariant that TotalCount equals
// the sum of group sizes.
func applyFilter(data Data, keep func(node.FileNode) bool) Data {
	if data.Kind == KindFlat {
		return NewFlat(filterNodes(data.Flat, keep))
	}

	groups := make([]Group, 0, len(data.Grouped.Groups))
	for _, g := range data.Grouped.Groups {
		filtered := filterNodes(g.Nodes, keep)
		if len(filtered) == 0 {
			continue
		}
		groups = append(groups, Group{Label: g.Label, Nodes: filtered, Order: g.Order})
	}
	for i := range groups {
		groups[i].Order = i
	}

	total := 0
	for _, g := range groups {
		total += len(g.Nodes)
	}
	return Data{Kind: KindGrouped, Grouped: GroupedNodes{Groups: groups, TotalCount: total}}
}

// FilterHidden removes nodes whose Meta.Hidden flag is true, unless
// ShowHidden is set.
type FilterHidden struct {
	ShowHidden bool
}

func (f FilterHidden) Process(in Data) Data {
	if f.ShowHidden {
		return in
	}
	return applyFilter(in, func(n node.FileNode) bool {
		return !n.Meta.Hidden
	})
}

func (f FilterHidden) Name() string { return "filter_hidden" }

// FilterByExtension keeps (or, if Excluding, rejects) nodes whose extension
// appears in Extensions. Extension comparison is case-sensitive, matching
// the value as recorded on the node. A node with no extension is rejected
// in include mode and kept in exclude mode.
type FilterByExtension struct {
	Extensions []string
	Excluding  bool
}

func (f FilterByExtension) Process(in Data) Data {
	set := make(map[string]struct{}, len(f.Extensions))
	for _, ext := range f.Extensions {
		set[ext] = struct{}{}
	}

	return applyFilter(in, func(n node.FileNode) bool {
		_, has := set[n.Extension()]
		if f.Excluding {
			return !has
		}
		return has
	})
}

func (f FilterByExtension) Name() string { return "filter_by_extension" }
