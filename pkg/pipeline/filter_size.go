package pipeline

import "github.com/marmos91/filecore/pkg/node"

// FilterBySize keeps nodes whose SizeBytes falls within [Min, Max]. A nil
// bound is unconstrained on that side.
type FilterBySize struct {
	Min *uint64
	Max *uint64
}

func (f FilterBySize) Process(in Data) Data {
	if f.Min == nil && f.Max == nil {
		return in
	}
	return applyFilter(in, func(n node.FileNode) bool {
		if f.Min != nil && n.SizeBytes < *f.Min {
			return false
		}
		if f.Max != nil && n.SizeBytes > *f.Max {
			return false
		}
		return true
	})
}

func (f FilterBySize) Name() string { return "filter_by_size" }
