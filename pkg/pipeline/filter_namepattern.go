package pipeline

import (
	"path/filepath"

	"github.com/marmos91/filecore/pkg/node"
)

// FilterByNamePattern keeps nodes whose Name matches a shell glob pattern.
// A malformed pattern matches nothing rather than erroring, since the
// pipeline is pure: no stage can fail.
type FilterByNamePattern struct {
	Pattern string
}

func (f FilterByNamePattern) Process(in Data) Data {
	if f.Pattern == "" {
		return in
	}
	return applyFilter(in, func(n node.FileNode) bool {
		matched, err := filepath.Match(f.Pattern, n.Name)
		return err == nil && matched
	})
}

func (f FilterByNamePattern) Name() string { return "filter_by_name_pattern" }
