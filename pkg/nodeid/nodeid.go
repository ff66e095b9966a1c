// Package nodeid defines the content-addressed identifier used to refer to
// filesystem paths across process boundaries without transmitting the path
// string repeatedly.
package nodeid

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// NodeId is a 64-bit content hash of a canonical path. It is a pure
// function of the path's bytes: the same path yields the same NodeId in
// any process, on any run.
type NodeId uint64

// Zero is the reserved NodeId value meaning "no node". It is a legal hash
// output in principle, but it is also what the zero value of NodeId is, so
// call sites treat it as sentinel-absent rather than reject it outright.
const Zero NodeId = 0

// FromPath derives a NodeId from a filesystem path. The path is first
// canonicalized (cleaned and slash-normalized) so that equivalent path
// spellings hash identically.
func FromPath(path string) NodeId {
	return NodeId(xxhash.Sum64([]byte(Canonicalize(path))))
}

// Canonicalize returns the canonical byte representation a NodeId is
// derived from. It is exported so registries and tests can reproduce the
// exact bytes that were hashed.
func Canonicalize(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

// String renders the NodeId as a fixed-width hex string, the form used in
// logs and the debug HTTP surface.
func (id NodeId) String() string {
	return fmt.Sprintf("%016x", uint64(id))
}

// ParseString parses a hex string produced by String back into a NodeId.
func ParseString(s string) (NodeId, error) {
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return Zero, fmt.Errorf("nodeid: invalid hex string %q: %w", s, err)
	}
	return NodeId(v), nil
}

// MarshalJSON renders the NodeId as a JSON string (hex), matching the
// compact wire-format requirement for PipelineConfig-adjacent payloads.
func (id NodeId) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.String() + `"`), nil
}

// UnmarshalJSON parses a JSON string produced by MarshalJSON.
func (id *NodeId) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("nodeid: expected JSON string, got %q", data)
	}
	parsed, err := ParseString(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
