package registry

import "path/filepath"

// parentOf returns the parent directory of a canonical path, or "" if path
// is already a root (so that Up never registers "/.." as a distinct node
// from "/").
func parentOf(path string) string {
	clean := filepath.Clean(path)
	parent := filepath.Dir(clean)
	if parent == clean {
		return ""
	}
	return parent
}
