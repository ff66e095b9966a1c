package pipeline

const (
	kb = 1 << 10
	mb = 1 << 20
	gb = 1 << 30
)

// sizeClass derives the size-group label for a byte count.
func sizeClass(size uint64) string {
	switch {
	case size == 0:
		return "empty"
	case size < 10*kb:
		return "tiny"
	case size < mb:
		return "small"
	case size < 100*mb:
		return "medium"
	case size < gb:
		return "large"
	case size < 10*gb:
		return "huge"
	default:
		return "massive"
	}
}
