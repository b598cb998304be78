package marquee

import "math"

const (
	// MinCopies keeps a second copy available while the first scrolls out.
	MinCopies = 2
	// CopyHeadroom is the number of extra copies beyond what tiles the
	// container, absorbing the scroll offset.
	CopyHeadroom = 2
)

// CopyCount returns how many sequences must be laid out end to end so the
// track never shows empty space for a container of the given width.
func CopyCount(container, sequence float64) int {
	if sequence <= 0 || math.IsNaN(sequence) || math.IsInf(sequence, 0) {
		return MinCopies
	}
	if container < 0 || math.IsNaN(container) {
		container = 0
	}
	needed := int(math.Ceil(container/sequence)) + CopyHeadroom
	return max(MinCopies, needed)
}
