package marquee

// Kind discriminates the two shapes a marquee entry can take.
type Kind int

const (
	KindNode Kind = iota
	KindImage
)

func (k Kind) String() string {
	switch k {
	case KindNode:
		return "node"
	case KindImage:
		return "image"
	default:
		return "unknown"
	}
}

// Item is one entry of the marquee sequence. It is implemented by
// NodeItem and ImageItem only.
type Item interface {
	Kind() Kind
	// Href returns the link target, or "" for a plain container.
	Href() string
	isItem()
}

// NodeItem is an opaque renderable entry, typically a short label.
type NodeItem struct {
	Content string
	Link    string
	Title   string
	Label   string
	// Color is an optional "#rrggbb" accent used by terminal renderers.
	Color string
}

func (NodeItem) Kind() Kind { return KindNode }
func (n NodeItem) Href() string { return n.Link }
func (NodeItem) isItem() {}

// AccessibleName returns the label announced for the node.
func (n NodeItem) AccessibleName() string {
	if n.Label != "" {
		return n.Label
	}
	if n.Title != "" {
		return n.Title
	}
	return n.Content
}

// ImageItem describes a logo image. Width and Height are optional
// intrinsic dimensions in pixels; zero means unknown until decoded.
type ImageItem struct {
	Src    string
	Alt    string
	Link   string
	Title  string
	Width  int
	Height int
	SrcSet string
	Sizes  string
}

func (ImageItem) Kind() Kind { return KindImage }
func (i ImageItem) Href() string { return i.Link }
func (ImageItem) isItem() {}

// HasDimensions reports whether both intrinsic dimensions are known.
func (i ImageItem) HasDimensions() bool {
	return i.Width > 0 && i.Height > 0
}

// ScaledWidth returns the width the image occupies at the given render
// height, preserving aspect ratio. ok is false when the intrinsic size is
// unknown.
func (i ImageItem) ScaledWidth(height float64) (float64, bool) {
	if !i.HasDimensions() {
		return 0, false
	}
	return float64(i.Width) * height / float64(i.Height), true
}

// Images returns the indexes of the image entries in items.
func Images(items []Item) []int {
	var idx []int
	for i, it := range items {
		if it.Kind() == KindImage {
			idx = append(idx, i)
		}
	}
	return idx
}
