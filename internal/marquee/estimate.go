package marquee

// TextMeasurer returns the rendered width of a text entry at the given
// item height.
type TextMeasurer func(text string, height float64) float64

// EstimateProber measures a sequence from configuration alone. It only
// succeeds when every image carries explicit dimensions; otherwise the
// real width is unknown until the images decode.
type EstimateProber struct {
	Config    Config
	Container float64
	Text      TextMeasurer
}

func (p EstimateProber) Probe() (Dimensions, bool) {
	var total float64
	for _, it := range p.Config.Items {
		switch v := it.(type) {
		case NodeItem:
			if p.Text == nil {
				return Dimensions{}, false
			}
			total += p.Text(v.Content, p.Config.ItemHeight)
		case ImageItem:
			w, ok := v.ScaledWidth(p.Config.ItemHeight)
			if !ok {
				return Dimensions{}, false
			}
			total += w
		}
		total += p.Config.Gap
	}
	d := Dimensions{Sequence: total, Container: p.Container}
	return d, d.Valid()
}

// ApproxText approximates proportional text as ratio times the font size
// per rune, with the font size taken as a fraction of the item height.
func ApproxText(ratio float64) TextMeasurer {
	return func(text string, height float64) float64 {
		return float64(len([]rune(text))) * height * 0.6 * ratio
	}
}
