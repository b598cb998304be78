package web

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/Zachkp/portfolio/internal/marquee"
)

// DefaultViewport is the viewport width assumed when estimating copy
// counts before the browser has measured anything.
const DefaultViewport = 1440

type marqueeView struct {
	Label        string
	Copies       []copyView
	FadeEdges    bool
	FadeColor    string
	PauseOnHover bool
	ScaleOnHover bool
	Still        bool
	Direction    string
	Style        template.CSS
}

type copyView struct {
	Hidden bool
	Items  []itemView
}

type itemView struct {
	Kind   string `json:"kind"`
	Text   string `json:"text,omitempty"`
	Href   string `json:"href,omitempty"`
	Title  string `json:"title,omitempty"`
	Label  string `json:"label,omitempty"`
	Src    string `json:"src,omitempty"`
	Alt    string `json:"alt,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	SrcSet string `json:"srcset,omitempty"`
	Sizes  string `json:"sizes,omitempty"`
}

// estimate is the server-side guess at the marquee layout. Known is false
// when some item has no intrinsic size, in which case CopyCount is the
// minimum and the client has to measure.
type estimate struct {
	Viewport      float64 `json:"viewport"`
	SequenceWidth float64 `json:"sequenceWidth"`
	CopyCount     int     `json:"copyCount"`
	DurationSec   float64 `json:"durationSeconds,omitempty"`
	Known         bool    `json:"known"`
}

func estimateLayout(cfg marquee.Config, viewport float64) estimate {
	p := marquee.EstimateProber{
		Config:    cfg,
		Container: cfg.ContainerWidth.Resolve(viewport),
		Text:      marquee.ApproxText(1),
	}
	est := estimate{Viewport: viewport, CopyCount: marquee.MinCopies}
	d, ok := p.Probe()
	if !ok {
		return est
	}
	est.Known = true
	est.SequenceWidth = d.Sequence
	est.CopyCount = marquee.CopyCount(d.Container, d.Sequence)
	if cfg.Speed > 0 {
		est.DurationSec = d.Sequence / cfg.Speed
	}
	return est
}

func buildItemView(it marquee.Item) itemView {
	switch v := it.(type) {
	case marquee.NodeItem:
		return itemView{
			Kind:  marquee.KindNode.String(),
			Text:  v.Content,
			Href:  v.Link,
			Title: v.Title,
			Label: v.AccessibleName(),
		}
	case marquee.ImageItem:
		return itemView{
			Kind:   marquee.KindImage.String(),
			Href:   v.Link,
			Title:  v.Title,
			Src:    v.Src,
			Alt:    v.Alt,
			Width:  v.Width,
			Height: v.Height,
			SrcSet: v.SrcSet,
			Sizes:  v.Sizes,
		}
	default:
		panic(fmt.Sprintf("web: unhandled marquee item %T", it))
	}
}

func buildMarqueeView(cfg marquee.Config, est estimate) marqueeView {
	items := make([]itemView, 0, len(cfg.Items))
	for _, it := range cfg.Items {
		items = append(items, buildItemView(it))
	}

	copies := make([]copyView, est.CopyCount)
	if len(items) == 0 {
		copies = nil
	}
	for i := range copies {
		copies[i] = copyView{Hidden: i > 0, Items: items}
	}

	return marqueeView{
		Label:        cfg.AriaLabel,
		Copies:       copies,
		FadeEdges:    cfg.FadeEdges,
		FadeColor:    cfg.FadeColor,
		PauseOnHover: cfg.PauseOnHover,
		ScaleOnHover: cfg.ScaleOnHover,
		Still:        cfg.Speed == 0,
		Direction:    string(cfg.Direction),
		Style:        marqueeStyle(cfg, est),
	}
}

func marqueeStyle(cfg marquee.Config, est estimate) template.CSS {
	num := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	var b strings.Builder
	fmt.Fprintf(&b, "width: %s;", cfg.ContainerWidth)
	fmt.Fprintf(&b, " --marquee-gap: %spx;", num(cfg.Gap))
	fmt.Fprintf(&b, " --marquee-item-height: %spx;", num(cfg.ItemHeight))
	fmt.Fprintf(&b, " --marquee-speed: %s;", num(cfg.Speed))
	fmt.Fprintf(&b, " --marquee-copies: %d;", est.CopyCount)
	if est.DurationSec > 0 {
		fmt.Fprintf(&b, " --marquee-duration: %ss;", num(est.DurationSec))
	}
	if cfg.FadeEdges {
		fmt.Fprintf(&b, " --marquee-fade: %s;", cfg.FadeColor)
	}
	//nolint:gosec // built from validated numbers and a hexcolor
	return template.CSS(b.String())
}
