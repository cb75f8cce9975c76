package render

import (
	"fmt"

	"folio/document"
)

// Chrome is one fully expanded header or footer band for one page.
type Chrome struct {
	Left, Center, Right string

	Height     float64
	ShowBorder bool
	Visible    bool
}

// Stamp expands a resolution result for the page described by ctx. Pages
// resolving to no content (explicit blank, or inheriting an unset default)
// come out with Visible false, as does page one of content hidden on the
// first page. Even pages use the alternate segment set when the content
// carries one.
func Stamp(res document.Resolved, ctx Context) (Chrome, error) {
	if res.Content == nil {
		return Chrome{}, nil
	}
	c := res.Content
	if ctx.PageNumber == 1 && !c.ShowOnFirstPage {
		return Chrome{Height: c.Height}, nil
	}

	segs := &c.Segments
	if c.DifferentOddEven && ctx.PageNumber%2 == 0 && c.EvenSegments != nil {
		segs = c.EvenSegments
	}

	out := Chrome{Height: c.Height, ShowBorder: c.ShowBorder, Visible: true}
	var err error
	if out.Left, err = ExpandSegment(segs.Left, ctx); err != nil {
		return Chrome{}, fmt.Errorf("left segment: %w", err)
	}
	if out.Center, err = ExpandSegment(segs.Center, ctx); err != nil {
		return Chrome{}, fmt.Errorf("center segment: %w", err)
	}
	if out.Right, err = ExpandSegment(segs.Right, ctx); err != nil {
		return Chrome{}, fmt.Errorf("right segment: %w", err)
	}
	return out, nil
}
