package document

import (
	"sort"

	"github.com/maruel/natural"

	"folio/common"
	"folio/utils/debug"
)

// String returns a readable tree of the whole document: pages with their
// resolution states, sections and the template library. It exists solely for
// manual inspection during debugging.
func (d *Document) String() string {
	if d == nil {
		return "<nil Document>"
	}

	tw := debug.NewTreeWriter()

	tw.Line(0, "Document %q by %q", d.Title, d.Author)
	tw.Line(0, "Folios: %d (active %s)", len(d.order), d.activeFolioID)
	for _, f := range d.order {
		tw.Line(1, "Folio[%d] id=%s orientation=%s locked=%v", f.Index, f.ID, f.Orientation, f.Locked)
		if len(f.SectionID) != 0 {
			tw.Line(2, "Section: %s", f.SectionID)
		}
		d.describeSlot(tw, f.ID, common.SlotHeader)
		d.describeSlot(tw, f.ID, common.SlotFooter)
	}

	if len(d.secOrder) > 0 {
		tw.Line(0, "Sections: %d", len(d.secOrder))
		for _, s := range d.secOrder {
			tw.Line(1, "Section[%d] id=%s numbering=%s collapsed=%v", s.Index, s.ID, s.Numbering, s.Collapsed)
			tw.TextBlock(2, "Name", s.Name)
		}
	}

	if len(d.contents) > 0 {
		tw.Line(0, "Library: %d", len(d.contents))
		keys := make([]string, 0, len(d.contents))
		for id := range d.contents {
			keys = append(keys, id)
		}
		sort.Sort(natural.StringSlice(keys))
		for _, id := range keys {
			c := d.contents[id]
			mark := ""
			if d.defaultID[c.Kind] == id {
				mark = " (default)"
			}
			tw.Line(1, "%s id=%s height=%g%s", c.Kind, id, c.Height, mark)
			describeSegments(tw, 2, c.Segments)
			if c.DifferentOddEven && c.EvenSegments != nil {
				tw.Line(2, "even pages:")
				describeSegments(tw, 3, *c.EvenSegments)
			}
		}
	}

	return tw.String()
}

func (d *Document) describeSlot(tw *debug.TreeWriter, folioID string, slot common.Slot) {
	a := d.Assignment(folioID, slot)
	switch a.State {
	case common.AssignmentStateInherit:
		tw.Line(2, "%s: inherit (default %s)", slot, orNone(d.defaultID[slot]))
	case common.AssignmentStateNone:
		tw.Line(2, "%s: none", slot)
	default:
		tw.Line(2, "%s: override %s", slot, a.ContentID)
	}
}

func describeSegments(tw *debug.TreeWriter, depth int, set SegmentSet) {
	for _, pos := range []common.SegmentPos{common.SegmentPosLeft, common.SegmentPosCenter, common.SegmentPosRight} {
		seg := set.At(pos)
		if seg == nil {
			continue
		}
		if seg.Kind == common.SegmentKindField {
			tw.Line(depth, "%s: field %s", pos, seg.Field)
		} else {
			tw.TextBlock(depth, pos.String(), seg.Text)
		}
	}
}

func orNone(id string) string {
	if len(id) == 0 {
		return "<none>"
	}
	return id
}
