package document

import (
	"time"

	"go.uber.org/zap"

	"folio/common"
)

// Segment is one third of a header/footer line: either stored text or a field
// computed at render time.
type Segment struct {
	Kind  common.SegmentKind
	Text  string           // literal segments only
	Field common.FieldKind // field segments only
}

func LiteralSegment(text string) *Segment {
	return &Segment{Kind: common.SegmentKindLiteral, Text: text}
}

func FieldSegment(field common.FieldKind) *Segment {
	return &Segment{Kind: common.SegmentKindField, Field: field}
}

// SegmentSet holds the three positions of a chrome line. Nil positions render
// as empty.
type SegmentSet struct {
	Left   *Segment
	Center *Segment
	Right  *Segment
}

func (s SegmentSet) At(pos common.SegmentPos) *Segment {
	switch pos {
	case common.SegmentPosLeft:
		return s.Left
	case common.SegmentPosCenter:
		return s.Center
	default:
		return s.Right
	}
}

func (s *SegmentSet) Put(pos common.SegmentPos, seg *Segment) {
	switch pos {
	case common.SegmentPosLeft:
		s.Left = seg
	case common.SegmentPosCenter:
		s.Center = seg
	default:
		s.Right = seg
	}
}

// Content is a reusable header or footer template from the shared library.
type Content struct {
	ID               string
	Kind             common.Slot
	Segments         SegmentSet
	Height           float64
	ShowOnFirstPage  bool
	DifferentOddEven bool
	EvenSegments     *SegmentSet // used only when DifferentOddEven is set
	ShowBorder       bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ContentOptions are merged over built-in defaults on creation and
// shallow-merged over existing values on update. Nil fields are left alone.
type ContentOptions struct {
	Segments         *SegmentSet
	Height           *float64
	ShowOnFirstPage  *bool
	DifferentOddEven *bool
	EvenSegments     *SegmentSet
	ShowBorder       *bool
}

// CreateHeader adds a header template to the library: empty segments, standard
// height, shown on the first page, same on odd and even pages - unless options
// say otherwise.
func (d *Document) CreateHeader(opts ContentOptions) string {
	return d.createContent(common.SlotHeader, opts)
}

// CreateFooter is CreateHeader for the footer slot.
func (d *Document) CreateFooter(opts ContentOptions) string {
	return d.createContent(common.SlotFooter, opts)
}

func (d *Document) createContent(slot common.Slot, opts ContentOptions) string {
	now := time.Now()
	c := &Content{
		ID:              newID(),
		Kind:            slot,
		Height:          d.chromeHeight(),
		ShowOnFirstPage: true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	mergeContent(c, opts)

	d.contents[c.ID] = c
	d.notify(EventContentCreated, c.ID)
	return c.ID
}

func mergeContent(c *Content, opts ContentOptions) {
	if opts.Segments != nil {
		c.Segments = *opts.Segments
	}
	if opts.Height != nil {
		c.Height = *opts.Height
	}
	if opts.ShowOnFirstPage != nil {
		c.ShowOnFirstPage = *opts.ShowOnFirstPage
	}
	if opts.DifferentOddEven != nil {
		c.DifferentOddEven = *opts.DifferentOddEven
	}
	if opts.EvenSegments != nil {
		set := *opts.EvenSegments
		c.EvenSegments = &set
	}
	if opts.ShowBorder != nil {
		c.ShowBorder = *opts.ShowBorder
	}
}

// UpdateHeader shallow-merges the supplied fields into an existing header
// template and bumps its modification time. Unknown id is a warned no-op.
func (d *Document) UpdateHeader(id string, opts ContentOptions) {
	d.updateContent(common.SlotHeader, id, opts)
}

func (d *Document) UpdateFooter(id string, opts ContentOptions) {
	d.updateContent(common.SlotFooter, id, opts)
}

func (d *Document) updateContent(slot common.Slot, id string, opts ContentOptions) {
	c, ok := d.contents[id]
	if !ok || c.Kind != slot {
		d.log.Warn("Ignoring update of unknown content", zap.Stringer("slot", slot), zap.String("id", id))
		return
	}
	mergeContent(c, opts)
	c.UpdatedAt = time.Now()
	d.notify(EventContentUpdated, id)
}

// UpdateHeaderSegment replaces exactly one of the three positions; nil clears
// the position.
func (d *Document) UpdateHeaderSegment(id string, pos common.SegmentPos, seg *Segment) {
	d.updateSegment(common.SlotHeader, id, pos, seg)
}

func (d *Document) UpdateFooterSegment(id string, pos common.SegmentPos, seg *Segment) {
	d.updateSegment(common.SlotFooter, id, pos, seg)
}

func (d *Document) updateSegment(slot common.Slot, id string, pos common.SegmentPos, seg *Segment) {
	c, ok := d.contents[id]
	if !ok || c.Kind != slot {
		d.log.Warn("Ignoring segment update of unknown content", zap.Stringer("slot", slot), zap.String("id", id))
		return
	}
	if seg != nil {
		copySeg := *seg
		seg = &copySeg
	}
	c.Segments.Put(pos, seg)
	c.UpdatedAt = time.Now()
	d.notify(EventContentUpdated, id)
}

// DeleteHeader removes a header template from the library. Every folio whose
// header assignment pointed at it reverts to inheriting the document default
// (the entry is dropped, not turned into "explicitly blank"), and if the
// template was the document default the default pointer is cleared.
func (d *Document) DeleteHeader(id string) {
	d.deleteContent(common.SlotHeader, id)
}

func (d *Document) DeleteFooter(id string) {
	d.deleteContent(common.SlotFooter, id)
}

func (d *Document) deleteContent(slot common.Slot, id string) {
	c, ok := d.contents[id]
	if !ok || c.Kind != slot {
		d.log.Warn("Ignoring delete of unknown content", zap.Stringer("slot", slot), zap.String("id", id))
		return
	}

	delete(d.contents, id)

	reverted := 0
	for folioID, a := range d.assignments[slot] {
		if a.State == common.AssignmentStateContent && a.ContentID == id {
			delete(d.assignments[slot], folioID)
			reverted++
		}
	}
	if d.defaultID[slot] == id {
		d.defaultID[slot] = ""
	}

	d.log.Debug("Deleted content", zap.Stringer("slot", slot), zap.String("id", id), zap.Int("reverted_folios", reverted))
	d.notify(EventContentDeleted, id)
}

// SetDefaultHeader replaces the document-level default header; empty id clears
// it. The id is deliberately not validated so defaults can be pre-wired before
// content creation completes - a stale pointer degrades to empty chrome at
// resolution time.
func (d *Document) SetDefaultHeader(id string) {
	d.setDefault(common.SlotHeader, id)
}

func (d *Document) SetDefaultFooter(id string) {
	d.setDefault(common.SlotFooter, id)
}

func (d *Document) setDefault(slot common.Slot, id string) {
	d.defaultID[slot] = id
	d.notify(EventDefaultChanged, id)
}

func (d *Document) DefaultHeaderID() string {
	return d.defaultID[common.SlotHeader]
}

func (d *Document) DefaultFooterID() string {
	return d.defaultID[common.SlotFooter]
}

// ContentByID returns a copy of the library entry with the given id.
func (d *Document) ContentByID(id string) (Content, bool) {
	if c, ok := d.contents[id]; ok {
		return *c, true
	}
	return Content{}, false
}

// ContentsByKind returns copies of all library entries for the slot, in no
// particular order.
func (d *Document) ContentsByKind(slot common.Slot) []Content {
	var out []Content
	for _, c := range d.contents {
		if c.Kind == slot {
			out = append(out, *c)
		}
	}
	return out
}
