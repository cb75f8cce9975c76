package document

import (
	"time"

	"go.uber.org/zap"

	"folio/common"
)

// PropagateHeaderToAllFolios drops every folio's header assignment, forcing
// universal inheritance of the document default. Returns the number of folios
// that actually changed so the caller can ask for confirmation up front and
// summarize afterwards. Re-running is a no-op.
func (d *Document) PropagateHeaderToAllFolios() int {
	return d.propagate(common.SlotHeader)
}

// PropagateFooterToAllFolios is the footer equivalent.
func (d *Document) PropagateFooterToAllFolios() int {
	return d.propagate(common.SlotFooter)
}

// PropagateAllToFolios clears both slots in one combined step.
func (d *Document) PropagateAllToFolios() int {
	return d.propagate(common.SlotHeader) + d.propagate(common.SlotFooter)
}

func (d *Document) propagate(slot common.Slot) int {
	n := len(d.assignments[slot])
	if n == 0 {
		return 0
	}
	d.assignments[slot] = make(map[string]Assignment)
	d.log.Info("Propagated document default to all folios", zap.Stringer("slot", slot), zap.Int("affected", n))
	d.notify(EventPropagated, "")
	return n
}

// ResetHeaderTemplateToBuiltin overwrites the body of the current default
// header with the canonical built-in one, keeping its id. Inheriting folios
// look the default up live, so they all pick up the new body with no
// per-folio writes. Returns the number of folios currently inheriting.
func (d *Document) ResetHeaderTemplateToBuiltin() int {
	return d.resetTemplate(common.SlotHeader)
}

// ResetFooterTemplateToBuiltin is the footer equivalent.
func (d *Document) ResetFooterTemplateToBuiltin() int {
	return d.resetTemplate(common.SlotFooter)
}

// ResetAllToTemplateDefaults resets both default templates in one step.
func (d *Document) ResetAllToTemplateDefaults() int {
	return d.resetTemplate(common.SlotHeader) + d.resetTemplate(common.SlotFooter)
}

func (d *Document) resetTemplate(slot common.Slot) int {
	id := d.defaultID[slot]
	if len(id) == 0 {
		d.log.Warn("No default content set, nothing to reset", zap.Stringer("slot", slot))
		return 0
	}
	c, ok := d.contents[id]
	if !ok {
		d.log.Warn("Default content pointer is stale, nothing to reset", zap.Stringer("slot", slot), zap.String("id", id))
		return 0
	}

	body := d.BuiltinBody(slot)
	c.Segments = body.Segments
	c.Height = body.Height
	c.ShowOnFirstPage = body.ShowOnFirstPage
	c.DifferentOddEven = body.DifferentOddEven
	c.EvenSegments = body.EvenSegments
	c.ShowBorder = body.ShowBorder
	c.UpdatedAt = time.Now()

	d.notify(EventContentUpdated, id)
	return len(d.order) - len(d.assignments[slot])
}

// BuiltinBody is the canonical built-in chrome: a header shows the document
// title centered, a footer shows the page number centered. Only body fields
// are meaningful on the returned value.
func (d *Document) BuiltinBody(slot common.Slot) Content {
	c := Content{
		Kind:            slot,
		Height:          d.chromeHeight(),
		ShowOnFirstPage: true,
	}
	if slot == common.SlotHeader {
		c.Segments.Center = FieldSegment(common.FieldKindDocumentTitle)
	} else {
		c.Segments.Center = FieldSegment(common.FieldKindPageNumber)
	}
	return c
}
