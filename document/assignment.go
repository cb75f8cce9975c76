package document

import (
	"go.uber.org/zap"

	"folio/common"
)

// Assignment is the tagged union describing what one folio shows in one slot:
// inherit the document default, explicitly nothing, or specific library
// content. The three states are directly pattern-matchable - consumers never
// have to infer intent from a nil content pointer.
type Assignment struct {
	State     common.AssignmentState
	ContentID string // set only when State is content
}

// Assignment reports the current state for a folio/slot pair. Folios without
// a stored entry inherit the document default.
func (d *Document) Assignment(folioID string, slot common.Slot) Assignment {
	if a, ok := d.assignments[slot][folioID]; ok {
		return a
	}
	return Assignment{State: common.AssignmentStateInherit}
}

// SetOverride pins the folio's slot to specific library content, or to
// "explicitly nothing" when contentID is empty. A contentID that does not
// resolve is stored anyway and degrades at resolution time - deletion cascades
// normally keep the table clean, so a dangling id only appears when one was
// injected from outside.
func (d *Document) SetOverride(folioID string, slot common.Slot, contentID string) {
	if _, ok := d.folios[folioID]; !ok {
		d.log.Warn("Ignoring override for unknown folio", zap.Stringer("slot", slot), zap.String("id", folioID))
		return
	}

	a := Assignment{State: common.AssignmentStateNone}
	if len(contentID) != 0 {
		a = Assignment{State: common.AssignmentStateContent, ContentID: contentID}
		if _, ok := d.contents[contentID]; !ok {
			d.log.Warn("Override references unknown content", zap.Stringer("slot", slot), zap.String("folio_id", folioID), zap.String("content_id", contentID))
		}
	}

	d.assignments[slot][folioID] = a
	d.notify(EventAssignmentChanged, folioID)
}

// ClearOverride makes the folio show nothing in the slot. Same mechanics as
// SetOverride with an empty id, but "I want nothing here" and "go back to the
// document default" are different user intents, so both names exist.
func (d *Document) ClearOverride(folioID string, slot common.Slot) {
	d.SetOverride(folioID, slot, "")
}

// ResetToDefault drops the folio's entry for the slot so it inherits the
// document default again.
func (d *Document) ResetToDefault(folioID string, slot common.Slot) {
	if _, ok := d.folios[folioID]; !ok {
		d.log.Warn("Ignoring reset for unknown folio", zap.Stringer("slot", slot), zap.String("id", folioID))
		return
	}
	delete(d.assignments[slot], folioID)
	d.notify(EventAssignmentChanged, folioID)
}
