package document

import (
	"go.uber.org/zap"

	"folio/common"
)

// Resolved is the effective chrome for one folio/slot pair.
//
// Content may be nil for two different reasons: the folio inherits an unset
// (or stale) default, or the folio explicitly shows nothing. Branch on
// IsDefault/IsOverride to tell them apart, never on Content alone.
//
// Resolving an unknown folio yields the zero value - both flags false - which
// no real folio ever produces.
type Resolved struct {
	Content    *Content
	IsDefault  bool
	IsOverride bool
	OverrideID string // kept even when dangling, for diagnostics
}

// HeaderForFolio computes the effective header for the folio. Pure read - the
// document is never mutated.
func (d *Document) HeaderForFolio(folioID string) Resolved {
	return d.resolve(folioID, common.SlotHeader)
}

// FooterForFolio computes the effective footer for the folio.
func (d *Document) FooterForFolio(folioID string) Resolved {
	return d.resolve(folioID, common.SlotFooter)
}

func (d *Document) resolve(folioID string, slot common.Slot) Resolved {
	if _, ok := d.folios[folioID]; !ok {
		d.log.Warn("Resolving chrome for unknown folio", zap.Stringer("slot", slot), zap.String("id", folioID))
		return Resolved{}
	}

	a := d.Assignment(folioID, slot)
	switch a.State {
	case common.AssignmentStateNone:
		return Resolved{IsOverride: true}

	case common.AssignmentStateContent:
		res := Resolved{IsOverride: true, OverrideID: a.ContentID}
		if c, ok := d.contents[a.ContentID]; ok {
			cc := *c
			res.Content = &cc
		} else {
			// recoverable: cascade was bypassed, render as empty but keep the
			// id so the caller can report it
			d.log.Warn("Override references deleted content, rendering empty", zap.Stringer("slot", slot), zap.String("folio_id", folioID), zap.String("content_id", a.ContentID))
		}
		return res

	default: // inherit
		res := Resolved{IsDefault: true}
		if id := d.defaultID[slot]; len(id) != 0 {
			if c, ok := d.contents[id]; ok {
				cc := *c
				res.Content = &cc
			}
			// stale default pointer degrades to empty chrome
		}
		return res
	}
}
