package document

import (
	"encoding/json"
	"errors"
	"slices"
	"time"

	"go.uber.org/zap"

	"folio/common"
)

// ErrLastFolio is returned when deletion of the sole remaining page is
// refused. It is a condition to surface to the user, not a failure.
var ErrLastFolio = errors.New("cannot delete the last remaining page")

// Margins in points.
type Margins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// Folio is one page of the document. Index is always the position within the
// document: for N folios indices form exactly 0..N-1.
type Folio struct {
	ID          string
	Index       int
	Orientation common.Orientation
	Margins     Margins
	SectionID   string // weak reference, empty when not in a section
	Locked      bool
	Content     json.RawMessage // opaque payload owned by the editing subsystem
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FolioOptions are merged over document defaults on creation. Nil fields keep
// the default.
type FolioOptions struct {
	Orientation *common.Orientation
	Margins     *Margins
	AfterID     string // insert after this folio, append when empty
	SectionID   string
}

// CreateFolio inserts a new page and makes it active. With AfterID set the
// page lands right after it and everything behind shifts by one; otherwise it
// is appended. Observers see only the final renumbered state.
func (d *Document) CreateFolio(opts FolioOptions) string {
	now := time.Now()
	f := &Folio{
		ID:          newID(),
		Orientation: d.defaultOrientation(),
		Margins:     d.defaultMargins(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if opts.Orientation != nil {
		f.Orientation = *opts.Orientation
	}
	if opts.Margins != nil {
		f.Margins = *opts.Margins
	}
	if len(opts.SectionID) != 0 {
		if _, ok := d.sections[opts.SectionID]; ok {
			f.SectionID = opts.SectionID
		} else {
			d.log.Warn("Creating folio with unknown section, leaving unassigned", zap.String("section_id", opts.SectionID))
		}
	}

	at := len(d.order)
	if len(opts.AfterID) != 0 {
		if prev, ok := d.folios[opts.AfterID]; ok {
			at = prev.Index + 1
		} else {
			d.log.Warn("Unknown insertion anchor, appending folio at the end", zap.String("after_id", opts.AfterID))
		}
	}

	d.folios[f.ID] = f
	d.order = slices.Insert(d.order, at, f)
	d.renumber()
	d.activeFolioID = f.ID

	d.notify(EventFolioCreated, f.ID)
	return f.ID
}

// DeleteFolio removes a page and closes the index gap. Removing an unknown id
// is a warned no-op; removing the last remaining page is refused with
// ErrLastFolio. The folio's chrome assignments are discarded with it.
func (d *Document) DeleteFolio(id string) error {
	f, ok := d.folios[id]
	if !ok {
		d.log.Warn("Ignoring delete of unknown folio", zap.String("id", id))
		return nil
	}
	if len(d.order) == 1 {
		d.log.Warn("Refusing to delete the last remaining folio", zap.String("id", id))
		return ErrLastFolio
	}

	delete(d.folios, id)
	d.order = slices.Delete(d.order, f.Index, f.Index+1)
	d.renumber()

	delete(d.assignments[common.SlotHeader], id)
	delete(d.assignments[common.SlotFooter], id)

	if d.activeFolioID == id {
		d.activeFolioID = d.order[0].ID
	}

	d.notify(EventFolioDeleted, id)
	return nil
}

// Reorder assigns indices by position in ids. Unknown ids are skipped with a
// warning, duplicates are ignored, and folios omitted from the list keep their
// previous relative order after the listed ones. Indices are contiguous no
// matter which subset was supplied.
func (d *Document) Reorder(ids []string) {
	seen := make(map[string]bool, len(ids))
	next := make([]*Folio, 0, len(d.order))

	for _, id := range ids {
		f, ok := d.folios[id]
		if !ok {
			d.log.Warn("Ignoring unknown folio in reorder request", zap.String("id", id))
			continue
		}
		if seen[id] {
			d.log.Warn("Ignoring duplicate folio in reorder request", zap.String("id", id))
			continue
		}
		seen[id] = true
		next = append(next, f)
	}
	for _, f := range d.order {
		if !seen[f.ID] {
			next = append(next, f)
		}
	}

	d.order = next
	d.renumber()
	d.notify(EventFoliosReordered, "")
}

// ToggleOrientation flips a page between portrait and landscape.
func (d *Document) ToggleOrientation(id string) {
	f, ok := d.folios[id]
	if !ok {
		d.log.Warn("Ignoring orientation toggle for unknown folio", zap.String("id", id))
		return
	}
	f.Orientation = f.Orientation.Flip()
	f.UpdatedAt = time.Now()
	d.notify(EventFolioUpdated, id)
}

func (d *Document) SetMargins(id string, m Margins) {
	f, ok := d.folios[id]
	if !ok {
		d.log.Warn("Ignoring margins update for unknown folio", zap.String("id", id))
		return
	}
	f.Margins = m
	f.UpdatedAt = time.Now()
	d.notify(EventFolioUpdated, id)
}

func (d *Document) SetLocked(id string, locked bool) {
	f, ok := d.folios[id]
	if !ok {
		d.log.Warn("Ignoring lock change for unknown folio", zap.String("id", id))
		return
	}
	f.Locked = locked
	f.UpdatedAt = time.Now()
	d.notify(EventFolioUpdated, id)
}

// SetFolioSection assigns the page to a section (weak reference) or clears the
// assignment when sectionID is empty.
func (d *Document) SetFolioSection(id, sectionID string) {
	f, ok := d.folios[id]
	if !ok {
		d.log.Warn("Ignoring section assignment for unknown folio", zap.String("id", id))
		return
	}
	if len(sectionID) != 0 {
		if _, ok := d.sections[sectionID]; !ok {
			d.log.Warn("Ignoring assignment to unknown section", zap.String("id", id), zap.String("section_id", sectionID))
			return
		}
	}
	f.SectionID = sectionID
	f.UpdatedAt = time.Now()
	d.notify(EventFolioUpdated, id)
}

// SetFolioContent replaces the opaque page payload. The editing subsystem is
// the only writer of this field.
func (d *Document) SetFolioContent(id string, content json.RawMessage) {
	f, ok := d.folios[id]
	if !ok {
		d.log.Warn("Ignoring content update for unknown folio", zap.String("id", id))
		return
	}
	f.Content = content
	f.UpdatedAt = time.Now()
	d.notify(EventFolioUpdated, id)
}

// SetActiveFolio moves the cursor; unknown ids are ignored with a warning.
func (d *Document) SetActiveFolio(id string) {
	if _, ok := d.folios[id]; !ok {
		d.log.Warn("Ignoring activation of unknown folio", zap.String("id", id))
		return
	}
	d.activeFolioID = id
}

// ActiveFolio returns the folio UI actions apply to. There is always one.
func (d *Document) ActiveFolio() Folio {
	if f, ok := d.folios[d.activeFolioID]; ok {
		return *f
	}
	// should never happen - a document always has at least one folio
	return *d.order[0]
}

// Folio returns a copy of the page with the given id.
func (d *Document) Folio(id string) (Folio, bool) {
	if f, ok := d.folios[id]; ok {
		return *f, true
	}
	return Folio{}, false
}

func (d *Document) FolioCount() int {
	return len(d.order)
}

// FoliosInOrder returns copies of all pages sorted by index.
func (d *Document) FoliosInOrder() []Folio {
	out := make([]Folio, 0, len(d.order))
	for _, f := range d.order {
		out = append(out, *f)
	}
	return out
}

// FoliosBySection returns copies of the pages referencing the given section,
// in document order.
func (d *Document) FoliosBySection(sectionID string) []Folio {
	var out []Folio
	for _, f := range d.order {
		if f.SectionID == sectionID {
			out = append(out, *f)
		}
	}
	return out
}

func (d *Document) renumber() {
	for i, f := range d.order {
		f.Index = i
	}
}
