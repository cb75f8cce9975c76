package document

import (
	"slices"
	"time"

	"go.uber.org/zap"

	"folio/common"
)

// Section is a named, collapsible grouping of folios. Sections are ordered in
// their own index space, independent of folio indices; folios point at
// sections, never the other way around.
type Section struct {
	ID        string
	Name      string
	Index     int
	Collapsed bool
	Numbering common.NumberingStyle
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateSection inserts a section after afterID (appends when empty or
// unknown), with the same shift semantics as folio insertion.
func (d *Document) CreateSection(name, afterID string) string {
	now := time.Now()
	s := &Section{
		ID:        newID(),
		Name:      name,
		Numbering: d.defaultNumbering(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	at := len(d.secOrder)
	if len(afterID) != 0 {
		if prev, ok := d.sections[afterID]; ok {
			at = prev.Index + 1
		} else {
			d.log.Warn("Unknown insertion anchor, appending section at the end", zap.String("after_id", afterID))
		}
	}

	d.sections[s.ID] = s
	d.secOrder = slices.Insert(d.secOrder, at, s)
	d.renumberSections()

	d.notify(EventSectionCreated, s.ID)
	return s.ID
}

// DeleteSection removes the section and clears the reference on every folio
// that pointed at it. Folios themselves are never deleted here.
func (d *Document) DeleteSection(id string) {
	s, ok := d.sections[id]
	if !ok {
		d.log.Warn("Ignoring delete of unknown section", zap.String("id", id))
		return
	}

	delete(d.sections, id)
	d.secOrder = slices.Delete(d.secOrder, s.Index, s.Index+1)
	d.renumberSections()

	cleared := 0
	for _, f := range d.order {
		if f.SectionID == id {
			f.SectionID = ""
			f.UpdatedAt = time.Now()
			cleared++
		}
	}
	if cleared > 0 {
		d.log.Debug("Cleared section references", zap.String("section_id", id), zap.Int("folios", cleared))
	}

	d.notify(EventSectionDeleted, id)
}

func (d *Document) RenameSection(id, name string) {
	s, ok := d.sections[id]
	if !ok {
		d.log.Warn("Ignoring rename of unknown section", zap.String("id", id))
		return
	}
	s.Name = name
	s.UpdatedAt = time.Now()
	d.notify(EventSectionUpdated, id)
}

func (d *Document) SetSectionNumbering(id string, style common.NumberingStyle) {
	s, ok := d.sections[id]
	if !ok {
		d.log.Warn("Ignoring numbering change for unknown section", zap.String("id", id))
		return
	}
	s.Numbering = style
	s.UpdatedAt = time.Now()
	d.notify(EventSectionUpdated, id)
}

func (d *Document) ToggleCollapse(id string) {
	s, ok := d.sections[id]
	if !ok {
		d.log.Warn("Ignoring collapse toggle for unknown section", zap.String("id", id))
		return
	}
	s.Collapsed = !s.Collapsed
	s.UpdatedAt = time.Now()
	d.notify(EventSectionUpdated, id)
}

// Section returns a copy of the section with the given id.
func (d *Document) Section(id string) (Section, bool) {
	if s, ok := d.sections[id]; ok {
		return *s, true
	}
	return Section{}, false
}

// SectionsInOrder returns copies of all sections sorted by index.
func (d *Document) SectionsInOrder() []Section {
	out := make([]Section, 0, len(d.secOrder))
	for _, s := range d.secOrder {
		out = append(out, *s)
	}
	return out
}

func (d *Document) renumberSections() {
	for i, s := range d.secOrder {
		s.Index = i
	}
}
