package document

import (
	"errors"
	"sort"

	"go.uber.org/zap"

	"folio/common"
	"folio/config"
)

// Snapshot is the full structural state of a document in plain data form,
// used by the persistence layer. It carries no behavior and no internal
// bookkeeping (listeners, dirty flag).
type Snapshot struct {
	Title  string
	Author string

	ActiveFolioID   string
	DefaultHeaderID string
	DefaultFooterID string

	Folios   []Folio
	Sections []Section
	Contents []Content

	HeaderAssignments map[string]Assignment
	FooterAssignments map[string]Assignment
}

// Snapshot captures the current state. Folios and sections come out sorted by
// index; assignment maps contain only non-inherit entries.
func (d *Document) Snapshot() Snapshot {
	s := Snapshot{
		Title:             d.Title,
		Author:            d.Author,
		ActiveFolioID:     d.activeFolioID,
		DefaultHeaderID:   d.defaultID[common.SlotHeader],
		DefaultFooterID:   d.defaultID[common.SlotFooter],
		Folios:            d.FoliosInOrder(),
		Sections:          d.SectionsInOrder(),
		HeaderAssignments: make(map[string]Assignment, len(d.assignments[common.SlotHeader])),
		FooterAssignments: make(map[string]Assignment, len(d.assignments[common.SlotFooter])),
	}
	for _, c := range d.contents {
		s.Contents = append(s.Contents, *c)
	}
	for id, a := range d.assignments[common.SlotHeader] {
		s.HeaderAssignments[id] = a
	}
	for id, a := range d.assignments[common.SlotFooter] {
		s.FooterAssignments[id] = a
	}
	return s
}

// FromSnapshot rebuilds a document from persisted state. Indices are
// renumbered to a contiguous range preserving stored order, assignments for
// folios that no longer exist are dropped, and an unknown active folio falls
// back to the first page. A snapshot without folios is refused - a document
// never has zero pages.
func FromSnapshot(s Snapshot, cfg *config.Config, log *zap.Logger) (*Document, error) {
	if len(s.Folios) == 0 {
		return nil, errors.New("snapshot contains no folios")
	}
	if log == nil {
		log = zap.NewNop()
	}

	d := &Document{
		Title:    s.Title,
		Author:   s.Author,
		folios:   make(map[string]*Folio, len(s.Folios)),
		sections: make(map[string]*Section, len(s.Sections)),
		contents: make(map[string]*Content, len(s.Contents)),
		assignments: map[common.Slot]map[string]Assignment{
			common.SlotHeader: make(map[string]Assignment),
			common.SlotFooter: make(map[string]Assignment),
		},
		defaultID: map[common.Slot]string{
			common.SlotHeader: s.DefaultHeaderID,
			common.SlotFooter: s.DefaultFooterID,
		},
		cfg:       cfg,
		log:       log,
		listeners: make(map[int]Listener),
	}

	folios := make([]Folio, len(s.Folios))
	copy(folios, s.Folios)
	sort.SliceStable(folios, func(i, j int) bool { return folios[i].Index < folios[j].Index })
	for i := range folios {
		f := folios[i]
		if _, ok := d.folios[f.ID]; ok {
			log.Warn("Dropping duplicate folio from snapshot", zap.String("id", f.ID))
			continue
		}
		d.folios[f.ID] = &f
		d.order = append(d.order, &f)
	}
	d.renumber()

	sections := make([]Section, len(s.Sections))
	copy(sections, s.Sections)
	sort.SliceStable(sections, func(i, j int) bool { return sections[i].Index < sections[j].Index })
	for i := range sections {
		sec := sections[i]
		if _, ok := d.sections[sec.ID]; ok {
			log.Warn("Dropping duplicate section from snapshot", zap.String("id", sec.ID))
			continue
		}
		d.sections[sec.ID] = &sec
		d.secOrder = append(d.secOrder, &sec)
	}
	d.renumberSections()

	// section references to sections that did not survive are cleared
	for _, f := range d.order {
		if len(f.SectionID) != 0 {
			if _, ok := d.sections[f.SectionID]; !ok {
				log.Warn("Clearing stale section reference", zap.String("folio_id", f.ID), zap.String("section_id", f.SectionID))
				f.SectionID = ""
			}
		}
	}

	for i := range s.Contents {
		c := s.Contents[i]
		d.contents[c.ID] = &c
	}

	for id, a := range s.HeaderAssignments {
		if _, ok := d.folios[id]; ok {
			d.assignments[common.SlotHeader][id] = a
		}
	}
	for id, a := range s.FooterAssignments {
		if _, ok := d.folios[id]; ok {
			d.assignments[common.SlotFooter][id] = a
		}
	}

	d.activeFolioID = s.ActiveFolioID
	if _, ok := d.folios[d.activeFolioID]; !ok {
		d.activeFolioID = d.order[0].ID
	}

	return d, nil
}
