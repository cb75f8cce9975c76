// Package export serializes a fully resolved document to an XML snapshot.
// Every page carries its stamped header and footer bands, so the output shows
// exactly what the reader of a printed copy would see, with inheritance
// already applied.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/beevik/etree"
	"github.com/gosimple/slug"
	"github.com/maruel/natural"

	"folio/common"
	"folio/document"
	"folio/render"
)

// FileName derives the output file name from the document title. Untitled
// documents fall back to a fixed name.
func FileName(d *document.Document) string {
	name := slug.Make(d.Title)
	if len(name) == 0 {
		name = "untitled"
	}
	return name + ".xml"
}

// WriteFile exports to dir under the slugified document title, refusing to
// overwrite unless told to.
func WriteFile(d *document.Document, ctx render.Context, dir string, overwrite bool) (string, error) {
	path := filepath.Join(dir, FileName(d))
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("output file %s already exists", path)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create output %s: %w", path, err)
	}
	defer f.Close()

	if err := Write(d, ctx, f); err != nil {
		return "", err
	}
	return path, nil
}

// Write emits the XML snapshot to w. The render context's page fields are
// managed per page; everything else (title, author, clock, formats) is taken
// as passed in.
func Write(d *document.Document, ctx render.Context, w io.Writer) error {
	folios := d.FoliosInOrder()
	ctx.TotalPages = len(folios)
	if len(ctx.Title) == 0 {
		ctx.Title = d.Title
	}
	if len(ctx.Author) == 0 {
		ctx.Author = d.Author
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("document")
	root.CreateAttr("title", d.Title)
	root.CreateAttr("author", d.Author)
	root.CreateAttr("pages", strconv.Itoa(len(folios)))

	if err := writePages(d, ctx, root, folios); err != nil {
		return err
	}
	writeSections(d, root)
	writeLibrary(d, root)

	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

func writePages(d *document.Document, ctx render.Context, root *etree.Element, folios []document.Folio) error {
	pages := root.CreateElement("pages")
	defaultNumbering := ctx.Numbering
	for _, f := range folios {
		ctx.PageNumber = f.Index + 1
		// sectionless pages stamp in the document-level style
		ctx.Numbering = defaultNumbering
		if len(f.SectionID) != 0 {
			if sec, ok := d.Section(f.SectionID); ok {
				ctx.Numbering = sec.Numbering
			}
		}

		page := pages.CreateElement("page")
		page.CreateAttr("id", f.ID)
		page.CreateAttr("number", strconv.Itoa(f.Index+1))
		page.CreateAttr("orientation", f.Orientation.String())
		if len(f.SectionID) != 0 {
			page.CreateAttr("section", f.SectionID)
		}
		if f.Locked {
			page.CreateAttr("locked", "true")
		}

		margins := page.CreateElement("margins")
		margins.CreateAttr("top", formatPt(f.Margins.Top))
		margins.CreateAttr("right", formatPt(f.Margins.Right))
		margins.CreateAttr("bottom", formatPt(f.Margins.Bottom))
		margins.CreateAttr("left", formatPt(f.Margins.Left))

		if err := writeChrome(d.HeaderForFolio(f.ID), ctx, page, "header", f.ID); err != nil {
			return err
		}
		if err := writeChrome(d.FooterForFolio(f.ID), ctx, page, "footer", f.ID); err != nil {
			return err
		}
	}
	return nil
}

func writeChrome(res document.Resolved, ctx render.Context, page *etree.Element, name, folioID string) error {
	band, err := render.Stamp(res, ctx)
	if err != nil {
		return fmt.Errorf("stamp %s of page %s: %w", name, folioID, err)
	}

	el := page.CreateElement(name)
	switch {
	case res.IsDefault:
		el.CreateAttr("source", "default")
	case len(res.OverrideID) != 0:
		el.CreateAttr("source", "override")
		el.CreateAttr("content", res.OverrideID)
	default:
		el.CreateAttr("source", "none")
	}
	if !band.Visible {
		return nil
	}

	el.CreateAttr("height", formatPt(band.Height))
	if band.ShowBorder {
		el.CreateAttr("border", "true")
	}
	for _, seg := range []struct{ name, text string }{
		{"left", band.Left}, {"center", band.Center}, {"right", band.Right},
	} {
		if len(seg.text) != 0 {
			el.CreateElement(seg.name).SetText(seg.text)
		}
	}
	return nil
}

func writeSections(d *document.Document, root *etree.Element) {
	sections := d.SectionsInOrder()
	if len(sections) == 0 {
		return
	}
	parent := root.CreateElement("sections")
	for _, s := range sections {
		el := parent.CreateElement("section")
		el.CreateAttr("id", s.ID)
		el.CreateAttr("name", s.Name)
		el.CreateAttr("numbering", s.Numbering.String())
		if s.Collapsed {
			el.CreateAttr("collapsed", "true")
		}
	}
}

// writeLibrary lists every header/footer template, default first, the rest in
// natural order of their ids so re-exports diff cleanly.
func writeLibrary(d *document.Document, root *etree.Element) {
	parent := root.CreateElement("library")
	for _, slot := range []common.Slot{common.SlotHeader, common.SlotFooter} {
		contents := d.ContentsByKind(slot)
		sort.Sort(byNaturalID(contents))

		defaultID := d.DefaultHeaderID()
		if slot == common.SlotFooter {
			defaultID = d.DefaultFooterID()
		}

		for _, c := range contents {
			el := parent.CreateElement(slot.String())
			el.CreateAttr("id", c.ID)
			if c.ID == defaultID {
				el.CreateAttr("default", "true")
			}
			el.CreateAttr("height", formatPt(c.Height))
			if !c.ShowOnFirstPage {
				el.CreateAttr("skip-first-page", "true")
			}
			if c.DifferentOddEven {
				el.CreateAttr("different-odd-even", "true")
			}
			writeSegmentSet(el, "segments", c.Segments)
			if c.EvenSegments != nil {
				writeSegmentSet(el, "even-segments", *c.EvenSegments)
			}
		}
	}
}

func writeSegmentSet(parent *etree.Element, name string, set document.SegmentSet) {
	el := parent.CreateElement(name)
	for _, pos := range []common.SegmentPos{common.SegmentPosLeft, common.SegmentPosCenter, common.SegmentPosRight} {
		seg := set.At(pos)
		if seg == nil {
			continue
		}
		s := el.CreateElement(pos.String())
		s.CreateAttr("kind", seg.Kind.String())
		if seg.Kind == common.SegmentKindField {
			s.CreateAttr("field", seg.Field.String())
		} else {
			s.SetText(seg.Text)
		}
	}
}

func formatPt(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type byNaturalID []document.Content

func (s byNaturalID) Len() int           { return len(s) }
func (s byNaturalID) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s byNaturalID) Less(i, j int) bool { return natural.Less(s[i].ID, s[j].ID) }
