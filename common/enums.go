// Package common holds enumerations shared by the document core, the storage
// layer and the configuration. They live in a separate leaf package so config
// does not have to depend on the document store and vice versa.
package common

// Page orientation.
// ENUM(portrait, landscape)
type Orientation int

func (o Orientation) Flip() Orientation {
	if o == OrientationPortrait {
		return OrientationLandscape
	}
	return OrientationPortrait
}

// Header or footer slot on a page.
// ENUM(header, footer)
type Slot int

// Position of a segment within header/footer chrome.
// ENUM(left, center, right)
type SegmentPos int

// Kind of a chrome segment - stored text or a field computed at render time.
// ENUM(literal, field)
type SegmentKind int

// Dynamic field computed at render/export time.
// ENUM(page_number, total_pages, date, time, document_title, author)
type FieldKind int

// Section numbering style.
// ENUM(arabic, roman, letters, none)
type NumberingStyle int

// Per-folio chrome assignment state: inherit the document default, explicitly
// show nothing, or show specific library content.
// ENUM(inherit, none, content)
type AssignmentState int
