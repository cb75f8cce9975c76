// Package document implements the structural core of the page editor: page
// ordering, collapsible sections, the header/footer content library with
// per-page assignments, and the resolution and propagation logic on top of
// them. It tracks structure only - page bodies are opaque payloads owned by
// the editing subsystem, and rendering/export is a read-only consumer.
package document

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"folio/common"
	"folio/config"
)

// Fallbacks used when no configuration is supplied.
const (
	defaultChromeHeight = 36.0
	defaultMargin       = 72.0
	defaultTitle        = "Untitled document"
)

// Document is the complete structural state of one editing session. Construct
// one instance per session and pass it by reference - there is no hidden
// global state.
//
// NOTE: presently not to be used concurrently! Multi-writer consistency is the
// job of an external synchronization layer.
type Document struct {
	Title  string
	Author string

	folios   map[string]*Folio
	order    []*Folio // authoritative ordering, Folio.Index mirrors position
	sections map[string]*Section
	secOrder []*Section
	contents map[string]*Content

	// only non-inherit entries are stored; absence means inherit
	assignments map[common.Slot]map[string]Assignment
	defaultID   map[common.Slot]string

	activeFolioID string

	cfg *config.Config
	log *zap.Logger

	listeners    map[int]Listener
	nextListener int
	dirty        bool
}

// New creates a document seeded with a single empty folio (a document never
// has zero pages). cfg may be nil, in which case built-in defaults apply.
func New(cfg *config.Config, log *zap.Logger) *Document {
	if log == nil {
		log = zap.NewNop()
	}

	d := &Document{
		Title:    defaultTitle,
		folios:   make(map[string]*Folio),
		sections: make(map[string]*Section),
		contents: make(map[string]*Content),
		assignments: map[common.Slot]map[string]Assignment{
			common.SlotHeader: make(map[string]Assignment),
			common.SlotFooter: make(map[string]Assignment),
		},
		defaultID: make(map[common.Slot]string),
		cfg:       cfg,
		log:       log,
		listeners: make(map[int]Listener),
	}
	if cfg != nil {
		if len(cfg.Document.Title) != 0 {
			d.Title = cfg.Document.Title
		}
		d.Author = cfg.Document.Author
	}

	d.CreateFolio(FolioOptions{})
	d.dirty = false
	return d
}

// Dirty reports whether the document changed since the last MarkClean. The
// persistence layer uses it for save-on-change.
func (d *Document) Dirty() bool {
	return d.dirty
}

func (d *Document) MarkClean() {
	d.dirty = false
}

func (d *Document) defaultOrientation() common.Orientation {
	if d.cfg != nil {
		return d.cfg.Document.Orientation
	}
	return common.OrientationPortrait
}

func (d *Document) defaultMargins() Margins {
	if d.cfg != nil {
		m := d.cfg.Document.Margins
		return Margins{Top: m.Top, Right: m.Right, Bottom: m.Bottom, Left: m.Left}
	}
	return Margins{Top: defaultMargin, Right: defaultMargin, Bottom: defaultMargin, Left: defaultMargin}
}

func (d *Document) defaultNumbering() common.NumberingStyle {
	if d.cfg != nil {
		return d.cfg.Document.Numbering
	}
	return common.NumberingStyleArabic
}

func (d *Document) chromeHeight() float64 {
	if d.cfg != nil && d.cfg.Document.Chrome.Height > 0 {
		return d.cfg.Document.Chrome.Height
	}
	return defaultChromeHeight
}

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// entropy source is broken, fall back to v4 (panics if that fails too)
		return uuid.NewString()
	}
	return id.String()
}
