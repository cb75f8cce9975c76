package document

// EventKind identifies which mutation a listener is being told about.
type EventKind int

const (
	EventFolioCreated EventKind = iota
	EventFolioDeleted
	EventFolioUpdated
	EventFoliosReordered
	EventSectionCreated
	EventSectionDeleted
	EventSectionUpdated
	EventContentCreated
	EventContentUpdated
	EventContentDeleted
	EventDefaultChanged
	EventAssignmentChanged
	EventPropagated
)

func (k EventKind) String() string {
	switch k {
	case EventFolioCreated:
		return "folio-created"
	case EventFolioDeleted:
		return "folio-deleted"
	case EventFolioUpdated:
		return "folio-updated"
	case EventFoliosReordered:
		return "folios-reordered"
	case EventSectionCreated:
		return "section-created"
	case EventSectionDeleted:
		return "section-deleted"
	case EventSectionUpdated:
		return "section-updated"
	case EventContentCreated:
		return "content-created"
	case EventContentUpdated:
		return "content-updated"
	case EventContentDeleted:
		return "content-deleted"
	case EventDefaultChanged:
		return "default-changed"
	case EventAssignmentChanged:
		return "assignment-changed"
	case EventPropagated:
		return "propagated"
	default:
		return "unknown"
	}
}

// Event is delivered to listeners after a mutation has fully settled, so a
// listener always observes a consistent document (contiguous indices, purges
// completed). ID is the affected entity when one applies, empty for bulk
// operations.
type Event struct {
	Kind EventKind
	ID   string
}

// Listener receives change notifications. Listeners must not mutate the
// document from within the callback.
type Listener func(Event)

// Subscribe registers a listener and returns a function removing it.
func (d *Document) Subscribe(fn Listener) func() {
	d.nextListener++
	id := d.nextListener
	d.listeners[id] = fn
	return func() {
		delete(d.listeners, id)
	}
}

func (d *Document) notify(kind EventKind, id string) {
	d.dirty = true
	for _, fn := range d.listeners {
		fn(Event{Kind: kind, ID: id})
	}
}
