package document

import (
	"testing"

	"folio/common"
)

func TestSubscribe_ReceivesEvents(t *testing.T) {
	d := newTestDoc(t)

	var got []Event
	cancel := d.Subscribe(func(e Event) { got = append(got, e) })
	defer cancel()

	id := d.CreateFolio(FolioOptions{})
	d.ToggleOrientation(id)

	if len(got) != 2 {
		t.Fatalf("received %d events, want 2", len(got))
	}
	if got[0].Kind != EventFolioCreated || got[0].ID != id {
		t.Errorf("first event = %+v, want folio-created for %s", got[0], id)
	}
	if got[1].Kind != EventFolioUpdated || got[1].ID != id {
		t.Errorf("second event = %+v, want folio-updated for %s", got[1], id)
	}
}

func TestSubscribe_Cancel(t *testing.T) {
	d := newTestDoc(t)

	n := 0
	cancel := d.Subscribe(func(Event) { n++ })
	d.CreateFolio(FolioOptions{})
	cancel()
	d.CreateFolio(FolioOptions{})

	if n != 1 {
		t.Errorf("listener fired %d times, want 1", n)
	}
}

func TestSubscribe_MultipleListeners(t *testing.T) {
	d := newTestDoc(t)

	a, b := 0, 0
	defer d.Subscribe(func(Event) { a++ })()
	defer d.Subscribe(func(Event) { b++ })()

	d.CreateSection("Intro", "")
	if a != 1 || b != 1 {
		t.Errorf("listeners fired %d/%d times, want 1/1", a, b)
	}
}

func TestEvents_ObserveSettledState(t *testing.T) {
	d := newTestDoc(t)
	a := d.FoliosInOrder()[0].ID
	b := d.CreateFolio(FolioOptions{})

	defer d.Subscribe(func(e Event) {
		if e.Kind != EventFolioDeleted {
			return
		}
		// by delivery time the purge is complete and indices are contiguous
		if d.FolioCount() != 1 {
			t.Errorf("FolioCount() = %d inside listener, want 1", d.FolioCount())
		}
		if d.FoliosInOrder()[0].Index != 0 {
			t.Error("indices not renumbered before delivery")
		}
	})()

	if err := d.DeleteFolio(a); err != nil {
		t.Fatalf("DeleteFolio() error = %v", err)
	}
	_ = b
}

func TestDirtyFlag(t *testing.T) {
	d := newTestDoc(t)
	if d.Dirty() {
		t.Fatal("fresh document should be clean")
	}

	d.CreateFolio(FolioOptions{})
	if !d.Dirty() {
		t.Fatal("mutation should mark the document dirty")
	}

	d.MarkClean()
	if d.Dirty() {
		t.Fatal("MarkClean() should clear the flag")
	}

	// reads do not dirty
	d.FoliosInOrder()
	d.HeaderForFolio(d.ActiveFolio().ID)
	d.Assignment(d.ActiveFolio().ID, common.SlotHeader)
	if d.Dirty() {
		t.Error("read accessors must not dirty the document")
	}

	// warned no-ops do not dirty either
	d.ToggleOrientation("bogus")
	d.RenameSection("bogus", "X")
	if d.Dirty() {
		t.Error("no-op mutations must not dirty the document")
	}
}
