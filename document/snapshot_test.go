package document

import (
	"testing"

	"go.uber.org/zap/zaptest"

	"folio/common"
)

func buildPopulatedDoc(t *testing.T) *Document {
	t.Helper()
	d := newTestDoc(t)
	d.Title = "Quarterly Report"
	d.Author = "J. Smith"

	f1 := d.FoliosInOrder()[0].ID
	f2 := d.CreateFolio(FolioOptions{})
	d.CreateFolio(FolioOptions{AfterID: f1})

	sec := d.CreateSection("Appendix", "")
	d.SetFolioSection(f2, sec)

	h := d.CreateHeader(ContentOptions{Segments: &SegmentSet{Center: LiteralSegment("draft")}})
	fo := d.CreateFooter(ContentOptions{})
	d.SetDefaultHeader(h)
	d.SetDefaultFooter(fo)
	d.SetOverride(f2, common.SlotHeader, h)
	d.ClearOverride(f1, common.SlotFooter)
	d.SetActiveFolio(f2)
	return d
}

func TestSnapshot_RoundTrip(t *testing.T) {
	d := buildPopulatedDoc(t)
	snap := d.Snapshot()

	got, err := FromSnapshot(snap, nil, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("FromSnapshot() error = %v", err)
	}

	if got.Title != d.Title || got.Author != d.Author {
		t.Errorf("metadata = %q/%q, want %q/%q", got.Title, got.Author, d.Title, d.Author)
	}

	want := d.FoliosInOrder()
	folios := got.FoliosInOrder()
	if len(folios) != len(want) {
		t.Fatalf("folio count = %d, want %d", len(folios), len(want))
	}
	for i := range want {
		if folios[i].ID != want[i].ID || folios[i].Index != i {
			t.Errorf("position %d = %s/%d, want %s/%d", i, folios[i].ID, folios[i].Index, want[i].ID, i)
		}
		if folios[i].SectionID != want[i].SectionID {
			t.Errorf("folio %s section = %q, want %q", folios[i].ID, folios[i].SectionID, want[i].SectionID)
		}
	}

	if got.ActiveFolio().ID != d.ActiveFolio().ID {
		t.Errorf("active folio = %s, want %s", got.ActiveFolio().ID, d.ActiveFolio().ID)
	}
	if got.DefaultHeaderID() != d.DefaultHeaderID() || got.DefaultFooterID() != d.DefaultFooterID() {
		t.Error("default content ids did not survive the round trip")
	}

	// assignments resolve identically on both sides
	for _, f := range want {
		for _, slot := range []common.Slot{common.SlotHeader, common.SlotFooter} {
			a, b := d.Assignment(f.ID, slot), got.Assignment(f.ID, slot)
			if a != b {
				t.Errorf("folio %s %s assignment = %+v, want %+v", f.ID, slot, b, a)
			}
		}
	}

	res := got.HeaderForFolio(got.FoliosInOrder()[0].ID)
	if res.Content == nil || res.Content.Segments.Center.Text != "draft" {
		t.Error("default header content lost in the round trip")
	}
}

func TestFromSnapshot_RefusesEmpty(t *testing.T) {
	if _, err := FromSnapshot(Snapshot{}, nil, zaptest.NewLogger(t)); err == nil {
		t.Fatal("FromSnapshot() accepted a snapshot without folios")
	}
}

func TestFromSnapshot_RepairsCorruptState(t *testing.T) {
	d := buildPopulatedDoc(t)
	snap := d.Snapshot()

	// stale references and broken indices, the way a hand-edited or
	// half-written database could look
	snap.ActiveFolioID = "gone"
	snap.Folios[0].Index = 41
	snap.Folios[0].SectionID = "deleted-section"
	snap.HeaderAssignments["no-such-folio"] = Assignment{State: common.AssignmentStateNone}

	got, err := FromSnapshot(snap, nil, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("FromSnapshot() error = %v", err)
	}

	folios := got.FoliosInOrder()
	for i, f := range folios {
		if f.Index != i {
			t.Errorf("index not renumbered: position %d has index %d", i, f.Index)
		}
		if f.SectionID == "deleted-section" {
			t.Error("stale section reference not cleared")
		}
	}
	if got.ActiveFolio().ID != folios[0].ID {
		t.Errorf("active folio = %s, want fallback to first page", got.ActiveFolio().ID)
	}
	if a := got.Assignment("no-such-folio", common.SlotHeader); a.State != common.AssignmentStateInherit {
		t.Error("assignment for a missing folio should have been dropped")
	}
}

func TestFromSnapshot_NotDirty(t *testing.T) {
	d := buildPopulatedDoc(t)
	got, err := FromSnapshot(d.Snapshot(), nil, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("FromSnapshot() error = %v", err)
	}
	if got.Dirty() {
		t.Error("a freshly loaded document should not be dirty")
	}
}
