package document

import (
	"testing"

	"go.uber.org/zap/zaptest"

	"folio/common"
)

func newTestDoc(t *testing.T) *Document {
	t.Helper()
	return New(nil, zaptest.NewLogger(t))
}

// checkIndices verifies the core invariant: indices are exactly 0..N-1 in
// order of appearance.
func checkIndices(t *testing.T, d *Document) {
	t.Helper()
	folios := d.FoliosInOrder()
	for i, f := range folios {
		if f.Index != i {
			t.Fatalf("index invariant broken: folio %s at position %d has index %d", f.ID, i, f.Index)
		}
	}
}

func TestNew_SeedsOneFolio(t *testing.T) {
	d := newTestDoc(t)

	if d.FolioCount() != 1 {
		t.Fatalf("FolioCount() = %d, want 1", d.FolioCount())
	}
	if d.Dirty() {
		t.Error("fresh document should not be dirty")
	}
	active := d.ActiveFolio()
	if active.Index != 0 {
		t.Errorf("active folio index = %d, want 0", active.Index)
	}
}

func TestCreateFolio_InsertAfter(t *testing.T) {
	d := newTestDoc(t)

	a := d.FoliosInOrder()[0].ID
	b := d.CreateFolio(FolioOptions{})
	c := d.CreateFolio(FolioOptions{})

	// [a,b,c] -> insert after a -> [a,x,b,c]
	x := d.CreateFolio(FolioOptions{AfterID: a})

	folios := d.FoliosInOrder()
	wantOrder := []string{a, x, b, c}
	if len(folios) != len(wantOrder) {
		t.Fatalf("FolioCount() = %d, want %d", len(folios), len(wantOrder))
	}
	for i, want := range wantOrder {
		if folios[i].ID != want {
			t.Errorf("position %d = %s, want %s", i, folios[i].ID, want)
		}
	}
	checkIndices(t, d)

	if got, _ := d.Folio(x); got.Index != 1 {
		t.Errorf("inserted folio index = %d, want 1", got.Index)
	}
	if got, _ := d.Folio(b); got.Index != 2 {
		t.Errorf("shifted folio index = %d, want 2", got.Index)
	}
	if d.ActiveFolio().ID != x {
		t.Errorf("active folio = %s, want newly created %s", d.ActiveFolio().ID, x)
	}
}

func TestCreateFolio_UnknownAfterAppends(t *testing.T) {
	d := newTestDoc(t)

	id := d.CreateFolio(FolioOptions{AfterID: "no-such-folio"})
	if got, _ := d.Folio(id); got.Index != 1 {
		t.Errorf("folio index = %d, want appended at 1", got.Index)
	}
	checkIndices(t, d)
}

func TestCreateFolio_Options(t *testing.T) {
	d := newTestDoc(t)

	landscape := common.OrientationLandscape
	m := Margins{Top: 10, Right: 20, Bottom: 30, Left: 40}
	id := d.CreateFolio(FolioOptions{Orientation: &landscape, Margins: &m})

	f, ok := d.Folio(id)
	if !ok {
		t.Fatal("created folio not found")
	}
	if f.Orientation != common.OrientationLandscape {
		t.Errorf("orientation = %s, want landscape", f.Orientation)
	}
	if f.Margins != m {
		t.Errorf("margins = %+v, want %+v", f.Margins, m)
	}
}

func TestDeleteFolio_LastGuard(t *testing.T) {
	d := newTestDoc(t)
	only := d.FoliosInOrder()[0].ID

	if err := d.DeleteFolio(only); err != ErrLastFolio {
		t.Fatalf("DeleteFolio(last) = %v, want ErrLastFolio", err)
	}
	if d.FolioCount() != 1 {
		t.Fatalf("FolioCount() = %d after refused delete, want 1", d.FolioCount())
	}
	if _, ok := d.Folio(only); !ok {
		t.Error("sole folio must survive refused delete")
	}
}

func TestDeleteFolio_Unknown(t *testing.T) {
	d := newTestDoc(t)
	d.CreateFolio(FolioOptions{})

	if err := d.DeleteFolio("no-such-folio"); err != nil {
		t.Fatalf("DeleteFolio(unknown) = %v, want nil (warned no-op)", err)
	}
	if d.FolioCount() != 2 {
		t.Errorf("FolioCount() = %d, want 2", d.FolioCount())
	}
}

func TestDeleteFolio_ReindexesAndReassignsActive(t *testing.T) {
	d := newTestDoc(t)
	a := d.FoliosInOrder()[0].ID
	b := d.CreateFolio(FolioOptions{})
	c := d.CreateFolio(FolioOptions{})

	d.SetActiveFolio(a)
	if err := d.DeleteFolio(a); err != nil {
		t.Fatalf("DeleteFolio() error = %v", err)
	}

	checkIndices(t, d)
	folios := d.FoliosInOrder()
	if folios[0].ID != b || folios[1].ID != c {
		t.Errorf("order after delete = [%s %s], want [%s %s]", folios[0].ID, folios[1].ID, b, c)
	}
	if d.ActiveFolio().ID != b {
		t.Errorf("active folio = %s, want lowest-index survivor %s", d.ActiveFolio().ID, b)
	}
}

func TestDeleteFolio_DropsAssignments(t *testing.T) {
	d := newTestDoc(t)
	a := d.FoliosInOrder()[0].ID
	b := d.CreateFolio(FolioOptions{})

	h := d.CreateHeader(ContentOptions{})
	d.SetOverride(a, common.SlotHeader, h)
	d.ClearOverride(a, common.SlotFooter)

	if err := d.DeleteFolio(a); err != nil {
		t.Fatalf("DeleteFolio() error = %v", err)
	}
	snap := d.Snapshot()
	if len(snap.HeaderAssignments) != 0 || len(snap.FooterAssignments) != 0 {
		t.Errorf("assignments survived folio delete: %+v %+v", snap.HeaderAssignments, snap.FooterAssignments)
	}
	_ = b
}

func TestReorder(t *testing.T) {
	d := newTestDoc(t)
	a := d.FoliosInOrder()[0].ID
	b := d.CreateFolio(FolioOptions{})
	c := d.CreateFolio(FolioOptions{})

	t.Run("full permutation", func(t *testing.T) {
		d.Reorder([]string{c, a, b})
		folios := d.FoliosInOrder()
		want := []string{c, a, b}
		for i := range want {
			if folios[i].ID != want[i] {
				t.Errorf("position %d = %s, want %s", i, folios[i].ID, want[i])
			}
		}
		checkIndices(t, d)
	})

	t.Run("partial list appends the rest in prior order", func(t *testing.T) {
		// current order [c,a,b]; listing only b must leave [b,c,a]
		d.Reorder([]string{b})
		folios := d.FoliosInOrder()
		want := []string{b, c, a}
		for i := range want {
			if folios[i].ID != want[i] {
				t.Errorf("position %d = %s, want %s", i, folios[i].ID, want[i])
			}
		}
		checkIndices(t, d)
	})

	t.Run("unknown and duplicate ids are skipped", func(t *testing.T) {
		d.Reorder([]string{a, "bogus", a, c})
		folios := d.FoliosInOrder()
		want := []string{a, c, b}
		for i := range want {
			if folios[i].ID != want[i] {
				t.Errorf("position %d = %s, want %s", i, folios[i].ID, want[i])
			}
		}
		checkIndices(t, d)
	})
}

func TestIndexInvariant_MixedOperations(t *testing.T) {
	d := newTestDoc(t)

	ids := []string{d.FoliosInOrder()[0].ID}
	for i := 0; i < 10; i++ {
		ids = append(ids, d.CreateFolio(FolioOptions{AfterID: ids[i/2]}))
		checkIndices(t, d)
	}
	for _, id := range ids[2:6] {
		if err := d.DeleteFolio(id); err != nil {
			t.Fatalf("DeleteFolio() error = %v", err)
		}
		checkIndices(t, d)
	}
	d.Reorder([]string{ids[1], ids[0]})
	checkIndices(t, d)

	if d.FolioCount() != 7 {
		t.Errorf("FolioCount() = %d, want 7", d.FolioCount())
	}
}

func TestFolioSetters(t *testing.T) {
	d := newTestDoc(t)
	id := d.FoliosInOrder()[0].ID

	d.ToggleOrientation(id)
	if f, _ := d.Folio(id); f.Orientation != common.OrientationLandscape {
		t.Errorf("orientation after toggle = %s, want landscape", f.Orientation)
	}
	d.ToggleOrientation(id)
	if f, _ := d.Folio(id); f.Orientation != common.OrientationPortrait {
		t.Errorf("orientation after second toggle = %s, want portrait", f.Orientation)
	}

	d.SetLocked(id, true)
	if f, _ := d.Folio(id); !f.Locked {
		t.Error("folio should be locked")
	}

	m := Margins{Top: 1, Right: 2, Bottom: 3, Left: 4}
	d.SetMargins(id, m)
	if f, _ := d.Folio(id); f.Margins != m {
		t.Errorf("margins = %+v, want %+v", f.Margins, m)
	}

	// unknown ids must not panic and must not change anything
	d.ToggleOrientation("bogus")
	d.SetLocked("bogus", true)
	d.SetMargins("bogus", m)
	d.SetFolioSection("bogus", "")
	d.SetActiveFolio("bogus")
	if d.ActiveFolio().ID != id {
		t.Errorf("active folio changed by unknown-id activation")
	}
}
