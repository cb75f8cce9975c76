package document

import (
	"testing"

	"folio/common"
)

func TestCreateSection_Ordering(t *testing.T) {
	d := newTestDoc(t)

	s1 := d.CreateSection("Intro", "")
	s2 := d.CreateSection("Body", "")
	s3 := d.CreateSection("Early", s1) // between s1 and s2

	secs := d.SectionsInOrder()
	want := []string{s1, s3, s2}
	if len(secs) != len(want) {
		t.Fatalf("section count = %d, want %d", len(secs), len(want))
	}
	for i := range want {
		if secs[i].ID != want[i] {
			t.Errorf("position %d = %s, want %s", i, secs[i].ID, want[i])
		}
		if secs[i].Index != i {
			t.Errorf("section %s index = %d, want %d", secs[i].ID, secs[i].Index, i)
		}
	}
}

func TestDeleteSection_ClearsWeakReferences(t *testing.T) {
	d := newTestDoc(t)

	sec := d.CreateSection("Chapter 1", "")
	f1 := d.FoliosInOrder()[0].ID
	f2 := d.CreateFolio(FolioOptions{SectionID: sec})
	d.SetFolioSection(f1, sec)

	if got := d.FoliosBySection(sec); len(got) != 2 {
		t.Fatalf("FoliosBySection() = %d folios, want 2", len(got))
	}

	d.DeleteSection(sec)

	if _, ok := d.Section(sec); ok {
		t.Error("section still present after delete")
	}
	// folios survive, references are cleared
	if d.FolioCount() != 2 {
		t.Fatalf("FolioCount() = %d, want 2 (delete must not cascade to folios)", d.FolioCount())
	}
	for _, id := range []string{f1, f2} {
		if f, _ := d.Folio(id); len(f.SectionID) != 0 {
			t.Errorf("folio %s still references deleted section %s", id, f.SectionID)
		}
	}
}

func TestSectionSetters(t *testing.T) {
	d := newTestDoc(t)
	id := d.CreateSection("Draft", "")

	d.RenameSection(id, "Final")
	if s, _ := d.Section(id); s.Name != "Final" {
		t.Errorf("name = %q, want %q", s.Name, "Final")
	}

	d.SetSectionNumbering(id, common.NumberingStyleRoman)
	if s, _ := d.Section(id); s.Numbering != common.NumberingStyleRoman {
		t.Errorf("numbering = %s, want roman", s.Numbering)
	}

	d.ToggleCollapse(id)
	if s, _ := d.Section(id); !s.Collapsed {
		t.Error("section should be collapsed")
	}
	d.ToggleCollapse(id)
	if s, _ := d.Section(id); s.Collapsed {
		t.Error("section should be expanded again")
	}

	// unknown ids are warned no-ops
	d.RenameSection("bogus", "X")
	d.ToggleCollapse("bogus")
	d.DeleteSection("bogus")
}
