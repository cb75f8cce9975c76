package document

import (
	"testing"

	"folio/common"
)

// The three states all have distinct, pattern-matchable results even when two
// of them render as "no content".
func TestResolve_TriStateDistinction(t *testing.T) {
	d := newTestDoc(t)
	f := d.FoliosInOrder()[0].ID

	// no override, no default: inheriting an unset default
	res := d.HeaderForFolio(f)
	if res.Content != nil || !res.IsDefault || res.IsOverride {
		t.Errorf("inherit-unset = %+v, want content=nil IsDefault=true IsOverride=false", res)
	}

	// explicitly blank: same nil content, opposite flags
	d.ClearOverride(f, common.SlotHeader)
	res = d.HeaderForFolio(f)
	if res.Content != nil || res.IsDefault || !res.IsOverride {
		t.Errorf("explicit-none = %+v, want content=nil IsDefault=false IsOverride=true", res)
	}
	if len(res.OverrideID) != 0 {
		t.Errorf("explicit-none OverrideID = %q, want empty", res.OverrideID)
	}
}

func TestResolve_InheritFollowsDefault(t *testing.T) {
	d := newTestDoc(t)
	f := d.FoliosInOrder()[0].ID

	h := d.CreateHeader(ContentOptions{Segments: &SegmentSet{Center: LiteralSegment("acme corp")}})
	d.SetDefaultHeader(h)

	res := d.HeaderForFolio(f)
	if !res.IsDefault || res.IsOverride {
		t.Fatalf("flags = %+v, want inherit", res)
	}
	if res.Content == nil || res.Content.ID != h {
		t.Fatal("inheriting folio must resolve the default content")
	}
	if res.Content.Segments.Center.Text != "acme corp" {
		t.Errorf("center = %q, want %q", res.Content.Segments.Center.Text, "acme corp")
	}
}

func TestResolve_OverrideContent(t *testing.T) {
	d := newTestDoc(t)
	f := d.FoliosInOrder()[0].ID

	def := d.CreateFooter(ContentOptions{})
	own := d.CreateFooter(ContentOptions{Segments: &SegmentSet{Right: FieldSegment(common.FieldKindAuthor)}})
	d.SetDefaultFooter(def)
	d.SetOverride(f, common.SlotFooter, own)

	res := d.FooterForFolio(f)
	if res.IsDefault || !res.IsOverride {
		t.Fatalf("flags = %+v, want override", res)
	}
	if res.OverrideID != own {
		t.Errorf("OverrideID = %q, want %q", res.OverrideID, own)
	}
	if res.Content == nil || res.Content.ID != own {
		t.Fatal("override must resolve its own content, not the default")
	}
}

func TestResolve_ResetRoundTrip(t *testing.T) {
	d := newTestDoc(t)
	f := d.FoliosInOrder()[0].ID

	def := d.CreateHeader(ContentOptions{Segments: &SegmentSet{Left: LiteralSegment("v1")}})
	d.SetDefaultHeader(def)
	before := d.HeaderForFolio(f)

	h1 := d.CreateHeader(ContentOptions{})
	d.SetOverride(f, common.SlotHeader, h1)
	d.ResetToDefault(f, common.SlotHeader)

	after := d.HeaderForFolio(f)
	if !after.IsDefault || after.IsOverride {
		t.Fatalf("flags after reset = %+v, want inherit", after)
	}
	if before.Content == nil || after.Content == nil || before.Content.ID != after.Content.ID {
		t.Error("reset must return to the same default content")
	}
	if after.Content.Segments.Left.Text != "v1" {
		t.Errorf("default content changed across round trip: %q", after.Content.Segments.Left.Text)
	}
}

func TestResolve_DanglingOverride(t *testing.T) {
	d := newTestDoc(t)
	f := d.FoliosInOrder()[0].ID

	d.SetOverride(f, common.SlotHeader, "nonexistent-id")

	res := d.HeaderForFolio(f)
	if res.Content != nil {
		t.Error("dangling override must render empty")
	}
	if !res.IsOverride || res.IsDefault {
		t.Errorf("flags = %+v, want override", res)
	}
	if res.OverrideID != "nonexistent-id" {
		t.Errorf("OverrideID = %q, want preserved for diagnostics", res.OverrideID)
	}
}

func TestResolve_UnknownFolio(t *testing.T) {
	d := newTestDoc(t)

	res := d.HeaderForFolio("bogus")
	if res.Content != nil || res.IsDefault || res.IsOverride {
		t.Errorf("unknown folio = %+v, want zero result", res)
	}
}

func TestResolve_SlotsAreIndependent(t *testing.T) {
	d := newTestDoc(t)
	f := d.FoliosInOrder()[0].ID

	h := d.CreateHeader(ContentOptions{})
	d.SetOverride(f, common.SlotHeader, h)

	if res := d.FooterForFolio(f); !res.IsDefault {
		t.Error("footer must still inherit after a header override")
	}
}
