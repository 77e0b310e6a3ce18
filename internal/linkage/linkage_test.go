package linkage

import (
	"testing"

	"github.com/nstuweb/campus-backend/internal/types"
)

func profileWith(components ...types.Component) *types.Profile {
	p := &types.Profile{Name: "petrov"}
	p.Components = components
	return p
}

func TestHasLinkageKeyedByKindAndTitle(t *testing.T) {
	p := profileWith(types.Component{ShortID: "m1", Title: "Calculus", Kind: types.KindMaterial})

	if !HasLinkage(p, types.KindMaterial, "Calculus") {
		t.Fatalf("HasLinkage(material, Calculus): want=true got=false")
	}
	// Same title under a different kind is a different component.
	if HasLinkage(p, types.KindLecture, "Calculus") {
		t.Fatalf("HasLinkage(lecture, Calculus): want=false got=true")
	}
	if HasLinkage(p, types.KindMaterial, "Algebra") {
		t.Fatalf("HasLinkage(material, Algebra): want=false got=true")
	}
}

func TestAddLinkageAppends(t *testing.T) {
	p := profileWith()
	AddLinkage(p, types.Component{ShortID: "r1", Title: "506", Kind: types.KindRoom})
	AddLinkage(p, types.Component{ShortID: "m1", Title: "Calculus", Kind: types.KindMaterial})
	if len(p.Components) != 2 {
		t.Fatalf("len: want=%d got=%d", 2, len(p.Components))
	}
	if p.Components[0].ShortID != "r1" || p.Components[1].ShortID != "m1" {
		t.Fatalf("order not preserved: got=[%s %s]", p.Components[0].ShortID, p.Components[1].ShortID)
	}
}

func TestRemoveLinkage(t *testing.T) {
	p := profileWith(
		types.Component{ShortID: "r1", Title: "506", Kind: types.KindRoom},
		types.Component{ShortID: "m1", Title: "Calculus", Kind: types.KindMaterial},
	)

	RemoveLinkage(p, "r1")
	if len(p.Components) != 1 {
		t.Fatalf("len after remove: want=%d got=%d", 1, len(p.Components))
	}
	if p.Components[0].ShortID != "m1" {
		t.Fatalf("survivor: want=%q got=%q", "m1", p.Components[0].ShortID)
	}

	// Removing an absent id leaves the list alone.
	RemoveLinkage(p, "r1")
	if len(p.Components) != 1 {
		t.Fatalf("len after repeat remove: want=%d got=%d", 1, len(p.Components))
	}
}
