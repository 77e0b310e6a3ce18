package services

import (
	"context"
	"testing"

	"github.com/nstuweb/campus-backend/internal/apperr"
	"github.com/nstuweb/campus-backend/internal/types"
)

type areaFixture struct {
	svc     AreaService
	profile *types.ProfilePayload
	repo    *fakeAreaRepo
	profs   *fakeProfileRepo
}

func newAreaFixture(t *testing.T) *areaFixture {
	t.Helper()
	profs := newFakeProfileRepo()
	repo := newFakeAreaRepo()
	coord := &fakeCoordinator{stores: []snapshotter{profs.store, repo.store}}
	gen := &seqGen{}

	profileSvc := NewProfileService(testLogger(), profs, gen, plainHasher{}, &memMailer{})
	payload, err := profileSvc.Register(context.Background(), RegisterProfileInput{Name: "petrov", Password: "secret"})
	if err != nil {
		t.Fatalf("register fixture profile: %v", err)
	}

	return &areaFixture{
		svc:     NewAreaService(testLogger(), profs, repo, gen, coord),
		profile: payload,
		repo:    repo,
		profs:   profs,
	}
}

func (f *areaFixture) create(t *testing.T, title string) *MutationResult {
	t.Helper()
	result, err := f.svc.Create(context.Background(), CreateAreaInput{
		Name:      f.profile.Name,
		ProfileID: f.profile.ShortID,
		Title:     title,
		Category:  "history",
		Century:   "XIX",
	})
	if err != nil {
		t.Fatalf("Create(%q): %v", title, err)
	}
	return result
}

func TestCreateArea(t *testing.T) {
	f := newAreaFixture(t)

	result := f.create(t, "Akademgorodok")
	area, _ := f.repo.GetByShortID(context.Background(), result.ShortID)
	if area == nil || area.Title != "Akademgorodok" {
		t.Fatalf("area not persisted: %+v", area)
	}
	profile, _ := f.profs.GetByShortID(context.Background(), f.profile.ShortID)
	if len(profile.Components) != 1 || profile.Components[0].Kind != types.KindArea {
		t.Fatalf("linkage: got=%+v", profile.Components)
	}
}

func TestManageLocation(t *testing.T) {
	f := newAreaFixture(t)
	created := f.create(t, "Akademgorodok")

	location, err := f.svc.ManageLocation(context.Background(), "petrov", created.ShortID, "create", LocationInput{Title: "House of Scientists", Stage: "planned"}, "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := f.svc.ManageLocation(context.Background(), "petrov", created.ShortID, "update", LocationInput{Stage: "visited", Image: "house.png"}, location.ShortID); err != nil {
		t.Fatalf("update: %v", err)
	}
	area, _ := f.repo.GetByShortID(context.Background(), created.ShortID)
	got := area.Locations[0]
	if got.Stage != "visited" || got.Image != "house.png" {
		t.Fatalf("update not applied: %+v", got)
	}
	if got.Title != "House of Scientists" {
		t.Fatalf("update touched unrelated field: title=%q", got.Title)
	}

	if _, err := f.svc.ManageLocation(context.Background(), "petrov", created.ShortID, "like", LocationInput{Likes: "12"}, location.ShortID); err != nil {
		t.Fatalf("like: %v", err)
	}
	if _, err := f.svc.ManageLocation(context.Background(), "petrov", created.ShortID, "delete", LocationInput{}, location.ShortID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	area, _ = f.repo.GetByShortID(context.Background(), created.ShortID)
	if len(area.Locations) != 0 {
		t.Fatalf("locations: want=0 got=%d", len(area.Locations))
	}
}

func TestUpdateAreaFaculty(t *testing.T) {
	f := newAreaFixture(t)
	created := f.create(t, "Akademgorodok")

	if _, err := f.svc.UpdateFaculty(context.Background(), "petrov", created.ShortID, "FLA"); err != nil {
		t.Fatalf("UpdateFaculty: %v", err)
	}
	area, _ := f.repo.GetByShortID(context.Background(), created.ShortID)
	if area.Faculty != "FLA" {
		t.Fatalf("faculty: want=%q got=%q", "FLA", area.Faculty)
	}
}

func TestOfferFactIsAppendOnly(t *testing.T) {
	f := newAreaFixture(t)
	created := f.create(t, "Akademgorodok")

	first, err := f.svc.OfferFact(context.Background(), "petrov", created.ShortID, FactInput{Text: "Founded in 1957", IsTruth: true})
	if err != nil {
		t.Fatalf("first fact: %v", err)
	}
	// Identical content is legal; identity is the generated id.
	second, err := f.svc.OfferFact(context.Background(), "petrov", created.ShortID, FactInput{Text: "Founded in 1957", IsTruth: true})
	if err != nil {
		t.Fatalf("second fact: %v", err)
	}
	if first.ShortID == second.ShortID {
		t.Fatalf("fact ids must differ: %q", first.ShortID)
	}

	area, _ := f.repo.GetByShortID(context.Background(), created.ShortID)
	if len(area.Facts) != 2 {
		t.Fatalf("facts: want=2 got=%d", len(area.Facts))
	}

	if _, err := f.svc.OfferFact(context.Background(), "petrov", "missing", FactInput{Text: "x"}); !apperr.IsCode(err, apperr.CodeNotFound) {
		t.Fatalf("missing area: want code %q, got %v", apperr.CodeNotFound, err)
	}
}
