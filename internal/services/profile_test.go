package services

import (
	"context"
	"testing"

	"github.com/nstuweb/campus-backend/internal/apperr"
	"github.com/nstuweb/campus-backend/internal/types"
)

func newProfileFixture() (ProfileService, *fakeProfileRepo, *memMailer) {
	repo := newFakeProfileRepo()
	mail := &memMailer{}
	svc := NewProfileService(testLogger(), repo, &seqGen{}, plainHasher{}, mail)
	return svc, repo, mail
}

func mustRegister(t *testing.T, svc ProfileService, name string) *types.ProfilePayload {
	t.Helper()
	payload, err := svc.Register(context.Background(), RegisterProfileInput{
		Name:     name,
		Email:    name + "@stud.nstu.ru",
		Password: "secret",
	})
	if err != nil {
		t.Fatalf("Register(%q): %v", name, err)
	}
	return payload
}

func TestRegisterReturnsPayloadAndSendsEmail(t *testing.T) {
	svc, repo, mail := newProfileFixture()

	payload := mustRegister(t, svc, "petrov")
	if payload.ShortID == "" || payload.Name != "petrov" {
		t.Fatalf("payload: got=%+v", payload)
	}

	stored, _ := repo.GetByName(context.Background(), "petrov")
	if stored == nil {
		t.Fatalf("profile not persisted")
	}
	if stored.Password != "hashed:secret" {
		t.Fatalf("password stored unhashed: %q", stored.Password)
	}
	if mail.sentTo("petrov@stud.nstu.ru") != 1 {
		t.Fatalf("registration email: want=1 got=%d", mail.sentTo("petrov@stud.nstu.ru"))
	}
}

func TestRegisterRejectsTakenName(t *testing.T) {
	svc, _, _ := newProfileFixture()
	mustRegister(t, svc, "petrov")

	_, err := svc.Register(context.Background(), RegisterProfileInput{Name: "petrov", Password: "other"})
	if !apperr.IsCode(err, apperr.CodeDuplicate) {
		t.Fatalf("want code %q, got %v", apperr.CodeDuplicate, err)
	}
}

func TestRegisterRejectsEmptyRequiredFields(t *testing.T) {
	svc, _, _ := newProfileFixture()

	_, err := svc.Register(context.Background(), RegisterProfileInput{Name: "  ", Password: "secret"})
	if !apperr.IsCode(err, apperr.CodeInvalid) {
		t.Fatalf("blank name: want code %q, got %v", apperr.CodeInvalid, err)
	}
	_, err = svc.Register(context.Background(), RegisterProfileInput{Name: "petrov", Password: ""})
	if !apperr.IsCode(err, apperr.CodeInvalid) {
		t.Fatalf("blank password: want code %q, got %v", apperr.CodeInvalid, err)
	}
}

func TestLogin(t *testing.T) {
	svc, repo, _ := newProfileFixture()
	mustRegister(t, svc, "petrov")

	payload, err := svc.Login(context.Background(), "petrov", "secret", "2024-03-01")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if payload.Name != "petrov" {
		t.Fatalf("payload name: want=%q got=%q", "petrov", payload.Name)
	}
	stored, _ := repo.GetByName(context.Background(), "petrov")
	if stored.Timestamp != "2024-03-01" {
		t.Fatalf("timestamp: want=%q got=%q", "2024-03-01", stored.Timestamp)
	}

	if _, err := svc.Login(context.Background(), "nobody", "secret", ""); !apperr.IsCode(err, apperr.CodeNotFound) {
		t.Fatalf("unknown name: want code %q, got %v", apperr.CodeNotFound, err)
	}
	if _, err := svc.Login(context.Background(), "petrov", "wrong", ""); !apperr.IsCode(err, apperr.CodeInvalid) {
		t.Fatalf("wrong password: want code %q, got %v", apperr.CodeInvalid, err)
	}
}

func TestUpdatePassword(t *testing.T) {
	svc, repo, mail := newProfileFixture()
	payload := mustRegister(t, svc, "petrov")

	if _, err := svc.UpdatePassword(context.Background(), payload.ShortID, "wrong", "next"); !apperr.IsCode(err, apperr.CodeInvalid) {
		t.Fatalf("wrong current password: want code %q, got %v", apperr.CodeInvalid, err)
	}

	result, err := svc.UpdatePassword(context.Background(), payload.ShortID, "secret", "next")
	if err != nil {
		t.Fatalf("UpdatePassword: %v", err)
	}
	if result.Message != MsgPasswordUpdated {
		t.Fatalf("message: want=%q got=%q", MsgPasswordUpdated, result.Message)
	}
	stored, _ := repo.GetByShortID(context.Background(), payload.ShortID)
	if stored.Password != "hashed:next" {
		t.Fatalf("password not rotated: %q", stored.Password)
	}
	// Registration plus password-change notification.
	if mail.sentTo("petrov@stud.nstu.ru") != 2 {
		t.Fatalf("emails: want=2 got=%d", mail.sentTo("petrov@stud.nstu.ru"))
	}
}

func TestUpdateGeoInfo(t *testing.T) {
	svc, repo, _ := newProfileFixture()
	payload := mustRegister(t, svc, "petrov")

	_, err := svc.UpdateGeoInfo(context.Background(), payload.ShortID, "Novosibirsk", types.Cord{Lat: 54.98, Long: 82.9})
	if err != nil {
		t.Fatalf("UpdateGeoInfo: %v", err)
	}
	stored, _ := repo.GetByShortID(context.Background(), payload.ShortID)
	if stored.Region != "Novosibirsk" || stored.Cords.Lat != 54.98 {
		t.Fatalf("geo info not applied: region=%q cords=%+v", stored.Region, stored.Cords)
	}

	if _, err := svc.UpdateGeoInfo(context.Background(), "missing", "X", types.Cord{}); !apperr.IsCode(err, apperr.CodeNotFound) {
		t.Fatalf("missing profile: want code %q, got %v", apperr.CodeNotFound, err)
	}
}

func TestManageAchievementCreateAndDoubleDelete(t *testing.T) {
	svc, repo, _ := newProfileFixture()
	payload := mustRegister(t, svc, "petrov")

	created, err := svc.ManageAchievement(context.Background(), payload.ShortID, "create", AchievementInput{Title: "Olympiad"}, "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ShortID == "" {
		t.Fatalf("create returned no entry id")
	}

	if _, err := svc.ManageAchievement(context.Background(), payload.ShortID, "delete", AchievementInput{}, created.ShortID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	// Deleting again succeeds and leaves the list empty.
	if _, err := svc.ManageAchievement(context.Background(), payload.ShortID, "delete", AchievementInput{}, created.ShortID); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	stored, _ := repo.GetByShortID(context.Background(), payload.ShortID)
	if len(stored.Achievements) != 0 {
		t.Fatalf("achievements: want=0 got=%d", len(stored.Achievements))
	}
}

func TestManageAchievementRejectsUnknownOp(t *testing.T) {
	svc, _, _ := newProfileFixture()
	payload := mustRegister(t, svc, "petrov")

	// "like" is a valid code elsewhere but not for achievements.
	_, err := svc.ManageAchievement(context.Background(), payload.ShortID, "like", AchievementInput{}, "x")
	if !apperr.IsCode(err, apperr.CodeInvalid) {
		t.Fatalf("want code %q, got %v", apperr.CodeInvalid, err)
	}
}

func TestManageProject(t *testing.T) {
	svc, repo, _ := newProfileFixture()
	payload := mustRegister(t, svc, "petrov")

	created, err := svc.ManageProject(context.Background(), payload.ShortID, "create", ProjectInput{Title: "Robot", Progress: 10}, "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.ManageProject(context.Background(), payload.ShortID, "update", ProjectInput{Progress: 60, Image: "robot.png"}, created.ShortID); err != nil {
		t.Fatalf("update: %v", err)
	}
	stored, _ := repo.GetByShortID(context.Background(), payload.ShortID)
	if stored.Projects[0].Progress != 60 || stored.Projects[0].Image != "robot.png" {
		t.Fatalf("update not applied: %+v", stored.Projects[0])
	}
	if stored.Projects[0].Title != "Robot" {
		t.Fatalf("update touched unrelated field: title=%q", stored.Projects[0].Title)
	}

	if _, err := svc.ManageProject(context.Background(), payload.ShortID, "update", ProjectInput{Progress: 90}, "missing"); !apperr.IsCode(err, apperr.CodeNotFound) {
		t.Fatalf("update missing entry: want code %q, got %v", apperr.CodeNotFound, err)
	}

	if _, err := svc.ManageProject(context.Background(), payload.ShortID, "like", ProjectInput{Likes: "5"}, created.ShortID); err != nil {
		t.Fatalf("like: %v", err)
	}
	stored, _ = repo.GetByShortID(context.Background(), payload.ShortID)
	if stored.Projects[0].Likes != "5" {
		t.Fatalf("like not applied: %+v", stored.Projects[0])
	}
}
