package app

import (
	"github.com/nstuweb/campus-backend/internal/ids"
	"github.com/nstuweb/campus-backend/internal/logger"
	"github.com/nstuweb/campus-backend/internal/mailer"
	"github.com/nstuweb/campus-backend/internal/password"
	"github.com/nstuweb/campus-backend/internal/services"
	"github.com/nstuweb/campus-backend/internal/txn"
)

type Services struct {
	Profile  services.ProfileService
	Material services.MaterialService
	Room     services.RoomService
	Lecture  services.LectureService
	Area     services.AreaService
	Idea     services.IdeaService
}

func wireServices(
	log *logger.Logger,
	cfg Config,
	reposet Repos,
	coordinator txn.Coordinator,
) Services {
	log.Info("Wiring services...")
	gen := ids.NewGenerator()
	hasher := password.NewHasher(cfg.BcryptCost)
	mail := mailer.NewFromEnv(log)

	return Services{
		Profile:  services.NewProfileService(log, reposet.Profile, gen, hasher, mail),
		Material: services.NewMaterialService(log, reposet.Profile, reposet.Material, gen, coordinator),
		Room:     services.NewRoomService(log, reposet.Profile, reposet.Room, gen, coordinator),
		Lecture:  services.NewLectureService(log, reposet.Profile, reposet.Lecture, gen, coordinator),
		Area:     services.NewAreaService(log, reposet.Profile, reposet.Area, gen, coordinator),
		Idea:     services.NewIdeaService(log, reposet.Profile, reposet.Idea, gen, coordinator),
	}
}
