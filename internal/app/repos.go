package app

import (
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/nstuweb/campus-backend/internal/logger"
	"github.com/nstuweb/campus-backend/internal/repos"
)

type Repos struct {
	Profile  repos.ProfileRepo
	Material repos.MaterialRepo
	Room     repos.RoomRepo
	Lecture  repos.LectureRepo
	Area     repos.AreaRepo
	Idea     repos.IdeaRepo
}

func wireRepos(database *mongo.Database, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Profile:  repos.NewProfileRepo(database, log),
		Material: repos.NewMaterialRepo(database, log),
		Room:     repos.NewRoomRepo(database, log),
		Lecture:  repos.NewLectureRepo(database, log),
		Area:     repos.NewAreaRepo(database, log),
		Idea:     repos.NewIdeaRepo(database, log),
	}
}
