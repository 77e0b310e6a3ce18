package app

import (
	"github.com/nstuweb/campus-backend/internal/handlers"
	"github.com/nstuweb/campus-backend/internal/logger"
	"github.com/nstuweb/campus-backend/internal/reference"
)

type Handlers struct {
	Profile   *handlers.ProfileHandler
	Material  *handlers.MaterialHandler
	Room      *handlers.RoomHandler
	Lecture   *handlers.LectureHandler
	Area      *handlers.AreaHandler
	Idea      *handlers.IdeaHandler
	Reference *handlers.ReferenceHandler
}

func wireHandlers(log *logger.Logger, serviceset Services, refData *reference.Data) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Profile:   handlers.NewProfileHandler(serviceset.Profile),
		Material:  handlers.NewMaterialHandler(serviceset.Material),
		Room:      handlers.NewRoomHandler(serviceset.Room),
		Lecture:   handlers.NewLectureHandler(serviceset.Lecture),
		Area:      handlers.NewAreaHandler(serviceset.Area),
		Idea:      handlers.NewIdeaHandler(serviceset.Idea),
		Reference: handlers.NewReferenceHandler(refData),
	}
}
