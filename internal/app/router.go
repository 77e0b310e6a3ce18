package app

import (
	"github.com/gin-gonic/gin"

	"github.com/nstuweb/campus-backend/internal/server"
)

func wireRouter(handlerset Handlers) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		ProfileHandler:   handlerset.Profile,
		MaterialHandler:  handlerset.Material,
		RoomHandler:      handlerset.Room,
		LectureHandler:   handlerset.Lecture,
		AreaHandler:      handlerset.Area,
		IdeaHandler:      handlerset.Idea,
		ReferenceHandler: handlerset.Reference,
	})
}
